package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/attain/pkg/domain"
)

func TestLibraryActionsFor(t *testing.T) {
	lib := domain.Library{
		{Name: "first", Adds: []domain.Condition{"goal"}},
		{Name: "unrelated", Adds: []domain.Condition{"other"}},
		{Name: "second", Adds: []domain.Condition{"extra", "goal"}},
		{Name: "first", Adds: []domain.Condition{"goal"}}, // duplicate entry, kept
	}

	t.Run("candidates in library order", func(t *testing.T) {
		got := lib.ActionsFor("goal")
		names := make([]string, len(got))
		for i, a := range got {
			names[i] = a.Name
		}
		assert.Equal(t, []string{"first", "second", "first"}, names)
	})

	t.Run("no candidates is a normal outcome", func(t *testing.T) {
		assert.Empty(t, lib.ActionsFor("unknown"))
	})

	t.Run("empty library", func(t *testing.T) {
		assert.Empty(t, domain.Library{}.ActionsFor("goal"))
	})
}
