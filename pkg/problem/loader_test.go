package problem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/attain/pkg/domain"
	"github.com/aretw0/attain/pkg/problem"
)

const schoolYAML = `
name: school
start: [son-at-home, car-needs-battery, have-money, have-phone-book]
goals: [son-at-school]
actions:
  - name: drive-son-to-school
    preconditions: [son-at-home, car-works]
    adds: [son-at-school]
    deletes: [son-at-home]
  - name: shop-installs-battery
    preconditions: [car-needs-battery, shop-knows-problem, shop-has-money]
    adds: [car-works]
  - name: tell-shop-problem
    preconditions: [in-communication-with-shop]
    adds: [shop-knows-problem]
  - name: telephone-shop
    preconditions: [know-phone-number]
    adds: [in-communication-with-shop]
  - name: look-up-number
    preconditions: [have-phone-book]
    adds: [know-phone-number]
  - name: give-shop-money
    preconditions: [have-money]
    adds: [shop-has-money]
    deletes: [have-money]
`

func TestParse_YAML(t *testing.T) {
	p, err := problem.Parse([]byte(schoolYAML))
	require.NoError(t, err)

	assert.Equal(t, "school", p.Name)
	assert.Equal(t, []domain.Condition{"son-at-school"}, p.Goals)
	assert.Len(t, p.Start, 4)
	require.Len(t, p.Actions, 6)

	drive := p.Actions[0]
	assert.Equal(t, "drive-son-to-school", drive.Name)
	assert.Equal(t, []domain.Condition{"son-at-home", "car-works"}, drive.Preconditions)
	assert.Equal(t, []domain.Condition{"son-at-school"}, drive.Adds)
	assert.Equal(t, []domain.Condition{"son-at-home"}, drive.Deletes)
}

func TestParse_Invalid(t *testing.T) {
	_, err := problem.Parse([]byte("goals: [x\n  - broken"))
	assert.Error(t, err)
}

func TestLoad_JSON(t *testing.T) {
	data := `{
		"name": "tiny",
		"start": ["a"],
		"goals": ["b"],
		"actions": [
			{"name": "a-to-b", "preconditions": ["a"], "adds": ["b"], "deletes": ["a"]}
		]
	}`
	path := filepath.Join(t.TempDir(), "tiny.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	p, err := problem.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", p.Name)
	assert.Equal(t, []domain.Condition{"b"}, p.Goals)
	require.Len(t, p.Actions, 1)
	assert.Equal(t, "a-to-b", p.Actions[0].Name)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "school.yaml")
	require.NoError(t, os.WriteFile(path, []byte(schoolYAML), 0o644))

	p, err := problem.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "school", p.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := problem.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("no goals", func(t *testing.T) {
		err := problem.Validate(&domain.Problem{Start: []domain.Condition{"a"}})
		assert.ErrorIs(t, err, domain.ErrNoGoals)
	})

	t.Run("unnamed action", func(t *testing.T) {
		err := problem.Validate(&domain.Problem{
			Goals:   []domain.Condition{"g"},
			Actions: domain.Library{{Adds: []domain.Condition{"g"}}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no name")
	})

	t.Run("nil problem", func(t *testing.T) {
		assert.Error(t, problem.Validate(nil))
	})

	t.Run("valid", func(t *testing.T) {
		p, err := problem.Parse([]byte(schoolYAML))
		require.NoError(t, err)
		assert.NoError(t, problem.Validate(p))
	})
}

func TestAnalyze(t *testing.T) {
	t.Run("unreachable goal and precondition", func(t *testing.T) {
		p := &domain.Problem{
			Start: []domain.Condition{"a"},
			Goals: []domain.Condition{"impossible"},
			Actions: domain.Library{
				{Name: "needs-magic", Preconditions: []domain.Condition{"magic"}, Adds: []domain.Condition{"b"}},
			},
		}

		warnings := problem.Analyze(p)
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], `"impossible"`)
		assert.Contains(t, warnings[1], `"magic"`)
		assert.Contains(t, warnings[1], `"needs-magic"`)
	})

	t.Run("clean problem", func(t *testing.T) {
		p, err := problem.Parse([]byte(schoolYAML))
		require.NoError(t, err)
		assert.Empty(t, problem.Analyze(p))
	})
}
