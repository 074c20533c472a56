package attain_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/attain"
	"github.com/aretw0/attain/pkg/domain"
)

// ExampleRunner solves a one-step problem and streams the trace and
// outcome to stdout.
func ExampleRunner() {
	prob := &domain.Problem{
		Start: []domain.Condition{"son-at-home", "car-works"},
		Goals: []domain.Condition{"son-at-school"},
		Actions: domain.Library{
			{
				Name:          "drive-son-to-school",
				Preconditions: []domain.Condition{"son-at-home", "car-works"},
				Adds:          []domain.Condition{"son-at-school"},
				Deletes:       []domain.Condition{"son-at-home"},
			},
		},
	}

	r := attain.NewRunner()
	r.Output = os.Stdout
	if _, err := r.Run(context.Background(), prob); err != nil {
		log.Fatal(err)
	}

	// Output:
	// Executing operation: drive-son-to-school.
	// SOLVED.
}

// ExamplePlanner collects the trace through lifecycle hooks instead of
// an output stream.
func ExamplePlanner() {
	prob := &domain.Problem{
		Start: []domain.Condition{"have-flour", "have-eggs"},
		Goals: []domain.Condition{"have-cake"},
		Actions: domain.Library{
			{
				Name:          "bake-cake",
				Preconditions: []domain.Condition{"have-flour", "have-eggs"},
				Adds:          []domain.Condition{"have-cake"},
				Deletes:       []domain.Condition{"have-flour", "have-eggs"},
			},
		},
	}

	var trace []string
	planner, err := attain.New(prob, attain.WithLifecycleHooks(domain.LifecycleHooks{
		OnActionApplied: func(_ context.Context, ev *domain.ActionEvent) {
			trace = append(trace, ev.Action)
		},
	}))
	if err != nil {
		log.Fatal(err)
	}

	solved, err := planner.Solve(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(solved, trace)
	// Output:
	// true [bake-cake]
}
