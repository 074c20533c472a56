/*
Package attain is a minimal means-ends goal-achievement planner: given a
world state (a set of true conditions), a list of goal conditions and a
library of actions (each with preconditions, an add-list and a
delete-list), it decides whether every goal can be achieved by
recursively chaining actions, mutating the world state as actions
execute.

It implements the classic GPS recursion: a goal is achieved either
because the state already holds it, or because some action that adds it
can be applied — and applying an action means first achieving all of
its preconditions. There is no backtracking and no rollback: side
effects of failed attempts persist, which is part of the contract, not
a bug. The planner produces no plan artifact; the ordered trace of
applied actions, delivered through lifecycle hooks, is the only record
of what was executed.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/attain"
		"github.com/aretw0/attain/pkg/domain"
	)

	func main() {
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

		r := attain.NewRunner()
		r.Output = os.Stdout
		if _, err := r.Run(context.Background(), prob); err != nil {
			log.Fatal(err)
		}
	}

For finer control (custom hooks, logging, recursion limits) construct a
Planner directly with New and the functional options.
*/
package attain
