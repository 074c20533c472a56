package problem

import (
	"fmt"

	"github.com/aretw0/attain/pkg/domain"
)

// Analyze reports conditions the problem can never make true: goals and
// preconditions that are absent from the start state and added by no
// action. These are warnings, not errors — the planner simply fails on
// them at run time.
func Analyze(p *domain.Problem) []string {
	var addable []domain.Condition
	for _, a := range p.Actions {
		addable = domain.Union(addable, a.Adds)
	}

	reachable := func(c domain.Condition) bool {
		return domain.Contains(p.Start, c) || domain.Contains(addable, c)
	}

	var warnings []string
	var seen []domain.Condition
	for _, g := range p.Goals {
		if !reachable(g) && !domain.Contains(seen, g) {
			seen = append(seen, g)
			warnings = append(warnings, fmt.Sprintf("goal %q is not in the start state and no action adds it", g))
		}
	}
	for _, a := range p.Actions {
		for _, pre := range a.Preconditions {
			if !reachable(pre) && !domain.Contains(seen, pre) {
				seen = append(seen, pre)
				warnings = append(warnings, fmt.Sprintf("precondition %q of action %q is not in the start state and no action adds it", pre, a.Name))
			}
		}
	}
	return warnings
}
