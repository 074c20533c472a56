package domain

// Library is the ordered, read-only collection of actions available to
// a planning run. Order matters: candidates for a goal are tried in
// library order.
type Library []Action

// ActionsFor returns the subsequence of the library whose Adds contain
// the goal, in library order, without deduplication. An empty result is
// the normal "no candidates" outcome, not an error.
func (l Library) ActionsFor(goal Condition) []Action {
	var res []Action
	for _, a := range l {
		if Contains(a.Adds, goal) {
			res = append(res, a)
		}
	}
	return res
}
