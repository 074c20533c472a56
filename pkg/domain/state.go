package domain

// State is the ordered set of conditions currently true. It is owned by
// exactly one planning run and mutated only by successful action
// application; independent runs must never share a State.
type State []Condition

// NewState builds a state holding the given conditions.
func NewState(conds ...Condition) State {
	s := make(State, len(conds))
	copy(s, conds)
	return s
}

// Holds reports whether the condition is currently true.
func (s State) Holds(c Condition) bool {
	return Contains(s, c)
}

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Apply returns the state after executing an action: the action's
// Deletes are removed first, then its Adds appended. A condition named
// in both lists therefore ends up present.
func (s State) Apply(a Action) State {
	return State(Union(Difference(s, a.Deletes), a.Adds))
}
