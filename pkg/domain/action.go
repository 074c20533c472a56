package domain

// Action is a named world transition: it may execute once all of its
// preconditions are achieved, after which its Deletes become false and
// its Adds become true. An Action is never mutated after construction
// and may be applied any number of times.
type Action struct {
	// Name identifies the action in traces and logs. The planner
	// attaches no other meaning to it.
	Name string `yaml:"name" json:"name"`

	// Preconditions must all be achieved, in order, before the action
	// can execute.
	Preconditions []Condition `yaml:"preconditions" json:"preconditions"`

	// Adds are asserted true by execution.
	Adds []Condition `yaml:"adds" json:"adds"`

	// Deletes are asserted false by execution, strictly before Adds
	// are asserted.
	Deletes []Condition `yaml:"deletes" json:"deletes"`
}
