package domain

// Problem bundles everything a planning run needs: the initial world
// state, the goals to achieve, and the action library.
type Problem struct {
	// Name labels the problem in logs and CLI output.
	Name string `yaml:"name" json:"name"`

	// Start is the set of conditions true before planning begins.
	Start []Condition `yaml:"start" json:"start"`

	// Goals are achieved in the order given; the run fails on the
	// first goal that cannot be achieved.
	Goals []Condition `yaml:"goals" json:"goals"`

	// Actions is the library available to the run.
	Actions Library `yaml:"actions" json:"actions"`
}
