package domain

// Condition is an atomic fact about the world. The planner never looks
// inside it: two conditions denote the same fact iff they compare equal.
type Condition string
