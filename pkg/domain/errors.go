package domain

import "errors"

// ErrDepthExceeded is returned when the achievement recursion exceeds
// the configured depth limit, meaning planning did not terminate.
var ErrDepthExceeded = errors.New("planning recursion depth exceeded")

// ErrNoGoals is returned when a problem declares nothing to achieve.
var ErrNoGoals = errors.New("problem has no goals")
