package attain

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/attain/pkg/domain"
)

// Runner executes a planning problem end to end using provided IO.
// It writes one "Executing operation: <name>." line per applied action,
// in execution order, followed by a terminal "SOLVED." or "FAILED."
// line. This allows for easy testing and integration with different
// frontends (CLI, services, etc).
//
// The runner installs its own OnActionApplied hook; callers needing
// custom tracing should use the Planner API directly.
type Runner struct {
	Output io.Writer
	// Quiet suppresses the per-action trace, leaving only the outcome.
	Quiet bool

	opts []Option
}

// NewRunner creates a new Runner. Use the Output field to direct where
// results are written (typically os.Stdout). Planner options (logger,
// recursion limit) are forwarded to each run.
func NewRunner(opts ...Option) *Runner {
	return &Runner{opts: opts}
}

// Run solves the problem and reports the result on Output. The boolean
// mirrors the terminal SOLVED/FAILED line; the error is reserved for
// invalid input and non-terminating runs.
func (r *Runner) Run(ctx context.Context, prob *domain.Problem) (bool, error) {
	writer := r.Output
	if writer == nil {
		return false, fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	opts := append([]Option(nil), r.opts...)
	if !r.Quiet {
		opts = append(opts, WithLifecycleHooks(domain.LifecycleHooks{
			OnActionApplied: func(_ context.Context, ev *domain.ActionEvent) {
				fmt.Fprintf(writer, "Executing operation: %s.\n", ev.Action)
			},
		}))
	}

	planner, err := New(prob, opts...)
	if err != nil {
		return false, err
	}

	solved, err := planner.Solve(ctx)
	if err != nil {
		return false, err
	}

	if solved {
		fmt.Fprintln(writer, "SOLVED.")
	} else {
		fmt.Fprintln(writer, "FAILED.")
	}
	return solved, nil
}
