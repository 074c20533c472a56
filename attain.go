package attain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/attain/internal/logging"
	"github.com/aretw0/attain/internal/runtime"
	"github.com/aretw0/attain/pkg/domain"
)

// Planner is the high-level entry point for the attain library.
// It wraps the internal achievement engine and provides a simplified
// API for consumers. Each Planner owns an independent copy of the
// initial world state, so concurrent planners never observe each
// other's mutations.
type Planner struct {
	engine   *runtime.Engine
	goals    []domain.Condition
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	maxDepth int
	Name     string
}

// Option defines a functional option for configuring the Planner.
type Option func(*Planner)

// WithLifecycleHooks registers observability hooks. The OnActionApplied
// hook receives the run's trace, one event per applied action in
// execution order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Planner) {
		p.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the planner.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		p.logger = logger
	}
}

// WithMaxDepth overrides the recursion depth guard (default 1000).
// The guard only turns non-terminating runs into an error; it never
// changes the outcome of a run that terminates on its own.
func WithMaxDepth(depth int) Option {
	return func(p *Planner) {
		p.maxDepth = depth
	}
}

// New initializes a Planner for the given problem.
func New(prob *domain.Problem, opts ...Option) (*Planner, error) {
	if prob == nil {
		return nil, fmt.Errorf("problem is required")
	}
	if len(prob.Goals) == 0 {
		return nil, domain.ErrNoGoals
	}

	p := &Planner{
		Name:  prob.Name,
		goals: append([]domain.Condition(nil), prob.Goals...),
	}
	for _, opt := range opts {
		opt(p)
	}

	// Ensure logger is initialized (so we don't pass nil to the engine,
	// which would overwrite its default).
	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	if p.Name != "" {
		p.logger = p.logger.With("problem", p.Name)
	}

	engineOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(p.hooks),
		runtime.WithLogger(p.logger),
	}
	if p.maxDepth > 0 {
		engineOpts = append(engineOpts, runtime.WithMaxDepth(p.maxDepth))
	}

	p.engine = runtime.NewEngine(domain.NewState(prob.Start...), prob.Actions, engineOpts...)

	return p, nil
}

// Solve attempts to achieve every goal in order against the planner's
// world state. It reports whether all goals were achieved; the returned
// error is non-nil only when the recursion depth guard fired, meaning
// planning did not terminate.
func (p *Planner) Solve(ctx context.Context) (bool, error) {
	return p.engine.Run(ctx, p.goals)
}

// State returns the world state as mutated by the run so far.
func (p *Planner) State() domain.State {
	return p.engine.State()
}
