package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/attain/internal/logging"
	"github.com/aretw0/attain/pkg/domain"
)

// DefaultMaxDepth bounds the achievement recursion. Well-formed
// problems stay nowhere near it; hitting it means the goal graph is
// cyclic and the run would never terminate on its own.
const DefaultMaxDepth = 1000

// Engine is the core achievement machine. It owns the mutable world
// state and the read-only action library for the duration of one
// planning run; independent runs get independent engines.
type Engine struct {
	state    domain.State
	library  domain.Library
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	maxDepth int
	applied  int
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMaxDepth overrides the recursion depth guard.
func WithMaxDepth(depth int) EngineOption {
	return func(e *Engine) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// NewEngine creates an engine over a private copy of the start state.
func NewEngine(start domain.State, library domain.Library, opts ...EngineOption) *Engine {
	e := &Engine{
		state:    start.Clone(),
		library:  library,
		logger:   logging.NewNop(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run attempts to achieve every goal in the order given, reporting
// overall success. It short-circuits on the first goal that fails;
// state mutations made along the way persist either way. The returned
// error is non-nil only when the depth guard fired.
func (e *Engine) Run(ctx context.Context, goals []domain.Condition) (bool, error) {
	for _, goal := range goals {
		ok, err := e.achieve(ctx, goal, 0)
		if err != nil {
			return false, err
		}
		if !ok {
			e.logger.Info("planning failed", "goal", goal, "actions", e.applied)
			return false, nil
		}
	}
	e.logger.Info("planning solved", "actions", e.applied)
	return true, nil
}

// State returns the world state as mutated by the run so far.
func (e *Engine) State() domain.State {
	return e.state
}

// achieve makes a single goal true: immediately when the state already
// holds it, otherwise by applying the first candidate action that
// succeeds. Candidates are tried in library order; a failed candidate's
// partial side effects are not rolled back.
func (e *Engine) achieve(ctx context.Context, goal domain.Condition, depth int) (bool, error) {
	if depth > e.maxDepth {
		return false, fmt.Errorf("achieving %q at depth %d: %w", goal, depth, domain.ErrDepthExceeded)
	}

	if e.state.Holds(goal) {
		e.logger.Debug("goal already holds", "goal", goal, "depth", depth)
		e.emitGoal(ctx, domain.EventGoalAchieved, goal, true)
		return true, nil
	}

	for _, op := range e.library.ActionsFor(goal) {
		ok, err := e.applyOp(ctx, op, depth)
		if err != nil {
			return false, err
		}
		if ok {
			e.emitGoal(ctx, domain.EventGoalAchieved, goal, false)
			return true, nil
		}
	}

	e.logger.Debug("goal not achievable", "goal", goal, "depth", depth)
	e.emitGoal(ctx, domain.EventGoalFailed, goal, false)
	return false, nil
}

// applyOp executes an action once every precondition has been achieved.
// Preconditions are attempted in order with no transactionality:
// earlier ones may have mutated the state even when a later one fails.
func (e *Engine) applyOp(ctx context.Context, op domain.Action, depth int) (bool, error) {
	for _, pre := range op.Preconditions {
		ok, err := e.achieve(ctx, pre, depth+1)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	e.applied++
	e.logger.Debug("executing action", "action", op.Name, "seq", e.applied)
	if e.hooks.OnActionApplied != nil {
		e.hooks.OnActionApplied(ctx, &domain.ActionEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventActionApplied},
			Action:    op.Name,
			Seq:       e.applied,
		})
	}
	e.state = e.state.Apply(op)
	return true, nil
}

func (e *Engine) emitGoal(ctx context.Context, typ domain.EventType, goal domain.Condition, alreadyHeld bool) {
	var fn func(context.Context, *domain.GoalEvent)
	if typ == domain.EventGoalAchieved {
		fn = e.hooks.OnGoalAchieved
	} else {
		fn = e.hooks.OnGoalFailed
	}
	if fn == nil {
		return
	}
	fn(ctx, &domain.GoalEvent{
		EventBase:   domain.EventBase{Timestamp: time.Now(), Type: typ},
		Goal:        goal,
		AlreadyHeld: alreadyHeld,
	})
}
