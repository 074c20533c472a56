package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventActionApplied EventType = "action_applied"
	EventGoalAchieved  EventType = "goal_achieved"
	EventGoalFailed    EventType = "goal_failed"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ActionEvent records one successful action application. The sequence
// of ActionEvents emitted during a run, in order, is the run's trace —
// the only record of the plan the engine produces.
type ActionEvent struct {
	EventBase
	Action string `json:"action"`
	// Seq is the 1-based position of this application in the trace.
	Seq int `json:"seq"`
}

// GoalEvent records the resolution of a goal attempt, top-level or
// recursive.
type GoalEvent struct {
	EventBase
	Goal Condition `json:"goal"`
	// AlreadyHeld is true when the goal was satisfied by the current
	// state without executing any action.
	AlreadyHeld bool `json:"already_held,omitempty"`
}

// LifecycleHooks defines callbacks for planner observability. Any field
// may be nil.
type LifecycleHooks struct {
	OnActionApplied func(context.Context, *ActionEvent)
	OnGoalAchieved  func(context.Context, *GoalEvent)
	OnGoalFailed    func(context.Context, *GoalEvent)
}
