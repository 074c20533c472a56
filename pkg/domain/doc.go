// Package domain defines the planning vocabulary shared by the attain
// engine and its adapters: conditions, actions, world state, problem
// definitions and lifecycle events.
package domain
