// Package fsm is a small table-driven finite state machine
// T is the context passed to guards and actions, S the state ID, E the event ID
package fsm

// GuardFunc returns true if the transition may fire
// ticks is the number of updates spent in the source state
type GuardFunc[T any] func(ctx T, ticks int) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)

// Node is one state
type Node[T any, S comparable, E comparable] struct {
	ID   S
	Name string

	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Evaluated in insertion order; first passing guard wins
	Transitions []Transition[T, S, E]
}

// Transition links two states
// Tick transitions are evaluated by Update and ignore Event
type Transition[T any, S comparable, E comparable] struct {
	Target S
	Event  E
	Tick   bool
	Guard  GuardFunc[T]  // nil = always
	Action ActionFunc[T] // runs between exit and enter
}

// TicksAtLeast is a guard passing once n updates were spent in the state
func TicksAtLeast[T any](n int) GuardFunc[T] {
	return func(_ T, ticks int) bool {
		return ticks >= n
	}
}
