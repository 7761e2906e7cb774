package fsm

import "fmt"

// Machine is the runtime; not safe for concurrent use
type Machine[T any, S comparable, E comparable] struct {
	nodes map[S]*Node[T, S, E]

	active       S
	ticksInState int
	started      bool
}

func NewMachine[T any, S comparable, E comparable]() *Machine[T, S, E] {
	return &Machine[T, S, E]{
		nodes: make(map[S]*Node[T, S, E]),
	}
}

// AddState registers a node and returns it for lifecycle wiring
func (m *Machine[T, S, E]) AddState(id S, name string) *Node[T, S, E] {
	node := &Node[T, S, E]{ID: id, Name: name}
	m.nodes[id] = node
	return node
}

// AddTransition appends t to the source node
func (m *Machine[T, S, E]) AddTransition(source S, t Transition[T, S, E]) error {
	node, ok := m.nodes[source]
	if !ok {
		return fmt.Errorf("transition from unknown state %v", source)
	}
	if _, ok := m.nodes[t.Target]; !ok {
		return fmt.Errorf("transition from %s to unknown state %v", node.Name, t.Target)
	}
	node.Transitions = append(node.Transitions, t)
	return nil
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T, S, E]) Init(ctx T, initial S) error {
	node, ok := m.nodes[initial]
	if !ok {
		return fmt.Errorf("initial state %v not found", initial)
	}
	m.active = initial
	m.ticksInState = 0
	m.started = true
	for _, fn := range node.OnEnter {
		fn(ctx)
	}
	return nil
}

// Current returns the active state ID
func (m *Machine[T, S, E]) Current() S {
	return m.active
}

// CurrentName returns the active state's name, or "" before Init
func (m *Machine[T, S, E]) CurrentName() string {
	if !m.started {
		return ""
	}
	return m.nodes[m.active].Name
}

// TicksInState returns updates spent in the active state
func (m *Machine[T, S, E]) TicksInState() int {
	return m.ticksInState
}

// HandleEvent fires the first matching transition for ev
// Returns false when no transition applies; the machine is unchanged
func (m *Machine[T, S, E]) HandleEvent(ctx T, ev E) bool {
	t, ok := m.match(ctx, ev, false)
	if !ok {
		return false
	}
	m.fire(ctx, t)
	return true
}

// Update counts one tick in the active state and evaluates tick transitions
func (m *Machine[T, S, E]) Update(ctx T) bool {
	if !m.started {
		return false
	}
	m.ticksInState++

	var zero E
	t, ok := m.match(ctx, zero, true)
	if !ok {
		return false
	}
	m.fire(ctx, t)
	return true
}

func (m *Machine[T, S, E]) match(ctx T, ev E, tick bool) (Transition[T, S, E], bool) {
	if !m.started {
		return Transition[T, S, E]{}, false
	}
	for _, t := range m.nodes[m.active].Transitions {
		if t.Tick != tick {
			continue
		}
		if !tick && t.Event != ev {
			continue
		}
		if t.Guard == nil || t.Guard(ctx, m.ticksInState) {
			return t, true
		}
	}
	return Transition[T, S, E]{}, false
}

// fire runs exit, action, enter in that order
// The active state is switched before OnEnter so enter actions observe the target
func (m *Machine[T, S, E]) fire(ctx T, t Transition[T, S, E]) {
	for _, fn := range m.nodes[m.active].OnExit {
		fn(ctx)
	}
	if t.Action != nil {
		t.Action(ctx)
	}
	m.active = t.Target
	m.ticksInState = 0
	for _, fn := range m.nodes[t.Target].OnEnter {
		fn(ctx)
	}
}
