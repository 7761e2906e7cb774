package fsm

import (
	"strings"
	"testing"
)

type light int

const (
	lightRed light = iota
	lightGreen
	lightYellow
)

type signal int

const (
	signalNone signal = iota
	signalGo
	signalStop
)

type trace struct {
	log   []string
	allow bool
}

func (tr *trace) add(s string) { tr.log = append(tr.log, s) }

func buildLight(t *testing.T) *Machine[*trace, light, signal] {
	t.Helper()
	m := NewMachine[*trace, light, signal]()
	red := m.AddState(lightRed, "Red")
	green := m.AddState(lightGreen, "Green")
	m.AddState(lightYellow, "Yellow")

	red.OnEnter = append(red.OnEnter, func(tr *trace) { tr.add("enter:red") })
	red.OnExit = append(red.OnExit, func(tr *trace) { tr.add("exit:red") })
	green.OnEnter = append(green.OnEnter, func(tr *trace) { tr.add("enter:green") })

	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(m.AddTransition(lightRed, Transition[*trace, light, signal]{
		Target: lightGreen,
		Event:  signalGo,
		Guard:  func(tr *trace, _ int) bool { return tr.allow },
		Action: func(tr *trace) { tr.add("action") },
	}))
	must(m.AddTransition(lightGreen, Transition[*trace, light, signal]{
		Target: lightYellow,
		Tick:   true,
		Guard:  TicksAtLeast[*trace](3),
	}))
	must(m.AddTransition(lightYellow, Transition[*trace, light, signal]{
		Target: lightRed,
		Event:  signalStop,
	}))
	return m
}

func TestInitRunsOnEnter(t *testing.T) {
	m := buildLight(t)
	tr := &trace{}
	if err := m.Init(tr, lightRed); err != nil {
		t.Fatal(err)
	}
	if m.Current() != lightRed || m.CurrentName() != "Red" {
		t.Errorf("Expected Red, got %s", m.CurrentName())
	}
	if strings.Join(tr.log, ",") != "enter:red" {
		t.Errorf("Unexpected log %v", tr.log)
	}
}

func TestGuardBlocksEvent(t *testing.T) {
	m := buildLight(t)
	tr := &trace{}
	m.Init(tr, lightRed)

	if m.HandleEvent(tr, signalGo) {
		t.Error("Guard should have blocked transition")
	}
	if m.Current() != lightRed {
		t.Error("State changed despite blocked guard")
	}

	tr.allow = true
	if !m.HandleEvent(tr, signalGo) {
		t.Fatal("Expected transition")
	}
	want := "enter:red,exit:red,action,enter:green"
	if got := strings.Join(tr.log, ","); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestUnknownEventIgnored(t *testing.T) {
	m := buildLight(t)
	tr := &trace{}
	m.Init(tr, lightRed)
	if m.HandleEvent(tr, signalStop) {
		t.Error("Stop is not legal from Red")
	}
}

func TestTickTransition(t *testing.T) {
	m := buildLight(t)
	tr := &trace{allow: true}
	m.Init(tr, lightRed)
	m.HandleEvent(tr, signalGo)

	for i := 0; i < 2; i++ {
		if m.Update(tr) {
			t.Fatalf("Transitioned early at update %d", i+1)
		}
	}
	if m.TicksInState() != 2 {
		t.Errorf("Expected 2 ticks in state, got %d", m.TicksInState())
	}
	if !m.Update(tr) {
		t.Fatal("Expected tick transition on third update")
	}
	if m.Current() != lightYellow {
		t.Errorf("Expected Yellow, got %s", m.CurrentName())
	}
	if m.TicksInState() != 0 {
		t.Error("Ticks should reset on transition")
	}
	// Tick transitions are not reachable via events
	if m.HandleEvent(tr, signalNone) {
		t.Error("Zero event must not fire transitions")
	}
}

func TestAddTransitionUnknown(t *testing.T) {
	m := NewMachine[*trace, light, signal]()
	m.AddState(lightRed, "Red")
	if err := m.AddTransition(lightGreen, Transition[*trace, light, signal]{Target: lightRed}); err == nil {
		t.Error("Expected error for unknown source")
	}
	if err := m.AddTransition(lightRed, Transition[*trace, light, signal]{Target: lightYellow}); err == nil {
		t.Error("Expected error for unknown target")
	}
	if err := m.Init(&trace{}, lightGreen); err == nil {
		t.Error("Expected error for unknown initial")
	}
}
