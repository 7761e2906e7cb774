package component

import "testing"

// TestEffectCountdown verifies remaining drops by exactly one per tick and the flag clears at zero
func TestEffectCountdown(t *testing.T) {
	var e Effect
	e.Activate(5)

	for want := 4; want >= 1; want-- {
		e.Tick()
		if !e.Active {
			t.Fatalf("Effect deactivated early with %d ticks left", want)
		}
		if e.Remaining != want {
			t.Fatalf("Expected remaining %d, got %d", want, e.Remaining)
		}
	}

	e.Tick()
	if e.Active {
		t.Error("Expected effect inactive when remaining reaches 0")
	}
	if e.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", e.Remaining)
	}

	// Ticking while inactive is a no-op
	e.Tick()
	if e.Active || e.Remaining != 0 {
		t.Errorf("Tick on inactive effect changed state: %+v", e)
	}
}

func TestEffectRefreshDoesNotStack(t *testing.T) {
	var e Effect
	e.Activate(300)
	for i := 0; i < 100; i++ {
		e.Tick()
	}
	e.Activate(300)
	if e.Remaining != 300 {
		t.Errorf("Expected refresh to full 300, got %d", e.Remaining)
	}
}

func TestEffectNonPositiveDuration(t *testing.T) {
	var e Effect
	e.Activate(10)
	e.Activate(0)
	if e.Active || e.Remaining != 0 {
		t.Errorf("Activate(0) should leave effect inactive, got %+v", e)
	}
}

func TestAbilityTriggerAndCooldown(t *testing.T) {
	var a Ability
	if !a.Trigger(3, 10) {
		t.Fatal("Expected first trigger to succeed")
	}
	if a.Trigger(3, 10) {
		t.Error("Trigger must fail while active")
	}

	for i := 0; i < 3; i++ {
		a.Tick()
	}
	if a.Active {
		t.Error("Expected ability window closed after 3 ticks")
	}
	if a.Trigger(3, 10) {
		t.Error("Trigger must fail while cooling down")
	}

	for i := 0; i < 7; i++ {
		a.Tick()
	}
	if !a.Ready() {
		t.Errorf("Expected ready after cooldown, cooldown=%d", a.Cooldown)
	}
	if !a.Trigger(3, 10) {
		t.Error("Expected trigger after cooldown")
	}
}

func TestStatusEffectsUniformTick(t *testing.T) {
	var s StatusEffects
	s.Activate(StatusShield, 2)
	s.Activate(StatusSlowTime, 1)
	s.Activate(StatusNone, 50)

	s.Tick()
	if !s.Active(StatusShield) || s.Remaining(StatusShield) != 1 {
		t.Errorf("Shield should have 1 tick left, got %d", s.Remaining(StatusShield))
	}
	if s.Active(StatusSlowTime) {
		t.Error("SlowTime should have expired")
	}
	if s.Active(StatusNone) {
		t.Error("StatusNone must never be active")
	}
}
