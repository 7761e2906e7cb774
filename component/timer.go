package component

// Effect is a countdown-gated flag; Remaining is meaningful only while Active
type Effect struct {
	Active    bool
	Remaining int
}

// Activate starts or refreshes the countdown; durations do not stack
// A non-positive duration leaves the effect inactive
func (e *Effect) Activate(ticks int) {
	if ticks <= 0 {
		e.Active = false
		e.Remaining = 0
		return
	}
	e.Active = true
	e.Remaining = ticks
}

// Tick consumes one tick; deactivates exactly when Remaining reaches zero
func (e *Effect) Tick() {
	if !e.Active {
		return
	}
	e.Remaining--
	if e.Remaining <= 0 {
		e.Remaining = 0
		e.Active = false
	}
}

// Clear deactivates without waiting for the countdown
func (e *Effect) Clear() {
	e.Active = false
	e.Remaining = 0
}

// Ability pairs an active window with an independent cooldown
type Ability struct {
	Effect
	Cooldown int
}

// Trigger starts the ability if it is off cooldown and not running
func (a *Ability) Trigger(duration, cooldown int) bool {
	if a.Active || a.Cooldown > 0 {
		return false
	}
	a.Activate(duration)
	a.Cooldown = cooldown
	return true
}

// Tick advances both the active window and the cooldown
func (a *Ability) Tick() {
	a.Effect.Tick()
	if a.Cooldown > 0 {
		a.Cooldown--
	}
}

// Ready reports whether Trigger would succeed
func (a Ability) Ready() bool {
	return !a.Active && a.Cooldown <= 0
}
