package component

import (
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// Player is the controlled avatar
type Player struct {
	Box       vmath.Rect
	Speed     float64
	Health    int
	MaxHealth int

	Status  StatusEffects
	Dash    Ability
	Special Ability
}

// Center returns the box midpoint
func (p *Player) Center() vmath.Vec2 {
	return p.Box.Center()
}

// Damage removes health, clamped at zero; returns true when the player is dead
func (p *Player) Damage(n int) bool {
	p.Health -= n
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health == 0
}

// Heal adds health, capped at MaxHealth
func (p *Player) Heal(n int) {
	p.Health += n
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// Dead reports zero health
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// TickTimers advances statuses and both abilities
func (p *Player) TickTimers() {
	p.Status.Tick()
	p.Dash.Tick()
	p.Special.Tick()
}
