package component

import (
	"testing"

	"github.com/lixenwraith/ninja-dodge/vmath"
)

func newTestPlayer() *Player {
	return &Player{
		Box:       vmath.NewRect(100, 100, 40, 40),
		Speed:     6,
		Health:    3,
		MaxHealth: 3,
	}
}

func TestPlayerHealthClamp(t *testing.T) {
	p := newTestPlayer()
	if p.Damage(1) {
		t.Error("Player should survive first hit")
	}
	if !p.Damage(5) {
		t.Error("Expected lethal damage to report death")
	}
	if p.Health != 0 {
		t.Errorf("Health must clamp at 0, got %d", p.Health)
	}

	p.Heal(10)
	if p.Health != p.MaxHealth {
		t.Errorf("Heal must cap at max, got %d", p.Health)
	}
}

func TestPowerUpApply(t *testing.T) {
	tests := []struct {
		kind   PowerUpKind
		status StatusKind
		ticks  int
	}{
		{PowerUpSpeed, StatusSpeedBoost, 300},
		{PowerUpShield, StatusShield, 600},
		{PowerUpSlowTime, StatusSlowTime, 300},
		{PowerUpMultiShot, StatusMultiShot, 450},
		{PowerUpInvincible, StatusInvincible, 300},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			p := newTestPlayer()
			tc.kind.Apply(p)
			if !p.Status.Active(tc.status) {
				t.Fatalf("Expected %s active", tc.status)
			}
			if got := p.Status.Remaining(tc.status); got != tc.ticks {
				t.Errorf("Expected %d ticks, got %d", tc.ticks, got)
			}
		})
	}

	p := newTestPlayer()
	p.Health = 1
	PowerUpHealth.Apply(p)
	if p.Health != 2 {
		t.Errorf("Health power-up should restore 1, got %d", p.Health)
	}
	for k := StatusKind(0); k < StatusCount; k++ {
		if p.Status.Active(k) {
			t.Errorf("Health power-up must not grant %s", k)
		}
	}
}

func TestStagePoolsWiden(t *testing.T) {
	// Every kind table must contain at least one kind available at stage 1
	found := false
	for _, s := range HazardSpecs {
		if s.MinStage == 1 {
			found = true
		}
	}
	if !found {
		t.Error("No stage-1 hazard kind")
	}
	if EnemySpecs[EnemyGenin].MinStage != 1 {
		t.Error("Weakest enemy must be available at stage 1")
	}
	for k := EnemyKind(1); k < EnemyKindCount; k++ {
		if EnemySpecs[k].Speed < EnemySpecs[k-1].Speed || EnemySpecs[k].Health < EnemySpecs[k-1].Health {
			t.Errorf("Enemy tiers must be ordered weakest first, %s breaks order", k)
		}
	}
}

func TestHazardOutOfBounds(t *testing.T) {
	world := vmath.NewRect(0, 0, 800, 600)
	tests := []struct {
		name string
		h    Hazard
		want bool
	}{
		{"down inside", Hazard{Box: vmath.NewRect(10, 590, 20, 20), Dir: DirDown}, false},
		{"down below", Hazard{Box: vmath.NewRect(10, 601, 20, 20), Dir: DirDown}, true},
		{"down above spawn", Hazard{Box: vmath.NewRect(10, -20, 20, 20), Dir: DirDown}, false},
		{"left past edge", Hazard{Box: vmath.NewRect(-21, 10, 20, 20), Dir: DirLeft}, true},
		{"left spawn", Hazard{Box: vmath.NewRect(800, 10, 20, 20), Dir: DirLeft}, false},
		{"right past edge", Hazard{Box: vmath.NewRect(801, 10, 20, 20), Dir: DirRight}, true},
		{"right spawn", Hazard{Box: vmath.NewRect(-20, 10, 20, 20), Dir: DirRight}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.h.OutOfBounds(world); got != tc.want {
				t.Errorf("OutOfBounds = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEnemyHurt(t *testing.T) {
	e := NewEnemy(EnemyChunin, vmath.Vec2{})
	if e.Hurt(1) {
		t.Error("Chunin should survive one point of damage")
	}
	if !e.Hurt(1) {
		t.Error("Expected killing blow")
	}
	if e.Hurt(1) {
		t.Error("Dead enemy cannot be killed twice")
	}
	if e.Health != 0 {
		t.Errorf("Health must clamp at 0, got %d", e.Health)
	}
}
