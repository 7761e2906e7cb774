package main

import (
	"testing"
	"time"

	"github.com/lixenwraith/ninja-dodge/config"
	"github.com/lixenwraith/ninja-dodge/engine"
)

func TestTuningFromDefaultConfig(t *testing.T) {
	got := tuningFromConfig(config.Default())
	want := engine.DefaultTuning()
	if got != want {
		t.Errorf("Expected default config to match default tuning\n got %+v\nwant %+v", got, want)
	}
}

func TestTuningFromConfigOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.World.Width = 1024
	cfg.Player.MaxHealth = 5
	cfg.Spawn.Hazard = config.DelayConfig{Base: 30, Step: 3, Floor: 6}
	cfg.Spawn.EnemyMinLevel = 4

	tn := tuningFromConfig(cfg)
	if tn.WorldWidth != 1024 {
		t.Errorf("Expected width 1024, got %v", tn.WorldWidth)
	}
	if tn.PlayerMaxHealth != 5 {
		t.Errorf("Expected max health 5, got %d", tn.PlayerMaxHealth)
	}
	if tn.HazardDelay.At(1) != 30 || tn.HazardDelay.At(100) != 6 {
		t.Errorf("Expected hazard curve 30..6, got %d..%d", tn.HazardDelay.At(1), tn.HazardDelay.At(100))
	}
	if tn.EnemyMinLevel != 4 {
		t.Errorf("Expected enemy min level 4, got %d", tn.EnemyMinLevel)
	}
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Audio.Volume = 0.3
	cfg.Audio.Muted = true

	st := settingsFromConfig(cfg)
	if st.Volume != 0.3 || !st.Muted || st.ShowFPS {
		t.Errorf("Unexpected settings %+v", *st)
	}
}

func TestTickInterval(t *testing.T) {
	cfg := config.Default()
	cfg.World.TickRate = 50
	if got := tickInterval(cfg); got != 20*time.Millisecond {
		t.Errorf("Expected 20ms, got %v", got)
	}
}

func TestSettingsOverrideFromConfig(t *testing.T) {
	cfg := config.Default()
	if o := settingsOverrideFromConfig(cfg); o.Volume != nil || o.Muted != nil {
		t.Errorf("Expected empty override without env values, got %+v", o)
	}

	cfg.Audio.Volume = 0.4
	cfg.Audio.VolumeFromEnv = true
	cfg.Audio.Muted = true
	cfg.Audio.MutedFromEnv = true

	o := settingsOverrideFromConfig(cfg)
	if o.Volume == nil || *o.Volume != 0.4 {
		t.Errorf("Expected pinned volume 0.4, got %v", o.Volume)
	}
	if o.Muted == nil || !*o.Muted {
		t.Errorf("Expected pinned mute, got %v", o.Muted)
	}
}
