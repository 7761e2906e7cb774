package main

import (
	"time"

	"github.com/lixenwraith/ninja-dodge/config"
	"github.com/lixenwraith/ninja-dodge/engine"
	"github.com/lixenwraith/ninja-dodge/parameter"
)

// tuningFromConfig maps a clamped config onto session tuning
func tuningFromConfig(cfg *config.Config) engine.Tuning {
	curve := func(d config.DelayConfig) engine.DelayCurve {
		return engine.DelayCurve{Base: d.Base, Step: d.Step, Floor: d.Floor}
	}
	return engine.Tuning{
		WorldWidth:      float64(cfg.World.Width),
		WorldHeight:     float64(cfg.World.Height),
		SplashTicks:     cfg.World.SplashTicks,
		PlayerSpeed:     cfg.Player.Speed,
		PlayerMaxHealth: cfg.Player.MaxHealth,
		HazardDelay:     curve(cfg.Spawn.Hazard),
		EnemyDelay:      curve(cfg.Spawn.Enemy),
		PowerUpDelay:    curve(cfg.Spawn.PowerUp),
		EnemyMinLevel:   cfg.Spawn.EnemyMinLevel,
	}
}

// settingsFromConfig seeds preferences used until the player saves their own
func settingsFromConfig(cfg *config.Config) *engine.Settings {
	st := engine.DefaultSettings()
	st.Volume = cfg.Audio.Volume
	st.Muted = cfg.Audio.Muted
	return &st
}

// settingsOverrideFromConfig pins the audio values that came from the environment
func settingsOverrideFromConfig(cfg *config.Config) engine.SettingsOverride {
	var o engine.SettingsOverride
	if cfg.Audio.VolumeFromEnv {
		v := cfg.Audio.Volume
		o.Volume = &v
	}
	if cfg.Audio.MutedFromEnv {
		m := cfg.Audio.Muted
		o.Muted = &m
	}
	return o
}

// tickInterval converts the configured rate to a ticker period
func tickInterval(cfg *config.Config) time.Duration {
	rate := cfg.World.TickRate
	if rate <= 0 {
		rate = parameter.TicksPerSecond
	}
	return time.Second / time.Duration(rate)
}
