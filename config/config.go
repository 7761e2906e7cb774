// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/ninja-dodge/parameter"
)

// Environment overrides
const (
	EnvDatabase = "NINJA_DODGE_DB"
	EnvMute     = "NINJA_DODGE_MUTE"
	EnvVolume   = "NINJA_DODGE_VOLUME"
)

// DefaultDatabasePath is used when neither file nor flag names one
const DefaultDatabasePath = "ninja-dodge.db"

// Config mirrors ninja-dodge.yaml
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Storage StorageConfig `yaml:"storage"`
	Audio   AudioConfig   `yaml:"audio"`
}

type WorldConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	TickRate    int `yaml:"tick_rate"`
	SplashTicks int `yaml:"splash_ticks"`
}

type PlayerConfig struct {
	Speed     float64 `yaml:"speed"`
	MaxHealth int     `yaml:"max_health"`
}

// DelayConfig is one spawn channel: delay = max(floor, base - step*(level-1))
type DelayConfig struct {
	Base  int `yaml:"base"`
	Step  int `yaml:"step"`
	Floor int `yaml:"floor"`
}

type SpawnConfig struct {
	Hazard        DelayConfig `yaml:"hazard"`
	Enemy         DelayConfig `yaml:"enemy"`
	PowerUp       DelayConfig `yaml:"powerup"`
	EnemyMinLevel int         `yaml:"enemy_min_level"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type AudioConfig struct {
	Volume float64 `yaml:"volume"`
	Muted  bool    `yaml:"muted"`

	// Set when the value came from the environment; env values win over saved settings
	VolumeFromEnv bool `yaml:"-"`
	MutedFromEnv  bool `yaml:"-"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:       parameter.WorldWidth,
			Height:      parameter.WorldHeight,
			TickRate:    parameter.TicksPerSecond,
			SplashTicks: parameter.SplashTicks,
		},
		Player: PlayerConfig{
			Speed:     parameter.PlayerBaseSpeed,
			MaxHealth: parameter.PlayerMaxHealth,
		},
		Spawn: SpawnConfig{
			Hazard:        DelayConfig{parameter.HazardDelayBase, parameter.HazardDelayStep, parameter.HazardDelayFloor},
			Enemy:         DelayConfig{parameter.EnemyDelayBase, parameter.EnemyDelayStep, parameter.EnemyDelayFloor},
			PowerUp:       DelayConfig{parameter.PowerUpDelayBase, parameter.PowerUpDelayStep, parameter.PowerUpDelayFloor},
			EnemyMinLevel: parameter.EnemyMinLevel,
		},
		Storage: StorageConfig{Path: DefaultDatabasePath},
		Audio:   AudioConfig{Volume: parameter.AudioDefaultVolume},
	}
}

// Load reads path over the defaults, applies environment overrides and clamps
// A missing file is not an error
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("config: %s not found, using defaults", path)
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	Clamp(cfg)
	return cfg, nil
}

// applyEnv overlays environment variables; malformed values are ignored
func (c *Config) applyEnv() {
	if p := os.Getenv(EnvDatabase); p != "" {
		c.Storage.Path = p
	}
	if muted := os.Getenv(EnvMute); muted != "" {
		if val, err := strconv.ParseBool(muted); err == nil {
			c.Audio.Muted = val
			c.Audio.MutedFromEnv = true
		}
	}
	// Volume as 0-100
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.Volume = float64(val) / 100.0
			c.Audio.VolumeFromEnv = true
		}
	}
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func clampFloat(v, minV, maxV float64) float64 {
	if math.IsNaN(v) {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func clampDelay(d *DelayConfig) {
	d.Floor = clampInt(d.Floor, 1, 10000)
	d.Base = clampInt(d.Base, d.Floor, 100000)
	d.Step = clampInt(d.Step, 0, d.Base)
}

// Clamp enforces hard safety bounds
// It mutates cfg in-place so user-provided values are accepted within sane limits
func Clamp(cfg *Config) {
	if cfg == nil {
		return
	}

	// --- world ---
	cfg.World.Width = clampInt(cfg.World.Width, 200, 4000)
	cfg.World.Height = clampInt(cfg.World.Height, 150, 3000)
	cfg.World.TickRate = clampInt(cfg.World.TickRate, 10, 240)
	cfg.World.SplashTicks = clampInt(cfg.World.SplashTicks, 0, 3600)

	// --- player ---
	cfg.Player.Speed = clampFloat(cfg.Player.Speed, 1.0, 30.0)
	cfg.Player.MaxHealth = clampInt(cfg.Player.MaxHealth, 1, 20)

	// --- spawn ---
	clampDelay(&cfg.Spawn.Hazard)
	clampDelay(&cfg.Spawn.Enemy)
	clampDelay(&cfg.Spawn.PowerUp)
	cfg.Spawn.EnemyMinLevel = clampInt(cfg.Spawn.EnemyMinLevel, 1, 1000)

	// --- audio ---
	cfg.Audio.Volume = clampFloat(cfg.Audio.Volume, 0, 1)
}
