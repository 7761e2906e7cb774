package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/ninja-dodge/parameter"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvMute, "")
	t.Setenv(EnvVolume, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Missing config must not error, got %v", err)
	}
	if cfg.World.Width != parameter.WorldWidth || cfg.World.Height != parameter.WorldHeight {
		t.Errorf("Expected default world, got %+v", cfg.World)
	}
	if cfg.Spawn.Hazard.Floor != parameter.HazardDelayFloor {
		t.Errorf("Expected default hazard floor, got %d", cfg.Spawn.Hazard.Floor)
	}
	if cfg.Storage.Path != DefaultDatabasePath {
		t.Errorf("Expected default db path, got %s", cfg.Storage.Path)
	}
}

func TestLoadOverridesAndClamps(t *testing.T) {
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvMute, "")
	t.Setenv(EnvVolume, "")

	path := filepath.Join(t.TempDir(), "ninja-dodge.yaml")
	body := `
world:
  width: 1024
  height: 10
player:
  speed: 8.5
spawn:
  hazard:
    base: 40
    step: 2
    floor: 0
audio:
  volume: 3
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Width != 1024 {
		t.Errorf("Expected width 1024, got %d", cfg.World.Width)
	}
	if cfg.World.Height != 150 {
		t.Errorf("Expected height clamped to 150, got %d", cfg.World.Height)
	}
	if cfg.Player.Speed != 8.5 {
		t.Errorf("Expected speed 8.5, got %f", cfg.Player.Speed)
	}
	if cfg.Player.MaxHealth != parameter.PlayerMaxHealth {
		t.Errorf("Unset field should keep default, got %d", cfg.Player.MaxHealth)
	}
	if cfg.Spawn.Hazard.Floor != 1 {
		t.Errorf("Spawn floor must never reach zero, got %d", cfg.Spawn.Hazard.Floor)
	}
	if cfg.Audio.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", cfg.Audio.Volume)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("world: [unterminated"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvDatabase, "/tmp/other.db")
	t.Setenv(EnvMute, "true")
	t.Setenv(EnvVolume, "25")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage.Path != "/tmp/other.db" {
		t.Errorf("Expected env db path, got %s", cfg.Storage.Path)
	}
	if !cfg.Audio.Muted {
		t.Error("Expected muted from env")
	}
	if cfg.Audio.Volume != 0.25 {
		t.Errorf("Expected volume 0.25, got %f", cfg.Audio.Volume)
	}
	if !cfg.Audio.MutedFromEnv || !cfg.Audio.VolumeFromEnv {
		t.Errorf("Expected env markers set, got %+v", cfg.Audio)
	}
}

func TestEnvMarkersUnsetWithoutEnv(t *testing.T) {
	t.Setenv(EnvMute, "")
	t.Setenv(EnvVolume, "not-a-number")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Audio.MutedFromEnv || cfg.Audio.VolumeFromEnv {
		t.Errorf("Expected no env markers, got %+v", cfg.Audio)
	}
}

func TestClampDelayOrdering(t *testing.T) {
	cfg := Default()
	cfg.Spawn.Enemy = DelayConfig{Base: 10, Step: 50, Floor: 30}
	Clamp(cfg)
	d := cfg.Spawn.Enemy
	if d.Base < d.Floor {
		t.Errorf("Base %d below floor %d", d.Base, d.Floor)
	}
	if d.Step > d.Base {
		t.Errorf("Step %d exceeds base %d", d.Step, d.Base)
	}
}
