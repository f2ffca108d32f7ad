package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseFlappy(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseFlappy(embedded) failed: %v", err)
	}

	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig() differ:\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestGroundLevel(t *testing.T) {
	p := FlappyPlayfield{Width: 400, Height: 600, GroundHeight: 80}
	if got := p.GroundLevel(); got != 520 {
		t.Errorf("GroundLevel() = %v, expected 520", got)
	}
}

func TestParseFlappyPartialOverride(t *testing.T) {
	data := []byte(`
obstacles:
  gap_size: 120
  spawn_interval: 2s
`)
	cfg, err := ParseFlappy(data)
	if err != nil {
		t.Fatalf("ParseFlappy failed: %v", err)
	}

	if cfg.Obstacles.GapSize != 120 {
		t.Errorf("GapSize = %v, expected 120", cfg.Obstacles.GapSize)
	}
	if cfg.Obstacles.SpawnInterval != 2*time.Second {
		t.Errorf("SpawnInterval = %v, expected 2s", cfg.Obstacles.SpawnInterval)
	}
	// Untouched sections keep defaults
	if cfg.Physics.JumpImpulse != -8 {
		t.Errorf("JumpImpulse = %v, expected default -8", cfg.Physics.JumpImpulse)
	}
	if cfg.Obstacles.Width != 52 {
		t.Errorf("Width = %v, expected default 52", cfg.Obstacles.Width)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		want   string
	}{
		{"zero playfield", func(c *FlappyConfig) { c.Playfield.Width = 0 }, "playfield"},
		{"ground taller than playfield", func(c *FlappyConfig) { c.Playfield.GroundHeight = 700 }, "ground_height"},
		{"downward jump", func(c *FlappyConfig) { c.Physics.JumpImpulse = 3 }, "jump_impulse"},
		{"no spawn interval", func(c *FlappyConfig) { c.Obstacles.SpawnInterval = 0 }, "spawn_interval"},
		{"loud audio", func(c *FlappyConfig) { c.Audio.Volume = 2 }, "volume"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateAllowsOversizedGap(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Obstacles.GapSize = 1000

	if err := cfg.Validate(); err != nil {
		t.Errorf("oversized gap is clamped by the generator, not rejected: %v", err)
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.25\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.25 {
		t.Errorf("Gravity = %v, expected 0.25", cfg.Physics.Gravity)
	}
}

func TestLoadFlappyMissingCustomPath(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestLoadFlappyInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("obstacles: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := LoadFlappy(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	cfg, err := ParseFlappy(data)
	if err != nil {
		t.Fatalf("ParseFlappy(Marshal()) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}
