package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults differ from Default():\n got %+v\nwant %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestDefaultConstants(t *testing.T) {
	cfg := Default()

	if cfg.Pipes.Opening != cfg.Board.Height/4 {
		t.Errorf("opening = %d, expected board height / 4 = %d", cfg.Pipes.Opening, cfg.Board.Height/4)
	}
	if got := cfg.TickInterval(); got != time.Second/60 {
		t.Errorf("TickInterval() = %v, expected %v", got, time.Second/60)
	}
	if got := cfg.SpawnEveryTicks(); got != 90 {
		t.Errorf("SpawnEveryTicks() = %d, expected 90", got)
	}
	x, y := cfg.BirdStart()
	if x != 45 || y != 320 {
		t.Errorf("BirdStart() = (%d, %d), expected (45, 320)", x, y)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
physics:
  gravity: 2
timing:
  spawn_interval: 2s
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Physics.Gravity != 2 {
		t.Errorf("gravity = %d, expected 2", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse != -9 {
		t.Errorf("jump impulse should keep default -9, got %d", cfg.Physics.JumpImpulse)
	}
	if cfg.Timing.SpawnInterval != 2*time.Second {
		t.Errorf("spawn interval = %v, expected 2s", cfg.Timing.SpawnInterval)
	}
	if cfg.Board.Width != 360 {
		t.Errorf("board width should keep default 360, got %d", cfg.Board.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero board", func(c *Config) { c.Board.Width = 0 }, "board size"},
		{"negative bird", func(c *Config) { c.Bird.Height = -1 }, "bird size"},
		{"opening too large", func(c *Config) { c.Pipes.Opening = 640 }, "pipe opening"},
		{"no gravity", func(c *Config) { c.Physics.Gravity = 0 }, "gravity"},
		{"downward jump", func(c *Config) { c.Physics.JumpImpulse = 3 }, "jump impulse"},
		{"pipes moving right", func(c *Config) { c.Physics.PipeVelocity = 4 }, "pipe velocity"},
		{"zero tick rate", func(c *Config) { c.Timing.TickRate = 0 }, "tick rate"},
		{"zero spawn interval", func(c *Config) { c.Timing.SpawnInterval = 0 }, "spawn interval"},
		{"negative score", func(c *Config) { c.Scoring.PerPair = -1 }, "per-pair score"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err, tc.field)
			}
		})
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := Default()
	cfg.Physics.Gravity = 0
	cfg.Timing.TickRate = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "gravity") || !strings.Contains(msg, "tick rate") {
		t.Errorf("both violations should be reported, got %q", msg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  per_pair: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Scoring.PerPair != 1 {
		t.Errorf("per_pair = %g, expected 1", cfg.Scoring.PerPair)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of invalid values should wrap ErrInvalid, got %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	prevWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWd) })

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg != Default() {
		t.Errorf("embedded load should equal defaults, got %+v", cfg)
	}

	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, localConfigPath), []byte("pipes:\n  width: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, src, _ = Load("")
	if src != SourceLocal || cfg.Pipes.Width != 50 {
		t.Errorf("expected local config, got source=%q width=%d", src, cfg.Pipes.Width)
	}

	userDir := filepath.Join(home, ".flappy", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "flappy.yaml"), []byte("pipes:\n  width: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, src, _ = Load("")
	if src != SourceUser || cfg.Pipes.Width != 40 {
		t.Errorf("user config should win over local, got source=%q width=%d", src, cfg.Pipes.Width)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "spawn_interval: 1.5s") {
		t.Errorf("durations should be written as strings, got:\n%s", data)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}
