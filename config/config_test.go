package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/kennylevinsen/gophotograph/photograph"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photograph.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if cfg.Stamp {
		t.Error("expected stamping to be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, "procedure: Corner of Layer\ntrigger: M42\nstamp: true\nmax_body_bytes: 1024\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Procedure != "Corner of Layer" || cfg.Trigger != "M42" || !cfg.Stamp {
		t.Errorf("expected profile values, got %+v", cfg)
	}
	if cfg.MaxBodyBytes != 1024 {
		t.Errorf("expected max body 1024, got %d", cfg.MaxBodyBytes)
	}
	if !cfg.Activate {
		t.Error("expected unspecified keys to keep their defaults")
	}

	s, err := cfg.Settings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Procedure != photograph.LayerCorner || !s.Stamp {
		t.Errorf("expected corner settings with stamp, got %+v", s)
	}
}

func TestLoadEmptyProfile(t *testing.T) {
	cfg, err := Load(writeProfile(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	if _, err := Load(writeProfile(t, "procedur: corner\n")); err == nil {
		t.Error("expected error for misspelled key")
	}
}

func TestLoadMissingProfile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing profile")
	}
}

func TestEnvOverridesProfile(t *testing.T) {
	path := writeProfile(t, "procedure: corner\nactivate: true\n")
	t.Setenv("PHOTOGRAPH_PROCEDURE", "closest")
	t.Setenv("PHOTOGRAPH_ACTIVATE", "false")
	t.Setenv("PHOTOGRAPH_MAX_BODY_BYTES", "not-a-number")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Procedure != "closest" {
		t.Errorf("expected env procedure, got %q", cfg.Procedure)
	}
	if cfg.Activate {
		t.Error("expected env to deactivate")
	}
	if cfg.MaxBodyBytes != Default().MaxBodyBytes {
		t.Errorf("expected invalid env number to be ignored, got %d", cfg.MaxBodyBytes)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
	}{
		{"procedure", func(c *Config) { c.Procedure = "sideways" }},
		{"empty trigger", func(c *Config) { c.Trigger = "  " }},
		{"trigger comment", func(c *Config) { c.Trigger = "M240 ; shoot" }},
		{"trigger newline", func(c *Config) { c.Trigger = "M240\nM240" }},
		{"trigger parameter", func(c *Config) { c.Trigger = "M240 S1" }},
		{"trigger motion", func(c *Config) { c.Trigger = "G1" }},
		{"log level", func(c *Config) { c.LogLevel = "chatty" }},
	}
	for _, c := range cases {
		cfg := Default()
		c.modify(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}

	cfg := Default()
	cfg.Procedure = "sideways"
	if err := cfg.Validate(); !errors.Is(err, photograph.ErrUnknownProcedure) {
		t.Errorf("expected ErrUnknownProcedure, got %v", err)
	}

	cfg = Default()
	cfg.Trigger = "M240 S1"
	if err := cfg.Validate(); !errors.Is(err, photograph.ErrInvalidTrigger) {
		t.Errorf("expected ErrInvalidTrigger, got %v", err)
	}
}

func TestLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	l, err := cfg.Level()
	if err != nil || l != slog.LevelDebug {
		t.Errorf("expected debug level, got %v (%v)", l, err)
	}
}
