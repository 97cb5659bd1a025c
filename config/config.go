package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kennylevinsen/gophotograph/photograph"
)

type Config struct {
	// Photograph craft
	Activate  bool   `yaml:"activate"`
	Procedure string `yaml:"procedure"`
	Trigger   string `yaml:"trigger"`
	Stamp     bool   `yaml:"stamp"`

	// Output files are named <base><Suffix><ext>
	Suffix string `yaml:"suffix"`

	// HTTP server
	Addr         string `yaml:"addr"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`

	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	d := photograph.DefaultSettings()
	return Config{
		Activate:  d.Activate,
		Procedure: d.Procedure.String(),
		Trigger:   d.Trigger,
		Stamp:     d.Stamp,

		Suffix: "_" + photograph.Name,

		Addr:         ":8091",
		MaxBodyBytes: 64 << 20,

		LogLevel: "info",
	}
}

// Load builds the configuration from defaults, the optional YAML profile at
// path, and PHOTOGRAPH_* environment variables, in increasing precedence.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading profile: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parsing profile %s: %w", path, err)
		}
	}

	cfg.Activate = envBool("PHOTOGRAPH_ACTIVATE", cfg.Activate)
	cfg.Procedure = envOr("PHOTOGRAPH_PROCEDURE", cfg.Procedure)
	cfg.Trigger = envOr("PHOTOGRAPH_TRIGGER", cfg.Trigger)
	cfg.Stamp = envBool("PHOTOGRAPH_STAMP", cfg.Stamp)
	cfg.Suffix = envOr("PHOTOGRAPH_SUFFIX", cfg.Suffix)
	cfg.Addr = envOr("PHOTOGRAPH_ADDR", cfg.Addr)
	cfg.MaxBodyBytes = envInt64("PHOTOGRAPH_MAX_BODY_BYTES", cfg.MaxBodyBytes)
	cfg.LogLevel = envOr("PHOTOGRAPH_LOG_LEVEL", cfg.LogLevel)

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 64 << 20
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := photograph.ParseProcedure(c.Procedure); err != nil {
		return err
	}
	if err := photograph.ValidTrigger(c.Trigger); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Settings for the photograph craft.
func (c Config) Settings() (photograph.Settings, error) {
	p, err := photograph.ParseProcedure(c.Procedure)
	if err != nil {
		return photograph.Settings{}, err
	}
	return photograph.Settings{
		Activate:  c.Activate,
		Procedure: p,
		Trigger:   c.Trigger,
		Stamp:     c.Stamp,
	}, nil
}

func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return l, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
