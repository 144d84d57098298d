// Package config loads arcsect settings from TOML.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/chazu/arcsect/pkg/geom"
	"github.com/chazu/arcsect/pkg/tessellate"
)

// Config holds every tunable setting.
type Config struct {
	Tolerance     float64  `toml:"tolerance"`
	EvalTimeoutMS int      `toml:"eval_timeout_ms"`
	LogLevel      string   `toml:"log_level"`
	Sampling      Sampling `toml:"sampling"`
}

// Sampling sets display tessellation density.
type Sampling struct {
	BulgeArcSegments int `toml:"bulge_arc_segments"`
	ArcSegments      int `toml:"arc_segments"`
	CircleSegments   int `toml:"circle_segments"`
}

// Default returns the built-in configuration.
func Default() Config {
	opts := tessellate.DefaultOptions()
	return Config{
		Tolerance:     float64(geom.DefaultTolerance),
		EvalTimeoutMS: 5000,
		LogLevel:      "info",
		Sampling: Sampling{
			BulgeArcSegments: opts.BulgeArcSegments,
			ArcSegments:      opts.ArcSegments,
			CircleSegments:   opts.CircleSegments,
		},
	}
}

// Load reads and validates the TOML file at path. Missing keys keep their
// defaults; unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates TOML data on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if !(c.Tolerance > 0) {
		return fmt.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	if c.EvalTimeoutMS <= 0 {
		return fmt.Errorf("eval_timeout_ms must be positive, got %d", c.EvalTimeoutMS)
	}
	for name, n := range map[string]int{
		"bulge_arc_segments": c.Sampling.BulgeArcSegments,
		"arc_segments":       c.Sampling.ArcSegments,
		"circle_segments":    c.Sampling.CircleSegments,
	} {
		if n < 2 {
			return fmt.Errorf("sampling.%s must be at least 2, got %d", name, n)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Tol returns the kernel tolerance.
func (c Config) Tol() geom.Tolerance {
	return geom.Tolerance(c.Tolerance)
}

// EvalTimeout returns the script evaluation limit.
func (c Config) EvalTimeout() time.Duration {
	return time.Duration(c.EvalTimeoutMS) * time.Millisecond
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// TessellateOptions maps the sampling section onto tessellate.Options.
func (c Config) TessellateOptions() tessellate.Options {
	return tessellate.Options{
		BulgeArcSegments: c.Sampling.BulgeArcSegments,
		ArcSegments:      c.Sampling.ArcSegments,
		CircleSegments:   c.Sampling.CircleSegments,
		Tolerance:        c.Tol(),
	}
}
