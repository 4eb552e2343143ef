// Package config loads fieldview settings from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Backends understood by fieldview.
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config holds fieldview settings.
type Config struct {
	// Width and Height are the field extent in pixels.
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// ScaleX and ScaleY are the integer magnification applied on display.
	ScaleX int `toml:"scale_x" yaml:"scale_x"`
	ScaleY int `toml:"scale_y" yaml:"scale_y"`

	// Workers is the compositor worker count; 0 means GOMAXPROCS.
	Workers int `toml:"workers" yaml:"workers"`

	FPS int `toml:"fps" yaml:"fps"`

	// Frames stops after that many frames; 0 runs until interrupted.
	Frames int `toml:"frames" yaml:"frames"`

	Pattern string `toml:"pattern" yaml:"pattern"`
	Backend string `toml:"backend" yaml:"backend"`

	// StrictExtent rejects frames whose extent changes mid-animation.
	StrictExtent bool `toml:"strict_extent" yaml:"strict_extent"`

	// SkipFailed keeps running when a frame fails instead of exiting.
	SkipFailed bool `toml:"skip_failed" yaml:"skip_failed"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Width:    160,
		Height:   120,
		ScaleX:   4,
		ScaleY:   4,
		Workers:  0,
		FPS:      30,
		Pattern:  "plasma",
		Backend:  BackendWindow,
		LogLevel: "info",
	}
}

// Load reads a config file over the defaults. The format is chosen by
// extension: .toml, or .yaml/.yml. Unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: unsupported file extension %q", ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func decodeYAML(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(cfg)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: extent %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	case c.ScaleX < 1 || c.ScaleY < 1:
		return fmt.Errorf("%w: scale (%d, %d) must be at least 1", ErrInvalid, c.ScaleX, c.ScaleY)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalid, c.FPS)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames %d must not be negative", ErrInvalid, c.Frames)
	case c.Backend != BackendWindow && c.Backend != BackendTerminal:
		return fmt.Errorf("%w: backend %q (want %s or %s)", ErrInvalid, c.Backend, BackendWindow, BackendTerminal)
	case c.Pattern == "":
		return fmt.Errorf("%w: empty pattern", ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}
