package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/pixfield/internal/config"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil)
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("parseConfig() = %+v, want defaults", cfg)
	}
}

func TestParseConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fv.toml")
	if err := os.WriteFile(path, []byte("pattern = \"rings\"\nwidth = 50\nfps = 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := parseConfig([]string{"-config", path, "-width", "80", "-scale", "2", "-backend", "terminal", "-v"})
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if cfg.Pattern != "rings" || cfg.FPS != 12 {
		t.Errorf("file values lost: %+v", cfg)
	}
	if cfg.Width != 80 || cfg.ScaleX != 2 || cfg.ScaleY != 2 || cfg.Backend != config.BackendTerminal {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	if _, err := parseConfig([]string{"-scale", "0"}); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("parseConfig(-scale 0) error = %v, want config.ErrInvalid", err)
	}
}

func TestRunTerminalFrames(t *testing.T) {
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer devnull.Close()

	stdout := os.Stdout
	os.Stdout = devnull
	t.Cleanup(func() { os.Stdout = stdout })

	err = run([]string{"-backend", "terminal", "-pattern", "checker", "-width", "8", "-height", "6", "-frames", "2", "-fps", "500"})
	if err != nil {
		t.Errorf("run() error = %v", err)
	}
}

func TestRunUnknownPattern(t *testing.T) {
	if err := run([]string{"-backend", "terminal", "-pattern", "nope"}); err == nil {
		t.Error("run() with unknown pattern succeeded")
	}
}
