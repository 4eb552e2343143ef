// Command fieldview animates a pixfield pattern in a window or a terminal.
//
// Usage:
//
//	fieldview [-config fieldview.toml] [-pattern plasma] [-backend window|terminal]
//	          [-width 160] [-height 120] [-scale 4] [-workers 0] [-fps 30] [-frames 0]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gogpu/pixfield"
	"github.com/gogpu/pixfield/display"
	"github.com/gogpu/pixfield/internal/config"
	"github.com/gogpu/pixfield/patterns"
)

func main() {
	if err := run(os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "fieldview: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pixfield.SetLogger(logger)

	ctor, err := patterns.Lookup(cfg.Pattern)
	if err != nil {
		return err
	}

	opts := []pixfield.CompositorOption{
		pixfield.WithWorkers(cfg.Workers),
		pixfield.WithScale(cfg.ScaleX, cfg.ScaleY),
	}
	if cfg.StrictExtent {
		opts = append(opts, pixfield.WithStrictExtent())
	}
	comp, err := pixfield.NewCompositor(opts...)
	if err != nil {
		return err
	}
	defer comp.Close()

	frames := display.Frames(comp, ctor(cfg.Width, cfg.Height))
	var policy display.ErrorPolicy = display.StopOnError
	if cfg.SkipFailed {
		policy = display.SkipFailed(logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("fieldview: starting",
		"pattern", cfg.Pattern,
		"backend", cfg.Backend,
		"extent", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"scale", fmt.Sprintf("%dx%d", cfg.ScaleX, cfg.ScaleY),
		"workers", comp.Workers())

	switch cfg.Backend {
	case config.BackendTerminal:
		return runTerminal(ctx, cfg, frames, policy)
	default:
		err := display.RunWindow(ctx, display.WindowConfig{
			Title:   "fieldview: " + cfg.Pattern,
			Width:   cfg.Width * cfg.ScaleX,
			Height:  cfg.Height * cfg.ScaleY,
			FPS:     cfg.FPS,
			OnError: policy,
		}, frames)
		if errors.Is(err, display.ErrNoWindow) {
			logger.Warn("fieldview: no window backend, falling back to terminal")
			return runTerminal(ctx, cfg, frames, policy)
		}
		return err
	}
}

func runTerminal(ctx context.Context, cfg config.Config, frames display.FrameFunc, policy display.ErrorPolicy) error {
	term := display.NewTerminal(os.Stdout)
	term.Start()
	defer term.Stop()

	loop := display.Loop{FPS: cfg.FPS, MaxFrames: cfg.Frames, OnError: policy}
	err := loop.Run(ctx, frames, term)
	if ctx.Err() != nil {
		// Interrupted by the user.
		return nil
	}
	return err
}

// parseConfig loads the config file, if any, then applies the flags that
// were set explicitly on the command line.
func parseConfig(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("fieldview", flag.ContinueOnError)
	var (
		path    = fs.String("config", "", "TOML or YAML config file")
		pattern = fs.String("pattern", "", "pattern: "+strings.Join(patterns.Names(), ", "))
		backend = fs.String("backend", "", "display backend: window or terminal")
		width   = fs.Int("width", 0, "field width in pixels")
		height  = fs.Int("height", 0, "field height in pixels")
		scale   = fs.Int("scale", 0, "magnification in both directions")
		workers = fs.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
		fps     = fs.Int("fps", 0, "frames per second")
		frames  = fs.Int("frames", 0, "stop after this many frames (0 = run until interrupted)")
		verbose = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			return config.Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pattern":
			cfg.Pattern = *pattern
		case "backend":
			cfg.Backend = *backend
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "scale":
			cfg.ScaleX, cfg.ScaleY = *scale, *scale
		case "workers":
			cfg.Workers = *workers
		case "fps":
			cfg.FPS = *fps
		case "frames":
			cfg.Frames = *frames
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		}
	})

	return cfg, cfg.Validate()
}
