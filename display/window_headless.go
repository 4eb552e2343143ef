//go:build headless

package display

import "context"

// WindowConfig describes the window opened by RunWindow.
type WindowConfig struct {
	Title         string
	Width, Height int
	FPS           int
	OnError       ErrorPolicy
}

// RunWindow always fails with ErrNoWindow in headless builds.
func RunWindow(context.Context, WindowConfig, FrameFunc) error {
	return ErrNoWindow
}
