// Package display shows frames produced by a pixfield.Compositor.
//
// The pixfield core never touches a screen; this package is the driver on
// the other side of that boundary. A FrameFunc asks the core for the frame
// at a given time, and a Presenter puts the resulting ScaledImage somewhere
// a person can see it. Loop ties the two together on a fixed frame rate.
package display

import (
	"errors"
	"log/slog"

	"github.com/gogpu/pixfield"
)

// ErrNoWindow is returned by RunWindow in builds without a window backend.
var ErrNoWindow = errors.New("display: window backend not available in this build")

// FrameFunc returns the frame to show at time t, in seconds since the
// animation started. It is typically Compositor.Frame bound to an Animation.
type FrameFunc func(t float64) (pixfield.ScaledImage, error)

// Frames binds an animation to a compositor.
func Frames(c *pixfield.Compositor, anim pixfield.Animation) FrameFunc {
	return func(t float64) (pixfield.ScaledImage, error) {
		return c.Frame(anim, t)
	}
}

// Presenter displays finished frames. Present takes ownership of img.
type Presenter interface {
	Present(img pixfield.ScaledImage) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(img pixfield.ScaledImage) error

// Present calls f(img).
func (f PresenterFunc) Present(img pixfield.ScaledImage) error {
	return f(img)
}

// ErrorPolicy decides what happens when frame n fails. Returning nil skips
// the frame and keeps going; returning an error stops the driver with it.
type ErrorPolicy func(n int, err error) error

// StopOnError stops at the first failed frame.
func StopOnError(_ int, err error) error {
	return err
}

// SkipFailed returns a policy that logs failed frames at warn level and
// carries on. A nil logger means the pixfield package logger.
func SkipFailed(l *slog.Logger) ErrorPolicy {
	return func(n int, err error) error {
		logger := l
		if logger == nil {
			logger = pixfield.Logger()
		}
		logger.Warn("display: frame skipped", "frame", n, "err", err)
		return nil
	}
}
