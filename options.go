package pixfield

import "log/slog"

// CompositorOption configures a Compositor during creation.
//
// Example:
//
//	// GOMAXPROCS workers, no magnification
//	c := pixfield.NewCompositor()
//
//	// Four workers, every pixel drawn as a 3x3 block
//	c := pixfield.NewCompositor(pixfield.WithWorkers(4), pixfield.WithScale(3, 3))
type CompositorOption func(*compositorOptions)

type compositorOptions struct {
	workers      int
	scaleX       int
	scaleY       int
	strictExtent bool
	logger       *slog.Logger
}

func defaultOptions() compositorOptions {
	return compositorOptions{
		workers: 0, // GOMAXPROCS
		scaleX:  1,
		scaleY:  1,
	}
}

// WithWorkers sets the number of worker goroutines.
// Zero or a negative count means GOMAXPROCS. One worker gives the same
// output as many, only slower.
func WithWorkers(n int) CompositorOption {
	return func(o *compositorOptions) {
		o.workers = n
	}
}

// WithScale sets the magnification attached to frames built by Frame.
// Factors below 1 make NewCompositor fail with ErrInvalidScale.
func WithScale(scaleX, scaleY int) CompositorOption {
	return func(o *compositorOptions) {
		o.scaleX = scaleX
		o.scaleY = scaleY
	}
}

// WithStrictExtent makes the compositor reject, with ErrExtentMismatch,
// any field whose extent differs from the first field it composed.
func WithStrictExtent() CompositorOption {
	return func(o *compositorOptions) {
		o.strictExtent = true
	}
}

// WithLogger sets the logger for one compositor, overriding the package
// logger set by SetLogger.
func WithLogger(l *slog.Logger) CompositorOption {
	return func(o *compositorOptions) {
		o.logger = l
	}
}
