package pixfield

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/pixfield/internal/parallel"
)

// Compositor turns fields into packed pixel buffers using a pool of workers.
//
// Compose splits the flat index space [0, width*height) of a field into one
// contiguous span per worker. Each worker evaluates its span and packs the
// colors straight into its own region of a freshly allocated buffer, so no
// locking is needed while workers run; the only coordination is the join at
// the end. No intermediate array of logical colors is ever built.
//
// Frames are composed one at a time. Concurrent calls to Compose or Frame
// on the same Compositor are serialized.
//
// A Compositor must be closed to release its workers.
type Compositor struct {
	pool   *parallel.WorkerPool
	scaleX int
	scaleY int
	strict bool
	logger *slog.Logger

	mu      sync.Mutex
	extentW int
	extentH int
}

// NewCompositor creates a compositor and starts its workers.
// Returns an error matching ErrInvalidScale if WithScale was given a factor below 1.
func NewCompositor(opts ...CompositorOption) (*Compositor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.scaleX < 1 || o.scaleY < 1 {
		return nil, &ScaleError{X: o.scaleX, Y: o.scaleY}
	}

	return &Compositor{
		pool:   parallel.NewWorkerPool(o.workers),
		scaleX: o.scaleX,
		scaleY: o.scaleY,
		strict: o.strictExtent,
		logger: o.logger,
	}, nil
}

// Workers returns the number of worker goroutines.
func (c *Compositor) Workers() int {
	return c.pool.Workers()
}

// Scale returns the magnification attached to frames built by Frame.
func (c *Compositor) Scale() (scaleX, scaleY int) {
	return c.scaleX, c.scaleY
}

// Compose evaluates every position of f and returns the packed pixels.
//
// The returned buffer has exactly width*height pixels in row-major order:
// the pixel at index row*width+col is Pack(f.At(row, col)). Ownership of the
// buffer passes to the caller.
//
// If the generator fails or panics at any position, Compose returns a
// *GeneratorError and no buffer. When several positions fail in one frame,
// the error for the lowest index is reported.
func (c *Compositor) Compose(f Field) (*PixelBuffer, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkExtent(f); err != nil {
		return nil, err
	}

	start := time.Now()
	buf := newPixelBuffer(f.width, f.height)
	spans := parallel.Partition(len(buf.pix), c.pool.Workers())
	errs := make([]error, len(spans))

	tasks := make([]func(), len(spans))
	for i, s := range spans {
		tasks[i] = func() {
			errs[i] = fillSpan(buf.pix, f.gen, f.width, s)
		}
	}

	if !c.pool.Run(tasks) {
		return nil, ErrClosed
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	if l := c.log(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("pixfield: frame composed",
			"width", f.width,
			"height", f.height,
			"spans", len(spans),
			"elapsed", time.Since(start))
	}

	return buf, nil
}

// Frame runs the full pipeline for time t: it asks anim for the field,
// composes it, and wraps the buffer with the compositor's scale.
// Any failure aborts the frame; no partial image is returned.
func (c *Compositor) Frame(anim Animation, t float64) (ScaledImage, error) {
	if anim == nil {
		return ScaledImage{}, ErrNilGenerator
	}
	buf, err := c.Compose(anim(t))
	if err != nil {
		return ScaledImage{}, fmt.Errorf("pixfield: frame at t=%g: %w", t, err)
	}
	return NewScaledImage(buf, c.scaleX, c.scaleY)
}

// Close stops the workers. Compose returns ErrClosed afterwards.
// Close is safe to call multiple times.
func (c *Compositor) Close() {
	if !c.pool.IsRunning() {
		return
	}
	c.pool.Close()
	c.log().Debug("pixfield: compositor closed", "workers", c.pool.Workers())
}

// checkExtent enforces WithStrictExtent. Caller holds c.mu.
func (c *Compositor) checkExtent(f Field) error {
	if !c.strict {
		return nil
	}
	if c.extentW == 0 {
		c.extentW, c.extentH = f.width, f.height
		return nil
	}
	if f.width != c.extentW || f.height != c.extentH {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrExtentMismatch, f.width, f.height, c.extentW, c.extentH)
	}
	return nil
}

func (c *Compositor) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// fillSpan packs the field positions with flat indices in s into dst.
// It touches no element of dst outside s.
func fillSpan(dst []Pixel, gen FallibleGenerator, width int, s parallel.Span) (err error) {
	row, col := s.Lo/width, s.Lo%width

	defer func() {
		if r := recover(); r != nil {
			err = &GeneratorError{Row: row, Col: col, Err: &PanicError{Value: r}}
		}
	}()

	for i := s.Lo; i < s.Hi; i++ {
		clr, gerr := gen(row, col)
		if gerr != nil {
			return &GeneratorError{Row: row, Col: col, Err: gerr}
		}
		dst[i] = Pack(clr)

		col++
		if col == width {
			col = 0
			row++
		}
	}
	return nil
}
