//go:build !headless

package display

import (
	"context"
	"errors"
	"time"

	"github.com/gogpu/pixfield"
	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig describes the window opened by RunWindow.
type WindowConfig struct {
	Title string

	// Width and Height are the window size in screen pixels, normally the
	// frame's DisplaySize.
	Width, Height int

	// FPS is the update rate. Zero means DefaultFPS.
	FPS int

	// OnError handles failed frames. Nil means StopOnError.
	OnError ErrorPolicy
}

// window implements ebiten.Game. Update asks for a new frame and Draw
// uploads it and blits it with nearest-neighbor magnification.
type window struct {
	ctx     context.Context
	frames  FrameFunc
	onError ErrorPolicy
	width   int
	height  int

	start   time.Time
	n       int
	current pixfield.ScaledImage
	texture *ebiten.Image
	fresh   bool
}

// RunWindow opens a window and shows frames until ctx is canceled, the
// window is closed, or OnError returns an error.
//
// RunWindow must be called from the main goroutine.
func RunWindow(ctx context.Context, cfg WindowConfig, frames FrameFunc) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return pixfield.ErrInvalidExtent
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	policy := cfg.OnError
	if policy == nil {
		policy = StopOnError
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(fps)
	ebiten.SetVsyncEnabled(true)

	w := &window{
		ctx:     ctx,
		frames:  frames,
		onError: policy,
		width:   cfg.Width,
		height:  cfg.Height,
	}
	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (w *window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}

	var t float64
	if w.n == 0 {
		w.start = time.Now()
	} else {
		t = time.Since(w.start).Seconds()
	}

	img, err := w.frames(t)
	if err != nil {
		err = w.onError(w.n, err)
		w.n++
		return err
	}
	w.n++

	w.current = img
	w.fresh = true
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	buf := w.current.Buffer
	if buf == nil {
		return
	}

	if w.texture == nil || w.texture.Bounds().Dx() != buf.Width() || w.texture.Bounds().Dy() != buf.Height() {
		if w.texture != nil {
			w.texture.Deallocate()
		}
		w.texture = ebiten.NewImage(buf.Width(), buf.Height())
		w.fresh = true
	}
	if w.fresh {
		w.texture.WritePixels(buf.Bytes())
		w.fresh = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.current.ScaleX), float64(w.current.ScaleY))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(w.texture, op)
}

func (w *window) Layout(_, _ int) (int, int) {
	if w.current.Buffer != nil {
		return w.current.DisplaySize()
	}
	return w.width, w.height
}
