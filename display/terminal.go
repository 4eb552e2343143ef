package display

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/gogpu/pixfield"
	"github.com/muesli/termenv"
	"golang.org/x/image/draw"
	"golang.org/x/term"
)

// Default terminal size, used when the writer is not a terminal.
const (
	DefaultColumns = 80
	DefaultRows    = 24
)

// upperHalfBlock draws the top pixel of a cell in the foreground color and
// the bottom pixel in the background color, so one cell shows two pixels.
const upperHalfBlock = "▀"

// Terminal presents frames as colored half-block characters.
//
// Each frame is magnified by its scale with nearest-neighbor sampling,
// shrunk (again nearest-neighbor) if it does not fit the terminal, and
// redrawn from the top-left corner.
type Terminal struct {
	w       io.Writer
	out     *termenv.Output
	fd      int
	columns int
	rows    int
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithProfile forces a color profile instead of detecting one from the
// environment.
func WithProfile(p termenv.Profile) TerminalOption {
	return func(t *Terminal) {
		t.out = termenv.NewOutput(t.w, termenv.WithProfile(p))
	}
}

// WithSize fixes the terminal size in cells instead of querying it.
func WithSize(columns, rows int) TerminalOption {
	return func(t *Terminal) {
		t.columns = columns
		t.rows = rows
	}
}

// NewTerminal creates a terminal presenter writing to w.
func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		w:   w,
		out: termenv.NewOutput(w),
		fd:  -1,
	}
	if f, ok := w.(interface{ Fd() uintptr }); ok && term.IsTerminal(int(f.Fd())) {
		t.fd = int(f.Fd())
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start clears the screen and hides the cursor.
func (t *Terminal) Start() {
	t.out.HideCursor()
	t.out.ClearScreen()
}

// Stop restores the cursor.
func (t *Terminal) Stop() {
	t.out.Reset()
	t.out.ShowCursor()
}

// Present draws img.
func (t *Terminal) Present(img pixfield.ScaledImage) error {
	if img.Buffer == nil {
		return pixfield.ErrNilBuffer
	}

	w, h := t.fit(img.DisplaySize())
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img.Buffer, img.Buffer.Bounds(), draw.Src, nil)

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			cell := t.out.String(upperHalfBlock).Foreground(t.color(dst, x, y))
			if y+1 < h {
				cell = cell.Background(t.color(dst, x, y+1))
			}
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}

	t.out.MoveCursor(1, 1)
	if _, err := io.WriteString(t.out, sb.String()); err != nil {
		return fmt.Errorf("display: terminal write: %w", err)
	}
	return nil
}

// fit shrinks a display size to the terminal, keeping the aspect ratio.
// One row of cells holds two rows of pixels.
func (t *Terminal) fit(w, h int) (int, int) {
	cols, rows := t.size()
	maxW, maxH := cols, rows*2
	if w <= maxW && h <= maxH {
		return w, h
	}
	// Scale by the tighter of the two limits.
	if w*maxH > h*maxW {
		return maxW, max(1, h*maxW/w)
	}
	return max(1, w*maxH/h), maxH
}

func (t *Terminal) size() (columns, rows int) {
	if t.columns > 0 && t.rows > 0 {
		return t.columns, t.rows
	}
	if t.fd >= 0 {
		if c, r, err := term.GetSize(t.fd); err == nil && c > 0 && r > 1 {
			// Leave the last row free so the cursor never scrolls the frame.
			return c, r - 1
		}
	}
	return DefaultColumns, DefaultRows
}

func (t *Terminal) color(img *image.RGBA, x, y int) termenv.Color {
	c := img.RGBAAt(x, y)
	return t.out.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
