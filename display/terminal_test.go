package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/pixfield"
	"github.com/muesli/termenv"
)

func composeColors(t *testing.T, w, h, sx, sy int, colors []pixfield.Color) pixfield.ScaledImage {
	t.Helper()
	c := newCompositor(t, pixfield.WithScale(sx, sy))
	f, err := pixfield.FieldFromColors(w, h, colors)
	if err != nil {
		t.Fatal(err)
	}
	img, err := c.Frame(func(float64) pixfield.Field { return f }, 0)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestTerminalPresent(t *testing.T) {
	// Red over blue: one column of one cell after 1x1 scaling.
	img := composeColors(t, 1, 2, 1, 1, []pixfield.Color{pixfield.Red, pixfield.Blue})

	var out bytes.Buffer
	term := NewTerminal(&out, WithProfile(termenv.TrueColor), WithSize(80, 24))
	if err := term.Present(img); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	s := out.String()
	if strings.Count(s, upperHalfBlock) != 1 {
		t.Errorf("output has %d cells, want 1: %q", strings.Count(s, upperHalfBlock), s)
	}
	if !strings.Contains(s, "38;2;255;0;0") {
		t.Errorf("output missing red foreground: %q", s)
	}
	if !strings.Contains(s, "48;2;0;0;255") {
		t.Errorf("output missing blue background: %q", s)
	}
}

func TestTerminalMagnifies(t *testing.T) {
	img := composeColors(t, 2, 1, 3, 4, []pixfield.Color{pixfield.White, pixfield.Black})

	var out bytes.Buffer
	term := NewTerminal(&out, WithProfile(termenv.TrueColor), WithSize(80, 24))
	if err := term.Present(img); err != nil {
		t.Fatal(err)
	}

	// 6x4 pixels -> 6 columns by 2 rows of cells.
	s := out.String()
	if got := strings.Count(s, upperHalfBlock); got != 12 {
		t.Errorf("cells = %d, want 12", got)
	}
	if got := strings.Count(s, "\n"); got != 2 {
		t.Errorf("rows = %d, want 2", got)
	}
}

func TestTerminalFit(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{}, WithSize(40, 10))

	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{20, 10, 20, 10},
		{40, 20, 40, 20},
		{80, 20, 40, 10},
		{40, 40, 20, 20},
		{400, 1, 40, 1},
	}
	for _, tt := range tests {
		if w, h := term.fit(tt.w, tt.h); w != tt.wantW || h != tt.wantH {
			t.Errorf("fit(%d, %d) = (%d, %d), want (%d, %d)", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestTerminalDefaultSize(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{})
	if c, r := term.size(); c != DefaultColumns || r != DefaultRows {
		t.Errorf("size() = (%d, %d), want (%d, %d)", c, r, DefaultColumns, DefaultRows)
	}
}

func TestTerminalNilBuffer(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{})
	if err := term.Present(pixfield.ScaledImage{}); !errors.Is(err, pixfield.ErrNilBuffer) {
		t.Errorf("Present(empty) error = %v, want ErrNilBuffer", err)
	}
}
