package pixfield

import (
	"log/slog"
	"runtime"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	c := newTestCompositor(t)

	if got, want := c.Workers(), runtime.GOMAXPROCS(0); got != want {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", got, want)
	}
	if sx, sy := c.Scale(); sx != 1 || sy != 1 {
		t.Errorf("Scale() = (%d, %d), want (1, 1)", sx, sy)
	}
	if c.strict {
		t.Error("strict extent should be off by default")
	}
}

func TestCompositorOptions(t *testing.T) {
	l := slog.New(nopHandler{})
	c := newTestCompositor(t,
		WithWorkers(3),
		WithScale(2, 4),
		WithStrictExtent(),
		WithLogger(l),
	)

	if c.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", c.Workers())
	}
	if sx, sy := c.Scale(); sx != 2 || sy != 4 {
		t.Errorf("Scale() = (%d, %d), want (2, 4)", sx, sy)
	}
	if !c.strict {
		t.Error("WithStrictExtent() was not applied")
	}
	if c.log() != l {
		t.Error("WithLogger() was not applied")
	}
}

func TestWithWorkersNonPositive(t *testing.T) {
	for _, n := range []int{0, -3} {
		c := newTestCompositor(t, WithWorkers(n))
		if got, want := c.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("WithWorkers(%d): Workers() = %d, want %d", n, got, want)
		}
	}
}
