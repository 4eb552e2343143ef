// Package patterns provides ready-made animations for fieldview and tests.
//
// Every pattern is a pure function of time and position, built on
// pixfield.AnimatePoints, so it can be composed on any number of workers.
package patterns

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/gogpu/pixfield"
)

// ErrUnknownPattern is returned by Lookup for names not in the registry.
var ErrUnknownPattern = errors.New("patterns: unknown pattern")

// Constructor builds an animation of the given extent.
type Constructor func(width, height int) pixfield.Animation

var registry = map[string]Constructor{
	"checker":  Checker,
	"gradient": Gradient,
	"plasma":   Plasma,
	"rings":    Rings,
	"spectrum": Spectrum,
}

// Names returns the registered pattern names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Lookup returns the constructor registered under name.
func Lookup(name string) (Constructor, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownPattern, name, Names())
	}
	return c, nil
}

// Plasma is the classic sum-of-sines plasma, colored by hue.
func Plasma(width, height int) pixfield.Animation {
	return pixfield.AnimatePoints(width, height, func(t, x, y float64) pixfield.Color {
		v := math.Sin(x*4+t) +
			math.Sin((y*4+t)/2) +
			math.Sin((x*4+y*4+t)/2) +
			math.Sin(math.Hypot(x*4+2*math.Sin(t/3), y*4+2*math.Cos(t/2))+t)
		return pixfield.HSV(180+90*v, 0.8, 0.9)
	})
}

// Rings draws concentric rings moving outwards, blended perceptually
// between two colors.
func Rings(width, height int) pixfield.Animation {
	inner, outer := pixfield.Hex("#ffb000"), pixfield.Hex("#2040a0")
	return pixfield.AnimatePoints(width, height, func(t, x, y float64) pixfield.Color {
		d := math.Hypot(x, y)
		w := 0.5 + 0.5*math.Sin(d*20-t*4)
		return inner.BlendLab(outer, w)
	})
}

// Gradient is a horizontal HCL hue sweep scrolling with time, darkening
// towards the bottom.
func Gradient(width, height int) pixfield.Animation {
	return pixfield.AnimatePoints(width, height, func(t, x, y float64) pixfield.Color {
		return pixfield.HCL(180*(x+1)+40*t, 0.6, 0.45+0.25*y)
	})
}

// Checker is a rotating checkerboard.
func Checker(width, height int) pixfield.Animation {
	return pixfield.AnimatePoints(width, height, func(t, x, y float64) pixfield.Color {
		s, c := math.Sincos(t / 2)
		u, v := x*c-y*s, x*s+y*c
		if (int(math.Floor(u*4))+int(math.Floor(v*4)))&1 == 0 {
			return pixfield.White
		}
		return pixfield.Black
	})
}

// Spectrum cycles every pixel through the hues, offset by its angle
// around the center.
func Spectrum(width, height int) pixfield.Animation {
	return pixfield.AnimatePoints(width, height, func(t, x, y float64) pixfield.Color {
		angle := math.Atan2(y, x) * 180 / math.Pi
		return pixfield.HSV(angle+60*t, 1, math.Min(1, 1.2-0.5*math.Hypot(x, y)))
	})
}
