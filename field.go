package pixfield

import (
	"fmt"
	"image"
	"math"
)

// Generator computes the color at a field position.
//
// Generators must be pure: calling one twice with the same position must
// return the same color, and it must be safe to call from several
// goroutines at once. Compose relies on this to evaluate positions in any
// order without locks.
type Generator func(row, col int) Color

// FallibleGenerator is a Generator that can fail. An error fails the whole frame.
type FallibleGenerator func(row, col int) (Color, error)

// Field is a lazily evaluated, finite two-dimensional field of colors.
//
// A Field is a description, not a container: nothing is computed until a
// Compositor forces it. Fields are values; they hold no mutable state and
// may be forced any number of times.
type Field struct {
	width  int
	height int
	gen    FallibleGenerator
}

// NewField creates a field of the given extent backed by fn.
func NewField(width, height int, fn Generator) Field {
	var gen FallibleGenerator
	if fn != nil {
		gen = func(row, col int) (Color, error) { return fn(row, col), nil }
	}
	return Field{width: width, height: height, gen: gen}
}

// NewFallibleField creates a field whose generator may return an error.
func NewFallibleField(width, height int, fn FallibleGenerator) Field {
	return Field{width: width, height: height, gen: fn}
}

// Uniform creates a field where every position has the same color.
func Uniform(width, height int, c Color) Field {
	return NewField(width, height, func(int, int) Color { return c })
}

// PointField creates a field from a function of normalized coordinates.
//
// x runs from -1 at the left edge to 1 at the right edge and y from -1 at
// the bottom edge to 1 at the top edge. Each position is sampled at its
// pixel center, so neither edge value is reached exactly.
func PointField(width, height int, fn func(x, y float64) Color) Field {
	if fn == nil {
		return Field{width: width, height: height}
	}
	fw, fh := float64(width), float64(height)
	return NewField(width, height, func(row, col int) Color {
		x := (2*float64(col)+1)/fw - 1
		y := 1 - (2*float64(row)+1)/fh
		return fn(x, y)
	})
}

// FieldFromColors creates a field backed by a row-major slice of colors.
// The slice is not copied and must not be modified while the field is in use.
// Returns ErrExtentMismatch if len(colors) != width*height.
func FieldFromColors(width, height int, colors []Color) (Field, error) {
	if !validExtent(width, height) {
		return Field{}, fmt.Errorf("%w: %dx%d", ErrInvalidExtent, width, height)
	}
	if len(colors) != width*height {
		return Field{}, fmt.Errorf("%w: %d colors for a %dx%d field", ErrExtentMismatch, len(colors), width, height)
	}
	return NewField(width, height, func(row, col int) Color {
		return colors[row*width+col]
	}), nil
}

// FieldFromImage creates a field sampling img. Row 0 is the top row of
// img.Bounds(). The image is read lazily and must not change while the
// field is in use.
func FieldFromImage(img image.Image) Field {
	b := img.Bounds()
	return NewField(b.Dx(), b.Dy(), func(row, col int) Color {
		return FromColor(img.At(b.Min.X+col, b.Min.Y+row))
	})
}

// Width returns the number of columns.
func (f Field) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f Field) Height() int {
	return f.height
}

// Extent returns the width and height of the field.
func (f Field) Extent() (width, height int) {
	return f.width, f.height
}

// Bounds returns the field extent as a rectangle anchored at the origin.
func (f Field) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At evaluates the field at (row, col).
func (f Field) At(row, col int) (Color, error) {
	if row < 0 || row >= f.height || col < 0 || col >= f.width {
		return Color{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, row, col, f.width, f.height)
	}
	if f.gen == nil {
		return Color{}, ErrNilGenerator
	}
	return f.gen(row, col)
}

// Map returns a field applying fn to every color of f.
// No intermediate colors are stored; fn runs when the new field is forced.
func (f Field) Map(fn func(Color) Color) Field {
	if f.gen == nil || fn == nil {
		return f
	}
	gen := f.gen
	return NewFallibleField(f.width, f.height, func(row, col int) (Color, error) {
		c, err := gen(row, col)
		if err != nil {
			return Color{}, err
		}
		return fn(c), nil
	})
}

// validate checks that the field can be composed.
func (f Field) validate() error {
	if !validExtent(f.width, f.height) {
		return fmt.Errorf("%w: %dx%d", ErrInvalidExtent, f.width, f.height)
	}
	if f.gen == nil {
		return ErrNilGenerator
	}
	return nil
}

// validExtent reports whether width*height is positive and fits in an int.
func validExtent(width, height int) bool {
	return width > 0 && height > 0 && height <= math.MaxInt/width
}

// Animation produces the field to display at time t, in seconds.
// An animation must return fields of the same extent for every t.
type Animation func(t float64) Field

// AnimatePoints creates an animation of fixed extent from a function of
// time and normalized coordinates. See PointField for the coordinate system.
func AnimatePoints(width, height int, fn func(t, x, y float64) Color) Animation {
	return func(t float64) Field {
		return PointField(width, height, func(x, y float64) Color {
			return fn(t, x, y)
		})
	}
}

// ExtentFor returns the field extent that fills a window of the given size
// when magnified by (scaleX, scaleY). Partial cells are dropped.
func ExtentFor(windowWidth, windowHeight, scaleX, scaleY int) (width, height int, err error) {
	if scaleX < 1 || scaleY < 1 {
		return 0, 0, &ScaleError{X: scaleX, Y: scaleY}
	}
	width, height = windowWidth/scaleX, windowHeight/scaleY
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: window %dx%d at scale (%d, %d)", ErrInvalidExtent, windowWidth, windowHeight, scaleX, scaleY)
	}
	return width, height, nil
}
