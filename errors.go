package pixfield

import (
	"errors"
	"fmt"
)

// Sentinel errors for pixfield.
var (
	// ErrInvalidExtent is returned when a field has a non-positive width or height.
	ErrInvalidExtent = errors.New("pixfield: invalid field extent")

	// ErrExtentMismatch is returned when the number of colors backing a field
	// differs from its declared extent, or when a strict compositor receives
	// a frame whose extent differs from the first frame.
	ErrExtentMismatch = errors.New("pixfield: extent mismatch")

	// ErrOutOfBounds is returned when a field is addressed outside its extent.
	ErrOutOfBounds = errors.New("pixfield: position out of bounds")

	// ErrInvalidScale is returned when a scale factor is below 1.
	ErrInvalidScale = errors.New("pixfield: invalid scale")

	// ErrNilBuffer is returned when wrapping a nil pixel buffer.
	ErrNilBuffer = errors.New("pixfield: nil pixel buffer")

	// ErrNilGenerator is returned when a field or animation has no generator.
	ErrNilGenerator = errors.New("pixfield: nil generator")

	// ErrClosed is returned by a compositor after Close.
	ErrClosed = errors.New("pixfield: compositor closed")
)

// GeneratorError reports a generator failure for one field position.
// A frame that hits a GeneratorError produces no buffer.
type GeneratorError struct {
	Row, Col int
	Err      error
}

func (e *GeneratorError) Error() string {
	return fmt.Sprintf("pixfield: generator failed at (%d, %d): %v", e.Row, e.Col, e.Err)
}

func (e *GeneratorError) Unwrap() error {
	return e.Err
}

// PanicError carries a value recovered from a panicking generator.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// ScaleError is returned when a scale factor is below 1.
// It matches ErrInvalidScale with errors.Is.
type ScaleError struct {
	X, Y int
}

func (e *ScaleError) Error() string {
	return fmt.Sprintf("pixfield: invalid scale (%d, %d): both factors must be >= 1", e.X, e.Y)
}

func (e *ScaleError) Is(target error) bool {
	return target == ErrInvalidScale
}
