package pixfield

// ScaledImage is a finished frame: a pixel buffer plus the integer
// nearest-neighbor magnification the display layer should apply.
//
// ScaledImage is purely descriptive. Wrapping a buffer copies and
// resamples nothing; magnification happens when the display layer blits.
type ScaledImage struct {
	Buffer *PixelBuffer
	ScaleX int
	ScaleY int
}

// NewScaledImage wraps buf with the given scale factors.
// Ownership of buf passes to the returned image.
// Returns a *ScaleError (matching ErrInvalidScale) if either factor is below 1.
func NewScaledImage(buf *PixelBuffer, scaleX, scaleY int) (ScaledImage, error) {
	if buf == nil {
		return ScaledImage{}, ErrNilBuffer
	}
	if scaleX < 1 || scaleY < 1 {
		return ScaledImage{}, &ScaleError{X: scaleX, Y: scaleY}
	}
	return ScaledImage{Buffer: buf, ScaleX: scaleX, ScaleY: scaleY}, nil
}

// DisplaySize returns the size of the image after magnification.
func (s ScaledImage) DisplaySize() (width, height int) {
	if s.Buffer == nil {
		return 0, 0
	}
	return s.Buffer.Width() * s.ScaleX, s.Buffer.Height() * s.ScaleY
}
