package pixfield

import (
	"encoding/binary"
	"image"
	"image/color"
)

// PixelBuffer is a contiguous, row-major buffer of packed pixels for one frame.
//
// A PixelBuffer returned by a Compositor is complete and immutable: the
// compositor keeps no reference to it and never writes to it again.
// Consumers must treat its contents as read-only.
type PixelBuffer struct {
	width  int
	height int
	pix    []Pixel
}

// newPixelBuffer allocates a zeroed buffer. Every frame gets a fresh one.
func newPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// Width returns the width of the buffer.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Len returns the number of pixels, always Width()*Height().
func (b *PixelBuffer) Len() int {
	return len(b.pix)
}

// Stride returns the distance in pixels between vertically adjacent pixels.
func (b *PixelBuffer) Stride() int {
	return b.width
}

// Pixels returns the underlying pixels in row-major order.
// The slice aliases the buffer and must not be modified.
func (b *PixelBuffer) Pixels() []Pixel {
	return b.pix
}

// PixelAt returns the pixel at (row, col), or 0 if out of range.
func (b *PixelBuffer) PixelAt(row, col int) Pixel {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return 0
	}
	return b.pix[row*b.width+col]
}

// Bytes returns a fresh copy of the pixels as bytes in R, G, B, A order,
// 4 bytes per pixel. This is the layout of image.RGBA.Pix and of most
// texture upload routines.
func (b *PixelBuffer) Bytes() []byte {
	out := make([]byte, len(b.pix)*4)
	for i, p := range b.pix {
		binary.BigEndian.PutUint32(out[i*4:], uint32(p))
	}
	return out
}

// ToImage converts the buffer to an image.RGBA.
// Pixels are opaque, so premultiplied and straight alpha agree.
func (b *PixelBuffer) ToImage() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Bytes(),
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// At implements the image.Image interface.
func (b *PixelBuffer) At(x, y int) color.Color {
	return b.PixelAt(y, x)
}

// Bounds implements the image.Image interface.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *PixelBuffer) ColorModel() color.Model {
	return PixelModel
}
