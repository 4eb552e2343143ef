package pixfield

import "image/color"

// Pixel is a packed 32-bit pixel. Red occupies bits 24-31, green 16-23,
// blue 8-15 and alpha 0-7, so the big-endian byte layout is R, G, B, A.
type Pixel uint32

// PixelAlpha is the alpha byte written by Pack. Only one layer is
// composited, so every packed pixel is opaque.
const PixelAlpha = 0xFF

// Pack converts a logical color into a packed pixel.
//
// Each channel becomes uint8(component*255) with truncation toward zero,
// not rounding: 1.0 packs to 255 and 0.999 packs to 254. Components are
// clamped to [0, 1] first so out-of-range input packs deterministically.
// The color's alpha is ignored and PixelAlpha is stored instead.
func Pack(c Color) Pixel {
	return Pixel(uint32(channel(c.R))<<24 |
		uint32(channel(c.G))<<16 |
		uint32(channel(c.B))<<8 |
		PixelAlpha)
}

// channel truncates a [0, 1] component to a byte.
func channel(v float64) uint8 {
	return uint8(clip01(v) * 255)
}

// Unpack returns the four bytes of the pixel.
func (p Pixel) Unpack() (r, g, b, a uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Color returns the logical color the packed bytes represent.
func (p Pixel) Color() Color {
	r, g, b, a := p.Unpack()
	c := RGBBytes(r, g, b)
	c.A = float64(a) / 255
	return c
}

// RGBA implements the color.Color interface.
// Pixels produced by Pack are opaque, so no premultiplication is needed;
// other alpha values are premultiplied.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.nrgba().RGBA()
}

func (p Pixel) nrgba() color.NRGBA {
	r, g, b, a := p.Unpack()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// PixelModel converts any color into a Pixel by way of Pack.
var PixelModel color.Model = color.ModelFunc(func(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	return Pack(FromColor(c))
})
