package pixfield

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a logical color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Every constructor in this package
// clips its inputs into range, so a Color built through them is always valid.
type Color struct {
	R, G, B, A float64
}

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

// RGB creates an opaque color from float components clipped to [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: clip01(r), G: clip01(g), B: clip01(b), A: 1}
}

// NewColor creates a color from float components clipped to [0, 1].
func NewColor(r, g, b, a float64) Color {
	return Color{R: clip01(r), G: clip01(g), B: clip01(b), A: clip01(a)}
}

// RGB255 creates an opaque color from integer components clipped to [0, 255].
func RGB255(r, g, b int) Color {
	return Color{
		R: float64(clipInt(r, 0, 255)) / 255,
		G: float64(clipInt(g, 0, 255)) / 255,
		B: float64(clipInt(b, 0, 255)) / 255,
		A: 1,
	}
}

// RGBBytes creates an opaque color from raw byte components.
func RGBBytes(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// FromPacked creates a color from a 0xRRGGBB value and an alpha in [0, 1].
// Bits above the low 24 are ignored.
func FromPacked(rgb uint32, a float64) Color {
	c := RGBBytes(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
	c.A = clip01(a)
	return c
}

// FromColor converts a standard color.Color to Color.
// The input is treated as alpha-premultiplied, as color.Color requires,
// and is un-premultiplied here.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Unparseable input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	ok := true
	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		return Black
	}
	if !ok {
		return Black
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex parses s as hex digits into val and reports whether every
// character was a hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// HSV creates an opaque color from hue [0, 360), saturation and value in [0, 1].
func HSV(h, s, v float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsv(h, clip01(s), clip01(v)))
}

// HCL creates an opaque color from the CIE-L*C*h° (HCL) space.
// h is hue in degrees, c is chroma and l is luminance, both nominally in [0, 1].
// Colors outside the sRGB gamut are clamped.
func HCL(h, c, l float64) Color {
	return fromColorful(colorful.Hcl(h, c, l))
}

// BlendLab mixes two colors in CIE-L*a*b* space, which gives perceptually
// even steps. Alpha is interpolated linearly.
func (c Color) BlendLab(other Color, t float64) Color {
	t = clip01(t)
	mixed := fromColorful(c.colorful().BlendLab(other.colorful(), t))
	mixed.A = clip01(c.A + (other.A-c.A)*t)
	return mixed
}

// Lerp performs linear interpolation between two colors.
// The result is clipped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	return NewColor(
		c.R+(other.R-c.R)*t,
		c.G+(other.G-c.G)*t,
		c.B+(other.B-c.B)*t,
		c.A+(other.A-c.A)*t,
	)
}

// RGBA implements the color.Color interface.
// Returns alpha-premultiplied values in [0, 65535].
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A * 65535)
	r = uint32(c.R * c.A * 65535)
	g = uint32(c.G * c.A * 65535)
	b = uint32(c.B * c.A * 65535)
	return
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(cf colorful.Color) Color {
	cf = cf.Clamped()
	return Color{R: cf.R, G: cf.G, B: cf.B, A: 1}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = NewColor(0, 0, 0, 0)
)

// clip01 restricts a value to [0, 1]. NaN maps to 0.
func clip01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clipInt(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
