// Package pixfield turns a per-pixel color function into packed pixel
// buffers, once per animation frame, at interactive rates.
//
// # Overview
//
// An image is described as a pure function from (time, position) to Color.
// A [Field] is that function for one instant: a lazy description with a
// fixed width and height. A [Compositor] forces a field on all cores,
// packs every color into a 32-bit [Pixel] and returns a [PixelBuffer].
// [Compositor.Frame] runs the whole pipeline for an [Animation] and wraps
// the buffer in a [ScaledImage] that a display layer can blit.
//
// # Quick Start
//
//	c, err := pixfield.NewCompositor(pixfield.WithScale(4, 4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	anim := pixfield.AnimatePoints(160, 120, func(t, x, y float64) pixfield.Color {
//	    return pixfield.RGB(0.5+0.5*math.Sin(t+x), 0.5+0.5*math.Cos(t+y), 0.5)
//	})
//
//	img, err := c.Frame(anim, 1.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, h := img.DisplaySize() // 640x480
//
// # Pixel Format
//
// A Pixel holds red in bits 24-31, green in 16-23, blue in 8-15 and alpha
// in 0-7. Channels are converted with truncation, uint8(v*255), and alpha
// is always 255 because only one layer is composited.
//
// # Concurrency
//
// Generators must be pure and safe for concurrent use. The compositor
// gives each worker a disjoint, contiguous range of the output buffer and
// joins once at the end of the frame; nothing else is shared. Frames are
// produced one at a time, and each frame gets a freshly allocated buffer.
//
// # Display
//
// This package never draws to a screen. See the display package for
// presenters that show a ScaledImage in a window or a terminal.
package pixfield
