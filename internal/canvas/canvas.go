// Package canvas implements the RGBA8 pixel buffer the renderer draws into.
//
// Every write is bounds-checked; coordinates outside the buffer are
// dropped silently so a single bad ray can never abort a frame.
package canvas

import (
	"image"
	"image/color"
	"raycaster/internal/mathutil"
)

// Canvas is a fixed-size RGBA8 raster stored row-major in one contiguous slice.
type Canvas struct {
	width  int
	height int
	pix    []uint8 // 4 bytes per pixel, R G B A
}

// New creates a canvas of the given size. Non-positive sizes yield an empty canvas.
func New(width, height int) *Canvas {
	width = mathutil.IntMax(width, 0)
	height = mathutil.IntMax(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Pix returns the raw RGBA bytes. The slice aliases the canvas and is meant
// for handing a finished frame to a presenter.
func (c *Canvas) Pix() []uint8 {
	return c.pix
}

// InBounds reports whether (x, y) addresses a pixel of the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// SetPixel writes one pixel, or does nothing when (x, y) is off-canvas.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if !c.InBounds(x, y) {
		return
	}
	c.put((y*c.width+x)*4, col)
}

// Pixel reads one pixel. ok is false when (x, y) is off-canvas.
func (c *Canvas) Pixel(x, y int) (col Color, ok bool) {
	if !c.InBounds(x, y) {
		return Transparent, false
	}
	i := (y*c.width + x) * 4
	return Pack(c.pix[i], c.pix[i+1], c.pix[i+2], c.pix[i+3]), true
}

// FillRect fills the rectangle (x, y, w, h) clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	x0, x1, ok := mathutil.ClipSpan(x, w, c.width)
	if !ok {
		return
	}
	y0, y1, ok := mathutil.ClipSpan(y, h, c.height)
	if !ok {
		return
	}
	for py := y0; py < y1; py++ {
		row := py * c.width
		for px := x0; px < x1; px++ {
			c.put((row+px)*4, col)
		}
	}
}

// Fill paints the whole canvas.
func (c *Canvas) Fill(col Color) {
	for i := 0; i < len(c.pix); i += 4 {
		c.put(i, col)
	}
}

func (c *Canvas) put(i int, col Color) {
	r, g, b, a := col.Unpack()
	c.pix[i+0] = r
	c.pix[i+1] = g
	c.pix[i+2] = b
	c.pix[i+3] = a
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color {
	col, _ := c.Pixel(x, y)
	return col
}
