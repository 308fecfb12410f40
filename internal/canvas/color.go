package canvas

import "image/color"

// Color is a packed 32-bit RGBA value: R in bits 0-7, G in 8-15, B in 16-23
// and A in 24-31. In memory on little-endian machines this is the same byte
// order as an RGBA8 pixel.
type Color uint32

// Commonly used colours.
const (
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Transparent Color = 0
)

// Pack builds a Color from its four channels.
func Pack(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGB packs an opaque colour.
func RGB(r, g, b uint8) Color {
	return Pack(r, g, b, 0xFF)
}

// Unpack splits a Color back into its channels. It is the exact inverse of Pack.
func (c Color) Unpack() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// RGBA implements color.Color. The value is treated as non-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: uint8(c), G: uint8(c >> 8), B: uint8(c >> 16), A: uint8(c >> 24)}.RGBA()
}

// FromColor converts any color.Color into a packed Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pack(n.R, n.G, n.B, n.A)
}

// FromTriplet converts a config-style [3]int RGB triplet, clamping each channel.
func FromTriplet(rgb [3]int) Color {
	return RGB(clampByte(rgb[0]), clampByte(rgb[1]), clampByte(rgb[2]))
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
