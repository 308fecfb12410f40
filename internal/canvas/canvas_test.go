package canvas

import (
	"image/color"
	"math"
	"testing"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	// Boundary values plus a spread of interior values for every channel.
	samples := []uint8{0, 1, 2, 15, 16, 100, 127, 128, 200, 225, 226, 254, 255}
	for _, r := range samples {
		for _, g := range samples {
			for _, b := range samples {
				for _, a := range samples {
					gr, gg, gb, ga := Pack(r, g, b, a).Unpack()
					if gr != r || gg != g || gb != b || ga != a {
						t.Fatalf("round trip of (%d,%d,%d,%d) gave (%d,%d,%d,%d)", r, g, b, a, gr, gg, gb, ga)
					}
				}
			}
		}
	}
}

func TestPackChannelOrder(t *testing.T) {
	if got := Pack(0x11, 0x22, 0x33, 0x44); got != 0x44332211 {
		t.Errorf("Pack = %#08x, want 0x44332211", uint32(got))
	}
}

func TestColorImplementsColorColor(t *testing.T) {
	var c color.Color = Pack(10, 20, 30, 255)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("converted to %+v", n)
	}
	if FromColor(n) != Pack(10, 20, 30, 255) {
		t.Errorf("FromColor did not invert RGBA")
	}
}

func TestFromTripletClamps(t *testing.T) {
	if got := FromTriplet([3]int{-5, 300, 42}); got != RGB(0, 255, 42) {
		t.Errorf("FromTriplet = %#08x", uint32(got))
	}
}

func TestSetPixelAndPixel(t *testing.T) {
	c := New(4, 3)
	red := RGB(255, 0, 0)
	c.SetPixel(3, 2, red)

	got, ok := c.Pixel(3, 2)
	if !ok || got != red {
		t.Fatalf("Pixel(3,2) = %#08x, %v", uint32(got), ok)
	}
	if _, ok := c.Pixel(4, 0); ok {
		t.Error("Pixel(4,0) should be out of bounds")
	}
	// the last pixel occupies the last four bytes
	pix := c.Pix()
	if pix[len(pix)-4] != 255 || pix[len(pix)-1] != 255 {
		t.Errorf("unexpected trailing bytes %v", pix[len(pix)-4:])
	}
}

func TestSetPixelOutOfBoundsIsNoop(t *testing.T) {
	c := New(5, 5)
	c.Fill(White)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {math.MinInt, math.MaxInt}, {math.MaxInt, 2}} {
		c.SetPixel(p[0], p[1], Black)
	}
	assertAll(t, c, White)
}

func TestFillRectClipsToCanvas(t *testing.T) {
	const w, h = 8, 6
	cases := []struct {
		name         string
		x, y, rw, rh int
	}{
		{"inside", 1, 1, 3, 2},
		{"overhang left top", -3, -2, 5, 4},
		{"overhang right bottom", 6, 4, 10, 10},
		{"covers everything", -100, -100, 1000, 1000},
		{"outside right", 8, 0, 4, 4},
		{"outside above", 0, -10, 4, 4},
		{"zero size", 2, 2, 0, 3},
		{"negative size", 2, 2, -3, 3},
		{"overflowing extent", math.MaxInt - 2, math.MaxInt - 2, math.MaxInt, math.MaxInt},
		{"min origin max extent", math.MinInt, math.MinInt, math.MaxInt, math.MaxInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(w, h)
			c.Fill(White)
			red := RGB(255, 0, 0)
			c.FillRect(tc.x, tc.y, tc.rw, tc.rh, red)

			for py := 0; py < h; py++ {
				for px := 0; px < w; px++ {
					inside := covers(px, tc.x, tc.rw) && covers(py, tc.y, tc.rh)
					want := White
					if inside {
						want = red
					}
					if got, _ := c.Pixel(px, py); got != want {
						t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", px, py, uint32(got), uint32(want))
					}
				}
			}
			if len(c.Pix()) != w*h*4 {
				t.Fatalf("buffer resized to %d bytes", len(c.Pix()))
			}
		})
	}
}

func TestCanvasAsImage(t *testing.T) {
	c := New(3, 2)
	c.SetPixel(1, 1, RGB(1, 2, 3))
	if b := c.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("Bounds = %v", b)
	}
	if got := FromColor(c.At(1, 1)); got != RGB(1, 2, 3) {
		t.Errorf("At(1,1) = %#08x", uint32(got))
	}
}

func TestNewNegativeSize(t *testing.T) {
	c := New(-3, 4)
	if c.Width() != 0 || len(c.Pix()) != 0 {
		t.Errorf("expected empty canvas, got %dx%d", c.Width(), c.Height())
	}
	c.FillRect(0, 0, 10, 10, White)
	c.SetPixel(0, 0, White)
}

func assertAll(t *testing.T, c *Canvas, want Color) {
	t.Helper()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if got, _ := c.Pixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

// covers reports whether p lies in [start, start+length) without overflowing.
func covers(p, start, length int) bool {
	if length <= 0 || p < start {
		return false
	}
	// p >= start, so the wrapped unsigned difference is the true distance
	return uint64(p)-uint64(start) < uint64(length)
}
