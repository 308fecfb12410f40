// Package texture holds the wall texture atlas: equal square textures laid
// side by side in one RGBA8 image, sampled one vertical column at a time.
package texture

import (
	"errors"
	"fmt"
	"raycaster/internal/canvas"
	"raycaster/internal/mathutil"
)

var (
	// ErrInvalidTextureIndex is returned when a texture index is not in the atlas.
	ErrInvalidTextureIndex = errors.New("invalid texture index")
	// ErrAtlasDimensions is returned when the atlas image is not size*count wide and size high.
	ErrAtlasDimensions = errors.New("atlas dimensions do not match texture layout")
)

// Atlas is a horizontal strip of count textures, each size x size pixels.
type Atlas struct {
	size  int
	count int
	pix   []uint8 // RGBA, stride size*count*4
}

// NewAtlas wraps a raw RGBA buffer holding count textures of size x size pixels.
func NewAtlas(pix []uint8, size, count int) (*Atlas, error) {
	if size <= 0 || count < 1 {
		return nil, fmt.Errorf("texture size %d, count %d: %w", size, count, ErrAtlasDimensions)
	}
	if want := size * count * size * 4; len(pix) != want {
		return nil, fmt.Errorf("buffer has %d bytes, %d textures of %dpx need %d: %w",
			len(pix), count, size, want, ErrAtlasDimensions)
	}
	return &Atlas{size: size, count: count, pix: pix}, nil
}

// Size returns the edge length of one texture in pixels.
func (a *Atlas) Size() int {
	return a.size
}

// Count returns the number of textures in the atlas.
func (a *Atlas) Count() int {
	return a.count
}

// Width returns the full atlas width in pixels.
func (a *Atlas) Width() int {
	return a.size * a.count
}

// Texel returns the pixel (x, y) of texture tex. Coordinates are clamped to the texture.
func (a *Atlas) Texel(tex, x, y int) (canvas.Color, error) {
	if tex < 0 || tex >= a.count {
		return canvas.Transparent, fmt.Errorf("%w: %d (atlas has %d)", ErrInvalidTextureIndex, tex, a.count)
	}
	x = mathutil.IntClamp(x, 0, a.size-1)
	y = mathutil.IntClamp(y, 0, a.size-1)
	return a.at(tex*a.size+x, y), nil
}

func (a *Atlas) at(ax, ay int) canvas.Color {
	i := (ay*a.Width() + ax) * 4
	return canvas.Pack(a.pix[i], a.pix[i+1], a.pix[i+2], a.pix[i+3])
}

// SampleColumn returns outHeight colours taken from column texX of texture
// tex, stretched vertically with nearest-neighbour sampling.
func (a *Atlas) SampleColumn(tex, texX, outHeight int) ([]canvas.Color, error) {
	return a.SampleColumnInto(nil, tex, texX, outHeight)
}

// SampleColumnInto is SampleColumn writing into dst, which is grown as
// needed and returned resliced to outHeight.
func (a *Atlas) SampleColumnInto(dst []canvas.Color, tex, texX, outHeight int) ([]canvas.Color, error) {
	if tex < 0 || tex >= a.count {
		return dst[:0], fmt.Errorf("%w: %d (atlas has %d)", ErrInvalidTextureIndex, tex, a.count)
	}
	if outHeight <= 0 {
		return dst[:0], nil
	}
	if cap(dst) < outHeight {
		dst = make([]canvas.Color, outHeight)
	}
	dst = dst[:outHeight]

	ax := tex*a.size + mathutil.IntClamp(texX, 0, a.size-1)
	for y := 0; y < outHeight; y++ {
		srcY := mathutil.IntClamp(y*a.size/outHeight, 0, a.size-1)
		dst[y] = a.at(ax, srcY)
	}
	return dst, nil
}
