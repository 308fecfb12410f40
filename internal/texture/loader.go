package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"raycaster/internal/canvas"
	"raycaster/internal/logging"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// FromImage converts a decoded atlas image into an Atlas. The image must be
// exactly count square textures wide and one texture high.
func FromImage(img image.Image, count int) (*Atlas, error) {
	if count < 1 {
		return nil, fmt.Errorf("texture count %d: %w", count, ErrAtlasDimensions)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dx()%count != 0 {
		return nil, fmt.Errorf("atlas width %d is not a multiple of %d textures: %w", b.Dx(), count, ErrAtlasDimensions)
	}
	size := b.Dx() / count
	if b.Dy() != size {
		return nil, fmt.Errorf("atlas height %d, expected %d for square textures: %w", b.Dy(), size, ErrAtlasDimensions)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return NewAtlas(dst.Pix, size, count)
}

// Load decodes a PNG or BMP atlas from disk.
func Load(path string, count int) (*Atlas, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open atlas %s: %w", path, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode atlas %s: %w", path, err)
	}
	a, err := FromImage(img, count)
	if err != nil {
		return nil, fmt.Errorf("atlas %s: %w", path, err)
	}
	logging.Logger().Info("atlas loaded", "path", path, "format", format, "textures", a.Count(), "size", a.Size())
	return a, nil
}

// LoadOrPlaceholder loads the atlas at path, or builds a placeholder atlas
// of count textures when the file does not exist. Any other failure is
// returned as is.
func LoadOrPlaceholder(path string, count, placeholderSize int) (*Atlas, error) {
	if path != "" {
		a, err := Load(path, count)
		if err == nil {
			return a, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		logging.Logger().Warn("atlas not found, using placeholder textures", "path", path)
	}
	return Placeholder(placeholderSize, count)
}

// placeholderPalette gives each placeholder texture its own base colour.
var placeholderPalette = [][3]int{
	{150, 60, 40},  // brick red
	{90, 90, 110},  // slate
	{60, 120, 60},  // moss
	{160, 130, 60}, // sandstone
	{70, 90, 150},  // blue tile
	{120, 60, 120}, // purple
}

// Placeholder builds count procedural brick textures of size x size pixels.
func Placeholder(size, count int) (*Atlas, error) {
	if size <= 0 || count < 1 {
		return nil, fmt.Errorf("placeholder size %d, count %d: %w", size, count, ErrAtlasDimensions)
	}
	width := size * count
	pix := make([]uint8, width*size*4)

	brickH := max(size/4, 1)
	brickW := max(size/2, 1)
	for tex := 0; tex < count; tex++ {
		base := placeholderPalette[tex%len(placeholderPalette)]
		face := canvas.FromTriplet(base)
		mortar := canvas.FromTriplet([3]int{base[0] / 3, base[1] / 3, base[2] / 3})
		for y := 0; y < size; y++ {
			row := y / brickH
			offset := 0
			if row%2 == 1 {
				offset = brickW / 2
			}
			for x := 0; x < size; x++ {
				col := face
				if y%brickH == 0 || (x+offset)%brickW == 0 {
					col = mortar
				}
				r, g, b, a := col.Unpack()
				i := (y*width + tex*size + x) * 4
				pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
			}
		}
	}
	return NewAtlas(pix, size, count)
}
