package render

import (
	"math"
	"raycaster/internal/canvas"
	"raycaster/internal/config"
	"raycaster/internal/raycast"
	"raycaster/internal/texture"
)

// ColumnRenderer turns a hit into a textured vertical strip on the canvas.
type ColumnRenderer struct {
	cfg   config.RenderConfig
	atlas *texture.Atlas
	strip []canvas.Color // reused between columns
}

// NewColumnRenderer creates a renderer sampling from atlas.
func NewColumnRenderer(cfg config.RenderConfig, atlas *texture.Atlas) *ColumnRenderer {
	return &ColumnRenderer{
		cfg:   cfg,
		atlas: atlas,
		strip: make([]canvas.Color, 0, cfg.CanvasHeight),
	}
}

// ColumnHeight returns the on-screen strip height for a wall at distance d:
// floor(H / d) clamped to [1, H].
func (r *ColumnRenderer) ColumnHeight(d float64) int {
	h := r.cfg.CanvasHeight
	if !(d > 0) {
		return h
	}
	v := math.Floor(float64(h) / d)
	switch {
	case v >= float64(h):
		return h
	case v < 1:
		return 1
	}
	return int(v)
}

// Top returns the canvas row of the first pixel of a strip of height h.
func (r *ColumnRenderer) Top(h int) int {
	return r.cfg.CanvasHeight/2 - h/2 + r.cfg.VerticalOffset
}

// Horizon returns the canvas row the strips are centred on.
func (r *ColumnRenderer) Horizon() int {
	return r.cfg.CanvasHeight/2 + r.cfg.VerticalOffset
}

// ScreenX returns the canvas column for ray index column.
func (r *ColumnRenderer) ScreenX(column int) int {
	return r.cfg.ViewX + column
}

// DrawColumn writes the strip for hit. Rows that fall off the canvas are
// skipped. The only error is an invalid texture index in hit.
func (r *ColumnRenderer) DrawColumn(c *canvas.Canvas, hit raycast.HitRecord) error {
	h := r.ColumnHeight(hit.Distance)
	strip, err := r.atlas.SampleColumnInto(r.strip, hit.Texture, int(hit.TexX), h)
	if err != nil {
		return err
	}
	r.strip = strip

	x := r.ScreenX(hit.Column)
	top := r.Top(h)
	for j, col := range strip {
		c.SetPixel(x, top+j, col)
	}
	return nil
}
