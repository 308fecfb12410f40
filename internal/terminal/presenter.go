// Package terminal shows the ray-cast view in a text terminal using
// half-block cells: each cell carries two vertically stacked pixels.
package terminal

import (
	"raycaster/internal/canvas"

	"github.com/gdamore/tcell/v2"
)

// HalfBlock is drawn with the upper pixel as foreground and the lower as background.
const HalfBlock = '▀'

var statusStyle = tcell.StyleDefault.
	Foreground(tcell.ColorWhite).
	Background(tcell.ColorBlack)

// Presenter copies the 3D view region of a canvas onto a screen.
type Presenter struct {
	screen tcell.Screen
	viewX  int
}

// NewPresenter presents the canvas columns from viewX rightwards.
func NewPresenter(screen tcell.Screen, viewX int) *Presenter {
	return &Presenter{screen: screen, viewX: viewX}
}

// ToColor converts a canvas colour to a true-colour terminal colour; alpha is ignored.
func ToColor(col canvas.Color) tcell.Color {
	r, g, b, _ := col.Unpack()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ViewRows returns how many screen rows the picture uses for a screen of
// height h; the last row is kept for status when there is room.
func ViewRows(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Present scales the view region to the whole screen by nearest-neighbour
// sampling, writes status on the bottom row and shows the result.
func (p *Presenter) Present(c *canvas.Canvas, status string) {
	w, h := p.screen.Size()
	rows := ViewRows(h)
	regionW := c.Width() - p.viewX
	if w <= 0 || rows <= 0 || regionW <= 0 {
		return
	}

	halfRows := 2 * rows
	for cy := 0; cy < rows; cy++ {
		upperY := (2 * cy) * c.Height() / halfRows
		lowerY := (2*cy + 1) * c.Height() / halfRows
		for cx := 0; cx < w; cx++ {
			sx := p.viewX + cx*regionW/w
			upper, _ := c.Pixel(sx, upperY)
			lower, _ := c.Pixel(sx, lowerY)
			style := tcell.StyleDefault.Foreground(ToColor(upper)).Background(ToColor(lower))
			p.screen.SetContent(cx, cy, HalfBlock, nil, style)
		}
	}

	if rows < h {
		p.drawStatus(w, h-1, status)
	}
	p.screen.Show()
}

func (p *Presenter) drawStatus(w, y int, status string) {
	x := 0
	for _, r := range status {
		if x >= w {
			break
		}
		p.screen.SetContent(x, y, r, nil, statusStyle)
		x++
	}
	for ; x < w; x++ {
		p.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
}
