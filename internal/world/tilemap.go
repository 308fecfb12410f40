package world

import (
	"errors"
	"fmt"
)

// ErrTextureOutOfRange is returned when a wall references a texture the atlas does not have.
var ErrTextureOutOfRange = errors.New("wall texture index out of range")

// Cell is one map tile: either empty or a wall carrying a texture index.
type Cell struct {
	Solid   bool
	Texture int
}

// Empty is the open-floor cell.
var Empty = Cell{}

// Wall returns a solid cell drawn with the given atlas texture.
func Wall(texture int) Cell {
	return Cell{Solid: true, Texture: texture}
}

// String renders the cell the way map files spell it.
func (c Cell) String() string {
	if !c.Solid {
		return " "
	}
	return string(rune('0' + c.Texture))
}

// OutOfBoundsError reports a grid read or write outside the map.
type OutOfBoundsError struct {
	Col, Row      int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) out of range [0-%d, 0-%d]", e.Col, e.Row, e.Width-1, e.Height-1)
}

// TileMap is a fixed-size grid of cells stored row-major.
type TileMap struct {
	width  int
	height int
	cells  []Cell
}

// NewTileMap creates a map of the given size with every cell empty.
func NewTileMap(width, height int) *TileMap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &TileMap{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (m *TileMap) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *TileMap) Height() int {
	return m.height
}

// InBounds reports whether (col, row) is a cell of the grid.
func (m *TileMap) InBounds(col, row int) bool {
	return col >= 0 && col < m.width && row >= 0 && row < m.height
}

// CellAt returns the cell at (col, row). Reads outside the grid return an
// *OutOfBoundsError instead of panicking.
func (m *TileMap) CellAt(col, row int) (Cell, error) {
	if !m.InBounds(col, row) {
		return Empty, &OutOfBoundsError{Col: col, Row: row, Width: m.width, Height: m.height}
	}
	return m.cells[row*m.width+col], nil
}

// SetCell replaces the cell at (col, row).
func (m *TileMap) SetCell(col, row int, c Cell) error {
	if !m.InBounds(col, row) {
		return &OutOfBoundsError{Col: col, Row: row, Width: m.width, Height: m.height}
	}
	m.cells[row*m.width+col] = c
	return nil
}

// IsWall reports whether (col, row) is inside the grid and solid.
func (m *TileMap) IsWall(col, row int) bool {
	c, err := m.CellAt(col, row)
	return err == nil && c.Solid
}

// ValidateTextures checks that every wall references a texture below count.
func (m *TileMap) ValidateTextures(count int) error {
	for i, c := range m.cells {
		if c.Solid && (c.Texture < 0 || c.Texture >= count) {
			return fmt.Errorf("cell (%d, %d) uses texture %d, atlas has %d: %w",
				i%m.width, i/m.width, c.Texture, count, ErrTextureOutOfRange)
		}
	}
	return nil
}

// WallCount returns how many cells are solid.
func (m *TileMap) WallCount() int {
	n := 0
	for _, c := range m.cells {
		if c.Solid {
			n++
		}
	}
	return n
}
