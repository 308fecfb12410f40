package world

import (
	"errors"
	"testing"
)

func TestCellAtOutOfBounds(t *testing.T) {
	m := NewTileMap(3, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		_, err := m.CellAt(p[0], p[1])
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("CellAt(%d,%d) error = %v, want *OutOfBoundsError", p[0], p[1], err)
		}
		if oob.Col != p[0] || oob.Row != p[1] || oob.Width != 3 || oob.Height != 2 {
			t.Errorf("unexpected error fields %+v", oob)
		}
	}
}

func TestSetCell(t *testing.T) {
	m := NewTileMap(2, 2)
	if err := m.SetCell(1, 0, Wall(4)); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if c, _ := m.CellAt(1, 0); c != Wall(4) {
		t.Errorf("cell = %+v", c)
	}
	if err := m.SetCell(2, 0, Wall(1)); err == nil {
		t.Error("expected out of bounds error")
	}
	if m.WallCount() != 1 {
		t.Errorf("WallCount = %d, want 1", m.WallCount())
	}
}

func TestCellString(t *testing.T) {
	if Empty.String() != " " || Wall(3).String() != "3" {
		t.Errorf("got %q and %q", Empty.String(), Wall(3).String())
	}
}

func TestIsWallOutsideGrid(t *testing.T) {
	m := NewTileMap(1, 1)
	_ = m.SetCell(0, 0, Wall(0))
	if !m.IsWall(0, 0) || m.IsWall(1, 0) || m.IsWall(-1, -1) {
		t.Error("IsWall must be true only for solid in-grid cells")
	}
}
