package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTileMap(t *testing.T) {
	m, err := ParseTileMap([]string{
		"012",
		"3 4",
		"555",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Width() != 3 || m.Height() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", m.Width(), m.Height())
	}

	cell, err := m.CellAt(1, 1)
	if err != nil || cell != Empty {
		t.Errorf("center cell = %+v, %v; want empty", cell, err)
	}
	cell, _ = m.CellAt(2, 0)
	if cell != Wall(2) {
		t.Errorf("cell (2,0) = %+v, want Wall(2)", cell)
	}
	cell, _ = m.CellAt(0, 1)
	if cell != Wall(3) {
		t.Errorf("cell (0,1) = %+v, want Wall(3)", cell)
	}
}

func TestParseTileMapInconsistentWidth(t *testing.T) {
	_, err := ParseTileMap([]string{"000", "0 ", "000"})
	if err == nil || !strings.Contains(err.Error(), "row 2") {
		t.Fatalf("expected row 2 width error, got %v", err)
	}
}

func TestParseTileMapInvalidCharacter(t *testing.T) {
	_, err := ParseTileMap([]string{"0+0"})
	if !errors.Is(err, ErrInvalidCell) {
		t.Fatalf("expected ErrInvalidCell, got %v", err)
	}
}

func TestParseTileMapRejectsNonASCII(t *testing.T) {
	for _, rows := range [][]string{
		{"0\u00e90", "000"},
		{"0\u00e9", "0\u00e9"},
		{"0\xff0"},
	} {
		if _, err := ParseTileMap(rows); !errors.Is(err, ErrInvalidCell) {
			t.Errorf("%q: expected ErrInvalidCell, got %v", rows, err)
		}
	}
	if _, err := parseMapCharacter(0xC3); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("byte 0xC3: expected ErrInvalidCell, got %v", err)
	}
}

func TestParseTileMapEmpty(t *testing.T) {
	if _, err := ParseTileMap(nil); err == nil {
		t.Error("expected error for empty map")
	}
}

func TestDefaultTileMap(t *testing.T) {
	m := DefaultTileMap()
	if m.Width() != 16 || m.Height() != 16 {
		t.Fatalf("default map is %dx%d", m.Width(), m.Height())
	}
	if err := m.ValidateTextures(6); err != nil {
		t.Errorf("default map should fit a 6-texture atlas: %v", err)
	}
	if err := m.ValidateTextures(5); !errors.Is(err, ErrTextureOutOfRange) {
		t.Errorf("default map uses texture 5, expected ErrTextureOutOfRange, got %v", err)
	}
}

func TestLoadTileMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.map")
	content := "# test level\n" +
		"\n" +
		"0000\n" +
		"|0   |\n" +
		"0110\r\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}

	m, err := LoadTileMap(path)
	if err != nil {
		t.Fatalf("load map: %v", err)
	}
	if m.Width() != 4 || m.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", m.Width(), m.Height())
	}
	if m.IsWall(3, 1) {
		t.Error("framed trailing space should be an empty cell")
	}
	if !m.IsWall(1, 2) {
		t.Error("expected wall at (1,2)")
	}
}

func TestLoadTileMapMissingFile(t *testing.T) {
	_, err := LoadTileMap(filepath.Join(t.TempDir(), "missing.map"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
}
