package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"raycaster/internal/logging"
	"strings"
	"unicode/utf8"
)

// ErrInvalidCell is returned for a map character that cannot name a texture.
var ErrInvalidCell = errors.New("invalid map cell")

// DefaultRows is the built-in 16x16 level used when no map file is configured.
var DefaultRows = []string{
	"0000222222220000",
	"1              0",
	"1      11111   0",
	"1     0        0",
	"0     0  1110000",
	"0     3        0",
	"0   10000      0",
	"0   3   11100  0",
	"5   4   0      0",
	"5   4   1  00000",
	"0       1      0",
	"2       1      0",
	"0       0      0",
	"0 0000000      0",
	"0              0",
	"0002222222200000",
}

// DefaultTileMap parses DefaultRows.
func DefaultTileMap() *TileMap {
	m, err := ParseTileMap(DefaultRows)
	if err != nil {
		panic("built-in map is malformed: " + err.Error())
	}
	return m
}

// ParseTileMap builds a map from rows of characters. A space is an empty
// cell; any other character is a wall whose texture index is ch - '0'.
func ParseTileMap(rows []string) (*TileMap, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("map contains no rows")
	}

	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("map row 1 is empty")
	}
	for i, row := range rows {
		if j := strings.IndexFunc(row, func(r rune) bool { return r >= utf8.RuneSelf }); j >= 0 {
			return nil, fmt.Errorf("row %d column %d: %w: non-ASCII character", i+1, j+1, ErrInvalidCell)
		}
		if len(row) != width {
			return nil, fmt.Errorf("row %d has inconsistent width: expected %d, got %d", i+1, width, len(row))
		}
	}

	m := NewTileMap(width, len(rows))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			cell, err := parseMapCharacter(row[x])
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", y+1, x+1, err)
			}
			m.cells[y*width+x] = cell
		}
	}
	return m, nil
}

// parseMapCharacter converts one map byte into a cell.
func parseMapCharacter(ch byte) (Cell, error) {
	if ch == ' ' {
		return Empty, nil
	}
	if ch < '0' || ch >= utf8.RuneSelf {
		return Empty, fmt.Errorf("%w: %q", ErrInvalidCell, ch)
	}
	return Wall(int(ch - '0')), nil
}

// ReadTileMap parses a map from text. Lines starting with '#' are comments
// and zero-length lines are skipped. A row may be framed with '|' on both
// sides so trailing spaces survive editors that strip them.
func ReadTileMap(r io.Reader) (*TileMap, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len(line) >= 2 && line[0] == '|' && line[len(line)-1] == '|' {
			line = line[1 : len(line)-1]
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map: %w", err)
	}
	return ParseTileMap(rows)
}

// LoadTileMap loads a map from the specified file path.
func LoadTileMap(path string) (*TileMap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", path, err)
	}
	defer file.Close()

	m, err := ReadTileMap(file)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", path, err)
	}
	logging.Logger().Info("map loaded", "path", path, "width", m.Width(), "height", m.Height(), "walls", m.WallCount())
	return m, nil
}
