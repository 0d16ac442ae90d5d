// Package leveldata parses level files into tile data.
// It does not depend on ebitengine, donburi or resolv, so tests and the terminal frontend can load levels.
package leveldata

import "errors"

var (
	ErrEmptyMap    = errors.New("leveldata: map has no rows")
	ErrRaggedRow   = errors.New("leveldata: row length differs from first row")
	ErrUnknownTile = errors.New("leveldata: unknown tile code")
	ErrNoSpawn     = errors.New("leveldata: level has no spawn point")
)

// TileKind is what occupies one map cell.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileDirt
	TileGround
	// TileDecor is drawn and animated but never collided with.
	TileDecor
)

// Solid reports whether bodies collide with this kind of tile.
func (k TileKind) Solid() bool {
	return k == TileDirt || k == TileGround
}

func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileDirt:
		return "dirt"
	case TileGround:
		return "ground"
	case TileDecor:
		return "decor"
	}
	return "unknown"
}

// SpawnPoint represents a player spawn location in pixels.
type SpawnPoint struct {
	X, Y float64
}

// SolidRect represents a solid collision tile in pixels.
type SolidRect struct {
	X, Y, W, H float64
}

// TilePos is a cell coordinate together with its kind.
type TilePos struct {
	Col, Row int
	Kind     TileKind
}

// Level is a rectangular grid of tiles.
type Level struct {
	Name     string
	TileSize int
	Cols     int
	Rows     int
	Spawn    SpawnPoint

	cells []TileKind
}

func newLevel(name string, cols, rows, tileSize int) *Level {
	return &Level{
		Name:     name,
		TileSize: tileSize,
		Cols:     cols,
		Rows:     rows,
		cells:    make([]TileKind, cols*rows),
	}
}

// At returns the tile at col,row. Cells outside the level are empty.
func (l *Level) At(col, row int) TileKind {
	if col < 0 || row < 0 || col >= l.Cols || row >= l.Rows {
		return TileEmpty
	}
	return l.cells[row*l.Cols+col]
}

func (l *Level) set(col, row int, k TileKind) {
	l.cells[row*l.Cols+col] = k
}

// PixelSize returns the level's width and height in pixels.
func (l *Level) PixelSize() (int, int) {
	return l.Cols * l.TileSize, l.Rows * l.TileSize
}

// SolidRects lists one rectangle per solid tile, row by row.
func (l *Level) SolidRects() []SolidRect {
	size := float64(l.TileSize)
	var rects []SolidRect
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			if !l.At(col, row).Solid() {
				continue
			}
			rects = append(rects, SolidRect{
				X: float64(col) * size,
				Y: float64(row) * size,
				W: size,
				H: size,
			})
		}
	}
	return rects
}

// Tiles lists every non-empty cell, row by row.
func (l *Level) Tiles() []TilePos {
	var out []TilePos
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			if k := l.At(col, row); k != TileEmpty {
				out = append(out, TilePos{Col: col, Row: row, Kind: k})
			}
		}
	}
	return out
}
