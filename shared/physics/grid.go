package physics

import (
	"math"

	"github.com/solarlune/resolv"
)

// TagSolid marks tile objects inside the grid's resolv space.
const TagSolid = "solid"

// TileGrid is the immutable set of solid tiles for one level, bucketed in a
// resolv spatial hash so queries only visit nearby cells.
type TileGrid struct {
	space  *resolv.Space
	tiles  []Rect
	cellW  float64
	cellH  float64
	width  float64
	height float64
}

// NewTileGrid builds a grid covering width x height pixels. cellSize is
// normally the tile size.
func NewTileGrid(width, height float64, cellSize int, tiles []Rect) *TileGrid {
	if cellSize <= 0 {
		cellSize = 16
	}
	cellsX := int(math.Ceil(width / float64(cellSize)))
	cellsY := int(math.Ceil(height / float64(cellSize)))
	if cellsX < 1 {
		cellsX = 1
	}
	if cellsY < 1 {
		cellsY = 1
	}

	g := &TileGrid{
		space:  resolv.NewSpace(cellsX*cellSize, cellsY*cellSize, cellSize, cellSize),
		tiles:  make([]Rect, len(tiles)),
		cellW:  float64(cellSize),
		cellH:  float64(cellSize),
		width:  width,
		height: height,
	}
	copy(g.tiles, tiles)

	for i, t := range g.tiles {
		obj := resolv.NewObject(t.X, t.Y, t.W, t.H, TagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, t.W, t.H))
		obj.Data = i
		g.space.Add(obj)
	}
	return g
}

// Overlapping returns every solid tile sharing interior area with r.
func (g *TileGrid) Overlapping(r Rect, dst []Rect) []Rect {
	x0 := int(math.Floor(r.X / g.cellW))
	y0 := int(math.Floor(r.Y / g.cellH))
	x1 := int(math.Floor(r.Right() / g.cellW))
	y1 := int(math.Floor(r.Bottom() / g.cellH))

	start := len(dst)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			cell := g.space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				if !obj.HasTags(TagSolid) {
					continue
				}
				t := Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
				if !t.Overlaps(r) || containsRect(dst[start:], t) {
					continue
				}
				dst = append(dst, t)
			}
		}
	}
	return dst
}

// Tiles returns the grid's rectangles. The slice must not be modified.
func (g *TileGrid) Tiles() []Rect {
	return g.tiles
}

// Space exposes the backing spatial hash for debug drawing.
func (g *TileGrid) Space() *resolv.Space {
	return g.space
}

// Size returns the level size in pixels.
func (g *TileGrid) Size() (float64, float64) {
	return g.width, g.height
}

func containsRect(rs []Rect, r Rect) bool {
	for _, o := range rs {
		if o == r {
			return true
		}
	}
	return false
}
