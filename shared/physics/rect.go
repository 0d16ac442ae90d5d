// Package physics is the movement and collision kernel: tile grids, the
// axis-separated resolver, frame animation and per-tick body integration.
// It has no dependencies on ebitengine or donburi so it can run headless
// under tests and the terminal frontend.
package physics

// Point is an immutable world position, used for spawns.
type Point struct {
	X, Y float64
}

// Vec is a velocity or displacement in pixels per tick.
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether the two boxes share interior area. Boxes that
// only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Collider answers which solid rectangles overlap a query box. Results are
// appended to dst.
type Collider interface {
	Overlapping(r Rect, dst []Rect) []Rect
}

// Tiles is a plain list of solid rectangles scanned linearly.
type Tiles []Rect

func (t Tiles) Overlapping(r Rect, dst []Rect) []Rect {
	for _, tile := range t {
		if tile.Overlaps(r) {
			dst = append(dst, tile)
		}
	}
	return dst
}
