package physics

import "math"

// Flags records which sides of a moving box hit a tile during one Resolve.
type Flags struct {
	Top, Bottom, Left, Right bool
}

// Any reports whether any side collided.
func (f Flags) Any() bool {
	return f.Top || f.Bottom || f.Left || f.Right
}

// Resolve moves r by disp against tiles, one axis at a time: X first, then Y
// against the x-corrected box. An overlapped tile clamps the leading edge
// flush with its near side. When several tiles overlap, the edge ends at the
// nearest one so the box never ends up inside any of them.
func Resolve(r Rect, disp Vec, tiles Collider) (Rect, Flags) {
	var flags Flags
	var buf [8]Rect

	r.X += disp.X
	if disp.X != 0 {
		for _, t := range tiles.Overlapping(r, buf[:0]) {
			if disp.X > 0 {
				r.X = math.Min(r.X, t.X-r.W)
				flags.Right = true
			} else {
				r.X = math.Max(r.X, t.Right())
				flags.Left = true
			}
		}
	}

	r.Y += disp.Y
	if disp.Y != 0 {
		for _, t := range tiles.Overlapping(r, buf[:0]) {
			if disp.Y > 0 {
				r.Y = math.Min(r.Y, t.Y-r.H)
				flags.Bottom = true
			} else {
				r.Y = math.Max(r.Y, t.Bottom())
				flags.Top = true
			}
		}
	}

	return r, flags
}
