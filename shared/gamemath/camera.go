package gamemath

import "math"

// Follow moves current toward target by the given fraction of the gap.
// A smoothing of 0.1 matches the classic "scroll += (target - scroll) / 10".
func Follow(current, target, smoothing float64) float64 {
	return current + (target-current)*smoothing
}

// ClampCenter keeps a view of size viewSize centered on center inside
// [0, levelSize]. Levels narrower than the view are centered instead.
func ClampCenter(center, viewSize, levelSize float64) float64 {
	if levelSize <= viewSize {
		return levelSize / 2
	}
	half := viewSize / 2
	return math.Max(half, math.Min(levelSize-half, center))
}

// ScrollOffset converts a view center into the integer top-left scroll used
// for drawing, truncating toward zero.
func ScrollOffset(center, viewSize float64) float64 {
	return math.Trunc(center - viewSize/2)
}

// Parallax returns where a background element at x lands on screen for a
// layer that scrolls at factor times the camera speed.
func Parallax(x, scroll, factor float64) float64 {
	return x - scroll*factor
}

// ParallaxPos places a background element at (x, y) for a layer scrolling at
// factor times the camera on both axes.
func ParallaxPos(x, y, scrollX, scrollY, factor float64) (float64, float64) {
	return Parallax(x, scrollX, factor), Parallax(y, scrollY, factor)
}
