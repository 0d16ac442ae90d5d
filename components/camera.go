package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // Smoothed view center in world pixels
	Scroll   math.Vec2 // Truncated top-left offset used for drawing
}

var Camera = donburi.NewComponentType[CameraData]()
