package components

import (
	"github.com/automoto/aoi-adventure/shared/physics"
	"github.com/yohamta/donburi"
)

// DecorData is an animated, non-solid tile.
type DecorData struct {
	X, Y float64
	Anim *physics.Animator
}

var Decor = donburi.NewComponentType[DecorData]()
