package components

import (
	"github.com/automoto/aoi-adventure/shared/physics"
	"github.com/yohamta/donburi"
)

type BodyData struct {
	*physics.Body
	// LastEvents holds what the most recent tick reported, for the overlay.
	LastEvents physics.Events
}

var Body = donburi.NewComponentType[BodyData]()
