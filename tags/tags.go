package tags

import (
	"github.com/automoto/aoi-adventure/shared/physics"
	"github.com/yohamta/donburi"
)

var (
	Player = donburi.NewTag().SetName("Player")
	Decor  = donburi.NewTag().SetName("Decor")
)

// ResolvSolid tags the tile objects in the level's resolv space.
const ResolvSolid = physics.TagSolid
