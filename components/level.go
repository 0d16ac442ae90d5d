package components

import (
	"github.com/automoto/aoi-adventure/shared/leveldata"
	"github.com/automoto/aoi-adventure/shared/physics"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Path  string
	Level *leveldata.Level
	Grid  *physics.TileGrid
	// Width and Height are the level size in pixels.
	Width  float64
	Height float64
}

var Level = donburi.NewComponentType[LevelData]()
