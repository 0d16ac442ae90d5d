package factory

import (
	"github.com/automoto/aoi-adventure/archetypes"
	"github.com/automoto/aoi-adventure/components"
	"github.com/automoto/aoi-adventure/shared/leveldata"
	"github.com/automoto/aoi-adventure/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity and builds its tile grid. The grid is
// never modified afterwards.
func CreateLevel(ecs *ecs.ECS, path string, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)

	solids := level.SolidRects()
	rects := make([]physics.Rect, len(solids))
	for i, s := range solids {
		rects[i] = physics.Rect{X: s.X, Y: s.Y, W: s.W, H: s.H}
	}

	w, h := level.PixelSize()
	components.Level.SetValue(entry, components.LevelData{
		Path:   path,
		Level:  level,
		Grid:   physics.NewTileGrid(float64(w), float64(h), level.TileSize, rects),
		Width:  float64(w),
		Height: float64(h),
	})
	return entry
}
