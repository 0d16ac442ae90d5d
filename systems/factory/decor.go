package factory

import (
	"github.com/automoto/aoi-adventure/archetypes"
	"github.com/automoto/aoi-adventure/components"
	"github.com/automoto/aoi-adventure/prefabs"
	"github.com/automoto/aoi-adventure/shared/leveldata"
	"github.com/automoto/aoi-adventure/shared/physics"
	"github.com/yohamta/donburi/ecs"
)

// CreateDecor spawns one animated entity per decoration tile and returns how
// many it made.
func CreateDecor(ecs *ecs.ECS, level *leveldata.Level, spec *prefabs.PlayerSpec) (int, error) {
	table, err := spec.DecorTable()
	if err != nil {
		return 0, err
	}

	n := 0
	size := float64(level.TileSize)
	for _, t := range level.Tiles() {
		if t.Kind != leveldata.TileDecor {
			continue
		}
		decor := archetypes.Decor.Spawn(ecs)
		components.Decor.SetValue(decor, components.DecorData{
			X:    float64(t.Col) * size,
			Y:    float64(t.Row) * size,
			Anim: physics.NewAnimator(table, physics.StateIdle),
		})
		n++
	}
	return n, nil
}
