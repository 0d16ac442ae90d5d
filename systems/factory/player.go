package factory

import (
	"github.com/automoto/aoi-adventure/archetypes"
	"github.com/automoto/aoi-adventure/components"
	"github.com/automoto/aoi-adventure/prefabs"
	"github.com/automoto/aoi-adventure/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at the level's spawn point using the stats,
// size and frames from spec.
func CreatePlayer(ecs *ecs.ECS, level *components.LevelData, spec *prefabs.PlayerSpec) (*donburi.Entry, error) {
	table, err := spec.Table()
	if err != nil {
		return nil, err
	}

	player := archetypes.Player.Spawn(ecs)
	spawn := physics.Point{X: level.Level.Spawn.X, Y: level.Level.Spawn.Y}
	w, h := spec.Size.W, spec.Size.H

	components.Body.SetValue(player, components.BodyData{
		Body: physics.NewBody(spawn, w, h, spec.Stats, table),
	})

	return player, nil
}
