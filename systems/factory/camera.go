package factory

import (
	"github.com/automoto/aoi-adventure/archetypes"
	"github.com/automoto/aoi-adventure/components"
	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera starts the view at the level's top-left corner and lets it
// ease toward the player from there.
func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: float64(cfg.C.Width) / 2, Y: float64(cfg.C.Height) / 2},
	})
}
