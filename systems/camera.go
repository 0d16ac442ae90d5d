package systems

import (
	"github.com/automoto/aoi-adventure/components"
	"github.com/automoto/aoi-adventure/config"
	"github.com/automoto/aoi-adventure/shared/gamemath"
	"github.com/automoto/aoi-adventure/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the view center toward the player and derives the
// integer scroll the renderers use.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	rect := components.Body.Get(playerEntry).Rect

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	camera.Position.X = gamemath.Follow(camera.Position.X, rect.X+rect.W/2, config.Camera.FollowSmoothing)
	camera.Position.Y = gamemath.Follow(camera.Position.Y, rect.Y+rect.H/2, config.Camera.FollowSmoothing)

	if levelEntry, ok := components.Level.First(e.World); ok && config.Camera.ClampToLevel {
		level := components.Level.Get(levelEntry)
		camera.Position.X = gamemath.ClampCenter(camera.Position.X, screenWidth, level.Width)
		camera.Position.Y = gamemath.ClampCenter(camera.Position.Y, screenHeight, level.Height)
	}

	camera.Scroll.X = gamemath.ScrollOffset(camera.Position.X, screenWidth)
	camera.Scroll.Y = gamemath.ScrollOffset(camera.Position.Y, screenHeight)
}
