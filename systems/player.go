package systems

import (
	"github.com/automoto/aoi-adventure/components"
	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/automoto/aoi-adventure/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns this frame's input into movement intent. A jump pressed
// outside the grace window is dropped.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dir := MoveIntent(input)
	jump := GetAction(input, cfg.ActionJump).JustPressed

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		body.SetDirection(dir)
		if jump {
			body.Jump()
		}
	})
}
