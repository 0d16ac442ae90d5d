package systems

import (
	"github.com/automoto/aoi-adventure/components"
	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/automoto/aoi-adventure/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics steps every body once against the level's tiles and turns
// the events it reports into sounds.
func UpdatePhysics(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		events := body.Tick(level.Grid)
		body.LastEvents = events

		if events.Has(physics.EventJump) {
			PlaySFX(ecs, cfg.SoundJump)
		}
		if events.Has(physics.EventFootstep) {
			PlayFootstep(ecs)
		}
		if events.Has(physics.EventLand) {
			PlaySFX(ecs, cfg.SoundLand)
		}
	})
}

// UpdateDecor advances the animated decoration tiles.
func UpdateDecor(ecs *ecs.ECS) {
	components.Decor.Each(ecs.World, func(e *donburi.Entry) {
		components.Decor.Get(e).Anim.Advance(physics.StateIdle)
	})
}
