package factory

import (
	"github.com/automoto/aoi-adventure/archetypes"
	"github.com/automoto/aoi-adventure/components"
	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFade spawns a full black overlay that tweens to transparent over
// cfg.Fade.Ticks ticks.
func CreateFade(ecs *ecs.ECS) *donburi.Entry {
	fade := archetypes.Fade.Spawn(ecs)
	components.Fade.SetValue(fade, components.FadeData{
		Tween: gween.New(1, 0, cfg.Fade.Ticks, ease.OutQuad),
		Alpha: 1,
	})
	return fade
}
