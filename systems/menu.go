package systems

import (
	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/yohamta/donburi/ecs"
)

// MenuNavigator is a menu that can be driven without a mouse.
type MenuNavigator interface {
	Move(delta int)
	Activate()
}

// NewUpdateMenu maps the menu actions onto nav.
func NewUpdateMenu(nav MenuNavigator) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			nav.Move(-1)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			nav.Move(1)
		}
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			nav.Activate()
		}
	}
}
