package systems

import (
	"github.com/automoto/aoi-adventure/components"
	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFade steps the fade-in tween by one tick. The tween's duration is
// measured in ticks.
func UpdateFade(ecs *ecs.ECS) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Done || fade.Tween == nil {
		return
	}
	fade.Alpha, fade.Done = fade.Tween.Update(1)
}

// DrawFade covers the screen with black at the tween's current alpha.
func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Alpha <= 0 {
		return
	}
	c := cfg.Black
	c.A = uint8(fade.Alpha * 255)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), c, false)
}
