package systems

import (
	"strings"

	"github.com/automoto/aoi-adventure/components"
	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/automoto/aoi-adventure/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD prints the level name in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	name := strings.ToUpper(strings.ReplaceAll(components.Level.Get(levelEntry).Level.Name, "_", " "))
	margin := cfg.UI.HUDMargin
	text.Draw(screen, name, fonts.HUD.Get(), margin, margin+8, cfg.UI.TextColor)
}
