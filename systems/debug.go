package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/aoi-adventure/components"
	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/automoto/aoi-adventure/fonts"
	"github.com/automoto/aoi-adventure/shared/physics"
	"github.com/automoto/aoi-adventure/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings toggles the collision overlay.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		cfg.Debug.ShowOverlay = settings.Debug
		SaveCurrentSettings()
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{Debug: cfg.Debug.ShowOverlay})
	}
	return components.Settings.Get(entry)
}

// DrawDebug outlines the tiles in the level's resolv space and every body,
// and prints the player's kinematic state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	scroll := currentScroll(ecs)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, obj := range level.Grid.Space().Objects() {
		// Cull objects outside the view
		if obj.X+obj.W < scroll.X || obj.X > scroll.X+width || obj.Y+obj.H < scroll.Y || obj.Y > scroll.Y+height {
			continue
		}

		c := cfg.Cyan
		if obj.HasTags(tags.ResolvSolid) {
			c = cfg.Grey
		}
		strokeRect(screen, obj.X-scroll.X, obj.Y-scroll.Y, obj.W, obj.H, c)
	}

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Body.Get(e).Rect
		strokeRect(screen, r.X-scroll.X, r.Y-scroll.Y, r.W, r.H, cfg.Green)
	})

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)
	face := fonts.Small.Get()
	lines := []string{
		fmt.Sprintf("pos %.2f %.2f", body.Rect.X, body.Rect.Y),
		fmt.Sprintf("vel %.2f %.2f", body.Vel.X, body.Vel.Y),
		fmt.Sprintf("air %d  %s", body.AirTimer(), body.State()),
		"hit " + flagString(body.Flags) + "  ev " + eventString(body.LastEvents),
		"frame " + body.FrameID(),
	}
	x := cfg.UI.HUDMargin
	y := cfg.UI.HUDMargin + 16
	for i, line := range lines {
		text.Draw(screen, line, face, x, y+i*8, cfg.UI.DebugColor)
	}
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

func flagString(f physics.Flags) string {
	out := []byte("----")
	if f.Top {
		out[0] = 'T'
	}
	if f.Bottom {
		out[1] = 'B'
	}
	if f.Left {
		out[2] = 'L'
	}
	if f.Right {
		out[3] = 'R'
	}
	return string(out)
}

func eventString(e physics.Events) string {
	out := []byte("---")
	if e.Has(physics.EventJump) {
		out[0] = 'J'
	}
	if e.Has(physics.EventFootstep) {
		out[1] = 'F'
	}
	if e.Has(physics.EventLand) {
		out[2] = 'L'
	}
	return string(out)
}
