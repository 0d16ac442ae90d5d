package config

import (
	"image/color"

	"github.com/automoto/aoi-adventure/shared/leveldata"
)

// Config holds general game configuration. Width and Height are the logical
// canvas; the window is that size times WindowScale.
type Config struct {
	Title       string
	Width       int
	Height      int
	WindowScale int
	TPS         int
}

// LevelConfig picks which level loads and where character maps spawn the
// player (TMX levels carry their own spawn).
type LevelConfig struct {
	Default  string
	TileSize int
	Spawn    leveldata.SpawnPoint
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // Fraction of the gap closed each tick (0.0-1.0)
	ClampToLevel    bool
}

// ParallaxLayer is one flat background shape. Factor is how fast it scrolls
// relative to the camera.
type ParallaxLayer struct {
	Factor     float64
	X, Y, W, H float64
	Color      color.RGBA
}

type ParallaxConfig struct {
	Sky    color.RGBA
	Layers []ParallaxLayer
}

// TileColors are the flat fills used when a tile image is missing.
type TileColors struct {
	Dirt   color.RGBA
	Ground color.RGBA
	Grass  color.RGBA
	Decor  []color.RGBA
}

type PlayerLookConfig struct {
	Body   color.RGBA
	Accent color.RGBA
}

// FadeConfig controls the black fade-in when a level starts.
type FadeConfig struct {
	Ticks float32
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// UIConfig contains HUD text placement and colors
type UIConfig struct {
	HUDMargin  int
	TextColor  color.RGBA
	DebugColor color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool // Skip menu and go directly to game
	ShowOverlay bool // Start with the collision overlay on
}

// Global configuration instances
var C *Config
var Level LevelConfig
var Camera CameraConfig
var Parallax ParallaxConfig
var Tiles TileColors
var PlayerLook PlayerLookConfig
var Fade FadeConfig
var Pause PauseConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Title:       "Aoi Adventure",
		Width:       300,
		Height:      200,
		WindowScale: 3,
		TPS:         60,
	}

	Level = LevelConfig{
		Default:  "levels/map_1.txt",
		TileSize: 16,
		Spawn:    leveldata.SpawnPoint{X: 30, Y: 30},
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		ClampToLevel:    true,
	}

	far := color.RGBA{R: 19, G: 36, B: 47, A: 255}
	near := color.RGBA{R: 113, G: 147, B: 162, A: 255}
	// Layers are drawn in order, so slower (farther) ones come first.
	Parallax = ParallaxConfig{
		Sky: Black,
		Layers: []ParallaxLayer{
			{Factor: 0.25, X: 120, Y: 10, W: 70, H: 400, Color: far},
			{Factor: 0.25, X: 280, Y: 30, W: 40, H: 400, Color: far},
			{Factor: 0.5, X: 30, Y: 40, W: 40, H: 400, Color: near},
			{Factor: 0.5, X: 130, Y: 90, W: 100, H: 400, Color: near},
			{Factor: 0.5, X: 300, Y: 80, W: 120, H: 400, Color: near},
		},
	}

	Tiles = TileColors{
		Dirt:   color.RGBA{R: 94, G: 60, B: 40, A: 255},
		Ground: color.RGBA{R: 120, G: 78, B: 50, A: 255},
		Grass:  color.RGBA{R: 76, G: 160, B: 72, A: 255},
		Decor: []color.RGBA{
			{R: 180, G: 230, B: 255, A: 255},
			{R: 140, G: 210, B: 250, A: 255},
			{R: 100, G: 180, B: 240, A: 255},
			{R: 140, G: 210, B: 250, A: 255},
		},
	}

	PlayerLook = PlayerLookConfig{
		Body:   color.RGBA{R: 40, G: 90, B: 200, A: 255},
		Accent: color.RGBA{R: 250, G: 220, B: 180, A: 255},
	}

	Fade = FadeConfig{
		Ticks: 30,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: LightBlue,
		MenuItemHeight:    16,
		MenuItemGap:       8,
		MenuOptions:       []string{"Resume", "Title Menu", "Quit"},
	}

	UI = UIConfig{
		HUDMargin:  4,
		TextColor:  White,
		DebugColor: Yellow,
	}
}
