package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/aoi-adventure/config"
	"github.com/automoto/aoi-adventure/fonts"
	"github.com/automoto/aoi-adventure/prefabs"
	"github.com/automoto/aoi-adventure/scenes"
	"github.com/automoto/aoi-adventure/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current update.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(session *scenes.Session) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, session)
	} else {
		g.scene = scenes.NewMenuScene(g, session)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelPath := flag.String("level", config.Level.Default, "level to play: an embedded path like levels/level_1.tmx, or a .txt/.tmx file on disk")
	prefabDir := flag.String("prefabs", "", "directory of prefab specs to load and hot reload instead of the embedded ones")
	skipMenu := flag.Bool("skip-menu", false, "start in the level instead of the title menu")
	debug := flag.Bool("debug", false, "start with the collision overlay on")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.ShowOverlay = *debug

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Malformed levels and specs are fatal before the window opens
	level, err := scenes.LoadLevel(*levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	session := &scenes.Session{LevelPath: *levelPath, Level: level}
	if *prefabDir != "" {
		prefabs.Dir = *prefabDir
		w, err := prefabs.NewWatcher(*prefabDir)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", *prefabDir, err)
		} else {
			session.Watcher = w
			defer w.Close()
		}
	}
	session.Spec, err = prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatalf("Failed to load player spec: %v", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*config.C.WindowScale, config.C.Height*config.C.WindowScale)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(session)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
