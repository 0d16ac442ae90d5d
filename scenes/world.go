package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/automoto/aoi-adventure/prefabs"
	"github.com/automoto/aoi-adventure/systems"
	"github.com/automoto/aoi-adventure/systems/factory"

	"github.com/automoto/aoi-adventure/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	once         sync.Once
}

// NewPlatformerScene creates the playable level scene for the session's level
func NewPlatformerScene(sc SceneChanger, session *Session) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, session: session}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	switch systems.GetOrCreatePause(ps.ecs).Exit {
	case components.ExitToTitle:
		systems.ResumeMusic(ps.ecs)
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.session))
	case components.ExitGame:
		ps.sceneChanger.Quit()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, drains last tick's sounds)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePause)
	if ps.session.Watcher != nil {
		ecs.AddSystem(systems.NewUpdatePrefabs(ps.session.Watcher, func(spec *prefabs.PlayerSpec) {
			ps.session.Spec = spec
		}))
	}

	// Movement for the whole tick finishes before anything draws
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDecor))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateFade))

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawDecor)
	ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawFade)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	level := factory.CreateLevel(ps.ecs, ps.session.LevelPath, ps.session.Level)
	levelData := components.Level.Get(level)

	factory.CreateCamera(ps.ecs)

	if _, err := factory.CreatePlayer(ps.ecs, levelData, ps.session.Spec); err != nil {
		log.Fatalf("Failed to create player: %v", err)
	}
	if _, err := factory.CreateDecor(ps.ecs, ps.session.Level, ps.session.Spec); err != nil {
		log.Fatalf("Failed to create decorations: %v", err)
	}

	factory.CreateFade(ps.ecs)

	systems.PlayMusic(ps.ecs, cfg.Sound.Music)
}
