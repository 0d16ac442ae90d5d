package scenes

import (
	"fmt"
	"image/color"
	"sync"

	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/automoto/aoi-adventure/systems"
	"github.com/automoto/aoi-adventure/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the title menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	titleMenu    *ui.TitleMenu
	once         sync.Once
	shouldPlay   bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, session *Session) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: session}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.titleMenu.Update()

	if ms.shouldPlay {
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.session))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.titleMenu.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.titleMenu = ui.NewTitleMenu(cfg.C.Title, []ui.MenuItem{
		{
			Label:    func() string { return "Play" },
			OnSelect: func() { ms.shouldPlay = true },
		},
		{
			Label:    func() string { return "Level: " + ms.session.LevelLabel() },
			OnSelect: ms.session.CycleLevel,
		},
		{
			Label:    func() string { return fmt.Sprintf("SFX: %d%%", percent(systems.GetSFXVolume())) },
			OnSelect: func() { systems.CycleSFXVolume() },
		},
		{
			Label:    func() string { return fmt.Sprintf("Music: %d%%", percent(systems.GetMusicVolume())) },
			OnSelect: func() { systems.CycleMusicVolume() },
		},
		{
			Label:    func() string { return fmt.Sprintf("Window: x%d", cfg.C.WindowScale) },
			OnSelect: func() { systems.CycleWindowScale() },
		},
		{
			Label:    func() string { return "Quit" },
			OnSelect: ms.sceneChanger.Quit,
		},
	})

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.titleMenu))

	systems.PlayMusic(ms.ecs, cfg.Sound.Music)
}

func percent(v float64) int {
	return int(v*100 + 0.5)
}
