package systems

import (
	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/automoto/aoi-adventure/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// CycleSFXVolume steps the effects volume to its next preset and saves it.
func CycleSFXVolume() float64 {
	SetSFXVolume(gamemath.NextStep(cfg.Settings.VolumeSteps, globalSFXVolume))
	SaveCurrentSettings()
	return globalSFXVolume
}

// CycleMusicVolume steps the music volume to its next preset and saves it.
func CycleMusicVolume() float64 {
	SetMusicVolume(gamemath.NextStep(cfg.Settings.VolumeSteps, globalMusicVolume))
	SaveCurrentSettings()
	return globalMusicVolume
}

// CycleWindowScale resizes the window to the next preset scale and saves it.
func CycleWindowScale() int {
	steps := make([]float64, len(cfg.Settings.WindowScales))
	for i, s := range cfg.Settings.WindowScales {
		steps[i] = float64(s)
	}
	cfg.C.WindowScale = int(gamemath.NextStep(steps, float64(cfg.C.WindowScale)))
	ebiten.SetWindowSize(cfg.C.Width*cfg.C.WindowScale, cfg.C.Height*cfg.C.WindowScale)
	SaveCurrentSettings()
	return cfg.C.WindowScale
}
