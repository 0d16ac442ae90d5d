package config

import "github.com/automoto/aoi-adventure/assets/sfx"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundWalk0
	SoundWalk1
	SoundLand
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to synthesized sound names
type SoundConfig struct {
	Music             string
	SFX               map[SoundID]string
	Footsteps         []SoundID
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.5,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		Music: sfx.Music,
		SFX: map[SoundID]string{
			SoundJump:       sfx.Jump,
			SoundWalk0:      sfx.Walk0,
			SoundWalk1:      sfx.Walk1,
			SoundLand:       sfx.Land,
			SoundMenuSelect: sfx.Select,
		},
		Footsteps: []SoundID{SoundWalk0, SoundWalk1},
		VolumeMultipliers: map[SoundID]float64{
			SoundJump: 0.5,
		},
	}
}
