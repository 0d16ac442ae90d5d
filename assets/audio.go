package assets

import (
	"bytes"
	"fmt"

	"github.com/automoto/aoi-adventure/assets/sfx"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sounds on first use and caches the PCM so every
// later play is just a new player over the same bytes.
type AudioLoader struct {
	sfxCache map[string][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// Preload synthesizes a sound without creating a player. Call this at
// startup to avoid a hitch the first time it plays.
func (l *AudioLoader) Preload(name string) error {
	_, err := l.pcm(name)
	return err
}

func (l *AudioLoader) pcm(name string) ([]byte, error) {
	if data, ok := l.sfxCache[name]; ok {
		return data, nil
	}
	data, err := sfx.Synthesize(name, l.context.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize %s: %w", name, err)
	}
	l.sfxCache[name] = data
	return data, nil
}

// LoadSFX returns a new one-shot player for a sound.
func (l *AudioLoader) LoadSFX(name string) (*audio.Player, error) {
	data, err := l.pcm(name)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(data), nil
}

// LoadMusic returns a player that loops the named track forever.
func (l *AudioLoader) LoadMusic(name string) (*audio.Player, error) {
	data, err := l.pcm(name)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	player, err := l.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player for %s: %w", name, err)
	}
	return player, nil
}
