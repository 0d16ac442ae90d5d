package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/automoto/aoi-adventure/assets/sfx"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// speakerSounds plays pre-rendered effects through the system speaker.
type speakerSounds struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	buffers map[string]*beep.Buffer
	closed  bool
}

// volumes scales effects that would otherwise drown out the rest.
var volumes = map[string]float64{
	sfx.Jump: 0.5,
}

// renderBuffers synthesizes every effect the game plays at its mix volume.
func renderBuffers(r beep.SampleRate) (map[string]*beep.Buffer, error) {
	format := beep.Format{SampleRate: r, NumChannels: 2, Precision: 2}
	buffers := make(map[string]*beep.Buffer)
	for _, name := range []string{sfx.Jump, sfx.Walk0, sfx.Walk1, sfx.Land} {
		s, _, err := sfx.Stream(name, r)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", name, err)
		}
		if vol, ok := volumes[name]; ok {
			s = sfx.Gain(s, vol)
		}
		buf := beep.NewBuffer(format)
		buf.Append(s)
		buffers[name] = buf
	}
	return buffers, nil
}

// newSpeakerSounds renders every effect once and opens the speaker.
func newSpeakerSounds() (*speakerSounds, error) {
	buffers, err := renderBuffers(sampleRate)
	if err != nil {
		return nil, err
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	return &speakerSounds{mixer: mixer, buffers: buffers}, nil
}

func (s *speakerSounds) Play(name string) {
	buf, ok := s.buffers[name]
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

func (s *speakerSounds) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// silence is used when no audio device is available or -mute is set.
type silence struct{}

func (silence) Play(string) {}
