package sfx

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
)

// Names of the synthesized sounds.
const (
	Jump   = "jump"
	Walk0  = "walk_0"
	Walk1  = "walk_1"
	Land   = "land"
	Select = "select"
	Music  = "song_abyss"
)

// Names lists every sound Synthesize knows.
var Names = []string{Jump, Walk0, Walk1, Land, Select, Music}

// Synthesize renders the named sound as PCM16 stereo at rate.
func Synthesize(name string, rate int) ([]byte, error) {
	r := beep.SampleRate(rate)
	s, d, err := Stream(name, r)
	if err != nil {
		return nil, err
	}
	return EncodePCM16(Render(s, r.N(d))), nil
}

// Stream returns the named sound as a finite streamer together with its
// length.
func Stream(name string, r beep.SampleRate) (beep.Streamer, time.Duration, error) {
	var (
		s beep.Streamer
		d time.Duration
	)
	switch name {
	case Jump:
		d = 180 * time.Millisecond
		s = Envelope(Tone(WaveSquare, 260, 620, d, r), d, 5*time.Millisecond, 120*time.Millisecond, r)
		s = Gain(s, 0.35)
	case Walk0:
		d = 60 * time.Millisecond
		s = footstep(d, 140, r)
	case Walk1:
		d = 60 * time.Millisecond
		s = footstep(d, 110, r)
	case Land:
		d = 120 * time.Millisecond
		s = Envelope(beep.Mix(
			Gain(Tone(WaveNoise, 0, 0, d, r), 0.3),
			Gain(Tone(WaveSine, 90, 45, d, r), 0.6),
		), d, 2*time.Millisecond, 100*time.Millisecond, r)
	case Select:
		d = 140 * time.Millisecond
		s = beep.Seq(
			note(WaveTriangle, 660, 70*time.Millisecond, 0.4, r),
			note(WaveTriangle, 990, 70*time.Millisecond, 0.4, r),
		)
	case Music:
		s, d = song(r)
	default:
		return nil, 0, fmt.Errorf("sfx: unknown sound %q", name)
	}
	return beep.Take(r.N(d), s), d, nil
}

func footstep(d time.Duration, pitch float64, r beep.SampleRate) beep.Streamer {
	return Envelope(beep.Mix(
		Gain(Tone(WaveNoise, pitch, pitch, d, r), 0.15),
		Gain(Tone(WaveTriangle, pitch, pitch*0.8, d, r), 0.25),
	), d, time.Millisecond, 50*time.Millisecond, r)
}

func note(wave Wave, freq float64, d time.Duration, vol float64, r beep.SampleRate) beep.Streamer {
	release := d / 2
	return Gain(Envelope(Tone(wave, freq, freq, d, r), d, 8*time.Millisecond, release, r), vol)
}

// A slow minor arpeggio over a drone, eight bars long so it loops cleanly.
var (
	songBeat   = 250 * time.Millisecond
	songMelody = []float64{
		220.00, 261.63, 329.63, 261.63, 220.00, 261.63, 329.63, 392.00,
		174.61, 220.00, 261.63, 220.00, 174.61, 220.00, 261.63, 329.63,
		196.00, 246.94, 293.66, 246.94, 196.00, 246.94, 293.66, 349.23,
		164.81, 207.65, 246.94, 207.65, 164.81, 207.65, 246.94, 329.63,
	}
	songBass = []float64{110.00, 87.31, 98.00, 82.41}
)

func song(r beep.SampleRate) (beep.Streamer, time.Duration) {
	melody := make([]beep.Streamer, 0, len(songMelody))
	for _, f := range songMelody {
		melody = append(melody, note(WaveTriangle, f, songBeat, 0.22, r))
	}

	bar := songBeat * time.Duration(len(songMelody)/len(songBass))
	bass := make([]beep.Streamer, 0, len(songBass))
	for _, f := range songBass {
		bass = append(bass, Gain(Envelope(Tone(WaveSine, f, f, bar, r), bar, 40*time.Millisecond, 200*time.Millisecond, r), 0.25))
	}

	total := songBeat * time.Duration(len(songMelody))
	return beep.Mix(beep.Seq(melody...), beep.Seq(bass...)), total
}
