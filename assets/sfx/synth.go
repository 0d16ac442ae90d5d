// Package sfx synthesizes the game's sound effects and music with beep and
// renders them to 16-bit PCM for the ebitengine audio context.
package sfx

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// tone is an oscillator whose frequency sweeps linearly from one value to
// another over its duration.
type tone struct {
	wave     Wave
	from, to float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
	rng      *rand.Rand
}

// Tone returns a streamer that plays d of the given wave sweeping from one
// frequency to another. Noise ignores the frequencies and is seeded so the
// output is reproducible.
func Tone(wave Wave, from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:  wave,
		from:  from,
		to:    to,
		total: rate.N(d),
		rate:  rate,
		rng:   rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(t.phase-0.5) - 1
		case WaveNoise:
			val = t.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.position) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func Envelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Gain scales a stream linearly. Zero or less silences it.
func Gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Render pulls exactly n frames from s, padding with silence if it ends
// early.
func Render(s beep.Streamer, n int) [][2]float64 {
	buf := make([][2]float64, n)
	filled := 0
	for filled < n {
		k, ok := s.Stream(buf[filled:])
		filled += k
		if !ok || k == 0 {
			break
		}
	}
	return buf
}

// EncodePCM16 converts frames to interleaved little-endian signed 16-bit
// stereo, clipping anything outside [-1, 1].
func EncodePCM16(frames [][2]float64) []byte {
	out := make([]byte, len(frames)*4)
	for i, f := range frames {
		binary.LittleEndian.PutUint16(out[i*4:], uint16(toInt16(f[0])))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(toInt16(f[1])))
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
