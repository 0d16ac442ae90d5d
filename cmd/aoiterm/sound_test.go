package main

import (
	"math"
	"testing"

	"github.com/automoto/aoi-adventure/assets/sfx"
	"github.com/gopxl/beep"
)

func peak(frames [][2]float64) float64 {
	p := 0.0
	for _, f := range frames {
		p = math.Max(p, math.Max(math.Abs(f[0]), math.Abs(f[1])))
	}
	return p
}

func TestRenderBuffersMixVolume(t *testing.T) {
	const r = beep.SampleRate(22050)
	buffers, err := renderBuffers(r)
	if err != nil {
		t.Fatalf("renderBuffers: %v", err)
	}
	for _, name := range []string{sfx.Jump, sfx.Walk0, sfx.Walk1, sfx.Land} {
		if buffers[name] == nil || buffers[name].Len() == 0 {
			t.Fatalf("no samples for %s", name)
		}
	}

	jump := buffers[sfx.Jump]
	got := peak(sfx.Render(jump.Streamer(0, jump.Len()), jump.Len()))

	s, d, err := sfx.Stream(sfx.Jump, r)
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	full := peak(sfx.Render(s, r.N(d)))
	if full == 0 {
		t.Fatalf("jump is silent")
	}
	if ratio := got / full; math.Abs(ratio-0.5) > 0.01 {
		t.Fatalf("jump plays at %.3f of full volume, want 0.5", ratio)
	}
}
