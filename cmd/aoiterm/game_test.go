package main

import (
	"slices"
	"strings"
	"testing"

	"github.com/automoto/aoi-adventure/assets/sfx"
	"github.com/automoto/aoi-adventure/prefabs"
	"github.com/automoto/aoi-adventure/shared/leveldata"
	"github.com/gdamore/tcell/v2"
)

const testMap = `1000000001
1000000001
1000000001
1000300001
1000000001
1222222221
`

type recorder struct {
	played []string
}

func (r *recorder) Play(name string) { r.played = append(r.played, name) }

func newTestGame(t *testing.T) (*game, *recorder) {
	t.Helper()
	level, err := leveldata.ParseCharMap("tiny", []byte(testMap), tileSize, spawn)
	if err != nil {
		t.Fatalf("ParseCharMap: %v", err)
	}
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	rec := &recorder{}
	g, err := newGame(level, spec, rec)
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	return g, rec
}

func landed(t *testing.T, g *game) {
	t.Helper()
	for i := 0; i < 60; i++ {
		g.tick()
	}
	if !g.body.Grounded() {
		t.Fatalf("body at %+v never landed", g.body.Rect)
	}
}

func TestHandleKeyQuit(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want bool
	}{
		{name: "escape", key: tcell.KeyEscape, want: true},
		{name: "ctrl-c", key: tcell.KeyCtrlC, want: true},
		{name: "q", key: tcell.KeyRune, r: 'q', want: true},
		{name: "left", key: tcell.KeyLeft},
		{name: "jump", key: tcell.KeyRune, r: ' '},
		{name: "unbound rune", key: tcell.KeyRune, r: 'z'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			if got := g.handleKey(tt.key, tt.r); got != tt.want {
				t.Fatalf("handleKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeldDirectionLapses(t *testing.T) {
	g, _ := newTestGame(t)
	landed(t, g)

	g.handleKey(tcell.KeyRune, 'd')
	for i := 0; i < firstHold; i++ {
		g.tick()
	}
	if g.body.Direction() != 1 {
		t.Fatalf("direction = %d after %d ticks, want 1", g.body.Direction(), firstHold)
	}
	g.tick()
	if g.body.Direction() != 0 {
		t.Fatalf("direction = %d after hold expired, want 0", g.body.Direction())
	}
}

func TestRepeatExtendsHold(t *testing.T) {
	g, _ := newTestGame(t)
	landed(t, g)

	g.handleKey(tcell.KeyLeft, 0)
	for i := 0; i < firstHold-2; i++ {
		g.tick()
	}
	g.handleKey(tcell.KeyLeft, 0)
	for i := 0; i < repeatHold; i++ {
		g.tick()
	}
	if g.body.Direction() != -1 {
		t.Fatalf("direction = %d after repeat, want -1", g.body.Direction())
	}
	g.tick()
	if g.body.Direction() != 0 {
		t.Fatalf("direction = %d after repeat expired, want 0", g.body.Direction())
	}
}

func TestOppositeKeyTurnsAround(t *testing.T) {
	g, _ := newTestGame(t)
	landed(t, g)

	g.handleKey(tcell.KeyRight, 0)
	g.tick()
	g.handleKey(tcell.KeyLeft, 0)
	g.tick()
	if g.body.Direction() != -1 {
		t.Fatalf("direction = %d, want -1", g.body.Direction())
	}
}

func TestJumpPlaysSound(t *testing.T) {
	g, rec := newTestGame(t)
	landed(t, g)
	rec.played = nil

	g.handleKey(tcell.KeyUp, 0)
	g.tick()
	if !slices.Contains(rec.played, sfx.Jump) {
		t.Fatalf("played %v, want %s", rec.played, sfx.Jump)
	}
	if g.body.Grounded() {
		t.Fatalf("body still grounded after jump")
	}
}

func TestDraw(t *testing.T) {
	g, _ := newTestGame(t)
	landed(t, g)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)
	g.resize(80, 24)
	g.tick()
	g.draw(screen)

	counts := make(map[rune]int)
	for y := 0; y < 23; y++ {
		for x := 0; x < 80; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			counts[r]++
		}
	}
	if counts['>'] != 1 {
		t.Errorf("player drawn %d times, want once", counts['>'])
	}
	if counts['█'] == 0 {
		t.Errorf("no ground tiles drawn")
	}
	if counts['▓'] == 0 {
		t.Errorf("no dirt tiles drawn")
	}

	// The level is narrower than the view, so it is centered.
	r, _, _, _ := screen.GetContent(39, 12)
	if !slices.Contains(decorRunes, r) {
		t.Errorf("decor cell = %q, want one of %q", r, string(decorRunes))
	}

	var status strings.Builder
	for x := 0; x < 80; x++ {
		r, _, _, _ := screen.GetContent(x, 23)
		status.WriteRune(r)
	}
	if !strings.HasPrefix(status.String(), " tiny") {
		t.Errorf("status line = %q", status.String())
	}
}
