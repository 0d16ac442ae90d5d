package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/automoto/aoi-adventure/assets/sfx"
	"github.com/automoto/aoi-adventure/prefabs"
	"github.com/automoto/aoi-adventure/shared/gamemath"
	"github.com/automoto/aoi-adventure/shared/leveldata"
	"github.com/automoto/aoi-adventure/shared/physics"
	"github.com/gdamore/tcell/v2"
)

const (
	// Each terminal cell covers cellW x cellH world pixels.
	cellW = 8
	cellH = 16

	// Terminals only report presses and their auto-repeats, never
	// releases. A fresh press holds for firstHold ticks to cover the
	// keyboard's repeat delay; each repeat after that extends by repeatHold.
	firstHold  = 30
	repeatHold = 6

	cameraSmoothing = 0.1
)

// soundPlayer plays a synthesized sound by name.
type soundPlayer interface {
	Play(name string)
}

type decorTile struct {
	col, row int
	anim     *physics.Animator
}

// game is the terminal rendition of a level: one body, its tiles and a
// camera measured in world pixels.
type game struct {
	level *leveldata.Level
	grid  *physics.TileGrid
	body  *physics.Body
	decor []decorTile

	sounds soundPlayer
	rng    *rand.Rand

	dir     int
	dirHeld int

	camX, camY   float64
	viewW, viewH float64

	// status is shown at the end of the status line.
	status string
}

func newGame(level *leveldata.Level, spec *prefabs.PlayerSpec, sounds soundPlayer) (*game, error) {
	table, err := spec.Table()
	if err != nil {
		return nil, err
	}
	decorTable, err := spec.DecorTable()
	if err != nil {
		return nil, err
	}

	solids := level.SolidRects()
	rects := make([]physics.Rect, len(solids))
	for i, s := range solids {
		rects[i] = physics.Rect{X: s.X, Y: s.Y, W: s.W, H: s.H}
	}
	w, h := level.PixelSize()

	g := &game{
		level:  level,
		grid:   physics.NewTileGrid(float64(w), float64(h), level.TileSize, rects),
		body:   physics.NewBody(physics.Point{X: level.Spawn.X, Y: level.Spawn.Y}, spec.Size.W, spec.Size.H, spec.Stats, table),
		sounds: sounds,
		rng:    rand.New(rand.NewSource(1)),
	}
	for _, t := range level.Tiles() {
		if t.Kind == leveldata.TileDecor {
			g.decor = append(g.decor, decorTile{col: t.Col, row: t.Row, anim: physics.NewAnimator(decorTable, physics.StateIdle)})
		}
	}
	g.resize(80, 24)
	g.camX, g.camY = g.viewW/2, g.viewH/2
	return g, nil
}

// resize sets the view from the terminal size. The bottom row is the
// status line.
func (g *game) resize(cols, rows int) {
	if rows > 1 {
		rows--
	}
	g.viewW = float64(cols * cellW)
	g.viewH = float64(rows * cellH)
}

// handleKey applies one key event and reports whether the game should quit.
func (g *game) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		g.hold(-1)
	case tcell.KeyRight:
		g.hold(1)
	case tcell.KeyUp:
		g.body.Jump()
	case tcell.KeyRune:
		switch r {
		case 'q':
			return true
		case 'a', 'h':
			g.hold(-1)
		case 'd', 'l':
			g.hold(1)
		case 'w', 'k', 'x', ' ':
			g.body.Jump()
		}
	}
	return false
}

func (g *game) hold(dir int) {
	if g.dir == dir && g.dirHeld > 0 {
		g.dirHeld = max(g.dirHeld, repeatHold)
		return
	}
	g.dir = dir
	g.dirHeld = firstHold
}

// tick advances the simulation by one fixed step.
func (g *game) tick() {
	if g.dirHeld > 0 {
		g.dirHeld--
	} else {
		g.dir = 0
	}
	g.body.SetDirection(g.dir)

	events := g.body.Tick(g.grid)
	if events.Has(physics.EventJump) {
		g.sounds.Play(sfx.Jump)
	}
	if events.Has(physics.EventFootstep) {
		g.sounds.Play([]string{sfx.Walk0, sfx.Walk1}[g.rng.Intn(2)])
	}
	if events.Has(physics.EventLand) {
		g.sounds.Play(sfx.Land)
	}

	for _, d := range g.decor {
		d.anim.Advance(physics.StateIdle)
	}

	w, h := g.level.PixelSize()
	r := g.body.Rect
	g.camX = gamemath.ClampCenter(gamemath.Follow(g.camX, r.X+r.W/2, cameraSmoothing), g.viewW, float64(w))
	g.camY = gamemath.ClampCenter(gamemath.Follow(g.camY, r.Y+r.H/2, cameraSmoothing), g.viewH, float64(h))
}

// applySpec swaps in a reloaded player spec.
func (g *game) applySpec(spec *prefabs.PlayerSpec) error {
	table, err := spec.Table()
	if err != nil {
		return err
	}
	decorTable, err := spec.DecorTable()
	if err != nil {
		return err
	}
	g.body.SetStats(spec.Stats)
	g.body.Anim.SetTable(table)
	for _, d := range g.decor {
		d.anim.SetTable(decorTable)
	}
	return nil
}

var (
	styleDirt   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 78, 50))
	styleGround = tcell.StyleDefault.Foreground(tcell.NewRGBColor(76, 160, 72))
	styleDecor  = tcell.StyleDefault.Foreground(tcell.ColorLightCyan)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

var decorRunes = []rune{'.', '+', '*', '+'}

// draw renders the view and the status line. It does not call Show.
func (g *game) draw(s tcell.Screen) {
	s.Clear()
	cols, rows := s.Size()
	scrollX := gamemath.ScrollOffset(g.camX, g.viewW)
	scrollY := gamemath.ScrollOffset(g.camY, g.viewH)
	size := float64(g.level.TileSize)

	cell := func(x, y float64) (int, int) {
		return int(math.Floor((x - scrollX) / cellW)), int(math.Floor((y - scrollY) / cellH))
	}

	viewRows := int(g.viewH / cellH)
	for cy := 0; cy < viewRows; cy++ {
		for cx := 0; cx < cols; cx++ {
			px := scrollX + float64(cx*cellW) + cellW/2
			py := scrollY + float64(cy*cellH) + cellH/2
			col, row := int(math.Floor(px/size)), int(math.Floor(py/size))
			switch g.level.At(col, row) {
			case leveldata.TileDirt:
				s.SetContent(cx, cy, '▓', nil, styleDirt)
			case leveldata.TileGround:
				s.SetContent(cx, cy, '█', nil, styleGround)
			}
		}
	}

	for _, d := range g.decor {
		cx, cy := cell(float64(d.col)*size+size/2, float64(d.row)*size+size/2)
		if cy < viewRows {
			s.SetContent(cx, cy, decorRunes[d.anim.Index()%len(decorRunes)], nil, styleDecor)
		}
	}

	r := g.body.Rect
	px, py := cell(r.X+r.W/2, r.Y+r.H/2)
	if py < viewRows {
		s.SetContent(px, py, playerRune(g.body), nil, stylePlayer)
	}

	status := fmt.Sprintf(" %s  x%6.1f y%6.1f  vx%5.2f vy%5.2f  %-7s  arrows/hjkl move+jump  q quit",
		g.level.Name, r.X, r.Y, g.body.Vel.X, g.body.Vel.Y, g.body.State())
	if g.status != "" {
		status += "  " + g.status
	}
	line := []rune(status)
	for i := 0; i < cols; i++ {
		ch := ' '
		if i < len(line) {
			ch = line[i]
		}
		s.SetContent(i, rows-1, ch, nil, styleStatus)
	}
}

func playerRune(b *physics.Body) rune {
	switch {
	case b.State() == physics.StateJumping:
		return '^'
	case b.FlipX():
		return '<'
	default:
		return '>'
	}
}
