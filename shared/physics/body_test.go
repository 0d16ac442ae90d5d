package physics

import (
	"math"
	"math/rand"
	"testing"
)

func testTable() *Table {
	var t Table
	t[StateIdle] = Frames("idle", 15, 7)
	t[StateMoving] = Frames("moving", 7, 7, 7)
	t[StateJumping] = Frames("jumping", 3, 64)
	return &t
}

// restingBody returns a body standing on the floor of floorAndWalls.
func restingBody(t *testing.T, x float64) (*Body, Tiles) {
	t.Helper()
	tiles := floorAndWalls()
	b := NewBody(Point{X: x, Y: 144 - 13}, 9, 13, DefaultStats(), testTable())
	b.Tick(tiles)
	if !b.Grounded() {
		t.Fatalf("body at %+v is not grounded", b.Rect)
	}
	return b, tiles
}

func TestNewBodyCannotJumpBeforeLanding(t *testing.T) {
	b := NewBody(Point{X: 30, Y: 30}, 9, 13, DefaultStats(), testTable())
	if b.AirTimer() != b.Stats.GraceTicks {
		t.Fatalf("air timer = %d, want %d", b.AirTimer(), b.Stats.GraceTicks)
	}
	if b.Jump() {
		t.Fatalf("jumped before ever touching the ground")
	}
}

func TestJumpGraceWindow(t *testing.T) {
	tests := []struct {
		name     string
		airTimer int
		wantJump bool
	}{
		{name: "grounded", airTimer: 0, wantJump: true},
		{name: "just inside window", airTimer: 5, wantJump: true},
		{name: "at window edge", airTimer: 6, wantJump: false},
		{name: "outside window", airTimer: 7, wantJump: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(Point{X: 50, Y: 50}, 9, 13, DefaultStats(), testTable())
			b.airTimer = tt.airTimer
			b.Vel.Y = 1.2
			b.state = StateMoving

			got := b.Jump()
			if got != tt.wantJump {
				t.Fatalf("Jump() = %v, want %v", got, tt.wantJump)
			}
			if tt.wantJump {
				if b.Vel.Y != b.Stats.JumpImpulse {
					t.Fatalf("vel.y = %v, want %v", b.Vel.Y, b.Stats.JumpImpulse)
				}
				if b.State() != StateJumping {
					t.Fatalf("state = %v, want jumping", b.State())
				}
				return
			}
			if b.Vel.Y != 1.2 || b.State() != StateMoving {
				t.Fatalf("no-op jump changed body: vel.y=%v state=%v", b.Vel.Y, b.State())
			}
		})
	}
}

func TestJumpRaisesEventOnNextTick(t *testing.T) {
	b, tiles := restingBody(t, 50)
	if !b.Jump() {
		t.Fatalf("grounded body could not jump")
	}
	ev := b.Tick(tiles)
	if !ev.Has(EventJump) {
		t.Fatalf("events = %b, want jump", ev)
	}
	if b.Grounded() {
		t.Fatalf("body still grounded after jumping")
	}
	if b.Anim.State() != StateJumping {
		t.Fatalf("animation state = %v, want jumping", b.Anim.State())
	}
	if ev := b.Tick(tiles); ev.Has(EventJump) {
		t.Fatalf("jump event repeated")
	}
}

func TestLandingResetsAirTimer(t *testing.T) {
	tiles := floorAndWalls()
	b := NewBody(Point{X: 50, Y: 144 - 13 - 0.1}, 9, 13, DefaultStats(), testTable())
	b.Vel.Y = 2
	b.airTimer = 12

	ev := b.Tick(tiles)
	if !b.Flags.Bottom {
		t.Fatalf("expected bottom collision, rect %+v", b.Rect)
	}
	if b.Vel.Y != 0 {
		t.Fatalf("vel.y = %v, want 0", b.Vel.Y)
	}
	if b.AirTimer() != 0 {
		t.Fatalf("air timer = %d, want 0", b.AirTimer())
	}
	if b.Rect.Bottom() != 144 {
		t.Fatalf("bottom = %v, want 144", b.Rect.Bottom())
	}
	if !ev.Has(EventLand) {
		t.Fatalf("events = %b, want land", ev)
	}
}

func TestAirTimerCountsWhileFalling(t *testing.T) {
	tiles := floorAndWalls()
	b := NewBody(Point{X: 50, Y: 40}, 9, 13, DefaultStats(), testTable())
	start := b.AirTimer()
	for i := 1; i <= 5; i++ {
		b.Tick(tiles)
		if b.AirTimer() != start+i {
			t.Fatalf("tick %d: air timer = %d, want %d", i, b.AirTimer(), start+i)
		}
	}
}

func TestCeilingBump(t *testing.T) {
	tiles := floorAndWalls()
	b := NewBody(Point{X: 50, Y: 17}, 9, 13, DefaultStats(), testTable())
	b.Vel.Y = -3

	b.Tick(tiles)
	if !b.Flags.Top {
		t.Fatalf("expected top collision, rect %+v", b.Rect)
	}
	if b.Vel.Y != b.Stats.CeilingBounce {
		t.Fatalf("vel.y = %v, want bounce %v", b.Vel.Y, b.Stats.CeilingBounce)
	}
	if b.Rect.Y != 16 {
		t.Fatalf("y = %v, want 16", b.Rect.Y)
	}
}

func TestWallStopsHorizontalVelocity(t *testing.T) {
	b, tiles := restingBody(t, 290)
	b.SetDirection(1)
	for i := 0; i < 10; i++ {
		b.Tick(tiles)
	}
	if b.Rect.Right() != 304 {
		t.Fatalf("right = %v, want 304", b.Rect.Right())
	}
	if !b.Flags.Right {
		t.Fatalf("expected right collision while pushing the wall")
	}
	if b.Vel.X != 0 {
		t.Fatalf("vel.x = %v, want 0", b.Vel.X)
	}
}

func TestRestingBodySettlesToIdle(t *testing.T) {
	b, tiles := restingBody(t, 100)
	b.Vel.X = 3
	b.state = StateMoving

	settled := -1
	for i := 0; i < 30; i++ {
		b.Tick(tiles)
		if b.Vel.X == 0 {
			settled = i
			break
		}
	}
	if settled < 0 {
		t.Fatalf("vel.x never reached exactly 0, last %v", b.Vel.X)
	}
	if b.State() != StateIdle {
		t.Fatalf("state = %v, want idle", b.State())
	}
	if b.Anim.State() != StateIdle {
		t.Fatalf("animation state = %v, want idle", b.Anim.State())
	}
}

func TestAccelerationClampsToMax(t *testing.T) {
	b, tiles := restingBody(t, 40)
	b.SetDirection(1)
	b.Tick(tiles)
	if b.Vel.X != 0.5 {
		t.Fatalf("first tick vel.x = %v, want 0.5", b.Vel.X)
	}
	for i := 0; i < 10; i++ {
		b.Tick(tiles)
	}
	if b.Vel.X != b.Stats.MaxX {
		t.Fatalf("vel.x = %v, want %v", b.Vel.X, b.Stats.MaxX)
	}
	if b.State() != StateMoving {
		t.Fatalf("state = %v, want moving", b.State())
	}
}

func TestFacingIsSticky(t *testing.T) {
	b, tiles := restingBody(t, 150)
	if b.Facing != FacingRight {
		t.Fatalf("initial facing = %v, want right", b.Facing)
	}
	b.SetDirection(-1)
	for i := 0; i < 5; i++ {
		b.Tick(tiles)
	}
	if !b.FlipX() {
		t.Fatalf("facing should be left after moving left")
	}
	b.SetDirection(0)
	for i := 0; i < 30; i++ {
		b.Tick(tiles)
	}
	if b.Vel.X != 0 {
		t.Fatalf("vel.x = %v, want 0", b.Vel.X)
	}
	if !b.FlipX() {
		t.Fatalf("facing reset when velocity reached 0")
	}
}

func TestFootstepsAreGated(t *testing.T) {
	tiles := Tiles{}
	for x := 0; x < 40; x++ {
		tiles = append(tiles, Rect{X: float64(x) * 16, Y: 144, W: 16, H: 16})
	}
	b := NewBody(Point{X: 20, Y: 131}, 9, 13, DefaultStats(), testTable())
	b.SetDirection(1)

	var steps []int
	for i := 1; i <= 60; i++ {
		if b.Tick(tiles).Has(EventFootstep) {
			steps = append(steps, i)
		}
	}
	want := []int{1, 21, 41}
	if len(steps) != len(want) {
		t.Fatalf("footsteps at %v, want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("footsteps at %v, want %v", steps, want)
		}
	}
}

func TestNoFootstepsWithoutIntent(t *testing.T) {
	b, tiles := restingBody(t, 100)
	b.Vel.X = 3
	for i := 0; i < 40; i++ {
		if b.Tick(tiles).Has(EventFootstep) {
			t.Fatalf("footstep on tick %d with no direction intent", i)
		}
	}
}

func TestVelocityStaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tiles := floorAndWalls()
	grid := NewTileGrid(320, 160, 16, tiles)
	b := NewBody(Point{X: 40, Y: 40}, 9, 13, DefaultStats(), testTable())

	for i := 0; i < 5000; i++ {
		if i%30 == 0 {
			b.SetDirection(rng.Intn(3) - 1)
		}
		if rng.Intn(10) == 0 {
			b.Jump()
		}
		b.Tick(grid)

		if math.Abs(b.Vel.X) > b.Stats.MaxX {
			t.Fatalf("tick %d: |vel.x| = %v exceeds %v", i, b.Vel.X, b.Stats.MaxX)
		}
		if math.Abs(b.Vel.Y) > b.Stats.MaxY {
			t.Fatalf("tick %d: |vel.y| = %v exceeds %v", i, b.Vel.Y, b.Stats.MaxY)
		}
		if overlapsAny(b.Rect, tiles) {
			t.Fatalf("tick %d: body %+v inside a tile", i, b.Rect)
		}
	}
}

func TestSetStatsClampsVelocity(t *testing.T) {
	b := NewBody(Point{X: 50, Y: 50}, 9, 13, DefaultStats(), testTable())
	b.Vel = Vec{X: 3, Y: -4}
	s := DefaultStats()
	s.MaxX = 2
	s.MaxY = 3
	b.SetStats(s)
	if b.Vel.X != 2 || b.Vel.Y != -3 {
		t.Fatalf("vel = %+v, want {2 -3}", b.Vel)
	}
}

func TestSetDirectionNormalizes(t *testing.T) {
	b := NewBody(Point{}, 9, 13, DefaultStats(), testTable())
	for in, want := range map[int]int{-5: -1, -1: -1, 0: 0, 1: 1, 9: 1} {
		b.SetDirection(in)
		if b.Direction() != want {
			t.Fatalf("SetDirection(%d) = %d, want %d", in, b.Direction(), want)
		}
	}
}
