package physics

import "github.com/automoto/aoi-adventure/shared/gamemath"

// Stats are the tunables of one body. Velocities are pixels per tick.
type Stats struct {
	Speed         float64 `yaml:"speed"`
	AccelFactor   float64 `yaml:"accel_factor"`
	Decel         float64 `yaml:"decel"`
	StopEpsilon   float64 `yaml:"stop_epsilon"`
	Gravity       float64 `yaml:"gravity"`
	MaxX          float64 `yaml:"max_x"`
	MaxY          float64 `yaml:"max_y"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	CeilingBounce float64 `yaml:"ceiling_bounce"`
	GraceTicks    int     `yaml:"grace_ticks"`

	// FootstepInterval is the minimum number of ticks between footsteps.
	FootstepInterval int `yaml:"footstep_interval"`
	// LandAirTicks is how long a body must be airborne before touching down
	// counts as a landing. Zero disables landing events.
	LandAirTicks int `yaml:"land_air_ticks"`
}

// DefaultStats returns the tuning of the player in the first level.
func DefaultStats() Stats {
	return Stats{
		Speed:            1,
		AccelFactor:      0.5,
		Decel:            0.2,
		StopEpsilon:      0.4,
		Gravity:          0.2,
		MaxX:             3,
		MaxY:             4,
		JumpImpulse:      -4,
		CeilingBounce:    0.6,
		GraceTicks:       6,
		FootstepInterval: 20,
		LandAirTicks:     10,
	}
}

// Facing is the direction a body's sprite points.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Events is a set of fire-and-forget signals raised during a tick.
type Events uint8

const (
	EventJump Events = 1 << iota
	EventFootstep
	EventLand
)

func (e Events) Has(x Events) bool { return e&x != 0 }

// Body is one simulated entity. Each Body is mutated only by its own Tick,
// Jump and SetDirection calls.
type Body struct {
	Rect   Rect
	Vel    Vec
	Flags  Flags
	Facing Facing
	Stats  Stats
	Anim   *Animator

	dir           int
	state         State
	airTimer      int
	footstepTimer int
	pending       Events
}

// NewBody places a w x h body at spawn. The air timer starts at the grace
// window so nothing can jump before first touching the ground.
func NewBody(spawn Point, w, h float64, stats Stats, frames *Table) *Body {
	return &Body{
		Rect:     Rect{X: spawn.X, Y: spawn.Y, W: w, H: h},
		Stats:    stats,
		Anim:     NewAnimator(frames, StateIdle),
		state:    StateIdle,
		airTimer: stats.GraceTicks,
	}
}

// SetDirection sets horizontal intent: -1 left, 0 none, 1 right.
func (b *Body) SetDirection(dir int) {
	switch {
	case dir < 0:
		b.dir = -1
	case dir > 0:
		b.dir = 1
	default:
		b.dir = 0
	}
}

func (b *Body) Direction() int  { return b.dir }
func (b *Body) AirTimer() int   { return b.airTimer }
func (b *Body) State() State    { return b.state }
func (b *Body) Grounded() bool  { return b.Flags.Bottom }
func (b *Body) FlipX() bool     { return b.Facing == FacingLeft }
func (b *Body) FrameID() string { return b.Anim.FrameID() }

// Jump launches the body if it touched the ground within the grace window.
// Outside the window it does nothing and returns false.
func (b *Body) Jump() bool {
	if b.airTimer >= b.Stats.GraceTicks {
		return false
	}
	b.Vel.Y = b.Stats.JumpImpulse
	b.state = StateJumping
	b.pending |= EventJump
	return true
}

// SetStats replaces the tuning in place, keeping position and pulling the
// velocity back inside the new limits.
func (b *Body) SetStats(s Stats) {
	b.Stats = s
	b.Vel.X = gamemath.ClampSpeed(b.Vel.X, s.MaxX)
	b.Vel.Y = gamemath.ClampSpeed(b.Vel.Y, s.MaxY)
}

// Tick advances the body by one fixed step against tiles and returns the
// events raised since the previous tick, including any jump.
func (b *Body) Tick(tiles Collider) Events {
	s := &b.Stats
	ev := b.pending
	b.pending = 0
	if b.footstepTimer > 0 {
		b.footstepTimer--
	}

	b.Vel.Y = gamemath.ClampSpeed(b.Vel.Y+s.Gravity, s.MaxY)

	if b.dir != 0 {
		b.Vel.X = gamemath.ClampSpeed(b.Vel.X+float64(b.dir)*s.Speed*s.AccelFactor, s.MaxX)
	} else {
		b.Vel.X = gamemath.Decelerate(b.Vel.X, s.Decel, s.StopEpsilon)
	}

	b.Rect, b.Flags = Resolve(b.Rect, b.Vel, tiles)

	if b.Flags.Left || b.Flags.Right {
		b.Vel.X = 0
	}
	if b.Flags.Bottom {
		if s.LandAirTicks > 0 && b.airTimer >= s.LandAirTicks {
			ev |= EventLand
		}
		b.Vel.Y = 0
		b.airTimer = 0
	} else {
		b.airTimer++
	}
	if b.Flags.Top {
		// Pushes the body off the ceiling so it does not hang there.
		b.Vel.Y = s.CeilingBounce
	}

	if b.Vel.X > 0 {
		b.Facing = FacingRight
	} else if b.Vel.X < 0 {
		b.Facing = FacingLeft
	}

	if b.Flags.Bottom {
		if b.Vel.X == 0 {
			b.state = StateIdle
		} else {
			b.state = StateMoving
		}
		if b.dir != 0 && b.footstepTimer == 0 {
			b.footstepTimer = s.FootstepInterval
			ev |= EventFootstep
		}
	}

	b.Anim.Advance(b.state)
	return ev
}
