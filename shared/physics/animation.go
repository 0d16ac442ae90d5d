package physics

import (
	"fmt"
	"strconv"
)

// State selects which frame sequence an Animator plays.
type State int

const (
	StateIdle State = iota
	StateMoving
	StateJumping
	stateCount
)

var stateNames = [stateCount]string{
	StateIdle:    "idle",
	StateMoving:  "moving",
	StateJumping: "jumping",
}

func (s State) String() string {
	if s < 0 || s >= stateCount {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}

// ParseState maps a state name back to its State.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("physics: unknown animation state %q", name)
}

// Frame is one visual frame and how many ticks it stays on screen.
type Frame struct {
	ID   string
	Hold int
}

// Frames names a sequence after its state: Frames("idle", 15, 7) yields
// idle_0 held 15 ticks then idle_1 held 7.
func Frames(name string, holds ...int) []Frame {
	out := make([]Frame, len(holds))
	for i, h := range holds {
		out[i] = Frame{ID: name + "_" + strconv.Itoa(i), Hold: h}
	}
	return out
}

// Table holds the frame sequence for every State. A nil entry means the
// state has no animation and must not be requested.
type Table [stateCount][]Frame

// Validate checks that every present sequence has positive holds.
func (t *Table) Validate() error {
	for s, frames := range t {
		for i, f := range frames {
			if f.Hold <= 0 {
				return fmt.Errorf("physics: %s frame %d has hold %d", State(s), i, f.Hold)
			}
		}
	}
	return nil
}

// Animator steps through a Table one tick at a time.
type Animator struct {
	table   *Table
	state   State
	index   int
	counter int
}

// NewAnimator starts on the first frame of initial. It panics if the table
// has no frames for initial.
func NewAnimator(table *Table, initial State) *Animator {
	a := &Animator{table: table}
	a.state = initial
	a.mustFrames(initial)
	return a
}

// Advance requests a state for this tick. A new state restarts at frame 0;
// the same state counts toward the current frame's hold and moves to the
// next frame, wrapping, once the hold is reached.
func (a *Animator) Advance(s State) {
	if s != a.state {
		a.mustFrames(s)
		a.state = s
		a.index = 0
		a.counter = 0
		return
	}

	frames := a.mustFrames(s)
	a.counter++
	if a.counter >= frames[a.index].Hold {
		a.index = (a.index + 1) % len(frames)
		a.counter = 0
	}
}

// SetTable swaps in new sequences, restarting the current state.
func (a *Animator) SetTable(table *Table) {
	a.table = table
	a.mustFrames(a.state)
	a.index = 0
	a.counter = 0
}

func (a *Animator) State() State { return a.state }
func (a *Animator) Index() int   { return a.index }

// Frame returns the frame to draw.
func (a *Animator) Frame() Frame {
	return a.table[a.state][a.index]
}

// FrameID returns the identifier of the frame to draw.
func (a *Animator) FrameID() string {
	return a.Frame().ID
}

func (a *Animator) mustFrames(s State) []Frame {
	if s < 0 || s >= stateCount || len(a.table[s]) == 0 {
		panic(fmt.Sprintf("physics: no animation for state %s", s))
	}
	return a.table[s]
}
