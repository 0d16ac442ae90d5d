package physics

import "testing"

func TestFramesNaming(t *testing.T) {
	frames := Frames("moving", 7, 7, 7)
	want := []Frame{{ID: "moving_0", Hold: 7}, {ID: "moving_1", Hold: 7}, {ID: "moving_2", Hold: 7}}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d = %+v, want %+v", i, frames[i], want[i])
		}
	}
}

func TestAnimatorHoldCycle(t *testing.T) {
	var table Table
	table[StateIdle] = Frames("idle", 3, 2)
	a := NewAnimator(&table, StateIdle)

	want := []int{0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 0}
	for tick, w := range want {
		if a.Index() != w {
			t.Fatalf("tick %d: index = %d, want %d", tick, a.Index(), w)
		}
		a.Advance(StateIdle)
	}
}

func TestAnimatorStateSwitchResets(t *testing.T) {
	a := NewAnimator(testTable(), StateMoving)
	for i := 0; i < 9; i++ {
		a.Advance(StateMoving)
	}
	if a.FrameID() != "moving_1" {
		t.Fatalf("frame = %s, want moving_1", a.FrameID())
	}

	a.Advance(StateJumping)
	if a.State() != StateJumping || a.Index() != 0 || a.FrameID() != "jumping_0" {
		t.Fatalf("after switch: state=%v index=%d frame=%s", a.State(), a.Index(), a.FrameID())
	}

	// The switching tick does not count toward the first hold.
	for i := 0; i < 3; i++ {
		if a.FrameID() != "jumping_0" {
			t.Fatalf("tick %d: frame = %s, want jumping_0", i, a.FrameID())
		}
		a.Advance(StateJumping)
	}
	if a.FrameID() != "jumping_1" {
		t.Fatalf("frame = %s, want jumping_1", a.FrameID())
	}
}

func TestAnimatorUnknownStatePanics(t *testing.T) {
	var table Table
	table[StateIdle] = Frames("idle", 1)
	a := NewAnimator(&table, StateIdle)

	tests := []struct {
		name  string
		state State
	}{
		{name: "missing sequence", state: StateJumping},
		{name: "out of range", state: State(42)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("Advance(%v) did not panic", tt.state)
				}
			}()
			a.Advance(tt.state)
		})
	}
}

func TestAnimatorSetTableRestarts(t *testing.T) {
	a := NewAnimator(testTable(), StateIdle)
	for i := 0; i < 20; i++ {
		a.Advance(StateIdle)
	}
	if a.Index() != 1 {
		t.Fatalf("index = %d, want 1", a.Index())
	}
	next := testTable()
	next[StateIdle] = Frames("idle", 2)
	a.SetTable(next)
	if a.Index() != 0 || a.FrameID() != "idle_0" {
		t.Fatalf("after SetTable: index=%d frame=%s", a.Index(), a.FrameID())
	}
}

func TestParseState(t *testing.T) {
	for _, s := range []State{StateIdle, StateMoving, StateJumping} {
		got, err := ParseState(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseState(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseState("falling"); err == nil {
		t.Fatalf("expected error for unknown state")
	}
}

func TestTableValidate(t *testing.T) {
	if err := testTable().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var bad Table
	bad[StateIdle] = Frames("idle", 3, 0)
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for zero hold")
	}
}
