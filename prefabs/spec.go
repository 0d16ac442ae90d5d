package prefabs

import (
	"fmt"

	"github.com/automoto/aoi-adventure/shared/physics"
	"gopkg.in/yaml.v3"
)

const PlayerFile = "player.yaml"

type SizeSpec struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type DecorSpec struct {
	Name  string `yaml:"name"`
	Holds []int  `yaml:"holds"`
}

type PlayerSpec struct {
	Name       string           `yaml:"name"`
	Size       SizeSpec         `yaml:"size"`
	Stats      physics.Stats    `yaml:"stats"`
	Animations map[string][]int `yaml:"animations"`
	Decor      DecorSpec        `yaml:"decor"`
}

// ParsePlayerSpec decodes a player spec. Stats missing from the document keep
// their physics.DefaultStats values.
func ParsePlayerSpec(data []byte) (*PlayerSpec, error) {
	spec := PlayerSpec{Stats: physics.DefaultStats()}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", PlayerFile, err)
	}
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", PlayerFile, err)
	}
	return &spec, nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	data, err := Load(PlayerFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", PlayerFile, err)
	}
	return ParsePlayerSpec(data)
}

func (s *PlayerSpec) validate() error {
	if s.Size.W <= 0 || s.Size.H <= 0 {
		return fmt.Errorf("size %vx%v must be positive", s.Size.W, s.Size.H)
	}
	if s.Stats.MaxX <= 0 || s.Stats.MaxY <= 0 {
		return fmt.Errorf("max speeds %v/%v must be positive", s.Stats.MaxX, s.Stats.MaxY)
	}
	st := s.Stats
	if st.Decel <= 0 {
		return fmt.Errorf("decel %v must be positive", st.Decel)
	}
	// Below decel/2 a coasting body can swing between +v and -v forever.
	if st.StopEpsilon <= st.Decel/2 {
		return fmt.Errorf("stop_epsilon %v must exceed half of decel %v", st.StopEpsilon, st.Decel)
	}
	if st.Gravity < 0 {
		return fmt.Errorf("gravity %v must not be negative", st.Gravity)
	}
	if st.JumpImpulse >= 0 {
		return fmt.Errorf("jump_impulse %v must be negative (upward)", st.JumpImpulse)
	}
	if st.CeilingBounce < 0 {
		return fmt.Errorf("ceiling_bounce %v must not be negative", st.CeilingBounce)
	}
	if s.Stats.GraceTicks < 0 || s.Stats.FootstepInterval < 0 {
		return fmt.Errorf("tick counts must not be negative")
	}
	if _, err := s.Table(); err != nil {
		return err
	}
	if _, err := s.DecorTable(); err != nil {
		return err
	}
	return nil
}

// Table builds the animation table. Every state needs frames.
func (s *PlayerSpec) Table() (*physics.Table, error) {
	var t physics.Table
	for name, holds := range s.Animations {
		state, err := physics.ParseState(name)
		if err != nil {
			return nil, err
		}
		t[state] = physics.Frames(name, holds...)
	}
	for _, state := range []physics.State{physics.StateIdle, physics.StateMoving, physics.StateJumping} {
		if len(t[state]) == 0 {
			return nil, fmt.Errorf("no frames for %s", state)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// DecorTable builds the single-sequence table used by decorative tiles.
func (s *PlayerSpec) DecorTable() (*physics.Table, error) {
	if s.Decor.Name == "" || len(s.Decor.Holds) == 0 {
		return nil, fmt.Errorf("decor animation is empty")
	}
	var t physics.Table
	t[physics.StateIdle] = physics.Frames(s.Decor.Name, s.Decor.Holds...)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// FrameIDs lists every frame identifier the player spec can produce.
func (s *PlayerSpec) FrameIDs() []string {
	var ids []string
	for name, holds := range s.Animations {
		for _, f := range physics.Frames(name, holds...) {
			ids = append(ids, f.ID)
		}
	}
	for _, f := range physics.Frames(s.Decor.Name, s.Decor.Holds...) {
		ids = append(ids, f.ID)
	}
	return ids
}
