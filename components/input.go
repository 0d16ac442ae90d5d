package components

import (
	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/yohamta/donburi"
)

// InputMethod is the device that last produced input, for on-screen hints.
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData holds this frame's and the previous frame's held actions.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
