package systems

import (
	"github.com/automoto/aoi-adventure/components"
	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and standard-layout gamepads into the Input
// component. Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	buttonDown := func(btn ebiten.StandardGamepadButton) bool {
		for _, id := range gamepadIDs {
			if ebiten.IsStandardGamepadLayoutAvailable(id) && ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
		return false
	}

	pollActions(input, &cfg.Bindings, ebiten.IsKeyPressed, buttonDown)
}

// pollActions advances input by one frame: the previous frame is kept for
// edge detection and every bound action is re-read.
func pollActions(input *components.InputData, bindings *[cfg.ActionCount]cfg.Binding,
	keyDown func(ebiten.Key) bool, buttonDown func(ebiten.StandardGamepadButton) bool) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	var keyboard, gamepad bool
	for id, b := range bindings {
		for _, k := range b.Keys {
			if keyDown(k) {
				input.Current[id] = true
				keyboard = true
			}
		}
		for _, btn := range b.Buttons {
			if buttonDown(btn) {
				input.Current[id] = true
				gamepad = true
			}
		}
	}

	// The gamepad wins when both were touched in the same frame.
	switch {
	case gamepad:
		input.LastInputMethod = components.InputGamepad
	case keyboard:
		input.LastInputMethod = components.InputKeyboard
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction reports an action's state this frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// MoveIntent folds the left and right actions into -1, 0 or 1. Holding both
// cancels out.
func MoveIntent(input *components.InputData) int {
	dir := 0
	if input.Current[cfg.ActionMoveLeft] {
		dir--
	}
	if input.Current[cfg.ActionMoveRight] {
		dir++
	}
	return dir
}
