package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID is a logical input the game reacts to.
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionPause
	ActionToggleDebug
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionCount
)

// Binding lists the keys and standard-layout gamepad buttons that trigger an
// action. Any one of them held counts as the action being held.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// Bindings is indexed by ActionID.
var Bindings [ActionCount]Binding

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func buttons(b ...ebiten.StandardGamepadButton) []ebiten.StandardGamepadButton { return b }

func init() {
	south := ebiten.StandardGamepadButtonRightBottom
	Bindings = [ActionCount]Binding{
		ActionMoveLeft:    {keys(ebiten.KeyLeft, ebiten.KeyA), buttons(ebiten.StandardGamepadButtonLeftLeft)},
		ActionMoveRight:   {keys(ebiten.KeyRight, ebiten.KeyD), buttons(ebiten.StandardGamepadButtonLeftRight)},
		ActionJump:        {keys(ebiten.KeyUp, ebiten.KeyW, ebiten.KeySpace, ebiten.KeyX), buttons(south)},
		ActionPause:       {keys(ebiten.KeyEscape), buttons(ebiten.StandardGamepadButtonCenterRight)},
		ActionToggleDebug: {keys(ebiten.KeyF1), nil},
		ActionMenuUp:      {keys(ebiten.KeyUp, ebiten.KeyW), buttons(ebiten.StandardGamepadButtonLeftTop)},
		ActionMenuDown:    {keys(ebiten.KeyDown, ebiten.KeyS), buttons(ebiten.StandardGamepadButtonLeftBottom)},
		ActionMenuSelect:  {keys(ebiten.KeyEnter, ebiten.KeySpace), buttons(south)},
	}
}
