package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuTitle
	MenuQuit
)

// PauseExit is what the level should do once the pause menu is left.
type PauseExit int

const (
	ExitNone PauseExit = iota
	ExitToTitle
	ExitGame
)

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	Exit           PauseExit
}

var Pause = donburi.NewComponentType[PauseData]()
