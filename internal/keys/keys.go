// Package keys provides string constants for Bubble Tea v2 key press events.
//
// Named keys are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String() so
// they always match the runtime values ("esc", not "escape"). The letter
// bindings of the dashboard are listed too, so the app, the footer and the
// help modal agree on them.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()     // "enter"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String() // "backspace"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()    // "esc"
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlU = (tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}).String() // "ctrl+u"
	CtrlD = (tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}).String() // "ctrl+d"
)

// Dashboard bindings
const (
	Next          = "j"
	Previous      = "k"
	OpenList      = "m"
	ToggleUsers   = "u"
	ToggleChannel = "c"
	FilterMine    = "1"
	FilterAll     = "2"
	FilterNone    = "3"
	Retry         = "r"
	CopyEmail     = "y"
	CopyPhone     = "p"
	Search        = "/"
	Theme         = "t"
	Help          = "?"
	Quit          = "q"
)
