package ui

import (
	"parkview/internal/nav"
)

// actionFor maps a key press onto one of the semantic navigation actions.
// Keys with app-level meaning (open, refresh, mark read, help) are handled
// directly in Update and return ActionNone here.
func actionFor(key string) nav.Action {
	switch key {
	case "q", "ctrl+c":
		return nav.ActionQuit
	case "h", "home":
		return nav.ActionHome
	case "b", "tab":
		return nav.ActionBoards
	case "up", "k":
		return nav.ActionUp
	case "down", "j":
		return nav.ActionDown
	}
	return nav.ActionNone
}
