package input

import (
	"errors"
	"fmt"
	"strings"
)

// Action is a remappable gameplay command
type Action uint8

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionJump
	ActionHeal
	ActionFire
	ActionSpecial
	ActionShop
	actionCount
)

// ErrUnknownAction is returned when a config names an action that does not exist
var ErrUnknownAction = errors.New("unknown action")

// actionRegistry maps canonical action names to actions
// Used by the keymap config loader to resolve YAML action strings
var actionRegistry = map[string]Action{
	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,
	"jump":       ActionJump,
	"heal":       ActionHeal,
	"fire":       ActionFire,
	"special":    ActionSpecial,
	"shop":       ActionShop,
}

var actionNames = [actionCount]string{
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionJump:      "jump",
	ActionHeal:      "heal",
	ActionFire:      "fire",
	ActionSpecial:   "special",
	ActionShop:      "shop",
}

// Human-readable labels for the settings screen
var actionLabels = [actionCount]string{
	ActionMoveLeft:  "Move Left",
	ActionMoveRight: "Move Right",
	ActionJump:      "Jump",
	ActionHeal:      "Heal (Water)",
	ActionFire:      "Fire",
	ActionSpecial:   "Special Attack",
	ActionShop:      "Open Shop",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Label returns the display name of the action
func (a Action) Label() string {
	if a >= actionCount {
		return "?"
	}
	return actionLabels[a]
}

// Actions returns every action in display order
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// ParseAction resolves a canonical action name (case-insensitive)
func ParseAction(name string) (Action, error) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}
