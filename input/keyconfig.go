package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownKey is returned when a config names a key that cannot be produced by the terminal
var ErrUnknownKey = errors.New("unknown key")

// specialKeyNames maps non-rune tcell keys to their binding names.
// Escape is absent: it is reserved for leaving screens and cancelling capture.
var specialKeyNames = map[tcell.Key]string{
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyF1:         "f1",
	tcell.KeyF2:         "f2",
	tcell.KeyF3:         "f3",
	tcell.KeyF4:         "f4",
	tcell.KeyF5:         "f5",
	tcell.KeyF6:         "f6",
	tcell.KeyF7:         "f7",
	tcell.KeyF8:         "f8",
	tcell.KeyF9:         "f9",
	tcell.KeyF10:        "f10",
	tcell.KeyF11:        "f11",
	tcell.KeyF12:        "f12",
}

// Rune aliases for keys that can't be written as a bare character in YAML
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// KeyName normalizes a key event to its binding name.
// Letters are lowercased so Shift does not change the binding. Returns "" for unbindable keys.
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "space"
		}
		if r == '\\' {
			return "backslash"
		}
		if !unicode.IsPrint(r) {
			return ""
		}
		return string(unicode.ToLower(r))
	}
	return specialKeyNames[ev.Key()]
}

// resolveKeyName validates and normalizes a key name from config
func resolveKeyName(s string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if _, ok := runeAliases[name]; ok {
		return name, nil
	}
	for _, special := range specialKeyNames {
		if special == name {
			return name, nil
		}
	}
	if runes := []rune(name); len(runes) == 1 && unicode.IsPrint(runes[0]) {
		return name, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// LoadKeyConfig validates action → key name overrides from config.
// Returns a sparse override map; actions with an empty list are omitted so they keep their defaults.
func LoadKeyConfig(raw map[string][]string) (map[Action][]string, error) {
	result := make(map[Action][]string, len(raw))
	for actionName, keys := range raw {
		a, err := ParseAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("keys: %w", err)
		}
		if len(keys) == 0 {
			continue
		}

		names := make([]string, 0, len(keys))
		for _, k := range keys {
			name, err := resolveKeyName(k)
			if err != nil {
				return nil, fmt.Errorf("keys.%s: %w", actionName, err)
			}
			names = append(names, name)
		}
		result[a] = names
	}
	return result, nil
}

// MergeKeyTable returns a new KeyTable with each overridden action's keys replaced.
// A key reused by an override is taken away from its default action.
func MergeKeyTable(base *KeyTable, override map[Action][]string) *KeyTable {
	result := base.Clone()
	for a, keys := range override {
		result.unbindAction(a)
		for _, k := range keys {
			result.keys[k] = a
		}
	}
	return result
}
