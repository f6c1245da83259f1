package input

import (
	"maps"
	"slices"
)

// KeyTable maps normalized key names (see KeyName) to actions.
// A key drives at most one action; an action may have several keys.
type KeyTable struct {
	keys map[string]Action
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		keys: map[string]Action{
			"q":     ActionMoveLeft,
			"left":  ActionMoveLeft,
			"d":     ActionMoveRight,
			"right": ActionMoveRight,
			"space": ActionJump,
			"up":    ActionJump,
			"e":     ActionHeal,
			"f":     ActionFire,
			"g":     ActionSpecial,
			"b":     ActionShop,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{keys: maps.Clone(kt.keys)}
}

// Lookup returns the action bound to a key name
func (kt *KeyTable) Lookup(key string) (Action, bool) {
	a, ok := kt.keys[key]
	return a, ok
}

// KeysFor returns the sorted key names bound to an action
func (kt *KeyTable) KeysFor(a Action) []string {
	var out []string
	for k, bound := range kt.keys {
		if bound == a {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// Rebind makes key the only binding of action, stealing it from any other action
func (kt *KeyTable) Rebind(a Action, key string) {
	kt.unbindAction(a)
	kt.keys[key] = a
}

func (kt *KeyTable) unbindAction(a Action) {
	maps.DeleteFunc(kt.keys, func(_ string, bound Action) bool { return bound == a })
}
