package input

import (
	"errors"
	"slices"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/aelyra/constants"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"Lowercase letter", runeKey('q'), "q"},
		{"Uppercase folds", runeKey('Q'), "q"},
		{"Space", runeKey(' '), "space"},
		{"Arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "left"},
		{"Function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "f5"},
		{"Escape is unbindable", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyName(tt.ev); got != tt.want {
				t.Errorf("KeyName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultKeyTable(t *testing.T) {
	kt := DefaultKeyTable()

	expect := map[string]Action{
		"q":     ActionMoveLeft,
		"d":     ActionMoveRight,
		"space": ActionJump,
		"e":     ActionHeal,
		"b":     ActionShop,
	}
	for key, want := range expect {
		got, ok := kt.Lookup(key)
		if !ok || got != want {
			t.Errorf("Lookup(%q) = %v/%v, want %v", key, got, ok, want)
		}
	}

	if keys := kt.KeysFor(ActionMoveLeft); !slices.Equal(keys, []string{"left", "q"}) {
		t.Errorf("KeysFor(move_left) = %v", keys)
	}
}

func TestKeyTableRebind(t *testing.T) {
	kt := DefaultKeyTable()
	kt.Rebind(ActionMoveLeft, "a")

	if _, ok := kt.Lookup("q"); ok {
		t.Error("Expected old binding q removed")
	}
	if a, _ := kt.Lookup("a"); a != ActionMoveLeft {
		t.Errorf("Expected a bound to move_left, got %v", a)
	}

	// Stealing a key from another action
	kt.Rebind(ActionHeal, "d")
	if a, _ := kt.Lookup("d"); a != ActionHeal {
		t.Errorf("Expected d bound to heal, got %v", a)
	}
	if keys := kt.KeysFor(ActionMoveRight); !slices.Equal(keys, []string{"right"}) {
		t.Errorf("Expected move_right left with arrow only, got %v", keys)
	}
}

func TestLoadKeyConfig(t *testing.T) {
	override, err := LoadKeyConfig(map[string][]string{
		"move_left": {"A", "Left"},
		"jump":      {},
	})
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}
	if _, ok := override[ActionJump]; ok {
		t.Error("Empty list should keep defaults")
	}

	merged := MergeKeyTable(DefaultKeyTable(), override)
	if keys := merged.KeysFor(ActionMoveLeft); !slices.Equal(keys, []string{"a", "left"}) {
		t.Errorf("Merged move_left = %v", keys)
	}
	if keys := merged.KeysFor(ActionJump); !slices.Equal(keys, []string{"space", "up"}) {
		t.Errorf("Jump defaults lost: %v", keys)
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string][]string
		wantErr error
	}{
		{"Unknown action", map[string][]string{"dash": {"x"}}, ErrUnknownAction},
		{"Unknown key", map[string][]string{"jump": {"hyperspace"}}, ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMachineHoldWindow(t *testing.T) {
	m := NewMachine(DefaultKeyTable())
	m.HandleKey(runeKey('d'))

	for i := 0; i < constants.KeyHoldFirstTicks; i++ {
		if !m.Frame().Right {
			t.Fatalf("Expected right held at tick %d", i)
		}
	}
	if m.Frame().Right {
		t.Error("Expected hold window to expire")
	}
}

func TestMachineRepeatExtendsHold(t *testing.T) {
	m := NewMachine(DefaultKeyTable())
	m.HandleKey(runeKey('q'))
	for range constants.KeyHoldFirstTicks - 1 {
		m.Frame()
	}

	// Auto-repeat arrives near the end of the window
	m.HandleKey(runeKey('q'))
	for i := 0; i < constants.KeyHoldRepeatTicks; i++ {
		if !m.Frame().Left {
			t.Fatalf("Expected left held after repeat at tick %d", i)
		}
	}
	if m.Frame().Left {
		t.Error("Expected release after repeat window")
	}
}

func TestMachineEdgeActions(t *testing.T) {
	m := NewMachine(DefaultKeyTable())
	m.HandleKey(runeKey('e'))
	m.HandleKey(runeKey('b'))

	f := m.Frame()
	if !f.Heal || !f.Shop {
		t.Fatalf("Expected heal and shop edges, got %+v", f)
	}
	if f = m.Frame(); f.Heal || f.Shop {
		t.Errorf("Edges must last one tick, got %+v", f)
	}

	if m.HandleKey(runeKey('z')) {
		t.Error("Unbound key reported as handled")
	}
}

func TestMachineMouseFire(t *testing.T) {
	m := NewMachine(DefaultKeyTable())
	m.HandleMouse(mouse(5, 5, tcell.Button1))

	if !m.Frame().Fire || !m.Frame().Fire {
		t.Error("Expected fire while button held")
	}

	m.HandleMouse(mouse(5, 5, tcell.ButtonNone))
	if m.Frame().Fire {
		t.Error("Expected fire to stop after release")
	}
	if x, y := m.MousePosition(); x != 5 || y != 5 {
		t.Errorf("Mouse position = (%d, %d)", x, y)
	}
}

func TestMachineDoubleClick(t *testing.T) {
	tests := []struct {
		name string
		gap  int
		want bool
	}{
		{"Inside window", 5, true},
		{"At window edge", DoubleClickTicks, true},
		{"Outside window", DoubleClickTicks + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(DefaultKeyTable())
			m.HandleMouse(mouse(0, 0, tcell.Button1))
			m.HandleMouse(mouse(0, 0, tcell.ButtonNone))
			for range tt.gap {
				m.Frame()
			}
			m.HandleMouse(mouse(0, 0, tcell.Button1))

			if got := m.Frame().Special; got != tt.want {
				t.Errorf("Special = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMachineTripleClickFiresOnce(t *testing.T) {
	m := NewMachine(DefaultKeyTable())
	specials := 0
	for range 3 {
		m.HandleMouse(mouse(0, 0, tcell.Button1))
		m.HandleMouse(mouse(0, 0, tcell.ButtonNone))
		if m.Frame().Special {
			specials++
		}
	}
	if specials != 1 {
		t.Errorf("Expected exactly one special from three quick clicks, got %d", specials)
	}
}

func TestCapture(t *testing.T) {
	kt := DefaultKeyTable()
	var c Capture

	if c.Feed(runeKey('x'), kt) != CaptureIdle {
		t.Fatal("Expected idle capture to ignore keys")
	}

	c.Begin(ActionJump)
	if c.Feed(tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), kt) != CapturePending {
		t.Error("Expected unbindable key to keep capture pending")
	}
	if c.Feed(runeKey('w'), kt) != CaptureBound {
		t.Fatal("Expected w to bind")
	}
	if a, _ := kt.Lookup("w"); a != ActionJump {
		t.Errorf("Expected w bound to jump, got %v", a)
	}
	if c.Active() {
		t.Error("Capture should end after binding")
	}
}

func TestCaptureEscapeCancels(t *testing.T) {
	kt := DefaultKeyTable()
	var c Capture
	c.Begin(ActionMoveLeft)

	if c.Feed(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), kt) != CaptureCancelled {
		t.Fatal("Expected escape to cancel")
	}
	if keys := kt.KeysFor(ActionMoveLeft); !slices.Equal(keys, []string{"left", "q"}) {
		t.Errorf("Cancelled capture changed bindings: %v", keys)
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, err)
		}
	}
}
