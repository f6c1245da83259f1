package render

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/aelyra/asset"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
)

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		c    core.RGB
		want uint8
	}{
		{"Black", core.RGB{}, 16},
		{"White", core.RGB{R: 255, G: 255, B: 255}, 231},
		{"Pure red", core.RGB{R: 255}, 196},
		{"Pure blue", core.RGB{B: 255}, 21},
		{"Mid gray uses ramp", core.RGB{R: 128, G: 128, B: 128}, 244},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.c); got != tt.want {
				t.Errorf("RGBTo256(%v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"truecolor", ColorModeTrueColor, false},
		{"TrueColor", ColorModeTrueColor, false},
		{"256", ColorMode256, false},
		{"sixteen", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q) error = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColorMode(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDetectColorModeFromEnv(t *testing.T) {
	for _, env := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(env, "")
	}
	t.Setenv("TERM", "xterm-256color")

	t.Setenv("COLORTERM", "")
	if DetectColorMode() != ColorMode256 {
		t.Error("Expected 256 colors without COLORTERM")
	}
	t.Setenv("COLORTERM", "truecolor")
	if DetectColorMode() != ColorModeTrueColor {
		t.Error("Expected truecolor from COLORTERM")
	}
}

func TestBufferClipping(t *testing.T) {
	b := NewRenderBuffer(10, 5)
	b.Clear(ColorPanel)

	b.SetCell(-1, 0, 'x', ColorText, ColorDanger)
	b.SetCell(10, 4, 'x', ColorText, ColorDanger)
	b.FillRect(8, 3, 10, 10, ColorGold)

	if got := b.Get(9, 4).Bg; got != ColorGold {
		t.Errorf("Expected clipped fill inside bounds, got %v", got)
	}
	if got := b.Get(7, 3).Bg; got != ColorPanel {
		t.Errorf("Fill leaked left, got %v", got)
	}
	if got := b.Get(-1, 0); got != (Cell{}) {
		t.Errorf("Out of bounds Get should be zero, got %+v", got)
	}
}

func TestBufferText(t *testing.T) {
	b := NewRenderBuffer(10, 2)
	b.Clear(ColorPanel)

	n := b.Text(7, 0, "Héllo", ColorGold)
	if n != 5 {
		t.Errorf("Text advanced %d cells, want 5", n)
	}
	if c := b.Get(8, 0); c.Rune != 'é' || c.Fg != ColorGold || c.Bg != ColorPanel {
		t.Errorf("Unexpected cell %+v", c)
	}

	b.TextBg(0, 1, "ab", ColorText, ColorDanger)
	if c := b.Get(1, 1); c.Rune != 'b' || c.Bg != ColorDanger {
		t.Errorf("TextBg cell %+v", c)
	}
}

func TestBufferResizeClears(t *testing.T) {
	b := NewRenderBuffer(4, 4)
	b.SetCell(1, 1, 'x', ColorText, ColorGold)
	b.Resize(2, 2)

	if w, h := b.Size(); w != 2 || h != 2 {
		t.Fatalf("Size = %dx%d", w, h)
	}
	if c := b.Get(1, 1); c.Rune != ' ' {
		t.Errorf("Expected resized buffer cleared, got %q", c.Rune)
	}
}

func TestBufferFillCircleNegativeCenter(t *testing.T) {
	b := NewRenderBuffer(5, 5)
	b.Clear(ColorPanel)

	// Center left of the buffer still reaches column 0
	b.FillCircle(-0.5, 2.5, 1.2, 1.2, ColorGold)
	if b.Get(0, 2).Bg != ColorGold {
		t.Error("Expected circle edge drawn in column 0")
	}
	if b.Get(2, 2).Bg != ColorPanel {
		t.Error("Circle too wide")
	}
}

func TestBufferLine(t *testing.T) {
	b := NewRenderBuffer(5, 5)
	b.Clear(ColorPanel)
	b.Line(0, 0, 4, 4, '\\', ColorText)

	for i := range 5 {
		if b.Get(i, i).Rune != '\\' {
			t.Errorf("Diagonal missing at %d", i)
		}
	}
	if b.Get(1, 0).Rune != ' ' {
		t.Error("Line drew off the diagonal")
	}
}

func TestBufferBlitMasks(t *testing.T) {
	b := NewRenderBuffer(3, 1)
	b.Clear(ColorPanel)

	red, blue := core.RGB{R: 255}, core.RGB{B: 255}
	img := &asset.Cells{Width: 3, Height: 1, Cells: []asset.Cell{
		{Rune: ' ', Mask: 0},
		{Rune: '▌', Fg: red, Bg: blue, Mask: 0b0101},
		{Rune: '█', Fg: red, Bg: blue, Mask: asset.FullMask},
	}}
	b.Blit(img, 0, 0)

	if c := b.Get(0, 0); c.Rune != ' ' || c.Bg != ColorPanel {
		t.Errorf("Transparent cell overwritten: %+v", c)
	}
	if c := b.Get(1, 0); c.Rune != '▌' || c.Fg != red || c.Bg != ColorPanel {
		t.Errorf("Partial cell should keep background: %+v", c)
	}
	if c := b.Get(2, 0); c.Bg != blue {
		t.Errorf("Opaque cell should replace background: %+v", c)
	}

	b.Blit(nil, 0, 0)
}

func TestListLayoutAndHitTest(t *testing.T) {
	buttons := ListLayout(80, 10, []string{"Play", "Settings", "Quit"})

	// Widest label 8 plus padding on both sides
	for i, b := range buttons {
		if b.X != 32 || b.Width != 16 || b.Y != 10+2*i {
			t.Errorf("Button %d = %+v", i, b)
		}
	}

	tests := []struct {
		x, y int
		want int
	}{
		{32, 10, 0},
		{47, 12, 1},
		{40, 14, 2},
		{31, 12, -1},
		{48, 12, -1},
		{40, 11, -1},
	}
	for _, tt := range tests {
		if got := HitTest(buttons, tt.x, tt.y); got != tt.want {
			t.Errorf("HitTest(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestScreenLayoutsMatchEntries(t *testing.T) {
	if n := len(MenuButtons(80, 24)); n != len(engine.MenuItems) {
		t.Errorf("Menu has %d buttons", n)
	}
	if n := len(ShopButtons(80, 24)); n != len(engine.ShopItems())+1 {
		t.Errorf("Shop has %d rows", n)
	}

	settings := SettingsButtons(80)
	if len(settings) != engine.SettingsRows() {
		t.Fatalf("Settings has %d rows", len(settings))
	}
	// Settings must fit the minimum terminal
	if last := settings[len(settings)-1]; last.Y >= 20-2 {
		t.Errorf("Settings overflow the minimum terminal: last row %d", last.Y)
	}
}

func TestWorldRect(t *testing.T) {
	rc := RenderContext{GameTop: 3, CameraX: 100, ScaleX: 0.1, ScaleY: 0.05}

	tests := []struct {
		name       string
		r          core.Rect
		x, y, w, h int
	}{
		{"On screen", core.Rect{X: 150, Y: 200, Width: 50, Height: 60}, 5, 13, 5, 3},
		{"Left of camera floors", core.Rect{X: 95, Y: 0, Width: 50, Height: 60}, -1, 3, 5, 3},
		{"Tiny stays visible", core.Rect{X: 100, Y: 0, Width: 1, Height: 1}, 0, 3, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := rc.WorldRect(tt.r)
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("WorldRect = (%d, %d, %d, %d), want (%d, %d, %d, %d)", x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

type recordingRenderer struct {
	name    string
	visible bool
	log     *[]string
}

func (r *recordingRenderer) IsVisible(RenderContext) bool { return r.visible }

func (r *recordingRenderer) Render(_ RenderContext, s Surface) {
	*r.log = append(*r.log, r.name)
	s.Text(0, 0, r.name, ColorText)
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func TestOrchestratorOrder(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	ctx := engine.NewGameContext(nil, nil, rand.New(rand.NewSource(1)), 80, 24)

	var calls []string
	o := NewRenderOrchestrator(screen, ColorModeTrueColor)
	o.Register(&recordingRenderer{name: "hud", visible: true, log: &calls}, PriorityHUD)
	o.Register(&recordingRenderer{name: "bg", visible: true, log: &calls}, PriorityBackground)
	o.Register(&recordingRenderer{name: "hidden", visible: false, log: &calls}, PriorityEnemies)
	o.Register(&recordingRenderer{name: "ui", visible: true, log: &calls}, PriorityHUD)

	o.RenderFrame(ctx)

	if want := []string{"bg", "hud", "ui"}; !slices.Equal(calls, want) {
		t.Errorf("Render order = %v, want %v", calls, want)
	}

	// Last writer wins at (0, 0)
	r, _, _, _ := screen.GetContent(0, 0)
	if r != 'u' {
		t.Errorf("Expected flushed 'u', got %q", r)
	}
}

func TestOrchestratorTooSmall(t *testing.T) {
	screen := newSimScreen(t, 40, 10)
	ctx := engine.NewGameContext(nil, nil, rand.New(rand.NewSource(1)), 40, 10)

	var calls []string
	o := NewRenderOrchestrator(screen, ColorMode256)
	o.Register(&recordingRenderer{name: "bg", visible: true, log: &calls}, PriorityBackground)
	o.RenderFrame(ctx)

	if len(calls) != 0 {
		t.Errorf("Renderers ran on a too-small terminal: %v", calls)
	}
	if w, h := o.Buffer().Size(); w != 40 || h != 10 {
		t.Errorf("Buffer not sized to terminal: %dx%d", w, h)
	}
}
