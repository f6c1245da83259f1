package renderers

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/aelyra/components"
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/input"
	"github.com/lixenwraith/aelyra/render"
)

const (
	testWidth  = 80
	testHeight = 24
)

func newTestGame(t *testing.T) *engine.GameContext {
	t.Helper()
	return engine.NewGameContext(nil, nil, rand.New(rand.NewSource(5)), testWidth, testHeight)
}

// draw runs one renderer into a fresh buffer, honoring its visibility
func draw(ctx *engine.GameContext, r render.SystemRenderer) (*render.RenderBuffer, bool) {
	rc := render.NewRenderContext(ctx)
	b := render.NewRenderBuffer(rc.ScreenWidth, rc.ScreenHeight)
	b.Clear(render.ColorScreenBg)
	if vt, ok := r.(render.VisibilityToggle); ok && !vt.IsVisible(rc) {
		return b, false
	}
	r.Render(rc, b)
	return b, true
}

func rowText(b *render.RenderBuffer, y int) string {
	w, _ := b.Size()
	var sb strings.Builder
	for x := range w {
		sb.WriteRune(b.Get(x, y).Rune)
	}
	return sb.String()
}

func screenContains(b *render.RenderBuffer, text string) bool {
	_, h := b.Size()
	for y := range h {
		if strings.Contains(rowText(b, y), text) {
			return true
		}
	}
	return false
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"Fits", "hello world", 20, []string{"hello world"}},
		{"Breaks on space", "Welcome to the Kingdom of Water", 14, []string{"Welcome to the", "Kingdom of", "Water"}},
		{"Splits long word", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"Empty", "   ", 10, nil},
		{"Zero width", "abc", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapText(tt.text, tt.width); !slices.Equal(got, tt.want) {
				t.Errorf("wrapText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlayerVisibleBlink(t *testing.T) {
	tests := []struct {
		frames int
		want   bool
	}{
		{0, true},
		{60, false},
		{64, false},
		{65, true},
		{69, true},
		{70, false},
	}

	p := components.NewPlayer(0, 0)
	for _, tt := range tests {
		p.InvincibleFrames = tt.frames
		if got := PlayerVisible(p); got != tt.want {
			t.Errorf("PlayerVisible(frames=%d) = %v, want %v", tt.frames, got, tt.want)
		}
	}
}

func TestSpecialStatus(t *testing.T) {
	tests := []struct {
		tier, cooldown int
		want           string
	}{
		{constants.SpecialTierBase, 0, "Special: READY"},
		{constants.SpecialTierMega, 61, "Mega: 2s"},
		{constants.SpecialTierUltra, 60, "Ultra: 1s"},
	}
	for _, tt := range tests {
		if got := specialStatus(tt.tier, tt.cooldown); got != tt.want {
			t.Errorf("specialStatus(%d, %d) = %q, want %q", tt.tier, tt.cooldown, got, tt.want)
		}
	}
}

func TestControlsLineFollowsRebinds(t *testing.T) {
	kt := input.DefaultKeyTable()
	if line := ControlsLine(kt); !strings.Contains(line, "Jump space/up") {
		t.Errorf("Unexpected controls line %q", line)
	}

	kt.Rebind(input.ActionJump, "w")
	if line := ControlsLine(kt); !strings.Contains(line, "Jump w") {
		t.Errorf("Controls line ignores rebind: %q", line)
	}
}

func TestScreenVisibilityByState(t *testing.T) {
	ctx := newTestGame(t)

	menu := NewMenuRenderer(ctx)
	hud := NewHUDRenderer(ctx)

	b, ok := draw(ctx, menu)
	if !ok || !screenContains(b, constants.GameTitle) {
		t.Fatal("Expected title on the menu")
	}
	if _, ok := draw(ctx, hud); ok {
		t.Error("HUD visible on the menu")
	}

	if err := ctx.StartGame(); err != nil {
		t.Fatal(err)
	}
	if _, ok := draw(ctx, menu); ok {
		t.Error("Menu visible in game")
	}
	b, ok = draw(ctx, hud)
	if !ok || !screenContains(b, "Kingdom of Water") || !screenContains(b, "Gold: 0") {
		t.Error("Expected HUD with kingdom name and gold")
	}
}

func TestHUDShowsMute(t *testing.T) {
	ctx := newTestGame(t)
	ctx.StartGame()
	ctx.ToggleMute()

	b, _ := draw(ctx, NewHUDRenderer(ctx))
	if !screenContains(b, "[muted]") {
		t.Error("Expected muted marker")
	}
}

func TestDialogueRenderer(t *testing.T) {
	ctx := newTestGame(t)
	ctx.StartGame()

	b, ok := draw(ctx, NewDialogueRenderer(ctx))
	if !ok || !screenContains(b, "Welcome to the Kingdom of Water") {
		t.Fatal("Expected welcome dialogue")
	}

	ctx.Dialogue.Clear()
	if _, ok := draw(ctx, NewDialogueRenderer(ctx)); ok {
		t.Error("Dialogue drawn after clear")
	}
}

func TestSettingsRendererCapture(t *testing.T) {
	ctx := newTestGame(t)
	if err := ctx.OpenSettings(); err != nil {
		t.Fatal(err)
	}
	r := NewSettingsRenderer(ctx)

	if label := r.rowLabel(int(input.ActionMoveLeft)); !strings.Contains(label, "Move Left") || !strings.Contains(label, "left, q") {
		t.Errorf("Unexpected label %q", label)
	}

	ctx.UI.Capture.Begin(input.ActionJump)
	if label := r.rowLabel(int(input.ActionJump)); !strings.HasSuffix(label, "...") {
		t.Errorf("Expected capture marker, got %q", label)
	}

	if r.rowLabel(engine.SettingsSoundRow()) != "Sound: On" {
		t.Error("Expected sound on")
	}
	ctx.ToggleMute()
	if r.rowLabel(engine.SettingsSoundRow()) != "Sound: Off" {
		t.Error("Expected sound off")
	}

	b, ok := draw(ctx, r)
	if !ok || !screenContains(b, "Press a key to bind") {
		t.Error("Expected capture hint")
	}
}

func TestShopRendererOwned(t *testing.T) {
	ctx := newTestGame(t)
	ctx.StartGame()
	ctx.OpenShop()
	ctx.Player.SpecialTier = constants.SpecialTierMega

	b, ok := draw(ctx, NewShopRenderer(ctx))
	if !ok {
		t.Fatal("Shop not visible")
	}
	found := false
	_, h := b.Size()
	for y := range h {
		row := rowText(b, y)
		if strings.Contains(row, "Mega Special") {
			found = strings.Contains(row, "owned")
		}
	}
	if !found {
		t.Error("Expected Mega marked owned")
	}
	if !screenContains(b, "Close") {
		t.Error("Expected close row")
	}
}

func TestEndScreens(t *testing.T) {
	ctx := newTestGame(t)
	ctx.StartGame()
	ctx.Transition(core.StateGameOver)

	if b, ok := draw(ctx, NewGameOverRenderer(ctx)); !ok || !screenContains(b, "GAME OVER") || !screenContains(b, "Retry") {
		t.Error("Expected game over screen")
	}

	ctx.StartGame()
	ctx.Transition(core.StateVictory)
	ctx.SpawnParticles(constants.ScreenWidth/2, constants.ScreenHeight/2, core.RGBGold, 3)
	if b, ok := draw(ctx, NewVictoryRenderer(ctx)); !ok || !screenContains(b, "VICTORY!") {
		t.Error("Expected victory screen")
	}
}

func TestNoticeRenderer(t *testing.T) {
	ctx := newTestGame(t)
	if _, ok := draw(ctx, NewNoticeRenderer(ctx)); ok {
		t.Error("Notice visible without a message")
	}
	ctx.UI.Notify("not enough gold")
	b, ok := draw(ctx, NewNoticeRenderer(ctx))
	if !ok || !strings.Contains(rowText(b, testHeight-1), "not enough gold") {
		t.Error("Expected notice on the bottom row")
	}
}

func TestWorldFallbacksWithoutAssets(t *testing.T) {
	ctx := newTestGame(t)
	ctx.StartGame()
	ctx.AddProjectile(components.NewSpecialProjectile(200, 400, core.DirRight, core.ElementFire, components.TierUltra))
	ctx.SpawnParticles(300, 400, core.RGBRed, 5)

	// Background falls back to the kingdom color
	b, _ := draw(ctx, NewBackgroundRenderer(ctx, nil))
	if got := b.Get(0, constants.HUDRows).Bg; got != ctx.Kingdom.Background {
		t.Errorf("Expected kingdom fill, got %v", got)
	}

	for _, r := range []render.SystemRenderer{
		NewEnemyRenderer(ctx, nil),
		NewProjectileRenderer(ctx),
		NewParticleRenderer(ctx),
		NewPlayerRenderer(ctx, nil),
	} {
		if _, ok := draw(ctx, r); !ok {
			t.Errorf("%T not visible in game", r)
		}
	}
}

func TestRegisterFullFrame(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(testWidth, testHeight)

	ctx := newTestGame(t)
	o := render.NewRenderOrchestrator(screen, render.ColorModeTrueColor)
	Register(o, ctx, nil)

	states := []func() error{
		func() error { return nil },
		ctx.StartGame,
		ctx.OpenShop,
		ctx.CloseShop,
	}
	for _, step := range states {
		if err := step(); err != nil {
			t.Fatal(err)
		}
		o.RenderFrame(ctx)
		ctx.IncrementFrameNumber()
	}

	if !screenContains(o.Buffer(), "HP") {
		t.Error("Expected HUD in the composited game frame")
	}
}
