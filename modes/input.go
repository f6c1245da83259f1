// Package modes routes terminal events to the screen that owns them.
package modes

import (
	"errors"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/input"
	"github.com/lixenwraith/aelyra/render"
)

// InputHandler processes user input events for every game state
type InputHandler struct {
	ctx     *engine.GameContext
	machine *input.Machine

	mouseDown bool // Left button state for click edges on menu screens
}

// NewInputHandler creates a handler feeding gameplay input to machine
func NewInputHandler(ctx *engine.GameContext, machine *input.Machine) *InputHandler {
	return &InputHandler{
		ctx:     ctx,
		machine: machine,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		return h.handleMouseEvent(ev)
	case *tcell.EventResize:
		h.ctx.Resize(ev.Size())
	}
	return true
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
		return false
	}

	switch h.ctx.State {
	case core.StateGame:
		h.handleGameKey(ev)
	case core.StateMenu:
		return h.handleMenuKey(ev)
	case core.StateSettings:
		h.handleSettingsKey(ev)
	case core.StateShop:
		h.handleShopKey(ev)
	case core.StateGameOver, core.StateVictory:
		h.handleEndKey(ev)
	}
	return true
}

// handleMouseEvent forwards gameplay mouse input and turns clicks into button presses elsewhere
func (h *InputHandler) handleMouseEvent(ev *tcell.EventMouse) bool {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !h.mouseDown
	h.mouseDown = down

	if h.ctx.State == core.StateGame {
		h.machine.HandleMouse(ev)
		return true
	}

	x, y := ev.Position()
	buttons, cursor := h.screenButtons()
	if cursor == nil {
		return true
	}
	i := render.HitTest(buttons, x, y)
	if i < 0 {
		return true
	}
	// Hover moves the cursor; a press activates
	if !(h.ctx.State == core.StateSettings && h.ctx.UI.Capture.Active()) {
		*cursor = i
	}
	if pressed {
		return h.activate()
	}
	return true
}

// screenButtons returns the clickable layout and cursor of the current screen
func (h *InputHandler) screenButtons() ([]render.Button, *int) {
	w, hh := h.ctx.Width, h.ctx.Height
	ui := &h.ctx.UI
	switch h.ctx.State {
	case core.StateMenu:
		return render.MenuButtons(w, hh), &ui.MenuIndex
	case core.StateSettings:
		return render.SettingsButtons(w), &ui.SettingsIndex
	case core.StateShop:
		return render.ShopButtons(w, hh), &ui.ShopIndex
	case core.StateGameOver:
		return render.GameOverButtons(w, hh), &ui.EndIndex
	case core.StateVictory:
		return render.VictoryButtons(w, hh), &ui.EndIndex
	}
	return nil, nil
}

// activate presses the selected button of the current screen. Returns false to quit.
func (h *InputHandler) activate() bool {
	switch h.ctx.State {
	case core.StateMenu:
		return h.activateMenu()
	case core.StateSettings:
		h.activateSettings()
	case core.StateShop:
		h.activateShop()
	case core.StateGameOver:
		if h.ctx.UI.EndIndex == engine.GameOverRetry {
			h.startGame()
		} else {
			h.returnToMenu()
		}
	case core.StateVictory:
		h.returnToMenu()
	}
	return true
}

// navigate moves the cursor on up/down; returns true if the key was consumed
func navigate(ev *tcell.EventKey, cursor *int, n int) bool {
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyBacktab:
		*cursor = engine.WrapIndex(*cursor, -1, n)
	case tcell.KeyDown, tcell.KeyTab:
		*cursor = engine.WrapIndex(*cursor, 1, n)
	default:
		return false
	}
	return true
}

func isConfirm(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ')
}

// ===== Game =====

func (h *InputHandler) handleGameKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		h.returnToMenu()
		return
	}
	h.machine.HandleKey(ev)
}

// ===== Menu =====

func (h *InputHandler) handleMenuKey(ev *tcell.EventKey) bool {
	if navigate(ev, &h.ctx.UI.MenuIndex, len(engine.MenuItems)) {
		return true
	}
	if isConfirm(ev) {
		return h.activateMenu()
	}
	return true
}

func (h *InputHandler) activateMenu() bool {
	switch h.ctx.UI.MenuIndex {
	case engine.MenuPlay:
		h.startGame()
	case engine.MenuSettings:
		h.transition(h.ctx.OpenSettings)
	case engine.MenuQuit:
		log.Printf("quit from menu")
		return false
	}
	return true
}

// ===== Settings =====

func (h *InputHandler) handleSettingsKey(ev *tcell.EventKey) {
	ui := &h.ctx.UI
	switch ui.Capture.Feed(ev, h.ctx.Keys) {
	case input.CaptureBound:
		a := ui.Capture.Action()
		ui.Notify(fmt.Sprintf("%s bound to %s", a.Label(), input.KeyName(ev)))
		log.Printf("rebound %s to %s", a, input.KeyName(ev))
		return
	case input.CapturePending, input.CaptureCancelled:
		return
	}

	if ev.Key() == tcell.KeyEscape {
		h.transition(h.ctx.CloseSettings)
		return
	}
	if navigate(ev, &ui.SettingsIndex, engine.SettingsRows()) {
		return
	}
	if isConfirm(ev) {
		h.activateSettings()
	}
}

func (h *InputHandler) activateSettings() {
	ui := &h.ctx.UI
	if ui.Capture.Active() {
		return
	}
	switch row := ui.SettingsIndex; row {
	case engine.SettingsSoundRow():
		if h.ctx.ToggleMute() {
			ui.Notify("Sound off")
		} else {
			ui.Notify("Sound on")
		}
	case engine.SettingsBackRow():
		h.transition(h.ctx.CloseSettings)
	default:
		ui.Capture.Begin(input.Actions()[row])
	}
}

// ===== Shop =====

func (h *InputHandler) handleShopKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape || h.isAction(ev, input.ActionShop) {
		h.closeShop()
		return
	}
	if navigate(ev, &h.ctx.UI.ShopIndex, len(engine.ShopItems())+1) {
		return
	}
	if isConfirm(ev) {
		h.activateShop()
	}
}

func (h *InputHandler) activateShop() {
	items := engine.ShopItems()
	i := h.ctx.UI.ShopIndex
	if i >= len(items) {
		h.closeShop()
		return
	}

	item := items[i]
	err := h.ctx.Purchase(item.Tier)
	switch {
	case err == nil:
		h.ctx.UI.Notify("Purchased " + item.Name)
	case errors.Is(err, engine.ErrInsufficientGold):
		h.ctx.UI.Notify("Not enough gold!")
	case errors.Is(err, engine.ErrTierOwned):
		h.ctx.UI.Notify("Already owned")
	default:
		log.Printf("shop: %v", err)
	}
}

func (h *InputHandler) closeShop() {
	h.transition(h.ctx.CloseShop)
}

// ===== Game over / Victory =====

func (h *InputHandler) handleEndKey(ev *tcell.EventKey) {
	n := len(engine.GameOverItems)
	if h.ctx.State == core.StateVictory {
		n = len(engine.VictoryItems)
	}
	if navigate(ev, &h.ctx.UI.EndIndex, n) {
		return
	}
	if isConfirm(ev) {
		h.activate()
	}
}

// ===== Transitions =====

func (h *InputHandler) startGame() {
	h.transition(h.ctx.StartGame)
}

func (h *InputHandler) returnToMenu() {
	h.transition(h.ctx.ReturnToMenu)
}

// transition runs a state change and drops input held across it
func (h *InputHandler) transition(change func() error) {
	if err := change(); err != nil {
		log.Printf("input: %v", err)
		return
	}
	h.machine.Reset()
}

func (h *InputHandler) isAction(ev *tcell.EventKey, a input.Action) bool {
	got, ok := h.ctx.Keys.Lookup(input.KeyName(ev))
	return ok && got == a
}
