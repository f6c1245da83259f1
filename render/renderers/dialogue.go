package renderers

import (
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/render"
)

const dialogueMarginX = 4

// DialogueRenderer draws the message box at the bottom of the game area
type DialogueRenderer struct {
	gameCtx *engine.GameContext
}

func NewDialogueRenderer(gameCtx *engine.GameContext) *DialogueRenderer {
	return &DialogueRenderer{gameCtx: gameCtx}
}

func (r *DialogueRenderer) IsVisible(ctx render.RenderContext) bool {
	return inStates(ctx, worldStates...) && r.gameCtx.Dialogue.Active()
}

func (r *DialogueRenderer) Render(ctx render.RenderContext, s render.Surface) {
	w := ctx.ScreenWidth - 2*dialogueMarginX
	h := constants.DialogueRows
	y := ctx.ScreenHeight - h - 1
	drawBox(s, dialogueMarginX, y, w, h, render.ColorHighlight, render.ColorPanel)

	lines := wrapText(r.gameCtx.Dialogue.Text, w-4)
	for i, line := range lines[:min(len(lines), h-2)] {
		s.Text(dialogueMarginX+2, y+1+i, line, render.ColorText)
	}
}

// NoticeRenderer shows the short UI message (shop refusals, rebinds) on any screen
type NoticeRenderer struct {
	gameCtx *engine.GameContext
}

func NewNoticeRenderer(gameCtx *engine.GameContext) *NoticeRenderer {
	return &NoticeRenderer{gameCtx: gameCtx}
}

func (r *NoticeRenderer) IsVisible(ctx render.RenderContext) bool {
	return r.gameCtx.UI.Message != ""
}

func (r *NoticeRenderer) Render(ctx render.RenderContext, s render.Surface) {
	msg := " " + r.gameCtx.UI.Message + " "
	x := max((ctx.ScreenWidth-len([]rune(msg)))/2, 0)
	s.TextBg(x, ctx.ScreenHeight-1, msg, render.ColorPanel, render.ColorNotice)
}
