package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	mode      ColorMode
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen, mode ColorMode) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		mode:      mode,
		buffer:    NewRenderBuffer(w, h),
		renderers: make([]rendererEntry, 0, 16),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Buffer exposes the composited frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(ctx *engine.GameContext) {
	rc := NewRenderContext(ctx)
	if w, h := o.buffer.Size(); w != rc.ScreenWidth || h != rc.ScreenHeight {
		o.buffer.Resize(rc.ScreenWidth, rc.ScreenHeight)
	}
	o.buffer.Clear(ColorScreenBg)

	if rc.TooSmall() {
		drawTooSmall(o.buffer, rc)
	} else {
		for _, entry := range o.renderers {
			if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(rc) {
				continue
			}
			entry.renderer.Render(rc, o.buffer)
		}
	}

	o.buffer.FlushToScreen(o.screen, o.mode)
	o.screen.Show()
}

func drawTooSmall(s Surface, rc RenderContext) {
	y := rc.ScreenHeight / 2
	CenterTextOver(s, y-1, "Terminal too small", ColorDanger)
	CenterTextOver(s, y, fmt.Sprintf("Resize to at least %dx%d", constants.MinTerminalWidth, constants.MinTerminalHeight), ColorTextDim)
}
