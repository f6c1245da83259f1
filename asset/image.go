package asset

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/aelyra/constants"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// defaultFrameTicks is used for GIF frames without a delay
const defaultFrameTicks = 6

// Image is a decoded still image or the frames of an animation
type Image struct {
	Name   string
	Frames []image.Image
	Delays []int // Per-frame display time in ticks

	period int
	cache  map[cellKey]*Cells
}

type cellKey struct {
	frame, w, h int
	mirrored    bool
}

// Decode reads one asset. GIFs keep every frame; other formats are single-frame.
func Decode(name string, r io.Reader) (*Image, error) {
	if strings.EqualFold(filepath.Ext(name), ".gif") {
		return decodeGIF(name, r)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return newImage(name, []image.Image{img}, []int{1}), nil
}

func decodeGIF(name string, r io.Reader) (*Image, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode gif: %w", err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("decode gif: no frames")
	}

	frames := make([]image.Image, len(g.Image))
	delays := make([]int, len(g.Image))

	// Frames are deltas over the previous canvas
	canvas := image.NewRGBA(image.Rect(0, 0, g.Config.Width, g.Config.Height))
	if canvas.Rect.Empty() {
		canvas = image.NewRGBA(g.Image[0].Bounds())
	}
	for i, frame := range g.Image {
		drawOver(canvas, frame)
		frames[i] = cloneRGBA(canvas)

		// GIF delays are in 1/100 s
		delays[i] = defaultFrameTicks
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delays[i] = max(1, g.Delay[i]*constants.TicksPerSecond/100)
		}
	}
	return newImage(name, frames, delays), nil
}

func newImage(name string, frames []image.Image, delays []int) *Image {
	img := &Image{
		Name:   name,
		Frames: frames,
		Delays: delays,
		cache:  make(map[cellKey]*Cells),
	}
	for _, d := range delays {
		img.period += d
	}
	return img
}

// Animated reports whether the image has more than one frame
func (img *Image) Animated() bool {
	return len(img.Frames) > 1
}

// FrameAt returns the frame index shown at the given tick, looping forever
func (img *Image) FrameAt(tick int64) int {
	if !img.Animated() || img.period <= 0 {
		return 0
	}
	t := int(tick % int64(img.period))
	if t < 0 {
		t += img.period
	}
	for i, d := range img.Delays {
		if t < d {
			return i
		}
		t -= d
	}
	return len(img.Frames) - 1
}

// Cells returns the frame converted to w x h cells, memoized per size.
// Mirrored flips the frame horizontally before conversion.
func (img *Image) Cells(frame, w, h int, mirrored bool) *Cells {
	if frame < 0 || frame >= len(img.Frames) {
		frame = 0
	}
	key := cellKey{frame, w, h, mirrored}
	if c, ok := img.cache[key]; ok {
		return c
	}
	src := img.Frames[frame]
	if mirrored {
		src = mirror(src)
	}
	c := Convert(src, w, h)
	img.cache[key] = c
	return c
}

// DecodeBytes is Decode over an in-memory buffer
func DecodeBytes(name string, data []byte) (*Image, error) {
	return Decode(name, bytes.NewReader(data))
}
