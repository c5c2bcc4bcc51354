// Package anim applies the transformation pipeline to multi-frame image
// containers. Every frame goes through the same orchestrator the static
// path uses; only the packaging differs.
package anim

import (
	"bytes"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"

	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/imgerr"
	"github.com/AnyUserName/pixkit/internal/transform"
)

// DefaultDelay is the frame delay in milliseconds used when the source
// container does not dictate one and no override is given.
const DefaultDelay = 100

// Sequence is an ordered list of transformed frames plus a single
// playback delay in milliseconds. All frames share the post-transform
// size; the frame count is fixed by the source container.
type Sequence struct {
	Frames []*image.NRGBA
	Delay  int
}

// Process applies cfg to every frame of g in order. GIF frames are
// accumulated onto a full-size canvas first (frames may be partial
// updates), honoring per-frame disposal, so each transformed frame is a
// complete image. The first failing frame aborts the whole run wrapped
// in ErrFrameProcessing; no partial sequence is returned.
func Process(g *gif.GIF, cfg transform.Config, delayOverride int) (*Sequence, error) {
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("%w: container has no frames", imgerr.ErrFrameProcessing)
	}

	// The logical screen can exceed the first frame when frames are
	// partial updates; fall back to the first frame only when the
	// container does not declare one.
	w, h := g.Config.Width, g.Config.Height
	if w <= 0 || h <= 0 {
		first := g.Image[0].Bounds()
		w, h = first.Dx(), first.Dy()
	}
	bounds := image.Rect(0, 0, w, h)
	canvas := image.NewRGBA(bounds)

	frames := make([]*image.NRGBA, 0, len(g.Image))
	for i, frame := range g.Image {
		previous := cloneRGBA(canvas)
		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)

		out, err := transform.Apply(codec.NormalizeNRGBA(canvas), cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: frame %d: %w", imgerr.ErrFrameProcessing, i, err)
		}
		frames = append(frames, out)

		if i < len(g.Disposal) {
			switch g.Disposal[i] {
			case gif.DisposalBackground:
				canvas = image.NewRGBA(bounds)
			case gif.DisposalPrevious:
				canvas = previous
			}
		}
	}

	return &Sequence{Frames: frames, Delay: resolveDelay(g, delayOverride)}, nil
}

// ProcessBytes decodes raw container bytes and processes them. A
// single-frame container (or any non-GIF image) becomes a degenerate
// one-element sequence.
func ProcessBytes(data []byte, cfg transform.Config, delayOverride int) (*Sequence, error) {
	if g, err := gif.DecodeAll(bytes.NewReader(data)); err == nil {
		return Process(g, cfg, delayOverride)
	}

	img, _, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}
	out, err := transform.Apply(img, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: frame 0: %w", imgerr.ErrFrameProcessing, err)
	}
	delay := delayOverride
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Sequence{Frames: []*image.NRGBA{out}, Delay: delay}, nil
}

// IsAnimated reports whether data is a genuinely multi-frame container.
func IsAnimated(data []byte) bool {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	return err == nil && len(g.Image) > 1
}

// EncodeGIF re-palettes a sequence and packages it back into GIF bytes.
func EncodeGIF(seq *Sequence) ([]byte, error) {
	if seq == nil || len(seq.Frames) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", imgerr.ErrInvalidParameter)
	}
	out := &gif.GIF{}
	// GIF delays are in 100ths of a second.
	delay := seq.Delay / 10
	if delay < 1 {
		delay = 1
	}
	for _, frame := range seq.Frames {
		pm := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pm, frame.Bounds(), frame, frame.Bounds().Min)
		out.Image = append(out.Image, pm)
		out.Delay = append(out.Delay, delay)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, out); err != nil {
		return nil, fmt.Errorf("encode gif: %w", err)
	}
	return buf.Bytes(), nil
}

// resolveDelay prefers the override, then the container's first frame
// delay, then the default.
func resolveDelay(g *gif.GIF, override int) int {
	if override > 0 {
		return override
	}
	if len(g.Delay) > 0 && g.Delay[0] > 0 {
		return g.Delay[0] * 10 // 100ths of a second to ms
	}
	return DefaultDelay
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
