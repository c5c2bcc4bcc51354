// Package assets is the runtime side of embedded theme assets: lookup
// with default-theme fallback and the get-image pipeline entry point.
// The asset map is an explicit value passed in by the caller; there is
// no package-level fallback state.
package assets

import (
	"encoding/base64"
	"fmt"

	"github.com/AnyUserName/pixkit/internal/anim"
	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/imgerr"
	"github.com/AnyUserName/pixkit/internal/transform"
)

// DefaultTheme is the fallback theme consulted when a key is absent
// from the requested theme.
const DefaultTheme = "default"

// Library holds a theme -> key -> base64 asset map. It is built once
// (typically from a generated artifact's EmbeddedImages value) and read
// thereafter; absence of assets is an empty library, not a nil one.
type Library struct {
	themes map[string]map[string]string
}

// NewLibrary wraps a theme map. A nil map yields an empty library.
func NewLibrary(themes map[string]map[string]string) *Library {
	if themes == nil {
		themes = map[string]map[string]string{}
	}
	return &Library{themes: themes}
}

// Empty returns a library with no assets.
func Empty() *Library {
	return NewLibrary(nil)
}

// Lookup returns the raw bytes of the named asset, trying theme first
// and then the default theme. Missing from both is ErrAssetNotFound.
func (l *Library) Lookup(name, theme string) ([]byte, error) {
	if theme == "" {
		theme = DefaultTheme
	}
	payload, ok := l.themes[theme][name]
	if !ok {
		payload, ok = l.themes[DefaultTheme][name]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q in theme %q or %q", imgerr.ErrAssetNotFound, name, theme, DefaultTheme)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: asset %q: %v", imgerr.ErrDecode, name, err)
	}
	return data, nil
}

// Themes lists the theme names present in the library.
func (l *Library) Themes() []string {
	names := make([]string, 0, len(l.themes))
	for name := range l.themes {
		names = append(names, name)
	}
	return names
}

// Len returns the total asset count across themes.
func (l *Library) Len() int {
	n := 0
	for _, assets := range l.themes {
		n += len(assets)
	}
	return n
}

// ImageOptions parameterizes GetImage. The zero value requests the
// untransformed default-theme asset through the memory adapter.
type ImageOptions struct {
	Theme      string
	Config     transform.Config
	Animated   bool // animated branch runs only for genuinely multi-frame sources
	FrameDelay int  // ms; 0 = container delay or the 100ms default
	Adapter    Adapter
}

// Handle is the result of GetImage: either a single toolkit handle or
// an ordered frame list with a playback delay.
type Handle struct {
	Static any
	Frames []any
	Delay  int // ms, animated only
}

// IsAnimated reports whether the handle carries a frame sequence.
func (h Handle) IsAnimated() bool { return len(h.Frames) > 0 }

// GetImage looks the asset up, runs the transformation pipeline, and
// adapts the result for the caller's toolkit. The animated branch
// activates only when opts.Animated is set and the source container
// really has more than one frame; otherwise the static branch runs.
func (l *Library) GetImage(name string, opts ImageOptions) (Handle, error) {
	data, err := l.Lookup(name, opts.Theme)
	if err != nil {
		return Handle{}, err
	}

	adapter := opts.Adapter
	if adapter == nil {
		adapter = MemoryAdapter{}
	}

	if opts.Animated && anim.IsAnimated(data) {
		seq, err := anim.ProcessBytes(data, opts.Config, opts.FrameDelay)
		if err != nil {
			return Handle{}, err
		}
		frames := make([]any, 0, len(seq.Frames))
		for i, frame := range seq.Frames {
			h, err := adapter.FromImage(frame)
			if err != nil {
				return Handle{}, fmt.Errorf("adapt frame %d: %w", i, err)
			}
			frames = append(frames, h)
		}
		return Handle{Frames: frames, Delay: seq.Delay}, nil
	}

	img, _, err := codec.Decode(data)
	if err != nil {
		return Handle{}, fmt.Errorf("asset %q: %w", name, err)
	}
	out, err := transform.Apply(img, opts.Config)
	if err != nil {
		return Handle{}, fmt.Errorf("asset %q: %w", name, err)
	}
	h, err := adapter.FromImage(out)
	if err != nil {
		return Handle{}, fmt.Errorf("adapt asset %q: %w", name, err)
	}
	return Handle{Static: h}, nil
}
