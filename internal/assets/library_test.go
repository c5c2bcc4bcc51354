package assets

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/imgerr"
	"github.com/AnyUserName/pixkit/internal/transform"
)

func pngAsset(t *testing.T, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	payload, err := codec.EncodeBase64(img, "png")
	require.NoError(t, err)
	return payload
}

func gifAsset(t *testing.T, frames int) string {
	t.Helper()
	g := &gif.GIF{}
	for i := 0; i < frames; i++ {
		pm := image.NewPaletted(image.Rect(0, 0, 8, 8), palette.Plan9)
		idx := uint8(pm.Palette.Index(color.NRGBA{uint8(i * 60), 0, 128, 255}))
		for p := range pm.Pix {
			pm.Pix[p] = idx
		}
		g.Image = append(g.Image, pm)
		g.Delay = append(g.Delay, 6)
	}
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func testLibrary(t *testing.T) *Library {
	return NewLibrary(map[string]map[string]string{
		"default": {
			"icon.png": pngAsset(t, color.NRGBA{255, 0, 0, 255}),
			"only.png": pngAsset(t, color.NRGBA{0, 255, 0, 255}),
			"spin.gif": gifAsset(t, 3),
		},
		"dark": {
			"icon.png": pngAsset(t, color.NRGBA{0, 0, 255, 255}),
		},
	})
}

func TestLookup_ThemeAndFallback(t *testing.T) {
	lib := testLibrary(t)

	darkData, err := lib.Lookup("icon.png", "dark")
	require.NoError(t, err)
	defaultData, err := lib.Lookup("icon.png", "default")
	require.NoError(t, err)
	assert.NotEqual(t, darkData, defaultData, "dark theme must shadow default")

	// Key missing from the requested theme falls back to default.
	fallback, err := lib.Lookup("only.png", "dark")
	require.NoError(t, err)
	viaDefault, err := lib.Lookup("only.png", "")
	require.NoError(t, err)
	assert.Equal(t, viaDefault, fallback)

	// Unknown theme behaves like an empty theme, not an error.
	viaUnknown, err := lib.Lookup("icon.png", "sepia")
	require.NoError(t, err)
	assert.Equal(t, defaultData, viaUnknown)
}

func TestLookup_Missing(t *testing.T) {
	lib := testLibrary(t)
	_, err := lib.Lookup("nope.png", "dark")
	assert.ErrorIs(t, err, imgerr.ErrAssetNotFound)

	_, err = Empty().Lookup("icon.png", "")
	assert.ErrorIs(t, err, imgerr.ErrAssetNotFound)
}

func TestLookup_CorruptBase64(t *testing.T) {
	lib := NewLibrary(map[string]map[string]string{
		"default": {"bad.png": "!!!not base64!!!"},
	})
	_, err := lib.Lookup("bad.png", "")
	assert.ErrorIs(t, err, imgerr.ErrDecode)
}

func TestLibraryShape(t *testing.T) {
	lib := testLibrary(t)
	assert.Equal(t, 4, lib.Len())
	assert.ElementsMatch(t, []string{"default", "dark"}, lib.Themes())

	assert.Equal(t, 0, Empty().Len())
	assert.NotNil(t, NewLibrary(nil))
}

func TestGetImage_Static(t *testing.T) {
	lib := testLibrary(t)
	cfg := transform.NewConfig()
	cfg.Width, cfg.Height = 4, 4

	h, err := lib.GetImage("icon.png", ImageOptions{Theme: "dark", Config: cfg})
	require.NoError(t, err)
	assert.False(t, h.IsAnimated())

	img, ok := h.Static.(*image.NRGBA)
	require.True(t, ok, "memory adapter must yield *image.NRGBA")
	assert.Equal(t, 4, img.Bounds().Dx())
	// Dark theme asset is blue.
	assert.Greater(t, int(img.NRGBAAt(2, 2).B), 200)
}

func TestGetImage_AnimatedBranch(t *testing.T) {
	lib := testLibrary(t)

	h, err := lib.GetImage("spin.gif", ImageOptions{Animated: true, FrameDelay: 150})
	require.NoError(t, err)
	require.True(t, h.IsAnimated())
	assert.Len(t, h.Frames, 3)
	assert.Equal(t, 150, h.Delay)
	_, ok := h.Frames[0].(*image.NRGBA)
	assert.True(t, ok)
}

// Animated opt-in on a single-frame source stays on the static branch.
func TestGetImage_AnimatedGating(t *testing.T) {
	lib := testLibrary(t)

	h, err := lib.GetImage("icon.png", ImageOptions{Animated: true})
	require.NoError(t, err)
	assert.False(t, h.IsAnimated())
	assert.NotNil(t, h.Static)
}

func TestGetImage_TransformErrorPropagates(t *testing.T) {
	lib := testLibrary(t)
	cfg := transform.Config{Saturation: transform.Factor(-1)}

	_, err := lib.GetImage("icon.png", ImageOptions{Config: cfg})
	assert.ErrorIs(t, err, imgerr.ErrInvalidParameter)
}

func TestGetImage_MissingAsset(t *testing.T) {
	_, err := testLibrary(t).GetImage("nope.png", ImageOptions{})
	assert.ErrorIs(t, err, imgerr.ErrAssetNotFound)
}

func TestAdapterRegistry(t *testing.T) {
	reg := NewAdapterRegistry()

	a, err := reg.Get("memory")
	require.NoError(t, err)
	assert.Equal(t, "memory", a.Name())

	_, err = reg.Get("holodeck")
	assert.ErrorIs(t, err, imgerr.ErrInvalidParameter)

	assert.Contains(t, reg.Names(), "memory")
}

func TestMemoryAdapter(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	out, err := MemoryAdapter{}.FromImage(src)
	require.NoError(t, err)
	img, ok := out.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, 3, img.Bounds().Dx())
}
