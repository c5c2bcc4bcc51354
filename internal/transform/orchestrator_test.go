package transform

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnyUserName/pixkit/internal/imgerr"
)

func TestApply_NoopConfigCopiesInput(t *testing.T) {
	src := gradientNRGBA(32, 32)

	out, err := Apply(src, NewConfig())
	require.NoError(t, err)
	assert.True(t, bytes.Equal(src.Pix, out.Pix))
	assert.NotSame(t, src, out, "no-op must still return a fresh copy")
}

func TestApply_ZeroConfigEqualsNewConfig(t *testing.T) {
	src := gradientNRGBA(32, 32)

	fromZero, err := Apply(src, Config{})
	require.NoError(t, err)
	fromNew, err := Apply(src, NewConfig())
	require.NoError(t, err)
	assert.True(t, bytes.Equal(fromZero.Pix, fromNew.Pix))
}

// An explicit factor of 0 is in-domain and must run the stage, not be
// mistaken for "unset".
func TestApply_ExplicitZeroFactorsHonored(t *testing.T) {
	src := gradientNRGBA(24, 24)

	viaApply, err := Apply(src, Config{Saturation: Factor(0)})
	require.NoError(t, err)
	direct, err := AdjustSaturation(src, 0)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(direct.Pix, viaApply.Pix),
		"Apply with Saturation 0 must equal AdjustSaturation(img, 0)")
	assert.False(t, bytes.Equal(src.Pix, viaApply.Pix),
		"saturation 0 must actually change a colored image")

	darkened, err := Apply(src, Config{Transparency: Factor(0)})
	require.NoError(t, err)
	px := darkened.NRGBAAt(12, 12)
	assert.Equal(t, uint8(0), px.R)
	assert.Equal(t, uint8(0), px.G)
	assert.Equal(t, uint8(0), px.B)

	black, err := Apply(src, Config{Brightness: Factor(0)})
	require.NoError(t, err)
	assert.Equal(t, uint8(0), black.NRGBAAt(5, 5).R)
}

func TestApply_Deterministic(t *testing.T) {
	src := gradientNRGBA(64, 64)
	cfg := Config{
		Grayscale:     true,
		Rotate:        30,
		Width:         40,
		Height:        40,
		Contrast:      Factor(1.2),
		Saturation:    Factor(0.5),
		BlurRadius:    1.5,
		TintColor:     &color.NRGBA{0, 80, 160, 255},
		TintIntensity: 0.3,
	}

	a, err := Apply(src, cfg)
	require.NoError(t, err)
	b, err := Apply(src, cfg)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a.Pix, b.Pix), "same input and config must yield identical bytes")
}

// Resize runs after rotate, so the expanded rotated canvas still lands
// on the requested target size.
func TestApply_ResizeAfterRotate(t *testing.T) {
	src := solidNRGBA(100, 100, color.NRGBA{255, 0, 0, 255})
	cfg := Config{Rotate: 45, Width: 50, Height: 50}

	out, err := Apply(src, cfg)
	require.NoError(t, err)
	assert.Equal(t, 50, out.Bounds().Dx())
	assert.Equal(t, 50, out.Bounds().Dy())
}

func TestApply_GrayscaleBeforeTint(t *testing.T) {
	src := solidNRGBA(16, 16, color.NRGBA{255, 0, 0, 255})
	cfg := Config{
		Grayscale:     true,
		TintColor:     &color.NRGBA{0, 0, 255, 255},
		TintIntensity: 1.0,
	}

	out, err := Apply(src, cfg)
	require.NoError(t, err)
	// Full-intensity tint wins regardless of the grayscale base.
	px := out.NRGBAAt(8, 8)
	assert.InDelta(t, 255, int(px.B), 1)
	assert.InDelta(t, 0, int(px.R), 1)
}

func TestApply_PropagatesStageErrors(t *testing.T) {
	src := solidNRGBA(8, 8, color.NRGBA{10, 20, 30, 255})

	_, err := Apply(src, Config{Contrast: Factor(-2)})
	assert.ErrorIs(t, err, imgerr.ErrInvalidParameter)

	_, err = Apply(src, Config{Transparency: Factor(1.5)})
	assert.ErrorIs(t, err, imgerr.ErrInvalidParameter)

	_, err = Apply(src, Config{TintColor: &color.NRGBA{255, 0, 0, 255}, TintIntensity: 2})
	assert.ErrorIs(t, err, imgerr.ErrInvalidParameter)

	_, err = Apply(src, Config{Format: "nosuch"})
	assert.ErrorIs(t, err, imgerr.ErrInvalidParameter)
}

func TestApply_WidthWithoutHeightSkipsResize(t *testing.T) {
	src := gradientNRGBA(30, 20)

	out, err := Apply(src, Config{Width: 10})
	require.NoError(t, err)
	assert.Equal(t, 30, out.Bounds().Dx())
	assert.Equal(t, 20, out.Bounds().Dy())
}

func TestIsNoop(t *testing.T) {
	assert.True(t, NewConfig().IsNoop())
	assert.True(t, Config{}.IsNoop())
	assert.True(t, Config{Saturation: Factor(1), Brightness: Factor(1)}.IsNoop(),
		"explicit identity factors are inert")
	assert.True(t, Config{TintColor: &color.NRGBA{255, 0, 0, 255}}.IsNoop(),
		"tint color without intensity is inert")

	assert.False(t, Config{Grayscale: true}.IsNoop())
	assert.False(t, Config{Saturation: Factor(0)}.IsNoop(),
		"explicit saturation 0 is a real stage")
	assert.False(t, Config{Transparency: Factor(0)}.IsNoop())
	assert.False(t, Config{BlurRadius: 2}.IsNoop())
	assert.False(t, Config{Format: "png"}.IsNoop())
}

func TestPreset(t *testing.T) {
	cfg, ok := Preset("icon")
	require.True(t, ok)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
	assert.True(t, cfg.PreserveAspect)

	cfg, ok = Preset("disabled")
	require.True(t, ok)
	assert.True(t, cfg.Grayscale)
	require.NotNil(t, cfg.Transparency)
	assert.Equal(t, 0.5, *cfg.Transparency)

	cfg, ok = Preset("identity")
	require.True(t, ok)
	assert.True(t, cfg.IsNoop())

	_, ok = Preset("nosuch")
	assert.False(t, ok)
}

func TestPresetNames_Complete(t *testing.T) {
	names := PresetNames()
	require.Len(t, names, len(presets))
	for _, name := range names {
		_, ok := Preset(name)
		assert.True(t, ok, "listed preset %q must resolve", name)
	}
}
