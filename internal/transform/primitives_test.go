package transform

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnyUserName/pixkit/internal/imgerr"
)

// solidNRGBA builds a w x h image filled with one color.
func solidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// gradientNRGBA builds an image with varying channels so resampling and
// color math have something to chew on.
func gradientNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func TestResize_Exact(t *testing.T) {
	out, err := Resize(gradientNRGBA(100, 50), 30, 40, false)
	require.NoError(t, err)
	assert.Equal(t, 30, out.Bounds().Dx())
	assert.Equal(t, 40, out.Bounds().Dy())
}

func TestResize_PreserveAspect(t *testing.T) {
	out, err := Resize(gradientNRGBA(100, 50), 50, 50, true)
	require.NoError(t, err)
	assert.Equal(t, 50, out.Bounds().Dx())
	assert.Equal(t, 25, out.Bounds().Dy())
}

func TestResize_InvalidTarget(t *testing.T) {
	_, err := Resize(gradientNRGBA(10, 10), 0, 10, false)
	require.ErrorIs(t, err, imgerr.ErrInvalidParameter)
}

func TestResize_DoesNotMutateInput(t *testing.T) {
	src := gradientNRGBA(40, 40)
	before := append([]byte(nil), src.Pix...)
	_, err := Resize(src, 10, 10, false)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(before, src.Pix), "input pixels changed")
}

func TestGrayscale_EqualChannels(t *testing.T) {
	out := Grayscale(gradientNRGBA(16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			px := out.NRGBAAt(x, y)
			assert.Equal(t, px.R, px.G)
			assert.Equal(t, px.G, px.B)
		}
	}
}

func TestGrayscale_PreservesAlpha(t *testing.T) {
	src := solidNRGBA(8, 8, color.NRGBA{200, 50, 50, 120})
	out := Grayscale(src)
	assert.Equal(t, uint8(120), out.NRGBAAt(4, 4).A)
}

func TestRotate_ExpandGrowsCanvas(t *testing.T) {
	out := Rotate(solidNRGBA(100, 100, color.NRGBA{255, 0, 0, 255}), 45, true)
	assert.Greater(t, out.Bounds().Dx(), 100)
	assert.Greater(t, out.Bounds().Dy(), 100)
}

func TestRotate_NoExpandKeepsSize(t *testing.T) {
	out := Rotate(solidNRGBA(60, 40, color.NRGBA{255, 0, 0, 255}), 45, false)
	assert.Equal(t, 60, out.Bounds().Dx())
	assert.Equal(t, 40, out.Bounds().Dy())
}

func TestAdjustTransparency_DarkensRGB(t *testing.T) {
	src := solidNRGBA(4, 4, color.NRGBA{200, 100, 50, 255})
	out, err := AdjustTransparency(src, 0.5)
	require.NoError(t, err)
	px := out.NRGBAAt(2, 2)
	assert.InDelta(t, 100, int(px.R), 1)
	assert.InDelta(t, 50, int(px.G), 1)
	assert.InDelta(t, 25, int(px.B), 1)
	// The alpha channel is a proxy target, not actually scaled.
	assert.Equal(t, uint8(255), px.A)
}

func TestAdjustTransparency_OutOfRange(t *testing.T) {
	src := solidNRGBA(2, 2, color.NRGBA{1, 2, 3, 255})
	for _, bad := range []float64{-0.1, 1.5} {
		_, err := AdjustTransparency(src, bad)
		assert.ErrorIs(t, err, imgerr.ErrInvalidParameter, "alpha=%v", bad)
	}
}

func TestFadeAlpha_ScalesAlphaOnly(t *testing.T) {
	src := solidNRGBA(4, 4, color.NRGBA{200, 100, 50, 200})
	out, err := FadeAlpha(src, 0.5)
	require.NoError(t, err)
	px := out.NRGBAAt(1, 1)
	assert.Equal(t, uint8(200), px.R)
	assert.Equal(t, uint8(100), px.A)
}

func TestFactorValidation(t *testing.T) {
	src := solidNRGBA(4, 4, color.NRGBA{10, 20, 30, 255})

	_, err := AdjustContrast(src, -1.0)
	assert.ErrorIs(t, err, imgerr.ErrInvalidParameter)
	_, err = AdjustSaturation(src, -1.0)
	assert.ErrorIs(t, err, imgerr.ErrInvalidParameter)
	_, err = AdjustBrightness(src, -0.5)
	assert.ErrorIs(t, err, imgerr.ErrInvalidParameter)
	_, err = AdjustSharpness(src, -2)
	assert.ErrorIs(t, err, imgerr.ErrInvalidParameter)
	_, err = Blur(src, -1)
	assert.ErrorIs(t, err, imgerr.ErrInvalidParameter)
}

func TestIdentityFactors(t *testing.T) {
	src := gradientNRGBA(20, 20)
	for name, fn := range map[string]func(image.Image, float64) (*image.NRGBA, error){
		"contrast":   AdjustContrast,
		"saturation": AdjustSaturation,
		"brightness": AdjustBrightness,
		"sharpness":  AdjustSharpness,
	} {
		out, err := fn(src, 1.0)
		require.NoError(t, err, name)
		assert.True(t, bytes.Equal(src.Pix, out.Pix), "%s at factor 1 changed pixels", name)
	}
}

func TestAdjustBrightness_Doubles(t *testing.T) {
	src := solidNRGBA(4, 4, color.NRGBA{60, 60, 60, 255})
	out, err := AdjustBrightness(src, 2.0)
	require.NoError(t, err)
	assert.InDelta(t, 120, int(out.NRGBAAt(0, 0).R), 1)
}

func TestAdjustSaturation_ZeroEqualsGray(t *testing.T) {
	src := gradientNRGBA(8, 8)
	out, err := AdjustSaturation(src, 0)
	require.NoError(t, err)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			px := out.NRGBAAt(x, y)
			assert.Equal(t, px.R, px.G)
			assert.Equal(t, px.G, px.B)
		}
	}
}

func TestBlur_ZeroIsByteIdenticalNoop(t *testing.T) {
	src := gradientNRGBA(24, 24)
	out, err := Blur(src, 0)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(src.Pix, out.Pix))
	// Fresh copy, not an alias.
	assert.NotSame(t, &src.Pix[0], &out.Pix[0])
}

func TestTint_ZeroIntensityIsByteIdenticalNoop(t *testing.T) {
	src := gradientNRGBA(24, 24)
	out, err := Tint(src, color.NRGBA{255, 0, 0, 255}, 0)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(src.Pix, out.Pix))
}

func TestTint_FullIntensityReplacesColor(t *testing.T) {
	src := solidNRGBA(4, 4, color.NRGBA{10, 200, 30, 255})
	out, err := Tint(src, color.NRGBA{0, 0, 255, 255}, 1.0)
	require.NoError(t, err)
	px := out.NRGBAAt(2, 2)
	assert.InDelta(t, 0, int(px.R), 1)
	assert.InDelta(t, 0, int(px.G), 1)
	assert.InDelta(t, 255, int(px.B), 1)
}

// Translucent pixels blend on their stored channel values; alpha is
// carried through untouched.
func TestTint_TranslucentPixelsKeepHueMix(t *testing.T) {
	src := solidNRGBA(4, 4, color.NRGBA{200, 0, 0, 128})
	out, err := Tint(src, color.NRGBA{0, 0, 255, 255}, 0.5)
	require.NoError(t, err)
	px := out.NRGBAAt(1, 1)
	assert.InDelta(t, 100, int(px.R), 1)
	assert.InDelta(t, 128, int(px.B), 1)
	assert.Equal(t, uint8(128), px.A)
}

func TestTint_OutOfRange(t *testing.T) {
	src := solidNRGBA(2, 2, color.NRGBA{1, 2, 3, 255})
	for _, bad := range []float64{1.5, -0.1} {
		_, err := Tint(src, color.NRGBA{255, 0, 0, 255}, bad)
		assert.ErrorIs(t, err, imgerr.ErrInvalidParameter, "intensity=%v", bad)
	}
}

func TestConvertFormat_JPEGFlattensAlpha(t *testing.T) {
	src := solidNRGBA(8, 8, color.NRGBA{255, 0, 0, 0})
	out, err := ConvertFormat(src, "jpeg")
	require.NoError(t, err)
	// Transparent red over white must come out light, not black.
	px := out.NRGBAAt(4, 4)
	assert.Greater(t, int(px.G), 200)
	assert.Equal(t, uint8(255), px.A)
}

func TestAddBorder(t *testing.T) {
	src := solidNRGBA(10, 10, color.NRGBA{0, 255, 0, 255})
	out, err := AddBorder(src, 5, color.NRGBA{0, 0, 0, 255})
	require.NoError(t, err)
	assert.Equal(t, 20, out.Bounds().Dx())
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, out.NRGBAAt(2, 2))
	assert.Equal(t, color.NRGBA{0, 255, 0, 255}, out.NRGBAAt(10, 10))

	_, err = AddBorder(src, -1, color.NRGBA{})
	assert.ErrorIs(t, err, imgerr.ErrInvalidParameter)
}
