// Package transform implements the pixkit image-transformation pipeline:
// pure primitives over in-memory rasters and the fixed-order orchestrator
// that composes them. No primitive mutates its input; every call returns
// a freshly allocated image, so a source image can be shared across
// sequential pipelines.
package transform

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/imgerr"
)

// Resize scales img to exactly (width, height) using Lanczos resampling.
// With preserveAspect the image is fit within the target box instead:
// the longer dimension is clamped and the other scaled proportionally,
// so both result dimensions are <= the requested ones.
func Resize(img image.Image, width, height int, preserveAspect bool) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: resize target %dx%d", imgerr.ErrInvalidParameter, width, height)
	}
	if preserveAspect {
		return imaging.Fit(img, width, height, imaging.Lanczos), nil
	}
	return imaging.Resize(img, width, height, imaging.Lanczos), nil
}

// Grayscale desaturates img so R, G and B are equal per pixel. The alpha
// channel is carried through unchanged.
func Grayscale(img image.Image) *image.NRGBA {
	return imaging.Grayscale(img)
}

// Rotate rotates img clockwise by degrees. With expand the output canvas
// grows to bound the rotated content; without it the output keeps the
// input size and corners may be clipped. Uncovered regions are
// transparent.
func Rotate(img image.Image, degrees float64, expand bool) *image.NRGBA {
	rotated := transform.Rotate(img, degrees, &transform.RotationOptions{
		ResizeBounds: expand,
	})
	return imaging.Clone(rotated)
}

// AdjustTransparency modulates overall pixel brightness as a proxy for
// opacity: RGB channels are scaled by alpha, the alpha channel itself is
// left untouched. Callers that need real alpha compositing use FadeAlpha.
func AdjustTransparency(img image.Image, alpha float64) (*image.NRGBA, error) {
	if alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: transparency %v outside [0,1]", imgerr.ErrInvalidParameter, alpha)
	}
	out := adjust.Apply(img, func(c color.RGBA) color.RGBA {
		c.R = scale8(c.R, alpha)
		c.G = scale8(c.G, alpha)
		c.B = scale8(c.B, alpha)
		return c
	})
	return imaging.Clone(out), nil
}

// FadeAlpha scales the alpha channel by alpha, leaving color intact.
func FadeAlpha(img image.Image, alpha float64) (*image.NRGBA, error) {
	if alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: alpha %v outside [0,1]", imgerr.ErrInvalidParameter, alpha)
	}
	src := codec.NormalizeNRGBA(img)
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = scale8(src.Pix[i], alpha)
	}
	return src, nil
}

// AdjustBrightness multiplies each color channel by factor. Factor must
// be >= 0; 1.0 is identity.
func AdjustBrightness(img image.Image, factor float64) (*image.NRGBA, error) {
	if err := checkFactor("brightness", factor); err != nil {
		return nil, err
	}
	out := adjust.Apply(img, func(c color.RGBA) color.RGBA {
		c.R = mul8(c.R, factor)
		c.G = mul8(c.G, factor)
		c.B = mul8(c.B, factor)
		return c
	})
	return imaging.Clone(out), nil
}

// AdjustContrast interpolates each pixel between the mean luminance of
// the image and its original value. Factor must be >= 0; 1.0 is
// identity, 0 yields a uniform gray image.
func AdjustContrast(img image.Image, factor float64) (*image.NRGBA, error) {
	if err := checkFactor("contrast", factor); err != nil {
		return nil, err
	}
	mean := meanLuminance(img)
	out := adjust.Apply(img, func(c color.RGBA) color.RGBA {
		c.R = lerp8(c.R, mean, factor)
		c.G = lerp8(c.G, mean, factor)
		c.B = lerp8(c.B, mean, factor)
		return c
	})
	return imaging.Clone(out), nil
}

// AdjustSaturation interpolates each pixel between its own gray value and
// its original value. Factor must be >= 0; 1.0 is identity, 0 equals
// grayscale.
func AdjustSaturation(img image.Image, factor float64) (*image.NRGBA, error) {
	if err := checkFactor("saturation", factor); err != nil {
		return nil, err
	}
	out := adjust.Apply(img, func(c color.RGBA) color.RGBA {
		gray := luminance8(c.R, c.G, c.B)
		c.R = lerp8(c.R, gray, factor)
		c.G = lerp8(c.G, gray, factor)
		c.B = lerp8(c.B, gray, factor)
		return c
	})
	return imaging.Clone(out), nil
}

// AdjustSharpness sharpens (factor > 1) or softens (factor < 1) the
// image. Factor must be >= 0; 1.0 is identity.
func AdjustSharpness(img image.Image, factor float64) (*image.NRGBA, error) {
	if err := checkFactor("sharpness", factor); err != nil {
		return nil, err
	}
	switch {
	case factor > 1:
		return imaging.Sharpen(img, factor-1), nil
	case factor < 1:
		return imaging.Blur(img, 1-factor), nil
	default:
		return imaging.Clone(img), nil
	}
}

// Blur applies a Gaussian blur of the given radius. Radius 0 is a no-op
// returning byte-identical content.
func Blur(img image.Image, radius float64) (*image.NRGBA, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: blur radius %v < 0", imgerr.ErrInvalidParameter, radius)
	}
	if radius == 0 {
		return imaging.Clone(img), nil
	}
	return imaging.Blur(img, radius), nil
}

// Tint alpha-blends a solid overlay of rgb into the image at blend
// factor intensity. Intensity 0 returns the image byte-identical;
// intensity 1 replaces color entirely while keeping the alpha channel.
// The blend runs on non-premultiplied channels so translucent pixels
// keep their hue mix.
func Tint(img image.Image, rgb color.NRGBA, intensity float64) (*image.NRGBA, error) {
	if intensity < 0 || intensity > 1 {
		return nil, fmt.Errorf("%w: tint intensity %v outside [0,1]", imgerr.ErrInvalidParameter, intensity)
	}
	out := codec.NormalizeNRGBA(img)
	if intensity == 0 {
		return out, nil
	}
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i+0] = lerp8(out.Pix[i+0], rgb.R, 1-intensity)
		out.Pix[i+1] = lerp8(out.Pix[i+1], rgb.G, 1-intensity)
		out.Pix[i+2] = lerp8(out.Pix[i+2], rgb.B, 1-intensity)
	}
	return out, nil
}

// ConvertFormat serializes img through the target encoding and decodes
// it back. Targets without alpha support flatten transparency onto
// opaque white during encode.
func ConvertFormat(img image.Image, format string) (*image.NRGBA, error) {
	data, err := codec.Encode(img, format, 0)
	if err != nil {
		return nil, err
	}
	decoded, _, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}
	return imaging.Clone(decoded), nil
}

// AddBorder surrounds img with a solid border of the given width. The
// source is composited over the border fill, so transparent sources keep
// their transparency inside the frame.
func AddBorder(img image.Image, width int, col color.NRGBA) (*image.NRGBA, error) {
	if width < 0 {
		return nil, fmt.Errorf("%w: border width %d < 0", imgerr.ErrInvalidParameter, width)
	}
	if width == 0 {
		return imaging.Clone(img), nil
	}
	bounds := img.Bounds()
	dst := imaging.New(bounds.Dx()+2*width, bounds.Dy()+2*width, col)
	draw.Draw(dst, image.Rect(width, width, width+bounds.Dx(), width+bounds.Dy()),
		img, bounds.Min, draw.Over)
	return dst, nil
}

func checkFactor(name string, factor float64) error {
	if factor < 0 {
		return fmt.Errorf("%w: %s factor %v < 0", imgerr.ErrInvalidParameter, name, factor)
	}
	return nil
}

// meanLuminance averages ITU-R 601 luminance over all pixels, 0-255.
func meanLuminance(img image.Image) uint8 {
	bounds := img.Bounds()
	count := uint64(bounds.Dx()) * uint64(bounds.Dy())
	if count == 0 {
		return 0
	}
	var sum uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sum += uint64(luminance8(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
		}
	}
	return uint8(sum / count)
}

func luminance8(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}

// scale8 multiplies v by f in [0,1].
func scale8(v uint8, f float64) uint8 {
	return uint8(float64(v)*f + 0.5)
}

// mul8 multiplies v by f >= 0, clamping to 255.
func mul8(v uint8, f float64) uint8 {
	return clamp8(float64(v)*f + 0.5)
}

// lerp8 interpolates from a toward b; t=1 yields a, t=0 yields b.
func lerp8(a, b uint8, t float64) uint8 {
	return clamp8(float64(b) + (float64(a)-float64(b))*t + 0.5)
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
