package transform

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Config is the sparse parameter set consumed by Apply. Factor fields
// are pointers so an unset stage (nil) is distinguishable from an
// explicit 0: saturation 0 means grayscale and transparency 0 means
// fully darkened, and both must survive the trip through Apply. The
// zero value of every field leaves that stage out.
type Config struct {
	Grayscale      bool
	Rotate         float64  // degrees clockwise; 0 = no-op
	Transparency   *float64 // [0,1]; nil = leave as is
	Width, Height  int      // 0,0 = no resize
	PreserveAspect bool
	Contrast       *float64 // >= 0; nil = leave as is, 0 = uniform gray
	Saturation     *float64 // >= 0; nil = leave as is, 0 = grayscale
	Brightness     *float64 // >= 0; nil = leave as is, 0 = black
	Sharpness      *float64 // >= 0; nil = leave as is
	BlurRadius     float64  // >= 0; 0 = no-op
	TintColor      *color.NRGBA
	TintIntensity  float64 // [0,1]; 0 = no-op
	Format         string  // "" = keep encoding
}

// Factor wraps an explicit factor value for a Config field.
func Factor(v float64) *float64 { return &v }

// NewConfig returns a Config where every stage is unset.
func NewConfig() Config {
	return Config{}
}

// IsNoop reports whether Apply would leave the image untouched. A set
// factor at its identity value (1) counts as untouched.
func (c Config) IsNoop() bool {
	identity := func(p *float64) bool { return p == nil || *p == 1 }
	return !c.Grayscale && c.Rotate == 0 && identity(c.Transparency) &&
		c.Width == 0 && c.Height == 0 &&
		identity(c.Contrast) && identity(c.Saturation) && identity(c.Brightness) &&
		identity(c.Sharpness) && c.BlurRadius == 0 &&
		(c.TintColor == nil || c.TintIntensity == 0) &&
		c.Format == ""
}

// Apply runs the configured stages over img in the fixed pipeline order:
//
//	grayscale, rotate, transparency, resize, contrast, saturation,
//	brightness, sharpness, blur, tint, format conversion.
//
// The order is load-bearing: resize runs after rotate so an expanded
// rotated canvas still lands on the requested target size, and tint runs
// after the color adjustments so it blends into already-adjusted pixels.
// A stage runs only when its parameter is set to a non-identity value,
// so Apply(img, Config{}) returns an untouched copy. Output is
// byte-identical across callers given identical input and config.
func Apply(img image.Image, cfg Config) (*image.NRGBA, error) {
	out := image.Image(img)
	var err error

	if cfg.Grayscale {
		out = Grayscale(out)
	}
	if cfg.Rotate != 0 {
		out = Rotate(out, cfg.Rotate, true)
	}
	if set(cfg.Transparency) {
		if out, err = AdjustTransparency(out, *cfg.Transparency); err != nil {
			return nil, err
		}
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		if out, err = Resize(out, cfg.Width, cfg.Height, cfg.PreserveAspect); err != nil {
			return nil, err
		}
	}
	if set(cfg.Contrast) {
		if out, err = AdjustContrast(out, *cfg.Contrast); err != nil {
			return nil, err
		}
	}
	if set(cfg.Saturation) {
		if out, err = AdjustSaturation(out, *cfg.Saturation); err != nil {
			return nil, err
		}
	}
	if set(cfg.Brightness) {
		if out, err = AdjustBrightness(out, *cfg.Brightness); err != nil {
			return nil, err
		}
	}
	if set(cfg.Sharpness) {
		if out, err = AdjustSharpness(out, *cfg.Sharpness); err != nil {
			return nil, err
		}
	}
	if cfg.BlurRadius != 0 {
		if out, err = Blur(out, cfg.BlurRadius); err != nil {
			return nil, err
		}
	}
	if cfg.TintColor != nil && cfg.TintIntensity != 0 {
		if out, err = Tint(out, *cfg.TintColor, cfg.TintIntensity); err != nil {
			return nil, err
		}
	}
	if cfg.Format != "" {
		if out, err = ConvertFormat(out, cfg.Format); err != nil {
			return nil, err
		}
	}

	if nrgba, ok := out.(*image.NRGBA); ok && nrgba != img {
		return nrgba, nil
	}
	return imaging.Clone(out), nil
}

// set reports whether a factor was given a non-identity value. Value 1
// is the mathematical identity for every factor stage, so skipping it
// is an optimization, not a coercion.
func set(p *float64) bool {
	return p != nil && *p != 1
}
