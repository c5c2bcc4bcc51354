package transform

import "image/color"

// presets is the static registration table of named transform bundles.
// It is a plain literal so registration order never depends on import
// side effects.
var presets = map[string]Config{
	"identity": {},
	"icon": {
		Width: 32, Height: 32, PreserveAspect: true,
	},
	"thumbnail": {
		Width: 128, Height: 128, PreserveAspect: true,
		Sharpness: Factor(1.2),
	},
	"disabled": {
		Grayscale:    true,
		Transparency: Factor(0.5),
	},
	"hero": {
		Contrast: Factor(1.1), Saturation: Factor(1.2), Brightness: Factor(1.05),
	},
	"muted": {
		Contrast: Factor(0.9), Saturation: Factor(0.6),
		TintColor:     &color.NRGBA{128, 128, 128, 255},
		TintIntensity: 0.15,
	},
}

// Preset returns the named transform bundle. Unknown names report ok
// false rather than falling back, so callers can surface typos.
func Preset(name string) (Config, bool) {
	cfg, ok := presets[name]
	return cfg, ok
}

// PresetNames lists the registered preset names in priority order.
func PresetNames() []string {
	return []string{"identity", "icon", "thumbnail", "disabled", "hero", "muted"}
}
