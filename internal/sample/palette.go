// Package sample generates deterministic demo and test imagery from
// theme color palettes: icons, shapes, patterns, gradients, button
// mockups and procedural animation frames. The generators use no
// randomness and no clock, so identical inputs always produce
// byte-identical pixels, which is what the golden tests rely on.
// PaletteFromImage with MethodKMeans is the one exception: cluster
// seeding is randomized inside the kmeans library.
package sample

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Palette is a fixed theme color set consumed uniformly by all
// generator functions.
type Palette struct {
	Primary    colorful.Color
	Accent     colorful.Color
	Background colorful.Color
	Surface    colorful.Color
	Text       colorful.Color
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("sample: bad palette hex " + s)
	}
	return c
}

// themePalettes is the built-in theme table.
var themePalettes = map[string]Palette{
	"default": {
		Primary:    mustHex("#3478f6"),
		Accent:     mustHex("#f6a934"),
		Background: mustHex("#f5f5f7"),
		Surface:    mustHex("#ffffff"),
		Text:       mustHex("#1c1c1e"),
	},
	"dark": {
		Primary:    mustHex("#5a96f8"),
		Accent:     mustHex("#f8b85a"),
		Background: mustHex("#1c1c1e"),
		Surface:    mustHex("#2c2c2e"),
		Text:       mustHex("#f5f5f7"),
	},
	"light": {
		Primary:    mustHex("#2d6ae0"),
		Accent:     mustHex("#e0922d"),
		Background: mustHex("#ffffff"),
		Surface:    mustHex("#f0f0f2"),
		Text:       mustHex("#2a2a2c"),
	},
	"ocean": {
		Primary:    mustHex("#0e7490"),
		Accent:     mustHex("#06b6d4"),
		Background: mustHex("#ecfeff"),
		Surface:    mustHex("#cffafe"),
		Text:       mustHex("#164e63"),
	},
	"forest": {
		Primary:    mustHex("#15803d"),
		Accent:     mustHex("#84cc16"),
		Background: mustHex("#f0fdf4"),
		Surface:    mustHex("#dcfce7"),
		Text:       mustHex("#14532d"),
	},
}

// ThemePalette returns the palette for a theme name, falling back to
// "default" for unknown names.
func ThemePalette(name string) Palette {
	if p, ok := themePalettes[name]; ok {
		return p
	}
	return themePalettes["default"]
}

// ThemeNames lists the built-in themes in stable order.
func ThemeNames() []string {
	return []string{"default", "dark", "light", "ocean", "forest"}
}

// PaletteMethod selects the extraction algorithm for PaletteFromImage.
type PaletteMethod int

const (
	MethodDominantColor PaletteMethod = iota
	MethodKMeans
)

// PaletteFromImage derives a theme palette from a reference image: the
// k most dominant colors, darkest first, mapped onto the palette slots
// (background, surface, primary, accent, text).
func PaletteFromImage(img image.Image, method PaletteMethod) Palette {
	colors := extractColors(img, 5, method)
	for len(colors) < 5 {
		colors = append(colors, themePalettes["default"].Primary)
	}
	sortByBrightness(colors)
	return Palette{
		Background: colors[0],
		Surface:    colors[1],
		Primary:    colors[2],
		Accent:     colors[3],
		Text:       colors[4],
	}
}

func extractColors(img image.Image, k int, method PaletteMethod) []colorful.Color {
	if method == MethodKMeans {
		if p := kmeansColors(img, k); len(p) > 0 {
			return p
		}
		// Fall through when kmeans finds nothing usable.
	}
	out := make([]colorful.Color, 0, k)
	for _, c := range dominantcolor.FindWeight(img, k) {
		col, _ := colorful.MakeColor(c.RGBA)
		out = append(out, col.Clamped())
	}
	return out
}

func kmeansColors(img image.Image, k int) []colorful.Color {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}

	// Subsample so clustering stays cheap on large images.
	const maxSamples = 8000
	step := 1
	if n := b.Dx() * b.Dy(); n > maxSamples {
		step = int(math.Sqrt(float64(n)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, maxSamples)
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r, g, bch, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r) / 65535.0,
				float64(g) / 65535.0,
				float64(bch) / 65535.0,
			})
		}
	}
	if len(dataset) < k {
		return nil
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil || len(cc) == 0 {
		return nil
	}

	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	out := make([]colorful.Color, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		out = append(out, colorful.Color{
			R: c.Center[0], G: c.Center[1], B: c.Center[2],
		}.Clamped())
	}
	return out
}

func sortByBrightness(palette []colorful.Color) {
	slices.SortFunc(palette, func(a, b colorful.Color) int {
		ri, gi, bi := a.LinearRgb()
		rj, gj, bj := b.LinearRgb()
		yi := 0.2126*ri + 0.7152*gi + 0.0722*bi
		yj := 0.2126*rj + 0.7152*gj + 0.0722*bj
		switch {
		case yi < yj:
			return -1
		case yi > yj:
			return 1
		default:
			return 0
		}
	})
}

// toNRGBA converts a palette color to an opaque NRGBA pixel value.
func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
