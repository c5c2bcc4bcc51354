package sample

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ThemeStops returns the stock gradient stops for a palette: primary
// through accent.
func ThemeStops(pal Palette) []colorful.Color {
	return []colorful.Color{pal.Primary, pal.Accent}
}

// LinearGradient renders a left-to-right gradient across the given
// stops, blended in Lab space for perceptually even transitions. With
// fewer than two stops the single color (or black) fills the canvas.
func LinearGradient(width, height int, stops []colorful.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		t := 0.0
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		col := toNRGBA(gradientAt(stops, t))
		for y := 0; y < height; y++ {
			img.SetNRGBA(x, y, col)
		}
	}
	return img
}

// RadialGradient renders a center-out gradient on a square canvas.
func RadialGradient(size int, stops []colorful.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	maxDist := center * math.Sqrt2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			t := math.Sqrt(dx*dx+dy*dy) / maxDist
			img.SetNRGBA(x, y, toNRGBA(gradientAt(stops, t)))
		}
	}
	return img
}

// gradientAt evaluates multi-stop Lab interpolation at t in [0,1].
func gradientAt(stops []colorful.Color, t float64) colorful.Color {
	switch len(stops) {
	case 0:
		return colorful.Color{}
	case 1:
		return stops[0]
	}
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}
	scaled := t * float64(len(stops)-1)
	idx := int(scaled)
	frac := scaled - float64(idx)
	return stops[idx].BlendLab(stops[idx+1], frac).Clamped()
}
