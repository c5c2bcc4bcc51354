package sample

import (
	"image"
	"image/color"
)

// ButtonStyle enumerates the button mockup styles.
type ButtonStyle string

const (
	ButtonFlat    ButtonStyle = "flat"
	ButtonRaised  ButtonStyle = "raised"
	ButtonRounded ButtonStyle = "rounded"
)

// Button draws a width x height button mockup in the theme's primary
// color on a transparent canvas. Raised buttons get a highlight on top
// and a shadow edge below; rounded buttons use a pill radius.
func Button(style ButtonStyle, width, height int, pal Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	base := toNRGBA(pal.Primary)

	radius := height / 6
	if style == ButtonRounded {
		radius = height / 2
	}
	fillRoundedRect(img, 0, 0, width, height, radius, base)

	if style == ButtonRaised {
		highlight := shade(base, 1.25)
		shadow := shade(base, 0.65)
		edge := height / 8
		if edge < 1 {
			edge = 1
		}
		// Top highlight and bottom shadow inside the rounded outline.
		for y := 0; y < edge; y++ {
			for x := 0; x < width; x++ {
				if img.NRGBAAt(x, y).A > 0 {
					img.SetNRGBA(x, y, highlight)
				}
			}
		}
		for y := height - edge; y < height; y++ {
			for x := 0; x < width; x++ {
				if img.NRGBAAt(x, y).A > 0 {
					img.SetNRGBA(x, y, shadow)
				}
			}
		}
	}
	return img
}

// fillRoundedRect fills a rectangle whose corners are rounded with the
// given radius, anti-aliasing the corner arcs.
func fillRoundedRect(img *image.NRGBA, x0, y0, x1, y1, radius int, col color.NRGBA) {
	if radius <= 0 {
		fillRect(img, x0, y0, x1, y1, col)
		return
	}
	r := float64(radius)
	// Center body and side slabs are plain rects.
	fillRect(img, x0+radius, y0, x1-radius, y1, col)
	fillRect(img, x0, y0+radius, x0+radius, y1-radius, col)
	fillRect(img, x1-radius, y0+radius, x1, y1-radius, col)
	// Four corner discs.
	drawDisc(img, float64(x0+radius), float64(y0+radius), r, col)
	drawDisc(img, float64(x1-radius)-0.0, float64(y0+radius), r, col)
	drawDisc(img, float64(x0+radius), float64(y1-radius), r, col)
	drawDisc(img, float64(x1-radius), float64(y1-radius), r, col)
}

// shade multiplies the RGB channels of col by f, clamping to 255.
func shade(col color.NRGBA, f float64) color.NRGBA {
	mul := func(v uint8) uint8 {
		out := float64(v) * f
		if out > 255 {
			return 255
		}
		return uint8(out + 0.5)
	}
	return color.NRGBA{R: mul(col.R), G: mul(col.G), B: mul(col.B), A: col.A}
}
