package sample

import (
	"image"
	"image/color"
	"math"
)

// ShapeKind enumerates the geometric shapes the generator can draw.
type ShapeKind string

const (
	ShapeCircle   ShapeKind = "circle"
	ShapeSquare   ShapeKind = "square"
	ShapeTriangle ShapeKind = "triangle"
	ShapeRing     ShapeKind = "ring"
)

// Shape draws a single geometric shape in the theme's primary color on
// a transparent canvas. Outline shapes use a stroke of size/16 pixels.
func Shape(kind ShapeKind, size int, pal Palette, filled bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	col := toNRGBA(pal.Primary)
	stroke := float64(size) / 16
	if stroke < 1 {
		stroke = 1
	}
	center := float64(size) / 2
	radius := center - 1

	switch kind {
	case ShapeSquare:
		inset := size / 8
		if filled {
			fillRect(img, inset, inset, size-inset, size-inset, col)
		} else {
			strokeRect(img, inset, inset, size-inset, size-inset, int(stroke), col)
		}
	case ShapeTriangle:
		fillTriangle(img, size, col, filled, int(stroke))
	case ShapeRing:
		drawRing(img, center, center, radius, stroke*1.5, col)
	default: // circle
		if filled {
			drawDisc(img, center, center, radius, col)
		} else {
			drawRing(img, center, center, radius, stroke, col)
		}
	}
	return img
}

// PatternKind enumerates the tileable patterns.
type PatternKind string

const (
	PatternChecker PatternKind = "checker"
	PatternStripes PatternKind = "stripes"
	PatternDots    PatternKind = "dots"
)

// Pattern fills a size x size tile with a repeating pattern in the
// theme's surface and primary colors. The tile edges line up, so the
// output tiles seamlessly.
func Pattern(kind PatternKind, size int, pal Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	bg := toNRGBA(pal.Surface)
	fg := toNRGBA(pal.Primary)
	cell := size / 8
	if cell < 1 {
		cell = 1
	}

	fillRect(img, 0, 0, size, size, bg)
	switch kind {
	case PatternStripes:
		for y := 0; y < size; y++ {
			if (y/cell)%2 == 0 {
				for x := 0; x < size; x++ {
					img.SetNRGBA(x, y, fg)
				}
			}
		}
	case PatternDots:
		r := float64(cell) / 3
		for cy := cell / 2; cy < size; cy += cell * 2 {
			for cx := cell / 2; cx < size; cx += cell * 2 {
				drawDisc(img, float64(cx), float64(cy), r, fg)
			}
		}
	default: // checker
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if (x/cell+y/cell)%2 == 0 {
					img.SetNRGBA(x, y, fg)
				}
			}
		}
	}
	return img
}

// drawDisc draws an anti-aliased filled circle. Coverage at the rim
// feathers over one pixel, following the usual half-pixel sampling.
func drawDisc(img *image.NRGBA, cx, cy, radius float64, col color.NRGBA) {
	blendCircle(img, cx, cy, radius, col, func(dist float64) float64 {
		switch {
		case dist <= radius-0.5:
			return 1
		case dist <= radius+0.5:
			return radius + 0.5 - dist
		default:
			return 0
		}
	})
}

// drawRing draws an anti-aliased circle outline of the given stroke
// width centered on the radius.
func drawRing(img *image.NRGBA, cx, cy, radius, stroke float64, col color.NRGBA) {
	half := stroke / 2
	blendCircle(img, cx, cy, radius+half, col, func(dist float64) float64 {
		d := math.Abs(dist - radius)
		switch {
		case d <= half-0.5:
			return 1
		case d <= half+0.5:
			return half + 0.5 - d
		default:
			return 0
		}
	})
}

// blendCircle walks the bounding box of a circle and composites col at
// the coverage returned by cov(distance-from-center).
func blendCircle(img *image.NRGBA, cx, cy, reach float64, col color.NRGBA, cov func(float64) float64) {
	bounds := img.Bounds()
	x0 := clampInt(int(cx-reach-1), bounds.Min.X, bounds.Max.X)
	x1 := clampInt(int(cx+reach+2), bounds.Min.X, bounds.Max.X)
	y0 := clampInt(int(cy-reach-1), bounds.Min.Y, bounds.Max.Y)
	y1 := clampInt(int(cy+reach+2), bounds.Min.Y, bounds.Max.Y)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			c := cov(math.Sqrt(dx*dx + dy*dy))
			if c > 0 {
				blendPixel(img, x, y, col, c)
			}
		}
	}
}

// blendPixel source-over composites col at coverage onto (x, y).
func blendPixel(img *image.NRGBA, x, y int, col color.NRGBA, coverage float64) {
	if coverage >= 1 && col.A == 255 {
		img.SetNRGBA(x, y, col)
		return
	}
	sa := float64(col.A) / 255 * coverage
	dst := img.NRGBAAt(x, y)
	da := float64(dst.A) / 255
	outA := sa + da*(1-sa)
	if outA == 0 {
		img.SetNRGBA(x, y, color.NRGBA{})
		return
	}
	blend := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / outA
		return uint8(v + 0.5)
	}
	img.SetNRGBA(x, y, color.NRGBA{
		R: blend(col.R, dst.R),
		G: blend(col.G, dst.G),
		B: blend(col.B, dst.B),
		A: uint8(outA*255 + 0.5),
	})
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, col color.NRGBA) {
	bounds := img.Bounds()
	x0 = clampInt(x0, bounds.Min.X, bounds.Max.X)
	x1 = clampInt(x1, bounds.Min.X, bounds.Max.X)
	y0 = clampInt(y0, bounds.Min.Y, bounds.Max.Y)
	y1 = clampInt(y1, bounds.Min.Y, bounds.Max.Y)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, col)
		}
	}
}

func strokeRect(img *image.NRGBA, x0, y0, x1, y1, stroke int, col color.NRGBA) {
	fillRect(img, x0, y0, x1, y0+stroke, col)
	fillRect(img, x0, y1-stroke, x1, y1, col)
	fillRect(img, x0, y0, x0+stroke, y1, col)
	fillRect(img, x1-stroke, y0, x1, y1, col)
}

// fillTriangle draws an upward-pointing isoceles triangle by scanline.
func fillTriangle(img *image.NRGBA, size int, col color.NRGBA, filled bool, stroke int) {
	top := size / 8
	bottom := size - size/8
	height := bottom - top
	half := float64(size)/2 - float64(size)/8
	for y := top; y < bottom; y++ {
		t := float64(y-top) / float64(height)
		w := half * t
		x0 := int(float64(size)/2 - w)
		x1 := int(float64(size)/2 + w)
		if filled {
			fillRect(img, x0, y, x1+1, y+1, col)
		} else {
			edge := stroke
			fillRect(img, x0, y, x0+edge, y+1, col)
			fillRect(img, x1-edge+1, y, x1+1, y+1, col)
			if y >= bottom-stroke {
				fillRect(img, x0, y, x1+1, y+1, col)
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
