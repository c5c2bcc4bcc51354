package sample

import (
	"image"
	"math"
)

// IconKind enumerates the icon archetypes.
type IconKind string

const (
	IconHome     IconKind = "home"
	IconGear     IconKind = "gear"
	IconFolder   IconKind = "folder"
	IconDocument IconKind = "document"
	IconPlay     IconKind = "play"
	IconWarning  IconKind = "warning"
)

// IconKinds lists the archetypes in stable order.
func IconKinds() []IconKind {
	return []IconKind{IconHome, IconGear, IconFolder, IconDocument, IconPlay, IconWarning}
}

// Icon draws an icon archetype at size x size on a transparent canvas
// using the theme's primary and accent colors.
func Icon(kind IconKind, size int, pal Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	primary := toNRGBA(pal.Primary)
	accent := toNRGBA(pal.Accent)
	s := float64(size)

	switch kind {
	case IconGear:
		center := s / 2
		outer := s * 0.34
		// Eight teeth around the wheel.
		for i := 0; i < 8; i++ {
			angle := float64(i) * math.Pi / 4
			tx := center + math.Cos(angle)*outer
			ty := center + math.Sin(angle)*outer
			drawDisc(img, tx, ty, s*0.09, primary)
		}
		drawDisc(img, center, center, outer, primary)
		drawDisc(img, center, center, s*0.14, accent)
	case IconFolder:
		fillRect(img, size/8, size/4, size*7/8, size*3/4+size/8, primary)
		fillRect(img, size/8, size/4-size/12, size/2, size/4, primary)
		fillRect(img, size/8+size/16, size/4+size/10, size*7/8-size/16, size*3/4+size/16, accent)
	case IconDocument:
		fillRect(img, size/4, size/8, size*3/4, size*7/8, primary)
		for i := 0; i < 3; i++ {
			y := size/4 + i*size/6
			fillRect(img, size/3, y, size*2/3, y+size/24+1, accent)
		}
	case IconPlay:
		drawDisc(img, s/2, s/2, s*0.45, primary)
		// Right-pointing triangle, nudged a little right of center.
		left := size * 2 / 5
		top := size / 3
		bottom := size * 2 / 3
		for y := top; y < bottom; y++ {
			var t float64
			if y < size/2 {
				t = float64(y-top) / float64(size/2-top)
			} else {
				t = float64(bottom-y) / float64(bottom-size/2)
			}
			w := int(t * s / 4)
			fillRect(img, left, y, left+w+1, y+1, accent)
		}
	case IconWarning:
		fillTriangle(img, size, primary, true, 1)
		fillRect(img, size/2-size/24, size*2/5, size/2+size/24+1, size*2/3, accent)
		drawDisc(img, s/2, s*0.76, s/24+1, accent)
	default: // home
		// Roof.
		roofTop := size / 6
		roofBottom := size / 2
		for y := roofTop; y < roofBottom; y++ {
			t := float64(y-roofTop) / float64(roofBottom-roofTop)
			w := t * s * 0.42
			fillRect(img, int(s/2-w), y, int(s/2+w)+1, y+1, primary)
		}
		// Walls and door.
		fillRect(img, size/4, size/2, size*3/4, size*5/6, primary)
		fillRect(img, size/2-size/12, size*3/5, size/2+size/12, size*5/6, accent)
	}
	return img
}
