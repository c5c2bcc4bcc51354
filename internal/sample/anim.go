package sample

import (
	"image"
	"math"
)

// AnimationKind enumerates the procedural frame sequences.
type AnimationKind string

const (
	AnimSpinner AnimationKind = "spinner"
	AnimPulse   AnimationKind = "pulse"
	AnimBounce  AnimationKind = "bounce"
)

// Animation generates frameCount procedural frames of the given kind.
// Frames are size x size with transparent backgrounds and are meant to
// be packaged by the anim package. frameCount < 1 yields one frame.
func Animation(kind AnimationKind, size, frameCount int, pal Palette) []*image.NRGBA {
	if frameCount < 1 {
		frameCount = 1
	}
	frames := make([]*image.NRGBA, frameCount)
	for i := range frames {
		phase := float64(i) / float64(frameCount)
		switch kind {
		case AnimPulse:
			frames[i] = pulseFrame(size, phase, pal)
		case AnimBounce:
			frames[i] = bounceFrame(size, phase, pal)
		default:
			frames[i] = spinnerFrame(size, phase, pal)
		}
	}
	return frames
}

// spinnerFrame draws twelve ticks around a circle whose opacity trails
// behind the phase position.
func spinnerFrame(size int, phase float64, pal Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	col := toNRGBA(pal.Primary)
	center := float64(size) / 2
	orbit := float64(size) * 0.36
	dot := float64(size) * 0.07

	const ticks = 12
	lead := phase * ticks
	for i := 0; i < ticks; i++ {
		// Fade each tick by its distance behind the leading tick.
		behind := math.Mod(lead-float64(i)+ticks, ticks)
		fade := 1 - behind/ticks
		angle := float64(i)/ticks*2*math.Pi - math.Pi/2
		c := col
		c.A = uint8(255*fade + 0.5)
		drawDisc(img, center+math.Cos(angle)*orbit, center+math.Sin(angle)*orbit, dot, c)
	}
	return img
}

// pulseFrame draws a centered disc whose radius and opacity follow a
// triangle wave over the cycle.
func pulseFrame(size int, phase float64, pal Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	col := toNRGBA(pal.Accent)

	// Triangle wave: 0 -> 1 -> 0 over one cycle.
	wave := 1 - math.Abs(2*phase-1)
	center := float64(size) / 2
	radius := float64(size) * (0.15 + 0.25*wave)
	col.A = uint8(255*(0.4+0.6*wave) + 0.5)
	drawDisc(img, center, center, radius, col)
	return img
}

// bounceFrame drops a dot along a parabolic arc and back.
func bounceFrame(size int, phase float64, pal Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	col := toNRGBA(pal.Primary)

	dot := float64(size) * 0.12
	floor := float64(size) - dot - 1
	top := dot + 1
	// Parabola peaking mid-cycle.
	h := 4 * phase * (1 - phase)
	y := floor - (floor-top)*h
	drawDisc(img, float64(size)/2, y, dot, col)
	return img
}
