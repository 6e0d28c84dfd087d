// Package anim maps an animation phase to sprite positions. It is pure
// math with no dependency on the renderer or the clock.
package anim

import (
	"image"
	"math"
)

// Orbit describes the demo's looping trajectory: x follows a sine wave of
// amplitude 0.4*screen width, y a cosine wave of double frequency shifted
// a quarter cycle, both centered on the screen center.
type Orbit struct {
	ScreenWidth  int
	ScreenHeight int
	SpriteWidth  int
	SpriteHeight int
}

// Position returns the top-left corner for a sprite at the given phase
// ratio. The offset shifts the sprite along the loop; the demo's three
// sprites use offsets 0, 1/3 and 2/3 to stay evenly spaced. Defined for
// any real inputs.
func (o Orbit) Position(ratio, offset float64) (int, int) {
	t := ratio + offset
	centerX := float64(o.ScreenWidth/2 - o.SpriteWidth/2)
	centerY := float64(o.ScreenHeight/2 - o.SpriteHeight/2)

	x := centerX + 0.4*float64(o.ScreenWidth)*math.Sin(2*math.Pi*t)
	y := centerY + 0.4*float64(o.ScreenHeight)*math.Cos(4*math.Pi*t+math.Pi/2)
	return int(x), int(y)
}

// Rect returns the destination rectangle for a sprite at the given phase
// ratio and offset.
func (o Orbit) Rect(ratio, offset float64) image.Rectangle {
	x, y := o.Position(ratio, offset)
	return image.Rect(x, y, x+o.SpriteWidth, y+o.SpriteHeight)
}
