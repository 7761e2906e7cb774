package physics

import (
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// Seek returns the displacement of length speed from 'from' toward 'to'
// ok is false when the points coincide; callers skip movement that tick
func Seek(from, to vmath.Vec2, speed float64) (delta vmath.Vec2, ok bool) {
	dir, ok := vmath.V2Normalize(vmath.V2Sub(to, from))
	if !ok {
		return vmath.Vec2{}, false
	}
	return vmath.V2Scale(dir, speed), true
}

// SeekBox moves box so that its center approaches target by speed
func SeekBox(box vmath.Rect, target vmath.Vec2, speed float64) vmath.Rect {
	delta, ok := Seek(box.Center(), target, speed)
	if !ok {
		return box
	}
	return box.Translate(delta)
}
