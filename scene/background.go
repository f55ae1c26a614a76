package scene

import (
	"pathtracer/core"
	"pathtracer/math"
)

// Background supplies the radiance returned by a ray that misses
// every object in the scene.
type Background interface {
	Value(r core.Ray) math.Vec3
}

// ConstantBackground returns the same color regardless of direction.
type ConstantBackground struct {
	Color math.Vec3
}

func (b ConstantBackground) Value(core.Ray) math.Vec3 {
	return b.Color
}

// GradientBackground interpolates between Down and Up based on the
// ray direction's Y component, giving the default sky-like gradient
// the original renderer used when no explicit background was set.
type GradientBackground struct {
	Down, Up math.Vec3
}

func (b GradientBackground) Value(r core.Ray) math.Vec3 {
	t := 0.5 * (r.Direction.Y + 1)
	return b.Down.Mul(1 - t).Add(b.Up.Mul(t))
}
