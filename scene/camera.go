// Package scene holds the flat object list, the emitter index used by
// next-event estimation, the camera and the background color model.
package scene

import (
	stdmath "math"

	"pathtracer/core"
	"pathtracer/math"
)

// Camera builds primary rays from normalized device coordinates in
// [-1, 1]^2. The orthonormal basis is computed once at construction;
// Ray is the only per-pixel cost.
type Camera struct {
	position math.Vec3
	u, v, w  math.Vec3
}

// NewCamera builds a camera looking from position toward target, with
// the given up hint, aspect ratio (width/height) and vertical
// field-of-view in degrees.
func NewCamera(position, target, up math.Vec3, aspectRatio, fovDegrees float32) Camera {
	z := target.Sub(position).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	fovRad := fovDegrees * (math.Pi / 180)
	focal := aspectRatio / float32(stdmath.Tan(float64(fovRad/2)))

	return Camera{
		position: position,
		u:        x.Mul(aspectRatio),
		v:        y,
		w:        z.Mul(focal),
	}
}

// Ray returns the primary ray through NDC coordinates (x, y).
func (c Camera) Ray(x, y float32) core.Ray {
	direction := c.u.Mul(x).Add(c.v.Mul(y)).Add(c.w).Normalize()
	return core.Ray{Origin: c.position, Direction: direction}
}
