// Package core holds the small value types shared across the
// intersection pipeline, the integrator and the render driver: rays,
// axis-aligned bounding boxes, vertices and the per-pixel intensity
// buffer.
package core

import "pathtracer/math"

// Ray is an origin/direction pair. Direction need not be unit length
// for intersection math to be correct, but the camera and every ray
// the integrator emits always produce unit directions.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At evaluates the ray's position at parameter t.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Vertex is a mesh vertex: position, accumulated (then normalized)
// normal, and texture coordinates.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

// Intersection records the result of a ray query. Hit is false and T
// is +Infinity until a successful intersect call mutates it.
type Intersection struct {
	Hit      bool
	T        float32
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
	Object   Object
}

func NewIntersection() Intersection {
	return Intersection{Hit: false, T: math.Infinity}
}

// Rand is the uniform draw source Object.Sample needs. sampling.RNG
// satisfies it without this package importing sampling.
type Rand interface {
	Float32() float32
}

// Object is the common capability every scene primitive and mesh
// implements: ray intersection plus the two sampling strategies used
// for next-event estimation (solid-angle sampling toward a query
// point, and area sampling as a fallback for objects without a closed
// form for the former).
type Object interface {
	Intersect(r Ray, tmin, tmax float32, info *Intersection) bool
	Material() Material
	// PDFValue and Sample implement sampling a direction from o
	// toward this object, used for shadow-ray generation: Sample draws
	// a direction, PDFValue reports the density of a (possibly
	// different) direction under the same distribution.
	PDFValue(o, dir math.Vec3) float32
	Sample(o math.Vec3, rng Rand) math.Vec3
}

// Material is the capability set every surface material exposes to
// the integrator. Defined here (rather than in package materials) to
// break the import cycle between core.Object and the material that
// objects carry.
type Material interface {
	Emits() bool
	Emitted(uv math.Vec2, p math.Vec3) math.Vec3
	Scatter() bool
	BRDF(in, out math.Vec3, uv math.Vec2, p math.Vec3) math.Vec3
	Transform(normal math.Vec3) math.Mat3
}
