package geometry

import (
	stdmath "math"

	"pathtracer/core"
	"pathtracer/math"
)

// Vertex mirrors core.Vertex but is addressed by pointer from Triangle
// so that shared mesh vertices are not duplicated per face.
type Vertex = core.Vertex

// Triangle is a face within a mesh: three shared vertex pointers plus
// the precomputed edge vectors, face normal and bounding box used by
// both direct intersection and octree construction.
type Triangle struct {
	V0, V1, V2  *Vertex
	E1, E2      math.Vec3
	Normal      math.Vec3 // unnormalized, length = 2*area
	FaceNormal  math.Vec3 // unit face normal, returned on every hit
	Area        float32
	BoundingBox core.AABB
}

func NewTriangle(v0, v1, v2 *Vertex) Triangle {
	e1 := v1.Position.Sub(v0.Position)
	e2 := v2.Position.Sub(v0.Position)
	normal := e1.Cross(e2)
	area := normal.Length() / 2

	box := core.NewEmptyAABB()
	box.AddPoint(v0.Position)
	box.AddPoint(v1.Position)
	box.AddPoint(v2.Position)
	box.UpdateCenterAndHalfSize()

	var faceNormal math.Vec3
	if area > 0 {
		faceNormal = normal.Div(2 * area)
	}

	return Triangle{
		V0: v0, V1: v1, V2: v2,
		E1: e1, E2: e2, Normal: normal, FaceNormal: faceNormal,
		Area: area, BoundingBox: box,
	}
}

// Intersect implements the single-sided Moller-Trumbore-style test:
// only front-facing hits (normal.direction < -epsilon) are accepted.
// Derivation check (fixes the redesign-flagged ambiguity around the
// tmin/tmax comparison): the plane equation gives t*denom = tNum, so
// for denom < 0 the condition tmin <= t <= tmax becomes
// tNum <= tmin*denom AND tNum >= tmax*denom after dividing through by
// the negative denominator — exactly the rejection test below, so the
// original comparison direction is correct as written.
func (t *Triangle) Intersect(r core.Ray, tmin, tmax float32, info *core.Intersection) bool {
	denominator := t.Normal.Dot(r.Direction)
	if denominator >= -math.Epsilon {
		return false
	}

	oc := t.V0.Position.Sub(r.Origin)
	tNum := t.Normal.Dot(oc)
	if tNum > tmin*denominator || tNum < tmax*denominator {
		return false
	}

	ocD := oc.Cross(r.Direction)
	kx := t.E2.Dot(ocD)
	if kx > 0 || kx < denominator {
		return false
	}
	ky := -t.E1.Dot(ocD)
	if ky > 0 || kx+ky < denominator {
		return false
	}

	invDenom := 1 / denominator
	tHit := tNum * invDenom
	kx *= invDenom
	ky *= invDenom

	info.Hit = true
	info.T = tHit
	info.Position = r.At(tHit)
	info.Normal = t.FaceNormal
	info.UV = t.V0.UV.Mul(1 - kx - ky).Add(t.V1.UV.Mul(kx)).Add(t.V2.UV.Mul(ky))
	return true
}

// IntersectsAABB is the exact SAT overlap test against box, preferred
// over the cheap AABB/AABB test for tighter octree pruning.
func (t *Triangle) IntersectsAABB(box core.AABB) bool {
	return TriangleBoxOverlap(box, t.V0.Position, t.V1.Position, t.V2.Position, t.FaceNormal, t.BoundingBox)
}

// RandomArea draws a barycentric-uniform point on the triangle's
// surface, used by the mesh's area-sampling fallback for next-event
// estimation toward a non-sphere emitter.
func (t *Triangle) RandomArea(r1, r2 float32) math.Vec3 {
	sr1 := float32(stdmath.Sqrt(float64(r1)))
	gamma := sr1 * r2
	alpha := sr1 - gamma
	beta := 1 - sr1
	return t.V0.Position.Mul(alpha).Add(t.V1.Position.Mul(beta)).Add(t.V2.Position.Mul(gamma))
}
