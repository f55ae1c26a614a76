package geometry

import (
	stdmath "math"

	"pathtracer/core"
	"pathtracer/math"
)

// TriangleBoxOverlap is the Akenine-Moller exact separating-axis test
// between a triangle and an axis-aligned box: the triangle's own AABB
// against the box (bullet 1), the triangle's plane against the box
// (bullet 2), and the 9 cross-product axes of triangle edges against
// the box axes (bullet 3). The cheap AABB/AABB test in package core is
// used as a fast reject during tree construction; this test is
// preferred wherever a false positive would otherwise let a triangle
// leak into the wrong octant.
func TriangleBoxOverlap(box core.AABB, v0, v1, v2, normal math.Vec3, triBox core.AABB) bool {
	if !box.IntersectsAABB(triBox) {
		return false
	}

	center := box.Center
	half := box.HalfSize

	a0 := v0.Sub(center)
	a1 := v1.Sub(center)
	a2 := v2.Sub(center)

	e0 := a1.Sub(a0)
	e1 := a2.Sub(a1)
	e2 := a0.Sub(a2)

	if !axisTestX(e0.Z, e0.Y, absf(e0.Z), absf(e0.Y), a0, a2, half) {
		return false
	}
	if !axisTestY(e0.Z, e0.X, absf(e0.Z), absf(e0.X), a0, a2, half) {
		return false
	}
	if !axisTestZ(e0.Y, e0.X, absf(e0.Y), absf(e0.X), a1, a2, half) {
		return false
	}

	if !axisTestX(e1.Z, e1.Y, absf(e1.Z), absf(e1.Y), a0, a2, half) {
		return false
	}
	if !axisTestY(e1.Z, e1.X, absf(e1.Z), absf(e1.X), a0, a2, half) {
		return false
	}
	if !axisTestZ(e1.Y, e1.X, absf(e1.Y), absf(e1.X), a0, a1, half) {
		return false
	}

	if !axisTestX(e2.Z, e2.Y, absf(e2.Z), absf(e2.Y), a0, a1, half) {
		return false
	}
	if !axisTestY(e2.Z, e2.X, absf(e2.Z), absf(e2.X), a0, a1, half) {
		return false
	}
	if !axisTestZ(e2.Y, e2.X, absf(e2.Y), absf(e2.X), a1, a2, half) {
		return false
	}

	if !planeBoxOverlap(normal, a0, half) {
		return false
	}

	return true
}

// axisTestX covers both the X01 and X2 variants from the reference
// implementation: the projection only ever needs two of the three
// triangle vertices, chosen by the caller.
func axisTestX(a, b, fa, fb float32, p, q math.Vec3, half math.Vec3) bool {
	p0 := a*p.Y - b*p.Z
	p2 := a*q.Y - b*q.Z
	min, max := p0, p2
	if p0 > p2 {
		min, max = p2, p0
	}
	rad := fa*half.Y + fb*half.Z
	return !(min > rad || max < -rad)
}

func axisTestY(a, b, fa, fb float32, p, q math.Vec3, half math.Vec3) bool {
	p0 := -a*p.X + b*p.Z
	p2 := -a*q.X + b*q.Z
	min, max := p0, p2
	if p0 > p2 {
		min, max = p2, p0
	}
	rad := fa*half.X + fb*half.Z
	return !(min > rad || max < -rad)
}

func axisTestZ(a, b, fa, fb float32, p, q math.Vec3, half math.Vec3) bool {
	p0 := a*p.X - b*p.Y
	p2 := a*q.X - b*q.Y
	min, max := p0, p2
	if p0 > p2 {
		min, max = p2, p0
	}
	rad := fa*half.X + fb*half.Y
	return !(min > rad || max < -rad)
}

func planeBoxOverlap(normal, vert, maxbox math.Vec3) bool {
	var vmin, vmax math.Vec3
	for axis := 0; axis < 3; axis++ {
		n := normal.Component(axis)
		v := vert.Component(axis)
		m := maxbox.Component(axis)
		var lo, hi float32
		if n > 0 {
			lo, hi = -m-v, m-v
		} else {
			lo, hi = m-v, -m-v
		}
		vmin = setComponent(vmin, axis, lo)
		vmax = setComponent(vmax, axis, hi)
	}
	if normal.Dot(vmin) > 0 {
		return false
	}
	if normal.Dot(vmax) >= 0 {
		return true
	}
	return false
}

func setComponent(v math.Vec3, axis int, x float32) math.Vec3 {
	switch axis {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		v.Z = x
	}
	return v
}

func absf(x float32) float32 {
	return float32(stdmath.Abs(float64(x)))
}
