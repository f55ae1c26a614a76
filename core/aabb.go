package core

import "pathtracer/math"

// AABB is an axis-aligned bounding box stored as (min, max) with the
// derived center/half-size recomputed explicitly after bulk point
// insertion (see UpdateCenterAndHalfSize).
type AABB struct {
	Min, Max             math.Vec3
	Center, HalfSize math.Vec3
}

// NewEmptyAABB returns a box with min=+Infinity, max=-Infinity so
// that the first AddPoint call establishes real bounds.
func NewEmptyAABB() AABB {
	return AABB{Min: math.Vec3Infinity, Max: math.Vec3Infinity.Negate()}
}

func NewAABB(min, max math.Vec3) AABB {
	b := AABB{Min: min, Max: max}
	b.UpdateCenterAndHalfSize()
	return b
}

// AddPoint grows the box to cover p.
func (b *AABB) AddPoint(p math.Vec3) {
	b.Min = math.Min3(b.Min, p)
	b.Max = math.Max3(b.Max, p)
}

// UpdateCenterAndHalfSize recomputes the derived center/half-size
// pair. Must be called explicitly after a batch of AddPoint calls.
func (b *AABB) UpdateCenterAndHalfSize() {
	b.Center = b.Min.Add(b.Max).Mul(0.5)
	b.HalfSize = b.Max.Sub(b.Min).Mul(0.5)
}

// Intersect performs the slab test and returns the tightened [tmin, tmax].
// Returns false as soon as any axis proves disjoint.
func (b AABB) Intersect(r Ray, tmin, tmax float32) (float32, float32, bool) {
	for axis := 0; axis < 3; axis++ {
		d := r.Direction.Component(axis)
		o := r.Origin.Component(axis)
		lo := b.Min.Component(axis)
		hi := b.Max.Component(axis)

		if d > -math.Epsilon && d < math.Epsilon {
			if o < lo || o > hi {
				return tmin, tmax, false
			}
			continue
		}

		invD := 1.0 / d
		t0 := (lo - o) * invD
		t1 := (hi - o) * invD
		if d < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmax < tmin {
			return tmin, tmax, false
		}
	}
	return tmin, tmax, true
}

// IntersectsAABB is the cheap (non-exact) box/box overlap test used
// as a broad-phase reject; the octree's exact separating-axis test
// (package geometry) supersedes it during tree construction.
func (b AABB) IntersectsAABB(o AABB) bool {
	return b.Max.X >= o.Min.X && b.Min.X <= o.Max.X &&
		b.Max.Y >= o.Min.Y && b.Min.Y <= o.Max.Y &&
		b.Max.Z >= o.Min.Z && b.Min.Z <= o.Max.Z
}

// ContainsPoint reports whether p lies within the box, componentwise.
func (b AABB) ContainsPoint(p math.Vec3) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y &&
		b.Min.Z <= p.Z && p.Z <= b.Max.Z
}

// Octant splits the box at its center and returns the sub-box for the
// given octant index 0..7, using the ordering documented in the
// octree type: (-x-y-z, +x-y-z, +x+y-z, -x+y-z, -x-y+z, +x-y+z,
// +x+y+z, -x+y+z).
func (b AABB) Octant(index int) AABB {
	c := b.Min.Add(b.Max).Mul(0.5)
	var min, max math.Vec3
	switch index {
	case 0:
		min, max = b.Min, c
	case 1:
		min = math.Vec3{X: c.X, Y: b.Min.Y, Z: b.Min.Z}
		max = math.Vec3{X: b.Max.X, Y: c.Y, Z: c.Z}
	case 2:
		min = math.Vec3{X: c.X, Y: c.Y, Z: b.Min.Z}
		max = math.Vec3{X: b.Max.X, Y: b.Max.Y, Z: c.Z}
	case 3:
		min = math.Vec3{X: b.Min.X, Y: c.Y, Z: b.Min.Z}
		max = math.Vec3{X: c.X, Y: b.Max.Y, Z: c.Z}
	case 4:
		min = math.Vec3{X: b.Min.X, Y: b.Min.Y, Z: c.Z}
		max = math.Vec3{X: c.X, Y: c.Y, Z: b.Max.Z}
	case 5:
		min = math.Vec3{X: c.X, Y: b.Min.Y, Z: c.Z}
		max = math.Vec3{X: b.Max.X, Y: c.Y, Z: b.Max.Z}
	case 6:
		min, max = c, b.Max
	default: // 7
		min = math.Vec3{X: b.Min.X, Y: c.Y, Z: c.Z}
		max = math.Vec3{X: c.X, Y: b.Max.Y, Z: b.Max.Z}
	}
	return NewAABB(min, max)
}
