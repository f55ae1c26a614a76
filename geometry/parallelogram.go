package geometry

import (
	"pathtracer/core"
	"pathtracer/math"
)

// Parallelogram is the area-light primitive: ray/plane intersection
// with a 2x2 barycentric solve chosen from whichever coordinate pair
// keeps the determinant away from zero.
type Parallelogram struct {
	Origin, E1, E2 math.Vec3
	normal         math.Vec3
	area           float32
	coordsToUse    int // 1=xy, 2=xz, 3=yz
	mat            core.Material
}

func NewParallelogram(origin, e1, e2 math.Vec3, mat core.Material) *Parallelogram {
	normal := e1.Cross(e2)
	area := normal.Length()
	normal = normal.Div(area)

	coords := 3
	if absf(e1.X*e2.Y-e1.Y*e2.X) > math.Epsilon {
		coords = 1
	} else if absf(e1.X*e2.Z-e1.Z*e2.X) > math.Epsilon {
		coords = 2
	}

	return &Parallelogram{
		Origin: origin, E1: e1, E2: e2,
		normal: normal, area: area, coordsToUse: coords, mat: mat,
	}
}

func (p *Parallelogram) Material() core.Material { return p.mat }

func (p *Parallelogram) Intersect(r core.Ray, tmin, tmax float32, info *core.Intersection) bool {
	oc := p.Origin.Sub(r.Origin)
	denominator := p.normal.Dot(r.Direction)
	if denominator < math.Epsilon && denominator > -math.Epsilon {
		return false
	}

	numerator := p.normal.Dot(oc)
	t := numerator / denominator
	if t < tmin || t > tmax {
		return false
	}

	pos := r.At(t).Sub(p.Origin)
	var u, v float32
	switch p.coordsToUse {
	case 1:
		det := p.E1.X*p.E2.Y - p.E2.X*p.E1.Y
		u = (pos.X*p.E2.Y - pos.Y*p.E2.X) / det
		v = (p.E1.X*pos.Y - pos.X*p.E1.Y) / det
	case 2:
		det := p.E1.X*p.E2.Z - p.E2.X*p.E1.Z
		u = (pos.X*p.E2.Z - pos.Z*p.E2.X) / det
		v = (p.E1.X*pos.Z - pos.X*p.E1.Z) / det
	default:
		det := p.E1.Y*p.E2.Z - p.E2.Y*p.E1.Z
		u = (pos.Y*p.E2.Z - pos.Z*p.E2.Y) / det
		v = (p.E1.Y*pos.Z - pos.Y*p.E1.Z) / det
	}

	if u < 0 || u > 1 || v < 0 || v > 1 {
		return false
	}

	info.Hit = true
	info.T = t
	info.Position = r.At(t)
	info.Normal = p.normal
	info.UV = math.Vec2{X: u, Y: v}
	info.Object = p
	return true
}

// PDFValue converts the parallelogram's uniform area density to solid
// angle as seen from o, by actually intersecting (o, dir): the
// original left this unimplemented ("don't feel like integrating
// this"); every area light still needs an unbiased density for
// next-event estimation to be correct, so this resolves it the
// standard way (density_solid_angle = density_area * dist^2 / cosTheta).
func (p *Parallelogram) PDFValue(o, dir math.Vec3) float32 {
	var info core.Intersection
	if !p.Intersect(core.Ray{Origin: o, Direction: dir}, math.Epsilon, math.Infinity, &info) {
		return 0
	}
	cosTheta := absf(p.normal.Dot(dir))
	if cosTheta < math.Epsilon {
		return 0
	}
	distanceSqr := info.T * info.T * dir.LengthSqr()
	return (1 / p.area) * distanceSqr / cosTheta
}

// Sample draws a point uniformly over the parallelogram's area and
// returns the unit direction toward it from o.
func (p *Parallelogram) Sample(o math.Vec3, rng core.Rand) math.Vec3 {
	point := p.Origin.Add(p.E1.Mul(rng.Float32())).Add(p.E2.Mul(rng.Float32()))
	return point.Sub(o).Normalize()
}
