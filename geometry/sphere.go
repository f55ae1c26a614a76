package geometry

import (
	stdmath "math"

	"pathtracer/core"
	"pathtracer/math"
	"pathtracer/sampling"
)

// Sphere is a closed-form primitive: analytic ray intersection and
// exact cone sampling toward it from a query point (used for
// next-event estimation against sphere lights). Sample and PDFValue
// both use the cone; the sphere has no area-sampling path.
type Sphere struct {
	Center  math.Vec3
	Radius  float32
	radius2 float32
	area    float32
	mat     core.Material
}

func NewSphere(center math.Vec3, radius float32, mat core.Material) *Sphere {
	return &Sphere{
		Center:  center,
		Radius:  radius,
		radius2: radius * radius,
		area:    4 * math.Pi * radius * radius,
		mat:     mat,
	}
}

func (s *Sphere) Material() core.Material { return s.mat }

func (s *Sphere) Intersect(r core.Ray, tmin, tmax float32, info *core.Intersection) bool {
	co := r.Origin.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	b := r.Direction.Dot(co)
	c := co.Dot(co) - s.radius2
	discriminant := b*b - a*c
	if discriminant < 0 {
		return false
	}

	sq := float32(stdmath.Sqrt(float64(discriminant)))
	solution := (-b - sq) / a
	if solution > tmax || solution < tmin {
		solution = (-b + sq) / a
	}
	if solution > tmax || solution < tmin {
		return false
	}

	pos := r.At(solution)
	normal := pos.Sub(s.Center).Div(s.Radius)

	info.Hit = true
	info.T = solution
	info.Position = pos
	info.Normal = normal
	info.UV = sphereUV(normal)
	info.Object = s
	return true
}

func sphereUV(p math.Vec3) math.Vec2 {
	phi := float32(stdmath.Atan2(float64(p.Z), float64(p.X)))
	theta := float32(stdmath.Asin(float64(p.Y)))
	return math.Vec2{
		X: 1 - (phi+math.Pi)/(2*math.Pi),
		Y: (theta + math.Pi/2) / math.Pi,
	}
}

// PDFValue is the density (in solid angle) of the cone of directions
// subtended by the sphere as seen from o.
func (s *Sphere) PDFValue(o, dir math.Vec3) float32 {
	cosThetaMax := s.cosThetaMax(o)
	return sampling.UniformConePDFValue(cosThetaMax)
}

// Sample draws a direction from o toward the sphere, uniform over the
// solid-angle cone it subtends.
func (s *Sphere) Sample(o math.Vec3, rng core.Rand) math.Vec3 {
	direction := s.Center.Sub(o)
	cosThetaMax := s.cosThetaMax(o)
	local := sampling.UniformCone(rng.Float32(), rng.Float32(), cosThetaMax)
	return math.CoordinateSystem(direction.Normalize()).MulVec3(local)
}

func (s *Sphere) cosThetaMax(o math.Vec3) float32 {
	distanceSqr := s.Center.Sub(o).LengthSqr()
	v := 1 - s.radius2/distanceSqr
	if v < 0 {
		v = 0
	}
	return float32(stdmath.Sqrt(float64(v)))
}
