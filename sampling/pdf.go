package sampling

import "pathtracer/math"

// Rand is the minimal uniform-draw capability a PDF needs. sampling.RNG
// satisfies it, as does any other [0,1) source.
type Rand interface {
	Float32() float32
}

// PDF is the sampling-distribution capability set: evaluate a
// direction's density, generate one in the canonical local frame
// (around (0,1,0)), build the local-to-world transform around an
// arbitrary normal, and the composition of the two as a convenience.
type PDF interface {
	Value(direction math.Vec3) float32
	Generate(rng Rand) math.Vec3
	Transform(normal math.Vec3) math.Mat3
	Sample(rng Rand, normal math.Vec3) (direction math.Vec3, pdfValue float32)
}

// UniformHemispherePDF samples directions uniformly over the
// hemisphere: an unweighted alternative to the cosine-weighted
// distribution.
type UniformHemispherePDF struct{}

func (UniformHemispherePDF) Value(math.Vec3) float32 {
	return UniformHemispherePDFValue(math.Vec3{})
}

func (UniformHemispherePDF) Generate(rng Rand) math.Vec3 {
	return UniformHemisphere(rng.Float32(), rng.Float32())
}

func (UniformHemispherePDF) Transform(normal math.Vec3) math.Mat3 {
	return math.CoordinateSystem(normal)
}

func (p UniformHemispherePDF) Sample(rng Rand, normal math.Vec3) (math.Vec3, float32) {
	local := p.Generate(rng)
	return p.Transform(normal).MulVec3(local), p.Value(local)
}

// CosineWeightedHemispherePDF samples directions with density
// proportional to cos(theta); this is the distribution the integrator
// uses to generate indirect bounce directions.
type CosineWeightedHemispherePDF struct{}

func (CosineWeightedHemispherePDF) Value(direction math.Vec3) float32 {
	return CosineWeightedHemispherePDFValue(direction)
}

func (CosineWeightedHemispherePDF) Generate(rng Rand) math.Vec3 {
	return CosineWeightedHemisphere(rng.Float32(), rng.Float32())
}

func (CosineWeightedHemispherePDF) Transform(normal math.Vec3) math.Mat3 {
	return math.CoordinateSystem(normal)
}

func (p CosineWeightedHemispherePDF) Sample(rng Rand, normal math.Vec3) (math.Vec3, float32) {
	local := p.Generate(rng)
	world := p.Transform(normal).MulVec3(local)
	return world, p.Value(local)
}

// MixturePDF draws from A with probability Mix, else from B. The
// evaluated density is the convex combination of the two.
type MixturePDF struct {
	A, B PDF
	Mix  float32
}

func (m MixturePDF) Value(direction math.Vec3) float32 {
	return m.Mix*m.A.Value(direction) + (1-m.Mix)*m.B.Value(direction)
}

func (m MixturePDF) Generate(rng Rand) math.Vec3 {
	if rng.Float32() < m.Mix {
		return m.A.Generate(rng)
	}
	return m.B.Generate(rng)
}

func (m MixturePDF) Transform(normal math.Vec3) math.Mat3 {
	return math.CoordinateSystem(normal)
}

func (m MixturePDF) Sample(rng Rand, normal math.Vec3) (math.Vec3, float32) {
	if rng.Float32() < m.Mix {
		local := m.A.Generate(rng)
		return m.A.Transform(normal).MulVec3(local), m.Value(local)
	}
	local := m.B.Generate(rng)
	return m.B.Transform(normal).MulVec3(local), m.Value(local)
}
