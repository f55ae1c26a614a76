package sampling

import (
	stdmath "math"

	"pathtracer/math"
)

// UniformHemisphere draws a direction uniformly distributed over the
// hemisphere around (0,1,0) from two U[0,1) numbers.
func UniformHemisphere(r1, r2 float32) math.Vec3 {
	sinTheta := float32(stdmath.Sqrt(float64(1 - r2*r2)))
	phi := 2 * math.Pi * r1
	return math.Vec3{
		X: sinTheta * cosf(phi),
		Y: r2,
		Z: sinTheta * sinf(phi),
	}
}

// UniformHemispherePDFValue is the PDF of UniformHemisphere: constant
// over the solid angle of the upper hemisphere.
func UniformHemispherePDFValue(math.Vec3) float32 {
	return 1 / (2 * math.Pi)
}

// CosineWeightedHemisphere draws a direction around (0,1,0) with
// density proportional to cos(theta).
func CosineWeightedHemisphere(r1, r2 float32) math.Vec3 {
	sinTheta := float32(stdmath.Sqrt(float64(1 - r2)))
	phi := 2 * math.Pi * r1
	return math.Vec3{
		X: sinTheta * cosf(phi),
		Y: float32(stdmath.Sqrt(float64(r2))),
		Z: sinTheta * sinf(phi),
	}
}

// CosineWeightedHemispherePDFValue evaluates cos(theta)/pi for a
// direction expressed in the local frame around (0,1,0).
func CosineWeightedHemispherePDFValue(direction math.Vec3) float32 {
	return direction.Y / math.Pi
}

// UniformCone draws a direction within the cone of half-angle
// acos(cosThetaMax) around (0,1,0); used to sample a direction toward
// a sphere light from a query point.
func UniformCone(r1, r2, cosThetaMax float32) math.Vec3 {
	y := 1 + r2*(cosThetaMax-1)
	radius := float32(stdmath.Sqrt(float64(1 - y*y)))
	phi := 2 * math.Pi * r1
	return math.Vec3{X: radius * cosf(phi), Y: y, Z: radius * sinf(phi)}
}

// UniformConePDFValue is the PDF of UniformCone, constant over the
// cone's solid angle.
func UniformConePDFValue(cosThetaMax float32) float32 {
	return 1 / (2 * math.Pi * (1 - cosThetaMax))
}

func cosf(x float32) float32 {
	return float32(stdmath.Cos(float64(x)))
}

func sinf(x float32) float32 {
	return float32(stdmath.Sin(float64(x)))
}
