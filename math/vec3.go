package math

import "math"

// Infinity is the sentinel distance used to initialize intersection
// searches and empty bounding boxes.
const Infinity = float32(math.MaxFloat32)

// Epsilon guards against self-intersection and near-zero denominators
// in plane, slab and shadow-ray offset computations.
const Epsilon = 1e-6

// Pi is cached as a float32 since nearly every sampling routine in
// this package operates in float32.
const Pi = float32(math.Pi)

type Vec3 struct {
	X, Y, Z float32
}

var (
	Vec3Zero     = Vec3{0, 0, 0}
	Vec3One      = Vec3{1, 1, 1}
	Vec3Up       = Vec3{0, 1, 0}
	Vec3Infinity = Vec3{Infinity, Infinity, Infinity}
)

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) MulVec(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

func (v Vec3) Div(s float32) Vec3 {
	return v.Mul(1.0 / s)
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSqr() float32 {
	return v.Dot(v)
}

func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSqr())))
}

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l > 0 {
		return v.Mul(1.0 / l)
	}
	return v
}

// Component indexes v by axis: 0=X, 1=Y, 2=Z.
func (v Vec3) Component(axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func Min3(a, b Vec3) Vec3 {
	return Vec3{minf(a.X, b.X), minf(a.Y, b.Y), minf(a.Z, b.Z)}
}

func Max3(a, b Vec3) Vec3 {
	return Vec3{maxf(a.X, b.X), maxf(a.Y, b.Y), maxf(a.Z, b.Z)}
}

func Clamp3(v, lo, hi Vec3) Vec3 {
	return Vec3{
		clampf(v.X, lo.X, hi.X),
		clampf(v.Y, lo.Y, hi.Y),
		clampf(v.Z, lo.Z, hi.Z),
	}
}

// Pow3 raises every component to the given exponent; used for gamma
// correction of accumulated radiance before quantization.
func Pow3(v Vec3, exp float32) Vec3 {
	return Vec3{
		float32(math.Pow(float64(v.X), float64(exp))),
		float32(math.Pow(float64(v.Y), float64(exp))),
		float32(math.Pow(float64(v.Z), float64(exp))),
	}
}

// MaxComponent returns the largest of the three components, used by
// the integrator's Russian-roulette survival probability.
func (v Vec3) MaxComponent() float32 {
	return maxf(maxf(v.X, v.Y), v.Z)
}

// ScrubNaN replaces any NaN or infinite component with zero. Applied
// as a defensive post-pass before quantizing final pixel colors.
func ScrubNaN(v Vec3) Vec3 {
	return Vec3{scrubf(v.X), scrubf(v.Y), scrubf(v.Z)}
}

func scrubf(x float32) float32 {
	if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
		return 0
	}
	return x
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampf(x, lo, hi float32) float32 {
	return maxf(lo, minf(x, hi))
}
