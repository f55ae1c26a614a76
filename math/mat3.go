package math

import "math"

// Mat3 is a 3x3 matrix in row-major form, used for mesh transforms and
// for the orthonormal local-to-world frame built around a surface
// normal during sampling.
type Mat3 [3][3]float32

func Mat3Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func Mat3Zero() Mat3 {
	return Mat3{}
}

func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[i][k] * o[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// MulVec3 treats v as a column vector: m*v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

func (m Mat3) Determinant() float32 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func (m Mat3) Inverse() Mat3 {
	det := m.Determinant()
	if det == 0 {
		return Mat3Identity()
	}
	invDet := 1 / det
	return Mat3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet,
		},
	}
}

func Mat3Scaling(s Vec3) Mat3 {
	return Mat3{
		{s.X, 0, 0},
		{0, s.Y, 0},
		{0, 0, s.Z},
	}
}

func Mat3RotationX(angle float32) Mat3 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

func Mat3RotationY(angle float32) Mat3 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

func Mat3RotationZ(angle float32) Mat3 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Mat3RotationXYZ composes the three axis rotations for the Euler
// angles (pitch, yaw, roll) used by mesh-data transforms.
func Mat3RotationXYZ(euler Vec3) Mat3 {
	return Mat3RotationY(euler.Y).Mul(Mat3RotationX(euler.X)).Mul(Mat3RotationZ(euler.Z))
}

// MatrixFromColumns builds a matrix whose columns are x, y, z; used
// to construct both the camera's orthonormal basis and the local
// frame used to transform hemisphere samples around a surface normal.
func MatrixFromColumns(x, y, z Vec3) Mat3 {
	return Mat3{
		{x.X, y.X, z.X},
		{x.Y, y.Y, z.Y},
		{x.Z, y.Z, z.Z},
	}
}

// CoordinateSystem builds an orthonormal basis with its Y axis aligned
// to the given (assumed unit) normal, choosing the auxiliary axis
// least parallel to it to avoid numerical degeneracy. The hemisphere
// and cone samplers in package sampling generate directions around
// (0,1,0), so this basis's middle column must be the normal for
// MulVec3 to rotate a local sample correctly into world space.
func CoordinateSystem(normal Vec3) Mat3 {
	var a Vec3
	if math.Abs(float64(normal.X)) > math.Abs(float64(normal.Y)) {
		a = Vec3{0, 1, 0}
	} else {
		a = Vec3{1, 0, 0}
	}
	x := a.Cross(normal).Normalize()
	z := x.Cross(normal)
	return MatrixFromColumns(x, normal, z)
}
