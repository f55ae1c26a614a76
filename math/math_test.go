package math

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	dot := v1.Dot(v2)
	expectedDot := float32(32)
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	cross := NewVec3(1, 0, 0).Cross(Vec3Up)
	if cross != NewVec3(0, 0, 1) {
		t.Errorf("Cross: expected (0,0,1), got %v", cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	length := normalized.Length()
	if math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}
}

func TestClamp3(t *testing.T) {
	v := NewVec3(-1, 0.5, 2)
	result := Clamp3(v, Vec3Zero, Vec3One)
	expected := NewVec3(0, 0.5, 1)
	if result != expected {
		t.Errorf("Clamp3: expected %v, got %v", expected, result)
	}
}

func TestScrubNaN(t *testing.T) {
	v := NewVec3(float32(math.NaN()), float32(math.Inf(1)), 1)
	result := ScrubNaN(v)
	if result != NewVec3(0, 0, 1) {
		t.Errorf("ScrubNaN: expected (0,0,1), got %v", result)
	}
}

func TestMat3Identity(t *testing.T) {
	m := Mat3Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat3MulVec3(t *testing.T) {
	m := Mat3Scaling(NewVec3(2, 3, 4))
	v := NewVec3(1, 1, 1)
	result := m.MulVec3(v)
	expected := NewVec3(2, 3, 4)
	if result != expected {
		t.Errorf("MulVec3: expected %v, got %v", expected, result)
	}
}

func TestMat3Inverse(t *testing.T) {
	m := Mat3RotationY(float32(math.Pi / 3))
	inv := m.Inverse()
	identity := m.Mul(inv)
	tolerance := float32(0.001)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if math.Abs(float64(identity[i][j]-expected)) > float64(tolerance) {
				t.Errorf("Inverse: expected [%d][%d] ~= %v, got %v", i, j, expected, identity[i][j])
			}
		}
	}
}

func TestCoordinateSystemOrthonormal(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	basis := CoordinateSystem(normal)
	x := Vec3{basis[0][0], basis[1][0], basis[2][0]}
	y := Vec3{basis[0][1], basis[1][1], basis[2][1]}
	z := Vec3{basis[0][2], basis[1][2], basis[2][2]}

	tolerance := float32(0.001)
	if math.Abs(float64(x.Dot(y))) > float64(tolerance) {
		t.Errorf("CoordinateSystem: x,y not orthogonal: %v", x.Dot(y))
	}
	if math.Abs(float64(y.Dot(z))) > float64(tolerance) {
		t.Errorf("CoordinateSystem: y,z not orthogonal: %v", y.Dot(z))
	}
	if math.Abs(float64(y.Sub(normal).Length())) > float64(tolerance) {
		t.Errorf("CoordinateSystem: y axis does not match normal, got %v", y)
	}
}

func BenchmarkVec3Add(b *testing.B) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)
	for i := 0; i < b.N; i++ {
		_ = v1.Add(v2)
	}
}

func BenchmarkMat3Mul(b *testing.B) {
	m1 := Mat3Identity()
	m2 := Mat3Identity()
	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
