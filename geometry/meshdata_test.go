package geometry

import (
	"testing"

	"pathtracer/math"
)

// TestNewMeshDataBakesScaleRotateTranslate checks that a vertex
// position is scaled, then rotated, then translated, in that order.
func TestNewMeshDataBakesScaleRotateTranslate(t *testing.T) {
	positions := []math.Vec3{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}}
	faces := []Face{{A: 0, B: 1, C: 2}}

	scale := math.Vec3{X: 2, Y: 2, Z: 2}
	rotation := math.Vec3{X: 0, Y: math.Pi / 2, Z: 0}
	translation := math.Vec3{X: 5, Y: 0, Z: 0}

	data := NewMeshData(positions, nil, nil, faces, translation, rotation, scale)

	want := translation.Add(math.Mat3RotationXYZ(rotation).MulVec3(math.Vec3{X: 2, Y: 0, Z: 0}))
	got := data.Vertices[0].Position
	if d := got.Sub(want).Length(); d > 1e-3 {
		t.Fatalf("expected baked position %+v, got %+v", want, got)
	}
}

// TestNewMeshDataAccumulatesFaceNormalsWhenNoneAreGiven: a single
// triangle's vertices, with no explicit normals, must all end up with
// the triangle's own face normal (there is nothing else to average
// against).
func TestNewMeshDataAccumulatesFaceNormalsWhenNoneAreGiven(t *testing.T) {
	positions := []math.Vec3{{X: -1, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: 0, Y: 1, Z: 0}}
	faces := []Face{{A: 0, B: 1, C: 2}}
	data := NewMeshData(positions, nil, nil, faces, math.Vec3Zero, math.Vec3Zero, math.Vec3One)

	faceNormal := data.Triangles[0].FaceNormal
	for i, v := range data.Vertices {
		if d := v.Normal.Sub(faceNormal).Length(); d > 1e-4 {
			t.Fatalf("vertex %d: expected accumulated normal %+v, got %+v", i, faceNormal, v.Normal)
		}
	}
}

// TestNewMeshDataKeepsExplicitNormals: when normals are supplied,
// NewMeshData must not overwrite them with an accumulated average.
func TestNewMeshDataKeepsExplicitNormals(t *testing.T) {
	positions := []math.Vec3{{X: -1, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: 0, Y: 1, Z: 0}}
	normals := []math.Vec3{{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1}}
	faces := []Face{{A: 0, B: 1, C: 2}}
	data := NewMeshData(positions, normals, nil, faces, math.Vec3Zero, math.Vec3Zero, math.Vec3One)

	want := math.Vec3{X: 0, Y: 0, Z: 1}
	for i, v := range data.Vertices {
		if d := v.Normal.Sub(want).Length(); d > 1e-4 {
			t.Fatalf("vertex %d: expected explicit normal %+v, got %+v", i, want, v.Normal)
		}
	}
}

func TestNewMeshDataTotalAreaSumsTriangleAreas(t *testing.T) {
	positions := []math.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 2, Y: 0, Z: 0}, {X: 3, Y: 0, Z: 0}, {X: 2, Y: 1, Z: 0},
	}
	faces := []Face{{A: 0, B: 1, C: 2}, {A: 3, B: 4, C: 5}}
	data := NewMeshData(positions, nil, nil, faces, math.Vec3Zero, math.Vec3Zero, math.Vec3One)

	want := data.Triangles[0].Area + data.Triangles[1].Area
	if d := data.TotalArea - want; d < -1e-5 || d > 1e-5 {
		t.Fatalf("TotalArea = %v, want %v", data.TotalArea, want)
	}
}
