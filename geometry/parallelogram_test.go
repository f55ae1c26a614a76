package geometry

import (
	"testing"

	"pathtracer/core"
	"pathtracer/math"
)

func TestParallelogramIntersectsWithinItsSpan(t *testing.T) {
	p := NewParallelogram(
		math.Vec3{X: -1, Y: -1, Z: 2},
		math.Vec3{X: 2, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 2, Z: 0},
		testMaterial(),
	)

	r := core.Ray{Origin: math.Vec3Zero, Direction: math.Vec3{X: 0, Y: 0, Z: 1}}
	var info core.Intersection
	if !p.Intersect(r, 0, math.Infinity, &info) {
		t.Fatal("expected a ray through the parallelogram's center to hit")
	}
	if diff := info.T - 2; diff < -1e-4 || diff > 1e-4 {
		t.Fatalf("expected t=2, got %v", info.T)
	}
}

func TestParallelogramRejectsRayOutsideItsSpan(t *testing.T) {
	p := NewParallelogram(
		math.Vec3{X: -1, Y: -1, Z: 2},
		math.Vec3{X: 2, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 2, Z: 0},
		testMaterial(),
	)

	// This ray crosses the parallelogram's plane well outside its
	// [0,1]x[0,1] span.
	r := core.Ray{Origin: math.Vec3{X: 10, Y: 10, Z: 0}, Direction: math.Vec3{X: 0, Y: 0, Z: 1}}
	var info core.Intersection
	if p.Intersect(r, 0, math.Infinity, &info) {
		t.Fatalf("expected a ray outside the parallelogram's span to miss, got %+v", info)
	}
}

func TestParallelogramPDFValueIsPositiveForAHittingDirection(t *testing.T) {
	p := NewParallelogram(
		math.Vec3{X: -1, Y: -1, Z: 2},
		math.Vec3{X: 2, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 2, Z: 0},
		testMaterial(),
	)
	pdf := p.PDFValue(math.Vec3Zero, math.Vec3{X: 0, Y: 0, Z: 1})
	if pdf <= 0 {
		t.Fatalf("expected a positive PDF for a direction that hits the light, got %v", pdf)
	}
	missPdf := p.PDFValue(math.Vec3Zero, math.Vec3{X: 1, Y: 0, Z: 0})
	if missPdf != 0 {
		t.Fatalf("expected a zero PDF for a direction that misses the light, got %v", missPdf)
	}
}
