package geometry

import (
	stdmath "math"
	"math/rand"
	"testing"

	"pathtracer/core"
	"pathtracer/math"
)

func TestSphereIntersectHitsNearestRoot(t *testing.T) {
	s := NewSphere(math.Vec3{X: 0, Y: 0, Z: 5}, 1, testMaterial())
	r := core.Ray{Origin: math.Vec3Zero, Direction: math.Vec3{X: 0, Y: 0, Z: 1}}

	var info core.Intersection
	if !s.Intersect(r, 0, math.Infinity, &info) {
		t.Fatal("expected the ray to hit the sphere")
	}
	if diff := info.T - 4; diff < -1e-4 || diff > 1e-4 {
		t.Fatalf("expected t=4 (the near side of the sphere), got %v", info.T)
	}
	want := math.Vec3{X: 0, Y: 0, Z: -1}
	if d := info.Normal.Sub(want).Length(); d > 1e-4 {
		t.Fatalf("expected outward normal %+v, got %+v", want, info.Normal)
	}
}

func TestSphereIntersectMissesWhenOffAxis(t *testing.T) {
	s := NewSphere(math.Vec3{X: 0, Y: 10, Z: 0}, 1, testMaterial())
	r := core.Ray{Origin: math.Vec3Zero, Direction: math.Vec3{X: 0, Y: 0, Z: 1}}
	var info core.Intersection
	if s.Intersect(r, 0, math.Infinity, &info) {
		t.Fatal("expected a ray pointed away from the sphere to miss")
	}
}

// TestSphereSampleStaysWithinTheSubtendedCone checks that every
// direction Sample draws from a point outside the sphere actually
// intersects it — the cone sampler must never produce a direction
// wider than the true solid angle the sphere occupies.
func TestSphereSampleStaysWithinTheSubtendedCone(t *testing.T) {
	s := NewSphere(math.Vec3{X: 2, Y: 3, Z: 4}, 1.5, testMaterial())
	o := math.Vec3Zero
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 2000; i++ {
		dir := s.Sample(o, rng)
		var info core.Intersection
		if !s.Intersect(core.Ray{Origin: o, Direction: dir}, 0, math.Infinity, &info) {
			t.Fatalf("sampled direction %+v toward the sphere did not hit it", dir)
		}
	}
}

func TestSpherePDFValueMatchesConeSolidAngle(t *testing.T) {
	s := NewSphere(math.Vec3{X: 0, Y: 0, Z: 10}, 2, testMaterial())
	o := math.Vec3Zero
	dir := math.Vec3{X: 0, Y: 0, Z: 1}
	pdf := s.PDFValue(o, dir)
	if pdf <= 0 {
		t.Fatalf("expected a positive PDF value along the sphere's axis, got %v", pdf)
	}

	// Radius 2 at distance 10: cosThetaMax = sqrt(1 - 4/100), and the
	// uniform cone density is 1 / (2*pi*(1 - cosThetaMax)) ~= 7.877.
	want := 1 / (2 * stdmath.Pi * (1 - stdmath.Sqrt(0.96)))
	if rel := stdmath.Abs(float64(pdf)-want) / want; rel > 1e-3 {
		t.Fatalf("expected PDF %v for the subtended cone, got %v", want, pdf)
	}
}
