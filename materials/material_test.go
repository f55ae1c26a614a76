package materials

import (
	"testing"

	"pathtracer/math"
)

func TestConstantTextureIsUniform(t *testing.T) {
	tex := ConstantTexture{Color: math.Vec3{X: 0.1, Y: 0.2, Z: 0.3}}
	a := tex.Value(math.Vec2{X: 0, Y: 0}, math.Vec3Zero)
	b := tex.Value(math.Vec2{X: 1, Y: 1}, math.Vec3{X: 5, Y: 5, Z: 5})
	if a != tex.Color || a != b {
		t.Fatalf("expected every query to return %+v, got %+v and %+v", tex.Color, a, b)
	}
}

func TestLambertianDoesNotEmitAndScatters(t *testing.T) {
	mat := NewLambertian(ConstantTexture{Color: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}})
	if mat.Emits() {
		t.Fatal("a Lambertian material must not emit")
	}
	if !mat.Scatter() {
		t.Fatal("a Lambertian material must scatter")
	}
	if emitted := mat.Emitted(math.Vec2{}, math.Vec3Zero); emitted != math.Vec3Zero {
		t.Fatalf("expected zero emission from a Lambertian surface, got %+v", emitted)
	}
}

func TestLambertianBRDFIsAlbedoOverPi(t *testing.T) {
	albedo := math.Vec3{X: 0.9, Y: 0.4, Z: 0.1}
	mat := NewLambertian(ConstantTexture{Color: albedo})
	got := mat.BRDF(math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{X: 0, Y: 1, Z: 0}, math.Vec2{}, math.Vec3Zero)
	want := albedo.Div(math.Pi)
	if got != want {
		t.Fatalf("expected BRDF %+v, got %+v", want, got)
	}
}

func TestEmitterEmitsAndDoesNotScatter(t *testing.T) {
	color := math.Vec3{X: 2, Y: 2, Z: 2}
	mat := NewEmitter(ConstantTexture{Color: color})
	if !mat.Emits() {
		t.Fatal("an Emitter material must emit")
	}
	if mat.Scatter() {
		t.Fatal("an Emitter material must not scatter")
	}
	if emitted := mat.Emitted(math.Vec2{}, math.Vec3Zero); emitted != color {
		t.Fatalf("expected emission %+v, got %+v", color, emitted)
	}
}

func TestTransformProducesAnOrthonormalBasisAroundNormal(t *testing.T) {
	mat := NewLambertian(ConstantTexture{Color: math.Vec3One})
	normal := math.Vec3{X: 0, Y: 0, Z: 1}.Normalize()
	basis := mat.Transform(normal)

	// The local (0,1,0) axis must land on the surface normal once
	// rotated into world space.
	world := basis.MulVec3(math.Vec3{X: 0, Y: 1, Z: 0})
	d := world.Sub(normal)
	if d.Length() > 1e-4 {
		t.Fatalf("expected Transform to carry local up to the normal %+v, got %+v", normal, world)
	}
}
