// Package materials implements the two closed material variants the
// integrator understands — Lambertian and Emitter — plus the texture
// abstraction both reference for their color.
package materials

import (
	"pathtracer/math"
	"pathtracer/sampling"
)

// Texture resolves a surface color from UV coordinates and world
// position. Image-backed and constant textures both implement it.
type Texture interface {
	Value(uv math.Vec2, p math.Vec3) math.Vec3
}

// ConstantTexture returns the same color everywhere.
type ConstantTexture struct {
	Color math.Vec3
}

func (t ConstantTexture) Value(math.Vec2, math.Vec3) math.Vec3 {
	return t.Color
}

// Material is a tagged variant: Lambertian or Emitter. There is no
// third case, so a closed sum type (rather than an interface
// hierarchy) models it directly. Both variants carry a PDF, used only
// to build the local-to-world transform around the surface normal
// when the integrator rotates a generated bounce direction into
// place; the distribution itself is fixed (cosine-weighted) and owned
// by the integrator, not by the material.
type Material struct {
	emits bool
	tex   Texture
	pdf   sampling.PDF
}

func NewLambertian(tex Texture) *Material {
	return &Material{emits: false, tex: tex, pdf: sampling.CosineWeightedHemispherePDF{}}
}

func NewEmitter(tex Texture) *Material {
	return &Material{emits: true, tex: tex, pdf: sampling.CosineWeightedHemispherePDF{}}
}

// Transform returns the local-to-world rotation around normal that a
// bounce direction generated in the canonical (0,1,0) frame must pass
// through before it is used as a world-space ray direction.
func (m *Material) Transform(normal math.Vec3) math.Mat3 {
	return m.pdf.Transform(normal)
}

func (m *Material) Emits() bool {
	return m.emits
}

// Emitted returns the radiance leaving the surface at uv/p. Zero for
// Lambertian surfaces.
func (m *Material) Emitted(uv math.Vec2, p math.Vec3) math.Vec3 {
	if !m.emits {
		return math.Vec3Zero
	}
	return m.tex.Value(uv, p)
}

// Scatter reports whether a path continues past this material. False
// for emitters: the path terminates there (its contribution having
// already been captured by next-event estimation at the previous
// vertex, or added directly when the primary ray hits it).
func (m *Material) Scatter() bool {
	return !m.emits
}

// BRDF is albedo/pi for Lambertian surfaces and irrelevant (returns 1)
// for emitters, which never scatter.
func (m *Material) BRDF(in, out math.Vec3, uv math.Vec2, p math.Vec3) math.Vec3 {
	if m.emits {
		return math.Vec3One
	}
	return m.tex.Value(uv, p).Div(math.Pi)
}
