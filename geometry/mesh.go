package geometry

import (
	"pathtracer/core"
	"pathtracer/math"
)

// Mesh is the brute-force triangle mesh: every intersect call walks
// the full triangle list. Used for small meshes, and as the
// correctness reference OctreeMesh is tested against.
type Mesh struct {
	data *MeshData
	mat  core.Material
}

func NewMesh(data *MeshData, mat core.Material) *Mesh {
	return &Mesh{data: data, mat: mat}
}

func (m *Mesh) Material() core.Material { return m.mat }

func (m *Mesh) Intersect(r core.Ray, tmin, tmax float32, info *core.Intersection) bool {
	if _, _, ok := m.data.BoundingBox.Intersect(r, tmin, tmax); !ok {
		return false
	}

	closest := tmax
	hitAny := false
	for i := range m.data.Triangles {
		if m.data.Triangles[i].Intersect(r, tmin, closest, info) {
			closest = info.T
			hitAny = true
		}
	}
	if hitAny {
		info.Object = m
	}
	return hitAny
}

func (m *Mesh) PDFValue(o, dir math.Vec3) float32 {
	return m.data.pdfValueToward(m.Intersect, o, dir)
}

func (m *Mesh) Sample(o math.Vec3, rng core.Rand) math.Vec3 {
	return m.data.sampleDirectionToward(o, rng)
}
