package geometry

import (
	"pathtracer/core"
	"pathtracer/math"
)

// MeshData owns the vertex and triangle buffers for a loaded mesh and
// bakes the scale -> rotate -> translate transform into every vertex
// once, at load time: positions are scaled then rotated then
// translated; normals are scaled by the inverse, rotated, then
// renormalized, so that non-uniform scaling does not skew them.
type MeshData struct {
	Vertices    []core.Vertex
	Triangles   []Triangle
	BoundingBox core.AABB
	TotalArea   float32
}

// Face is a triangle's vertex-index triple into the position/normal/uv
// slices passed to NewMeshData.
type Face struct {
	A, B, C int
}

// NewMeshData builds the baked vertex buffer and triangle list for a
// mesh loaded from a stream of raw positions, optional normals and
// optional uvs, plus the face index list. A nil normals slice
// triggers per-vertex normal accumulation from adjacent face normals,
// matching the smooth-shading path the original mesh-data loader
// supports alongside its explicit-normal path.
func NewMeshData(positions []math.Vec3, normals []math.Vec3, uvs []math.Vec2, faces []Face, position, rotation, scale math.Vec3) *MeshData {
	rot := math.Mat3RotationXYZ(rotation)
	scaleM := math.Mat3Scaling(scale)
	invScaleM := math.Mat3Scaling(math.Vec3{X: 1 / scale.X, Y: 1 / scale.Y, Z: 1 / scale.Z})

	vertices := make([]core.Vertex, len(positions))
	box := core.NewEmptyAABB()
	for i, p := range positions {
		pos := position.Add(rot.MulVec3(scaleM.MulVec3(p)))
		v := core.Vertex{Position: pos}
		if normals != nil {
			v.Normal = rot.MulVec3(invScaleM.MulVec3(normals[i])).Normalize()
		}
		if uvs != nil {
			v.UV = uvs[i]
		}
		vertices[i] = v
		box.AddPoint(pos)
	}
	box.UpdateCenterAndHalfSize()

	triangles := make([]Triangle, len(faces))
	var totalArea float32
	accumulate := normals == nil
	for i, f := range faces {
		tri := NewTriangle(&vertices[f.A], &vertices[f.B], &vertices[f.C])
		triangles[i] = tri
		totalArea += tri.Area
		if accumulate {
			vertices[f.A].Normal = vertices[f.A].Normal.Add(tri.FaceNormal)
			vertices[f.B].Normal = vertices[f.B].Normal.Add(tri.FaceNormal)
			vertices[f.C].Normal = vertices[f.C].Normal.Add(tri.FaceNormal)
		}
	}
	if accumulate {
		for i := range vertices {
			vertices[i].Normal = vertices[i].Normal.Normalize()
		}
	}

	return &MeshData{
		Vertices:    vertices,
		Triangles:   triangles,
		BoundingBox: box,
		TotalArea:   totalArea,
	}
}

// pickTriangle selects a face with probability proportional to its
// area (area-weighted importance sampling over the mesh surface) and
// returns its index.
func (m *MeshData) pickTriangle(u float32) int {
	target := u * m.TotalArea
	var running float32
	for i := range m.Triangles {
		running += m.Triangles[i].Area
		if target <= running {
			return i
		}
	}
	return len(m.Triangles) - 1
}

// sampleDirectionToward implements the area-sampling next-event
// fallback shared by Mesh and OctreeMesh: pick a triangle weighted by
// area, draw a barycentric point on it, and return the direction from
// o. Because picking is area-weighted and the in-triangle draw is
// uniform per unit area, the combined density over the whole mesh
// surface is exactly 1/TotalArea everywhere — so the solid-angle
// conversion below only needs the hit distance and its face normal.
func (m *MeshData) sampleDirectionToward(o math.Vec3, rng core.Rand) math.Vec3 {
	tri := &m.Triangles[m.pickTriangle(rng.Float32())]
	point := tri.RandomArea(rng.Float32(), rng.Float32())
	return point.Sub(o).Normalize()
}

func (m *MeshData) pdfValueToward(intersectFn func(r core.Ray, tmin, tmax float32, info *core.Intersection) bool, o, dir math.Vec3) float32 {
	var info core.Intersection
	if !intersectFn(core.Ray{Origin: o, Direction: dir}, math.Epsilon, math.Infinity, &info) {
		return 0
	}
	cosTheta := absf(info.Normal.Dot(dir))
	if cosTheta < math.Epsilon {
		return 0
	}
	distanceSqr := info.T * info.T * dir.LengthSqr()
	return distanceSqr / (cosTheta * m.TotalArea)
}
