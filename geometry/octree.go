package geometry

import (
	"sort"

	"pathtracer/core"
	"pathtracer/math"
)

// DefaultOctreeDepth and DefaultOctreeMaxLeafSize are the build
// parameters the scene loader uses for OctreeMesh entries: it derives
// each mesh's depth from its triangle count and caps it at
// DefaultOctreeDepth, and always passes DefaultOctreeMaxLeafSize (the
// scene grammar sets neither).
const (
	DefaultOctreeDepth       = 12
	DefaultOctreeMaxLeafSize = 8
)

// octreeNode is one node of the acceleration structure: either an
// internal node with 8 children, or a leaf holding the triangles that
// survived the build's overlap test against its bounding box.
type octreeNode struct {
	box       core.AABB
	children  [8]*octreeNode
	triangles []*Triangle
}

func buildOctreeNode(box core.AABB, triangles []*Triangle, depth, maxLeafSize int) *octreeNode {
	n := &octreeNode{box: box}
	if depth == 0 || len(triangles) <= maxLeafSize {
		if len(triangles) > 0 {
			n.triangles = append([]*Triangle(nil), triangles...)
		}
		return n
	}

	for octant := 0; octant < 8; octant++ {
		childBox := box.Octant(octant)
		var inside []*Triangle
		for _, t := range triangles {
			if t.IntersectsAABB(childBox) {
				inside = append(inside, t)
			}
		}
		n.children[octant] = buildOctreeNode(childBox, inside, depth-1, maxLeafSize)
	}
	return n
}

// intersect is the corrected traversal: unlike the code it is modeled
// on, it tracks the closest hit across every child it descends into
// (rather than returning on the first child that reports a hit) and
// tightens tmax to that closest distance both while gathering child
// entry points and while recursing into internal children. Sibling
// octants share faces and a triangle spanning the split plane can be
// present in more than one child's list, so a nearer hit can live in a
// later-sorted child than the first one that happens to report a hit.
func (n *octreeNode) intersect(r core.Ray, tmin, tmax float32, info *core.Intersection) bool {
	closestSoFar := tmax
	hitAnything := false

	if n.isLeaf() {
		for _, t := range n.triangles {
			if t.Intersect(r, tmin, closestSoFar, info) {
				closestSoFar = info.T
				hitAnything = true
			}
		}
		return hitAnything
	}

	type childEntry struct {
		t   float32
		idx int
	}
	var entries []childEntry
	for i, c := range n.children {
		if c == nil {
			continue
		}
		childTmin, _, ok := c.box.Intersect(r, tmin, closestSoFar)
		if !ok {
			continue
		}
		entries = append(entries, childEntry{t: childTmin, idx: i})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].t < entries[j].t })

	for _, e := range entries {
		if n.children[e.idx].intersect(r, tmin, closestSoFar, info) {
			closestSoFar = info.T
			hitAnything = true
		}
	}
	return hitAnything
}

func (n *octreeNode) isLeaf() bool {
	return n.children[0] == nil
}

// OctreeMesh is a triangle mesh accelerated by an octree built once at
// load time over the baked (world-space) triangle list.
type OctreeMesh struct {
	data *MeshData
	mat  core.Material
	root *octreeNode
}

func NewOctreeMesh(data *MeshData, mat core.Material, depth, maxLeafSize int) *OctreeMesh {
	triangles := make([]*Triangle, len(data.Triangles))
	for i := range data.Triangles {
		triangles[i] = &data.Triangles[i]
	}
	return &OctreeMesh{
		data: data,
		mat:  mat,
		root: buildOctreeNode(data.BoundingBox, triangles, depth, maxLeafSize),
	}
}

func (m *OctreeMesh) Material() core.Material { return m.mat }

func (m *OctreeMesh) Intersect(r core.Ray, tmin, tmax float32, info *core.Intersection) bool {
	rootTmin, rootTmax, ok := m.root.box.Intersect(r, tmin, tmax)
	if !ok {
		return false
	}
	if !m.root.intersect(r, rootTmin, rootTmax, info) {
		return false
	}
	info.Object = m
	return true
}

func (m *OctreeMesh) PDFValue(o, dir math.Vec3) float32 {
	return m.data.pdfValueToward(m.Intersect, o, dir)
}

func (m *OctreeMesh) Sample(o math.Vec3, rng core.Rand) math.Vec3 {
	return m.data.sampleDirectionToward(o, rng)
}
