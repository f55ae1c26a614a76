package scene

import "pathtracer/core"

// Scene is a flat object list. Intersect is a linear search over it:
// any per-object acceleration (the octree mesh in package geometry)
// is internal to that object, not the scene's concern.
type Scene struct {
	Objects    []core.Object
	Emitters   []core.Object
	Background Background
}

func NewScene(background Background) *Scene {
	return &Scene{Background: background}
}

// Add registers an object, indexing it as an emitter too if its
// material emits.
func (s *Scene) Add(o core.Object) {
	s.Objects = append(s.Objects, o)
	if o.Material().Emits() {
		s.Emitters = append(s.Emitters, o)
	}
}

// Intersect finds the closest hit among every object, tightening tmax
// as each closer hit is found.
func (s *Scene) Intersect(r core.Ray, tmin, tmax float32, info *core.Intersection) bool {
	closest := tmax
	hitAnything := false
	for _, o := range s.Objects {
		if o.Intersect(r, tmin, closest, info) {
			closest = info.T
			hitAnything = true
		}
	}
	return hitAnything
}
