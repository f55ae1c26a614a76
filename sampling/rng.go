// Package sampling implements the uniform draw source, the hemisphere
// and cone sample generators, and the PDF capability set used for
// next-event estimation and cosine-weighted indirect bounces.
package sampling

import "math/rand"

// RNG wraps a single *rand.Rand. The render driver constructs a fresh
// one inside each tile goroutine, for every (pass, tile, worker): a
// shared generator across goroutines is both a correctness hazard
// (non-atomic internal state) and a contention bottleneck, so no
// instance is ever used by more than one goroutine.
type RNG struct {
	r *rand.Rand
}

// NewRNG seeds a worker's generator deterministically from
// (pass, tile, worker) so a render is reproducible given the same
// tile assignment and sample count.
func NewRNG(pass, tile, worker int) *RNG {
	seed := int64(pass)*1_000_003 + int64(tile)*9_973 + int64(worker)
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Float32 draws a uniform value in [0, 1).
func (g *RNG) Float32() float32 {
	return g.r.Float32()
}
