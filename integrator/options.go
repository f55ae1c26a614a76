// Package integrator implements the unidirectional path tracer: next-
// event estimation at every scattering hit plus a cosine-weighted,
// Russian-roulette-terminated bounce loop.
package integrator

// RussianRoulette holds the survival-probability clamp and
// multiplier: p = clamp(MulFactor * max(throughput), MinP, MaxP).
type RussianRoulette struct {
	MinP, MaxP, MulFactor float32
}

func DefaultRussianRoulette() RussianRoulette {
	return RussianRoulette{MinP: 0, MaxP: 1, MulFactor: 2}
}

// Options collects the per-ray integrator parameters that the render
// driver threads through every CastRay call; everything here is
// configuration, never mutated during a render.
type Options struct {
	Bounces         int
	ShadowRays      int
	RussianRoulette RussianRoulette
}
