package integrator

import (
	"pathtracer/core"
	"pathtracer/math"
	"pathtracer/sampling"
	"pathtracer/scene"
)

// CastRay traces a single primary ray through scn and returns the
// (indirect, direct) radiance pair the render driver accumulates into
// its two separable buffers.
//
// The hit loop is written so next-event estimation runs exactly once
// per scattering hit, including the primary one — a single shared
// code path, distinguished only by which buffer (direct for the first
// hit, indirect thereafter) receives the result. The original this is
// modeled on ran next-event estimation for the primary hit twice: once
// in a block before its bounce loop, and again inside the loop's first
// iteration, which operated on the same unadvanced hit. Unifying the
// two into one pass removes that double count.
func CastRay(r core.Ray, scn *scene.Scene, opts Options, rng *sampling.RNG) (indirect, direct math.Vec3) {
	var info core.Intersection
	if !scn.Intersect(r, math.Epsilon, math.Infinity, &info) {
		direct = scn.Background.Value(r)
		return math.Vec3Zero, direct
	}

	throughput := math.Vec3One
	isPrimary := true

	for bounce := 0; bounce < opts.Bounces; bounce++ {
		mat := info.Object.Material()
		emitted := mat.Emitted(info.UV, info.Position)

		if !mat.Scatter() {
			if isPrimary {
				direct = direct.Add(emitted)
			}
			// A non-primary hit landing directly on an emitter
			// contributes nothing here: its radiance was already
			// captured by the next-event step at the previous hit.
			return indirect, direct
		}

		ld := sampleDirectLighting(scn, info, r.Direction, opts, rng)
		if isPrimary {
			direct = direct.Add(emitted).Add(ld)
		} else {
			indirect = indirect.Add(throughput.MulVec(ld))
		}
		isPrimary = false

		p := clamp(opts.RussianRoulette.MulFactor*throughput.MaxComponent(), opts.RussianRoulette.MinP, opts.RussianRoulette.MaxP)
		if rng.Float32() >= p {
			return indirect, direct
		}
		throughput = throughput.Div(p)

		local := sampling.CosineWeightedHemisphere(rng.Float32(), rng.Float32())
		direction := mat.Transform(info.Normal).MulVec3(local)
		cosDN := info.Normal.Dot(direction)
		if cosDN <= 0 {
			return indirect, direct
		}
		pdfValue := sampling.CosineWeightedHemispherePDFValue(local)
		brdf := mat.BRDF(r.Direction, direction, info.UV, info.Position)
		throughput = throughput.MulVec(brdf.Mul(cosDN / pdfValue))

		nextRay := core.Ray{Origin: info.Position.Add(info.Normal.Mul(math.Epsilon)), Direction: direction}
		var nextInfo core.Intersection
		if !scn.Intersect(nextRay, math.Epsilon, math.Infinity, &nextInfo) {
			indirect = indirect.Add(scn.Background.Value(nextRay).MulVec(throughput))
			return indirect, direct
		}
		r = nextRay
		info = nextInfo
	}

	return indirect, direct
}

// sampleDirectLighting casts opts.ShadowRays shadow rays at every
// emitter in the scene and returns the averaged next-event estimate
// L_d at the given hit, not yet scaled by throughput.
func sampleDirectLighting(scn *scene.Scene, info core.Intersection, incoming math.Vec3, opts Options, rng *sampling.RNG) math.Vec3 {
	ld := math.Vec3Zero
	castCount := 0

	for _, emitter := range scn.Emitters {
		for j := 0; j < opts.ShadowRays; j++ {
			direction := emitter.Sample(info.Position, rng)
			pdfValue := emitter.PDFValue(info.Position, direction)
			if pdfValue <= 0 {
				continue
			}

			cosLDN := info.Normal.Dot(direction)
			if cosLDN <= 0 {
				continue
			}

			shadowRay := core.Ray{Origin: info.Position.Add(info.Normal.Mul(math.Epsilon)), Direction: direction}
			var shadowInfo core.Intersection
			scn.Intersect(shadowRay, math.Epsilon, math.Infinity, &shadowInfo)
			castCount++

			if shadowInfo.Object != emitter {
				continue
			}

			emitted := shadowInfo.Object.Material().Emitted(shadowInfo.UV, shadowInfo.Position)
			brdf := info.Object.Material().BRDF(incoming, direction, info.UV, info.Position)
			ld = ld.Add(emitted.MulVec(brdf).Mul(cosLDN / pdfValue))
		}
	}

	if castCount > 0 {
		ld = ld.Div(float32(castCount))
	}
	return ld
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
