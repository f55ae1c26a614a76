// Package filter implements the two 3x3 post-filters applied to the
// indirect-illumination buffer before it is recombined with the
// direct buffer for display: an edge-preserving low-pass and a
// per-channel median. Both read from a source buffer and write into a
// distinct destination, never mutating the source in place.
package filter

import (
	"sort"

	"pathtracer/core"
	"pathtracer/math"
)

var lowPassKernel = [3][3]float32{
	{1.0 / 16, 2.0 / 16, 1.0 / 16},
	{2.0 / 16, 4.0 / 16, 2.0 / 16},
	{1.0 / 16, 2.0 / 16, 1.0 / 16},
}

// LowPass applies the 3x3 Gaussian-like kernel [[1,2,1],[2,4,2],[1,2,1]]/16
// with clamped boundary sampling, writing the result into dst.
func LowPass(src, dst *core.IntensityBuffer) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			var sum math.Vec3
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					sample := src.At(clampInt(x+kx, 0, src.Width-1), clampInt(y+ky, 0, src.Height-1))
					weight := lowPassKernel[ky+1][kx+1]
					sum = sum.Add(sample.Mul(weight))
				}
			}
			dst.Set(x, y, sum)
		}
	}
}

// Median applies a per-channel 3x3 median filter (the 5th of the 9
// clamped-boundary samples, sorted independently per channel),
// writing the result into dst.
func Median(src, dst *core.IntensityBuffer) {
	var rs, gs, bs [9]float32
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			i := 0
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					sample := src.At(clampInt(x+kx, 0, src.Width-1), clampInt(y+ky, 0, src.Height-1))
					rs[i], gs[i], bs[i] = sample.X, sample.Y, sample.Z
					i++
				}
			}
			sort.Slice(rs[:], func(a, b int) bool { return rs[a] < rs[b] })
			sort.Slice(gs[:], func(a, b int) bool { return gs[a] < gs[b] })
			sort.Slice(bs[:], func(a, b int) bool { return bs[a] < bs[b] })
			dst.Set(x, y, math.Vec3{X: rs[4], Y: gs[4], Z: bs[4]})
		}
	}
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
