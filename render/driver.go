package render

import (
	"sync"

	"pathtracer/core"
	"pathtracer/filter"
	"pathtracer/integrator"
	"pathtracer/math"
	"pathtracer/sampling"
	"pathtracer/scene"
)

// Display is the optional live-preview collaborator: a window that
// can show the in-progress combined buffer and report when the user
// has asked to stop early. A nil Display just renders to completion.
type Display interface {
	ShouldClose() bool
	Present(combined *core.IntensityBuffer, samples int)
}

// Options configures a render: frame size, tiling and thread count,
// sample budget, and the integrator parameters threaded through every
// ray cast.
type Options struct {
	Width, Height         int
	TileWidth, TileHeight int
	NumWorkers            int
	Samples               int
	Integrator            integrator.Options
}

// Result holds the three separable buffers plus the final,
// filtered-and-tonemapped image ready for display or encoding.
type Result struct {
	Direct, Indirect *core.IntensityBuffer
	Final            *core.IntensityBuffer
	SamplesTaken     int
}

// Render runs the tiled sample-pass loop: each pass partitions the
// frame into rectangles (package-level BuildTiles), dispatches one
// goroutine per ready tile, barriers, then barriers again after
// handing the pass to display — so a worker never starts pass N+1
// before every worker has finished presenting pass N.
func Render(cam scene.Camera, scn *scene.Scene, opts Options, display Display) Result {
	w, h := opts.Width, opts.Height
	direct := core.NewIntensityBuffer(w, h)
	indirect := core.NewIntensityBuffer(w, h)
	combined := core.NewIntensityBuffer(w, h)

	queues := BuildTiles(w, h, opts.TileWidth, opts.TileHeight, opts.NumWorkers)
	rounds := maxQueueLen(queues)

	samplesTaken := 0
stopped:
	for pass := 1; pass <= opts.Samples; pass++ {
		for round := 0; round < rounds; round++ {
			var wg sync.WaitGroup
			for worker, queue := range queues {
				if round >= len(queue) {
					continue
				}
				tile := queue[round]
				tileID := round*opts.NumWorkers + worker
				wg.Add(1)
				go func(worker, tileID int, tile Rect) {
					defer wg.Done()
					rng := sampling.NewRNG(pass, tileID, worker)
					renderTile(tile, cam, scn, opts.Integrator, rng, direct, indirect, combined, w, h)
				}(worker, tileID, tile)
			}
			wg.Wait()

			if display != nil {
				preview := previewSnapshot(combined, pass, w, h)
				var wg2 sync.WaitGroup
				for _, queue := range queues {
					if round >= len(queue) {
						continue
					}
					tile := queue[round]
					wg2.Add(1)
					go func(tile Rect) {
						defer wg2.Done()
						presentTile(display, preview, tile, pass)
					}(tile)
				}
				wg2.Wait()
			}

			if display != nil && display.ShouldClose() {
				samplesTaken = pass
				break stopped
			}
		}
		samplesTaken = pass
	}

	return finalize(direct, indirect, samplesTaken, w, h)
}

func renderTile(tile Rect, cam scene.Camera, scn *scene.Scene, opts integrator.Options, rng *sampling.RNG, direct, indirect, combined *core.IntensityBuffer, width, height int) {
	for y := tile.Y; y < tile.Y+tile.Height; y++ {
		for x := tile.X; x < tile.X+tile.Width; x++ {
			ndcX := 2*(float32(x)+rng.Float32())/float32(width) - 1
			ndcY := 1 - 2*(float32(y)+rng.Float32())/float32(height)

			ray := cam.Ray(ndcX, ndcY)
			ind, dir := integrator.CastRay(ray, scn, opts, rng)

			direct.Add(x, y, dir)
			indirect.Add(x, y, ind)
			combined.Set(x, y, direct.At(x, y).Add(indirect.At(x, y)))
		}
	}
}

// previewSnapshot divides the raw accumulated buffer by the samples
// taken so far, gamma corrects and clamps it, mirroring the original
// renderer's copyArrayToBmp: the live preview needs the same
// per-sample normalization as the final image, not the raw sum.
func previewSnapshot(combined *core.IntensityBuffer, pass, width, height int) *core.IntensityBuffer {
	snapshot := core.NewIntensityBuffer(width, height)
	invPass := 1 / float32(pass)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := combined.At(x, y).Mul(invPass)
			c = math.Clamp3(math.Pow3(math.ScrubNaN(c), 1/2.2), math.Vec3Zero, math.Vec3One)
			snapshot.Set(x, y, c)
		}
	}
	return snapshot
}

// presentTile is a seam for the display collaborator; a real Display
// implementation only needs the whole-buffer Present call, so the
// tile argument is informational — kept so a future incremental-blit
// display can narrow the copy to just what changed this round.
func presentTile(display Display, combined *core.IntensityBuffer, tile Rect, pass int) {
	_ = tile
	display.Present(combined, pass)
}

// finalize applies the median filter to the indirect buffer, adds the
// (unfiltered) direct buffer, divides by the sample count and gamma
// corrects. The code this is modeled on computed exactly this
// filtered sum but then displayed the raw, unfiltered accumulated
// buffer instead of it — every caller here gets the filtered result.
func finalize(direct, indirect *core.IntensityBuffer, samples, width, height int) Result {
	filteredIndirect := core.NewIntensityBuffer(width, height)
	filter.Median(indirect, filteredIndirect)

	final := core.NewIntensityBuffer(width, height)
	invSamples := float32(1)
	if samples > 0 {
		invSamples = 1 / float32(samples)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sum := filteredIndirect.At(x, y).Add(direct.At(x, y)).Mul(invSamples)
			sum = math.Clamp3(math.Pow3(math.ScrubNaN(sum), 1/2.2), math.Vec3Zero, math.Vec3One)
			final.Set(x, y, sum)
		}
	}

	return Result{Direct: direct, Indirect: indirect, Final: final, SamplesTaken: samples}
}
