// Package render implements the tile scheduler and the parallel
// sample-pass render driver: each pass partitions the frame into
// rectangles, distributes them round-robin across worker goroutines,
// and barriers twice — once after the tracing work, once after the
// display copy — before starting the next pass.
package render

// Rect is a pixel-space rectangle, clipped to the frame bounds by
// BuildTiles so no worker ever writes outside the buffer.
type Rect struct {
	X, Y, Width, Height int
}

// BuildTiles partitions [0,width)x[0,height) into tileW x tileH
// rectangles and distributes them round-robin across numWorkers
// queues, matching the original renderer's thread-distribution
// scheme: each worker gets its own ordered slice of rectangles, and
// the driver processes them one round at a time so every worker is
// busy on roughly the same amount of work per round.
func BuildTiles(width, height, tileW, tileH, numWorkers int) [][]Rect {
	queues := make([][]Rect, numWorkers)
	worker := 0
	for y := 0; y < height; y += tileH {
		for x := 0; x < width; x += tileW {
			w := tileW
			if x+w > width {
				w = width - x
			}
			h := tileH
			if y+h > height {
				h = height - y
			}
			queues[worker] = append(queues[worker], Rect{X: x, Y: y, Width: w, Height: h})
			worker = (worker + 1) % numWorkers
		}
	}
	return queues
}

// maxQueueLen returns the longest per-worker queue, i.e. the number
// of rounds the driver must run to drain every tile.
func maxQueueLen(queues [][]Rect) int {
	max := 0
	for _, q := range queues {
		if len(q) > max {
			max = len(q)
		}
	}
	return max
}
