package core

import "pathtracer/math"

// IntensityBuffer is a width x height array of linear-RGB triples,
// cleared to zero on creation. The render driver keeps three of these
// (direct, indirect, combined) partitioned across tiles so worker
// threads never write overlapping pixels within a sample pass.
type IntensityBuffer struct {
	Width, Height int
	pixels        []math.Vec3
}

func NewIntensityBuffer(width, height int) *IntensityBuffer {
	return &IntensityBuffer{
		Width:  width,
		Height: height,
		pixels: make([]math.Vec3, width*height),
	}
}

func (b *IntensityBuffer) index(x, y int) int {
	return y*b.Width + x
}

func (b *IntensityBuffer) At(x, y int) math.Vec3 {
	return b.pixels[b.index(x, y)]
}

func (b *IntensityBuffer) Set(x, y int, v math.Vec3) {
	b.pixels[b.index(x, y)] = v
}

// Add accumulates v into the pixel at (x, y).
func (b *IntensityBuffer) Add(x, y int, v math.Vec3) {
	i := b.index(x, y)
	b.pixels[i] = b.pixels[i].Add(v)
}

// Scale multiplies every pixel by s in place.
func (b *IntensityBuffer) Scale(s float32) {
	for i := range b.pixels {
		b.pixels[i] = b.pixels[i].Mul(s)
	}
}
