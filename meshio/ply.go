// Package meshio implements the minimal ASCII-PLY mesh reader the
// scene loader consumes: a stream of (x,y,z) vertex records followed
// by triangular face index triples, per spec. Binary PLY and any
// vertex property besides position (normals, per-vertex color, uv)
// are out of scope — normals are always recomputed by accumulation in
// geometry.NewMeshData, matching the smooth-shading path the loader
// takes for meshes with no baked-in normal data.
package meshio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"pathtracer/geometry"
	"pathtracer/math"
)

// LoadPLY reads the ASCII-PLY file at path and returns the baked mesh
// data, applying the scale -> rotate -> translate transform via
// geometry.NewMeshData.
func LoadPLY(path string, position, rotation, scale math.Vec3) (*geometry.MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: opening %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	header, err := parseHeader(scanner)
	if err != nil {
		return nil, fmt.Errorf("meshio: %q: %w", path, err)
	}

	positions, err := readVertices(scanner, header)
	if err != nil {
		return nil, fmt.Errorf("meshio: %q: %w", path, err)
	}

	faces, err := readFaces(scanner, header)
	if err != nil {
		return nil, fmt.Errorf("meshio: %q: %w", path, err)
	}

	return geometry.NewMeshData(positions, nil, nil, faces, position, rotation, scale), nil
}

// plyHeader records only what LoadPLY needs to stream the body: the
// vertex and face counts, and which vertex property column holds x,
// y and z (other properties — normals, color, uv — are skipped).
type plyHeader struct {
	vertexCount   int
	faceCount     int
	xIndex        int
	yIndex        int
	zIndex        int
	vertexPropLen int
}

func parseHeader(scanner *bufio.Scanner) (*plyHeader, error) {
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "ply" {
		return nil, fmt.Errorf("missing \"ply\" magic line")
	}

	h := &plyHeader{xIndex: -1, yIndex: -1, zIndex: -1}
	currentElement := ""
	formatSeen := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "comment") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "format":
			if len(fields) < 2 || fields[1] != "ascii" {
				return nil, fmt.Errorf("unsupported PLY format %q (only ascii is supported)", line)
			}
			formatSeen = true
		case "element":
			if len(fields) != 3 {
				return nil, fmt.Errorf("malformed element line %q", line)
			}
			count, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("malformed element count %q", line)
			}
			currentElement = fields[1]
			switch currentElement {
			case "vertex":
				h.vertexCount = count
			case "face":
				h.faceCount = count
			}
		case "property":
			if currentElement == "vertex" {
				if len(fields) != 3 {
					return nil, fmt.Errorf("malformed vertex property %q", line)
				}
				name := fields[2]
				switch name {
				case "x":
					h.xIndex = h.vertexPropLen
				case "y":
					h.yIndex = h.vertexPropLen
				case "z":
					h.zIndex = h.vertexPropLen
				}
				h.vertexPropLen++
			}
		case "end_header":
			if !formatSeen {
				return nil, fmt.Errorf("missing format line before end_header")
			}
			if h.xIndex < 0 || h.yIndex < 0 || h.zIndex < 0 {
				return nil, fmt.Errorf("vertex element is missing an x, y or z property")
			}
			return h, nil
		}
	}
	return nil, fmt.Errorf("missing end_header")
}

func readVertices(scanner *bufio.Scanner, h *plyHeader) ([]math.Vec3, error) {
	positions := make([]math.Vec3, 0, h.vertexCount)
	for i := 0; i < h.vertexCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("truncated vertex list: expected %d, got %d", h.vertexCount, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < h.vertexPropLen {
			return nil, fmt.Errorf("malformed vertex line %q", scanner.Text())
		}
		x, errX := strconv.ParseFloat(fields[h.xIndex], 32)
		y, errY := strconv.ParseFloat(fields[h.yIndex], 32)
		z, errZ := strconv.ParseFloat(fields[h.zIndex], 32)
		if errX != nil || errY != nil || errZ != nil {
			return nil, fmt.Errorf("malformed vertex coordinates %q", scanner.Text())
		}
		positions = append(positions, math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)})
	}
	return positions, nil
}

func readFaces(scanner *bufio.Scanner, h *plyHeader) ([]geometry.Face, error) {
	faces := make([]geometry.Face, 0, h.faceCount)
	for i := 0; i < h.faceCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("truncated face list: expected %d, got %d", h.faceCount, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 1 {
			return nil, fmt.Errorf("empty face line")
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 3 || len(fields) != n+1 {
			return nil, fmt.Errorf("malformed face line %q", scanner.Text())
		}
		indices := make([]int, n)
		for j := 0; j < n; j++ {
			idx, err := strconv.Atoi(fields[j+1])
			if err != nil {
				return nil, fmt.Errorf("malformed face index %q", scanner.Text())
			}
			indices[j] = idx
		}
		// Fan-triangulate faces with more than three vertices.
		for k := 2; k < n; k++ {
			faces = append(faces, geometry.Face{A: indices[0], B: indices[k-1], C: indices[k]})
		}
	}
	return faces, nil
}
