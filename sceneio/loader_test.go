package sceneio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathtracer/geometry"
	"pathtracer/math"
	"pathtracer/scene"
)

var testBackground = scene.GradientBackground{Down: math.Vec3One, Up: math.Vec3{X: 0.5, Y: 0.7, Z: 1.0}}

const testTriangle = `ply
format ascii 1.0
element vertex 3
property float x
property float y
property float z
element face 1
property list uchar int vertex_indices
end_header
-1 -1 0
1 -1 0
0 1 0
3 0 1 2
`

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
}

func TestLoadAssemblesSceneWithMeshAndLight(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tri.ply", testTriangle)
	writeFile(t, dir, "scene.txt", `red 1 0 0
wall Lambertian red
bunnydata "tri.ply" 0 0 0 0 0 0 1 1 1
Mesh bunnydata wall
sun 1 1 1
Light 0 5 0 1 sun
Camera 0 0 -5 0 0 0 0 1 0
`)

	scn, cam, err := Load(filepath.Join(dir, "scene.txt"), 1.0, 60, testBackground)
	require.NoError(t, err)
	assert.Len(t, scn.Objects, 2)
	assert.Len(t, scn.Emitters, 1)
	// The camera should point down +Z from z=-5 per the NDC ray at (0,0).
	ray := cam.Ray(0, 0)
	assert.Greater(t, ray.Direction.Z, float32(0))
}

func TestLoadUsesTheGivenBackground(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "scene.txt", "Camera 0 0 -5 0 0 0 0 1 0\n")

	bg := scene.ConstantBackground{Color: math.Vec3{X: 0, Y: 0, Z: 0}}
	scn, _, err := Load(filepath.Join(dir, "scene.txt"), 1.0, 60, bg)
	require.NoError(t, err)
	assert.Equal(t, bg, scn.Background)
}

func TestLoadWithOctreeMesh(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tri.ply", testTriangle)
	writeFile(t, dir, "scene.txt", `white 1 1 1
wall Lambertian white
bunnydata "tri.ply" 0 0 0 0 0 0 1 1 1
OctreeMesh bunnydata wall
Camera 0 0 -5 0 0 0 0 1 0
`)

	scn, _, err := Load(filepath.Join(dir, "scene.txt"), 1.0, 60, testBackground)
	require.NoError(t, err)
	require.Len(t, scn.Objects, 1)
}

func TestLoadReportsUndefinedLiteralWithLineNumber(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "scene.txt", `Mesh bunnydata wall
Camera 0 0 -5 0 0 0 0 1 0
`)

	_, _, err := Load(filepath.Join(dir, "scene.txt"), 1.0, 60, testBackground)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), "bunnydata")
}

func TestLoadRequiresACameraStatement(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "scene.txt", "red 1 0 0\n")

	_, _, err := Load(filepath.Join(dir, "scene.txt"), 1.0, 60, testBackground)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Camera statement")
}

func TestLoadMissingSceneFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.txt"), 1.0, 60, testBackground)
	require.Error(t, err)
}

func TestOctreeDepthHeuristic(t *testing.T) {
	assert.Equal(t, 1, octreeDepth(10))
	assert.Equal(t, 1, octreeDepth(octreeMaxElements))
	assert.Greater(t, octreeDepth(octreeMaxElements*100), 1)
	assert.LessOrEqual(t, octreeDepth(1_000_000_000), geometry.DefaultOctreeDepth)
}
