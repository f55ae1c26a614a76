package sceneio

import (
	"fmt"
	stdmath "math"
	"os"
	"path/filepath"

	"pathtracer/geometry"
	"pathtracer/materials"
	"pathtracer/meshio"
	"pathtracer/scene"
	"pathtracer/textures"
)

// octreeMaxElements matches the original loader's fixed leaf-size
// target; the per-mesh depth is derived from it rather than hardcoded.
const octreeMaxElements = 40

// Load parses and validates the scene file at path, resolves every
// literal against disk (textures, mesh data) and in-memory
// constructors (materials, lights, meshes), and returns a ready
// scene.Scene and its camera. aspectRatio and fovDegrees come from the
// render configuration, not the scene file: the grammar's Camera
// statement only fixes position, target and up. background is also a
// render-configuration concern rather than a grammar literal, matching
// the original loader, which takes the sky color as a constructor
// argument rather than a scene-file statement.
func Load(path string, aspectRatio, fovDegrees float32, background scene.Background) (*scene.Scene, scene.Camera, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, scene.Camera{}, fmt.Errorf("sceneio: opening %q: %w", path, err)
	}
	defer f.Close()

	doc, errs := Parse(f)
	if len(errs) > 0 {
		return nil, scene.Camera{}, joinErrors(path, errs)
	}
	if errs := doc.Validate(); len(errs) > 0 {
		return nil, scene.Camera{}, joinErrors(path, errs)
	}
	if doc.Camera == nil {
		return nil, scene.Camera{}, fmt.Errorf("sceneio: %q: no Camera statement", path)
	}

	dir := filepath.Dir(path)

	loadedTextures, err := loadTextures(doc, dir)
	if err != nil {
		return nil, scene.Camera{}, err
	}

	loadedMeshData, err := loadMeshData(doc, dir)
	if err != nil {
		return nil, scene.Camera{}, err
	}

	for name, rec := range doc.ConstantTextures {
		loadedTextures[name] = materials.ConstantTexture{Color: rec.Color}
	}

	loadedMaterials := make(map[string]*materials.Material, len(doc.Lambertians))
	for name, rec := range doc.Lambertians {
		loadedMaterials[name] = materials.NewLambertian(loadedTextures[rec.TextureLiteral])
	}

	scn := scene.NewScene(background)

	for _, light := range doc.Lights {
		emitter := materials.NewEmitter(loadedTextures[light.TextureLiteral])
		scn.Add(geometry.NewSphere(light.Position, light.Radius, emitter))
	}

	for _, m := range doc.Meshes {
		mat, ok := loadedMaterials[m.MaterialLiteral]
		if !ok {
			return nil, scene.Camera{}, fmt.Errorf("sceneio: %q: line %d: %q is not a Lambertian material literal", path, m.Line, m.MaterialLiteral)
		}
		scn.Add(geometry.NewMesh(loadedMeshData[m.MeshDataLiteral], mat))
	}

	for _, m := range doc.OctreeMeshes {
		mat, ok := loadedMaterials[m.MaterialLiteral]
		if !ok {
			return nil, scene.Camera{}, fmt.Errorf("sceneio: %q: line %d: %q is not a Lambertian material literal", path, m.Line, m.MaterialLiteral)
		}
		data := loadedMeshData[m.MeshDataLiteral]
		depth := octreeDepth(len(data.Triangles))
		scn.Add(geometry.NewOctreeMesh(data, mat, depth, geometry.DefaultOctreeMaxLeafSize))
	}

	cam := scene.NewCamera(doc.Camera.Position, doc.Camera.Target, doc.Camera.Up, aspectRatio, fovDegrees)
	return scn, cam, nil
}

// octreeDepth mirrors the original scene loader's heuristic: pick the
// shallowest depth whose expected leaf population (triangleCount / 8^depth)
// is at or below octreeMaxElements, clamped to the package default.
func octreeDepth(triangleCount int) int {
	if triangleCount <= octreeMaxElements {
		return 1
	}
	depth := int(stdmath.Ceil(stdmath.Log(float64(triangleCount)/float64(octreeMaxElements)) / stdmath.Log(8)))
	if depth < 1 {
		depth = 1
	}
	if depth > geometry.DefaultOctreeDepth {
		depth = geometry.DefaultOctreeDepth
	}
	return depth
}

func loadTextures(doc *Document, dir string) (map[string]materials.Texture, error) {
	out := make(map[string]materials.Texture, len(doc.ImageTextures))
	for name, rec := range doc.ImageTextures {
		tex, err := textures.LoadImageTexture(filepath.Join(dir, rec.Filename), rec.Tint)
		if err != nil {
			return nil, fmt.Errorf("sceneio: line %d: %w", rec.Line, err)
		}
		out[name] = tex
	}
	return out, nil
}

func loadMeshData(doc *Document, dir string) (map[string]*geometry.MeshData, error) {
	out := make(map[string]*geometry.MeshData, len(doc.MeshData))
	for name, rec := range doc.MeshData {
		data, err := meshio.LoadPLY(filepath.Join(dir, rec.Filename), rec.Position, rec.Rotation, rec.Scale)
		if err != nil {
			return nil, fmt.Errorf("sceneio: line %d: %w", rec.Line, err)
		}
		out[name] = data
	}
	return out, nil
}

func joinErrors(path string, errs []error) error {
	msg := fmt.Sprintf("sceneio: %q:", path)
	for _, e := range errs {
		msg += "\n  " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
