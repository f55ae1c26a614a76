package sceneio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCameraStatement(t *testing.T) {
	src := `Camera 0 0 -5 0 0 0 0 1 0`
	doc, errs := Parse(strings.NewReader(src))
	require.Empty(t, errs)
	require.NotNil(t, doc.Camera)
	assert.Equal(t, float32(-5), doc.Camera.Position.Z)
	assert.Equal(t, float32(1), doc.Camera.Up.Y)
}

func TestParseCameraWrongArgCount(t *testing.T) {
	doc, errs := Parse(strings.NewReader("Camera 0 0 0"))
	require.Len(t, errs, 1)
	assert.Nil(t, doc.Camera)
	assert.Contains(t, errs[0].Error(), "Camera command accepts 9 arguments")
}

func TestParseDefaultIsAlwaysAnError(t *testing.T) {
	_, errs := Parse(strings.NewReader("Default 1 2 3"))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Default can only be used as an argument")
}

func TestParseConstantTextureLiteral(t *testing.T) {
	doc, errs := Parse(strings.NewReader("red 1 0 0"))
	require.Empty(t, errs)
	rec, ok := doc.ConstantTextures["red"]
	require.True(t, ok)
	assert.Equal(t, float32(1), rec.Color.X)
}

func TestParseImageTextureLiteral(t *testing.T) {
	doc, errs := Parse(strings.NewReader(`wood "wood.png" 1 1 1`))
	require.Empty(t, errs)
	rec, ok := doc.ImageTextures["wood"]
	require.True(t, ok)
	assert.Equal(t, "wood.png", rec.Filename)
}

func TestParseMeshDataLiteral(t *testing.T) {
	doc, errs := Parse(strings.NewReader(`bunny "bunny.ply" 0 0 0 0 0 0 1 1 1`))
	require.Empty(t, errs)
	rec, ok := doc.MeshData["bunny"]
	require.True(t, ok)
	assert.Equal(t, "bunny.ply", rec.Filename)
	assert.Equal(t, float32(1), rec.Scale.X)
}

func TestParseLambertianLiteral(t *testing.T) {
	doc, errs := Parse(strings.NewReader("wall Lambertian red"))
	require.Empty(t, errs)
	rec, ok := doc.Lambertians["wall"]
	require.True(t, ok)
	assert.Equal(t, "red", rec.TextureLiteral)
}

func TestParseLiteralRedefinitionIsAnError(t *testing.T) {
	src := "red 1 0 0\nred 0 1 0\n"
	_, errs := Parse(strings.NewReader(src))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "redefinition")
	var pe *ParseError
	require.ErrorAs(t, errs[0], &pe)
	assert.Equal(t, 2, pe.Line)
}

func TestParseMeshAndOctreeMeshStatements(t *testing.T) {
	src := "Mesh bunnydata wall\nOctreeMesh bunnydata wall\n"
	doc, errs := Parse(strings.NewReader(src))
	require.Empty(t, errs)
	require.Len(t, doc.Meshes, 1)
	require.Len(t, doc.OctreeMeshes, 1)
	assert.Equal(t, "bunnydata", doc.Meshes[0].MeshDataLiteral)
}

func TestParseLightStatement(t *testing.T) {
	doc, errs := Parse(strings.NewReader("Light 0 5 0 0.5 sun"))
	require.Empty(t, errs)
	require.Len(t, doc.Lights, 1)
	assert.Equal(t, float32(0.5), doc.Lights[0].Radius)
	assert.Equal(t, "sun", doc.Lights[0].TextureLiteral)
}

func TestValidateReportsMissingDependencies(t *testing.T) {
	src := "Mesh bunnydata wall\n"
	doc, errs := Parse(strings.NewReader(src))
	require.Empty(t, errs)

	errs = doc.Validate()
	require.Len(t, errs, 2)

	var pe *ParseError
	require.ErrorAs(t, errs[0], &pe)
	assert.Equal(t, 1, pe.Line)
}

func TestValidatePassesWhenEveryDependencyIsDeclared(t *testing.T) {
	src := "bunnydata \"bunny.ply\" 0 0 0 0 0 0 1 1 1\nred 1 0 0\nwall Lambertian red\nMesh bunnydata wall\n"
	doc, errs := Parse(strings.NewReader(src))
	require.Empty(t, errs)
	assert.Empty(t, doc.Validate())
}

func TestParseBlankLinesAreSkipped(t *testing.T) {
	src := "\n\nCamera 0 0 -5 0 0 0 0 1 0\n\n"
	doc, errs := Parse(strings.NewReader(src))
	require.Empty(t, errs)
	require.NotNil(t, doc.Camera)
}
