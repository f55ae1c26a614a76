// Package sceneio implements the scene-description grammar: a line-
// oriented, whitespace-delimited text format declaring textures, mesh
// data, materials, meshes, lights and a camera by unique literal
// names, plus the loader that resolves those literals into a runnable
// scene.Scene and scene.Camera.
package sceneio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pathtracer/math"
)

// ParseError is a single diagnostic tied to its 1-based source line,
// matching the "one line per violation" contract.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func newErr(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// ImageTextureRecord is an image-backed texture literal: a PNG
// filename plus the r g b tint every image texture carries.
type ImageTextureRecord struct {
	Filename string
	Tint     math.Vec3
	Line     int
}

// ConstantTextureRecord is a constant-color texture literal.
type ConstantTextureRecord struct {
	Color math.Vec3
	Line  int
}

// MeshDataRecord is a mesh-data literal: a PLY filename plus the
// position/rotation/scale transform baked into the mesh at load time.
type MeshDataRecord struct {
	Filename string
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
	Line     int
}

// LambertianRecord is a Lambertian material literal referencing a
// texture literal (resolved in the validation pass).
type LambertianRecord struct {
	TextureLiteral string
	Line           int
}

// MeshRecord is a Mesh or OctreeMesh statement.
type MeshRecord struct {
	MeshDataLiteral string
	MaterialLiteral string
	Line            int
}

// LightRecord is a Light statement: a spherical emitter.
type LightRecord struct {
	Position       math.Vec3
	Radius         float32
	TextureLiteral string
	Line           int
}

// CameraRecord is the (single) Camera statement.
type CameraRecord struct {
	Position, Target, Up math.Vec3
	Line                 int
}

// Document is the result of a parse pass: every literal table plus
// the ordered statement lists, before dependency validation.
type Document struct {
	literals map[string]int // literal name -> defining line, for redefinition/dependency checks

	ImageTextures    map[string]ImageTextureRecord
	ConstantTextures map[string]ConstantTextureRecord
	MeshData         map[string]MeshDataRecord
	Lambertians      map[string]LambertianRecord

	Meshes       []MeshRecord
	OctreeMeshes []MeshRecord
	Lights       []LightRecord
	Camera       *CameraRecord
}

func newDocument() *Document {
	return &Document{
		literals:         make(map[string]int),
		ImageTextures:    make(map[string]ImageTextureRecord),
		ConstantTextures: make(map[string]ConstantTextureRecord),
		MeshData:         make(map[string]MeshDataRecord),
		Lambertians:      make(map[string]LambertianRecord),
	}
}

var keywords = map[string]bool{
	"Mesh": true, "OctreeMesh": true, "Light": true,
	"Lambertian": true, "Camera": true, "Default": true,
}

func isLiteral(word string) bool {
	return !keywords[word]
}

func isTextureFilename(word string) bool {
	return len(word) >= 7 && word[0] == '"' && strings.HasSuffix(word, ".png\"")
}

func isMeshFilename(word string) bool {
	return len(word) >= 7 && word[0] == '"' && strings.HasSuffix(word, ".ply\"")
}

func unquote(word string) string {
	return strings.Trim(word, "\"")
}

// Parse reads every line from r, classifying it per the grammar and
// populating a Document. Every violation is recorded against its
// 1-based line number; parsing continues past a bad line so a single
// run reports every syntax error in the file, not just the first.
// Parse does not check cross-literal dependencies — call
// Document.Validate for that second pass.
func Parse(r io.Reader) (*Document, []error) {
	doc := newDocument()
	var errs []error

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	line := 0
	for scanner.Scan() {
		line++
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}
		if len(words) == 1 {
			errs = append(errs, newErr(line, "incomplete statement"))
			continue
		}
		if err := doc.parseLine(words, line); err != nil {
			errs = append(errs, err)
		}
	}
	return doc, errs
}

func (doc *Document) parseLine(words []string, line int) error {
	switch words[0] {
	case "Default":
		return newErr(line, "Default can only be used as an argument")
	case "Mesh":
		return doc.parseMeshStatement(words, line, &doc.Meshes, "Mesh")
	case "OctreeMesh":
		return doc.parseMeshStatement(words, line, &doc.OctreeMeshes, "OctreeMesh")
	case "Light":
		return doc.parseLight(words, line)
	case "Camera":
		return doc.parseCamera(words, line)
	default:
		if !isLiteral(words[0]) {
			return newErr(line, "unexpected keyword %q", words[0])
		}
		return doc.parseLiteralDeclaration(words, line)
	}
}

func (doc *Document) parseMeshStatement(words []string, line int, into *[]MeshRecord, name string) error {
	if len(words) != 3 {
		return newErr(line, "%s command accepts 2 arguments", name)
	}
	if !isLiteral(words[1]) || !isLiteral(words[2]) {
		return newErr(line, "%s command has a keyword as an argument", name)
	}
	*into = append(*into, MeshRecord{MeshDataLiteral: words[1], MaterialLiteral: words[2], Line: line})
	return nil
}

func (doc *Document) parseLight(words []string, line int) error {
	if len(words) != 6 {
		return newErr(line, "Light command accepts 5 arguments")
	}
	for _, w := range words[1:] {
		if !isLiteral(w) {
			return newErr(line, "Light command has a keyword as an argument")
		}
	}
	x, errX := strconv.ParseFloat(words[1], 32)
	y, errY := strconv.ParseFloat(words[2], 32)
	z, errZ := strconv.ParseFloat(words[3], 32)
	radius, errR := strconv.ParseFloat(words[4], 32)
	if errX != nil || errY != nil || errZ != nil || errR != nil {
		return newErr(line, "Light command has a non-numeric argument")
	}
	doc.Lights = append(doc.Lights, LightRecord{
		Position:       math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)},
		Radius:         float32(radius),
		TextureLiteral: words[5],
		Line:           line,
	})
	return nil
}

func (doc *Document) parseCamera(words []string, line int) error {
	if len(words) != 10 {
		return newErr(line, "Camera command accepts 9 arguments")
	}
	for _, w := range words[1:] {
		if !isLiteral(w) {
			return newErr(line, "Camera command has a keyword as an argument")
		}
	}
	vals := make([]float32, 9)
	for i, w := range words[1:] {
		v, err := strconv.ParseFloat(w, 32)
		if err != nil {
			return newErr(line, "Camera command has a non-numeric argument")
		}
		vals[i] = float32(v)
	}
	doc.Camera = &CameraRecord{
		Position: math.Vec3{X: vals[0], Y: vals[1], Z: vals[2]},
		Target:   math.Vec3{X: vals[3], Y: vals[4], Z: vals[5]},
		Up:       math.Vec3{X: vals[6], Y: vals[7], Z: vals[8]},
		Line:     line,
	}
	return nil
}

func (doc *Document) parseLiteralDeclaration(words []string, line int) error {
	name := words[0]
	if prev, ok := doc.literals[name]; ok {
		return newErr(line, "literal %q redefinition (first defined at line %d)", name, prev)
	}

	switch {
	case isTextureFilename(words[1]):
		if len(words) != 5 {
			return newErr(line, "image texture literal format is: literal \"file.png\" r g b")
		}
		r, errR := strconv.ParseFloat(words[2], 32)
		g, errG := strconv.ParseFloat(words[3], 32)
		b, errB := strconv.ParseFloat(words[4], 32)
		if errR != nil || errG != nil || errB != nil {
			return newErr(line, "image texture literal has a non-numeric tint")
		}
		doc.literals[name] = line
		doc.ImageTextures[name] = ImageTextureRecord{
			Filename: unquote(words[1]),
			Tint:     math.Vec3{X: float32(r), Y: float32(g), Z: float32(b)},
			Line:     line,
		}
		return nil

	case isMeshFilename(words[1]):
		if len(words) != 11 {
			return newErr(line, "mesh data literal format is: literal \"file.ply\" x y z rx ry rz sx sy sz")
		}
		vals := make([]float32, 9)
		for i, w := range words[2:] {
			v, err := strconv.ParseFloat(w, 32)
			if err != nil {
				return newErr(line, "mesh data literal has a non-numeric transform component")
			}
			vals[i] = float32(v)
		}
		doc.literals[name] = line
		doc.MeshData[name] = MeshDataRecord{
			Filename: unquote(words[1]),
			Position: math.Vec3{X: vals[0], Y: vals[1], Z: vals[2]},
			Rotation: math.Vec3{X: vals[3], Y: vals[4], Z: vals[5]},
			Scale:    math.Vec3{X: vals[6], Y: vals[7], Z: vals[8]},
			Line:     line,
		}
		return nil

	case words[1] == "Lambertian":
		if len(words) != 3 {
			return newErr(line, "Lambertian literal format is: literal Lambertian texture_literal")
		}
		doc.literals[name] = line
		doc.Lambertians[name] = LambertianRecord{TextureLiteral: words[2], Line: line}
		return nil

	case len(words) == 4:
		r, errR := strconv.ParseFloat(words[1], 32)
		g, errG := strconv.ParseFloat(words[2], 32)
		b, errB := strconv.ParseFloat(words[3], 32)
		if errR != nil || errG != nil || errB != nil {
			return newErr(line, "constant texture literal has a non-numeric color")
		}
		doc.literals[name] = line
		doc.ConstantTextures[name] = ConstantTextureRecord{
			Color: math.Vec3{X: float32(r), Y: float32(g), Z: float32(b)},
			Line:  line,
		}
		return nil

	default:
		return newErr(line, "literal %q declaration error", name)
	}
}

// Validate checks every cross-literal dependency: every Lambertian's
// texture, every Light's texture, and every Mesh/OctreeMesh's
// mesh-data and material literals must have been declared somewhere
// in the document. Every violation is reported against the line of
// the statement that references the missing literal.
func (doc *Document) Validate() []error {
	var errs []error

	for name, lam := range doc.Lambertians {
		if _, ok := doc.literals[lam.TextureLiteral]; !ok {
			errs = append(errs, newErr(lam.Line, "Lambertian %q references undefined texture literal %q", name, lam.TextureLiteral))
		}
	}

	for _, light := range doc.Lights {
		if _, ok := doc.literals[light.TextureLiteral]; !ok {
			errs = append(errs, newErr(light.Line, "Light references undefined texture literal %q", light.TextureLiteral))
		}
	}

	checkMesh := func(records []MeshRecord, kind string) {
		for _, m := range records {
			if _, ok := doc.literals[m.MeshDataLiteral]; !ok {
				errs = append(errs, newErr(m.Line, "%s references undefined mesh data literal %q", kind, m.MeshDataLiteral))
			}
			if _, ok := doc.literals[m.MaterialLiteral]; !ok {
				errs = append(errs, newErr(m.Line, "%s references undefined material literal %q", kind, m.MaterialLiteral))
			}
		}
	}
	checkMesh(doc.Meshes, "Mesh")
	checkMesh(doc.OctreeMeshes, "OctreeMesh")

	return errs
}
