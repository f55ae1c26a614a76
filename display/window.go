// Package display implements the optional live-preview window: a
// GLFW/OpenGL surface that blits the render driver's combined
// intensity buffer to the screen every pass, so a user can watch an
// image converge instead of waiting for the final PNG.
package display

import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"pathtracer/core"
)

func init() {
	runtime.LockOSThread()
}

// Config configures the preview window. Width and Height are the
// window's framebuffer size, independent of the render's own
// resolution — Present rescales nothing, it just uploads whatever
// buffer it is given at native resolution.
type Config struct {
	Width  int
	Height int
	Title  string
}

func DefaultConfig() Config {
	return Config{Width: 1280, Height: 720, Title: "pathtracer"}
}

// Window presents successive render.Render passes as a
// textured fullscreen quad. It implements render.Display.
type Window struct {
	handle  *glfw.Window
	program uint32
	vao     uint32
	texture uint32
	width   int
	height  int
}

// NewWindow creates the GLFW window, the GL context, and the
// fullscreen-quad program the first Present call will use. Must be
// called from the main goroutine.
func NewWindow(cfg Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("display: initializing GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("display: creating window: %w", err)
	}
	handle.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		handle.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("display: initializing OpenGL: %w", err)
	}

	program, err := newProgram(quadVertexShader, quadFragmentShader)
	if err != nil {
		handle.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("display: building shader program: %w", err)
	}

	w := &Window{
		handle:  handle,
		program: program,
		width:   cfg.Width,
		height:  cfg.Height,
	}
	w.vao = buildQuad()
	w.texture = allocateTexture()

	glfw.SwapInterval(1)
	return w, nil
}

// ShouldClose reports whether the user has asked to close the window
// (clicked the close button, or Alt-F4).
func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

// Present uploads buf as the window's texture and draws it as a
// fullscreen quad. samples is accepted to satisfy render.Display but
// is not otherwise used — the title bar is not rewritten per pass, to
// avoid the window manager throttling rapid SetTitle calls.
func (w *Window) Present(buf *core.IntensityBuffer, samples int) {
	pixels := toRGBA(buf)

	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(buf.Width), int32(buf.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		unsafe.Pointer(&pixels[0]),
	)

	gl.Viewport(0, 0, int32(w.width), int32(w.height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(w.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.BindVertexArray(w.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	w.handle.SwapBuffers()
	glfw.PollEvents()
}

// KeyHeld reports whether the given GLFW key constant is currently
// pressed, letting a caller wire e.g. Escape to an early stop.
func (w *Window) KeyHeld(key int) bool {
	return w.handle.GetKey(glfw.Key(key)) == glfw.Press
}

// Close tears down the GL context and the GLFW window.
func (w *Window) Close() {
	gl.DeleteTextures(1, &w.texture)
	gl.DeleteVertexArrays(1, &w.vao)
	gl.DeleteProgram(w.program)
	w.handle.Destroy()
	glfw.Terminate()
}

// toRGBA quantizes the linear-but-already-gamma-corrected buffer into
// an 8-bit-per-channel RGBA byte slice ready for glTexImage2D.
func toRGBA(buf *core.IntensityBuffer) []byte {
	out := make([]byte, buf.Width*buf.Height*4)
	i := 0
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := buf.At(x, y)
			out[i+0] = quantize(c.X)
			out[i+1] = quantize(c.Y)
			out[i+2] = quantize(c.Z)
			out[i+3] = 255
			i += 4
		}
	}
	return out
}

func quantize(v float32) byte {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return byte(v*255 + 0.5)
}

func allocateTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// quadVertices is a unit fullscreen triangle pair in clip space, with
// v flipped so image row 0 (top of the render) lands at the top of
// the window.
var quadVertices = [...]float32{
	// pos.x, pos.y, uv.x, uv.y
	-1, -1, 0, 1,
	1, -1, 1, 1,
	1, 1, 1, 0,

	-1, -1, 0, 1,
	1, 1, 1, 0,
	-1, 1, 0, 0,
}

func buildQuad() uint32 {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(&quadVertices[0]), gl.STATIC_DRAW)

	const stride = 4 * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))

	gl.BindVertexArray(0)
	return vao
}

const quadVertexShader = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
out vec2 vUV;
void main() {
    vUV = aUV;
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const quadFragmentShader = `
#version 410 core
in vec2 vUV;
out vec4 fragColor;
uniform sampler2D image;
void main() {
    fragColor = texture(image, vUV);
}
` + "\x00"

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}

// Keyboard constants re-exported from glfw for callers that don't
// want to import it directly (mirroring the teacher's core.Key*
// table, narrowed to the keys a renderer's preview window needs).
const (
	KeyEscape = int(glfw.KeyEscape)
	KeySpace  = int(glfw.KeySpace)
)
