package glbackend

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/glide/engine/colors"
	"github.com/hubastard/glide/engine/core"
)

// RendererGL draws solid, alpha-blended rectangles in framebuffer pixels
// (origin top-left) and clips them with a scissor stack.
type RendererGL struct {
	program   uint32
	vao       uint32
	vbo       uint32
	uViewport int32
	uColor    int32
	width     int
	height    int
	clips     []clipRect
}

func NewRendererGL(_ core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	r.uViewport = gl.GetUniformLocation(r.program, gl.Str("uViewport\x00"))
	r.uColor = gl.GetUniformLocation(r.program, gl.Str("uColor\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// one quad as a triangle strip, rewritten per rect
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 8*4, nil, gl.DYNAMIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, unsafe.Pointer(uintptr(0)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	r.width, r.height = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

// Clear fills the whole framebuffer and drops any clip left from the
// previous frame.
func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	r.clips = r.clips[:0]
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *RendererGL) FillRect(x, y, w, h float32, c colors.Color) {
	if w <= 0 || h <= 0 || c[3] <= 0 {
		return
	}
	verts := [8]float32{
		x, y,
		x + w, y,
		x, y + h,
		x + w, y + h,
	}
	gl.UseProgram(r.program)
	gl.Uniform2f(r.uViewport, float32(r.width), float32(r.height))
	gl.Uniform4f(r.uColor, c[0], c[1], c[2], c[3])
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(&verts[0]))
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// PushClip restricts drawing to the rect, intersected with the current
// clip.
func (r *RendererGL) PushClip(x, y, w, h float32) {
	c := pixelRect(x, y, w, h)
	if n := len(r.clips); n > 0 {
		c = r.clips[n-1].intersect(c)
	}
	r.clips = append(r.clips, c)
	r.applyClip()
}

func (r *RendererGL) PopClip() {
	if len(r.clips) == 0 {
		return
	}
	r.clips = r.clips[:len(r.clips)-1]
	r.applyClip()
}

func (r *RendererGL) applyClip() {
	if len(r.clips) == 0 {
		gl.Disable(gl.SCISSOR_TEST)
		return
	}
	c := r.clips[len(r.clips)-1]
	gl.Enable(gl.SCISSOR_TEST)
	// scissor origin is bottom-left
	gl.Scissor(c.x, int32(r.height)-c.y-c.h, c.w, c.h)
}

type clipRect struct{ x, y, w, h int32 }

// pixelRect snaps a float rect outward to whole pixels.
func pixelRect(x, y, w, h float32) clipRect {
	x0, y0 := int32(math.Floor(float64(x))), int32(math.Floor(float64(y)))
	x1, y1 := int32(math.Ceil(float64(x+w))), int32(math.Ceil(float64(y+h)))
	return clipRect{x0, y0, max(0, x1-x0), max(0, y1-y0)}
}

func (a clipRect) intersect(b clipRect) clipRect {
	x0, y0 := max(a.x, b.x), max(a.y, b.y)
	x1, y1 := min(a.x+a.w, b.x+b.w), min(a.y+a.h, b.y+b.h)
	return clipRect{x0, y0, max(0, x1-x0), max(0, y1-y0)}
}

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
uniform vec2 uViewport;
void main() {
    vec2 ndc = aPos / uViewport * 2.0 - 1.0;
    gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
uniform vec4 uColor;
out vec4 FragColor;
void main() {
    FragColor = uColor;
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
