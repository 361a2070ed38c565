// Package opengl provides an OpenGL 4.1 backend for the ui package: it
// uploads one frame's Painter arena and issues the single indexed draw
// call spec.md §6 describes. The fragment shader's primitive-decode
// body is an external contract (spec.md §6) this package does not
// implement — the GLSL below only declares the buffer/uniform layout a
// real shader would bind against.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	ui "github.com/biv-engine/ui"
)

// Renderer implements ui.Renderer on top of OpenGL 4.1: a vertex arena
// bound as a shader storage buffer (primitives are variably sized, so
// they aren't addressable as fixed vertex attributes), an index buffer
// of packed ui.PrimitiveIndex values, and one glyph atlas texture.
type Renderer struct {
	shader  uint32
	vao     uint32
	vssbo   uint32 // vertex arena, bound as SSBO binding 0
	ebo     uint32
	projLoc int32

	glyphAtlas   uint32
	atlasW       int32
	atlasH       int32
	slotSize     int32
	width        int
	height       int
}

// vertexShaderSource and fragmentShaderSource declare the buffer
// layout and uniforms the core's primitive encoding (spec.md §3, §6)
// requires of any backend shader. The fragment body here is a flat
// pass-through; a real renderer replaces it with the SDF/textured-rect
// decode spec.md §6 specifies but leaves unimplemented by design.
const vertexShaderSource = `
#version 410 core
layout(std430, binding = 0) readonly buffer VertexArena {
    uint data[];
};
uniform mat4 projection;
uniform uint primitiveType;
uniform uint primitiveIndex;
out vec2 vUV;
out vec4 vColor;
void main() {
    gl_Position = projection * vec4(0.0, 0.0, 0.0, 1.0);
    vUV = vec2(0.0);
    vColor = vec4(1.0);
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;
uniform sampler2D glyphAtlas;
void main() {
    FragColor = vColor;
}
` + "\x00"

// NewRenderer builds a renderer sized for a glyphGridX*glyphGridY atlas
// of slotSize tiles, matching the GlyphCache the caller constructed.
func NewRenderer(width, height int, slotSize, glyphGridX, glyphGridY int32) (*Renderer, error) {
	r := &Renderer{
		width:    width,
		height:   height,
		slotSize: slotSize,
		atlasW:   slotSize * glyphGridX,
		atlasH:   slotSize * glyphGridY,
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("ui/opengl: shader program: %w", err)
	}
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vssbo)
	gl.GenBuffers(1, &r.ebo)

	gl.GenTextures(1, &r.glyphAtlas)
	gl.BindTexture(gl.TEXTURE_2D, r.glyphAtlas)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, r.atlasW, r.atlasH, 0, gl.RED, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return r, nil
}

// GlyphAtlasTexture returns the bindless texture index to assign to
// Painter.GlyphAtlasTexture.
func (r *Renderer) GlyphAtlasTexture() uint32 { return r.glyphAtlas }

// Resize updates the viewport size used to build the projection matrix.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// UploadGlyphTile writes a rasterized glyph's coverage bitmap into the
// atlas at the given tile.
func (r *Renderer) UploadGlyphTile(tileX, tileY int32, bitmap ui.GlyphBitmap) {
	if bitmap.Width == 0 || bitmap.Rows == 0 {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, r.glyphAtlas)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, bitmap.Pitch)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, tileX*r.slotSize, tileY*r.slotSize,
		bitmap.Width, bitmap.Rows, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(bitmap.Buffer))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Render uploads the Painter's vertex arena and index buffer and
// issues the draw call.
func (r *Renderer) Render(p *ui.Painter) error {
	indices := p.Indices()
	if len(indices) == 0 {
		return nil
	}
	vbytes := p.VertexBytes()

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, 0, r.vssbo)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, r.vssbo)
	gl.BufferData(gl.SHADER_STORAGE_BUFFER, len(vbytes), gl.Ptr(vbytes), gl.STREAM_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*int(unsafe.Sizeof(ui.PrimitiveIndex(0))),
		gl.Ptr(indices), gl.STREAM_DRAW)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.glyphAtlas)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	return nil
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.glyphAtlas != 0 {
		gl.DeleteTextures(1, &r.glyphAtlas)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vssbo != 0 {
		gl.DeleteBuffers(1, &r.vssbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(vertexShader, gl.INFO_LOG_LENGTH, &logLength)
		logBuf := make([]byte, logLength+1)
		gl.GetShaderInfoLog(vertexShader, logLength, nil, &logBuf[0])
		return 0, fmt.Errorf("vertex shader compilation failed: %s", string(logBuf))
	}

	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(fragmentShader, gl.INFO_LOG_LENGTH, &logLength)
		logBuf := make([]byte, logLength+1)
		gl.GetShaderInfoLog(fragmentShader, logLength, nil, &logBuf[0])
		return 0, fmt.Errorf("fragment shader compilation failed: %s", string(logBuf))
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logBuf := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &logBuf[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(logBuf))
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
