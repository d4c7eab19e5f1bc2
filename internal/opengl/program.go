package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"parallax-demo/math"
)

// program wraps a linked GL program with a lazy uniform-location cache.
// Setters silently skip uniforms the variant does not declare (location -1),
// which lets the composer push the full feature set to every variant.
type program struct {
	id   uint32
	locs map[string]int32
}

func newProgram(vertSrc, fragSrc string) (*program, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment: %w", err)
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
		return nil, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return &program{id: prog, locs: make(map[string]int32)}, nil
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

func (p *program) use() {
	gl.UseProgram(p.id)
}

func (p *program) destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func (p *program) loc(name string) int32 {
	if l, ok := p.locs[name]; ok {
		return l
	}
	l := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locs[name] = l
	return l
}

func (p *program) setMat4(name string, m math.Mat4) {
	if l := p.loc(name); l >= 0 {
		gl.UniformMatrix4fv(l, 1, false, (*float32)(unsafe.Pointer(&m[0][0])))
	}
}

func (p *program) setVec3(name string, x, y, z float32) {
	if l := p.loc(name); l >= 0 {
		gl.Uniform3f(l, x, y, z)
	}
}

func (p *program) setVec4(name string, x, y, z, w float32) {
	if l := p.loc(name); l >= 0 {
		gl.Uniform4f(l, x, y, z, w)
	}
}

func (p *program) setFloat(name string, v float32) {
	if l := p.loc(name); l >= 0 {
		gl.Uniform1f(l, v)
	}
}

func (p *program) setInt(name string, v int32) {
	if l := p.loc(name); l >= 0 {
		gl.Uniform1i(l, v)
	}
}

func (p *program) setBool(name string, v bool) {
	i := int32(0)
	if v {
		i = 1
	}
	p.setInt(name, i)
}
