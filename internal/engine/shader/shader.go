// Package shader provides OpenGL shader program compilation and ownership.
package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/sphereview/pkg/math"
)

// ErrBuild marks a compile or link failure. Callers should treat it as
// fatal; the error text carries the GL info log.
var ErrBuild = errors.New("shader build")

// Program owns a linked GL shader program.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// NewProgram compiles vertex and fragment sources and links them.
// On failure the returned error carries the GL info log unchanged.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		id:       id,
		uniforms: make(map[string]int32),
	}, nil
}

// ID returns the GL program name, or 0 after Delete.
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// SetUniform4f sets a vec4 uniform. The program must be current.
func (p *Program) SetUniform4f(name string, v0, v1, v2, v3 float32) {
	gl.Uniform4f(p.location(name), v0, v1, v2, v3)
}

// SetUniformMat4 sets a mat4 uniform from a column-major matrix. The program
// must be current.
func (p *Program) SetUniformMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, m.Ptr())
}

// Delete releases the GL program. Further calls are no-ops.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	gl.DeleteProgram(p.id)
	p.id = 0
}

// location looks up a uniform once and caches it. Unknown names resolve to -1,
// which GL silently ignores.
func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// compileProgram compiles both stages and links them into a program.
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) {
			gl.GetProgramInfoLog(program, logLen, nil, buf)
		})
		gl.DeleteProgram(program)
		return 0, buildError("link", log)
	}

	return program, nil
}

// compileShader compiles a single shader stage.
func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) {
			gl.GetShaderInfoLog(shader, logLen, nil, buf)
		})
		gl.DeleteShader(shader)
		return 0, buildError(stage+" shader", log)
	}

	return shader, nil
}

func buildError(step, log string) error {
	return fmt.Errorf("%w: %s: %s", ErrBuild, step, log)
}

// infoLog reads a GL info log of logLen bytes and trims the trailing NUL.
func infoLog(logLen int32, read func(buf *uint8)) string {
	if logLen <= 0 {
		return "(no info log)"
	}
	buf := make([]byte, logLen)
	read(&buf[0])
	return strings.TrimRight(string(buf), "\x00")
}
