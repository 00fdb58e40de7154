// Package shader builds named GLSL programs and caches their uniform locations.
package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/nightyard/pkg/math"
)

var (
	ErrCompile = errors.New("shader compile failed")
	ErrLink    = errors.New("program link failed")
)

// stage is one shader of a program.
type stage struct {
	kind uint32
	name string
}

var (
	vertexStage   = stage{gl.VERTEX_SHADER, "vertex"}
	fragmentStage = stage{gl.FRAGMENT_SHADER, "fragment"}
)

// Program is a linked shader program with a uniform location cache.
// Unknown or inactive uniforms resolve to -1, which GL ignores on upload.
type Program struct {
	Name     string
	ID       uint32
	uniforms map[string]int32
}

// NewProgram compiles and links a program from vertex and fragment sources.
// Errors name the program and the failing stage, and wrap ErrCompile or
// ErrLink.
func NewProgram(name, vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := compile(name, vertexStage, vertexSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compile(name, fragmentStage, fragmentSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &n)
		buf := make([]byte, n+1)
		gl.GetProgramInfoLog(id, n, nil, &buf[0])
		gl.DeleteProgram(id)
		return nil, buildError(name, "", ErrLink, buf)
	}
	return &Program{Name: name, ID: id, uniforms: make(map[string]int32)}, nil
}

func compile(program string, st stage, src string) (uint32, error) {
	id := gl.CreateShader(st.kind)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(id, 1, csrc, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &n)
		buf := make([]byte, n+1)
		gl.GetShaderInfoLog(id, n, nil, &buf[0])
		gl.DeleteShader(id)
		return 0, buildError(program, st.name, ErrCompile, buf)
	}
	return id, nil
}

// buildError formats a driver info log as "<program> program: [<stage> shader: ]<sentinel>: <log>".
func buildError(program, stageName string, sentinel error, infoLog []byte) error {
	where := program + " program"
	if stageName != "" {
		where += ": " + stageName + " shader"
	}
	msg := strings.TrimSpace(strings.TrimRight(string(infoLog), "\x00"))
	if msg == "" {
		return fmt.Errorf("%s: %w", where, sentinel)
	}
	return fmt.Errorf("%s: %w: %s", where, sentinel, msg)
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Uniform returns the cached location of a uniform.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetFloat uploads a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.Uniform(name), v)
}

// SetBool uploads a bool as an int uniform.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.Uniform(name), i)
}

func (p *Program) SetVec2(name string, v math.Vec2) {
	gl.Uniform2f(p.Uniform(name), v.X, v.Y)
}

func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.Uniform(name), v.X, v.Y, v.Z)
}

func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, m.Ptr())
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}
