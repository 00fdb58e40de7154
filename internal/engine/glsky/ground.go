package glsky

import (
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/nightyard/internal/engine/glsky/shaders"
	"github.com/Faultbox/nightyard/internal/engine/shader"
	"github.com/Faultbox/nightyard/internal/world"
	"github.com/Faultbox/nightyard/pkg/math"
)

var up = math.Vec3{Y: 1}

// GroundRenderer draws the world's ground plane, lit by the world lights and
// fogged with the world fog read at draw time.
type GroundRenderer struct {
	world   *world.World
	program *shader.Program

	vao uint32
	vbo uint32

	exposure float32
}

// NewGroundRenderer compiles the ground program and uploads the plane.
func NewGroundRenderer(w *world.World) (*GroundRenderer, error) {
	gr := &GroundRenderer{world: w, exposure: 1}

	program, err := shader.NewProgram("ground", shaders.GroundVertexShader, shaders.GroundFragmentShader)
	if err != nil {
		return nil, err
	}
	gr.program = program

	gr.createPlane()
	return gr, nil
}

func (gr *GroundRenderer) createPlane() {
	// Fan order corners, split into two triangles.
	c := gr.world.Ground.Vertices()
	vertices := []float32{
		c[0], c[1], c[2],
		c[3], c[4], c[5],
		c[6], c[7], c[8],
		c[0], c[1], c[2],
		c[6], c[7], c[8],
		c[9], c[10], c[11],
	}

	gl.GenVertexArrays(1, &gr.vao)
	gl.BindVertexArray(gr.vao)

	gl.GenBuffers(1, &gr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
}

// SetExposure sets the output multiplier.
func (gr *GroundRenderer) SetExposure(v float32) {
	gr.exposure = v
}

// Draw renders the plane with depth writes on.
func (gr *GroundRenderer) Draw(viewProj math.Mat4, cameraPos math.Vec3) {
	if gr.vao == 0 {
		return
	}
	g := gr.world.Ground
	fog := gr.world.Fog
	p := gr.program
	p.Use()

	p.SetMat4("uViewProj", viewProj)
	p.SetVec3("uAlbedo", g.Albedo)
	p.SetFloat("uTileSize", g.Size/math32.Max(g.Tiling, 1))
	p.SetVec3("uIrradiance", gr.world.Lights.Irradiance(up))
	p.SetVec3("uCameraPos", cameraPos)

	p.SetBool("uFogLinear", fog.Type == world.FogLinear)
	p.SetVec3("uFogColor", fog.Color)
	p.SetFloat("uFogDensity", fog.Density)
	p.SetFloat("uFogNear", fog.Near)
	p.SetFloat("uFogFar", fog.Far)
	p.SetFloat("uExposure", gr.exposure)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)

	gl.BindVertexArray(gr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// Close releases all resources.
func (gr *GroundRenderer) Close() {
	if gr.vao != 0 {
		gl.DeleteVertexArrays(1, &gr.vao)
		gr.vao = 0
	}
	if gr.vbo != 0 {
		gl.DeleteBuffers(1, &gr.vbo)
		gr.vbo = 0
	}
	if gr.program != nil {
		gr.program.Delete()
	}
}
