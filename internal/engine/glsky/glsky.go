// Package glsky draws the atmosphere on the GPU: the sky dome as an opaque
// backdrop and the star field as additive point sprites. Uniforms are read
// from the atmosphere snapshots every frame, so setter changes show up on
// the next Draw without any commit step.
package glsky

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/nightyard/internal/atmosphere"
	"github.com/Faultbox/nightyard/internal/atmosphere/shaders"
	"github.com/Faultbox/nightyard/internal/engine/shader"
	"github.com/Faultbox/nightyard/internal/logger"
	"github.com/Faultbox/nightyard/pkg/math"
)

// Renderer owns the GL resources of the sky dome and star field.
type Renderer struct {
	atm *atmosphere.Atmosphere
	log *zap.Logger

	sky  *shader.Program
	star *shader.Program

	domeVAO, domeVBO, domeEBO uint32
	domeCount                 int32

	starVAO, starVBO uint32
	starCount        int32
	starGeneration   uint64

	exposure float32
}

// New compiles both programs, uploads the dome mesh and the current star
// field. Must be called with a current GL context.
func New(atm *atmosphere.Atmosphere) (*Renderer, error) {
	r := &Renderer{
		atm:      atm,
		log:      logger.Named("glsky"),
		exposure: 1,
	}

	var err error
	r.sky, err = shader.NewProgram("sky", shaders.SkyVertexShader, shaders.SkyFragmentShader)
	if err != nil {
		return nil, err
	}
	r.star, err = shader.NewProgram("stars", shaders.StarVertexShader, shaders.StarFragmentShader)
	if err != nil {
		r.sky.Delete()
		return nil, err
	}

	r.createDome()
	r.createStarBuffer()
	r.SyncStars()

	r.log.Info("sky renderer created",
		zap.Int32("domeIndices", r.domeCount),
		zap.Int32("stars", r.starCount),
	)
	return r, nil
}

func (r *Renderer) createDome() {
	vertices, indices := SphereMesh(r.atm.Radius(), domeWidthSegments, domeHeightSegments)
	r.domeCount = int32(len(indices))

	gl.GenVertexArrays(1, &r.domeVAO)
	gl.BindVertexArray(r.domeVAO)

	gl.GenBuffers(1, &r.domeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.domeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.domeEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.domeEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
}

func (r *Renderer) createStarBuffer() {
	gl.GenVertexArrays(1, &r.starVAO)
	gl.BindVertexArray(r.starVAO)

	gl.GenBuffers(1, &r.starVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.starVBO)

	stride := int32(starStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, stride, 4*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
}

// SyncStars re-uploads the star buffer if the field was regenerated since
// the last upload. Cheap to call every frame.
func (r *Renderer) SyncStars() {
	gen := r.atm.StarGeneration()
	if r.starGeneration == gen && r.starCount == int32(r.atm.StarCount()) {
		return
	}

	data := StarVertices(r.atm.Stars())
	gl.BindBuffer(gl.ARRAY_BUFFER, r.starVBO)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.starCount = int32(len(data) / starStride)
	r.starGeneration = gen
	r.log.Debug("star buffer uploaded",
		zap.Int32("stars", r.starCount),
		zap.Uint64("generation", gen),
	)
}

// SetExposure sets the output multiplier.
func (r *Renderer) SetExposure(v float32) {
	r.exposure = v
}

// Draw renders the dome, which must come first in the frame, then the stars.
// Surfaces drawn between DrawSky and DrawStars occlude the stars.
func (r *Renderer) Draw(view, proj math.Mat4) {
	r.DrawSky(view, proj)
	r.DrawStars(view, proj)
}

// DrawSky renders the opaque backdrop without touching depth.
func (r *Renderer) DrawSky(view, proj math.Mat4) {
	u := r.atm.SkyUniforms()
	p := r.sky
	p.Use()

	p.SetMat4("uModel", math.Translate(r.atm.SkyOrigin()))
	p.SetMat4("uViewProj", proj.Mul(view))

	p.SetVec3("uHorizonColor", u.Gradient.Horizon)
	p.SetVec3("uMidLowColor", u.Gradient.MidLow)
	p.SetVec3("uMidHighColor", u.Gradient.MidHigh)
	p.SetVec3("uZenithColor", u.Gradient.Zenith)
	p.SetFloat("uMidLowStop", u.Gradient.MidLowStop)
	p.SetFloat("uMidHighStop", u.Gradient.MidHighStop)

	setSource(p, "uNear", u.Pollution.Near)
	setSource(p, "uFar", u.Pollution.Far)
	p.SetVec3("uPollutionColor", u.Pollution.Color)
	p.SetFloat("uDither", u.Dither)

	p.SetVec3("uFogColor", u.Fog.Color)
	p.SetFloat("uFogDensity", u.Fog.Density)
	p.SetFloat("uFogMax", u.Fog.MaxOpacity)

	p.SetVec2("uResolution", u.Resolution)
	p.SetFloat("uTime", u.Time)
	p.SetBool("uHorrorEnabled", u.Horror.Enabled)
	p.SetFloat("uDesat", u.Horror.Desaturation)
	p.SetFloat("uGreenTint", u.Horror.GreenTint)
	p.SetFloat("uContrast", u.Horror.Contrast)
	p.SetFloat("uVignette", u.Horror.Vignette)
	p.SetFloat("uBreatheAmp", u.Horror.BreatheAmplitude)
	p.SetFloat("uBreatheSpeed", u.Horror.BreatheSpeed)
	p.SetFloat("uExposure", r.exposure)

	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	gl.Disable(gl.BLEND)

	gl.BindVertexArray(r.domeVAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.domeCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
}

func setSource(p *shader.Program, prefix string, s atmosphere.Source) {
	p.SetVec3(prefix+"Dir", s.Direction())
	p.SetFloat(prefix+"Intensity", s.Intensity)
	p.SetFloat(prefix+"CosSpread", s.CosSpread())
	p.SetFloat(prefix+"Height", s.MaxHeight)
}

// DrawStars renders the star field additively, depth-tested against the
// surfaces already drawn but never writing depth.
func (r *Renderer) DrawStars(view, proj math.Mat4) {
	if !r.atm.StarsEnabled() || r.starCount == 0 {
		return
	}
	u := r.atm.StarUniforms()
	p := r.star
	p.Use()

	p.SetMat4("uModelView", view.Mul(math.Translate(r.atm.StarOrigin())))
	p.SetMat4("uProj", proj)
	p.SetFloat("uSizeMin", u.SizeMin)
	p.SetFloat("uSizeMax", u.SizeMax)
	p.SetFloat("uBrightness", u.Brightness)
	p.SetFloat("uPixelRatio", u.PixelRatio)
	p.SetFloat("uHorizonFade", u.HorizonFade)
	p.SetBool("uAntiAlias", u.AntiAlias)
	p.SetFloat("uFogDensity", u.FogDensity)
	p.SetVec3("uTint", u.Tint)
	p.SetFloat("uExposure", r.exposure)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)

	gl.BindVertexArray(r.starVAO)
	gl.DrawArrays(gl.POINTS, 0, r.starCount)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Close releases all GL resources.
func (r *Renderer) Close() {
	for _, vao := range []*uint32{&r.domeVAO, &r.starVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
			*vao = 0
		}
	}
	for _, buf := range []*uint32{&r.domeVBO, &r.domeEBO, &r.starVBO} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if r.sky != nil {
		r.sky.Delete()
	}
	if r.star != nil {
		r.star.Delete()
	}
}
