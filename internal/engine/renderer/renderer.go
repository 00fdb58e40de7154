// Package renderer owns the OpenGL context state shared by every pass.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/nightyard/internal/logger"
	"github.com/Faultbox/nightyard/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int // drawing buffer, device pixels
	Height int
}

// Renderer sets up global GL state and frames each draw.
type Renderer struct {
	config Config
	clear  math.Vec3
}

// New initializes OpenGL.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Close is a no-op kept for symmetry with the passes it outlives.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the drawing-buffer size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Aspect returns width over height.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// SetClearColor sets the colour behind everything, normally the fog colour.
func (r *Renderer) SetClearColor(c math.Vec3) {
	r.clear = c
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.ClearColor(r.clear.X, r.clear.Y, r.clear.Z, 1)
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}
