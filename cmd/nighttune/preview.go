package main

import (
	"time"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/nightyard/internal/engine/raster"
	"github.com/Faultbox/nightyard/internal/scene"
	"github.com/Faultbox/nightyard/pkg/math"
)

// Preview buffer in device pixels. Rendered on the CPU, so kept small.
const (
	previewWidth  = 480
	previewHeight = 270
)

// Minimum time between two preview renders while sliders are dragged.
const previewThrottle = 100 * time.Millisecond

// preview renders the scene with the CPU rasterizer into an ImGui texture.
type preview struct {
	scene  *scene.Scene
	raster *raster.Renderer
	tex    *backend.Texture

	dirty   bool
	last    time.Time
	start   time.Time
	animate bool

	yaw, pitch float32 // degrees
}

func newPreview(sc *scene.Scene, workers int) *preview {
	return &preview{
		scene: sc,
		raster: raster.New(raster.Options{
			Width:   previewWidth,
			Height:  previewHeight,
			Workers: workers,
		}),
		dirty: true,
		start: time.Now(),
		yaw:   sc.Camera.Yaw / math.DegToRad,
		pitch: sc.Camera.Pitch / math.DegToRad,
	}
}

func (p *preview) invalidate() {
	p.dirty = true
}

// refresh re-renders the texture if something changed and the throttle allows.
func (p *preview) refresh() {
	if !p.dirty && !p.animate {
		return
	}
	if p.tex != nil && time.Since(p.last) < previewThrottle {
		return
	}

	p.scene.Camera.Yaw = math.Radians(p.yaw)
	p.scene.Camera.Pitch = math.Radians(p.pitch)
	p.scene.Update(float32(time.Since(p.start).Seconds()))

	rgba := p.raster.Render(p.scene.Frame())

	if p.tex != nil {
		p.tex.Release()
	}
	p.tex = backend.NewTextureFromRgba(rgba)
	p.dirty = false
	p.last = time.Now()
}

func (p *preview) render() {
	imgui.SetNextItemWidth(200)
	if imgui.SliderFloatV("Yaw", &p.yaw, -180, 180, "%.0f", imgui.SliderFlagsNone) {
		p.invalidate()
	}
	imgui.SameLine()
	imgui.SetNextItemWidth(200)
	if imgui.SliderFloatV("Pitch", &p.pitch, -89, 89, "%.0f", imgui.SliderFlagsNone) {
		p.invalidate()
	}
	imgui.SameLine()
	imgui.Checkbox("Animate", &p.animate)
	imgui.Separator()

	p.refresh()
	if p.tex == nil {
		imgui.TextDisabled("Rendering...")
		return
	}

	avail := imgui.ContentRegionAvail()
	w, h := fitSize(previewWidth, previewHeight, avail.X, avail.Y)
	imgui.ImageWithBgV(
		p.tex.ID,
		imgui.NewVec2(w, h),
		imgui.NewVec2(0, 0),
		imgui.NewVec2(1, 1),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)
}

// Close stops the raster workers and frees the texture.
func (p *preview) Close() {
	p.raster.Close()
	if p.tex != nil {
		p.tex.Release()
		p.tex = nil
	}
}

// fitSize scales w x h to the largest size that fits in availW x availH
// while keeping its aspect ratio.
func fitSize(w, h int, availW, availH float32) (float32, float32) {
	if w <= 0 || h <= 0 || availW <= 0 || availH <= 0 {
		return 0, 0
	}
	scale := availW / float32(w)
	if s := availH / float32(h); s < scale {
		scale = s
	}
	return float32(w) * scale, float32(h) * scale
}
