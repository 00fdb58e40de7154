package raster

import (
	"image"
	"runtime"

	"github.com/alitto/pond/v2"
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/nightyard/internal/logger"
	"github.com/Faultbox/nightyard/pkg/math"
)

// DefaultTileSize is the edge length of the square tiles handed to workers.
const DefaultTileSize = 32

// Options configures a Renderer.
type Options struct {
	Width    int // device pixels
	Height   int // device pixels
	Workers  int // 0 means one per CPU
	TileSize int // 0 means DefaultTileSize
}

// Renderer rasterizes frames on a worker pool. A Renderer may be reused for
// any number of frames but renders one frame at a time.
type Renderer struct {
	opts Options
	pool pond.Pool
	log  *zap.Logger

	color []math.Vec3
	depth []float32
}

// New creates a renderer and starts its worker pool.
func New(opts Options) *Renderer {
	if opts.Width < 1 {
		opts.Width = 1
	}
	if opts.Height < 1 {
		opts.Height = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.TileSize <= 0 {
		opts.TileSize = DefaultTileSize
	}

	n := opts.Width * opts.Height
	r := &Renderer{
		opts:  opts,
		pool:  pond.NewPool(opts.Workers),
		log:   logger.Named("raster"),
		color: make([]math.Vec3, n),
		depth: make([]float32, n),
	}
	r.log.Debug("renderer created",
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Int("workers", opts.Workers),
	)
	return r
}

// Size returns the drawing-buffer size in device pixels.
func (r *Renderer) Size() (width, height int) {
	return r.opts.Width, r.opts.Height
}

// Close stops the worker pool.
func (r *Renderer) Close() {
	r.pool.StopAndWait()
}

type tile struct {
	x0, y0, x1, y1 int
}

func (r *Renderer) tiles() []tile {
	w, h, ts := r.opts.Width, r.opts.Height, r.opts.TileSize
	var out []tile
	for ty := 0; ty < h; ty += ts {
		for tx := 0; tx < w; tx += ts {
			out = append(out, tile{
				x0: tx,
				y0: ty,
				x1: min(tx+ts, w),
				y1: min(ty+ts, h),
			})
		}
	}
	return out
}

// Render draws f and returns the resolved 8-bit image. f.Camera must be set.
func (r *Renderer) Render(f Frame) *image.RGBA {
	w, h := r.opts.Width, r.opts.Height
	aspect := float32(w) / float32(h)

	sprites := r.project(f, aspect)

	group := r.pool.NewGroup()
	for _, t := range r.tiles() {
		group.Submit(func() {
			r.shadeTile(f, t, aspect)
			r.splatTile(t, sprites)
		})
	}
	if err := group.Wait(); err != nil {
		r.log.Error("render tile failed", zap.Error(err))
	}

	return r.resolve(f.Exposure)
}

// shadeTile runs the opaque passes: surfaces where they hit, backdrop elsewhere.
func (r *Renderer) shadeTile(f Frame, t tile, aspect float32) {
	w, h := r.opts.Width, r.opts.Height
	eye := f.Camera.Position()

	for y := t.y0; y < t.y1; y++ {
		fy := float32(h-y) - 0.5
		for x := t.x0; x < t.x1; x++ {
			fx := float32(x) + 0.5
			frag := math.Vec2{X: fx, Y: fy}
			dir := f.Camera.RayDirection(2*fx/float32(w)-1, 2*fy/float32(h)-1, aspect)

			i := y*w + x
			r.depth[i] = math32.Inf(1)

			hit := false
			for _, s := range f.Surfaces {
				col, d, ok := s.ShadeSurface(eye, dir)
				if ok && d < r.depth[i] {
					r.color[i] = col
					r.depth[i] = d
					hit = true
				}
			}
			if hit {
				continue
			}

			if f.Backdrop != nil {
				r.color[i] = f.Backdrop.ShadeBackdrop(frag, dir)
			} else {
				r.color[i] = math.Vec3{}
			}
		}
	}
}
