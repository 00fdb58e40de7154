package raster

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/pkg/math"
)

// sprite is a point projected to the screen, in image pixel coordinates
// (origin top-left).
type sprite struct {
	prog       PointProgram
	index      int
	cx, cy     float32
	size       float32
	calculated float32
	dist       float32 // eye distance, tested against surface depth
}

// project transforms every point of every program once per frame.
func (r *Renderer) project(f Frame, aspect float32) []sprite {
	if len(f.Points) == 0 || f.Camera == nil {
		return nil
	}
	w, h := float32(r.opts.Width), float32(r.opts.Height)
	view := f.Camera.ViewMatrix()
	proj := f.Camera.ProjectionMatrix(aspect)
	eye := f.Camera.Position()

	var out []sprite
	for _, p := range f.Points {
		for i := 0; i < p.PointCount(); i++ {
			wp := p.PointPosition(i)
			vp := view.MulVec4(math.Point(wp))
			viewZ := vp[2]
			if viewZ >= 0 {
				continue
			}
			clip := proj.MulVec4(vp)
			if clip[3] <= 0 {
				continue
			}
			ndcX, ndcY, ndcZ := clip[0]/clip[3], clip[1]/clip[3], clip[2]/clip[3]
			if ndcZ > 1 {
				continue
			}

			size, calc := p.PointSize(i, viewZ)
			if size <= 0 {
				continue
			}
			out = append(out, sprite{
				prog:       p,
				index:      i,
				cx:         (ndcX + 1) / 2 * w,
				cy:         h - (ndcY+1)/2*h,
				size:       size,
				calculated: calc,
				dist:       wp.Distance(eye),
			})
		}
	}
	return out
}

// splatTile adds every sprite overlapping t. A pixel is covered when its
// centre lies inside the sprite's square.
func (r *Renderer) splatTile(t tile, sprites []sprite) {
	w := r.opts.Width
	for _, s := range sprites {
		half := s.size / 2
		left, top := s.cx-half, s.cy-half

		x0 := max(int(math32.Ceil(left-0.5)), t.x0)
		x1 := min(int(math32.Ceil(left+s.size-0.5)), t.x1)
		y0 := max(int(math32.Ceil(top-0.5)), t.y0)
		y1 := min(int(math32.Ceil(top+s.size-0.5)), t.y1)
		if x0 >= x1 || y0 >= y1 {
			continue
		}

		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				i := y*w + x
				if s.dist >= r.depth[i] {
					continue
				}
				pc := math.Vec2{
					X: (float32(x) + 0.5 - left) / s.size,
					Y: (float32(y) + 0.5 - top) / s.size,
				}
				col, alpha := s.prog.PointColor(s.index, pc, s.calculated)
				if alpha <= 0 {
					continue
				}
				r.color[i] = r.color[i].Add(col.Scale(alpha))
			}
		}
	}
}
