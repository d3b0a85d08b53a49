// seehuhn.de/go/ink - freehand ink annotations for document pages
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package erase

import (
	"image"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/stroke"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498

// region is an alpha mask over an integer pixel window of the page.
type region struct {
	x0, y0 int
	mask   *image.Alpha
	raster *vector.Rasterizer
}

// newRegion allocates a mask for the pixels which intersect box.
// If box covers no pixels, nil is returned.
func newRegion(box rect.Rect) *region {
	x0 := int(math.Floor(box.LLx))
	y0 := int(math.Floor(box.LLy))
	x1 := int(math.Ceil(box.URx))
	y1 := int(math.Ceil(box.URy))
	if x1 <= x0 || y1 <= y0 {
		return nil
	}
	w, h := x1-x0, y1-y0
	return &region{
		x0:     x0,
		y0:     y0,
		mask:   image.NewAlpha(image.Rect(0, 0, w, h)),
		raster: vector.NewRasterizer(w, h),
	}
}

// reset clears the mask.
func (r *region) reset() {
	clear(r.mask.Pix)
}

// begin starts a new rasterizer pass.
func (r *region) begin() {
	b := r.mask.Bounds()
	r.raster.Reset(b.Dx(), b.Dy())
}

// flush paints the shapes added since begin into the mask.
func (r *region) flush() {
	r.raster.Draw(r.mask, r.mask.Bounds(), image.Opaque, image.Point{})
}

func (r *region) moveTo(p vec.Vec2) {
	r.raster.MoveTo(float32(p.X-float64(r.x0)), float32(p.Y-float64(r.y0)))
}

func (r *region) lineTo(p vec.Vec2) {
	r.raster.LineTo(float32(p.X-float64(r.x0)), float32(p.Y-float64(r.y0)))
}

func (r *region) cubeTo(c1, c2, p vec.Vec2) {
	x, y := float64(r.x0), float64(r.y0)
	r.raster.CubeTo(
		float32(c1.X-x), float32(c1.Y-y),
		float32(c2.X-x), float32(c2.Y-y),
		float32(p.X-x), float32(p.Y-y))
}

// addCircle adds a closed circle to the current pass.
// All circles are traced in the same direction.
func (r *region) addCircle(c vec.Vec2, radius float64) {
	k := kappa * radius
	r.moveTo(vec.Vec2{X: c.X + radius, Y: c.Y})
	r.cubeTo(
		vec.Vec2{X: c.X + radius, Y: c.Y + k},
		vec.Vec2{X: c.X + k, Y: c.Y + radius},
		vec.Vec2{X: c.X, Y: c.Y + radius})
	r.cubeTo(
		vec.Vec2{X: c.X - k, Y: c.Y + radius},
		vec.Vec2{X: c.X - radius, Y: c.Y + k},
		vec.Vec2{X: c.X - radius, Y: c.Y})
	r.cubeTo(
		vec.Vec2{X: c.X - radius, Y: c.Y - k},
		vec.Vec2{X: c.X - k, Y: c.Y - radius},
		vec.Vec2{X: c.X, Y: c.Y - radius})
	r.cubeTo(
		vec.Vec2{X: c.X + k, Y: c.Y - radius},
		vec.Vec2{X: c.X + radius, Y: c.Y - k},
		vec.Vec2{X: c.X + radius, Y: c.Y})
	r.raster.ClosePath()
}

// fillDisc paints a filled circle into the mask.
func (r *region) fillDisc(c vec.Vec2, radius float64) {
	r.begin()
	r.addCircle(c, radius)
	r.flush()
}

// fillStroke paints the ink of s into the mask: a rectangle of the stroke
// width along every segment, plus a round cap or join at every point.
//
// Segments and round parts are drawn in separate passes.  Within a pass
// all shapes have the same orientation, so that overlapping shapes never
// cancel each other out.
func (r *region) fillStroke(s *stroke.Stroke) {
	hw := s.Width / 2
	if hw < 0.5 {
		hw = 0.5
	}

	p := s.Path()

	r.begin()
	var cur vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			k++
		case path.CmdLineTo:
			next := p.Coords[k]
			k++
			d := next.Sub(cur)
			l := d.Length()
			if l > 0 {
				n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(hw / l)
				r.moveTo(cur.Add(n))
				r.lineTo(next.Add(n))
				r.lineTo(next.Sub(n))
				r.lineTo(cur.Sub(n))
				r.raster.ClosePath()
			}
			cur = next
		}
	}
	r.flush()

	r.begin()
	for _, pt := range p.Coords {
		r.addCircle(pt, hw)
	}
	r.flush()
}

// overlaps reports whether some pixel is covered in both r and other.
// Both regions must use the same window.
func (r *region) overlaps(other *region) bool {
	for i, a := range r.mask.Pix {
		if a != 0 && other.mask.Pix[i] != 0 {
			return true
		}
	}
	return false
}
