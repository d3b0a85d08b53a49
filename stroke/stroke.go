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

// Package stroke implements freehand ink strokes.
//
// A [Stroke] is an ordered sequence of points in the pixel space of a
// rendered page, together with the tool [Category] which drew it.  Strokes
// are built incrementally using a [Builder] while the pointer is down, and
// are immutable once finished.
//
// Strokes are identified by reference: two strokes with identical points
// are different strokes.  Every stroke also carries a random [uuid.UUID],
// which can be used to refer to the stroke outside of the process.
package stroke

import (
	"fmt"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Category is the tool category of a stroke.
type Category uint8

// These are the supported stroke categories.
const (
	Pen Category = iota
	Marker
)

// Categories lists all stroke categories in paint order.
var Categories = []Category{Pen, Marker}

func (c Category) String() string {
	switch c {
	case Pen:
		return "pen"
	case Marker:
		return "marker"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Stroke is a finished freehand curve.
//
// The point sequence of a stroke is never modified after the stroke
// has been created.
type Stroke struct {
	// ID is a random identifier, unique for every stroke.
	ID uuid.UUID

	// Category is the tool which drew the stroke.
	Category Category

	// Width is the ink width in page pixels.  The width is the same
	// along the whole stroke.
	Width float64

	points []vec.Vec2
	bbox   rect.Rect
}

// New creates a stroke from a sequence of points.
// At least one point must be given.
func New(cat Category, width float64, points ...vec.Vec2) *Stroke {
	if len(points) == 0 {
		panic("stroke: no points")
	}
	pts := make([]vec.Vec2, len(points))
	copy(pts, points)
	return newStroke(cat, width, pts)
}

func newStroke(cat Category, width float64, pts []vec.Vec2) *Stroke {
	bbox := rect.Rect{
		LLx: pts[0].X,
		LLy: pts[0].Y,
		URx: pts[0].X,
		URy: pts[0].Y,
	}
	for _, p := range pts[1:] {
		bbox.LLx = min(bbox.LLx, p.X)
		bbox.LLy = min(bbox.LLy, p.Y)
		bbox.URx = max(bbox.URx, p.X)
		bbox.URy = max(bbox.URy, p.Y)
	}

	return &Stroke{
		ID:       uuid.New(),
		Category: cat,
		Width:    width,
		points:   pts,
		bbox:     bbox,
	}
}

// Len returns the number of points in the stroke.
func (s *Stroke) Len() int {
	return len(s.points)
}

// Points returns a copy of the points of the stroke.
func (s *Stroke) Points() []vec.Vec2 {
	res := make([]vec.Vec2, len(s.points))
	copy(res, s.points)
	return res
}

// At returns the i-th point of the stroke.
func (s *Stroke) At(i int) vec.Vec2 {
	return s.points[i]
}

// BBox returns the smallest rectangle which contains all points of the
// stroke.  The ink width is not included.
func (s *Stroke) BBox() rect.Rect {
	return s.bbox
}

// InkBBox returns the bounding box of the painted stroke, i.e. the
// bounding box of the points grown by half the ink width.
func (s *Stroke) InkBBox() rect.Rect {
	hw := s.Width / 2
	return rect.Rect{
		LLx: s.bbox.LLx - hw,
		LLy: s.bbox.LLy - hw,
		URx: s.bbox.URx + hw,
		URy: s.bbox.URy + hw,
	}
}

// Path returns the stroke as an open polyline.
// The first point is a MoveTo, all following points are LineTo.
func (s *Stroke) Path() *path.Data {
	p := &path.Data{}
	for i, pt := range s.points {
		if i == 0 {
			p.Cmds = append(p.Cmds, path.CmdMoveTo)
		} else {
			p.Cmds = append(p.Cmds, path.CmdLineTo)
		}
		p.Coords = append(p.Coords, pt)
	}
	return p
}

func (s *Stroke) String() string {
	return fmt.Sprintf("%s stroke %s (%d points)", s.Category, s.ID, len(s.points))
}
