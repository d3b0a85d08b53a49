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

// Package erase finds the strokes touched by the eraser.
//
// The eraser is a disc of fixed radius around the contact point.  A stroke
// is touched if the painted area of the stroke, including its ink width,
// shares at least one pixel with the disc.  Both areas are rasterized into
// alpha masks over the pixel window of the disc, which must lie inside the
// page.
package erase

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/internal/logging"
	"seehuhn.de/go/ink/store"
	"seehuhn.de/go/ink/stroke"
)

// DefaultRadius is the eraser radius in page pixels.
const DefaultRadius = 20

// Hit is a stroke found by [Engine.FindOverlapping].
type Hit struct {
	Stroke   *stroke.Stroke
	Category stroke.Category

	// Index is the position of the stroke in its collection at the time
	// of the query.
	Index int
}

// Engine performs eraser hit tests.
type Engine struct {
	// Radius is the radius of the eraser disc.
	Radius float64

	// Clip is the page area.  Pixels outside Clip are never hit.
	Clip rect.Rect
}

// FindOverlapping returns the strokes on p which overlap the eraser disc
// centred at c.  Pen strokes come first, followed by marker strokes, each
// in collection order.  The page is not modified.
func (e *Engine) FindOverlapping(p *store.Page, c vec.Vec2) []Hit {
	if e.Radius <= 0 || p.IsEmpty() {
		return nil
	}

	disc := rect.Rect{
		LLx: c.X - e.Radius,
		LLy: c.Y - e.Radius,
		URx: c.X + e.Radius,
		URy: c.Y + e.Radius,
	}
	window, ok := intersect(disc, e.Clip)
	if !ok {
		return nil
	}
	touch := newRegion(window)
	if touch == nil {
		return nil
	}
	touch.fillDisc(c, e.Radius)

	var ink *region
	var hits []Hit
	for _, cat := range stroke.Categories {
		for i, s := range p.Strokes(cat) {
			if _, ok := intersect(s.InkBBox(), disc); !ok {
				continue
			}
			if ink == nil {
				ink = newRegion(window)
			} else {
				ink.reset()
			}
			ink.fillStroke(s)
			if touch.overlaps(ink) {
				hits = append(hits, Hit{Stroke: s, Category: cat, Index: i})
			}
		}
	}

	logging.Logger().Debug("erase query",
		"x", c.X, "y", c.Y, "radius", e.Radius, "hits", len(hits))
	return hits
}

// intersect returns the intersection of two rectangles.  If the rectangles
// are disjoint, ok is false.
func intersect(a, b rect.Rect) (res rect.Rect, ok bool) {
	res = rect.Rect{
		LLx: max(a.LLx, b.LLx),
		LLy: max(a.LLy, b.LLy),
		URx: min(a.URx, b.URx),
		URy: min(a.URy, b.URy),
	}
	return res, res.LLx <= res.URx && res.LLy <= res.URy
}
