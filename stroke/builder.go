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

package stroke

import "seehuhn.de/go/geom/vec"

// Builder collects the points of a stroke while it is being drawn.
type Builder struct {
	cat    Category
	width  float64
	points []vec.Vec2
}

// NewBuilder starts a new stroke at the given point.
func NewBuilder(cat Category, width float64, start vec.Vec2) *Builder {
	return &Builder{
		cat:    cat,
		width:  width,
		points: []vec.Vec2{start},
	}
}

// Add appends a point to the stroke.
func (b *Builder) Add(p vec.Vec2) {
	b.points = append(b.points, p)
}

// Len returns the number of points collected so far.
func (b *Builder) Len() int {
	return len(b.points)
}

// Category returns the category of the stroke under construction.
func (b *Builder) Category() Category {
	return b.cat
}

// Finish returns the completed stroke.
// The builder must not be used after Finish has been called.
func (b *Builder) Finish() *Stroke {
	pts := b.points
	b.points = nil
	return newStroke(b.cat, b.width, pts)
}
