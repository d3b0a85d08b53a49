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

package store

import (
	"golang.org/x/exp/slices"

	"seehuhn.de/go/ink/stroke"
)

// Page holds the annotations of one document page.
//
// Pen and marker strokes are kept in two separate collections.  Within each
// collection, strokes are kept in paint order.
type Page struct {
	pen    []*stroke.Stroke
	marker []*stroke.Stroke
}

func (p *Page) list(cat stroke.Category) *[]*stroke.Stroke {
	if cat == stroke.Marker {
		return &p.marker
	}
	return &p.pen
}

// Strokes returns a copy of the given collection, in paint order.
func (p *Page) Strokes(cat stroke.Category) []*stroke.Stroke {
	return slices.Clone(*p.list(cat))
}

// Len returns the number of strokes in the given collection.
func (p *Page) Len(cat stroke.Category) int {
	return len(*p.list(cat))
}

// IsEmpty reports whether the page has no strokes at all.
func (p *Page) IsEmpty() bool {
	return len(p.pen) == 0 && len(p.marker) == 0
}

// Index returns the position of s in the given collection, or -1 if the
// stroke is not present.  Strokes are compared by reference.
func (p *Page) Index(cat stroke.Category, s *stroke.Stroke) int {
	return slices.Index(*p.list(cat), s)
}

// Append adds s at the end of the given collection.
func (p *Page) Append(cat stroke.Category, s *stroke.Stroke) {
	l := p.list(cat)
	*l = append(*l, s)
}

// Insert adds s to the given collection at position i.
// Out of range positions are clamped to the valid range.
func (p *Page) Insert(cat stroke.Category, s *stroke.Stroke, i int) {
	l := p.list(cat)
	i = max(0, min(i, len(*l)))
	*l = slices.Insert(*l, i, s)
}

// Remove deletes s from the given collection and returns the position the
// stroke had.  If s is not in the collection, Remove does nothing and
// returns -1.
func (p *Page) Remove(cat stroke.Category, s *stroke.Stroke) int {
	l := p.list(cat)
	i := slices.Index(*l, s)
	if i < 0 {
		return -1
	}
	*l = slices.Delete(*l, i, i+1)
	return i
}
