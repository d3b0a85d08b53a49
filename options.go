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

package ink

import (
	"seehuhn.de/go/ink/erase"
	"seehuhn.de/go/ink/gesture"
)

// Options allows to customize a [Session].
// Fields which are left at their zero value use the defaults.
type Options struct {
	// HitRadius is the radius of the eraser disc, in page pixels.
	HitRadius float64

	// PageWidth and PageHeight give the size of the rendered page.
	// The eraser does not reach outside this area.
	PageWidth  float64
	PageHeight float64

	// PenWidth and MarkerWidth are the ink widths of new strokes.
	PenWidth    float64
	MarkerWidth float64

	// DragErase makes the eraser remove strokes along the whole pointer
	// path, instead of only at the point where the pointer goes down.
	DragErase bool

	// RestoreOrder makes undo and redo put strokes back at their former
	// position in the paint order.  By default, restored strokes are
	// painted on top of all other strokes.
	RestoreOrder bool
}

var defaultOptions = &Options{
	HitRadius:   erase.DefaultRadius,
	PageWidth:   2000,
	PageHeight:  2000,
	PenWidth:    gesture.DefaultPenWidth,
	MarkerWidth: gesture.DefaultMarkerWidth,
}

// mergeOptions returns a copy of opt, with zero fields replaced by the
// values from defaultValues.  opt can be nil, in which case the default
// values are returned.
func mergeOptions(opt, defaultValues *Options) *Options {
	res := *defaultValues
	if opt == nil {
		return &res
	}

	if opt.HitRadius > 0 {
		res.HitRadius = opt.HitRadius
	}
	if opt.PageWidth > 0 {
		res.PageWidth = opt.PageWidth
	}
	if opt.PageHeight > 0 {
		res.PageHeight = opt.PageHeight
	}
	if opt.PenWidth > 0 {
		res.PenWidth = opt.PenWidth
	}
	if opt.MarkerWidth > 0 {
		res.MarkerWidth = opt.MarkerWidth
	}
	res.DragErase = opt.DragErase || defaultValues.DragErase
	res.RestoreOrder = opt.RestoreOrder || defaultValues.RestoreOrder
	return &res
}
