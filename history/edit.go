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

package history

import (
	"fmt"

	"seehuhn.de/go/ink/stroke"
)

// Action describes where a stroke is placed by an [Op].
type Action uint8

// These are the possible actions.
const (
	// AddPen places the stroke into the pen collection.
	AddPen Action = iota + 1

	// AddMarker places the stroke into the marker collection.
	AddMarker

	// Remove takes the stroke off the page.
	Remove
)

func (a Action) String() string {
	switch a {
	case AddPen:
		return "add-pen"
	case AddMarker:
		return "add-marker"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// AddAction returns the action which adds a stroke to the collection
// of the given category.
func AddAction(cat stroke.Category) Action {
	if cat == stroke.Marker {
		return AddMarker
	}
	return AddPen
}

// category returns the collection an add action refers to.
func (a Action) category() (stroke.Category, bool) {
	switch a {
	case AddPen:
		return stroke.Pen, true
	case AddMarker:
		return stroke.Marker, true
	default:
		return 0, false
	}
}

// Op is a reversible change to a single stroke.
//
// Action is what the operation does when it is applied.  From records where
// the stroke was before the operation, using the same values: AddPen and
// AddMarker name the collection the stroke was in, and Remove means that
// the stroke was not on the page.
type Op struct {
	Stroke *stroke.Stroke
	Action Action
	From   Action

	// Index is the position of the stroke in the collection it was
	// added to or removed from.
	Index int
}

// Reverse returns the operation which undoes op.
func (op Op) Reverse() Op {
	return Op{
		Stroke: op.Stroke,
		Action: op.From,
		From:   op.Action,
		Index:  op.Index,
	}
}

// Edit is an atomic group of operations on a single page.
// An Edit is the unit of undo and redo.
type Edit struct {
	Page int
	Ops  []Op
}

// Reverse returns the edit which undoes e.  Every operation is reversed,
// the order of the operations is kept.
func (e *Edit) Reverse() *Edit {
	ops := make([]Op, len(e.Ops))
	for i, op := range e.Ops {
		ops[i] = op.Reverse()
	}
	return &Edit{
		Page: e.Page,
		Ops:  ops,
	}
}
