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

// Package history implements linear undo and redo of stroke edits.
//
// Every user action is recorded as an [Edit], a list of reversible [Op]
// values which all apply to the same page.  The [History] keeps two stacks
// of edits.  Recording a new edit discards the redo stack, so there is
// only ever a single timeline.
package history

import (
	"seehuhn.de/go/ink/internal/logging"
	"seehuhn.de/go/ink/store"
)

// History holds the undo and redo stacks.
type History struct {
	// RestoreOrder selects where strokes are put back into their collection
	// when an edit is undone or redone.  If false, strokes are appended at
	// the end of the collection, so that they are painted last.  If true,
	// strokes are re-inserted at the position recorded in the operation.
	RestoreOrder bool

	undo []*Edit
	redo []*Edit
}

// Record pushes e onto the undo stack and clears the redo stack.
// Edits without operations are ignored.
func (h *History) Record(e *Edit) {
	if e == nil || len(e.Ops) == 0 {
		return
	}
	h.undo = append(h.undo, e)
	clear(h.redo)
	h.redo = h.redo[:0]
}

// Undo reverts the most recent edit and returns the index of the page
// which was changed.  If there is nothing to undo, ok is false and the
// store is not modified.
func (h *History) Undo(s *store.Store) (page int, ok bool) {
	n := len(h.undo)
	if n == 0 {
		return 0, false
	}
	e := h.undo[n-1]
	h.undo[n-1] = nil
	h.undo = h.undo[:n-1]

	h.apply(s, e.Reverse())
	h.redo = append(h.redo, e)

	logging.Logger().Debug("undo", "page", e.Page, "ops", len(e.Ops))
	return e.Page, true
}

// Redo re-applies the most recently undone edit and returns the index of
// the page which was changed.  If there is nothing to redo, ok is false and
// the store is not modified.
func (h *History) Redo(s *store.Store) (page int, ok bool) {
	n := len(h.redo)
	if n == 0 {
		return 0, false
	}
	e := h.redo[n-1]
	h.redo[n-1] = nil
	h.redo = h.redo[:n-1]

	h.apply(s, e)
	h.undo = append(h.undo, e)

	logging.Logger().Debug("redo", "page", e.Page, "ops", len(e.Ops))
	return e.Page, true
}

// UndoLen returns the number of edits which can be undone.
func (h *History) UndoLen() int {
	return len(h.undo)
}

// RedoLen returns the number of edits which can be redone.
func (h *History) RedoLen() int {
	return len(h.redo)
}

// Clear empties both stacks.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// apply carries out the operations of e, in order.
func (h *History) apply(s *store.Store, e *Edit) {
	p := s.Ensure(e.Page)
	for _, op := range e.Ops {
		if cat, isAdd := op.Action.category(); isAdd {
			if p.Index(cat, op.Stroke) >= 0 {
				continue
			}
			if h.RestoreOrder {
				p.Insert(cat, op.Stroke, op.Index)
			} else {
				p.Append(cat, op.Stroke)
			}
			continue
		}

		// Strokes which are no longer present are skipped.
		if cat, ok := op.From.category(); ok {
			p.Remove(cat, op.Stroke)
		}
	}
}
