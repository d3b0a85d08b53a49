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
	"errors"
	"fmt"
	"sync"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/erase"
	"seehuhn.de/go/ink/gesture"
	"seehuhn.de/go/ink/history"
	"seehuhn.de/go/ink/internal/logging"
	"seehuhn.de/go/ink/store"
	"seehuhn.de/go/ink/stroke"
)

// ErrInvalidPage is returned when a negative page index is used.
var ErrInvalidPage = errors.New("invalid page index")

// Session holds the ink annotations of one open document, together with
// the tool state and the edit history.
//
// All methods are safe for concurrent use.  Every edit is applied under a
// single lock, so a reader calling [Session.StrokesToDraw] never observes
// a partially applied edit.
type Session struct {
	mu sync.Mutex

	store   *store.Store
	history *history.History
	eraser  *erase.Engine
	ctrl    *gesture.Controller
	closed  bool
}

// NewSession creates an empty session.  Page 0 is the current page and no
// tool is selected.  opt can be nil, to use the default options.
func NewSession(opt *Options) *Session {
	opt = mergeOptions(opt, defaultOptions)

	s := store.New()
	h := &history.History{RestoreOrder: opt.RestoreOrder}
	e := &erase.Engine{
		Radius: opt.HitRadius,
		Clip:   rect.Rect{URx: opt.PageWidth, URy: opt.PageHeight},
	}
	c := gesture.New(s, h, e)
	c.PenWidth = opt.PenWidth
	c.MarkerWidth = opt.MarkerWidth
	c.DragErase = opt.DragErase

	logging.Logger().Info("session opened",
		"radius", opt.HitRadius, "dragErase", opt.DragErase,
		"restoreOrder", opt.RestoreOrder)

	return &Session{
		store:   s,
		history: h,
		eraser:  e,
		ctrl:    c,
	}
}

// SetCurrentPage selects the page which subsequent gestures draw on.
// A gesture in progress stays on the page where it started.
func (s *Session) SetCurrentPage(i int) error {
	if i < 0 {
		return fmt.Errorf("page %d: %w", i, ErrInvalidPage)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.store.SetCurrent(i)
	logging.Logger().Debug("page selected", "page", i)
	return nil
}

// CurrentPage returns the index of the current page.
func (s *Session) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0
	}
	return s.store.Current()
}

// SetPageSize informs the session about the pixel size of the rendered
// page.  The eraser does not reach outside this area.
func (s *Session) SetPageSize(width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eraser.Clip = rect.Rect{URx: width, URy: height}
}

// SetTool selects the input tool.  A gesture in progress is completed
// first.
func (s *Session) SetTool(t gesture.Tool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.ctrl.SetTool(t)
}

// Tool returns the selected input tool.
func (s *Session) Tool() gesture.Tool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Tool()
}

// PointerDown starts a gesture at (x, y) on the current page.
func (s *Session) PointerDown(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.ctrl.Down(vec.Vec2{X: x, Y: y})
}

// PointerMove continues the current gesture.
func (s *Session) PointerMove(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.ctrl.Move(vec.Vec2{X: x, Y: y})
}

// PointerUp completes the current gesture.
func (s *Session) PointerUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.ctrl.Up()
}

// Undo reverts the most recent edit.  The return value gives the page
// which was changed, so that the viewer can redraw it.  If there is
// nothing to undo, ok is false.
func (s *Session) Undo() (page int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, false
	}
	return s.history.Undo(s.store)
}

// Redo re-applies the most recently undone edit.  The return value gives
// the page which was changed.  If there is nothing to redo, ok is false.
func (s *Session) Redo() (page int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, false
	}
	return s.history.Redo(s.store)
}

// CanUndo reports whether there is an edit which can be undone.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.UndoLen() > 0
}

// CanRedo reports whether there is an edit which can be redone.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.RedoLen() > 0
}

// StrokesToDraw returns the strokes of page i, in paint order.  Pen strokes
// are painted first, marker strokes on top.  The returned slices are
// copies.  For pages which have never been visited, both slices are nil.
func (s *Session) StrokesToDraw(i int) (pen, marker []*stroke.Stroke) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, nil
	}
	p, err := s.store.Get(i)
	if err != nil {
		return nil, nil
	}
	return p.Strokes(stroke.Pen), p.Strokes(stroke.Marker)
}

// Pages returns the indices of all pages which have been visited,
// in increasing order.
func (s *Session) Pages() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	var res []int
	for i := range s.store.All() {
		res = append(res, i)
	}
	return res
}

// Close discards all annotations and the edit history.  After Close,
// all methods of the session are no-ops.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.ctrl.SetTool(gesture.None)
	s.history.Clear()
	s.store = store.New()
	logging.Logger().Info("session closed")
}
