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

// Package gesture turns pointer events into stroke edits.
//
// A [Controller] interprets Down, Move and Up events according to the
// selected [Tool].  Pen and marker gestures create one stroke each.  Eraser
// gestures remove all strokes touched by the eraser disc.  Every completed
// gesture which changes the page is recorded as a single edit in the
// history.
package gesture

import (
	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/erase"
	"seehuhn.de/go/ink/history"
	"seehuhn.de/go/ink/internal/logging"
	"seehuhn.de/go/ink/store"
	"seehuhn.de/go/ink/stroke"
)

// Default ink widths, in page pixels.
const (
	DefaultPenWidth    = 5
	DefaultMarkerWidth = 30
)

// Controller is the gesture state machine.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	store   *store.Store
	history *history.History
	eraser  *erase.Engine

	// PenWidth and MarkerWidth are the ink widths of new strokes.
	PenWidth    float64
	MarkerWidth float64

	// DragErase selects continuous erasing.  If set, the eraser removes
	// strokes at every pointer position between Down and Up, and the whole
	// gesture becomes a single edit.  Otherwise only the Down position
	// erases.
	DragErase bool

	tool   Tool
	active bool
	page   int

	builder *stroke.Builder

	// state of a drag erase
	before  map[*stroke.Stroke]int
	removed []history.Op
}

// New creates a controller which edits s, records into h and uses e for
// eraser hit tests.
func New(s *store.Store, h *history.History, e *erase.Engine) *Controller {
	return &Controller{
		store:       s,
		history:     h,
		eraser:      e,
		PenWidth:    DefaultPenWidth,
		MarkerWidth: DefaultMarkerWidth,
	}
}

// Tool returns the selected tool.
func (c *Controller) Tool() Tool {
	return c.tool
}

// SetTool selects a tool.  A gesture in progress is finished first, as if
// the pointer had been lifted.
func (c *Controller) SetTool(t Tool) {
	if c.active {
		c.Up()
	}
	c.tool = t
	logging.Logger().Debug("tool selected", "tool", t)
}

// Active reports whether a gesture is in progress.
func (c *Controller) Active() bool {
	return c.active
}

// Down starts a gesture at p on the current page.
func (c *Controller) Down(p vec.Vec2) {
	if c.active {
		c.Up()
	}

	log := logging.Logger()
	log.Debug("pointer down", "tool", c.tool, "x", p.X, "y", p.Y)

	c.page = c.store.Current()
	if cat, ok := c.tool.category(); ok {
		width := c.PenWidth
		if cat == stroke.Marker {
			width = c.MarkerWidth
		}
		c.builder = stroke.NewBuilder(cat, width, p)
		c.active = true
		return
	}
	if c.tool != Eraser {
		return
	}

	if !c.DragErase {
		c.eraseOnce(p)
		return
	}

	pg := c.store.Ensure(c.page)
	c.before = make(map[*stroke.Stroke]int)
	for _, cat := range stroke.Categories {
		for i, s := range pg.Strokes(cat) {
			c.before[s] = i
		}
	}
	c.active = true
	c.eraseMore(p)
}

// Move continues the current gesture.  Without an active gesture, Move does
// nothing.
func (c *Controller) Move(p vec.Vec2) {
	if !c.active {
		return
	}
	if c.builder != nil {
		c.builder.Add(p)
		return
	}
	c.eraseMore(p)
}

// Up completes the current gesture.  Without an active gesture, Up does
// nothing.
func (c *Controller) Up() {
	if !c.active {
		return
	}
	c.active = false

	log := logging.Logger()
	if c.builder != nil {
		s := c.builder.Finish()
		c.builder = nil

		pg := c.store.Ensure(c.page)
		idx := pg.Len(s.Category)
		pg.Append(s.Category, s)
		c.history.Record(&history.Edit{
			Page: c.page,
			Ops: []history.Op{{
				Stroke: s,
				Action: history.AddAction(s.Category),
				From:   history.Remove,
				Index:  idx,
			}},
		})
		log.Debug("stroke added", "page", c.page, "stroke", s)
		return
	}

	ops := c.removed
	c.removed = nil
	c.before = nil
	slices.SortFunc(ops, func(a, b history.Op) int {
		if a.From != b.From {
			return int(a.From) - int(b.From)
		}
		return a.Index - b.Index
	})
	c.history.Record(&history.Edit{Page: c.page, Ops: ops})
	log.Debug("erase finished", "page", c.page, "removed", len(ops))
}

// eraseOnce removes all strokes under the eraser disc at p as a single edit.
func (c *Controller) eraseOnce(p vec.Vec2) {
	pg := c.store.Ensure(c.page)
	hits := c.eraser.FindOverlapping(pg, p)
	if len(hits) == 0 {
		return
	}

	e := &history.Edit{Page: c.page}
	for _, h := range hits {
		e.Ops = append(e.Ops, history.Op{
			Stroke: h.Stroke,
			Action: history.Remove,
			From:   history.AddAction(h.Category),
			Index:  h.Index,
		})
	}
	for _, h := range hits {
		pg.Remove(h.Category, h.Stroke)
	}
	c.history.Record(e)
	logging.Logger().Debug("erased", "page", c.page, "removed", len(hits))
}

// eraseMore removes the strokes under the eraser disc at p, as part of a
// drag erase gesture.
func (c *Controller) eraseMore(p vec.Vec2) {
	pg := c.store.Ensure(c.page)
	for _, h := range c.eraser.FindOverlapping(pg, p) {
		pg.Remove(h.Category, h.Stroke)
		c.removed = append(c.removed, history.Op{
			Stroke: h.Stroke,
			Action: history.Remove,
			From:   history.AddAction(h.Category),
			Index:  c.before[h.Stroke],
		})
	}
}
