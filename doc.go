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

// Package ink implements freehand ink annotations for the pages of a
// document.
//
// The user draws on top of a rendered page with a pen or a highlighting
// marker, and removes strokes with an eraser.  All changes can be undone
// and redone.  The package does not render documents; a viewer shows the
// page and then paints the strokes returned by [Session.StrokesToDraw] on
// top.  Coordinates are in the pixel space of the rendered page.
//
// A [Session] holds all state for one open document:
//
//	s := ink.NewSession(nil)
//	defer s.Close()
//	s.SetTool(gesture.Pen)
//	s.PointerDown(10, 10)
//	s.PointerMove(20, 20)
//	s.PointerUp()
//	pen, marker := s.StrokesToDraw(0)
//
// Annotations are kept in memory only, and are lost when the session is
// closed.
package ink
