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

package gesture

import (
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/ink/stroke"
)

// ErrUnknownTool is returned by [ParseTool] for unrecognised tool names.
var ErrUnknownTool = errors.New("unknown tool")

// Tool is the active input tool.
type Tool uint8

// These are the available tools.  The zero value means that no tool is
// selected, and all pointer events are ignored.
const (
	None Tool = iota
	Pen
	Marker
	Eraser
)

func (t Tool) String() string {
	switch t {
	case None:
		return "none"
	case Pen:
		return "pen"
	case Marker:
		return "marker"
	case Eraser:
		return "eraser"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// ParseTool converts a tool name, as returned by [Tool.String], into a Tool.
// Case is ignored.
func ParseTool(name string) (Tool, error) {
	switch strings.ToLower(name) {
	case "none":
		return None, nil
	case "pen":
		return Pen, nil
	case "marker":
		return Marker, nil
	case "eraser":
		return Eraser, nil
	}
	return None, fmt.Errorf("%q: %w", name, ErrUnknownTool)
}

// category returns the stroke category drawn by a tool.
func (t Tool) category() (stroke.Category, bool) {
	switch t {
	case Pen:
		return stroke.Pen, true
	case Marker:
		return stroke.Marker, true
	default:
		return 0, false
	}
}
