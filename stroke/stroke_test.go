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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestBuilder(t *testing.T) {
	b := NewBuilder(Marker, 30, vec.Vec2{X: 10, Y: 10})
	b.Add(vec.Vec2{X: 20, Y: 5})
	b.Add(vec.Vec2{X: 15, Y: 40})
	if b.Len() != 3 {
		t.Fatalf("got %d points, want 3", b.Len())
	}
	s := b.Finish()

	want := []vec.Vec2{{X: 10, Y: 10}, {X: 20, Y: 5}, {X: 15, Y: 40}}
	if diff := cmp.Diff(want, s.Points()); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	if s.Category != Marker {
		t.Errorf("got category %s, want marker", s.Category)
	}
	if s.Width != 30 {
		t.Errorf("got width %g, want 30", s.Width)
	}

	wantBox := rect.Rect{LLx: 10, LLy: 5, URx: 20, URy: 40}
	if diff := cmp.Diff(wantBox, s.BBox()); diff != "" {
		t.Errorf("bbox mismatch (-want +got):\n%s", diff)
	}
	wantInk := rect.Rect{LLx: -5, LLy: -10, URx: 35, URy: 55}
	if diff := cmp.Diff(wantInk, s.InkBBox()); diff != "" {
		t.Errorf("ink bbox mismatch (-want +got):\n%s", diff)
	}
}

func TestPointsAreCopied(t *testing.T) {
	in := []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}
	s := New(Pen, 5, in...)

	in[0] = vec.Vec2{X: 100, Y: 100}
	out := s.Points()
	out[1] = vec.Vec2{X: -1, Y: -1}

	want := []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}
	if diff := cmp.Diff(want, s.Points()); diff != "" {
		t.Errorf("stroke was modified (-want +got):\n%s", diff)
	}
}

func TestIdentity(t *testing.T) {
	a := New(Pen, 5, vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 20, Y: 20})
	b := New(Pen, 5, vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 20, Y: 20})
	if a == b {
		t.Fatal("distinct strokes compare equal")
	}
	if a.ID == b.ID {
		t.Error("distinct strokes share an ID")
	}
}

func TestPath(t *testing.T) {
	s := New(Pen, 5, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1})
	p := s.Path()
	if len(p.Cmds) != 3 {
		t.Fatalf("got %d path commands, want 3", len(p.Cmds))
	}
	if p.Cmds[0] != path.CmdMoveTo {
		t.Errorf("first command = %v, want MoveTo", p.Cmds[0])
	}
	for i, cmd := range p.Cmds[1:] {
		if cmd != path.CmdLineTo {
			t.Errorf("command %d = %v, want LineTo", i+1, cmd)
		}
	}
	if diff := cmp.Diff(s.Points(), p.Coords); diff != "" {
		t.Errorf("coords mismatch (-want +got):\n%s", diff)
	}
}

func TestSinglePoint(t *testing.T) {
	s := NewBuilder(Pen, 5, vec.Vec2{X: 7, Y: 8}).Finish()
	if s.Len() != 1 {
		t.Fatalf("got %d points, want 1", s.Len())
	}
	if s.At(0) != (vec.Vec2{X: 7, Y: 8}) {
		t.Errorf("got %v, want (7, 8)", s.At(0))
	}
	box := s.BBox()
	if box.LLx != 7 || box.URx != 7 || box.LLy != 8 || box.URy != 8 {
		t.Errorf("unexpected bbox %v", box)
	}
}

func TestCategoryString(t *testing.T) {
	cases := []struct {
		c    Category
		want string
	}{
		{Pen, "pen"},
		{Marker, "marker"},
		{Category(7), "Category(7)"},
	}
	for _, c := range cases {
		if got := c.c.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}
