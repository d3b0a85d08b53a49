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

package erase

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink/store"
	"seehuhn.de/go/ink/stroke"
)

var page2000 = rect.Rect{URx: 2000, URy: 2000}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// hitIDs summarises hits as "category:index" strings.
func hitIDs(hits []Hit) []string {
	var res []string
	for _, h := range hits {
		res = append(res, fmt.Sprintf("%s:%d", h.Category, h.Index))
	}
	return res
}

func TestSingleStroke(t *testing.T) {
	type testCase struct {
		name   string
		s      *stroke.Stroke
		center vec.Vec2
		hit    bool
	}
	cases := []testCase{
		{
			name:   "point at centre",
			s:      stroke.New(stroke.Pen, 5, pt(10, 10), pt(20, 20)),
			center: pt(10, 10),
			hit:    true,
		},
		{
			name:   "far away",
			s:      stroke.New(stroke.Pen, 5, pt(100, 100), pt(200, 200)),
			center: pt(10, 10),
			hit:    false,
		},
		{
			name:   "segment crosses disc",
			s:      stroke.New(stroke.Pen, 5, pt(0, 100), pt(200, 100)),
			center: pt(100, 100),
			hit:    true,
		},
		{
			name:   "single point",
			s:      stroke.New(stroke.Pen, 5, pt(300, 300)),
			center: pt(310, 300),
			hit:    true,
		},
		{
			name:   "thin pen just outside",
			s:      stroke.New(stroke.Pen, 5, pt(0, 45), pt(100, 45)),
			center: pt(50, 20),
			hit:    false,
		},
		{
			name:   "wide marker reaches disc",
			s:      stroke.New(stroke.Marker, 30, pt(0, 45), pt(100, 45)),
			center: pt(50, 20),
			hit:    true,
		},
		{
			name:   "polyline corner",
			s:      stroke.New(stroke.Pen, 5, pt(500, 0), pt(500, 500), pt(1000, 500)),
			center: pt(510, 490),
			hit:    true,
		},
		{
			name:   "inside the corner",
			s:      stroke.New(stroke.Pen, 5, pt(500, 0), pt(500, 500), pt(1000, 500)),
			center: pt(600, 400),
			hit:    false,
		},
		{
			name:   "partly outside the page",
			s:      stroke.New(stroke.Pen, 5, pt(0, 0), pt(10, 10)),
			center: pt(5, 5),
			hit:    true,
		},
		{
			name:   "touch outside the page",
			s:      stroke.New(stroke.Pen, 5, pt(-50, -50), pt(-40, -40)),
			center: pt(-45, -45),
			hit:    false,
		},
	}

	e := &Engine{Radius: DefaultRadius, Clip: page2000}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := &store.Page{}
			p.Append(c.s.Category, c.s)

			hits := e.FindOverlapping(p, c.center)
			if got := len(hits) > 0; got != c.hit {
				t.Fatalf("got hit=%t, want %t", got, c.hit)
			}
			if c.hit {
				want := []Hit{{Stroke: c.s, Category: c.s.Category, Index: 0}}
				if d := cmp.Diff(want, hits, cmp.Comparer(func(a, b *stroke.Stroke) bool { return a == b })); d != "" {
					t.Errorf("hits (-want +got):\n%s", d)
				}
			}
		})
	}
}

func TestHitOrder(t *testing.T) {
	p := &store.Page{}
	m0 := stroke.New(stroke.Marker, 30, pt(80, 100), pt(120, 100))
	p.Append(stroke.Marker, m0)
	p0 := stroke.New(stroke.Pen, 5, pt(100, 80), pt(100, 120))
	p.Append(stroke.Pen, p0)
	far := stroke.New(stroke.Pen, 5, pt(900, 900), pt(950, 950))
	p.Append(stroke.Pen, far)
	p1 := stroke.New(stroke.Pen, 5, pt(90, 90), pt(110, 110))
	p.Append(stroke.Pen, p1)

	e := &Engine{Radius: DefaultRadius, Clip: page2000}
	hits := e.FindOverlapping(p, pt(100, 100))

	want := []string{"pen:0", "pen:2", "marker:0"}
	if d := cmp.Diff(want, hitIDs(hits)); d != "" {
		t.Errorf("hits (-want +got):\n%s", d)
	}
	if len(hits) == 3 && (hits[0].Stroke != p0 || hits[1].Stroke != p1 || hits[2].Stroke != m0) {
		t.Error("wrong strokes reported")
	}
}

func TestQueryDoesNotModify(t *testing.T) {
	p := &store.Page{}
	s := stroke.New(stroke.Pen, 5, pt(10, 10), pt(20, 20))
	p.Append(stroke.Pen, s)

	e := &Engine{Radius: DefaultRadius, Clip: page2000}
	for range 3 {
		if len(e.FindOverlapping(p, pt(15, 15))) != 1 {
			t.Fatal("stroke not found")
		}
	}
	if p.Len(stroke.Pen) != 1 || p.Index(stroke.Pen, s) != 0 {
		t.Error("page was modified")
	}
}

// Every query uses a fresh disc, so earlier contact points do not
// contribute to later queries.
func TestNoAccumulation(t *testing.T) {
	p := &store.Page{}
	s := stroke.New(stroke.Pen, 5, pt(10, 10), pt(20, 20))
	p.Append(stroke.Pen, s)

	e := &Engine{Radius: DefaultRadius, Clip: page2000}
	if len(e.FindOverlapping(p, pt(15, 15))) != 1 {
		t.Fatal("stroke not found")
	}
	if hits := e.FindOverlapping(p, pt(500, 500)); len(hits) != 0 {
		t.Errorf("got %d hits far from the stroke", len(hits))
	}
}

func TestDegenerate(t *testing.T) {
	p := &store.Page{}
	p.Append(stroke.Pen, stroke.New(stroke.Pen, 5, pt(10, 10), pt(20, 20)))

	e := &Engine{Radius: 0, Clip: page2000}
	if hits := e.FindOverlapping(p, pt(10, 10)); hits != nil {
		t.Errorf("zero radius: got %d hits", len(hits))
	}

	e = &Engine{Radius: DefaultRadius, Clip: rect.Rect{}}
	if hits := e.FindOverlapping(p, pt(10, 10)); hits != nil {
		t.Errorf("empty clip: got %d hits", len(hits))
	}

	e = &Engine{Radius: DefaultRadius, Clip: page2000}
	if hits := e.FindOverlapping(&store.Page{}, pt(10, 10)); hits != nil {
		t.Errorf("empty page: got %d hits", len(hits))
	}
}

func TestIntersect(t *testing.T) {
	a := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	b := rect.Rect{LLx: 5, LLy: -5, URx: 20, URy: 5}
	got, ok := intersect(a, b)
	want := rect.Rect{LLx: 5, LLy: 0, URx: 10, URy: 5}
	if !ok || got != want {
		t.Errorf("got %v, %t, want %v", got, ok, want)
	}

	if _, ok := intersect(a, rect.Rect{LLx: 11, LLy: 11, URx: 12, URy: 12}); ok {
		t.Error("disjoint rectangles intersect")
	}
}
