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

// Package preview paints the ink layer of a page into an image.
//
// Pen strokes are painted in blue, marker strokes on top of them in
// translucent yellow, on a white background.
package preview

import (
	"image"
	"io"

	"github.com/gogpu/gg"

	"seehuhn.de/go/ink/stroke"
)

// MarkerAlpha is the opacity of marker ink.
const MarkerAlpha = 150.0 / 255.0

// Render paints the given strokes into a new image of the given size.
func Render(width, height int, pen, marker []*stroke.Stroke) (image.Image, error) {
	dc, err := paint(width, height, pen, marker)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG paints the given strokes and writes the result to w in PNG
// format.
func WritePNG(w io.Writer, width, height int, pen, marker []*stroke.Stroke) error {
	dc, err := paint(width, height, pen, marker)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

func paint(width, height int, pen, marker []*stroke.Stroke) (*gg.Context, error) {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	dc.SetRGB(0, 0, 1)
	for _, s := range pen {
		if err := drawStroke(dc, s); err != nil {
			dc.Close()
			return nil, err
		}
	}
	dc.SetRGBA(1, 1, 0, MarkerAlpha)
	for _, s := range marker {
		if err := drawStroke(dc, s); err != nil {
			dc.Close()
			return nil, err
		}
	}
	return dc, nil
}

func drawStroke(dc *gg.Context, s *stroke.Stroke) error {
	if s.Len() == 1 {
		p := s.At(0)
		dc.DrawCircle(p.X, p.Y, s.Width/2)
		return dc.Fill()
	}

	dc.SetLineWidth(s.Width)
	for i, p := range s.Points() {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	return dc.Stroke()
}
