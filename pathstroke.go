// seehuhn.de/go/pathstroke - stroke outlines for Bezier paths
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

// Package pathstroke builds a path of cubic Bézier segments from a list of
// control points and computes the outline of that path when it is stroked
// with a given width, cap, join and dash pattern.
//
// The outline is returned as a list of polygons which, filled together with
// the nonzero winding rule, cover the stroked area.
// Package [seehuhn.de/go/pathstroke/raster] converts outlines to pixel
// coverage.
package pathstroke

//go:generate go run ./testcases/export

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a closed polygon. The edge from the last vertex back to the
// first is implied.
type Polygon []vec.Vec2

// Outline is the result of stroking a path.
// A solid stroke gives one polygon per subpath, a dashed stroke gives one
// polygon per dash.
type Outline []Polygon

// Bounds returns the smallest rectangle containing all vertices.
// The zero rectangle is returned for an empty outline.
func (o Outline) Bounds() rect.Rect {
	first := true
	var b rect.Rect
	for _, poly := range o {
		for _, v := range poly {
			if first {
				b = rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
				first = false
				continue
			}
			b.LLx = math.Min(b.LLx, v.X)
			b.LLy = math.Min(b.LLy, v.Y)
			b.URx = math.Max(b.URx, v.X)
			b.URy = math.Max(b.URy, v.Y)
		}
	}
	return b
}

// NumVertices returns the total number of vertices in all polygons.
func (o Outline) NumVertices() int {
	n := 0
	for _, poly := range o {
		n += len(poly)
	}
	return n
}

// Frame holds the geometry derived from one set of control points.
type Frame struct {
	Path    *path.Data
	Outline Outline
}

// Render builds the path through the control points and strokes it,
// using a new [Stroker].
func Render(points []vec.Vec2, style Style) (*Frame, error) {
	return NewStroker().Render(points, style)
}

// Stroke computes the outline of p using a new [Stroker].
func Stroke(p *path.Data, style Style) (Outline, error) {
	return NewStroker().Stroke(p, style)
}

// Render builds the path through the control points and strokes it.
// Either both parts of the frame are computed or an error is returned.
func (s *Stroker) Render(points []vec.Vec2, style Style) (*Frame, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	p, err := BuildPath(points)
	if err != nil {
		return nil, err
	}
	outline, err := s.Stroke(p, style)
	if err != nil {
		return nil, err
	}
	return &Frame{Path: p, Outline: outline}, nil
}
