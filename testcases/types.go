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

// Package testcases holds named stroke scenes, grouped by category.
// They are shared by the tests of several packages and by the commands
// that export outlines and reference PDFs.
package testcases

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pathstroke"
)

// TestCase defines a single stroke scene.
type TestCase struct {
	Name   string           // lowercase a-z, 0-9 and _ only
	Points []vec.Vec2       // control points, in path order
	Closed bool             // whether the path is closed after the last point
	Width  int              // canvas width in pixels
	Height int              // canvas height in pixels
	Style  pathstroke.Style // how the path is stroked
}

// Path returns the path through the control points of the test case.
func (tc TestCase) Path() *path.Data {
	p, err := pathstroke.BuildPath(tc.Points)
	if err != nil {
		panic(fmt.Sprintf("test case %q: %v", tc.Name, err))
	}
	if tc.Closed {
		p = p.Close()
	}
	return p
}

// style is a helper to create a stroke style with the default miter limit.
func style(width float64, c pathstroke.Cap, j pathstroke.Join) pathstroke.Style {
	return pathstroke.Style{
		Width:      width,
		Cap:        c,
		Join:       j,
		MiterLimit: pathstroke.DefaultMiterLimit,
	}
}

// dashed returns s with the given dash pattern and phase.
func dashed(s pathstroke.Style, phase float64, runs ...pathstroke.DashRun) pathstroke.Style {
	s.Dash = runs
	s.DashPhase = phase
	return s
}

// pts is a helper to create a list of points from x, y coordinate pairs.
func pts(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, vec.Vec2{X: xy[i], Y: xy[i+1]})
	}
	return res
}
