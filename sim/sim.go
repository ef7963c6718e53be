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

// Package sim animates the control points of the demo.
//
// Every point moves with a constant velocity and bounces off the edges of
// a bounding rectangle.  All functions are deterministic.
package sim

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Parameters of the initial layout.
const (
	DefaultCount = 7  // number of control points
	DefaultPad   = 10 // distance between the viewport edge and the bounds

	radius = 100 // distance of the initial points from the viewport centre
)

// velocityMap is applied to the rotated base velocity: a shear by (2, -1)
// followed by a scaling by 3.
var velocityMap = matrix.Matrix{3, -3, 6, 3, 0, 0}

// baseVelocity is the velocity of the first point, before velocityMap.
var baseVelocity = vec.Vec2{X: 0.1, Y: 0.25}

// State holds the control points together with their velocities.
// Velocities[i] belongs to Points[i].
type State struct {
	Points     []vec.Vec2
	Velocities []vec.Vec2
}

// Len returns the number of control points.
func (s State) Len() int {
	return len(s.Points)
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		Points:     append([]vec.Vec2(nil), s.Points...),
		Velocities: append([]vec.Vec2(nil), s.Velocities...),
	}
}

// Init returns k points, evenly spaced on a circle of radius 100 around
// the centre of the viewport.  The first point is directly below the
// centre (in y-down coordinates), the others follow at 360/k degree
// steps.  Each velocity is the same base vector, rotated along with its
// point and then sheared and scaled, so that the points drift apart.
func Init(k int, viewport rect.Rect) State {
	if k <= 0 {
		return State{}
	}

	center := vec.Vec2{
		X: (viewport.LLx + viewport.URx) / 2,
		Y: (viewport.LLy + viewport.URy) / 2,
	}
	step := 360 / float64(k)

	s := State{
		Points:     make([]vec.Vec2, k),
		Velocities: make([]vec.Vec2, k),
	}
	for i := range k {
		rot := matrix.RotateDeg(float64(i) * step)
		s.Points[i] = apply(rot, vec.Vec2{X: 0, Y: radius}).Add(center)
		s.Velocities[i] = apply(velocityMap, apply(rot, baseVelocity))
	}
	return s
}

// Bounds returns the viewport, shrunk by pad on all four sides.
func Bounds(viewport rect.Rect, pad float64) rect.Rect {
	return rect.Rect{
		LLx: viewport.LLx + pad,
		LLy: viewport.LLy + pad,
		URx: viewport.URx - pad,
		URy: viewport.URy - pad,
	}
}

// Advance moves every point by one time step and returns the new state.
//
// A point which leaves the bounds is clamped to the violated edge, and the
// corresponding velocity component changes sign.  The x and y directions
// are handled independently.  The slices of s are not modified.
//
// Advance panics if s has a different number of points and velocities.
func Advance(s State, bounds rect.Rect) State {
	if len(s.Points) != len(s.Velocities) {
		panic(fmt.Sprintf("sim: %d points but %d velocities", len(s.Points), len(s.Velocities)))
	}

	next := State{
		Points:     make([]vec.Vec2, len(s.Points)),
		Velocities: make([]vec.Vec2, len(s.Velocities)),
	}
	for i, pos := range s.Points {
		v := s.Velocities[i]
		pos = pos.Add(v)

		if pos.X < bounds.LLx || pos.X > bounds.URx {
			v.X = -v.X
			pos.X = clampTo(pos.X, bounds.LLx, bounds.URx)
		}
		if pos.Y < bounds.LLy || pos.Y > bounds.URy {
			v.Y = -v.Y
			pos.Y = clampTo(pos.Y, bounds.LLy, bounds.URy)
		}

		next.Points[i] = pos
		next.Velocities[i] = v
	}
	return next
}

// clampTo returns lo if x is below lo, and hi otherwise.
func clampTo(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	return hi
}

// apply transforms v by the matrix m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}
