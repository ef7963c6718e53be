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

package pathstroke

import (
	"github.com/pkg/errors"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrEmptyPath is returned when a path is requested for zero control points.
var ErrEmptyPath = errors.New("pathstroke: no control points")

// BuildPath converts an ordered list of control points into a path.
//
// The path starts at points[0]. The following points are consumed three at
// a time as the control points and end point of cubic Bézier segments. The
// zero, one or two points left over at the end become straight line
// segments.
func BuildPath(points []vec.Vec2) (*path.Data, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPath
	}

	p := (&path.Data{}).MoveTo(points[0])
	i := 1
	for ; i+2 < len(points); i += 3 {
		p = p.CubeTo(points[i], points[i+1], points[i+2])
	}
	for ; i < len(points); i++ {
		p = p.LineTo(points[i])
	}
	return p, nil
}
