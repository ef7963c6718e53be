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

package testcases

import "seehuhn.de/go/pathstroke"

var degenerateCases = []TestCase{
	{
		Name:   "single_point_flat",
		Points: pts(32, 32),
		Width:  64,
		Height: 64,
		Style:  style(10, pathstroke.CapFlat, pathstroke.JoinBevel),
	},
	{
		Name:   "single_point_round",
		Points: pts(32, 32),
		Width:  64,
		Height: 64,
		Style:  style(10, pathstroke.CapRound, pathstroke.JoinBevel),
	},
	{
		Name:   "single_point_square",
		Points: pts(32, 32),
		Width:  64,
		Height: 64,
		Style:  style(10, pathstroke.CapSquare, pathstroke.JoinBevel),
	},
	{
		// all control points coincide
		Name:   "coincident_cubic_round",
		Points: pts(32, 32, 32, 32, 32, 32, 32, 32),
		Width:  64,
		Height: 64,
		Style:  style(10, pathstroke.CapRound, pathstroke.JoinRound),
	},
	{
		// all control points coincide
		Name:   "coincident_line_square",
		Points: pts(20, 20, 20, 20),
		Width:  64,
		Height: 64,
		Style:  style(10, pathstroke.CapSquare, pathstroke.JoinBevel),
	},
}
