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

var curveCases = []TestCase{
	{
		Name:   "cubic_arch",
		Points: pts(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Style:  style(6, pathstroke.CapFlat, pathstroke.JoinBevel),
	},
	{
		Name:   "cubic_s_shape",
		Points: pts(8, 32, 24, 0, 40, 64, 56, 32),
		Width:  64,
		Height: 64,
		Style:  style(5, pathstroke.CapRound, pathstroke.JoinRound),
	},
	{
		// cubic followed by a straight line
		Name:   "five_points",
		Points: pts(8, 56, 8, 8, 56, 8, 56, 40, 24, 40),
		Width:  64,
		Height: 64,
		Style:  style(4, pathstroke.CapSquare, pathstroke.JoinMiter),
	},
	{
		// the layout of the interactive demo: two cubics
		Name:   "seven_points",
		Points: pts(64, 114, 142, 86, 128, 25, 64, 14, 0, 25, -14, 86, 64, 114),
		Width:  128,
		Height: 128,
		Style:  style(8, pathstroke.CapFlat, pathstroke.JoinBevel),
	},
	{
		// the curve reverses direction in the middle
		Name:   "cubic_cusp",
		Points: pts(10, 32, 54, 20, 10, 20, 54, 32),
		Width:  64,
		Height: 64,
		Style:  style(4, pathstroke.CapRound, pathstroke.JoinRound),
	},
	{
		Name:   "curve_many_segments",
		Points: pts(5, 60, 5, 5, 123, 5, 123, 60),
		Width:  128,
		Height: 64,
		Style:  style(3, pathstroke.CapFlat, pathstroke.JoinMiter),
	},
	{
		Name:   "curve_nearly_flat",
		Points: pts(10, 32, 24, 31.5, 40, 31.5, 54, 32),
		Width:  64,
		Height: 64,
		Style:  style(6, pathstroke.CapSquare, pathstroke.JoinBevel),
	},
}
