package testcases

import "seehuhn.de/go/pathstroke"

var strokeCases = []TestCase{
	{
		Name:   "line_flat",
		Points: pts(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Style:  style(8, pathstroke.CapFlat, pathstroke.JoinMiter),
	},
	{
		Name:   "line_round",
		Points: pts(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Style:  style(8, pathstroke.CapRound, pathstroke.JoinMiter),
	},
	{
		Name:   "line_square",
		Points: pts(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Style:  style(8, pathstroke.CapSquare, pathstroke.JoinMiter),
	},
	{
		Name:   "corner_miter",
		Points: pts(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Style:  style(6, pathstroke.CapFlat, pathstroke.JoinMiter),
	},
	{
		Name:   "corner_round",
		Points: pts(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Style:  style(6, pathstroke.CapFlat, pathstroke.JoinRound),
	},
	{
		Name:   "corner_bevel",
		Points: pts(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Style:  style(6, pathstroke.CapFlat, pathstroke.JoinBevel),
	},
	{
		// the interior angle is too small for the miter limit
		Name:   "corner_sharp",
		Points: pts(8, 40, 56, 32, 8, 24),
		Width:  64,
		Height: 64,
		Style:  style(6, pathstroke.CapFlat, pathstroke.JoinMiter),
	},
	{
		Name:   "closed_loop",
		Points: pts(12, 48, 12, 8, 52, 8, 52, 48),
		Closed: true,
		Width:  64,
		Height: 64,
		Style:  style(4, pathstroke.CapFlat, pathstroke.JoinMiter),
	},
}
