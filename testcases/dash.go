package testcases

import "seehuhn.de/go/pathstroke"

var dashCases = []TestCase{
	{
		Name:   "dash_single_run",
		Points: pts(5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Style:  dashed(style(4, pathstroke.CapFlat, pathstroke.JoinMiter), 0, pathstroke.DashRun{On: 8, Off: 4}),
	},
	{
		Name:   "dash_phase",
		Points: pts(5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Style:  dashed(style(4, pathstroke.CapFlat, pathstroke.JoinMiter), 5, pathstroke.DashRun{On: 10, Off: 5}),
	},
	{
		Name:   "dash_negative_phase",
		Points: pts(5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Style:  dashed(style(4, pathstroke.CapFlat, pathstroke.JoinMiter), -3, pathstroke.DashRun{On: 10, Off: 5}),
	},
	{
		Name:   "dash_round_dots",
		Points: pts(8, 32, 56, 32),
		Width:  64,
		Height: 64,
		Style:  dashed(style(4, pathstroke.CapRound, pathstroke.JoinRound), 0, pathstroke.DashRun{On: 0, Off: 8}),
	},
	{
		Name:   "dash_square_dots",
		Points: pts(8, 32, 56, 32),
		Width:  64,
		Height: 64,
		Style:  dashed(style(4, pathstroke.CapSquare, pathstroke.JoinRound), 0, pathstroke.DashRun{On: 0, Off: 8}),
	},
	{
		Name:   "dash_pen_dashdot",
		Points: pts(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Style: func() pathstroke.Style {
			s := style(2, pathstroke.CapFlat, pathstroke.JoinBevel)
			s.Dash = pathstroke.PenDashDot.Dashes(s.Width)
			return s
		}(),
	},
	{
		Name:   "dash_pen_custom",
		Points: pts(64, 114, 142, 86, 128, 25, 64, 14, 0, 25, -14, 86, 64, 114),
		Width:  128,
		Height: 128,
		Style: func() pathstroke.Style {
			s := style(2, pathstroke.CapRound, pathstroke.JoinRound)
			s.Dash = pathstroke.PenCustom.Dashes(s.Width)
			return s
		}(),
	},
	{
		// a single dash going round the corner
		Name:   "dash_across_corner",
		Points: pts(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Style:  dashed(style(5, pathstroke.CapFlat, pathstroke.JoinMiter), 30, pathstroke.DashRun{On: 20, Off: 60}),
	},
	{
		Name:   "dash_closed_loop",
		Points: pts(12, 48, 12, 8, 52, 8, 52, 48),
		Closed: true,
		Width:  64,
		Height: 64,
		Style:  dashed(style(3, pathstroke.CapFlat, pathstroke.JoinMiter), 4, pathstroke.DashRun{On: 12, Off: 6}),
	},
}
