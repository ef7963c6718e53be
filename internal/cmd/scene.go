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

package cmd

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pathstroke"
	"seehuhn.de/go/pathstroke/internal/config"
	"seehuhn.de/go/pathstroke/sim"
)

// scene is the non-interactive counterpart of the terminal demo: the
// control points follow the animation and nobody drags them.
type scene struct {
	style    pathstroke.Style
	viewport rect.Rect
	bounds   rect.Rect
	state    sim.State
	stroker  *pathstroke.Stroker
}

func newScene(cfg *config.Config) (*scene, error) {
	style, err := cfg.Style()
	if err != nil {
		return nil, err
	}
	viewport := cfg.Bounds()
	return &scene{
		style:    style,
		viewport: viewport,
		bounds:   sim.Bounds(viewport, cfg.Points.Pad),
		state:    sim.Init(cfg.Points.Count, viewport),
		stroker:  pathstroke.NewStroker(),
	}, nil
}

// advance moves the animation forward by n ticks.
func (s *scene) advance(n int) {
	for range n {
		s.state = sim.Advance(s.state, s.bounds)
	}
}

func (s *scene) frame() (*pathstroke.Frame, error) {
	return s.stroker.Render(s.state.Points, s.style)
}
