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
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Cap is the shape drawn at the two open ends of a stroked path.
type Cap int

// The supported cap styles.
const (
	CapFlat   Cap = iota // straight edge through the end point
	CapRound             // semicircle of radius Width/2
	CapSquare            // flat edge, extended by Width/2
)

func (c Cap) String() string {
	switch c {
	case CapFlat:
		return "flat"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return fmt.Sprintf("Cap(%d)", int(c))
	}
}

// ParseCap converts the output of [Cap.String] back to a Cap.
func ParseCap(s string) (Cap, error) {
	switch strings.ToLower(s) {
	case "flat", "butt":
		return CapFlat, nil
	case "round":
		return CapRound, nil
	case "square":
		return CapSquare, nil
	}
	return 0, errors.Errorf("unknown cap style %q", s)
}

// Join is the shape drawn on the outer side of a corner.
type Join int

// The supported join styles.
const (
	JoinBevel Join = iota // straight edge between the offset corners
	JoinRound             // arc of radius Width/2 around the vertex
	JoinMiter             // offset edges extended to their intersection
)

func (j Join) String() string {
	switch j {
	case JoinBevel:
		return "bevel"
	case JoinRound:
		return "round"
	case JoinMiter:
		return "miter"
	default:
		return fmt.Sprintf("Join(%d)", int(j))
	}
}

// ParseJoin converts the output of [Join.String] back to a Join.
func ParseJoin(s string) (Join, error) {
	switch strings.ToLower(s) {
	case "bevel":
		return JoinBevel, nil
	case "round":
		return JoinRound, nil
	case "miter", "mitre":
		return JoinMiter, nil
	}
	return 0, errors.Errorf("unknown join style %q", s)
}

// DashRun is one "on" stretch followed by one "off" stretch of a dash
// pattern, measured as arc length along the path.
type DashRun struct {
	On, Off float64
}

// Style describes how a path is stroked.
type Style struct {
	// Width is the stroke width. Must be positive.
	Width float64

	Cap  Cap
	Join Join

	// MiterLimit is the largest ratio between miter length and half width
	// before a miter join is drawn as a bevel. Must be at least 1.
	MiterLimit float64

	// Dash is the dash pattern, cycled along the path.
	// Nil means a solid stroke.
	Dash []DashRun

	// DashPhase is the arc length into the pattern at which the path starts.
	DashPhase float64
}

// DefaultStyle returns a solid stroke of width 1 with flat caps and bevel
// joins.
func DefaultStyle() Style {
	return Style{
		Width:      1,
		Cap:        CapFlat,
		Join:       JoinBevel,
		MiterLimit: DefaultMiterLimit,
	}
}

// DefaultMiterLimit converts joins to bevels when the corner angle drops
// below about 11.5 degrees.
const DefaultMiterLimit = 10.0

// InvalidStyleError reports a Style field with an unusable value.
type InvalidStyleError struct {
	Field string
	Value float64
}

func (e *InvalidStyleError) Error() string {
	return fmt.Sprintf("pathstroke: invalid %s %g", e.Field, e.Value)
}

// Validate checks that the style can be used for stroking.
func (s Style) Validate() error {
	if !(s.Width > 0) {
		return errors.WithStack(&InvalidStyleError{Field: "width", Value: s.Width})
	}
	if s.Join == JoinMiter && !(s.MiterLimit >= 1) {
		return errors.WithStack(&InvalidStyleError{Field: "miter limit", Value: s.MiterLimit})
	}
	if s.Dash == nil {
		return nil
	}
	total := 0.0
	for _, run := range s.Dash {
		if run.On < 0 {
			return errors.WithStack(&InvalidStyleError{Field: "dash length", Value: run.On})
		}
		if run.Off < 0 {
			return errors.WithStack(&InvalidStyleError{Field: "dash gap", Value: run.Off})
		}
		total += run.On + run.Off
	}
	if !(total > 0) {
		return errors.WithStack(&InvalidStyleError{Field: "dash pattern length", Value: total})
	}
	return nil
}

// PenStyle names a dash pattern whose run lengths are multiples of the
// stroke width.
type PenStyle int

// The predefined pen styles.
const (
	PenSolid PenStyle = iota
	PenDash
	PenDot
	PenDashDot
	PenDashDotDot
	PenCustom // 1, 3, 9, 27, 9, 3 units on, 4 units off in between
)

var penPatterns = map[PenStyle][]DashRun{
	PenDash:       {{4, 2}},
	PenDot:        {{1, 2}},
	PenDashDot:    {{4, 2}, {1, 2}},
	PenDashDotDot: {{4, 2}, {1, 2}, {1, 2}},
	PenCustom:     {{1, 4}, {3, 4}, {9, 4}, {27, 4}, {9, 4}, {3, 4}},
}

var penNames = []string{"solid", "dash", "dot", "dashdot", "dashdotdot", "custom"}

func (p PenStyle) String() string {
	if p >= 0 && int(p) < len(penNames) {
		return penNames[p]
	}
	return fmt.Sprintf("PenStyle(%d)", int(p))
}

// ParsePenStyle converts the output of [PenStyle.String] back to a PenStyle.
func ParsePenStyle(s string) (PenStyle, error) {
	s = strings.ToLower(s)
	for i, name := range penNames {
		if name == s {
			return PenStyle(i), nil
		}
	}
	return 0, errors.Errorf("unknown pen style %q", s)
}

// Dashes returns the dash pattern for a stroke of the given width.
// The result is nil for PenSolid.
func (p PenStyle) Dashes(width float64) []DashRun {
	pattern := penPatterns[p]
	if pattern == nil {
		return nil
	}
	res := make([]DashRun, len(pattern))
	for i, run := range pattern {
		res[i] = DashRun{On: run.On * width, Off: run.Off * width}
	}
	return res
}
