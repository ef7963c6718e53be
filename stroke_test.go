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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pathstroke/bezier"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustStroke(t *testing.T, p *path.Data, style Style) Outline {
	t.Helper()
	outline, err := Stroke(p, style)
	if err != nil {
		t.Fatalf("Stroke: %v", err)
	}
	return outline
}

func hasVertex(o Outline, want vec.Vec2, eps float64) bool {
	for _, poly := range o {
		for _, v := range poly {
			if v.Sub(want).Length() <= eps {
				return true
			}
		}
	}
	return false
}

func line(a, b vec.Vec2) *path.Data {
	return (&path.Data{}).MoveTo(a).LineTo(b)
}

func TestStraightLineBounds(t *testing.T) {
	const W = 8
	p := line(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 100, Y: 0})

	tests := []struct {
		name string
		cap  Cap
		want rect.Rect
	}{
		{"flat", CapFlat, rect.Rect{LLx: 0, LLy: -W / 2, URx: 100, URy: W / 2}},
		{"square", CapSquare, rect.Rect{LLx: -W / 2, LLy: -W / 2, URx: 100 + W/2, URy: W / 2}},
		{"round", CapRound, rect.Rect{LLx: -W / 2, LLy: -W / 2, URx: 100 + W/2, URy: W / 2}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			style := Style{Width: W, Cap: test.cap, Join: JoinBevel, MiterLimit: 10}
			outline := mustStroke(t, p, style)
			if len(outline) != 1 {
				t.Fatalf("got %d polygons, want 1", len(outline))
			}
			diff(t, test.want, outline.Bounds(), cmpopts.EquateApprox(0, 1e-9))
		})
	}
}

func TestRoundCapRadius(t *testing.T) {
	const W = 6
	p := line(vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 40, Y: 10})
	outline := mustStroke(t, p, Style{Width: W, Cap: CapRound, Join: JoinRound, MiterLimit: 10})

	ends := []vec.Vec2{{X: 10, Y: 10}, {X: 40, Y: 10}}
	for _, v := range outline[0] {
		if v.X > 10 && v.X < 40 {
			if math.Abs(math.Abs(v.Y-10)-W/2) > 1e-9 {
				t.Errorf("side vertex %v not at offset %g", v, float64(W)/2)
			}
			continue
		}
		d := math.Min(v.Sub(ends[0]).Length(), v.Sub(ends[1]).Length())
		if math.Abs(d-W/2) > 1e-9 {
			t.Errorf("cap vertex %v at distance %g, want %g", v, d, float64(W)/2)
		}
	}
}

func TestCornerJoins(t *testing.T) {
	const W = 10
	corner := vec.Vec2{X: 50, Y: 0}
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(corner).
		LineTo(vec.Vec2{X: 50, Y: 50})
	inner := vec.Vec2{X: 45, Y: 5}
	miter := vec.Vec2{X: 55, Y: -5}

	for _, join := range []Join{JoinBevel, JoinRound, JoinMiter} {
		t.Run(join.String(), func(t *testing.T) {
			style := Style{Width: W, Cap: CapFlat, Join: join, MiterLimit: 10}
			outline := mustStroke(t, p, style)
			if len(outline) != 1 {
				t.Fatalf("got %d polygons, want 1", len(outline))
			}

			if !hasVertex(outline, inner, 1e-9) {
				t.Errorf("inner corner %v missing", inner)
			}
			if got := hasVertex(outline, miter, 1e-9); got != (join == JoinMiter) {
				t.Errorf("miter point present = %t", got)
			}

			// vertices of the outer corner region
			outer := 0
			for _, v := range outline[0] {
				if v.X > corner.X+1e-9 && v.Y < corner.Y-1e-9 {
					outer++
					if join == JoinRound {
						if d := v.Sub(corner).Length(); math.Abs(d-W/2) > 1e-9 {
							t.Errorf("arc vertex %v at distance %g", v, d)
						}
					}
				}
			}
			switch join {
			case JoinBevel:
				if outer != 0 {
					t.Errorf("bevel join has %d extra vertices", outer)
				}
			case JoinRound:
				if outer == 0 {
					t.Error("round join has no arc vertices")
				}
			case JoinMiter:
				if outer != 1 {
					t.Errorf("miter join has %d extra vertices, want 1", outer)
				}
			}
		})
	}
}

func TestMiterLimit(t *testing.T) {
	// a sharp corner with a miter ratio of about 20
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 50, Y: 0}).
		LineTo(vec.Vec2{X: 0, Y: 5})

	style := Style{Width: 10, Cap: CapFlat, Join: JoinMiter, MiterLimit: 10}
	b := mustStroke(t, p, style).Bounds()
	if b.URx > 55+1e-9 {
		t.Errorf("limit 10: right edge %g, want bevel at most 55", b.URx)
	}

	style.MiterLimit = 25
	b = mustStroke(t, p, style).Bounds()
	if b.URx < 100 {
		t.Errorf("limit 25: right edge %g, want miter beyond 100", b.URx)
	}
}

func TestClosedSquare(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 0, Y: 10}).
		Close()

	outline := mustStroke(t, p, Style{Width: 2, Cap: CapRound, Join: JoinMiter, MiterLimit: 10})
	if len(outline) != 1 {
		t.Fatalf("got %d polygons, want 1", len(outline))
	}
	want := rect.Rect{LLx: -1, LLy: -1, URx: 11, URy: 11}
	diff(t, want, outline.Bounds(), cmpopts.EquateApprox(0, 1e-9))

	// no caps: all vertices lie on the inner or outer square
	for _, v := range outline[0] {
		onOuter := math.Abs(v.X+1) < 1e-9 || math.Abs(v.X-11) < 1e-9 ||
			math.Abs(v.Y+1) < 1e-9 || math.Abs(v.Y-11) < 1e-9
		onInner := math.Abs(v.X-1) < 1e-9 || math.Abs(v.X-9) < 1e-9 ||
			math.Abs(v.Y-1) < 1e-9 || math.Abs(v.Y-9) < 1e-9
		if !onOuter && !onInner {
			t.Errorf("unexpected vertex %v", v)
		}
	}
	for _, corner := range []vec.Vec2{{X: 1, Y: 1}, {X: 9, Y: 9}, {X: -1, Y: -1}, {X: 11, Y: 11}} {
		if !hasVertex(outline, corner, 1e-9) {
			t.Errorf("corner %v missing", corner)
		}
	}
}

func TestSinglePoint(t *testing.T) {
	const W = 4
	center := vec.Vec2{X: 5, Y: 5}
	p, err := BuildPath([]vec.Vec2{center})
	if err != nil {
		t.Fatal(err)
	}

	flat := mustStroke(t, p, Style{Width: W, Cap: CapFlat, Join: JoinBevel})
	if len(flat) != 0 {
		t.Errorf("flat cap: got %d polygons, want none", len(flat))
	}

	round := mustStroke(t, p, Style{Width: W, Cap: CapRound, Join: JoinBevel})
	if len(round) != 1 || len(round[0]) < 8 {
		t.Fatalf("round cap: unexpected outline %v", round)
	}
	for _, v := range round[0] {
		if d := v.Sub(center).Length(); math.Abs(d-W/2) > 1e-9 {
			t.Errorf("round dot vertex %v at distance %g", v, d)
		}
	}

	square := mustStroke(t, p, Style{Width: W, Cap: CapSquare, Join: JoinBevel})
	if len(square) != 1 || len(square[0]) != 4 {
		t.Fatalf("square cap: unexpected outline %v", square)
	}
	want := rect.Rect{LLx: 3, LLy: 3, URx: 7, URy: 7}
	diff(t, want, square.Bounds(), cmpopts.EquateApprox(0, 1e-12))
}

func TestCoincidentPoints(t *testing.T) {
	pt := vec.Vec2{X: 1, Y: 2}
	p, err := BuildPath([]vec.Vec2{pt, pt, pt, pt, pt})
	if err != nil {
		t.Fatal(err)
	}
	outline := mustStroke(t, p, Style{Width: 2, Cap: CapRound, Join: JoinRound})
	if len(outline) != 1 {
		t.Fatalf("got %d polygons, want a single dot", len(outline))
	}
}

func TestCubicOffsetDistance(t *testing.T) {
	const W = 6
	ctrl := []vec.Vec2{{X: 0, Y: 0}, {X: 30, Y: 60}, {X: 70, Y: 60}, {X: 100, Y: 0}}
	p, err := BuildPath(ctrl)
	if err != nil {
		t.Fatal(err)
	}
	curve, err := bezier.Evaluate(ctrl, 2001)
	if err != nil {
		t.Fatal(err)
	}

	for _, join := range []Join{JoinBevel, JoinRound, JoinMiter} {
		outline := mustStroke(t, p, Style{Width: W, Cap: CapFlat, Join: join, MiterLimit: 10})
		if len(outline) != 1 {
			t.Fatalf("%s: got %d polygons, want 1", join, len(outline))
		}
		for _, v := range outline[0] {
			dMin := math.Inf(1)
			for _, c := range curve {
				dMin = math.Min(dMin, v.Sub(c).Length())
			}
			if math.Abs(dMin-W/2) > 0.25 {
				t.Errorf("%s: vertex %v at distance %g from the curve", join, v, dMin)
			}
		}
	}
}

func TestQuadraticFlattening(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 50, Y: 50}, vec.Vec2{X: 100, Y: 0})
	outline := mustStroke(t, p, Style{Width: 2, Cap: CapFlat, Join: JoinBevel})
	if len(outline) != 1 {
		t.Fatalf("got %d polygons, want 1", len(outline))
	}
	// the curve peaks at y = 25
	if b := outline.Bounds(); math.Abs(b.URy-26) > 0.2 {
		t.Errorf("top edge %g, want about 26", b.URy)
	}
}

func TestMultipleSubpaths(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).LineTo(vec.Vec2{X: 10, Y: 0}).
		MoveTo(vec.Vec2{X: 0, Y: 20}).LineTo(vec.Vec2{X: 10, Y: 20}).
		MoveTo(vec.Vec2{X: 50, Y: 50})
	outline := mustStroke(t, p, Style{Width: 2, Cap: CapSquare, Join: JoinBevel})
	if len(outline) != 3 {
		t.Errorf("got %d polygons, want 3", len(outline))
	}
}

func TestCusp(t *testing.T) {
	// the path turns back on itself at (10, 0)
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 0, Y: 0})
	outline := mustStroke(t, p, Style{Width: 2, Cap: CapSquare, Join: JoinMiter, MiterLimit: 10})
	want := rect.Rect{LLx: -1, LLy: -1, URx: 11, URy: 1}
	diff(t, want, outline.Bounds(), cmpopts.EquateApprox(0, 1e-9))
}

func TestInvalidStyle(t *testing.T) {
	p := line(vec.Vec2{}, vec.Vec2{X: 1, Y: 1})
	tests := []struct {
		name  string
		style Style
		field string
	}{
		{"zero width", Style{Width: 0}, "width"},
		{"negative width", Style{Width: -1}, "width"},
		{"NaN width", Style{Width: math.NaN()}, "width"},
		{"miter limit", Style{Width: 1, Join: JoinMiter, MiterLimit: 0.5}, "miter limit"},
		{"negative dash", Style{Width: 1, Dash: []DashRun{{On: -1, Off: 2}}}, "dash length"},
		{"negative gap", Style{Width: 1, Dash: []DashRun{{On: 1, Off: -2}}}, "dash gap"},
		{"empty pattern", Style{Width: 1, Dash: []DashRun{{}}}, "dash pattern length"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			outline, err := Stroke(p, test.style)
			var styleErr *InvalidStyleError
			if !errors.As(err, &styleErr) {
				t.Fatalf("got error %v, want InvalidStyleError", err)
			}
			if styleErr.Field != test.field {
				t.Errorf("got field %q, want %q", styleErr.Field, test.field)
			}
			if outline != nil {
				t.Error("outline returned together with an error")
			}
		})
	}
}

func TestStrokerReuse(t *testing.T) {
	s := NewStroker()
	style := Style{Width: 3, Cap: CapRound, Join: JoinRound}

	first, err := s.Stroke(line(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}), style)
	if err != nil {
		t.Fatal(err)
	}
	saved := make(Outline, len(first))
	for i, poly := range first {
		saved[i] = append(Polygon(nil), poly...)
	}

	_, err = s.Stroke(line(vec.Vec2{X: 100, Y: 100}, vec.Vec2{X: 0, Y: 50}), style)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, saved, first)
}

func TestTolerance(t *testing.T) {
	p, err := BuildPath([]vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 0}})
	if err != nil {
		t.Fatal(err)
	}
	style := Style{Width: 4, Cap: CapRound, Join: JoinRound}

	coarse := &Stroker{Tolerance: 1}
	fine := &Stroker{Tolerance: 0.01}
	a, err := coarse.Stroke(p, style)
	if err != nil {
		t.Fatal(err)
	}
	b, err := fine.Stroke(p, style)
	if err != nil {
		t.Fatal(err)
	}
	if a.NumVertices() >= b.NumVertices() {
		t.Errorf("coarse tolerance gave %d vertices, fine gave %d", a.NumVertices(), b.NumVertices())
	}
}

func TestEmptyBounds(t *testing.T) {
	var o Outline
	diff(t, rect.Rect{}, o.Bounds())
	if o.NumVertices() != 0 {
		t.Error("empty outline has vertices")
	}
}
