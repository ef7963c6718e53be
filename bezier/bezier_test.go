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

package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"seehuhn.de/go/geom/vec"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestPartitionOfUnity(t *testing.T) {
	for n := 0; n <= MaxDegree; n++ {
		for k := 0; k <= 20; k++ {
			x := float64(k) / 20
			sum := 0.0
			for i := 0; i <= n; i++ {
				b, err := Bernstein(n, i, x)
				if err != nil {
					t.Fatal(err)
				}
				sum += b
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("n=%d t=%g: sum of basis = %.15g", n, x, sum)
			}
		}
	}
}

func TestBernsteinEndpoints(t *testing.T) {
	// 0^0 is taken to be 1 at both ends of the parameter range
	for n := 0; n <= 5; n++ {
		b, err := Bernstein(n, 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		if b != 1 {
			t.Errorf("b_{0,%d}(0) = %g, want 1", n, b)
		}
		b, err = Bernstein(n, n, 1)
		if err != nil {
			t.Fatal(err)
		}
		if b != 1 {
			t.Errorf("b_{%d,%d}(1) = %g, want 1", n, n, b)
		}
	}
}

func TestFactorialDomain(t *testing.T) {
	for _, n := range []int{-1, 33, 100} {
		_, err := Factorial(n)
		var domErr *DomainError
		if !errors.As(err, &domErr) {
			t.Errorf("Factorial(%d): got %v, want DomainError", n, err)
			continue
		}
		if domErr.N != n {
			t.Errorf("Factorial(%d): error reports %d", n, domErr.N)
		}
	}

	got, err := Factorial(10)
	if err != nil {
		t.Fatal(err)
	}
	if got != 3628800 {
		t.Errorf("10! = %g", got)
	}
	got, err = Factorial(MaxDegree)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got/2.631308369336935e35-1) > 1e-12 {
		t.Errorf("32! = %g", got)
	}
}

func TestBinomial(t *testing.T) {
	cases := []struct {
		n, i int
		want float64
	}{
		{0, 0, 1},
		{3, 1, 3},
		{3, 2, 3},
		{5, 2, 10},
		{10, 5, 252},
		{32, 16, 601080390},
	}
	for _, c := range cases {
		got, err := Binomial(c.n, c.i)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-c.want) > 1e-6*c.want {
			t.Errorf("C(%d,%d) = %g, want %g", c.n, c.i, got, c.want)
		}
	}
}

func TestEvaluateEndpoints(t *testing.T) {
	ctrl := []vec.Vec2{{X: 10, Y: 50}, {X: 20, Y: 10}, {X: 44, Y: 10}, {X: 54, Y: 50}}
	for _, samples := range []int{2, 3, 7, 10, 100, 1001} {
		pts, err := Evaluate(ctrl, samples)
		if err != nil {
			t.Fatal(err)
		}
		if len(pts) != samples {
			t.Fatalf("samples=%d: got %d points", samples, len(pts))
		}
		if pts[0] != ctrl[0] {
			t.Errorf("samples=%d: first point %v, want %v", samples, pts[0], ctrl[0])
		}
		if pts[samples-1] != ctrl[3] {
			t.Errorf("samples=%d: last point %v, want %v", samples, pts[samples-1], ctrl[3])
		}
	}
}

func TestEvaluateCubic(t *testing.T) {
	p0, p1, p2, p3 := vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 30}, vec.Vec2{X: 60, Y: 30}, vec.Vec2{X: 90, Y: 0}
	pts, err := Evaluate([]vec.Vec2{p0, p1, p2, p3}, 5)
	if err != nil {
		t.Fatal(err)
	}

	var want []vec.Vec2
	for k := range 5 {
		s := float64(k) / 4
		u := 1 - s
		want = append(want, p0.Mul(u*u*u).Add(p1.Mul(3*u*u*s)).Add(p2.Mul(3*u*s*s)).Add(p3.Mul(s*s*s)))
	}
	diff(t, want, pts, cmpopts.EquateApprox(0, 1e-9))
}

func TestEvaluateLinear(t *testing.T) {
	pts, err := Evaluate([]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: -20}}, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 5, Y: -10}, {X: 10, Y: -20}}
	diff(t, want, pts, cmpopts.EquateApprox(0, 1e-12))
}

func TestEvaluateSmallSampleCounts(t *testing.T) {
	ctrl := []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}

	pts, err := Evaluate(ctrl, 1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []vec.Vec2{{X: 1, Y: 2}}, pts)

	pts, err = Evaluate(ctrl, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 0 {
		t.Errorf("got %d points for zero samples", len(pts))
	}
}

func TestEvaluateDegreeLimits(t *testing.T) {
	_, err := Evaluate(nil, 10)
	var domErr *DomainError
	if !errors.As(err, &domErr) {
		t.Errorf("empty control points: got %v, want DomainError", err)
	}

	ctrl := make([]vec.Vec2, MaxDegree+1)
	for i := range ctrl {
		ctrl[i] = vec.Vec2{X: float64(i), Y: 1}
	}
	pts, err := Evaluate(ctrl, 11)
	if err != nil {
		t.Fatalf("degree %d: %v", MaxDegree, err)
	}
	// x(t) = MaxDegree*t for equally spaced control points
	for k, p := range pts {
		want := float64(MaxDegree) * float64(k) / 10
		if math.Abs(p.X-want) > 1e-6 || math.Abs(p.Y-1) > 1e-9 {
			t.Errorf("sample %d: got %v, want (%g, 1)", k, p, want)
		}
	}

	ctrl = append(ctrl, vec.Vec2{})
	dst := []vec.Vec2{{X: 7, Y: 7}}
	dst, err = AppendEvaluate(dst, ctrl, 4)
	if !errors.As(err, &domErr) || domErr.N != MaxDegree+1 {
		t.Errorf("degree %d: got %v, want DomainError", MaxDegree+1, err)
	}
	if len(dst) != 1 {
		t.Errorf("dst modified on error: %v", dst)
	}
}
