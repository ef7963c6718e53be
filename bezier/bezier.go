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

// Package bezier evaluates Bézier curves of arbitrary degree using the
// Bernstein basis.
//
// The binomial coefficients are computed from a table of factorials, which
// limits the supported degree to [MaxDegree].
package bezier

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/vec"
)

// MaxDegree is the largest factorial argument, and thus the largest curve
// degree, supported by this package.
const MaxDegree = 32

// endClamp is the distance below 1 at which the running curve parameter is
// snapped to exactly 1, so that the last sample hits the last control point.
const endClamp = 5e-6

// DomainError reports a factorial argument outside [0, MaxDegree].
type DomainError struct {
	N int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("bezier: factorial argument %d outside [0, %d]", e.N, MaxDegree)
}

// factorials[n] holds n! as a float64, for n = 0, ..., MaxDegree.
var factorials = func() [MaxDegree + 1]float64 {
	var a [MaxDegree + 1]float64
	a[0] = 1
	for n := 1; n <= MaxDegree; n++ {
		a[n] = a[n-1] * float64(n)
	}
	return a
}()

// Factorial returns n!.
func Factorial(n int) (float64, error) {
	if n < 0 || n > MaxDegree {
		return 0, errors.WithStack(&DomainError{N: n})
	}
	return factorials[n], nil
}

// Binomial returns the binomial coefficient n!/(i!(n-i)!).
func Binomial(n, i int) (float64, error) {
	a, err := Factorial(n)
	if err != nil {
		return 0, err
	}
	b, err := Factorial(i)
	if err != nil {
		return 0, err
	}
	c, err := Factorial(n - i)
	if err != nil {
		return 0, err
	}
	return a / (b * c), nil
}

// Bernstein returns the Bernstein basis polynomial b_{i,n}(t).
//
// The factors t^i and (1-t)^(n-i) are taken to be 1 when the exponent is
// zero and the base is zero, i.e. for i=0 at t=0 and for i=n at t=1.
func Bernstein(n, i int, t float64) (float64, error) {
	ni, err := Binomial(n, i)
	if err != nil {
		return 0, err
	}

	ti := 1.0
	if !(t == 0 && i == 0) {
		ti = math.Pow(t, float64(i))
	}
	tni := 1.0
	if !(t == 1 && i == n) {
		tni = math.Pow(1-t, float64(n-i))
	}
	return ni * ti * tni, nil
}

// Evaluate returns samples points along the Bézier curve with the given
// control points. The curve parameter runs uniformly from 0 to 1, both ends
// included.
//
// The first point equals ctrl[0] and, for samples > 1, the last point equals
// ctrl[len(ctrl)-1]. An error is returned if ctrl is empty or has more than
// MaxDegree+1 elements.
func Evaluate(ctrl []vec.Vec2, samples int) ([]vec.Vec2, error) {
	return AppendEvaluate(nil, ctrl, samples)
}

// AppendEvaluate is like [Evaluate] but appends the points to dst.
// On error, dst is returned unchanged.
func AppendEvaluate(dst []vec.Vec2, ctrl []vec.Vec2, samples int) ([]vec.Vec2, error) {
	n := len(ctrl) - 1
	if n < 0 || n > MaxDegree {
		return dst, errors.WithStack(&DomainError{N: n})
	}
	if samples <= 0 {
		return dst, nil
	}

	// All coefficients are in range once the degree has been checked,
	// so the errors from Bernstein below cannot occur.
	step := 0.0
	if samples > 1 {
		step = 1 / float64(samples-1)
	}
	t := 0.0
	for range samples {
		if 1-t < endClamp {
			t = 1
		}

		var p vec.Vec2
		for i, c := range ctrl {
			b, _ := Bernstein(n, i, t)
			p.X += b * c.X
			p.Y += b * c.Y
		}
		dst = append(dst, p)

		t += step
	}
	return dst, nil
}
