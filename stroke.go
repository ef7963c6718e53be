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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pathstroke/bezier"
)

// segment is one straight piece of a flattened path.
type segment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// reversed returns the segment traversed from B to A.
func (seg segment) reversed() segment {
	return segment{A: seg.B, B: seg.A, T: seg.T.Mul(-1), N: seg.N.Mul(-1)}
}

// subpath is the range segs[start:end] of one flattened subpath.
type subpath struct {
	start, end int
	closed     bool
}

// Stroker computes stroke outlines. Internal buffers are reused between
// calls, so a Stroker should be kept for repeated use. A Stroker is not safe
// for concurrent use.
type Stroker struct {
	// Tolerance is the largest allowed distance between a curve or arc and
	// the straight segments approximating it. Zero means DefaultTolerance.
	Tolerance float64

	style Style
	half  float64 // half the stroke width
	tol   float64

	ctrl    [4]vec.Vec2
	samples []vec.Vec2

	segs     []segment  // flattened segments of all subpaths
	subpaths []subpath  // subpath ranges in segs
	dots     []vec.Vec2 // subpaths without extent

	rev []segment  // reversed copy of the subpath being stroked
	pts []vec.Vec2 // polygon under construction

	pattern    []float64 // on, off, on, off, ... lengths
	patternLen float64
	dashSegs   []segment // segments of all dashes
	dashes     []subpath // dash ranges in dashSegs
}

// NewStroker returns a Stroker using DefaultTolerance.
func NewStroker() *Stroker {
	return &Stroker{Tolerance: DefaultTolerance}
}

// Stroke returns the outline of p when stroked with the given style.
//
// Each subpath of p is stroked separately. A subpath without extent, for
// example a path consisting of a single MoveTo, produces a dot for round
// and square caps and nothing for flat caps.
// The returned polygons do not share memory with the Stroker.
func (s *Stroker) Stroke(p *path.Data, style Style) (Outline, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	s.style = style
	s.half = style.Width / 2
	s.tol = s.Tolerance
	if !(s.tol > 0) {
		s.tol = DefaultTolerance
	}

	s.flatten(p)

	var out Outline
	for _, pt := range s.dots {
		if poly := s.dot(pt, vec.Vec2{X: 1, Y: 0}); poly != nil {
			out = append(out, poly)
		}
	}

	if style.Dash != nil {
		return s.strokeDashes(out), nil
	}

	for _, sp := range s.subpaths {
		if poly := s.strokeSubpath(s.segs[sp.start:sp.end], sp.closed); poly != nil {
			out = append(out, poly)
		}
	}
	return out, nil
}

// flatten converts p into straight segments, stored in s.segs, s.subpaths
// and s.dots.
func (s *Stroker) flatten(p *path.Data) {
	s.segs = s.segs[:0]
	s.subpaths = s.subpaths[:0]
	s.dots = s.dots[:0]

	var current, start vec.Vec2
	first := 0
	inSubpath := false
	begin := func() {
		if !inSubpath {
			start = current
			first = len(s.segs)
			inSubpath = true
		}
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath {
				s.endSubpath(first, start, false)
			}
			current = p.Coords[coordIdx]
			start = current
			first = len(s.segs)
			inSubpath = true
			coordIdx++

		case path.CmdLineTo:
			begin()
			s.addSegment(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			begin()
			s.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1])
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			begin()
			s.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2])
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if inSubpath {
				if current != start {
					s.addSegment(current, start)
				}
				s.endSubpath(first, start, true)
				current = start
				inSubpath = false
			}
		}
	}
	if inSubpath {
		s.endSubpath(first, start, false)
	}
}

func (s *Stroker) endSubpath(first int, start vec.Vec2, closed bool) {
	if len(s.segs) == first {
		s.dots = append(s.dots, start)
		return
	}
	s.subpaths = append(s.subpaths, subpath{start: first, end: len(s.segs), closed: closed})
}

// addSegment appends the segment from a to b, unless it is too short to
// have a direction.
func (s *Stroker) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	s.segs = append(s.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// flattenQuadratic splits a quadratic Bézier into n pieces, where n is
// chosen from the deviation (P0 - 2P1 + P2)/4 of the curve from its chord.
func (s *Stroker) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	n := 1
	if e > s.tol {
		n = int(math.Ceil(math.Sqrt(e / s.tol)))
	}
	s.ctrl[0], s.ctrl[1], s.ctrl[2] = p0, p1, p2
	s.addSamples(s.ctrl[:3], n)
}

// flattenCubic splits a cubic Bézier into n pieces, with n given by Wang's
// formula.
func (s *Stroker) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())
	n := 1
	if nf := math.Sqrt(3 * m / (4 * s.tol)); nf > 1 {
		n = int(math.Ceil(nf))
	}
	s.ctrl[0], s.ctrl[1], s.ctrl[2], s.ctrl[3] = p0, p1, p2, p3
	s.addSamples(s.ctrl[:4], n)
}

// addSamples evaluates the curve at n+1 equally spaced parameter values and
// adds the n segments between them.
func (s *Stroker) addSamples(ctrl []vec.Vec2, n int) {
	// The control point count is fixed at 3 or 4, well within the
	// supported degree.
	s.samples, _ = bezier.AppendEvaluate(s.samples[:0], ctrl, n+1)
	for i := 1; i < len(s.samples); i++ {
		s.addSegment(s.samples[i-1], s.samples[i])
	}
}

// strokeSubpath returns the stroke outline of one flattened subpath as a
// single polygon. For open subpaths this is the start cap, the +N side
// forward, the end cap and the -N side backward. Closed subpaths produce
// the +N ring and the reversed -N ring, joined by a zero-area bridge.
func (s *Stroker) strokeSubpath(segs []segment, closed bool) Polygon {
	s.rev = s.rev[:0]
	for i := len(segs) - 1; i >= 0; i-- {
		s.rev = append(s.rev, segs[i].reversed())
	}

	s.pts = s.pts[:0]
	if closed {
		s.addSide(segs, true)
		s.pts = append(s.pts, s.pts[0])
		inner := len(s.pts)
		s.addSide(s.rev, true)
		s.pts = append(s.pts, s.pts[inner])
	} else {
		first := &segs[0]
		last := &segs[len(segs)-1]
		s.addCap(first.A, first.T.Mul(-1))
		s.addSide(segs, false)
		s.addCap(last.B, last.T)
		s.addSide(s.rev, false)
	}

	if len(s.pts) < 3 {
		return nil
	}
	return slices.Clone(s.pts)
}

// addSide appends the +N offset of segs. The -N side of a path is the +N
// side of the reversed path.
func (s *Stroker) addSide(segs []segment, closed bool) {
	d := s.half
	n := len(segs)
	if closed {
		s.addCorner(&segs[n-1], &segs[0])
	} else {
		s.pts = append(s.pts, segs[0].A.Add(segs[0].N.Mul(d)))
	}
	for i := range n - 1 {
		s.addCorner(&segs[i], &segs[i+1])
	}
	if !closed {
		s.pts = append(s.pts, segs[n-1].B.Add(segs[n-1].N.Mul(d)))
	}
}

// addCorner appends the +N side vertices where prev ends and next starts.
func (s *Stroker) addCorner(prev, next *segment) {
	d := s.half
	cosTheta := prev.T.Dot(next.T)
	sinTheta := prev.T.X*next.T.Y - prev.T.Y*next.T.X

	switch {
	case cosTheta < cuspCosineThreshold:
		// the path doubles back: go round the end like at a cap
		s.pts = append(s.pts, prev.B.Add(prev.N.Mul(d)))
		s.addCap(prev.B, prev.T)
		s.pts = append(s.pts, next.A.Add(next.N.Mul(d)))

	case math.Abs(sinTheta) < collinearityThreshold:
		s.pts = append(s.pts, prev.B.Add(prev.N.Mul(d)), next.A.Add(next.N.Mul(d)))

	case sinTheta > 0:
		// +N is the inner side
		if pt, ok := innerIntersection(next.A, prev.N, next.N, cosTheta, d); ok {
			s.pts = append(s.pts, pt)
		} else {
			s.pts = append(s.pts, prev.B.Add(prev.N.Mul(d)), next.A.Add(next.N.Mul(d)))
		}

	default:
		// +N is the outer side
		s.pts = append(s.pts, prev.B.Add(prev.N.Mul(d)))
		s.addJoin(next.A, prev, next, cosTheta)
		s.pts = append(s.pts, next.A.Add(next.N.Mul(d)))
	}
}

// innerIntersection returns the point where the two inner offset lines of
// a corner at P meet.
func innerIntersection(P, N1, N2 vec.Vec2, cosTheta, d float64) (vec.Vec2, bool) {
	// cos(θ/2), where θ is the angle between the tangents
	cosHalf := math.Sqrt((1 + cosTheta) / 2)
	if cosHalf < 1e-9 {
		return vec.Vec2{}, false
	}
	dir := N1.Add(N2)
	dirLen := dir.Length()
	if dirLen < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (cosHalf * dirLen))), true
}

// addJoin adds the join vertices between the outer (+N side) offset points
// of the corner at P. The caller adds the two offset points themselves.
func (s *Stroker) addJoin(P vec.Vec2, prev, next *segment, cosTheta float64) {
	switch s.style.Join {
	case JoinMiter:
		// The miter length relative to the half width is 1/sin(φ/2), where
		// φ = π - θ is the interior angle, so sin(φ/2) = cos(θ/2).
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		if sinHalf > 0 && 1/sinHalf <= s.style.MiterLimit+miterEpsilon {
			bisector := prev.N.Add(next.N)
			if l := bisector.Length(); l > zeroLengthThreshold {
				s.pts = append(s.pts, P.Add(bisector.Mul(s.half/(sinHalf*l))))
			}
		}
		// beyond the miter limit the join is a bevel

	case JoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		s.addArc(P, prev.N, -angle)

	case JoinBevel:
		// the straight edge between the offset points is the bevel
	}
}

// addCap adds the cap vertices at the open end P, where T points away from
// the path. The offset points P+N·d and P-N·d, with N 90° CCW from T,
// are added by the caller.
func (s *Stroker) addCap(P, T vec.Vec2) {
	d := s.half
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch s.style.Cap {
	case CapFlat:
		// the edge between the offset points closes the stroke

	case CapSquare:
		ext := P.Add(T.Mul(d))
		s.pts = append(s.pts, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))

	case CapRound:
		// clockwise from N through T to -N
		s.addArc(P, N, -math.Pi)
	}
}

// dot returns the outline of a stroke without extent at P, oriented along
// the unit vector T.
func (s *Stroker) dot(P, T vec.Vec2) Polygon {
	d := s.half
	switch s.style.Cap {
	case CapRound:
		s.pts = s.pts[:0]
		s.pts = append(s.pts, P.Add(T.Mul(d)))
		s.addArc(P, T, 2*math.Pi)
		return slices.Clone(s.pts)

	case CapSquare:
		N := vec.Vec2{X: -T.Y, Y: T.X}
		return Polygon{
			P.Add(T.Mul(d)).Add(N.Mul(d)),
			P.Sub(T.Mul(d)).Add(N.Mul(d)),
			P.Sub(T.Mul(d)).Sub(N.Mul(d)),
			P.Add(T.Mul(d)).Sub(N.Mul(d)),
		}
	}
	return nil
}

// addArc adds the interior vertices of a circular arc of radius Width/2
// around center. The arc starts in direction dir (a unit vector) and turns
// by sweep radians, counter-clockwise for positive sweep. The end points
// are not added.
func (s *Stroker) addArc(center, dir vec.Vec2, sweep float64) {
	r := s.half
	absSweep := math.Abs(sweep)

	// A chord spanning the angle α deviates from the circle by at most
	// r(1 - cos(α/2)).
	n := 1
	if r > s.tol {
		step := 2 * math.Acos(1-s.tol/r)
		n = int(math.Ceil(absSweep / step))
	}
	n = max(n, int(math.Ceil(absSweep/(math.Pi/2))))

	dt := sweep / float64(n)
	for i := 1; i < n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		v := vec.Vec2{
			X: dir.X*cos - dir.Y*sin,
			Y: dir.X*sin + dir.Y*cos,
		}
		s.pts = append(s.pts, center.Add(v.Mul(r)))
	}
}

// Default values and numerical tolerances for the stroker.
const (
	// DefaultTolerance is the default flattening tolerance, in the same
	// units as the path coordinates.
	DefaultTolerance = 0.1

	// zeroLengthThreshold is the minimum length for a segment.
	// Shorter segments are dropped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments,
	// where no join is needed.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects a path doubling back on itself.
	// cos(179.43°) ≈ -0.9999
	cuspCosineThreshold = -0.9999

	// miterEpsilon absorbs rounding when the miter length equals the limit.
	miterEpsilon = 1e-10
)
