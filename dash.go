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
)

// strokeDashes cuts the flattened subpaths into dashes and appends the
// outline of every dash to out.
func (s *Stroker) strokeDashes(out Outline) Outline {
	s.pattern = s.pattern[:0]
	s.patternLen = 0
	for _, run := range s.style.Dash {
		s.pattern = append(s.pattern, run.On, run.Off)
		s.patternLen += run.On + run.Off
	}

	s.dashSegs = s.dashSegs[:0]
	s.dashes = s.dashes[:0]
	for _, sp := range s.subpaths {
		s.dashSubpath(s.segs[sp.start:sp.end], sp.closed)
	}

	for _, dash := range s.dashes {
		segs := s.dashSegs[dash.start:dash.end]
		if len(segs) == 1 && segs[0].A == segs[0].B {
			// zero-length dash, oriented along the underlying path
			if poly := s.dot(segs[0].A, segs[0].T); poly != nil {
				out = append(out, poly)
			}
			continue
		}
		if poly := s.strokeSubpath(segs, false); poly != nil {
			out = append(out, poly)
		}
	}
	return out
}

// dashSubpath walks along segs by arc length and records the pieces covered
// by "on" runs of the pattern in s.dashSegs and s.dashes.
func (s *Stroker) dashSubpath(segs []segment, closed bool) {
	pattern := s.pattern

	// find the pattern position at the start of the subpath
	phase := math.Mod(s.style.DashPhase, s.patternLen)
	if phase < 0 {
		phase += s.patternLen
	}
	idx, remaining := 0, pattern[0]
	for phase > 0 {
		if phase < remaining {
			remaining -= phase
			break
		}
		phase -= remaining
		idx = (idx + 1) % len(pattern)
		remaining = pattern[idx]
	}

	startedOn := idx%2 == 0
	firstDash := len(s.dashes)
	dashStart := len(s.dashSegs)

	for i := range segs {
		seg := &segs[i]
		segLen := seg.B.Sub(seg.A).Length()
		pos := 0.0
		for {
			if remaining >= segLen-pos {
				// the current run continues into the next segment
				if idx%2 == 0 && segLen-pos > zeroLengthThreshold {
					s.dashSegs = append(s.dashSegs, subSegment(seg, pos, segLen, segLen))
				}
				remaining -= segLen - pos
				break
			}

			end := pos + remaining
			if idx%2 == 0 {
				if end-pos > zeroLengthThreshold {
					s.dashSegs = append(s.dashSegs, subSegment(seg, pos, end, segLen))
				} else if len(s.dashSegs) == dashStart {
					a := subSegment(seg, pos, pos, segLen).A
					s.dashSegs = append(s.dashSegs, segment{A: a, B: a, T: seg.T, N: seg.N})
				}
				if len(s.dashSegs) > dashStart {
					s.dashes = append(s.dashes, subpath{start: dashStart, end: len(s.dashSegs)})
					dashStart = len(s.dashSegs)
				}
			}
			pos = end
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
	}

	if len(s.dashSegs) == dashStart {
		return
	}
	if closed && startedOn && idx%2 == 0 && len(s.dashes) > firstDash {
		// The dash running through the start point of a closed subpath
		// is a single dash: move the first piece to the end of the last.
		first := s.dashes[firstDash]
		s.dashSegs = append(s.dashSegs, s.dashSegs[first.start:first.end]...)
		s.dashes = slices.Delete(s.dashes, firstDash, firstDash+1)
	}
	s.dashes = append(s.dashes, subpath{start: dashStart, end: len(s.dashSegs)})
}

// subSegment returns the part of seg between arc lengths from and to.
// Positions at the ends of seg map exactly onto seg.A and seg.B.
func subSegment(seg *segment, from, to, segLen float64) segment {
	a, b := seg.A, seg.B
	if from > 0 {
		a = seg.A.Add(seg.T.Mul(from))
	}
	if to < segLen {
		b = seg.A.Add(seg.T.Mul(to))
	}
	return segment{A: a, B: b, T: seg.T, N: seg.N}
}
