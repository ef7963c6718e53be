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

// Package raster converts stroke outlines to anti-aliased pixel coverage.
//
// Coverage is the exact fraction of each pixel's area covered by the
// outline, computed with the nonzero winding rule.  This matches the way
// the polygons of a [pathstroke.Outline] are meant to be combined:
// overlapping polygons of a stroke are merged, and the oppositely oriented
// inner ring of a closed stroke leaves a hole.
package raster

import (
	"cmp"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pathstroke"
)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// Rasterizer converts outlines to pixel coverage values, ranging from 0
// (outside) to 1 (inside).  Create one instance and reuse it for multiple
// outlines.  Internal buffers grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Transform maps outline coordinates to device space.
	// Must be non-singular.
	Transform matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// using 2D buffers.  Outlines with larger bounding boxes use an active
	// edge list.
	smallPathThreshold int

	cover   []float32 // signed edge heights per column; reused as output
	area    []float32 // part of cover right of the edge, per pixel
	edges   []edge    // edges of the current outline, in device space
	active  []int     // fillScanlines: indices of edges crossing the scanline
	touched []bool    // fillBuffered: scanlines reached by any edge

	// bounding box of all edges, in device space
	edgeBBoxFirst bool
	edgeDevXMin   float64
	edgeDevXMax   float64
	edgeDevYMin   float64
	edgeDevYMax   float64
}

// NewRasterizer returns a Rasterizer with the given clip rectangle and the
// identity transformation.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		Transform: matrix.Identity,
		Clip:      clip,

		smallPathThreshold: smallPathThreshold,
	}
}

// Fill fills the outline using the nonzero winding rule.  The emit
// callback receives coverage row by row; its slice argument is valid only
// during the call.
func (r *Rasterizer) Fill(o pathstroke.Outline, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(o)
	if !ok {
		return // empty or degenerate outline
	}

	width := xMax - xMin
	height := yMax - yMin
	if width*height < r.smallPathThreshold {
		r.fillBuffered(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillScanlines(xMin, xMax, yMin, yMax, emit)
	}
}

// FillAlpha paints the outline onto dst, using the "over" operator with
// the coverage as source alpha.  Output is clipped to the bounds of dst
// and, unless it is the zero rectangle, to r.Clip.
func (r *Rasterizer) FillAlpha(dst *image.Alpha, o pathstroke.Outline) {
	b := dst.Bounds()
	saved := r.Clip
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	if saved != (rect.Rect{}) {
		clip.LLx = max(clip.LLx, saved.LLx)
		clip.LLy = max(clip.LLy, saved.LLy)
		clip.URx = min(clip.URx, saved.URx)
		clip.URy = min(clip.URy, saved.URy)
	}
	r.Clip = clip
	defer func() { r.Clip = saved }()

	r.Fill(o, func(y, xMin int, coverage []float32) {
		row := dst.Pix[dst.PixOffset(xMin, y):]
		for i, c := range coverage {
			a := float32(row[i]) / 255
			a = c + a*(1-c)
			row[i] = uint8(min(255, int(a*255+0.5)))
		}
	})
}

// collectEdges transforms all polygon edges to device space.  It returns
// the bounding box of the edges, clamped to the clip rectangle.
func (r *Rasterizer) collectEdges(o pathstroke.Outline) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true

	for _, poly := range o {
		if len(poly) < 3 {
			continue
		}
		prev := r.toDevice(poly[len(poly)-1])
		for _, v := range poly {
			cur := r.toDevice(v)
			r.addEdge(prev, cur)
			prev = cur
		}
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	clipXMin := int(r.Clip.LLx)
	clipXMax := int(r.Clip.URx)
	clipYMin := int(r.Clip.LLy)
	clipYMax := int(r.Clip.URy)

	xMin = max(int(math.Floor(r.edgeDevXMin)), clipXMin)
	xMax = min(int(math.Floor(r.edgeDevXMax))+1, clipXMax)
	yMin = max(int(math.Floor(r.edgeDevYMin)), clipYMin)
	yMax = min(int(math.Floor(r.edgeDevYMax))+1, clipYMax)

	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// toDevice applies the transformation to a point.
func (r *Rasterizer) toDevice(v vec.Vec2) vec.Vec2 {
	m := r.Transform
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// addEdge adds an edge given in device coordinates.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return // horizontal edges don't contribute to coverage
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	if r.edgeBBoxFirst {
		r.edgeDevXMin = min(p0.X, p1.X)
		r.edgeDevXMax = max(p0.X, p1.X)
		r.edgeDevYMin = min(p0.Y, p1.Y)
		r.edgeDevYMax = max(p0.Y, p1.Y)
		r.edgeBBoxFirst = false
	} else {
		r.edgeDevXMin = min(r.edgeDevXMin, p0.X, p1.X)
		r.edgeDevXMax = max(r.edgeDevXMax, p0.X, p1.X)
		r.edgeDevYMin = min(r.edgeDevYMin, p0.Y, p1.Y)
		r.edgeDevYMax = max(r.edgeDevYMax, p0.Y, p1.Y)
	}
}

// Coverage is accumulated per scanline in two buffers, indexed by pixel
// column:
//
//   - cover[i] is the signed height of all edge pieces in column i, where
//     downward edges count positive and upward edges negative.
//   - area[i] is the part of cover[i] lying to the right of the edge piece
//     inside pixel i, i.e. cover times (1 - mean x offset of the piece).
//
// Sweeping the row from left to right, the winding number entering pixel i
// is the sum of cover[j] for j < i, and the signed area of the outline in
// pixel i is that sum plus area[i].  Clamping its absolute value to 1
// applies the nonzero rule.

// xAt returns the x coordinate of the edge's supporting line at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// accumulateEdge adds the part of e within scanline y to cover and area,
// which hold the columns xMin to xMax-1.  Pieces left of xMin only change
// the winding number and are added to column xMin.
func (r *Rasterizer) accumulateEdge(e *edge, y int, cover, area []float32, xMin, xMax int) {
	top := max(float64(y), min(e.y0, e.y1))
	bottom := min(float64(y+1), max(e.y0, e.y1))
	if bottom <= top {
		return
	}

	dir := float32(1)
	if e.y1 < e.y0 {
		dir = -1
	}

	add := func(col int, ya, yb float64) {
		if col >= xMax {
			return
		}
		h := dir * float32(yb-ya)
		if col < xMin {
			cover[0] += h
			area[0] += h
			return
		}
		frac := e.xAt((ya+yb)/2) - float64(col)
		cover[col-xMin] += h
		area[col-xMin] += h * float32(1-frac)
	}

	colTop := int(math.Floor(e.xAt(top)))
	colBottom := int(math.Floor(e.xAt(bottom)))
	if colTop == colBottom {
		add(colTop, top, bottom)
		return
	}

	lo, hi := min(colTop, colBottom), max(colTop, colBottom)
	switch {
	case lo >= xMax:
		return
	case hi < xMin:
		add(hi, top, bottom)
		return
	}

	// Split the piece at the column boundaries.  The edge is not vertical
	// here, so dydx is finite.
	dydx := 1 / e.dxdy
	for col := lo; col <= hi; col++ {
		ya := e.y0 + dydx*(float64(col)-e.x0)
		yb := e.y0 + dydx*(float64(col+1)-e.x0)
		ya, yb = max(min(ya, yb), top), min(max(ya, yb), bottom)
		if yb > ya {
			add(col, ya, yb)
		}
	}
}

// resolveRow turns the accumulated values of one scanline into coverage,
// in place in cover, and passes the span between the first and last
// covered pixel to emit.
func resolveRow(y, xMin int, cover, area []float32, emit func(y, xMin int, coverage []float32)) {
	first, last := -1, -1
	var winding float32
	for i := range cover {
		c := winding + area[i]
		winding += cover[i]
		if c < 0 {
			c = -c
		}
		cover[i] = min(c, 1)
		if c != 0 {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first >= 0 {
		emit(y, xMin+first, cover[first:last+1])
	}
}

// zeroed returns buf resized to n elements, all zero.
func zeroed[T any](buf []T, n int) []T {
	buf = slices.Grow(buf[:0], n)[:n]
	clear(buf)
	return buf
}

// fillBuffered keeps one buffer row per scanline of the bounding box, so
// that every edge is visited exactly once.
func (r *Rasterizer) fillBuffered(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin
	r.cover = zeroed(r.cover, width*height)
	r.area = zeroed(r.area, width*height)
	r.touched = zeroed(r.touched, height)

	row := func(y int) (cover, area []float32) {
		k := (y - yMin) * width
		return r.cover[k : k+width], r.area[k : k+width]
	}

	for i := range r.edges {
		e := &r.edges[i]
		first := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		last := min(int(math.Floor(max(e.y0, e.y1))), yMax-1)
		for y := first; y <= last; y++ {
			cover, area := row(y)
			r.accumulateEdge(e, y, cover, area, xMin, xMax)
			r.touched[y-yMin] = true
		}
	}

	for y := yMin; y < yMax; y++ {
		if r.touched[y-yMin] {
			cover, area := row(y)
			resolveRow(y, xMin, cover, area, emit)
		}
	}
}

// fillScanlines reuses a single buffer row.  Edges are sorted by their top
// and kept in an active list while they intersect the current scanline.
func (r *Rasterizer) fillScanlines(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = zeroed(r.cover, width)
	r.area = zeroed(r.area, width)

	top := func(e edge) float64 { return min(e.y0, e.y1) }
	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(top(a), top(b))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		for next < len(r.edges) && top(r.edges[next]) < float64(y+1) {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			e := &r.edges[i]
			return max(e.y0, e.y1) <= float64(y)
		})
		if len(r.active) == 0 {
			continue
		}

		for _, i := range r.active {
			r.accumulateEdge(&r.edges[i], y, r.cover, r.area, xMin, xMax)
		}
		resolveRow(y, xMin, r.cover, r.area, emit)
		clear(r.cover)
		clear(r.area)
	}
}

const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the largest bounding box area, in pixels, for
	// which the 2D buffers are used.
	smallPathThreshold = 65536
)
