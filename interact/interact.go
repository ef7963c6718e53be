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

// Package interact maps pointer and touch input to control point edits.
//
// A [Mapper] works in one of two modes.  In single pointer mode a press
// selects the nearest control point, which then follows the pointer until
// it is released.  In multi-touch mode every touch point is bound to its
// own control point.  Touch mode is active while at least one binding
// exists, and during this time all single pointer input is ignored.
//
// The control points are passed in by the caller on every call and are
// modified in place.  A Mapper is not safe for concurrent use.
package interact

import (
	"maps"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Capture radii, as multiples of the point radius, and the click
// threshold.
const (
	PointerCapture = 8  // single pointer mode
	TouchCapture   = 12 // multi-touch mode

	// ClickThreshold is the largest Manhattan distance between press and
	// release positions for which a release counts as a click.
	ClickThreshold = 25
)

// Mapper tracks the state of an ongoing pointer or touch interaction.
// Mappers are created with [New].
type Mapper struct {
	// PointRadius is the drawn radius of a control point.
	PointRadius float64

	pressed bool
	active  int // index of the dragged point, or -1
	press   vec.Vec2
	dragged bool

	bindings map[int]int // touch id -> point index
}

// New returns a Mapper for control points of the given radius.
func New(pointRadius float64) *Mapper {
	return &Mapper{
		PointRadius: pointRadius,
		active:      -1,
		bindings:    make(map[int]int),
	}
}

// Active reports whether multi-touch mode is active.
func (m *Mapper) Active() bool {
	return len(m.bindings) > 0
}

// Bindings returns a copy of the current touch id to point index map.
func (m *Mapper) Bindings() map[int]int {
	return maps.Clone(m.bindings)
}

// ActivePoint returns the index of the point following the pointer.
func (m *Mapper) ActivePoint() (int, bool) {
	if m.active < 0 {
		return -1, false
	}
	return m.active, true
}

// PressNear starts a pointer interaction at pos.
//
// The point closest to pos, among the points closer than PointerCapture
// times the point radius, becomes the active point and is moved to pos.
// If several points are equally close, the one with the lowest index is
// used.  If no point is in range, no point is modified and false is
// returned.
func (m *Mapper) PressNear(points []vec.Vec2, pos vec.Vec2) (int, bool) {
	if m.Active() {
		return -1, false
	}

	m.pressed = true
	m.press = pos
	m.dragged = false
	m.active = nearest(points, pos, PointerCapture*m.PointRadius, nil)
	if m.active < 0 {
		return -1, false
	}
	points[m.active] = pos
	return m.active, true
}

// Drag moves the active point to pos.  The return value indicates whether
// a point was moved.
func (m *Mapper) Drag(points []vec.Vec2, pos vec.Vec2) bool {
	if m.Active() || !m.pressed {
		return false
	}

	if !m.dragged && manhattan(pos.Sub(m.press)) > ClickThreshold {
		m.dragged = true
	}
	if m.active < 0 || m.active >= len(points) {
		return false
	}
	points[m.active] = pos
	return true
}

// Release ends a pointer interaction.  The result is true if the pointer
// never moved further than ClickThreshold from the press position.
func (m *Mapper) Release() (clicked bool) {
	if m.Active() || !m.pressed {
		return false
	}
	clicked = !m.dragged
	m.pressed = false
	m.active = -1
	m.dragged = false
	return clicked
}

// TouchPress binds the touch point id to the nearest control point which
// is not yet bound to another touch, within TouchCapture times the point
// radius.  The control point is moved to pos.
func (m *Mapper) TouchPress(points []vec.Vec2, id int, pos vec.Vec2) (int, bool) {
	if _, seen := m.bindings[id]; seen {
		return -1, false
	}

	bound := make(map[int]bool, len(m.bindings))
	for _, idx := range m.bindings {
		bound[idx] = true
	}
	idx := nearest(points, pos, TouchCapture*m.PointRadius, bound)
	if idx < 0 {
		return -1, false
	}
	if m.bindings == nil {
		m.bindings = make(map[int]int)
	}
	m.bindings[id] = idx
	points[idx] = pos
	return idx, true
}

// TouchMove moves the control point bound to id.
func (m *Mapper) TouchMove(points []vec.Vec2, id int, pos vec.Vec2) bool {
	idx, ok := m.bindings[id]
	if !ok || idx >= len(points) {
		return false
	}
	points[idx] = pos
	return true
}

// TouchRelease moves the control point bound to id one last time, and
// then removes the binding.
func (m *Mapper) TouchRelease(points []vec.Vec2, id int, pos vec.Vec2) bool {
	idx, ok := m.bindings[id]
	if !ok {
		return false
	}
	if idx < len(points) {
		points[idx] = pos
	}
	delete(m.bindings, id)
	return true
}

// EndTouch removes all touch bindings, at the end of a touch sequence.
// The result tells whether any bindings were present.
func (m *Mapper) EndTouch() bool {
	if len(m.bindings) == 0 {
		return false
	}
	clear(m.bindings)
	return true
}

// Phase is the state of a touch point within a touch event.
type Phase int

// The touch point phases.
const (
	Stationary Phase = iota
	Pressed
	Moved
	Released
)

// Event describes one touch point of a touch event.
type Event struct {
	ID    int
	Pos   vec.Vec2
	Phase Phase
}

// HandleTouch applies all touch points of one touch event, in order.
// The result reports whether touch mode is active afterwards.
func (m *Mapper) HandleTouch(points []vec.Vec2, events []Event) bool {
	for _, e := range events {
		switch e.Phase {
		case Pressed:
			m.TouchPress(points, e.ID, e.Pos)
		case Moved:
			m.TouchMove(points, e.ID, e.Pos)
		case Released:
			m.TouchRelease(points, e.ID, e.Pos)
		}
	}
	return m.Active()
}

// nearest returns the index of the point closest to pos, considering only
// points closer than maxDist and not in skip.  The result is -1 if there
// is no such point.
func nearest(points []vec.Vec2, pos vec.Vec2, maxDist float64, skip map[int]bool) int {
	best := -1
	bestDist := maxDist
	for i, p := range points {
		if skip[i] {
			continue
		}
		if d := p.Sub(pos).Length(); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func manhattan(v vec.Vec2) float64 {
	return math.Abs(v.X) + math.Abs(v.Y)
}
