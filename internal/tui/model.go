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

// Package tui implements the interactive terminal demo.
//
// The scene is rasterized at two pixels per terminal cell, using the upper
// and lower half block characters.  Control points can be dragged with the
// mouse.  A click which does not drag a point pauses or resumes the
// animation.
package tui

import (
	"fmt"
	"image"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pathstroke"
	"seehuhn.de/go/pathstroke/interact"
	"seehuhn.de/go/pathstroke/internal/config"
	"seehuhn.de/go/pathstroke/internal/log"
	"seehuhn.de/go/pathstroke/raster"
	"seehuhn.de/go/pathstroke/sim"
)

// Range of the pen width which can be selected with the keyboard.
const (
	minWidth = 1
	maxWidth = 64
)

// statusLines is the number of terminal rows below the canvas.
const statusLines = 2

// Styles holds the lipgloss styles used by [Model.View].
type Styles struct {
	Point  lipgloss.Style
	Active lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles is the style set used by [New].
var DefaultStyles = Styles{
	Point:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "27", Dark: "75"}),
	Active: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}),
	Status: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5A5A5A", Dark: "#B2B2B2"}),
	Error:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF0000"}),
}

type tickMsg time.Time

// Model is the bubbletea model of the demo.
type Model struct {
	KeyMap KeyMap
	Styles Styles

	viewport rect.Rect
	bounds   rect.Rect
	tick     time.Duration

	state  sim.State
	mapper *interact.Mapper
	style  pathstroke.Style
	pen    pathstroke.PenStyle
	paused bool

	stroker *pathstroke.Stroker
	raster  *raster.Rasterizer
	canvas  *image.Alpha
	cols    int
	rows    int
	scale   float64 // viewport units per canvas pixel

	help help.Model
	err  error
	log  *zap.Logger
}

// New returns a model showing the scene described by cfg.
func New(cfg *config.Config) (*Model, error) {
	style, err := cfg.Style()
	if err != nil {
		return nil, err
	}
	pen, err := cfg.PenStyle()
	if err != nil {
		return nil, err
	}

	viewport := cfg.Bounds()
	m := &Model{
		KeyMap: DefaultKeyMap,
		Styles: DefaultStyles,

		viewport: viewport,
		bounds:   sim.Bounds(viewport, cfg.Points.Pad),
		tick:     cfg.Tick,

		state:  sim.Init(cfg.Points.Count, viewport),
		mapper: interact.New(cfg.Points.Radius),
		style:  style,
		pen:    pen,

		stroker: pathstroke.NewStroker(),
		raster:  raster.NewRasterizer(rect.Rect{}),

		help: help.New(),
		log:  log.Get().Named("tui.Model"),
	}
	return m, nil
}

// Style returns the current stroke style.
func (m *Model) Style() pathstroke.Style {
	return m.style
}

// Points returns the current control points.
func (m *Model) Points() []vec.Vec2 {
	return m.state.Points
}

// Paused reports whether the animation is stopped.
func (m *Model) Paused() bool {
	return m.paused
}

func (m *Model) Init() tea.Cmd {
	return m.nextTick()
}

func (m *Model) nextTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height-statusLines)
		m.help.Width = msg.Width

	case tickMsg:
		if !m.paused {
			m.state = sim.Advance(m.state, m.bounds)
		}
		return m, m.nextTick()

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		m.log.Debug("received KeyMsg", zap.String("key", msg.String()))
		switch {
		case key.Matches(msg, m.KeyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.Cap):
			m.style.Cap = (m.style.Cap + 1) % 3
		case key.Matches(msg, m.KeyMap.Join):
			m.style.Join = (m.style.Join + 1) % 3
		case key.Matches(msg, m.KeyMap.Pen):
			m.pen = (m.pen + 1) % (pathstroke.PenCustom + 1)
		case key.Matches(msg, m.KeyMap.Wider):
			m.style.Width = min(m.style.Width+1, maxWidth)
		case key.Matches(msg, m.KeyMap.Thin):
			m.style.Width = max(m.style.Width-1, minWidth)
		case key.Matches(msg, m.KeyMap.Pause):
			m.paused = !m.paused
		}
		m.style.Dash = m.pen.Dashes(m.style.Width)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := m.toViewport(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if idx, ok := m.mapper.PressNear(m.state.Points, pos); ok {
			m.log.Debug("picked point", zap.Int("index", idx))
		}
	case tea.MouseActionMotion:
		m.mapper.Drag(m.state.Points, pos)
	case tea.MouseActionRelease:
		if m.mapper.Release() {
			m.paused = !m.paused
		}
	}
}

// resize adapts the canvas to a terminal area of cols×rows cells.
func (m *Model) resize(cols, rows int) {
	cols = max(cols, 1)
	rows = max(rows, 1)
	m.cols, m.rows = cols, rows
	m.canvas = image.NewAlpha(image.Rect(0, 0, cols, 2*rows))

	w := m.viewport.URx - m.viewport.LLx
	h := m.viewport.URy - m.viewport.LLy
	m.scale = max(w/float64(cols), h/float64(2*rows))
	m.raster.Transform = matrix.Matrix{
		1 / m.scale, 0,
		0, 1 / m.scale,
		-m.viewport.LLx / m.scale, -m.viewport.LLy / m.scale,
	}
}

// toViewport returns the viewport position at the centre of a cell.
func (m *Model) toViewport(col, row int) vec.Vec2 {
	return vec.Vec2{
		X: m.viewport.LLx + (float64(col)+0.5)*m.scale,
		Y: m.viewport.LLy + float64(2*row+1)*m.scale,
	}
}

// toCell returns the cell containing the viewport position p.
func (m *Model) toCell(p vec.Vec2) (col, row int) {
	col = int(math.Floor((p.X - m.viewport.LLx) / m.scale))
	row = int(math.Floor((p.Y - m.viewport.LLy) / (2 * m.scale)))
	return col, row
}

func (m *Model) View() string {
	if m.canvas == nil {
		return ""
	}

	clear(m.canvas.Pix)
	var status string
	frame, err := m.stroker.Render(m.state.Points, m.style)
	if err != nil {
		status = m.Styles.Error.Render("Error: " + err.Error())
	} else {
		m.raster.FillAlpha(m.canvas, frame.Outline)
		status = m.Styles.Status.Render(fmt.Sprintf("cap=%s join=%s pen=%s width=%g",
			m.style.Cap, m.style.Join, m.pen, m.style.Width))
	}
	if m.paused {
		status += m.Styles.Status.Render(" (paused)")
	}

	markers := make(map[image.Point]int, len(m.state.Points))
	for i, p := range m.state.Points {
		col, row := m.toCell(p)
		markers[image.Point{X: col, Y: row}] = i
	}
	active, hasActive := m.mapper.ActivePoint()

	var b strings.Builder
	for row := range m.rows {
		for col := range m.cols {
			if i, ok := markers[image.Point{X: col, Y: row}]; ok {
				if hasActive && i == active {
					_, _ = b.WriteString(m.Styles.Active.Render("●"))
				} else {
					_, _ = b.WriteString(m.Styles.Point.Render("●"))
				}
				continue
			}
			top := m.canvas.Pix[m.canvas.PixOffset(col, 2*row)]
			bottom := m.canvas.Pix[m.canvas.PixOffset(col, 2*row+1)]
			_, _ = b.WriteString(halfBlock(top, bottom))
		}
		_, _ = b.WriteString("\n")
	}
	_, _ = b.WriteString(status)
	_, _ = b.WriteString("\n")
	_, _ = b.WriteString(m.help.View(m.KeyMap))
	return b.String()
}

// halfBlock returns the character which shows two vertically stacked
// pixels.
func halfBlock(top, bottom uint8) string {
	const threshold = 128
	switch {
	case top >= threshold && bottom >= threshold:
		return "█"
	case top >= threshold:
		return "▀"
	case bottom >= threshold:
		return "▄"
	default:
		return " "
	}
}
