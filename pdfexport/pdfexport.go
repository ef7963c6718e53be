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

// Package pdfexport writes a stroked frame to a single-page PDF file.
//
// The page shows the outline computed by [pathstroke], filled in grey, with
// the control polygon and the control points drawn on top.  Optionally the
// same path is also stroked by the PDF viewer itself, underneath the
// outline, so that the two results can be compared visually.
package pdfexport

import (
	"github.com/pkg/errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pathstroke"
)

// Page describes the contents of one exported page.
// Coordinates use a top-left origin with y pointing down, like the
// rest of the module.
type Page struct {
	Width, Height float64

	// Points are the control points.  If PointRadius is positive, the
	// control polygon and a marker for every point are drawn.
	Points      []vec.Vec2
	PointRadius float64

	// Outline is filled using the nonzero winding rule.
	Outline pathstroke.Outline

	// If Path is not nil, it is first stroked natively with Style in a
	// light grey.  Where the outline covers it exactly, only the darker
	// outline is visible.
	Path  *path.Data
	Style pathstroke.Style
}

// Write creates the PDF file fname and draws pg onto it.
func Write(fname string, pg *Page) error {
	if pg.Width <= 0 || pg.Height <= 0 {
		return errors.Errorf("pdfexport: invalid page size %gx%g", pg.Width, pg.Height)
	}

	paper := &pdf.Rectangle{
		URx: pg.Width,
		URy: pg.Height,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return errors.Wrapf(err, "create %q", fname)
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, pg.Width, pg.Height)
	page.Fill()

	// PDF origin is bottom-left; frames use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, pg.Height})

	if pg.Path != nil {
		page.SetStrokeColor(color.DeviceGray(0.85))
		page.SetLineWidth(pg.Style.Width)
		page.SetLineCap(LineCap(pg.Style.Cap))
		page.SetLineJoin(LineJoin(pg.Style.Join))
		if pg.Style.MiterLimit >= 1 {
			page.SetMiterLimit(pg.Style.MiterLimit)
		}
		if dash := DashArray(pg.Style.Dash); len(dash) > 0 {
			page.SetLineDash(dash, pg.Style.DashPhase)
		}
		drawPath(page, pg.Path)
		page.Stroke()
		if len(pg.Style.Dash) > 0 {
			page.SetLineDash(nil, 0)
		}
	}

	if len(pg.Outline) > 0 {
		page.SetFillColor(color.DeviceGray(0.45))
		for _, poly := range pg.Outline {
			if len(poly) < 3 {
				continue
			}
			page.MoveTo(poly[0].X, poly[0].Y)
			for _, v := range poly[1:] {
				page.LineTo(v.X, v.Y)
			}
			page.ClosePath()
		}
		page.Fill()
	}

	if pg.PointRadius > 0 && len(pg.Points) > 0 {
		r := pg.PointRadius
		page.SetStrokeColor(color.DeviceGray(0.3))
		page.SetLineWidth(r / 2)
		page.SetLineCap(graphics.LineCapButt)
		page.SetLineJoin(graphics.LineJoinMiter)
		page.MoveTo(pg.Points[0].X, pg.Points[0].Y)
		for _, p := range pg.Points[1:] {
			page.LineTo(p.X, p.Y)
		}
		page.Stroke()

		page.SetFillColor(color.DeviceGray(0.2))
		for _, p := range pg.Points {
			page.Rectangle(p.X-r, p.Y-r, 2*r, 2*r)
		}
		page.Fill()
	}

	if err := page.Close(); err != nil {
		return errors.Wrapf(err, "write %q", fname)
	}
	return nil
}

// pathBuilder is the part of the PDF content stream writer used to
// construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath appends the segments of p to the current PDF path.
// Quadratic segments are converted to cubics.
func drawPath(page pathBuilder, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// LineCap returns the PDF line cap style corresponding to c.
func LineCap(c pathstroke.Cap) graphics.LineCapStyle {
	switch c {
	case pathstroke.CapRound:
		return graphics.LineCapRound
	case pathstroke.CapSquare:
		return graphics.LineCapSquare
	default:
		return graphics.LineCapButt
	}
}

// LineJoin returns the PDF line join style corresponding to j.
func LineJoin(j pathstroke.Join) graphics.LineJoinStyle {
	switch j {
	case pathstroke.JoinRound:
		return graphics.LineJoinRound
	case pathstroke.JoinMiter:
		return graphics.LineJoinMiter
	default:
		return graphics.LineJoinBevel
	}
}

// DashArray flattens a dash pattern into the alternating on/off lengths
// used by PDF.  The result is nil for a solid line.
func DashArray(runs []pathstroke.DashRun) []float64 {
	if len(runs) == 0 {
		return nil
	}
	res := make([]float64, 0, 2*len(runs))
	for _, r := range runs {
		res = append(res, r.On, r.Off)
	}
	return res
}
