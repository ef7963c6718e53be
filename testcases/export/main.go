// Command export writes the test cases, together with the outlines computed
// for them, to testdata/outlines.json.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/pathstroke"
	"seehuhn.de/go/pathstroke/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	s := pathstroke.NewStroker()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(s, category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/outlines.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Points     [][]float64   `json:"points"`
	Path       []jsonSegment `json:"path"`
	LineWidth  float64       `json:"line_width"`
	LineCap    string        `json:"line_cap"`
	LineJoin   string        `json:"line_join"`
	MiterLimit float64       `json:"miter_limit,omitempty"`
	Dash       []float64     `json:"dash,omitempty"`
	DashPhase  float64       `json:"dash_phase,omitempty"`
	Outline    [][][]float64 `json:"outline"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(s *pathstroke.Stroker, category string, tc testcases.TestCase) (jsonTestCase, error) {
	p := tc.Path()
	outline, err := s.Stroke(p, tc.Style)
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Path:       pathToJSON(p),
		LineWidth:  tc.Style.Width,
		LineCap:    tc.Style.Cap.String(),
		LineJoin:   tc.Style.Join.String(),
		MiterLimit: tc.Style.MiterLimit,
		DashPhase:  tc.Style.DashPhase,
	}
	for _, pt := range tc.Points {
		jtc.Points = append(jtc.Points, []float64{pt.X, pt.Y})
	}
	for _, r := range tc.Style.Dash {
		jtc.Dash = append(jtc.Dash, r.On, r.Off)
	}
	jtc.Outline = make([][][]float64, len(outline))
	for i, poly := range outline {
		jtc.Outline[i] = make([][]float64, len(poly))
		for j, v := range poly {
			jtc.Outline[i][j] = []float64{v.X, v.Y}
		}
	}
	return jtc, nil
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
