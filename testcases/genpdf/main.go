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

// Command genpdf writes one PDF file per test case into testdata/pdf.
// Every page shows the computed outline over the native PDF stroke of
// the same path, for visual comparison in a PDF viewer.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/pathstroke"
	"seehuhn.de/go/pathstroke/pdfexport"
	"seehuhn.de/go/pathstroke/testcases"
)

const pdfDir = "testdata/pdf"

func main() {
	if err := os.MkdirAll(pdfDir, 0755); err != nil {
		panic(err)
	}

	s := pathstroke.NewStroker()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(pdfDir, name+".pdf")

			if err := generatePDF(s, tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(s *pathstroke.Stroker, tc testcases.TestCase, pdfPath string) error {
	p := tc.Path()
	outline, err := s.Stroke(p, tc.Style)
	if err != nil {
		return err
	}

	return pdfexport.Write(pdfPath, &pdfexport.Page{
		Width:       float64(tc.Width),
		Height:      float64(tc.Height),
		Points:      tc.Points,
		PointRadius: 0.75,
		Outline:     outline,
		Path:        p,
		Style:       tc.Style,
	})
}
