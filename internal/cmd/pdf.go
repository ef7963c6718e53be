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

package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seehuhn.de/go/pathstroke/internal/log"
	"seehuhn.de/go/pathstroke/pdfexport"
)

func pdfCmd(cFlags *commonFlags) *cobra.Command {
	var (
		ticks  int
		out    string
		native bool
	)

	cmd := cobra.Command{
		Use:   "pdf",
		Short: "Write one animation frame as a PDF page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks < 0 {
				return errors.Errorf("invalid number of ticks: %d", ticks)
			}
			cfg, err := cFlags.loadConfig()
			if err != nil {
				return err
			}
			s, err := newScene(cfg)
			if err != nil {
				return err
			}
			s.advance(ticks)

			frame, err := s.frame()
			if err != nil {
				return err
			}
			page := &pdfexport.Page{
				Width:       float64(cfg.Viewport.Width),
				Height:      float64(cfg.Viewport.Height),
				Points:      s.state.Points,
				PointRadius: cfg.Points.Radius / 2,
				Outline:     frame.Outline,
				Style:       s.style,
			}
			if native {
				page.Path = frame.Path
			}
			if err := pdfexport.Write(out, page); err != nil {
				return err
			}
			log.Get().Info("wrote PDF", zap.String("file", out), zap.Int("ticks", ticks))
			return nil
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", 0, "Number of animation steps before the frame is taken.")
	cmd.Flags().StringVar(&out, "out", "pathstroke.pdf", "Output file.")
	cmd.Flags().BoolVar(&native, "native", true, "Also stroke the path with the PDF viewer, for comparison.")

	return &cmd
}
