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
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pathstroke"
	"seehuhn.de/go/pathstroke/internal/log"
	"seehuhn.de/go/pathstroke/raster"
)

func renderCmd(cFlags *commonFlags) *cobra.Command {
	var (
		ticks  int
		outDir string
	)

	cmd := cobra.Command{
		Use:   "render",
		Short: "Write the animation as PNG images",
		Long: `Write one PNG image per animation step.

Frame 0 shows the initial layout, frame i the layout after i steps.`,
		Args: cobra.NoArgs,
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
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return errors.WithStack(err)
			}

			w := newPNGWriter(cfg.Viewport.Width, cfg.Viewport.Height, cfg.Points.Radius/2)
			for i := 0; i <= ticks; i++ {
				if i > 0 {
					s.advance(1)
				}
				frame, err := s.frame()
				if err != nil {
					return errors.Wrapf(err, "frame %d", i)
				}
				fname := filepath.Join(outDir, fmt.Sprintf("frame%04d.png", i))
				if err := w.write(fname, frame.Outline, s.state.Points); err != nil {
					return err
				}
				log.Get().Debug("wrote frame", zap.String("file", fname))
			}
			log.Get().Info("rendered frames",
				zap.Int("count", ticks+1),
				zap.String("dir", outDir))
			return nil
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", 100, "Number of animation steps.")
	cmd.Flags().StringVar(&outDir, "out", "frames", "Output directory.")

	return &cmd
}

// pngWriter draws frames as black strokes on a white background, with
// grey squares marking the control points.
type pngWriter struct {
	raster     *raster.Rasterizer
	stroke     *image.Alpha
	points     *image.Alpha
	markerSize float64 // half the side length of a marker
}

func newPNGWriter(width, height int, markerSize float64) *pngWriter {
	r := image.Rect(0, 0, width, height)
	return &pngWriter{
		raster:     raster.NewRasterizer(rect.Rect{}),
		stroke:     image.NewAlpha(r),
		points:     image.NewAlpha(r),
		markerSize: markerSize,
	}
}

func (w *pngWriter) write(fname string, outline pathstroke.Outline, points []vec.Vec2) (err error) {
	clear(w.stroke.Pix)
	clear(w.points.Pix)
	w.raster.FillAlpha(w.stroke, outline)
	w.raster.FillAlpha(w.points, markers(points, w.markerSize))

	img := image.NewGray(w.stroke.Bounds())
	for i := range img.Pix {
		img.Pix[i] = 255 - max(w.stroke.Pix[i], w.points.Pix[i]/2)
	}

	out, err := os.Create(fname)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = errors.WithStack(cerr)
		}
	}()
	return errors.Wrapf(png.Encode(out, img), "encode %q", fname)
}

// markers returns one axis-aligned square per point.
func markers(points []vec.Vec2, d float64) pathstroke.Outline {
	res := make(pathstroke.Outline, len(points))
	for i, p := range points {
		res[i] = pathstroke.Polygon{
			{X: p.X - d, Y: p.Y - d},
			{X: p.X + d, Y: p.Y - d},
			{X: p.X + d, Y: p.Y + d},
			{X: p.X - d, Y: p.Y + d},
		}
	}
	return res
}
