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
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := Root()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, execute(t, "render", "--ticks", "2", "--out", dir))

	files, err := filepath.Glob(filepath.Join(dir, "frame*.png"))
	require.NoError(t, err)
	require.Len(t, files, 3)

	f, err := os.Open(files[0])
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 500, img.Bounds().Dx())
	assert.Equal(t, 500, img.Bounds().Dy())
}

func TestRenderConfig(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "scene.yaml")
	data := []byte(`version: v1
viewport:
  width: 64
  height: 48
points:
  count: 4
pen:
  width: 3
  cap: round
  style: dot
`)
	require.NoError(t, os.WriteFile(cfgFile, data, 0o644))

	outDir := filepath.Join(dir, "frames")
	require.NoError(t, execute(t, "--config", cfgFile, "render", "--ticks", "0", "--out", outDir))

	f, err := os.Open(filepath.Join(outDir, "frame0000.png"))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()

	err := execute(t, "render", "--ticks", "-1", "--out", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid number of ticks")

	cfgFile := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("version: v9\n"), 0o644))
	err = execute(t, "--config", cfgFile, "render", "--out", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown version")

	err = execute(t, "render", "extra")
	require.Error(t, err)
}

func TestPDF(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "frame.pdf")
	require.NoError(t, execute(t, "pdf", "--ticks", "5", "--out", fname))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestMarkers(t *testing.T) {
	w := newPNGWriter(20, 20, 2)
	fname := filepath.Join(t.TempDir(), "m.png")
	points := []vec.Vec2{{X: 5.5, Y: 5.5}}
	require.NoError(t, w.write(fname, nil, points))

	assert.Equal(t, uint8(255), w.points.AlphaAt(5, 5).A)
	assert.Equal(t, uint8(0), w.points.AlphaAt(10, 10).A)

	f, err := os.Open(fname)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	gray, ok := img.(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, uint8(128), gray.GrayAt(5, 5).Y)
	assert.Equal(t, uint8(255), gray.GrayAt(10, 10).Y)
}
