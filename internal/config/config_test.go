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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"seehuhn.de/go/pathstroke"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	style, err := cfg.Style()
	require.NoError(t, err)
	assert.Equal(t, 8.0, style.Width)
	assert.Equal(t, pathstroke.CapFlat, style.Cap)
	assert.Equal(t, pathstroke.JoinBevel, style.Join)
	assert.Nil(t, style.Dash)
	assert.Equal(t, 40*time.Millisecond, cfg.Tick)
	assert.Equal(t, 500.0, cfg.Bounds().URx)
	assert.Equal(t, 500.0, cfg.Bounds().URy)
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name           string
		raw            string
		modify         func(*Config)
		errorSubstring string
	}{
		{
			name: "version only",
			raw:  "version: v1\n",
		},
		{
			name: "pen overrides",
			raw: `version: v1
pen:
  cap: round
  join: miter
  width: 12
`,
			modify: func(c *Config) {
				c.Pen.Cap = "round"
				c.Pen.Join = "miter"
				c.Pen.Width = 12
			},
		},
		{
			name: "tick and viewport",
			raw: `version: v1
tick: 100ms
viewport:
  width: 320
  height: 200
`,
			modify: func(c *Config) {
				c.Tick = 100 * time.Millisecond
				c.Viewport = Viewport{Width: 320, Height: 200}
			},
		},
		{
			name:           "missing version",
			raw:            "pen:\n  width: 3\n",
			errorSubstring: "unknown version",
		},
		{
			name:           "unknown version",
			raw:            "version: v7\n",
			errorSubstring: `unknown version: "v7"`,
		},
		{
			name:           "bad cap",
			raw:            "version: v1\npen:\n  cap: pointy\n",
			errorSubstring: "Config.Pen.Cap",
		},
		{
			name:           "bad yaml",
			raw:            "version: v1\npoints: [1, 2\n",
			errorSubstring: "failed to unmarshal",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse([]byte(tc.raw))
			if tc.errorSubstring != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorSubstring)
				return
			}
			require.NoError(t, err)

			want := Default()
			if tc.modify != nil {
				tc.modify(want)
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestValidateCollectsAll(t *testing.T) {
	cfg := Default()
	cfg.Pen.Width = -1
	cfg.Pen.MiterLimit = 0.5
	cfg.Viewport.Height = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
}

func TestStyleDashes(t *testing.T) {
	cfg := Default()
	cfg.Pen.Style = "dashdot"

	style, err := cfg.Style()
	require.NoError(t, err)
	want := []pathstroke.DashRun{{On: 32, Off: 16}, {On: 8, Off: 16}}
	assert.Equal(t, want, style.Dash)
}

func TestStyleInvalid(t *testing.T) {
	cfg := Default()
	cfg.Pen.Cap = "pointy"
	cfg.Pen.Join = "sharp"

	_, err := cfg.Style()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	fname := filepath.Join(t.TempDir(), "scene.yaml")
	data := []byte("version: v1\npoints:\n  count: 4\n")
	require.NoError(t, os.WriteFile(fname, data, 0o644))

	cfg, err = Load(fname)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Points.Count)
	assert.Equal(t, 10.0, cfg.Points.Radius)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
