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

// Package config reads the YAML scene files of the command line tools.
package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pathstroke"
)

// Version is the only scene file version understood by [Parse].
const Version = "v1"

// Config describes one animated scene.
type Config struct {
	Version  string        `yaml:"version" validate:"required"`
	Viewport Viewport      `yaml:"viewport"`
	Points   Points        `yaml:"points"`
	Pen      Pen           `yaml:"pen"`
	Tick     time.Duration `yaml:"tick" validate:"gt=0"`
}

// Viewport is the size of the drawing area, in pixels.
type Viewport struct {
	Width  int `yaml:"width" validate:"gt=0,lte=8192"`
	Height int `yaml:"height" validate:"gt=0,lte=8192"`
}

// Points configures the animated control points.
type Points struct {
	Count  int     `yaml:"count" validate:"gte=0,lte=64"`
	Radius float64 `yaml:"radius" validate:"gt=0"`
	Pad    float64 `yaml:"pad" validate:"gte=0"`
}

// Pen configures the stroke style.
type Pen struct {
	Width      float64 `yaml:"width" validate:"gt=0"`
	Cap        string  `yaml:"cap" validate:"oneof=flat round square"`
	Join       string  `yaml:"join" validate:"oneof=bevel round miter"`
	Style      string  `yaml:"style" validate:"oneof=solid dash dot dashdot dashdotdot custom"`
	MiterLimit float64 `yaml:"miter_limit" validate:"gte=1"`
}

// Default returns the scene used when no file is given.
func Default() *Config {
	return &Config{
		Version:  Version,
		Viewport: Viewport{Width: 500, Height: 500},
		Points:   Points{Count: 7, Radius: 10, Pad: 10},
		Pen: Pen{
			Width:      8,
			Cap:        "flat",
			Join:       "bevel",
			Style:      "solid",
			MiterLimit: pathstroke.DefaultMiterLimit,
		},
		Tick: 40 * time.Millisecond,
	}
}

// Load reads a scene file.  An empty name returns the defaults.
func Load(fname string) (*Config, error) {
	if fname == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config %q", fname)
	}
	return cfg, nil
}

// Parse decodes a scene file.  Keys missing from data keep their default
// values.
func Parse(data []byte) (*Config, error) {
	version, err := parseVersion(data)
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, errors.Errorf("unknown version: %q", version)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type versionOnly struct {
	Version string `yaml:"version"`
}

func parseVersion(data []byte) (string, error) {
	var result versionOnly
	if err := yaml.Unmarshal(data, &result); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal version")
	}
	return result.Version, nil
}

// Validate checks all fields and reports every problem found.
func (c *Config) Validate() error {
	v := validator.New()
	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}
	var result error
	for _, fe := range fieldErrs {
		result = multierr.Append(result,
			errors.Errorf("%s: failed %q check (value %v)", fe.Namespace(), fe.ActualTag(), fe.Value()))
	}
	return result
}

// Bounds returns the viewport as a rectangle in screen coordinates.
func (c *Config) Bounds() rect.Rect {
	return rect.Rect{
		URx: float64(c.Viewport.Width),
		URy: float64(c.Viewport.Height),
	}
}

// PenStyle returns the dash pattern selected by the configuration.
func (c *Config) PenStyle() (pathstroke.PenStyle, error) {
	return pathstroke.ParsePenStyle(c.Pen.Style)
}

// Style converts the pen settings into a stroke style.
func (c *Config) Style() (pathstroke.Style, error) {
	capStyle, err1 := pathstroke.ParseCap(c.Pen.Cap)
	join, err2 := pathstroke.ParseJoin(c.Pen.Join)
	pen, err3 := c.PenStyle()
	if err := multierr.Combine(err1, err2, err3); err != nil {
		return pathstroke.Style{}, err
	}

	style := pathstroke.Style{
		Width:      c.Pen.Width,
		Cap:        capStyle,
		Join:       join,
		MiterLimit: c.Pen.MiterLimit,
		Dash:       pen.Dashes(c.Pen.Width),
	}
	if err := style.Validate(); err != nil {
		return pathstroke.Style{}, err
	}
	return style, nil
}
