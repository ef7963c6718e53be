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

// Package cmd implements the pathstroke command line interface.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"seehuhn.de/go/pathstroke/internal/config"
	"seehuhn.de/go/pathstroke/internal/log"
)

type commonFlags struct {
	configFile string
	verbose    bool
}

// Root returns the top-level command.
func Root() *cobra.Command {
	cFlags := &commonFlags{}

	cmd := cobra.Command{
		Use:   "pathstroke",
		Short: "Stroke animated Bezier paths",
		Long: `pathstroke animates a path through a set of moving control points and
strokes it with the selected pen width, cap, join and dash pattern.

The scene can be explored interactively in the terminal, or written to
PNG and PDF files.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Set(cFlags.verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}

	pFlags := cmd.PersistentFlags()
	pFlags.StringVar(&cFlags.configFile, "config", "", "Scene configuration file (YAML).")
	pFlags.BoolVarP(&cFlags.verbose, "verbose", "v", false, "Enable debug logging.")

	cmd.SetGlobalNormalizationFunc(normalizeFlag)

	cmd.AddCommand(demoCmd(cFlags))
	cmd.AddCommand(renderCmd(cFlags))
	cmd.AddCommand(pdfCmd(cFlags))

	return &cmd
}

func (f *commonFlags) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return nil, err
	}
	log.Get().Debug("loaded configuration",
		zap.String("file", f.configFile),
		zap.Any("config", cfg))
	return cfg, nil
}

// normalizeFlag accepts underscores in flag names, so that flags can be
// spelled like the keys of the configuration file.
func normalizeFlag(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
