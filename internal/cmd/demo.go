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
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"seehuhn.de/go/pathstroke/internal/tui"
)

func demoCmd(cFlags *commonFlags) *cobra.Command {
	cmd := cobra.Command{
		Use:   "demo",
		Short: "Run the interactive terminal demo",
		Long: `Run the interactive terminal demo.

Drag the control points with the mouse.  A click which does not move a
point pauses or resumes the animation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cFlags.loadConfig()
			if err != nil {
				return err
			}
			model, err := tui.New(cfg)
			if err != nil {
				return err
			}

			_, err = newProgram(cmd, model).Run()
			return errors.WithStack(err)
		},
	}

	return &cmd
}

type program struct {
	*tea.Program
	out io.Writer
}

// Run starts the program.  If the output is not a terminal, the program
// quits right away.
func (p *program) Run() (tea.Model, error) {
	if f, ok := p.out.(*os.File); ok && !isatty.IsTerminal(f.Fd()) {
		go p.Quit()
	}
	return p.Program.Run()
}

func newProgram(cmd *cobra.Command, model tea.Model) *program {
	out := cmd.OutOrStdout()
	return &program{
		Program: tea.NewProgram(
			model,
			tea.WithOutput(out),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		),
		out: out,
	}
}
