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

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the key bindings of the demo.
type KeyMap struct {
	Cap   key.Binding
	Join  key.Binding
	Pen   key.Binding
	Wider key.Binding
	Thin  key.Binding
	Pause key.Binding
	Quit  key.Binding
}

// DefaultKeyMap is the key map used by [New].
var DefaultKeyMap = KeyMap{
	Cap: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cap"),
	),
	Join: key.NewBinding(
		key.WithKeys("j"),
		key.WithHelp("j", "join"),
	),
	Pen: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pen"),
	),
	Wider: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "wider"),
	),
	Thin: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "thinner"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var _ help.KeyMap = KeyMap{}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cap, k.Join, k.Pen, k.Wider, k.Thin, k.Pause, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cap, k.Join, k.Pen},
		{k.Wider, k.Thin, k.Pause, k.Quit},
	}
}
