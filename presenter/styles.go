// This file is part of Cycletrace.
//
// Cycletrace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cycletrace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cycletrace.  If not, see <https://www.gnu.org/licenses/>.

package presenter

import (
	"github.com/charmbracelet/lipgloss"
)

// paint applies a lipgloss style only when colour is enabled
type paint struct {
	style lipgloss.Style
	on    bool
}

func (p paint) render(s string) string {
	if !p.on {
		return s
	}
	return p.style.Render(s)
}

type styles struct {
	title   paint
	label   paint
	value   paint
	empty   paint
	flagSet paint
	flagClr paint
	current paint
	change  paint
}

func newStyles(color bool) styles {
	return styles{
		title: paint{on: color, style: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))},
		label: paint{on: color, style: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))},
		value: paint{on: color, style: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))},
		empty: paint{on: color, style: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("8"))},
		flagSet: paint{on: color, style: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))},
		flagClr: paint{on: color, style: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))},
		current: paint{on: color, style: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))},
		change: paint{on: color, style: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))},
	}
}
