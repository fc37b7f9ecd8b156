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

//go:build !windows

package colorterm

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/cycletrace/terminal"
	"github.com/jetsetilly/cycletrace/terminal/colorterm/easyterm"
)

type styles struct {
	feedback lipgloss.Style
	help     lipgloss.Style
	log      lipgloss.Style
	err      lipgloss.Style
	prompt   lipgloss.Style
}

func newStyles() styles {
	return styles{
		feedback: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		log:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	ct.crit.Lock()
	defer ct.crit.Unlock()

	if ct.silenced && style != terminal.StyleError {
		return
	}

	// the terminal does its own echoing during line entry
	if style == terminal.StyleEcho {
		return
	}

	ct.TermPrint("\r")
	ct.TermPrint(easyterm.ClearLine)

	// frames are styled by the presenter
	switch style {
	case terminal.StyleFeedback:
		s = ct.styles.feedback.Render(s)
	case terminal.StyleHelp:
		s = ct.styles.help.Render(s)
	case terminal.StyleLog:
		s = ct.styles.log.Render(s)
	case terminal.StyleError:
		s = ct.styles.err.Render("* " + s)
	}

	ct.TermPrint(s)
	ct.TermPrint("\n")

	if ct.lineEntry {
		ct.redraw()
	}
}

// TermClear implements the terminal.Output interface.
func (ct *ColorTerminal) TermClear() {
	ct.crit.Lock()
	defer ct.crit.Unlock()

	if ct.silenced {
		return
	}

	ct.TermPrint(easyterm.CursorTop)
	ct.TermPrint(easyterm.ClearScreen)
}

// redraw the line being entered. must be called with crit locked
func (ct *ColorTerminal) redraw() {
	ct.TermPrint("\r")
	ct.TermPrint(easyterm.ClearLine)
	ct.TermPrint(ct.styles.prompt.Render(":"))
	ct.TermPrint(string(ct.line))
	ct.TermPrint("\r")
	ct.TermPrint(easyterm.CursorMove(ct.cursor + 1))
}
