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

//go:build windows

package colorterm

import (
	"github.com/jetsetilly/cycletrace/curated"
	"github.com/jetsetilly/cycletrace/terminal"
)

// ColorTerminal is not supported on windows. Initialise will always fail.
type ColorTerminal struct{}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	return curated.Errorf("colorterm: not supported on windows")
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(bool) {}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return false
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(terminal.Prompt) (string, error) {
	return "", curated.Errorf("colorterm: not supported on windows")
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(terminal.Style, string) {}

// TermClear implements the terminal.Output interface.
func (ct *ColorTerminal) TermClear() {}
