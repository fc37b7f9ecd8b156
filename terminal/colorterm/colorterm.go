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
	"bufio"
	"os"
	"sync"

	"github.com/jetsetilly/cycletrace/terminal/colorterm/easyterm"
)

// ColorTerminal implements the terminal.Terminal interface with a basic ANSI
// terminal.
type ColorTerminal struct {
	easyterm.Terminal

	reader *bufio.Reader
	styles styles

	// output happens on a different goroutine to input. crit protects the
	// output and the line entry state
	crit     sync.Mutex
	silenced bool

	// line entry state. the line is redrawn after every output while
	// lineEntry is true
	lineEntry bool
	line      []rune
	cursor    int
	history   [][]rune
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.Terminal.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}

	ct.reader = bufio.NewReader(os.Stdin)
	ct.styles = newStyles()
	ct.CBreakMode()

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.crit.Lock()
	defer ct.crit.Unlock()

	ct.TermPrint("\r\n")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.crit.Lock()
	defer ct.crit.Unlock()
	ct.silenced = silenced
}
