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

// Package plainterm implements the Terminal interface for the cycletrace
// viewer. It's as simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jetsetilly/cycletrace/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such, it
// offers only rudimentary editing facility and little control over output.
//
// Input and output default to os.Stdin and os.Stdout. Other values can be
// set before the call to Initialise().
type PlainTerminal struct {
	Input  io.Reader
	Output io.Writer

	reader     *bufio.Reader
	realInput  bool
	realOutput bool

	// output happens on a different goroutine to input
	crit     sync.Mutex
	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	if pt.Input == nil {
		pt.Input = os.Stdin
	}
	if pt.Output == nil {
		pt.Output = os.Stdout
	}
	pt.reader = bufio.NewReader(pt.Input)
	pt.realInput = isTerminal(pt.Input)
	pt.realOutput = isTerminal(pt.Output)
	return nil
}

func isTerminal(v any) bool {
	if f, ok := v.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	pt.crit.Lock()
	defer pt.crit.Unlock()

	if pt.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	io.WriteString(pt.Output, s)
	io.WriteString(pt.Output, "\n")
}

// TermClear implements the terminal.Output interface. A horizontal rule is
// printed between frames when the output is a real terminal.
func (pt *PlainTerminal) TermClear() {
	pt.crit.Lock()
	defer pt.crit.Unlock()

	if pt.silenced || !pt.realOutput {
		return
	}

	width := 40
	if f, ok := pt.Output.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	io.WriteString(pt.Output, strings.Repeat("-", width))
	io.WriteString(pt.Output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if pt.realInput {
		pt.crit.Lock()
		io.WriteString(pt.Output, prompt.String())
		pt.crit.Unlock()
	}

	s, err := pt.reader.ReadString('\n')
	if err != nil {
		// return the final line even if it isn't terminated by a newline
		if err == io.EOF && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput
}
