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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/cycletrace/terminal"
	"github.com/jetsetilly/cycletrace/terminal/plainterm"
	"github.com/jetsetilly/cycletrace/test"
)

func TestPlainTerminal(t *testing.T) {
	out := &test.Writer{}
	pt := &plainterm.PlainTerminal{
		Input:  strings.NewReader("next\r\nGOTO 5\nlast"),
		Output: out,
	}
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	// input from a reader is not interactive
	test.ExpectFailure(t, pt.IsInteractive())

	for _, expected := range []string{"next", "GOTO 5", "last"} {
		s, err := pt.TermRead(terminal.Prompt{})
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, s, expected)
	}

	_, err := pt.TermRead(terminal.Prompt{})
	test.ExpectEquality(t, err, io.EOF)

	// prompts are not printed for non-interactive input
	test.ExpectEquality(t, out.String(), "")

	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleError, "error")
	pt.TermClear()
	test.ExpectEquality(t, out.String(), "feedback\n* error\n")

	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFrame, "frame")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectEquality(t, out.String(), "* error\n")
}
