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

package easyterm

import "fmt"

// control sequences used by the colorterm package. colours are handled by
// lipgloss
const (
	ClearLine   = "\033[2K"
	ClearScreen = "\033[2J"
	CursorTop   = "\033[H"
	CursorStore = "\0337"
	CursorRest  = "\0338"
)

// CursorMove returns the control sequence to move the cursor horizontally by
// n characters. Negative values move the cursor backwards.
func CursorMove(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("\033[%dC", n)
	case n < 0:
		return fmt.Sprintf("\033[%dD", -n)
	}
	return ""
}
