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

// Package colorterm implements the Terminal interface for the cycletrace
// viewer. It supports color output and single key playback controls.
//
// The terminal is put into cbreak mode so that key presses are seen as soon
// as they are made. The following keys are translated into commands:
//
//	space       TOGGLE
//	right, n    NEXT
//	left, p     PREVIOUS
//	home, g     FIRST
//	end, G      LAST
//	r           RESET
//	h, ?        HELP
//	q           QUIT
//
// The colon key starts line entry, for commands that take arguments. Line
// entry supports cursor movement and a command history.
//
// ColorTerminal is not available on windows.
package colorterm
