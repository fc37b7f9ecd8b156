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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit. The most likely treatment is to print the text in a
// different color.
type Style int

// List of terminal styles.
const (
	// a rendered cycle of the trace
	StyleFrame Style = iota

	// the terminal's echo of user input
	StyleEcho

	// information as a result of a command
	StyleFeedback

	// help text
	StyleHelp

	// entries from the central log
	StyleLog

	// error messages. these are printed even when the terminal is silenced
	StyleError
)
