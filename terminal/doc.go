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

// Package terminal defines the operations required by the viewer's text
// interface. The plainterm and colorterm packages are implementations of the
// Terminal interface.
//
// The viewer calls TermRead() from a dedicated input goroutine and calls
// TermPrintLine() from its event loop. Implementations must therefore allow
// output while a TermRead() is in progress.
package terminal
