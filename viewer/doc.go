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

// Package viewer is the interactive host for the playback controller. It owns
// the Controller, the Presenter and the preferences, and connects them to a
// terminal.
//
// All work happens on the goroutine that calls Run(). Commands read from the
// terminal, functions posted by the scheduler and interrupt signals are
// serviced in turn by a single select loop. The terminal is read on a
// separate goroutine but that goroutine never touches the Controller.
//
// Commands can be abbreviated to any unique prefix. For example, "G 10" is
// the same as "GOTO 10". Manual navigation always pauses playback first.
package viewer
