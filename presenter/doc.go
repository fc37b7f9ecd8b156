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

// Package presenter renders a single cycle of a trace as text. It does not
// observe the playback controller itself. The host calls Render() with the
// current Frame whenever it is notified of a position change.
//
// Two layouts are supported. The dashboard layout shows everything: the
// cycle header with progress, the registers, the decoded instruction, the
// memory writes and the execution log. The thin layout is a compact view
// showing raw values where the dashboard shows decoded ones.
//
// Colour output uses lipgloss styles. When colour is disabled the output is
// plain text, suitable for piping and for comparison in tests.
package presenter
