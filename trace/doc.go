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

// Package trace defines the data model for recorded execution traces and the
// Store that holds the currently loaded trace.
//
// A trace is a JSON array of cycle snapshots. Each snapshot records the state
// of the simulated machine at the end of a single cycle. Simulators producing
// traces evolve over time so decoding is lenient: unknown fields are ignored,
// missing optional fields are recorded as absent and a field of an unexpected
// type degrades to a placeholder value. The only fatal decoding error is a
// document that is not a JSON array.
//
// Numeric fields in a trace can be either JSON numbers or strings. Strings are
// usually pre-formatted hex values (eg. "0x00ff") but can be decimal. The
// Value type preserves the authored form so that the decoder package can
// format it faithfully.
package trace
