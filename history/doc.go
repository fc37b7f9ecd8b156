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

// Package history records the most recently visited cycles of a trace. The
// log is bounded and the oldest entry is evicted when a new entry is recorded
// at capacity.
//
// Entries are yielded most recent first, which is the order they are
// displayed in. The iterator returned by Entries() is recomputed from the
// buffer each time it is ranged over.
package history
