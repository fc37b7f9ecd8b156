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

package trace

import "slices"

// Store holds the currently loaded trace. The trace is never modified once
// loaded. It is replaced wholesale by the next call to Load().
//
// Store holds no position information. That is the responsibility of the
// playback package.
type Store struct {
	snapshots []Snapshot
}

// NewStore is the preferred method of initialisation for the Store type.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the held trace. The slice is copied so changes made by the
// caller after the call to Load() are not seen by the Store.
func (st *Store) Load(snapshots []Snapshot) {
	st.snapshots = slices.Clone(snapshots)
}

// Get returns the snapshot at index. Returns nil if the index is out of
// range. The returned snapshot should be treated as read-only.
func (st *Store) Get(index int) *Snapshot {
	if index < 0 || index >= len(st.snapshots) {
		return nil
	}
	return &st.snapshots[index]
}

// Len returns the number of snapshots in the trace.
func (st *Store) Len() int {
	return len(st.snapshots)
}
