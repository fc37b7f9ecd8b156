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

package history

import (
	"iter"
)

// Capacity is the maximum number of entries in the log.
const Capacity = 10

// Entry is a single visit to a cycle.
type Entry struct {
	// the cycle number as recorded in the trace
	Cycle int

	// one line summary of the instruction at the cycle
	Instruction string

	// true only for the most recently recorded entry
	IsCurrent bool
}

// Log is a circular buffer of entries. The zero value is an empty log ready
// for use.
type Log struct {
	entries [Capacity]Entry

	// index of the oldest entry and the number of entries in the buffer. the
	// newest entry is at (start+count-1)%Capacity
	start int
	count int
}

// Record adds a new entry to the log. The previously current entry is no
// longer current after the call.
func (l *Log) Record(cycle int, instruction string) {
	if l.count > 0 {
		l.entries[l.newest()].IsCurrent = false
	}

	e := Entry{
		Cycle:       cycle,
		Instruction: instruction,
		IsCurrent:   true,
	}

	if l.count < Capacity {
		l.entries[(l.start+l.count)%Capacity] = e
		l.count++
		return
	}

	// buffer is full. overwrite the oldest entry
	l.entries[l.start] = e
	l.start = (l.start + 1) % Capacity
}

func (l *Log) newest() int {
	return (l.start + l.count - 1) % Capacity
}

// Entries returns the entries in the log, most recent first.
func (l *Log) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i := range l.count {
			if !yield(l.entries[(l.start+l.count-1-i)%Capacity]) {
				return
			}
		}
	}
}

// Len returns the number of entries in the log.
func (l *Log) Len() int {
	return l.count
}

// Current returns the most recently recorded entry. Returns false if the log
// is empty.
func (l *Log) Current() (Entry, bool) {
	if l.count == 0 {
		return Entry{}, false
	}
	return l.entries[l.newest()], true
}

// Clear empties the log.
func (l *Log) Clear() {
	*l = Log{}
}
