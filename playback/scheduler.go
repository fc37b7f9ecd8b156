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

package playback

import "time"

// Handle is returned by a Scheduler and can be used to cancel the scheduled
// function. Cancel() can be called more than once and after the function has
// run.
type Handle interface {
	Cancel()
}

// Scheduler runs functions at a later time.
//
// Implementations must run functions on the goroutine that owns the
// Controller. Functions must never be run from inside the call to After() or
// Refresh().
type Scheduler interface {
	// After runs f once, after duration d.
	After(d time.Duration, f func()) Handle

	// Refresh runs f once, on the next display refresh.
	Refresh(f func()) Handle
}

// RefreshRate is the number of display refreshes per second assumed by the
// schedulers in this package.
const RefreshRate = 60

// RefreshInterval is the duration of a single display refresh.
const RefreshInterval = time.Second / RefreshRate
