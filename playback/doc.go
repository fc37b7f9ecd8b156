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

// Package playback owns the current position in a loaded trace and drives
// navigation through it, either by explicit calls or by timed auto-play.
//
// The Controller is not safe for concurrent use. It is intended to be owned
// by a single goroutine, the host's event loop, and all scheduled steps are
// run by that goroutine. How and when scheduled steps run is decided by the
// Scheduler given to NewController(). The EventScheduler posts steps to a
// channel that the event loop services. The ManualScheduler runs steps only
// when told to and is useful for scripting and testing.
//
// At most one scheduled step is outstanding at any time. Any operation that
// changes the play state or the speed cancels the outstanding step before
// scheduling a new one. In addition, each scheduled step carries a
// generation number and a step that fires after its generation has been
// superseded does nothing.
//
// Observers are notified of position changes with Subscribe() and of play
// state changes with SubscribeState(). Observers can call back into the
// Controller from inside a notification.
package playback
