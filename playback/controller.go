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

import (
	"slices"
	"time"

	"github.com/jetsetilly/cycletrace/decoder"
	"github.com/jetsetilly/cycletrace/history"
	"github.com/jetsetilly/cycletrace/logger"
	"github.com/jetsetilly/cycletrace/trace"
)

// PlayState indicates whether the Controller is auto-playing.
type PlayState int

// List of valid PlayState values.
const (
	Stopped PlayState = iota
	Running
)

func (s PlayState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	}
	return "unknown play state"
}

// Fastest is the speed value that steps once per display refresh rather than
// on a fixed timer.
const Fastest time.Duration = 0

// DefaultSpeed is the speed of a new Controller.
const DefaultSpeed = time.Second

// PositionObserver is notified of every position change. The snapshot is nil
// if the trace is empty.
type PositionObserver func(index int, snapshot *trace.Snapshot)

// StateObserver is notified of every play state change.
type StateObserver func(state PlayState)

type subscription[T any] struct {
	id int
	f  T
}

// Controller owns the current position in the trace and the auto-play timer.
type Controller struct {
	sched Scheduler
	store *trace.Store
	hist  history.Log

	position int
	state    PlayState
	speed    time.Duration

	// the outstanding scheduled step. generation is incremented every time a
	// step is cancelled or scheduled and a step that finds its generation is
	// no longer current does nothing
	pending    Handle
	generation int

	nextID        int
	positionSubs  []subscription[PositionObserver]
	playStateSubs []subscription[StateObserver]
}

// NewController is the preferred method of initialisation for the Controller
// type. The Controller starts stopped, at position zero, with an empty trace.
func NewController(sched Scheduler) *Controller {
	return &Controller{
		sched: sched,
		store: trace.NewStore(),
		speed: DefaultSpeed,
	}
}

// Load replaces the trace and resets the Controller.
func (c *Controller) Load(snapshots []trace.Snapshot) {
	c.store.Load(snapshots)
	logger.Logf(logger.Allow, "playback", "loaded trace of %d cycles", c.store.Len())
	c.Reset()
}

// Subscribe adds a position observer. The returned function removes the
// observer.
func (c *Controller) Subscribe(f PositionObserver) (unsubscribe func()) {
	id := c.nextID
	c.nextID++
	c.positionSubs = append(c.positionSubs, subscription[PositionObserver]{id: id, f: f})
	return func() {
		c.positionSubs = slices.DeleteFunc(c.positionSubs, func(s subscription[PositionObserver]) bool {
			return s.id == id
		})
	}
}

// SubscribeState adds a play state observer. The returned function removes
// the observer.
func (c *Controller) SubscribeState(f StateObserver) (unsubscribe func()) {
	id := c.nextID
	c.nextID++
	c.playStateSubs = append(c.playStateSubs, subscription[StateObserver]{id: id, f: f})
	return func() {
		c.playStateSubs = slices.DeleteFunc(c.playStateSubs, func(s subscription[StateObserver]) bool {
			return s.id == id
		})
	}
}

// observers are copied before notification so that observers can subscribe
// and unsubscribe from inside the notification
func (c *Controller) notify() {
	snapshot := c.store.Get(c.position)
	for _, s := range slices.Clone(c.positionSubs) {
		s.f(c.position, snapshot)
	}
}

func (c *Controller) setState(state PlayState) {
	if c.state == state {
		return
	}
	c.state = state
	for _, s := range slices.Clone(c.playStateSubs) {
		s.f(state)
	}
}

// Len returns the number of cycles in the loaded trace.
func (c *Controller) Len() int {
	return c.store.Len()
}

// Position returns the current position. The position is zero if the trace
// is empty.
func (c *Controller) Position() int {
	return c.position
}

// Current returns the snapshot at the current position. Returns nil if the
// trace is empty.
func (c *Controller) Current() *trace.Snapshot {
	return c.store.Get(c.position)
}

// Get returns the snapshot at index. Returns nil if the index is out of
// range.
func (c *Controller) Get(index int) *trace.Snapshot {
	return c.store.Get(index)
}

// State returns the current play state.
func (c *Controller) State() PlayState {
	return c.state
}

// Playing returns true if the play state is Running.
func (c *Controller) Playing() bool {
	return c.state == Running
}

// Speed returns the duration between auto-play steps.
func (c *Controller) Speed() time.Duration {
	return c.speed
}

// History returns the log of recently visited cycles.
func (c *Controller) History() *history.Log {
	return &c.hist
}

// Goto moves to index. The index is clamped to the bounds of the trace.
// Observers are always notified, even if the index is the current position.
//
// If the trace is empty observers are notified with a nil snapshot and no
// history is recorded.
func (c *Controller) Goto(index int) {
	if c.store.Len() == 0 {
		c.position = 0
		c.notify()
		return
	}

	c.position = max(0, min(index, c.store.Len()-1))

	s := c.store.Get(c.position)
	c.hist.Record(s.CycleNumber(), decoder.Summary(s))

	c.notify()
}

// First moves to the first cycle of the trace.
func (c *Controller) First() {
	c.Goto(0)
}

// Last moves to the last cycle of the trace.
func (c *Controller) Last() {
	c.Goto(c.store.Len() - 1)
}

// Next moves forward one cycle. Does nothing if the current position is the
// last cycle.
func (c *Controller) Next() {
	if c.position >= c.store.Len()-1 {
		return
	}
	c.Goto(c.position + 1)
}

// Previous moves back one cycle. Does nothing if the current position is the
// first cycle.
func (c *Controller) Previous() {
	if c.position <= 0 || c.store.Len() == 0 {
		return
	}
	c.Goto(c.position - 1)
}

// Play starts auto-play. Does nothing if the Controller is already running.
//
// The Controller stays stopped if there is nowhere to play to. ie. the trace
// is empty or the current position is the last cycle.
func (c *Controller) Play() {
	if c.state == Running {
		return
	}

	if c.position >= c.store.Len()-1 {
		logger.Log(logger.Allow, "playback", "nothing to play")
		return
	}

	c.setState(Running)

	// an observer may have paused playback already
	if c.state == Running {
		c.schedule()
	}
}

// Pause stops auto-play. Does nothing if the Controller is already stopped.
func (c *Controller) Pause() {
	if c.state != Running {
		return
	}
	c.cancel()
	c.setState(Stopped)
}

// Toggle pauses auto-play if it is running and plays it if it is not.
func (c *Controller) Toggle() {
	if c.state == Running {
		c.Pause()
	} else {
		c.Play()
	}
}

// SetSpeed changes the duration between auto-play steps. A duration of zero
// or less is the same as Fastest. If the Controller is running the
// outstanding step is cancelled and a new one is scheduled with the new
// speed. The position is not changed.
func (c *Controller) SetSpeed(d time.Duration) {
	c.speed = max(d, Fastest)

	if c.speed == Fastest {
		logger.Log(logger.Allow, "playback", "speed set to fastest")
	} else {
		logger.Logf(logger.Allow, "playback", "speed set to %v", c.speed)
	}

	if c.state == Running {
		c.cancel()
		c.schedule()
	}
}

// Reset stops auto-play, clears the history and moves to the first cycle.
// Observers are notified exactly once. No history is recorded for the move.
func (c *Controller) Reset() {
	c.cancel()
	c.hist.Clear()
	c.position = 0
	c.setState(Stopped)
	c.notify()
}

func (c *Controller) cancel() {
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
	c.generation++
}

func (c *Controller) schedule() {
	c.generation++
	gen := c.generation

	step := func() {
		if gen != c.generation || c.state != Running {
			return
		}
		c.pending = nil
		c.step(gen)
	}

	if c.speed == Fastest {
		c.pending = c.sched.Refresh(step)
	} else {
		c.pending = c.sched.After(c.speed, step)
	}
}

// step is a single auto-play step
func (c *Controller) step(gen int) {
	c.Next()

	// an observer may have paused, changed the speed or loaded a new trace
	// during the notification
	if gen != c.generation || c.state != Running {
		return
	}

	if c.position >= c.store.Len()-1 {
		logger.Logf(logger.Allow, "playback", "stopped at end of trace (position %d)", c.position)
		c.generation++
		c.setState(Stopped)
		return
	}

	c.schedule()
}
