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
	"sync"
	"sync/atomic"
	"time"
)

type eventTask struct {
	f         func()
	timer     *time.Timer
	cancelled atomic.Bool
}

func (t *eventTask) Cancel() {
	t.cancelled.Store(true)
	if t.timer != nil {
		t.timer.Stop()
	}
}

// EventScheduler is a Scheduler that posts functions to a channel when they
// become due. The owner of the Controller must service the channel returned by
// Events() and run the functions it receives.
//
// Refresh functions are posted on the ticks of a RefreshRate ticker that runs
// for as long as there are refresh functions waiting.
type EventScheduler struct {
	events chan func()

	// refresh functions waiting for the next tick
	crit    sync.Mutex
	refresh []*eventTask
	wake    chan bool

	done chan bool
	end  sync.Once
}

// NewEventScheduler is the preferred method of initialisation for the
// EventScheduler type. The End() function should be called when the
// scheduler is no longer required.
func NewEventScheduler() *EventScheduler {
	sch := &EventScheduler{
		events: make(chan func(), 16),
		wake:   make(chan bool, 1),
		done:   make(chan bool),
	}
	go sch.service()
	return sch
}

// Events returns the channel on which due functions are posted.
func (sch *EventScheduler) Events() <-chan func() {
	return sch.events
}

// End stops the scheduler. Functions that are waiting will not be posted.
func (sch *EventScheduler) End() {
	sch.end.Do(func() {
		close(sch.done)
	})
}

// After implements the Scheduler interface.
func (sch *EventScheduler) After(d time.Duration, f func()) Handle {
	t := &eventTask{f: f}
	t.timer = time.AfterFunc(d, func() {
		sch.post(t)
	})
	return t
}

// Refresh implements the Scheduler interface.
func (sch *EventScheduler) Refresh(f func()) Handle {
	t := &eventTask{f: f}

	sch.crit.Lock()
	sch.refresh = append(sch.refresh, t)
	sch.crit.Unlock()

	select {
	case sch.wake <- true:
	default:
	}

	return t
}

// post the task to the events channel. the function is wrapped so that a
// task cancelled after posting is not run
func (sch *EventScheduler) post(t *eventTask) {
	if t.cancelled.Load() {
		return
	}

	select {
	case sch.events <- func() {
		if !t.cancelled.Swap(true) {
			t.f()
		}
	}:
	case <-sch.done:
	}
}

// the ticker only runs while there are refresh functions waiting
func (sch *EventScheduler) service() {
	for {
		select {
		case <-sch.done:
			return
		case <-sch.wake:
		}

		ticker := time.NewTicker(RefreshInterval)

		for waiting := true; waiting; {
			select {
			case <-sch.done:
				ticker.Stop()
				return
			case <-ticker.C:
			}

			sch.crit.Lock()
			refresh := sch.refresh
			sch.refresh = nil
			sch.crit.Unlock()

			for _, t := range refresh {
				sch.post(t)
			}

			// keep ticking if more refresh functions were added while the
			// previous ones were being posted
			sch.crit.Lock()
			waiting = len(sch.refresh) > 0
			sch.crit.Unlock()
		}

		ticker.Stop()
	}
}
