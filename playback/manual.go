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
)

type manualTask struct {
	f         func()
	due       time.Duration
	refresh   bool
	seq       int
	cancelled bool
}

func (t *manualTask) Cancel() {
	t.cancelled = true
}

// ManualScheduler is a Scheduler that only runs functions when told to. Time
// is simulated and only moves forward with calls to Advance(), Tick() and
// RunUntilIdle().
type ManualScheduler struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

// NewManualScheduler is the preferred method of initialisation for the
// ManualScheduler type.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// After implements the Scheduler interface.
func (sch *ManualScheduler) After(d time.Duration, f func()) Handle {
	return sch.add(&manualTask{f: f, due: sch.now + d})
}

// Refresh implements the Scheduler interface.
func (sch *ManualScheduler) Refresh(f func()) Handle {
	return sch.add(&manualTask{f: f, refresh: true})
}

func (sch *ManualScheduler) add(t *manualTask) Handle {
	t.seq = sch.seq
	sch.seq++
	sch.tasks = append(sch.tasks, t)
	return t
}

// Now returns the simulated time.
func (sch *ManualScheduler) Now() time.Duration {
	return sch.now
}

// Pending returns the number of functions waiting to run.
func (sch *ManualScheduler) Pending() int {
	sch.prune()
	return len(sch.tasks)
}

func (sch *ManualScheduler) prune() {
	sch.tasks = slices.DeleteFunc(sch.tasks, func(t *manualTask) bool {
		return t.cancelled
	})
}

func (sch *ManualScheduler) remove(t *manualTask) {
	sch.tasks = slices.DeleteFunc(sch.tasks, func(u *manualTask) bool {
		return u == t
	})
}

// run a task. returns false if the task had been cancelled
func (sch *ManualScheduler) run(t *manualTask) bool {
	sch.remove(t)
	if t.cancelled {
		return false
	}
	t.cancelled = true
	t.f()
	return true
}

// Tick simulates a single display refresh. Refresh functions that were
// scheduled before the call to Tick() are run and simulated time moves
// forward by RefreshInterval, running any timed functions that become due.
// Returns the number of functions run.
func (sch *ManualScheduler) Tick() int {
	var n int

	refresh := slices.DeleteFunc(slices.Clone(sch.tasks), func(t *manualTask) bool {
		return !t.refresh
	})
	for _, t := range refresh {
		if sch.run(t) {
			n++
		}
	}

	return n + sch.Advance(RefreshInterval)
}

// Advance moves simulated time forward by d, running timed functions in the
// order they become due. Functions scheduled with the same due time run in
// the order they were scheduled. Returns the number of functions run.
func (sch *ManualScheduler) Advance(d time.Duration) int {
	target := sch.now + d

	var n int
	for {
		t := sch.earliest()
		if t == nil || t.due > target {
			break
		}
		sch.now = t.due
		if sch.run(t) {
			n++
		}
	}

	sch.now = target
	return n
}

func (sch *ManualScheduler) earliest() *manualTask {
	sch.prune()

	var e *manualTask
	for _, t := range sch.tasks {
		if t.refresh {
			continue
		}
		if e == nil || t.due < e.due || (t.due == e.due && t.seq < e.seq) {
			e = t
		}
	}
	return e
}

// RunUntilIdle runs scheduled functions until there are none left or until
// limit functions have been run. Refresh functions are run by simulating a
// display refresh. Timed functions are run by moving simulated time to the
// point the function becomes due. A limit of zero or less means no limit.
// Returns the number of functions run.
func (sch *ManualScheduler) RunUntilIdle(limit int) int {
	var n int
	for limit <= 0 || n < limit {
		sch.prune()
		if len(sch.tasks) == 0 {
			break
		}

		// refresh functions take precedence
		if idx := slices.IndexFunc(sch.tasks, func(t *manualTask) bool { return t.refresh }); idx >= 0 {
			if sch.run(sch.tasks[idx]) {
				n++
			}
			continue
		}

		t := sch.earliest()
		sch.now = max(sch.now, t.due)
		if sch.run(t) {
			n++
		}
	}
	return n
}
