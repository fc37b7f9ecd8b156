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

package playback_test

import (
	"slices"
	"testing"
	"time"

	"github.com/jetsetilly/cycletrace/playback"
	"github.com/jetsetilly/cycletrace/test"
)

func TestManualSchedulerOrder(t *testing.T) {
	sch := playback.NewManualScheduler()

	var order []string
	sch.After(300*time.Millisecond, func() { order = append(order, "c") })
	sch.After(100*time.Millisecond, func() { order = append(order, "a") })
	sch.After(100*time.Millisecond, func() { order = append(order, "b") })
	test.ExpectEquality(t, sch.Pending(), 3)

	test.ExpectEquality(t, sch.Advance(99*time.Millisecond), 0)
	test.ExpectEquality(t, sch.Advance(time.Millisecond), 2)
	test.ExpectSuccess(t, slices.Equal(order, []string{"a", "b"}))
	test.ExpectEquality(t, sch.Now(), 100*time.Millisecond)

	test.ExpectEquality(t, sch.Advance(time.Second), 1)
	test.ExpectSuccess(t, slices.Equal(order, []string{"a", "b", "c"}))
	test.ExpectEquality(t, sch.Pending(), 0)
}

func TestManualSchedulerCancel(t *testing.T) {
	sch := playback.NewManualScheduler()

	var ran bool
	h := sch.After(time.Millisecond, func() { ran = true })
	h.Cancel()
	test.ExpectEquality(t, sch.Pending(), 0)
	test.ExpectEquality(t, sch.Advance(time.Second), 0)
	test.ExpectFailure(t, ran)

	// cancelling after the function has run is allowed
	h = sch.Refresh(func() { ran = true })
	test.ExpectEquality(t, sch.Tick(), 1)
	test.ExpectSuccess(t, ran)
	h.Cancel()
}

func TestManualSchedulerRefresh(t *testing.T) {
	sch := playback.NewManualScheduler()

	// a refresh function scheduled during a tick runs on the following tick
	var count int
	var f func()
	f = func() {
		count++
		sch.Refresh(f)
	}
	sch.Refresh(f)

	test.ExpectEquality(t, sch.Tick(), 1)
	test.ExpectEquality(t, count, 1)
	test.ExpectEquality(t, sch.Tick(), 1)
	test.ExpectEquality(t, count, 2)

	// limited run
	test.ExpectEquality(t, sch.RunUntilIdle(5), 5)
	test.ExpectEquality(t, count, 7)
	test.ExpectEquality(t, sch.Pending(), 1)
}

func TestManualSchedulerIdle(t *testing.T) {
	sch := playback.NewManualScheduler()

	var count int
	var f func()
	f = func() {
		count++
		if count < 4 {
			sch.After(time.Second, f)
		}
	}
	sch.After(time.Second, f)

	test.ExpectEquality(t, sch.RunUntilIdle(0), 4)
	test.ExpectEquality(t, sch.Now(), 4*time.Second)
	test.ExpectEquality(t, sch.Pending(), 0)
}
