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

package script_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/cycletrace/curated"
	"github.com/jetsetilly/cycletrace/script"
	"github.com/jetsetilly/cycletrace/test"
	"github.com/jetsetilly/cycletrace/trace"
)

func makeTrace(t *testing.T, first int, n int) []trace.Snapshot {
	t.Helper()

	var s strings.Builder
	s.WriteString("[")
	for i := range n {
		if i > 0 {
			s.WriteString(",")
		}
		fmt.Fprintf(&s, `{"cycle": %d, "pc": %d, "flags": "0x0A", "instr": {"opcode": %d, "mode": 0}}`, first+i, i*2, i+2)
	}
	s.WriteString("]")

	snapshots, err := trace.Decode(strings.NewReader(s.String()))
	test.DemandSuccess(t, err)
	return snapshots
}

func run(t *testing.T, snapshots []trace.Snapshot, src string) (*script.Script, string, error) {
	t.Helper()

	w := &test.Writer{}
	scr := script.NewScript(w)
	t.Cleanup(scr.Close)

	if snapshots != nil {
		scr.Load(snapshots)
	}

	err := scr.Run(context.Background(), "test", strings.NewReader(src))
	return scr, w.String(), err
}

func TestNavigation(t *testing.T) {
	_, out, err := run(t, makeTrace(t, 10, 5), `
next()
next()
print(position(), cycle(), mnemonic())
last()
print(position(), length())
prev()
seek(1)
print(position())
_G["goto"](99)
print(position())
first()
print(position())
`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "2\t12\tSTORE\n4\t5\n1\n4\n0\n")
}

func TestFlags(t *testing.T) {
	_, out, err := run(t, makeTrace(t, 0, 1), `
local f = flags()
print(f.Z, f.N, f.C, f.V)
`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "1\t0\t1\t0\n")
}

func TestPlayback(t *testing.T) {
	scr, out, err := run(t, makeTrace(t, 10, 3), `
speed(0)
play()
print(playing())
print(run())
print(playing(), position())
local h = history()
print(#h, h[1].cycle, h[2].cycle, h[1].current, h[2].current)
`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "true\n2\nfalse\t2\n2\t12\t11\ttrue\tfalse\n")
	test.ExpectEquality(t, scr.Controller().Playing(), false)
}

func TestTimedPlayback(t *testing.T) {
	_, out, err := run(t, makeTrace(t, 0, 10), `
print(speed(250))
play()
advance(600)
print(position())
pause()
advance(1000)
print(position(), playing())
`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "250\n2\n2\tfalse\n")
}

func TestNextWithTable(t *testing.T) {
	_, out, err := run(t, makeTrace(t, 0, 3), `
local k, v = next({"a"})
print(k, v, position())
next()
print(position())
`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "1\ta\t0\n1\n")
}

func TestEmptyTrace(t *testing.T) {
	_, out, err := run(t, nil, `
print(length(), position(), cycle(), mnemonic())
play()
print(playing())
`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "0\t0\tnil\tnil\nfalse\n")
}

func TestScriptErrors(t *testing.T) {
	_, _, err := run(t, nil, `this is not lua`)
	test.ExpectEquality(t, curated.Is(err, script.ScriptError), true)

	_, _, err = run(t, nil, `speed(-1)`)
	test.ExpectEquality(t, curated.Is(err, script.ScriptError), true)

	_, _, err = run(t, nil, `load("/no/such/trace.json")`)
	test.ExpectEquality(t, curated.Is(err, script.ScriptError), true)
}

func TestTimeout(t *testing.T) {
	scr := script.NewScript(&test.Writer{})
	defer scr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := scr.Run(ctx, "loop", strings.NewReader(`while true do end`))
	test.ExpectFailure(t, err)
}

func TestShow(t *testing.T) {
	_, out, err := run(t, makeTrace(t, 7, 2), `show()`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(out, "7"), true)
}
