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

package trace_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/cycletrace/curated"
	"github.com/jetsetilly/cycletrace/test"
	"github.com/jetsetilly/cycletrace/trace"
)

// a trace as written by the simulator's trace recorder
const recorded = `[
{
  "cycle": 10,
  "pc": "0x0010",
  "registers": {
    "r0": "0x0001",
    "r1": "0x0002",
    "r2": "0x0000",
    "r3": "0xffff"
  },
  "flags": "0x0a",
  "sp": "0xff00",
  "ir": "0x0200",
  "mar": "0x0010",
  "mdr": "0x0200",
  "instr": {
    "opcode": 2,
    "mode": 0,
    "rd": 1,
    "rs": 2,
    "has_extra": false,
    "extra": 0
  }
},
{
  "cycle": 11,
  "pc": "0x0012",
  "flags": 0,
  "mem_writes": [ {"addr": 256, "old": 0, "new": 42} ]
},
{
  "cycle": 12,
  "pc": 20,
  "registers": { "zz": 1, "aa": 2, "mm": 3 },
  "instr": "garbage",
  "mem_writes": "garbage"
}
]`

func TestDecode(t *testing.T) {
	snapshots, err := trace.Decode(strings.NewReader(recorded))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(snapshots), 3)

	s := snapshots[0]
	test.ExpectEquality(t, s.CycleNumber(), 10)
	test.ExpectEquality(t, s.PC.String(), "0x0010")
	test.DemandEquality(t, len(s.Registers), 4)
	test.ExpectEquality(t, s.Registers[0].Name, "r0")
	test.ExpectEquality(t, s.Registers[3].Name, "r3")
	test.ExpectEquality(t, s.Registers[3].Value.String(), "0xffff")
	test.ExpectSuccess(t, s.SP.Present())
	test.DemandInequality(t, s.Instr, nil)

	op, ok := s.Instr.Opcode.Int()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, op, 2)
	test.ExpectEquality(t, s.Instr.HasExtra.String(), "false")
	test.ExpectEquality(t, len(s.MemWrites), 0)

	// optional fields missing from the second snapshot
	s = snapshots[1]
	test.ExpectFailure(t, s.SP.Present())
	test.ExpectFailure(t, s.MDR.Present())
	test.ExpectEquality(t, s.Instr, nil)
	test.ExpectEquality(t, len(s.Registers), 0)
	test.DemandEquality(t, len(s.MemWrites), 1)
	test.ExpectEquality(t, s.MemWrites[0].New.String(), "42")

	// register order is document order and not sorted
	s = snapshots[2]
	test.DemandEquality(t, len(s.Registers), 3)
	test.ExpectEquality(t, s.Registers[0].Name, "zz")
	test.ExpectEquality(t, s.Registers[1].Name, "aa")
	test.ExpectEquality(t, s.Registers[2].Name, "mm")

	// fields of the wrong type degrade rather than fail
	test.DemandInequality(t, s.Instr, nil)
	test.ExpectSuccess(t, s.Instr.Opcode.IsAbsent())
	test.ExpectEquality(t, len(s.MemWrites), 0)
}

func TestDecodeNotAnArray(t *testing.T) {
	for _, doc := range []string{`{"cycle": 1}`, `null`, `not json`, ``} {
		_, err := trace.Decode(strings.NewReader(doc))
		test.ExpectSuccess(t, curated.Has(err, trace.NotAnArray), doc)
	}

	// empty arrays are fine
	snapshots, err := trace.Decode(strings.NewReader(`[]`))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(snapshots), 0)

	// elements that aren't objects are empty snapshots
	snapshots, err = trace.Decode(strings.NewReader(`[1, "two", null]`))
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(snapshots), 3)
	test.ExpectEquality(t, snapshots[1].CycleNumber(), -1)
}

func TestValue(t *testing.T) {
	var v trace.Value
	test.ExpectFailure(t, v.Present())
	test.ExpectSuccess(t, v.IsAbsent())

	v = trace.Null()
	test.ExpectSuccess(t, v.Present())
	test.ExpectSuccess(t, v.IsAbsent())

	n, ok := trace.String("0x1F").Int()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 31)

	n, ok = trace.String(" 42 ").Int()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 42)

	_, ok = trace.String("forty two").Int()
	test.ExpectFailure(t, ok)

	_, ok = trace.Number(2.5).Int()
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, trace.Number(255).String(), "255")
	test.ExpectSuccess(t, trace.HasHexPrefix("0XAB"))
	test.ExpectFailure(t, trace.HasHexPrefix("AB"))
}

func TestStore(t *testing.T) {
	st := trace.NewStore()
	test.ExpectEquality(t, st.Len(), 0)
	test.ExpectEquality(t, st.Get(0), nil)

	snapshots, err := trace.Decode(strings.NewReader(recorded))
	test.DemandSuccess(t, err)

	st.Load(snapshots)
	test.ExpectEquality(t, st.Len(), 3)
	test.ExpectEquality(t, st.Get(2).CycleNumber(), 12)
	test.ExpectEquality(t, st.Get(-1), nil)
	test.ExpectEquality(t, st.Get(3), nil)

	// changing the caller's slice does not change the store
	snapshots[0].Cycle = trace.Number(99)
	test.ExpectEquality(t, st.Get(0).CycleNumber(), 10)

	// loading replaces the trace wholesale
	st.Load(nil)
	test.ExpectEquality(t, st.Len(), 0)
}

func TestCount(t *testing.T) {
	n, err := trace.Count(strings.NewReader(recorded))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)

	_, err = trace.Count(strings.NewReader(`{}`))
	test.ExpectSuccess(t, curated.Has(err, trace.NotAnArray))
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "factorial.json")
	err := os.WriteFile(fn, []byte(recorded), 0o600)
	test.DemandSuccess(t, err)

	snapshots, err := trace.LoadFile(fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(snapshots), 3)

	snapshots, err = trace.Open(context.Background(), "file://"+fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(snapshots), 3)

	_, err = trace.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	test.ExpectSuccess(t, curated.Is(err, trace.Unreadable))
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/trace.json":
			w.Write([]byte(recorded))
		case "/broken.json":
			w.Write([]byte(`{"broken": true}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	snapshots, err := trace.Open(context.Background(), srv.URL+"/trace.json")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(snapshots), 3)

	_, err = trace.Fetch(context.Background(), srv.URL+"/missing.json")
	test.ExpectSuccess(t, curated.Is(err, trace.BadResponse))

	_, err = trace.Fetch(context.Background(), srv.URL+"/broken.json")
	test.ExpectSuccess(t, curated.Has(err, trace.NotAnArray))
}
