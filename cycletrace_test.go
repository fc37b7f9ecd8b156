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

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cycletrace/test"
)

const testTrace = `[
	{"cycle": 0, "pc": 0, "instr": {"opcode": 2, "mode": 1}},
	{"cycle": 1, "pc": 2, "instr": {"opcode": 5, "mode": 0}},
	{"cycle": 2, "pc": 4, "instr": {"opcode": 1, "mode": 0}}
]`

func TestListMode(t *testing.T) {
	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "factorial_run_20240101_101010.json"), []byte(testTrace), 0o600))

	w := &test.Writer{}
	test.ExpectEquality(t, launch(context.Background(), []string{"LIST", dir}, w), exitOK)
	test.ExpectEquality(t, w.Contains("Factorial Run"), true)
	test.ExpectEquality(t, w.Contains("(3 cycles)"), true)
}

func TestScriptMode(t *testing.T) {
	dir := t.TempDir()
	trc := filepath.Join(dir, "trace.json")
	scr := filepath.Join(dir, "check.lua")
	test.DemandSuccess(t, os.WriteFile(trc, []byte(testTrace), 0o600))
	test.DemandSuccess(t, os.WriteFile(scr, []byte("last()\nprint(length(), mnemonic())\n"), 0o600))

	w := &test.Writer{}
	test.ExpectEquality(t, launch(context.Background(), []string{"SCRIPT", scr, trc}, w), exitOK)
	test.ExpectEquality(t, w.String(), "3\tHALT\n")
}

func TestScriptModeErrors(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch(context.Background(), []string{"SCRIPT"}, w), exitModeError)
	test.ExpectEquality(t, w.Contains("lua script required"), true)

	w.Clear()
	missing := filepath.Join(t.TempDir(), "missing.lua")
	test.ExpectEquality(t, launch(context.Background(), []string{"SCRIPT", missing}, w), exitModeError)
}

func TestHelp(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-help"}, w), exitOK)
	test.ExpectEquality(t, w.Contains("VIEW, SCRIPT, LIST, VERSION"), true)

	w.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"LIST", "-help"}, w), exitOK)
	test.ExpectEquality(t, w.Contains("directory to list"), true)
}

func TestVersionMode(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch(context.Background(), []string{"version"}, w), exitOK)
	test.ExpectEquality(t, w.Contains("Cycletrace"), true)
}
