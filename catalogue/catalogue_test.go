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

package catalogue_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cycletrace/catalogue"
	"github.com/jetsetilly/cycletrace/curated"
	"github.com/jetsetilly/cycletrace/test"
)

func TestDisplayName(t *testing.T) {
	test.ExpectEquality(t, catalogue.DisplayName("factorial_run_20240101_101010.json"), "Factorial Run")
	test.ExpectEquality(t, catalogue.DisplayName("fibonacci.json"), "Fibonacci")
	test.ExpectEquality(t, catalogue.DisplayName("bubble_sort_v2.json"), "Bubble Sort V2")
	test.ExpectEquality(t, catalogue.DisplayName("count_20240101.json"), "Count 20240101")
	test.ExpectEquality(t, catalogue.DisplayName("already Capitalised"), "Already Capitalised")
	test.ExpectEquality(t, catalogue.DisplayName("double__underscore.json"), "Double  Underscore")
	test.ExpectEquality(t, catalogue.DisplayName(""), "")
}

func writeFile(t *testing.T, dir string, name string, content string) {
	t.Helper()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestScanGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_prog_20240101_101010.json", `[{"cycle":0},{"cycle":1},{"cycle":2}]`)
	writeFile(t, dir, "a_prog.json", `[]`)
	writeFile(t, dir, "broken.json", `{"cycle":0}`)
	writeFile(t, dir, "notes.txt", `not a trace`)

	cat, err := catalogue.Scan(context.Background(), dir)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cat.FromManifest)
	test.DemandEquality(t, len(cat.Entries), 3)

	test.ExpectEquality(t, cat.Entries[0].File, "a_prog.json")
	test.ExpectEquality(t, cat.Entries[0].Cycles, 0)
	test.ExpectSuccess(t, cat.Entries[0].Err)

	test.ExpectEquality(t, cat.Entries[1].File, "b_prog_20240101_101010.json")
	test.ExpectEquality(t, cat.Entries[1].Name, "B Prog")
	test.ExpectEquality(t, cat.Entries[1].Cycles, 3)
	test.ExpectSuccess(t, cat.Entries[1].Err)

	test.ExpectEquality(t, cat.Entries[2].File, "broken.json")
	test.ExpectFailure(t, cat.Entries[2].Err)

	w := &test.Writer{}
	test.ExpectSuccess(t, cat.Write(w))
	test.ExpectEquality(t, len(w.Lines()), 3)
	test.ExpectSuccess(t, w.Contains("B Prog  b_prog_20240101_101010.json (3 cycles)"))
}

func TestScanManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, catalogue.ManifestFile, `["z.json", "a.json", "missing.json"]`)
	writeFile(t, dir, "z.json", `[{}]`)
	writeFile(t, dir, "a.json", `[{}, {}]`)
	writeFile(t, dir, "unlisted.json", `[]`)

	cat, err := catalogue.Scan(context.Background(), dir)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cat.FromManifest)
	test.DemandEquality(t, len(cat.Entries), 3)

	// manifest order is preserved
	test.ExpectEquality(t, cat.Entries[0].File, "z.json")
	test.ExpectEquality(t, cat.Entries[0].Cycles, 1)
	test.ExpectEquality(t, cat.Entries[1].File, "a.json")
	test.ExpectEquality(t, cat.Entries[1].Cycles, 2)
	test.ExpectFailure(t, cat.Entries[2].Err)
}

func TestScanErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, catalogue.ManifestFile, `{"files": []}`)

	_, err := catalogue.Scan(context.Background(), dir)
	test.ExpectSuccess(t, curated.Is(err, catalogue.BadManifest))

	_, err = catalogue.Scan(context.Background(), filepath.Join(dir, "nonexistent"))
	test.ExpectSuccess(t, curated.Is(err, catalogue.NoDirectory))

	empty := t.TempDir()
	cat, err := catalogue.Scan(context.Background(), empty)
	test.DemandSuccess(t, err)
	w := &test.Writer{}
	test.ExpectSuccess(t, cat.Write(w))
	test.ExpectSuccess(t, w.Contains("no traces found"))
}
