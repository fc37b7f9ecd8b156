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

package catalogue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jetsetilly/cycletrace/curated"
	"github.com/jetsetilly/cycletrace/trace"
	"golang.org/x/sync/errgroup"
)

// ManifestFile is the name of the optional manifest in a trace directory.
const ManifestFile = "traces.json"

// the maximum number of files peeked at once
const peekLimit = 8

// Sentinal errors.
const (
	BadManifest = "catalogue: manifest: %v"
	NoDirectory = "catalogue: %v"
)

// Entry is a single trace in the catalogue.
type Entry struct {
	// filename as it appears in the manifest or directory
	File string

	// full path to the file
	Path string

	// the display name. see DisplayName()
	Name string

	// the number of cycles in the trace. only valid if Err is nil
	Cycles int
	Err    error
}

// Catalogue is the result of Scan().
type Catalogue struct {
	Dir     string
	Entries []Entry

	// whether the entries came from the manifest
	FromManifest bool
}

// Scan the directory for traces.
func Scan(ctx context.Context, dir string) (*Catalogue, error) {
	cat := &Catalogue{Dir: dir}

	files, err := readManifest(dir)
	if err == nil {
		cat.FromManifest = true
	} else if errors.Is(err, fs.ErrNotExist) {
		files, err = glob(dir)
		if err != nil {
			return nil, curated.Errorf(NoDirectory, err)
		}
	} else {
		return nil, curated.Errorf(BadManifest, err)
	}

	cat.Entries = make([]Entry, len(files))
	for i, f := range files {
		cat.Entries[i] = Entry{
			File: f,
			Path: filepath.Join(dir, f),
			Name: DisplayName(f),
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(peekLimit)

	// each goroutine writes only to its own entry
	for i := range cat.Entries {
		e := &cat.Entries[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e.Cycles, e.Err = peek(e.Path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return cat, nil
}

func readManifest(dir string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}

	var files []string
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func glob(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	var files []string
	for _, m := range matches {
		f := filepath.Base(m)
		if f == ManifestFile {
			continue
		}
		files = append(files, f)
	}
	return files, nil
}

func peek(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return trace.Count(f)
}

var timestamp = regexp.MustCompile(`_\d{8}_\d{6}$`)

// DisplayName returns the name of a trace file suitable for display. The
// .json extension and any trailing timestamp of the form _YYYYMMDD_HHMMSS are
// removed, underscores are replaced with spaces and each word is
// capitalised.
//
// For example, "factorial_run_20240101_101010.json" becomes "Factorial Run".
func DisplayName(file string) string {
	name := strings.Replace(file, ".json", "", 1)
	name = timestamp.ReplaceAllString(name, "")

	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Write the catalogue to w, one trace per line.
func (cat *Catalogue) Write(w io.Writer) error {
	if len(cat.Entries) == 0 {
		_, err := fmt.Fprintf(w, "no traces found in %s\n", cat.Dir)
		return err
	}

	var width int
	for _, e := range cat.Entries {
		width = max(width, len(e.Name))
	}

	for _, e := range cat.Entries {
		var err error
		if e.Err != nil {
			_, err = fmt.Fprintf(w, "%-*s  %s (%v)\n", width, e.Name, e.File, e.Err)
		} else {
			_, err = fmt.Fprintf(w, "%-*s  %s (%d cycles)\n", width, e.Name, e.File, e.Cycles)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
