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

package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/jetsetilly/cycletrace/curated"
)

// Sentinal error patterns returned by the loading functions.
const (
	// the document could be read but it is not a JSON array
	NotAnArray = "trace: not a json array: %v"

	// the source of the document could not be read
	Unreadable = "trace: %s: %v"

	// the HTTP server did not return the document
	BadResponse = "trace: %s: unexpected response (%s)"
)

// Decode reads a complete trace document. Individual snapshots are decoded
// leniently (see the package documentation) but the document itself must be
// a JSON array.
//
// An empty array is not an error. It results in an empty trace.
func Decode(r io.Reader) ([]Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(NotAnArray, err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, curated.Errorf(NotAnArray, err)
	}

	// unmarshaling the JSON literal null into a slice is not an error in the
	// encoding/json package but it isn't a trace
	if elements == nil {
		return nil, curated.Errorf(NotAnArray, "null document")
	}

	snapshots := make([]Snapshot, len(elements))
	for i := range elements {
		snapshots[i] = decodeSnapshot(elements[i])
	}

	return snapshots, nil
}

// Count returns the number of snapshots in a trace document without decoding
// the snapshots. It is much cheaper than Decode() for large traces.
func Count(r io.Reader) (int, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return 0, curated.Errorf(NotAnArray, err)
	}
	if tok != json.Delim('[') {
		return 0, curated.Errorf(NotAnArray, tok)
	}

	n := 0
	for dec.More() {
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return n, curated.Errorf(NotAnArray, err)
		}
		n++
	}

	return n, nil
}

// LoadFile reads and decodes the trace document in the named file.
func LoadFile(filename string) ([]Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(Unreadable, filename, err)
	}

	snapshots, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, curated.Errorf(Unreadable, filename, err)
	}

	return snapshots, nil
}

// Fetch retrieves and decodes the trace document at the URL.
func Fetch(ctx context.Context, url string) ([]Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, curated.Errorf(Unreadable, url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, curated.Errorf(Unreadable, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, curated.Errorf(BadResponse, url, resp.Status)
	}

	snapshots, err := Decode(resp.Body)
	if err != nil {
		return nil, curated.Errorf(Unreadable, url, err)
	}

	return snapshots, nil
}

// IsURL returns true if the source should be retrieved with Fetch() rather
// than LoadFile().
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Open loads a trace from either a URL or a file. File sources can be
// prefixed with file:// if required.
func Open(ctx context.Context, source string) ([]Snapshot, error) {
	if IsURL(source) {
		return Fetch(ctx, source)
	}
	return LoadFile(strings.TrimPrefix(source, "file://"))
}
