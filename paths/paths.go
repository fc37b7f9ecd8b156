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

package paths

import (
	"os"
	"path/filepath"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details.
//
// The final element of resource is the filename and all other elements are
// directories. Empty elements are ignored. The directories are created if
// necessary.
func ResourcePath(resource ...string) (string, error) {
	var dir []string
	var file string

	if len(resource) > 0 {
		dir = resource[:len(resource)-1]
		file = resource[len(resource)-1]
	}

	base, err := basePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(append([]string{base}, dir...)...)
	if _, err := os.Stat(pth); err != nil {
		if err := os.MkdirAll(pth, 0o700); err != nil {
			return "", err
		}
	}

	return filepath.Join(pth, file), nil
}
