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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/cycletrace/test"
)

func TestLocal(t *testing.T) {
	inf := fromBuildInfo("", nil)
	test.ExpectEquality(t, inf.Version, "local")
	test.ExpectEquality(t, inf.Release, false)
	test.ExpectEquality(t, inf.String(), "Cycletrace local (no revision information)")
}

func TestUnreleased(t *testing.T) {
	info := &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	inf := fromBuildInfo("", info)
	test.ExpectEquality(t, inf.Version, "unreleased")
	test.ExpectEquality(t, inf.Revision, "abc123+dirty")
}

func TestRelease(t *testing.T) {
	inf := fromBuildInfo("v0.1.0", &debug.BuildInfo{})
	test.ExpectEquality(t, inf.Release, true)
	test.ExpectEquality(t, inf.String(), "Cycletrace v0.1.0")
}
