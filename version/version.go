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

// Package version reports the version of the application. The version
// number is set at link time, with a flag of the form:
//
//	-ldflags "-X github.com/jetsetilly/cycletrace/version.number=v0.1.0"
//
// Without a version number the VCS information embedded by the Go toolchain
// is used to describe the build.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the application.
const ApplicationName = "Cycletrace"

// set by the linker
var number string

// Info describes the build.
type Info struct {
	// the version number. "unreleased" if the build has VCS information but
	// no number and "local" if it has neither
	Version string

	// the VCS revision. suffixed with "+dirty" if the working tree had
	// uncommitted changes
	Revision string

	// true if the version is a numbered release
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

// Current returns the Info for the running program.
func Current() Info {
	info, _ := debug.ReadBuildInfo()
	return fromBuildInfo(number, info)
}

func fromBuildInfo(number string, info *debug.BuildInfo) Info {
	var vcs bool
	var modified bool
	var inf Info

	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				inf.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	} else if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}
