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

// Package paths contains functions to prepare paths to cycletrace resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file.
//
//	p, err := paths.ResourcePath("", "preferences")
//
// For development builds, the base path is the .cycletrace directory in the
// current working directory. For release builds, the base path is the
// cycletrace directory in the user's config directory, as returned by
// os.UserConfigDir(). On a modern Linux system that would be:
//
//	/home/user/.config/cycletrace/preferences
//
// The directory part of the returned path is created if it does not exist.
package paths
