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

// Package prefs facilitates the storage of preferential values in the
// cycletrace system. It is an alternative to the command line for values that
// are persistent between invocations.
//
// Preferences are created by declaring a variable of one of the types in the
// package (Bool, String, Int) and adding it to a Disk instance with a unique
// key. The value can then be saved to and loaded from the file associated
// with the Disk.
//
//	var speed prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("viewer.speed", &speed)
//	dsk.Load(true)
//
// The file is a plain text file. The first line is the WarningBoilerPlate and
// subsequent lines are of the form:
//
//	key :: value
//
// More than one Disk instance can share the same file. Saving one Disk
// instance preserves the entries in the file belonging to other instances.
//
// Values can also be supplied on the command line, see the
// PushCommandLineStack() function. A value on the command line overrides the
// value in the file the first time the file is loaded.
package prefs
