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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given with NewArgs() and then
// Parse() is called with no arguments. This allows the same argument list to
// be parsed in stages, one stage per mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("VIEW", "SCRIPT", "LIST")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After a successful Parse() the Mode() function returns the selected
// sub-mode. The first sub-mode in the list is the default and is selected if
// the first argument is not a sub-mode name. Sub-mode names are not case
// sensitive.
//
// Each mode can then add its own flags and parse the remaining arguments:
//
//	md.NewMode()
//	autoplay := md.AddBool("autoplay", false, "start playing after loading")
//	p, err = md.Parse()
//	...
//	source := md.GetArg(0)
//
// Help is printed automatically when the -help flag is given. The help
// lists the flags of the current mode and, if there are any, the sub-modes.
package modalflag
