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

// Package script drives a playback Controller from a Lua script. Scripts are
// useful for automated checks of a trace and for producing a textual record
// of a playback session.
//
// Scheduling is handled by a playback.ManualScheduler so scripted playback is
// deterministic and runs as fast as possible. A call to play() does nothing
// until the script calls run(), tick() or advance().
//
// The following globals are available to the script:
//
//	first() last() next() prev() seek(i) goto(i)
//	play() pause() toggle() reset()
//	speed([ms])      set the speed in milliseconds. returns the current speed
//	position()       current index in the trace
//	length()         number of cycles in the trace
//	playing()        true if playback is running
//	cycle()          cycle number of the current snapshot. nil if no trace
//	mnemonic()       mnemonic of the current instruction. nil if none
//	flags()          table of the Z, N, C and V flags
//	history()        array of tables with cycle, instruction and current fields
//	run([limit])     run scheduled steps until playback is idle
//	tick()           simulate a single display refresh
//	advance(ms)      move simulated time forward
//	load(source)     load a trace from a file or URL
//	show()           print the current cycle
//	print(...)       print to the script output
//
// Because goto is a keyword in Lua it must be called as _G["goto"](i). The
// seek() function is the same and is more convenient. The next() function
// behaves like the standard Lua function of the same name when it is called
// with a table argument.
package script
