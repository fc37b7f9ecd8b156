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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	e := curated.Errorf("trace: %s: not a json array", filename)
//
//	if curated.Is(e, "trace: %s: not a json array") {
//		fmt.Println("true")
//	}
//
// Patterns that are tested for in this way should be stored in an exported
// const string. The trace package's NotAnArray is an example.
//
// The Has() function is similar but checks if a pattern occurs anywhere in the
// error chain. A chain is created by using an error as one of the placeholder
// values:
//
//	e := curated.Errorf(trace.NotAnArray, filename)
//	f := curated.Errorf("viewer: load: %v", e)
//
//	curated.Has(f, trace.NotAnArray) // true
//	curated.Is(f, trace.NotAnArray)  // false
//
// IsAny() answers whether the error was created by curated.Errorf() at all. We
// can think of the difference as being between 'expected' and 'unexpected'
// errors.
//
// The Error() implementation normalises the chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": " as suggested on
// p239 of "The Go Programming Language" (Donovan, Kernighan). This means that
// callers don't need to worry about whether a callee has already prefixed the
// message with the same context:
//
//	trace: trace: file not found
//
// is printed as
//
//	trace: file not found
package curated
