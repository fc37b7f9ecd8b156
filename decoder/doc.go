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

// Package decoder turns raw trace values into the semantic view used for
// presentation: instruction mnemonics, addressing modes, named flag bits and
// canonical hex strings.
//
// All functions are pure and never panic. Values that cannot be decoded
// degrade to a visible placeholder: the Unknown marker for table lookups and
// the Absent marker for missing values. Traces can be produced by different
// versions of the simulator and a decoding failure should never prevent the
// rest of a snapshot from being shown.
package decoder
