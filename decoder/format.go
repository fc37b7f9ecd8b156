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

package decoder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jetsetilly/cycletrace/trace"
)

// Absent is the formatted value of a missing or null trace value.
const Absent = "-"

// DefaultWidth is the number of hex digits used when a width of zero or less
// is given to FormatValue().
const DefaultWidth = 4

// FormatValue returns a canonical hex representation of the value, of the
// form 0x00FF. Numbers, and strings that parse as numbers, are masked to 16
// bits and padded to width hex digits.
//
// Strings that already have a hex prefix are returned with the digits
// uppercased but are otherwise unchanged. They are not masked, so hex values
// wider than 16 bits are preserved as authored. Blank strings count as zero
// and hex strings padded with whitespace are parsed as numbers. Strings that do
// not parse as numbers are returned unchanged.
func FormatValue(v trace.Value, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	if v.IsAbsent() {
		return Absent
	}

	if s, ok := v.Str(); ok {
		if trace.HasHexPrefix(s) {
			return "0x" + strings.ToUpper(s[2:])
		}
		n, ok := parseNumber(s)
		if !ok {
			return s
		}
		return toHex(n, width)
	}

	if n, ok := v.Num(); ok {
		return toHex(n, width)
	}

	// booleans, objects, etc.
	return v.String()
}

// FormatInt is a convenience function for formatting an integer with
// FormatValue().
func FormatInt(n int, width int) string {
	return FormatValue(trace.Number(float64(n)), width)
}

func toHex(n float64, width int) string {
	return fmt.Sprintf("0x%0*X", width, toUint32(n)&0xffff)
}

// toUint32 converts a float to a 32 bit integer by truncation and modular
// wrapping. NaN and infinities convert to zero
func toUint32(n float64) uint32 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	n = math.Mod(math.Trunc(n), 1<<32)
	if n < 0 {
		n += 1 << 32
	}
	return uint32(n)
}

// parseNumber parses a decimal or 0x prefixed hex string, ignoring leading
// and trailing whitespace. returns false if the string is not a number. a
// blank string is zero
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}

	if trace.HasHexPrefix(s) {
		n, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}

	switch s {
	case "Infinity", "+Infinity", "-Infinity":
		return math.Inf(1), true
	}

	// ParseFloat understands words like "inf" and "nan" as well as hex floats.
	// neither of these are acceptable in a trace so the string must begin
	// with a digit, a sign or a decimal point
	switch s[0] {
	case '+', '-', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
	default:
		return 0, false
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
