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
	"strings"

	"github.com/jetsetilly/cycletrace/trace"
)

// FlagNames in display order. The first name is bit 3 of the flags register
// and the last name is bit 0.
var FlagNames = [4]string{"Z", "N", "C", "V"}

// Flag is a single named bit of the flags register.
type Flag struct {
	Name string
	Set  bool
}

// Bit returns the flag as an integer.
func (f Flag) Bit() int {
	if f.Set {
		return 1
	}
	return 0
}

// Flags is the decoded flags register, most significant bit first.
type Flags [4]Flag

// Bits returns the flags as integers, most significant bit first.
func (f Flags) Bits() [4]int {
	var b [4]int
	for i := range f {
		b[i] = f[i].Bit()
	}
	return b
}

// String returns the flags in the form "Z:1 N:0 C:1 V:0".
func (f Flags) String() string {
	s := strings.Builder{}
	for i := range f {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%s:%d", f[i].Name, f[i].Bit()))
	}
	return s.String()
}

// DecodeFlags decodes the low four bits of a raw flags value. Strings with a
// 0x prefix are parsed as hex and other strings as decimal. In both cases
// parsing stops at the first invalid character. Values that cannot be parsed
// at all decode as zero.
func DecodeFlags(raw trace.Value) Flags {
	var n uint32

	if s, ok := raw.Str(); ok {
		if v, ok := parseLeadingInt(s); ok {
			n = uint32(v)
		}
	} else if v, ok := raw.Num(); ok {
		n = toUint32(v)
	}

	n &= 0x0f

	var f Flags
	for i := range FlagNames {
		f[i] = Flag{
			Name: FlagNames[i],
			Set:  (n>>(3-i))&0x01 == 0x01,
		}
	}
	return f
}

// parseLeadingInt parses as many valid digits as possible from the start of
// the string. the base is 16 if the string has a 0x prefix, otherwise it is
// 10. returns false if there are no valid digits
func parseLeadingInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)

	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := int64(10)
	if trace.HasHexPrefix(s) {
		base = 16
		s = s[2:]
	}

	var n int64
	var digits int
	for _, r := range s {
		d := digitValue(r)
		if d < 0 || d >= base {
			break
		}
		// only the low bits matter to the caller. masking prevents overflow
		n = (n*base + d) & 0xffffffff
		digits++
	}

	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func digitValue(r rune) int64 {
	switch {
	case r >= '0' && r <= '9':
		return int64(r - '0')
	case r >= 'a' && r <= 'f':
		return int64(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int64(r-'A') + 10
	}
	return -1
}
