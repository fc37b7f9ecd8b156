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

package trace

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// the largest integer that can be held exactly by a float64
const maxExactInt = 1 << 53

type valueKind int

const (
	kindAbsent valueKind = iota
	kindNull
	kindNumber
	kindString
	kindOther
)

// Value is a raw trace value as it was authored in the trace document. The
// zero value is an absent value.
type Value struct {
	kind valueKind
	num  float64

	// the string for kindString values. for kindOther values this is the
	// compacted JSON text
	str string
}

// Number creates a numeric Value.
func Number(n float64) Value {
	return Value{kind: kindNumber, num: n}
}

// String creates a string Value.
func String(s string) Value {
	return Value{kind: kindString, str: s}
}

// Null creates a Value that was present in the document with a value of null.
func Null() Value {
	return Value{kind: kindNull}
}

// Present returns true if the field was present in the document, even if it
// was null.
func (v Value) Present() bool {
	return v.kind != kindAbsent
}

// IsAbsent returns true if the value is missing or null.
func (v Value) IsAbsent() bool {
	return v.kind == kindAbsent || v.kind == kindNull
}

// Num returns the value as a number if it is a JSON number.
func (v Value) Num() (float64, bool) {
	if v.kind != kindNumber {
		return 0, false
	}
	return v.num, true
}

// Str returns the value as a string if it is a JSON string.
func (v Value) Str() (string, bool) {
	if v.kind != kindString {
		return "", false
	}
	return v.str, true
}

// Int interprets the value as an integer. Numbers must have no fractional
// part. Strings can be decimal or hex with a 0x prefix.
func (v Value) Int() (int, bool) {
	switch v.kind {
	case kindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) || v.num != math.Trunc(v.num) || math.Abs(v.num) > maxExactInt {
			return 0, false
		}
		return int(v.num), true
	case kindString:
		s := strings.TrimSpace(v.str)
		var n int64
		var err error
		if HasHexPrefix(s) {
			n, err = strconv.ParseInt(s[2:], 16, 64)
		} else {
			n, err = strconv.ParseInt(s, 10, 64)
		}
		if err != nil {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// String returns the value as it was authored. Absent and null values are
// returned as the empty string.
func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case kindString, kindOther:
		return v.str
	}
	return ""
}

// UnmarshalJSON implements the json.Unmarshaler interface. It never fails for
// well formed JSON. Booleans, objects and arrays are stored as kindOther.
func (v *Value) UnmarshalJSON(data []byte) error {
	*v = parseValue(data)
	return nil
}

func parseValue(data json.RawMessage) Value {
	s := strings.TrimSpace(string(data))
	if len(s) == 0 {
		return Value{}
	}

	switch s[0] {
	case 'n':
		return Null()
	case '"':
		var u string
		if err := json.Unmarshal([]byte(s), &u); err != nil {
			return Value{kind: kindOther, str: s}
		}
		return String(u)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// numbers too large for a float64 are still numbers. ParseFloat
			// returns +/-Inf in that case with a range error
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				return Number(n)
			}
			return Value{kind: kindOther, str: s}
		}
		return Number(n)
	}

	return Value{kind: kindOther, str: s}
}

// HasHexPrefix returns true if the string begins with 0x or 0X.
func HasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
