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

package decoder_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/cycletrace/decoder"
	"github.com/jetsetilly/cycletrace/test"
	"github.com/jetsetilly/cycletrace/trace"
)

func TestOpcodeTable(t *testing.T) {
	test.ExpectEquality(t, decoder.NumOpcodes, 25)
	test.ExpectEquality(t, decoder.DecodeOpcode(0), "NOP")
	test.ExpectEquality(t, decoder.DecodeOpcode(1), "HALT")
	test.ExpectEquality(t, decoder.DecodeOpcode(2), "MOV")
	test.ExpectEquality(t, decoder.DecodeOpcode(24), "OUT")
	test.ExpectEquality(t, decoder.DecodeOpcode(25), decoder.Unknown)
	test.ExpectEquality(t, decoder.DecodeOpcode(999), decoder.Unknown)
	test.ExpectEquality(t, decoder.DecodeOpcode(-1), decoder.Unknown)

	test.ExpectEquality(t, decoder.Opcode(trace.Number(5)), "ADD")
	test.ExpectEquality(t, decoder.Opcode(trace.String("0x13")), "CALL")
	test.ExpectEquality(t, decoder.Opcode(trace.Number(2.5)), decoder.Unknown)
	test.ExpectEquality(t, decoder.Opcode(trace.String("MOV")), decoder.Unknown)
	test.ExpectEquality(t, decoder.Opcode(trace.Null()), decoder.Unknown)
}

func TestModeTable(t *testing.T) {
	test.ExpectEquality(t, decoder.NumModes, 6)
	test.ExpectEquality(t, decoder.DecodeMode(0), "REG")
	test.ExpectEquality(t, decoder.DecodeMode(5), "REL")
	test.ExpectEquality(t, decoder.DecodeMode(6), decoder.Unknown)
	test.ExpectEquality(t, decoder.Mode(trace.String("3")), "IND")
	test.ExpectEquality(t, decoder.Mode(trace.Value{}), decoder.Unknown)
}

func TestFlags(t *testing.T) {
	f := decoder.DecodeFlags(trace.Number(0x0a))
	test.ExpectEquality(t, f.Bits(), [4]int{1, 0, 1, 0})
	test.ExpectEquality(t, f[0].Name, "Z")
	test.ExpectEquality(t, f[1].Name, "N")
	test.ExpectEquality(t, f[2].Name, "C")
	test.ExpectEquality(t, f[3].Name, "V")
	test.ExpectEquality(t, f.String(), "Z:1 N:0 C:1 V:0")

	// only the low four bits are meaningful
	f = decoder.DecodeFlags(trace.Number(0xf5))
	test.ExpectEquality(t, f.Bits(), [4]int{0, 1, 0, 1})

	// hex strings
	f = decoder.DecodeFlags(trace.String("0x0A"))
	test.ExpectEquality(t, f.Bits(), [4]int{1, 0, 1, 0})
	f = decoder.DecodeFlags(trace.String("0Xc"))
	test.ExpectEquality(t, f.Bits(), [4]int{1, 1, 0, 0})

	// decimal strings parse up to the first invalid character
	f = decoder.DecodeFlags(trace.String("9xyz"))
	test.ExpectEquality(t, f.Bits(), [4]int{1, 0, 0, 1})

	// unparseable values decode as zero
	for _, v := range []trace.Value{trace.String("flags"), trace.String(""), trace.Null(), {}} {
		f = decoder.DecodeFlags(v)
		test.ExpectEquality(t, f.Bits(), [4]int{0, 0, 0, 0}, v)
	}

	// negative numbers wrap
	f = decoder.DecodeFlags(trace.Number(-1))
	test.ExpectEquality(t, f.Bits(), [4]int{1, 1, 1, 1})
}

func TestFormatValue(t *testing.T) {
	test.ExpectEquality(t, decoder.FormatValue(trace.Number(255), 4), "0x00FF")
	test.ExpectEquality(t, decoder.FormatValue(trace.Number(255), 0), "0x00FF")
	test.ExpectEquality(t, decoder.FormatValue(trace.Number(10), 2), "0x0A")
	test.ExpectEquality(t, decoder.FormatValue(trace.Number(0), 4), "0x0000")

	// numbers are masked to 16 bits
	test.ExpectEquality(t, decoder.FormatValue(trace.Number(0x12345), 4), "0x2345")
	test.ExpectEquality(t, decoder.FormatValue(trace.Number(-1), 4), "0xFFFF")
	test.ExpectEquality(t, decoder.FormatValue(trace.Number(3.9), 4), "0x0003")

	// hex strings are passed through with uppercase digits and are not masked
	test.ExpectEquality(t, decoder.FormatValue(trace.String("0xAB"), 4), "0xAB")
	test.ExpectEquality(t, decoder.FormatValue(trace.String("0xab"), 4), "0xAB")
	test.ExpectEquality(t, decoder.FormatValue(trace.String("0X1ffff"), 4), "0x1FFFF")

	// decimal strings are treated like numbers
	test.ExpectEquality(t, decoder.FormatValue(trace.String("255"), 4), "0x00FF")
	test.ExpectEquality(t, decoder.FormatValue(trace.String("70000"), 4), "0x1170")

	// unparseable strings are unchanged
	test.ExpectEquality(t, decoder.FormatValue(trace.String("r1"), 4), "r1")
	test.ExpectEquality(t, decoder.FormatValue(trace.String("nan"), 4), "nan")

	// blank strings are zero
	test.ExpectEquality(t, decoder.FormatValue(trace.String(""), 4), "0x0000")
	test.ExpectEquality(t, decoder.FormatValue(trace.String("  "), 4), "0x0000")

	// padded hex is parsed and reformatted to the requested width
	test.ExpectEquality(t, decoder.FormatValue(trace.String(" 0x10 "), 4), "0x0010")
	test.ExpectEquality(t, decoder.FormatValue(trace.String(" 0x1ffff"), 4), "0xFFFF")
	test.ExpectEquality(t, decoder.FormatValue(trace.String(" 0xzz "), 4), " 0xzz ")

	// absent values
	test.ExpectEquality(t, decoder.FormatValue(trace.Value{}, 4), decoder.Absent)
	test.ExpectEquality(t, decoder.FormatValue(trace.Null(), 4), decoder.Absent)
	test.ExpectInequality(t, decoder.FormatValue(trace.Null(), 4), decoder.FormatValue(trace.Number(0), 4))

	test.ExpectEquality(t, decoder.FormatInt(256, 4), "0x0100")
}

const instructions = `[
{"cycle": 1, "pc": 16, "instr": {"opcode": 5, "mode": 1, "rd": 0, "rs": "r2", "has_extra": true, "extra": 42}},
{"cycle": 2, "pc": "0x0012", "instr": {"opcode": 99, "mode": "0x02", "rd": 1, "rs": 2, "has_extra": 0, "extra": 0}},
{"cycle": 3, "pc": "0x0014", "instr": {"opcode": 13, "mode": 5, "extra": "0x0020"}},
{"cycle": 4, "pc": "0x0016"}
]`

func TestInstruction(t *testing.T) {
	snapshots, err := trace.Decode(strings.NewReader(instructions))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(snapshots), 4)

	d, ok := decoder.DecodeInstruction(&snapshots[0])
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, d.Mnemonic, "ADD")
	test.ExpectEquality(t, d.Opcode, "5")
	test.ExpectEquality(t, d.Mode, "IMM")
	test.ExpectEquality(t, d.ModeNum, "1")
	test.ExpectEquality(t, d.Rd, "0")
	test.ExpectEquality(t, d.Rs, "r2")
	test.ExpectEquality(t, d.Extra, "0x002A")
	test.ExpectSuccess(t, d.HasExtra)

	d, ok = decoder.DecodeInstruction(&snapshots[1])
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, d.Mnemonic, decoder.Unknown)
	test.ExpectEquality(t, d.Mode, "DIR")
	test.ExpectFailure(t, d.HasExtra)

	// without has_extra the presence of extra is used
	d, ok = decoder.DecodeInstruction(&snapshots[2])
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, d.Mnemonic, "JMP")
	test.ExpectEquality(t, d.Extra, "0x0020")
	test.ExpectEquality(t, d.Rd, decoder.Absent)
	test.ExpectSuccess(t, d.HasExtra)

	_, ok = decoder.DecodeInstruction(&snapshots[3])
	test.ExpectFailure(t, ok)
	_, ok = decoder.DecodeInstruction(nil)
	test.ExpectFailure(t, ok)
}

func TestSummary(t *testing.T) {
	snapshots, err := trace.Decode(strings.NewReader(instructions))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, decoder.Summary(&snapshots[0]), "ADD (PC: 0x0010)")
	test.ExpectEquality(t, decoder.Summary(&snapshots[1]), "? (PC: 0x0012)")
	test.ExpectEquality(t, decoder.Summary(&snapshots[3]), decoder.NotAvailable)
	test.ExpectEquality(t, decoder.Summary(nil), decoder.NotAvailable)
}
