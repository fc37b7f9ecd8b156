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

	"github.com/jetsetilly/cycletrace/trace"
)

// Opcode decodes the opcode field of a raw instruction.
func Opcode(v trace.Value) string {
	n, ok := v.Int()
	if !ok {
		return Unknown
	}
	return DecodeOpcode(n)
}

// Mode decodes the addressing mode field of a raw instruction.
func Mode(v trace.Value) string {
	n, ok := v.Int()
	if !ok {
		return Unknown
	}
	return DecodeMode(n)
}

// Instruction is the decoded form of trace.Instruction. Operand fields are
// formatted for display.
type Instruction struct {
	Mnemonic string

	// the opcode and mode number as they appeared in the trace. Absent if
	// they were missing
	Opcode  string
	ModeNum string
	Mode    string

	Rd    string
	Rs    string
	Extra string

	// whether the instruction carried an extra word
	HasExtra bool
}

// DecodeInstruction returns the decoded instruction of the snapshot. Returns
// false if the snapshot has no instruction.
func DecodeInstruction(s *trace.Snapshot) (Instruction, bool) {
	if s == nil || s.Instr == nil {
		return Instruction{}, false
	}

	in := s.Instr
	d := Instruction{
		Mnemonic: Opcode(in.Opcode),
		Opcode:   raw(in.Opcode),
		ModeNum:  raw(in.Mode),
		Mode:     Mode(in.Mode),
		Rd:       raw(in.Rd),
		Rs:       raw(in.Rs),
		Extra:    FormatValue(in.Extra, DefaultWidth),
	}

	// an instruction has an extra word if it says so. older traces don't
	// have the has_extra field so fall back to the presence of extra itself
	if n, ok := in.HasExtra.Num(); ok {
		d.HasExtra = n != 0
	} else if b := in.HasExtra.String(); b == "true" {
		d.HasExtra = true
	} else if in.HasExtra.IsAbsent() {
		d.HasExtra = !in.Extra.IsAbsent()
	}

	return d, true
}

func raw(v trace.Value) string {
	if v.IsAbsent() {
		return Absent
	}
	return v.String()
}

// NotAvailable is the summary of a snapshot with no instruction.
const NotAvailable = "N/A"

// Summary returns the one line description of the snapshot used by the
// execution history. For example, "ADD (PC: 0x0010)".
func Summary(s *trace.Snapshot) string {
	d, ok := DecodeInstruction(s)
	if !ok {
		return NotAvailable
	}
	return fmt.Sprintf("%s (PC: %s)", d.Mnemonic, FormatValue(s.PC, DefaultWidth))
}
