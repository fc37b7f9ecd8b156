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
	"bytes"
	"encoding/json"
)

// Register is a single named register value. Registers are stored in a slice
// so that the order they appear in the trace document is preserved.
type Register struct {
	Name  string
	Value Value
}

// Instruction is the raw decoded instruction of a snapshot. The Rd and Rs
// fields are opaque display values.
type Instruction struct {
	Opcode   Value
	Mode     Value
	Rd       Value
	Rs       Value
	Extra    Value
	HasExtra Value
}

// MemWrite is a single memory write that occurred during the cycle.
type MemWrite struct {
	Addr Value
	Old  Value
	New  Value
}

// Snapshot is the recorded state of the machine for a single cycle.
type Snapshot struct {
	// the simulator's cycle counter. this is not necessarily the same as the
	// index of the snapshot in the trace
	Cycle Value

	PC        Value
	Registers []Register
	Flags     Value

	// optional system/internal registers
	SP  Value
	IR  Value
	MAR Value
	MDR Value

	// nil if no instruction was decoded this cycle
	Instr *Instruction

	// nil or empty if no memory writes occurred this cycle
	MemWrites []MemWrite
}

// CycleNumber returns the cycle counter as an integer. Returns -1 if the
// cycle field is missing or not an integer.
func (s *Snapshot) CycleNumber() int {
	if n, ok := s.Cycle.Int(); ok {
		return n
	}
	return -1
}

// UnmarshalJSON implements the json.Unmarshaler interface. Decoding is
// lenient and never fails for well formed JSON.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	*s = decodeSnapshot(data)
	return nil
}

func decodeSnapshot(data json.RawMessage) Snapshot {
	var s Snapshot

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// not an object. every field is absent
		return s
	}

	for k, raw := range fields {
		switch k {
		case "cycle":
			s.Cycle = parseValue(raw)
		case "pc":
			s.PC = parseValue(raw)
		case "flags":
			s.Flags = parseValue(raw)
		case "sp":
			s.SP = parseValue(raw)
		case "ir":
			s.IR = parseValue(raw)
		case "mar":
			s.MAR = parseValue(raw)
		case "mdr":
			s.MDR = parseValue(raw)
		case "registers":
			s.Registers = decodeRegisters(raw)
		case "instr":
			s.Instr = decodeInstruction(raw)
		case "mem_writes":
			s.MemWrites = decodeMemWrites(raw)
		}
	}

	return s
}

// registers are decoded token by token because a map would lose the order
func decodeRegisters(raw json.RawMessage) []Register {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}

	regs := make([]Register, 0, 8)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return regs
		}
		name, ok := tok.(string)
		if !ok {
			return regs
		}

		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return regs
		}

		regs = append(regs, Register{Name: name, Value: parseValue(v)})
	}

	return regs
}

func decodeInstruction(raw json.RawMessage) *Instruction {
	v := parseValue(raw)
	if v.IsAbsent() {
		return nil
	}

	// an instruction field of the wrong type is still an instruction. all the
	// fields will be absent and will decode as unknown
	instr := &Instruction{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return instr
	}

	instr.Opcode = parseValue(fields["opcode"])
	instr.Mode = parseValue(fields["mode"])
	instr.Rd = parseValue(fields["rd"])
	instr.Rs = parseValue(fields["rs"])
	instr.Extra = parseValue(fields["extra"])
	instr.HasExtra = parseValue(fields["has_extra"])

	return instr
}

func decodeMemWrites(raw json.RawMessage) []MemWrite {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil
	}

	writes := make([]MemWrite, 0, len(elements))
	for _, e := range elements {
		var fields map[string]json.RawMessage
		_ = json.Unmarshal(e, &fields)
		writes = append(writes, MemWrite{
			Addr: parseValue(fields["addr"]),
			Old:  parseValue(fields["old"]),
			New:  parseValue(fields["new"]),
		})
	}

	return writes
}
