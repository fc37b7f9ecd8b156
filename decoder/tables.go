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

// Unknown is returned by table lookups that fail.
const Unknown = "?"

// mnemonics indexed by opcode.
var mnemonics = [...]string{
	"NOP", "HALT", "MOV", "LOAD", "STORE", "ADD", "SUB", "AND", "OR", "XOR",
	"CMP", "SHL", "SHR", "JMP", "JZ", "JNZ", "JC", "JNC", "JN", "CALL",
	"RET", "PUSH", "POP", "IN", "OUT",
}

// addressing mode names indexed by mode number.
var modes = [...]string{
	"REG", "IMM", "DIR", "IND", "OFF", "REL",
}

// DecodeOpcode returns the mnemonic for the opcode.
func DecodeOpcode(n int) string {
	if n < 0 || n >= len(mnemonics) {
		return Unknown
	}
	return mnemonics[n]
}

// DecodeMode returns the name of the addressing mode.
func DecodeMode(n int) string {
	if n < 0 || n >= len(modes) {
		return Unknown
	}
	return modes[n]
}

// NumOpcodes is the number of entries in the opcode table.
const NumOpcodes = len(mnemonics)

// NumModes is the number of entries in the addressing mode table.
const NumModes = len(modes)
