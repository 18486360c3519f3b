// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package execution

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the instruction definition. nil if the opcode is not supported
	Defn *instructions.Definition

	// the opcode byte that was fetched
	OpCode uint8

	// address of the opcode byte
	Address uint16

	// the operand bytes as read from memory. little-endian pairs are combined
	// into a single value
	InstructionData uint16

	// the address resolved by the addressing mode. for immediate addressing
	// this is the address of the operand byte
	EffectiveAddress uint16

	// the value read by the instruction or the value written by the
	// instruction
	Value uint8

	// number of bytes read during instruction decode. includes the opcode
	ByteCount int

	// the opcode has no definition. the instruction will have had no effect
	Unsupported bool

	// whether this data has been finalised. the values of the fields above
	// are undefined until Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Mnemonic returns the name of the instruction in the form used in debug
// traces. For example, LDA_ZPX or NOP. Unsupported opcodes are shown as ???
func (r Result) Mnemonic() string {
	if r.Defn == nil {
		return "???"
	}
	return r.Defn.Name()
}
