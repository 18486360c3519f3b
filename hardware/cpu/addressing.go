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

package cpu

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// resolver consumes the operand bytes of an instruction and returns the
// effective address.
type resolver func(mc *CPU) uint16

// addressing returns the resolver for the addressing mode. returns nil for an
// unrecognised addressing mode.
func addressing(mode instructions.AddressingMode) resolver {
	switch mode {
	case instructions.Implied:
		return func(mc *CPU) uint16 {
			// implied mode does not use any additional bytes
			return 0
		}

	case instructions.Immediate:
		// the effective address is the location of the operand. the value
		// is read through the PC
		return func(mc *CPU) uint16 {
			address := mc.PC.Address()
			mc.read8BitPC(loNibble)
			return address
		}

	case instructions.ZeroPage:
		return func(mc *CPU) uint16 {
			return uint16(mc.read8BitPC(loNibble))
		}

	case instructions.ZeroPageIndexedX:
		return func(mc *CPU) uint16 {
			// the sum is 8 bits so the address never leaves page zero
			return uint16(mc.read8BitPC(loNibble) + mc.X.Value())
		}

	case instructions.ZeroPageIndexedY:
		return func(mc *CPU) uint16 {
			return uint16(mc.read8BitPC(loNibble) + mc.Y.Value())
		}

	case instructions.Absolute:
		return func(mc *CPU) uint16 {
			return mc.read16BitPC()
		}

	case instructions.AbsoluteIndexedX:
		return func(mc *CPU) uint16 {
			// 16 bit sum. page boundaries can be crossed
			return mc.read16BitPC() + mc.X.Address()
		}

	case instructions.AbsoluteIndexedY:
		return func(mc *CPU) uint16 {
			return mc.read16BitPC() + mc.Y.Address()
		}

	case instructions.Indirect:
		// indirect addressing is only used for the JMP command
		return func(mc *CPU) uint16 {
			pointer := mc.read16BitPC()

			// handle indirect addressing JMP bug. the high byte of the target
			// is read from the start of the page rather than the next page
			if pointer&0x00ff == 0x00ff && mc.indirectJumpBug() {
				lo := mc.mem.Read(pointer)
				hi := mc.mem.Read(pointer & 0xff00)
				return (uint16(hi) << 8) | uint16(lo)
			}

			return mc.read16Bit(pointer)
		}
	}

	return nil
}
