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
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// operator performs the work of an instruction once the effective address
// has been resolved. value is the byte read from the effective address for
// Read and RMW instructions and zero otherwise.
type operator func(mc *CPU, address uint16, value uint8)

// operation returns the operator function for the instruction operator.
// returns nil for an unrecognised operator.
func operation(op instructions.Operator) operator {
	switch op {
	case instructions.Nop:
		return func(mc *CPU, address uint16, value uint8) {
			// does nothing
		}

	case instructions.Cli:
		return func(mc *CPU, address uint16, value uint8) {
			mc.Status.Clear(registers.InterruptDisable)
		}

	case instructions.Sei:
		return func(mc *CPU, address uint16, value uint8) {
			mc.Status.Set(registers.InterruptDisable)
		}

	case instructions.Clc:
		return func(mc *CPU, address uint16, value uint8) {
			mc.Status.Clear(registers.Carry)
		}

	case instructions.Sec:
		return func(mc *CPU, address uint16, value uint8) {
			mc.Status.Set(registers.Carry)
		}

	case instructions.Cld:
		return func(mc *CPU, address uint16, value uint8) {
			mc.Status.Clear(registers.Decimal)
		}

	case instructions.Sed:
		return func(mc *CPU, address uint16, value uint8) {
			mc.Status.Set(registers.Decimal)
		}

	case instructions.Clv:
		return func(mc *CPU, address uint16, value uint8) {
			mc.Status.Clear(registers.Overflow)
		}

	case instructions.Pha:
		return func(mc *CPU, address uint16, value uint8) {
			mc.push(mc.A.Value())
		}

	case instructions.Pla:
		return func(mc *CPU, address uint16, value uint8) {
			mc.A.Load(mc.pull())
			mc.Status.UpdateZeroNegative(mc.A.Value())
		}

	case instructions.Php:
		return func(mc *CPU, address uint16, value uint8) {
			// the pushed value always has the break flag and bit 5 set
			mc.push(mc.Status.Value() | uint8(registers.Break|registers.Unused))
		}

	case instructions.Plp:
		return func(mc *CPU, address uint16, value uint8) {
			mc.Status.Load(mc.pull() &^ uint8(registers.Break|registers.Unused))
		}

	case instructions.Txa:
		return func(mc *CPU, address uint16, value uint8) {
			mc.A.Load(mc.X.Value())
			mc.Status.UpdateZeroNegative(mc.A.Value())
		}

	case instructions.Tax:
		return func(mc *CPU, address uint16, value uint8) {
			mc.X.Load(mc.A.Value())
			mc.Status.UpdateZeroNegative(mc.X.Value())
		}

	case instructions.Tay:
		return func(mc *CPU, address uint16, value uint8) {
			mc.Y.Load(mc.A.Value())
			mc.Status.UpdateZeroNegative(mc.Y.Value())
		}

	case instructions.Tya:
		return func(mc *CPU, address uint16, value uint8) {
			mc.A.Load(mc.Y.Value())
			mc.Status.UpdateZeroNegative(mc.A.Value())
		}

	case instructions.Tsx:
		return func(mc *CPU, address uint16, value uint8) {
			mc.X.Load(mc.SP.Value())
			mc.Status.UpdateZeroNegative(mc.X.Value())
		}

	case instructions.Txs:
		return func(mc *CPU, address uint16, value uint8) {
			mc.SP.Load(mc.X.Value())
			// does not affect status register
		}

	case instructions.Eor:
		return func(mc *CPU, address uint16, value uint8) {
			mc.A.EOR(value)
			mc.Status.UpdateZeroNegative(mc.A.Value())
		}

	case instructions.Ora:
		return func(mc *CPU, address uint16, value uint8) {
			mc.A.ORA(value)
			mc.Status.UpdateZeroNegative(mc.A.Value())
		}

	case instructions.And:
		return func(mc *CPU, address uint16, value uint8) {
			mc.A.AND(value)
			mc.Status.UpdateZeroNegative(mc.A.Value())
		}

	case instructions.Adc:
		// binary addition only. the decimal flag is ignored
		return func(mc *CPU, address uint16, value uint8) {
			carry, overflow := mc.A.Add(value, mc.Status.Carry())
			mc.Status.Assign(registers.Carry, carry)
			mc.Status.Assign(registers.Overflow, overflow)
			mc.Status.UpdateZeroNegative(mc.A.Value())
		}

	case instructions.Lda:
		return func(mc *CPU, address uint16, value uint8) {
			mc.A.Load(value)
			mc.Status.UpdateZeroNegative(mc.A.Value())
		}

	case instructions.Ldx:
		return func(mc *CPU, address uint16, value uint8) {
			mc.X.Load(value)
			mc.Status.UpdateZeroNegative(mc.X.Value())
		}

	case instructions.Ldy:
		return func(mc *CPU, address uint16, value uint8) {
			mc.Y.Load(value)
			mc.Status.UpdateZeroNegative(mc.Y.Value())
		}

	case instructions.Sta:
		return func(mc *CPU, address uint16, value uint8) {
			mc.write8Bit(address, mc.A.Value())
		}

	case instructions.Stx:
		return func(mc *CPU, address uint16, value uint8) {
			mc.write8Bit(address, mc.X.Value())
		}

	case instructions.Sty:
		return func(mc *CPU, address uint16, value uint8) {
			mc.write8Bit(address, mc.Y.Value())
		}

	case instructions.Inx:
		return func(mc *CPU, address uint16, value uint8) {
			mc.X.Add(1, false)
			mc.Status.UpdateZeroNegative(mc.X.Value())
		}

	case instructions.Iny:
		return func(mc *CPU, address uint16, value uint8) {
			mc.Y.Add(1, false)
			mc.Status.UpdateZeroNegative(mc.Y.Value())
		}

	case instructions.Dex:
		return func(mc *CPU, address uint16, value uint8) {
			mc.X.Add(0xff, false)
			mc.Status.UpdateZeroNegative(mc.X.Value())
		}

	case instructions.Dey:
		return func(mc *CPU, address uint16, value uint8) {
			mc.Y.Add(0xff, false)
			mc.Status.UpdateZeroNegative(mc.Y.Value())
		}

	case instructions.Inc:
		return func(mc *CPU, address uint16, value uint8) {
			mc.acc8.Load(value)
			mc.acc8.Add(1, false)
			mc.Status.UpdateZeroNegative(mc.acc8.Value())
			mc.write8Bit(address, mc.acc8.Value())
		}

	case instructions.Dec:
		return func(mc *CPU, address uint16, value uint8) {
			mc.acc8.Load(value)
			mc.acc8.Add(0xff, false)
			mc.Status.UpdateZeroNegative(mc.acc8.Value())
			mc.write8Bit(address, mc.acc8.Value())
		}

	case instructions.Jmp:
		// the PC is loaded with the effective address and is not advanced
		// any further
		return func(mc *CPU, address uint16, value uint8) {
			mc.PC.Load(address)
		}

	case instructions.Jsr:
		// the address pushed is the address of the last byte of the JSR
		// instruction. high byte first
		return func(mc *CPU, address uint16, value uint8) {
			ret := mc.PC.Address() - 1
			mc.push(uint8(ret >> 8))
			mc.push(uint8(ret))
			mc.PC.Load(address)
		}

	case instructions.Rts:
		return func(mc *CPU, address uint16, value uint8) {
			lo := mc.pull()
			hi := mc.pull()
			mc.PC.Load((uint16(hi) << 8) | uint16(lo))
			mc.PC.Add(1)
		}
	}

	return nil
}
