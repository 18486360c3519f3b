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

package instructions

// the instruction set. the order of entries is not significant.
var definitions = []Definition{
	{OpCode: 0xea, Operator: Nop, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0x29, Operator: And, AddressingMode: Immediate, Bytes: 2, Effect: Read},
	{OpCode: 0x25, Operator: And, AddressingMode: ZeroPage, Bytes: 2, Effect: Read},
	{OpCode: 0x35, Operator: And, AddressingMode: ZeroPageIndexedX, Bytes: 2, Effect: Read},
	{OpCode: 0x2d, Operator: And, AddressingMode: Absolute, Bytes: 3, Effect: Read},
	{OpCode: 0x3d, Operator: And, AddressingMode: AbsoluteIndexedX, Bytes: 3, Effect: Read},
	{OpCode: 0x39, Operator: And, AddressingMode: AbsoluteIndexedY, Bytes: 3, Effect: Read},
	{OpCode: 0x09, Operator: Ora, AddressingMode: Immediate, Bytes: 2, Effect: Read},
	{OpCode: 0x05, Operator: Ora, AddressingMode: ZeroPage, Bytes: 2, Effect: Read},
	{OpCode: 0x15, Operator: Ora, AddressingMode: ZeroPageIndexedX, Bytes: 2, Effect: Read},
	{OpCode: 0x0d, Operator: Ora, AddressingMode: Absolute, Bytes: 3, Effect: Read},
	{OpCode: 0x1d, Operator: Ora, AddressingMode: AbsoluteIndexedX, Bytes: 3, Effect: Read},
	{OpCode: 0x19, Operator: Ora, AddressingMode: AbsoluteIndexedY, Bytes: 3, Effect: Read},
	{OpCode: 0x49, Operator: Eor, AddressingMode: Immediate, Bytes: 2, Effect: Read},
	{OpCode: 0x45, Operator: Eor, AddressingMode: ZeroPage, Bytes: 2, Effect: Read},
	{OpCode: 0x55, Operator: Eor, AddressingMode: ZeroPageIndexedX, Bytes: 2, Effect: Read},
	{OpCode: 0x4d, Operator: Eor, AddressingMode: Absolute, Bytes: 3, Effect: Read},
	{OpCode: 0x5d, Operator: Eor, AddressingMode: AbsoluteIndexedX, Bytes: 3, Effect: Read},
	{OpCode: 0x59, Operator: Eor, AddressingMode: AbsoluteIndexedY, Bytes: 3, Effect: Read},
	{OpCode: 0x69, Operator: Adc, AddressingMode: Immediate, Bytes: 2, Effect: Read},
	{OpCode: 0x65, Operator: Adc, AddressingMode: ZeroPage, Bytes: 2, Effect: Read},
	{OpCode: 0x75, Operator: Adc, AddressingMode: ZeroPageIndexedX, Bytes: 2, Effect: Read},
	{OpCode: 0x6d, Operator: Adc, AddressingMode: Absolute, Bytes: 3, Effect: Read},
	{OpCode: 0x7d, Operator: Adc, AddressingMode: AbsoluteIndexedX, Bytes: 3, Effect: Read},
	{OpCode: 0x79, Operator: Adc, AddressingMode: AbsoluteIndexedY, Bytes: 3, Effect: Read},
	{OpCode: 0xa9, Operator: Lda, AddressingMode: Immediate, Bytes: 2, Effect: Read},
	{OpCode: 0xa5, Operator: Lda, AddressingMode: ZeroPage, Bytes: 2, Effect: Read},
	{OpCode: 0xb5, Operator: Lda, AddressingMode: ZeroPageIndexedX, Bytes: 2, Effect: Read},
	{OpCode: 0xad, Operator: Lda, AddressingMode: Absolute, Bytes: 3, Effect: Read},
	{OpCode: 0xbd, Operator: Lda, AddressingMode: AbsoluteIndexedX, Bytes: 3, Effect: Read},
	{OpCode: 0xb9, Operator: Lda, AddressingMode: AbsoluteIndexedY, Bytes: 3, Effect: Read},
	{OpCode: 0xa2, Operator: Ldx, AddressingMode: Immediate, Bytes: 2, Effect: Read},
	{OpCode: 0xa6, Operator: Ldx, AddressingMode: ZeroPage, Bytes: 2, Effect: Read},
	{OpCode: 0xb6, Operator: Ldx, AddressingMode: ZeroPageIndexedY, Bytes: 2, Effect: Read},
	{OpCode: 0xae, Operator: Ldx, AddressingMode: Absolute, Bytes: 3, Effect: Read},
	{OpCode: 0xbe, Operator: Ldx, AddressingMode: AbsoluteIndexedY, Bytes: 3, Effect: Read},
	{OpCode: 0xa0, Operator: Ldy, AddressingMode: Immediate, Bytes: 2, Effect: Read},
	{OpCode: 0xa4, Operator: Ldy, AddressingMode: ZeroPage, Bytes: 2, Effect: Read},
	{OpCode: 0xb4, Operator: Ldy, AddressingMode: ZeroPageIndexedX, Bytes: 2, Effect: Read},
	{OpCode: 0xac, Operator: Ldy, AddressingMode: Absolute, Bytes: 3, Effect: Read},
	{OpCode: 0xbc, Operator: Ldy, AddressingMode: AbsoluteIndexedX, Bytes: 3, Effect: Read},
	{OpCode: 0x85, Operator: Sta, AddressingMode: ZeroPage, Bytes: 2, Effect: Write},
	{OpCode: 0x95, Operator: Sta, AddressingMode: ZeroPageIndexedX, Bytes: 2, Effect: Write},
	{OpCode: 0x8d, Operator: Sta, AddressingMode: Absolute, Bytes: 3, Effect: Write},
	{OpCode: 0x9d, Operator: Sta, AddressingMode: AbsoluteIndexedX, Bytes: 3, Effect: Write},
	{OpCode: 0x99, Operator: Sta, AddressingMode: AbsoluteIndexedY, Bytes: 3, Effect: Write},
	{OpCode: 0x86, Operator: Stx, AddressingMode: ZeroPage, Bytes: 2, Effect: Write},
	{OpCode: 0x96, Operator: Stx, AddressingMode: ZeroPageIndexedY, Bytes: 2, Effect: Write},
	{OpCode: 0x8e, Operator: Stx, AddressingMode: Absolute, Bytes: 3, Effect: Write},
	{OpCode: 0x84, Operator: Sty, AddressingMode: ZeroPage, Bytes: 2, Effect: Write},
	{OpCode: 0x94, Operator: Sty, AddressingMode: ZeroPageIndexedX, Bytes: 2, Effect: Write},
	{OpCode: 0x8c, Operator: Sty, AddressingMode: Absolute, Bytes: 3, Effect: Write},
	{OpCode: 0x38, Operator: Sec, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0xf8, Operator: Sed, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0x78, Operator: Sei, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0x18, Operator: Clc, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0xd8, Operator: Cld, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0x58, Operator: Cli, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0xb8, Operator: Clv, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0xaa, Operator: Tax, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0xa8, Operator: Tay, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0xba, Operator: Tsx, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0x8a, Operator: Txa, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0x9a, Operator: Txs, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0x98, Operator: Tya, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0xc6, Operator: Dec, AddressingMode: ZeroPage, Bytes: 2, Effect: RMW},
	{OpCode: 0xd6, Operator: Dec, AddressingMode: ZeroPageIndexedX, Bytes: 2, Effect: RMW},
	{OpCode: 0xce, Operator: Dec, AddressingMode: Absolute, Bytes: 3, Effect: RMW},
	{OpCode: 0xde, Operator: Dec, AddressingMode: AbsoluteIndexedX, Bytes: 3, Effect: RMW},
	{OpCode: 0xca, Operator: Dex, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0x88, Operator: Dey, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0xe6, Operator: Inc, AddressingMode: ZeroPage, Bytes: 2, Effect: RMW},
	{OpCode: 0xf6, Operator: Inc, AddressingMode: ZeroPageIndexedX, Bytes: 2, Effect: RMW},
	{OpCode: 0xee, Operator: Inc, AddressingMode: Absolute, Bytes: 3, Effect: RMW},
	{OpCode: 0xfe, Operator: Inc, AddressingMode: AbsoluteIndexedX, Bytes: 3, Effect: RMW},
	{OpCode: 0xe8, Operator: Inx, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0xc8, Operator: Iny, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0x48, Operator: Pha, AddressingMode: Implied, Bytes: 1, Effect: Write},
	{OpCode: 0x68, Operator: Pla, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0x08, Operator: Php, AddressingMode: Implied, Bytes: 1, Effect: Write},
	{OpCode: 0x28, Operator: Plp, AddressingMode: Implied, Bytes: 1, Effect: Read},
	{OpCode: 0x4c, Operator: Jmp, AddressingMode: Absolute, Bytes: 3, Effect: Flow},
	{OpCode: 0x6c, Operator: Jmp, AddressingMode: Indirect, Bytes: 3, Effect: Flow},
	{OpCode: 0x20, Operator: Jsr, AddressingMode: Absolute, Bytes: 3, Effect: Subroutine},
	{OpCode: 0x60, Operator: Rts, AddressingMode: Implied, Bytes: 1, Effect: Subroutine},
}
