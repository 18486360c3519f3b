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

import "fmt"

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Immediate

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	}
	return "unknown addressing mode"
}

// Abbreviation returns the short form of the addressing mode used when naming
// an instruction. Implied addressing has no abbreviation.
func (m AddressingMode) Abbreviation() string {
	switch m {
	case Immediate:
		return "IMM"
	case Absolute:
		return "ABS"
	case ZeroPage:
		return "ZP"
	case Indirect:
		return "IND"
	case AbsoluteIndexedX:
		return "ABSX"
	case AbsoluteIndexedY:
		return "ABSY"
	case ZeroPageIndexedX:
		return "ZPX"
	case ZeroPageIndexedY:
		return "ZPY"
	}
	return ""
}

// Bytes returns the number of bytes used by an instruction with the
// addressing mode, including the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied:
		return 1
	case Immediate, ZeroPage, ZeroPageIndexedX, ZeroPageIndexedY:
		return 2
	case Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY:
		return 3
	}
	return 0
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// flow consists of the JMP instructions
	Flow

	Subroutine
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Bytes          int
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes [mode=%s effect=%s]", defn.OpCode, defn.Operator, defn.Bytes, defn.AddressingMode, defn.Effect)
}

// Name returns the operator and addressing mode abbreviation joined by an
// underscore. For example, LDA_ZPX. Instructions with implied addressing are
// named by the operator alone.
func (defn Definition) Name() string {
	abbrev := defn.AddressingMode.Abbreviation()
	if abbrev == "" {
		return defn.Operator.String()
	}
	return fmt.Sprintf("%s_%s", defn.Operator, abbrev)
}
