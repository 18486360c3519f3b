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

package registers

import (
	"strings"
)

// Flag is a mask for one or more bits in the status register.
type Flag uint8

// List of status flags. Bit 5 is unused. It is never forced on by the status
// register itself, see the Value() function.
const (
	Carry            Flag = 1 << 0
	Zero             Flag = 1 << 1
	InterruptDisable Flag = 1 << 2
	Decimal          Flag = 1 << 3
	Break            Flag = 1 << 4
	Unused           Flag = 1 << 5
	Overflow         Flag = 1 << 6
	Negative         Flag = 1 << 7
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
type StatusRegister struct {
	value uint8
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags in the order they appear in the register, an
// upper case letter indicating that the flag is set. Bit 5 is always shown as
// a dash.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	s.Grow(8)

	flag := func(f Flag, set rune, unset rune) {
		if sr.Has(f) {
			s.WriteRune(set)
		} else {
			s.WriteRune(unset)
		}
	}

	flag(Negative, 'N', 'n')
	flag(Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(Break, 'B', 'b')
	flag(Decimal, 'D', 'd')
	flag(InterruptDisable, 'I', 'i')
	flag(Zero, 'Z', 'z')
	flag(Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to initial state (all clear).
func (sr *StatusRegister) Reset() {
	sr.value = 0
}

// Value returns the status register as an 8 bit value.
func (sr StatusRegister) Value() uint8 {
	return sr.value
}

// Load an 8 bit value into the status register.
func (sr *StatusRegister) Load(v uint8) {
	sr.value = v
}

// Set all flags in the mask.
func (sr *StatusRegister) Set(mask Flag) {
	sr.value |= uint8(mask)
}

// Clear all flags in the mask.
func (sr *StatusRegister) Clear(mask Flag) {
	sr.value &^= uint8(mask)
}

// Assign sets the flags in the mask if the condition is true and clears them
// otherwise.
func (sr *StatusRegister) Assign(mask Flag, condition bool) {
	if condition {
		sr.Set(mask)
	} else {
		sr.Clear(mask)
	}
}

// Has returns true if any of the flags in the mask are set.
func (sr StatusRegister) Has(mask Flag) bool {
	return sr.value&uint8(mask) != 0
}

// UpdateZeroNegative sets the Zero and Negative flags according to the value.
// No other flags are affected.
func (sr *StatusRegister) UpdateZeroNegative(v uint8) {
	sr.Assign(Zero, v == 0)
	sr.Assign(Negative, v&0x80 == 0x80)
}

// Carry returns the state of the carry flag.
func (sr StatusRegister) Carry() bool {
	return sr.Has(Carry)
}

// Zero returns the state of the zero flag.
func (sr StatusRegister) Zero() bool {
	return sr.Has(Zero)
}

// InterruptDisable returns the state of the interrupt disable flag.
func (sr StatusRegister) InterruptDisable() bool {
	return sr.Has(InterruptDisable)
}

// DecimalMode returns the state of the decimal flag.
func (sr StatusRegister) DecimalMode() bool {
	return sr.Has(Decimal)
}

// Break returns the state of the break flag.
func (sr StatusRegister) Break() bool {
	return sr.Has(Break)
}

// Overflow returns the state of the overflow flag.
func (sr StatusRegister) Overflow() bool {
	return sr.Has(Overflow)
}

// Negative returns the state of the negative flag.
func (sr StatusRegister) Negative() bool {
	return sr.Has(Negative)
}
