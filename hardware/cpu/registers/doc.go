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

// Package registers implements the register types found in the 6502: the 16
// bit program counter, the 8 bit stack pointer, the 8 bit status register and
// the 8 bit type used for A, X and Y.
//
// All arithmetic wraps silently at the width of the register. No register
// ever holds a value that doesn't fit.
//
// The status register is a single byte with a named mask for each flag.
// Flags are set and cleared with the Set() and Clear() functions, which take
// any combination of masks:
//
//	sr.Set(registers.Carry | registers.Decimal)
//	sr.Clear(registers.Carry)
//
// The UpdateZeroNegative() function is used after every load, transfer,
// increment and decrement:
//
//	a.Load(10)
//	sr.UpdateZeroNegative(a.Value())
package registers
