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

// Package instructions defines the instruction set understood by the CPU.
// Each Definition describes one opcode: the operator, the addressing mode,
// the number of bytes the instruction occupies in memory and the category of
// effect it has.
//
// The definitions are returned by GetDefinitions() as a table indexed by
// opcode. Opcodes without a definition have a nil entry. The table is checked
// for consistency before it is returned.
package instructions
