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

// Package cpu emulates the execution core of the 6502 microprocessor. It
// does not emulate cycle timing or interrupts. Every call to Step() executes
// exactly one instruction to completion.
//
// The CPU decodes instructions with a dispatch table of 256 handlers, one for
// every possible opcode. The table is built by NewCPU() from the definitions
// in the instructions package. Opcodes without a definition are dispatched to
// a handler that has no effect beyond counting and reporting the opcode. This
// means that execution can never fail, whatever the contents of memory.
//
// Memory is accessed through the cpubus.Memory interface:
//
//	ram := memory.NewRAM()
//	mc, err := cpu.NewCPU(prefs, ram)
//
// After every instruction the LastResult field records what happened. The
// information there is enough to produce a debugging trace. See the tracer
// package.
package cpu
