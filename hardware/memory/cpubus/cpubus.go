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

// Package cpubus defines the interfaces through which the CPU and the
// debugging tools access memory.
//
// The Memory interface is used by the CPU. Every address on the 16 bit
// address bus is valid so there are no error returns.
//
// The DebugBus interface allows a debugger to look at and alter memory
// without affecting the last-read/last-write instrumentation of the memory
// implementation.
package cpubus

// Memory defines the operations for the memory system when accessed from
// the CPU.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// DebugBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the
// normal operation of the machine.
type DebugBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)
}

// Instrumented is implemented by memory that records the most recent
// addresses accessed by the CPU.
type Instrumented interface {
	LastRead() uint16
	LastWrite() uint16
}
