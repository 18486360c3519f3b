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

// Package memory implements the flat 64KB address space of the 6502.
//
// The RAM type satisfies the cpubus.Memory interface used by the CPU and the
// cpubus.DebugBus interface used by debuggers and tests. RAM also records the
// address of the most recent read and the most recent write made through the
// Memory interface. This is for the benefit of tests and debuggers and has no
// effect on the emulation.
//
// Programs are placed in memory with the Load() function or with repeated
// calls to Write(). RAM does not define a file format.
package memory
