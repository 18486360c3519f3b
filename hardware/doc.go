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

// Package hardware is the base package for the 6502 machine emulation. It
// and its sub-packages contain everything required for an emulation of a
// simple 6502 system: a CPU connected to 64KB of RAM.
//
// The Machine type is the entry point. A program is placed in memory with
// Load() and executed with Step() or Run():
//
//	m, _ := hardware.NewMachine(nil)
//	_ = m.Load(0x0000, []uint8{0xa9, 0x40, 0x85, 0xff})
//	m.Run(2)
//
// The state of the machine can be saved with Snapshot() and restored with
// Plumb().
package hardware
