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

package memory

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Size of the address space.
const Size = 0x10000

// ErrLoadOverrun is returned by Load() when the data would extend past the
// top of memory.
var ErrLoadOverrun = errors.New("memory: load overruns top of memory")

// RAM is the entire 64KB address space of the 6502.
type RAM struct {
	RAM [Size]uint8

	lastRead  uint16
	lastWrite uint16
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	return &n
}

// Reset sets every byte of memory to zero. The last read and last write
// addresses are also reset.
func (ram *RAM) Reset() {
	clear(ram.RAM[:])
	ram.lastRead = 0
	ram.lastWrite = 0
}

// String returns a hex dump of the zero page and the stack page.
func (ram *RAM) String() string {
	return hex.Dump(ram.RAM[:0x0200])
}

// Read implements the cpubus.Memory interface.
func (ram *RAM) Read(address uint16) uint8 {
	ram.lastRead = address
	return ram.RAM[address]
}

// Write implements the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.lastWrite = address
	ram.RAM[address] = data
}

// Peek implements the cpubus.DebugBus interface.
func (ram *RAM) Peek(address uint16) uint8 {
	return ram.RAM[address]
}

// Poke implements the cpubus.DebugBus interface.
func (ram *RAM) Poke(address uint16, value uint8) {
	ram.RAM[address] = value
}

// LastRead implements the cpubus.Instrumented interface.
func (ram *RAM) LastRead() uint16 {
	return ram.lastRead
}

// LastWrite implements the cpubus.Instrumented interface.
func (ram *RAM) LastWrite() uint16 {
	return ram.lastWrite
}

// Load copies data into memory starting at the origin address. The data is
// written with Write() so that the last write address is the address of the
// final byte. Nothing is written if the data would extend past the top of
// memory.
func (ram *RAM) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > Size {
		return fmt.Errorf("%w: %d bytes at %#04x", ErrLoadOverrun, len(data), origin)
	}
	for i, b := range data {
		ram.Write(origin+uint16(i), b)
	}
	return nil
}
