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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/preferences"
)

// Machine is the root of the emulated hardware. One CPU with its own RAM.
type Machine struct {
	Prefs *preferences.Preferences

	CPU *cpu.CPU
	Mem *memory.RAM
}

// NewMachine creates a new Machine and everything associated with the
// hardware. If prefs is nil then a new instance of the default preferences is
// used.
func NewMachine(prefs *preferences.Preferences) (*Machine, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
	}

	m := &Machine{
		Prefs: prefs,
		Mem:   memory.NewRAM(),
	}

	m.CPU, err = cpu.NewCPU(m.Prefs, m.Mem)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Load data into memory at the origin address. Nothing is loaded if the data
// does not fit.
func (m *Machine) Load(origin uint16, data []uint8) error {
	err := m.Mem.Load(origin, data)
	if err != nil {
		return fmt.Errorf("machine: %w", err)
	}
	return nil
}

// Reset the CPU registers. Memory is not affected.
func (m *Machine) Reset() {
	m.CPU.Reset()
}
