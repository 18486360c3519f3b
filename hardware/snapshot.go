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
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
)

// State stores the Machine sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	CPU *cpu.CPU
	Mem *memory.RAM
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	return &State{
		CPU: s.CPU.Snapshot(),
		Mem: s.Mem.Snapshot(),
	}
}

// Snapshot the state of the Machine sub-systems.
func (m *Machine) Snapshot() *State {
	return &State{
		CPU: m.CPU.Snapshot(),
		Mem: m.Mem.Snapshot(),
	}
}

// Plumb a previously snapshotted system.
func (m *Machine) Plumb(state *State) {
	if state == nil {
		panic("machine: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// machine to change what we have stored in our state
	m.CPU = state.CPU.Snapshot()
	m.Mem = state.Mem.Snapshot()

	m.CPU.Plumb(m.Mem)
}
