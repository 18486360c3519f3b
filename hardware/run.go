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

// Step the emulation one CPU instruction.
func (m *Machine) Step() {
	m.CPU.Step()
}

// Run exactly count instructions.
func (m *Machine) Run(count int) {
	m.CPU.Run(count)
}

// RunWithCallback runs count instructions, calling the callback function
// after each one. Execution stops at the first error returned by the
// callback and the error is returned.
func (m *Machine) RunWithCallback(count int, callback func() error) error {
	for i := 0; i < count; i++ {
		err := m.CPU.ExecuteInstruction(callback)
		if err != nil {
			return err
		}
	}
	return nil
}
