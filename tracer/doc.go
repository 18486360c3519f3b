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

// Package tracer produces a debugging trace of CPU execution. It formats the
// information recorded by the CPU in its LastResult field, along with the
// current register values, into a single line per instruction.
//
// The Callback() function returns a function suitable for use with
// hardware.Machine.RunWithCallback():
//
//	tr := tracer.NewTracer(os.Stdout)
//	err := m.RunWithCallback(100, tr.Callback(m.CPU))
//
// The Graph() function writes a graphviz description of the CPU state.
package tracer
