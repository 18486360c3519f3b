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

package tracer

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
)

// graphState is the part of the CPU that is included in the graph. the
// dispatch table and the memory are not included.
type graphState struct {
	PC     uint16
	SP     uint8
	A      uint8
	X      uint8
	Y      uint8
	Status string

	Unsupported int
	LastResult  execution.Result
}

// Graph writes a graphviz (dot) description of the CPU registers and the
// most recent execution result.
func Graph(w io.Writer, mc *cpu.CPU) {
	state := &graphState{
		PC:          mc.PC.Address(),
		SP:          mc.SP.Value(),
		A:           mc.A.Value(),
		X:           mc.X.Value(),
		Y:           mc.Y.Value(),
		Status:      mc.Status.String(),
		Unsupported: mc.Unsupported,
		LastResult:  mc.LastResult,
	}
	memviz.Map(w, state)
}
