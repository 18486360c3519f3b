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

package tracer_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/test"
	"github.com/jetsetilly/gopher6502/tracer"
)

func TestTracer(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)

	// LDX #$0F; LDA $80,X; NOP; unsupported
	test.DemandSuccess(t, m.Load(0x0000, []uint8{0xa2, 0x0f, 0xb5, 0x80, 0xea, 0xff}))
	test.DemandSuccess(t, m.Load(0x008f, []uint8{0x80}))

	s := &strings.Builder{}
	tr := tracer.NewTracer(s)

	err = m.RunWithCallback(4, tr.Callback(m.CPU))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tr.Count(), 4)

	lines := strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n")
	test.DemandEquality(t, len(lines), 4)

	test.ExpectEquality(t, lines[0], "[LDX_IMM ] 0x0001 ( 15) PC=0x0002 SP=0x00 A=0x00 X=0x0f Y=0x00 SR=nv-bdizc")
	test.ExpectEquality(t, lines[1], "[LDA_ZPX ] 0x008f (128) PC=0x0004 SP=0x00 A=0x80 X=0x0f Y=0x00 SR=Nv-bdizc")
	test.ExpectEquality(t, lines[2], "[NOP     ] 0x0000 (  0) PC=0x0005 SP=0x00 A=0x80 X=0x0f Y=0x00 SR=Nv-bdizc")
	test.ExpectEquality(t, lines[3], "[???     ] 0x0000 (  0) PC=0x0006 SP=0x00 A=0x80 X=0x0f Y=0x00 SR=Nv-bdizc")
}

func TestGraph(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, m.Load(0x0000, []uint8{0xa9, 0x42}))
	m.Step()

	s := &strings.Builder{}
	tracer.Graph(s, m.CPU)
	test.ExpectSuccess(t, strings.Contains(s.String(), "digraph"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "LastResult"))
}
