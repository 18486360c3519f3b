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

package cpu_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/preferences"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/test"
)

func TestReset(t *testing.T) {
	mc, mem := newCPU(t, nil)

	mc.PC.Load(0x1234)
	mc.A.Load(1)
	mc.X.Load(2)
	mc.Y.Load(3)
	mc.SP.Load(4)
	mc.Status.Load(0xff)
	mem.Poke(0x0010, 0x99)

	mc.Reset()
	once := mc.String()
	test.ExpectEquality(t, once, "PC=0x0000 A=0x00 X=0x00 Y=0x00 SP=0x00 SR=nv-bdizc")

	mc.Reset()
	test.ExpectEquality(t, mc.String(), once)
	test.ExpectEquality(t, mc.Status.Value(), 0)

	// memory is not touched
	mem.assert(t, 0x0010, 0x99)
}

func TestDispatchTotality(t *testing.T) {
	mc, mem := newCPU(t, nil)

	for opcode := 0; opcode <= 0xff; opcode++ {
		mem.Reset()
		mc.Reset()
		mem.putInstructions(0, uint8(opcode))

		r := step(t, mc)
		test.ExpectEquality(t, int(r.OpCode), opcode)
		test.ExpectEquality(t, r.Address, 0x0000)

		if r.Unsupported {
			test.ExpectEquality(t, mc.String(), "PC=0x0001 A=0x00 X=0x00 Y=0x00 SP=0x00 SR=nv-bdizc", opcode)
			test.ExpectEquality(t, r.Mnemonic(), "???", opcode)
			test.ExpectEquality(t, mc.Unsupported, 1, opcode)
		} else {
			test.ExpectInequality(t, r.Mnemonic(), "???", opcode)
		}
	}
}

func TestUnsupported(t *testing.T) {
	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	mc, mem := newCPU(t, prefs)

	var opcodes []uint8
	var addresses []uint16
	mc.OnUnsupported = func(opcode uint8, address uint16) {
		opcodes = append(opcodes, opcode)
		addresses = append(addresses, address)
	}

	logger.Clear()
	defer logger.Clear()

	// 0x02 is not logged because logging is not allowed by default
	mem.putInstructions(0x0010, 0x02, 0xea, 0xff)
	mc.PC.Load(0x0010)
	mc.A.Load(0x55)
	mc.Status.Load(0x81)

	r := step(t, mc)
	test.ExpectEquality(t, r.Unsupported, true)
	test.ExpectEquality(t, r.Defn == nil, true)
	test.ExpectEquality(t, r.ByteCount, 1)
	test.ExpectEquality(t, mc.PC.Address(), 0x0011)
	test.ExpectEquality(t, mc.A.Value(), 0x55)
	test.ExpectEquality(t, mc.Status.Value(), 0x81)

	step(t, mc)

	test.DemandSuccess(t, prefs.LogUnsupported.Set(true))
	step(t, mc)

	test.ExpectEquality(t, mc.Unsupported, 2)
	test.DemandEquality(t, len(opcodes), 2)
	test.ExpectEquality(t, opcodes[0], 0x02)
	test.ExpectEquality(t, addresses[0], 0x0010)
	test.ExpectEquality(t, opcodes[1], 0xff)
	test.ExpectEquality(t, addresses[1], 0x0012)

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "CPU: unsupported opcode 0xff at 0x0012\n")

	mc.Reset()
	test.ExpectEquality(t, mc.Unsupported, 0)
}

func TestUnsupportedWithoutLogging(t *testing.T) {
	if raceEnabled {
		t.Skip("allocation counts are not reliable with the race detector")
	}

	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	mc, mem := newCPU(t, prefs)
	mem.putInstructions(0x0000, 0x02)

	// an unsupported opcode with logging disabled should not allocate
	allocs := testing.AllocsPerRun(100, func() {
		mc.PC.Load(0x0000)
		mc.Step()
	})
	test.ExpectEquality(t, allocs, 0.0)
	test.ExpectEquality(t, mc.LastResult.Unsupported, true)
}

func TestRunAndCallback(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// INX * 5
	mem.putInstructions(0, 0xe8, 0xe8, 0xe8, 0xe8, 0xe8)

	mc.Run(0)
	test.ExpectEquality(t, mc.PC.Address(), 0)

	mc.Run(2)
	test.ExpectEquality(t, mc.X.Value(), 2)

	var count int
	err := mc.ExecuteInstruction(func() error {
		count++
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, count, 1)
	test.ExpectEquality(t, mc.X.Value(), 3)

	errTest := errors.New("test error")
	err = mc.ExecuteInstruction(func() error {
		return errTest
	})
	test.ExpectSuccess(t, errors.Is(err, errTest))

	// the instruction completed even though the callback failed
	test.ExpectEquality(t, mc.X.Value(), 4)
	test.ExpectEquality(t, mc.LastResult.Final, true)
}

func TestSnapshot(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// LDA #$01; LDA #$02
	mem.putInstructions(0, 0xa9, 0x01, 0xa9, 0x02)
	step(t, mc)

	snapshot := mc.Snapshot()
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 2)
	test.ExpectEquality(t, snapshot.A.Value(), 1)

	// the snapshot can continue independently
	step(t, snapshot)
	test.ExpectEquality(t, snapshot.A.Value(), 2)
	test.ExpectEquality(t, snapshot.PC.Address(), 4)
	test.ExpectEquality(t, mc.PC.Address(), 4)

	// plumbing a new memory
	other := newMockMem()
	other.putInstructions(4, 0xa9, 0x03)
	snapshot.Plumb(other)
	step(t, snapshot)
	test.ExpectEquality(t, snapshot.A.Value(), 3)
}

func TestNewCPUWithoutPreferences(t *testing.T) {
	_, err := cpu.NewCPU(nil, newMockMem())
	test.ExpectSuccess(t, err)
}
