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

package hardware_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/preferences"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/test"
)

func TestMachine(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)

	// LDA #$40; STA $FF
	err = m.Load(0x0000, []uint8{0xa9, 0x40, 0x85, 0xff})
	test.DemandSuccess(t, err)

	m.Step()
	test.ExpectEquality(t, m.CPU.A.Value(), 0x40)
	test.ExpectEquality(t, m.CPU.LastResult.Mnemonic(), "LDA_IMM")

	m.Run(1)
	test.ExpectEquality(t, m.Mem.Peek(0x00ff), 0x40)
	test.ExpectEquality(t, m.String(), "PC=0x0004 A=0x40 X=0x00 Y=0x00 SP=0x00 SR=nv-bdizc")

	// memory is untouched by reset
	m.Reset()
	test.ExpectEquality(t, m.CPU.PC.Address(), 0)
	test.ExpectEquality(t, m.CPU.A.Value(), 0)
	test.ExpectEquality(t, m.Mem.Peek(0x00ff), 0x40)
}

func TestMachineLoadOverrun(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)

	err = m.Load(0xfffe, []uint8{0x01, 0x02, 0x03})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, memory.ErrLoadOverrun))
	test.ExpectEquality(t, m.Mem.Peek(0xfffe), 0x00)

	err = m.Load(0xfffe, []uint8{0x01, 0x02})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.Mem.Peek(0xffff), 0x02)
}

func TestMachinePreferences(t *testing.T) {
	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.Apply("cpu.indirectJumpBug::true"))

	m, err := hardware.NewMachine(prefs)
	test.DemandSuccess(t, err)

	// JMP ($02FF)
	test.DemandSuccess(t, m.Load(0x0000, []uint8{0x6c, 0xff, 0x02}))
	test.DemandSuccess(t, m.Load(0x02ff, []uint8{0x34, 0x12}))
	test.DemandSuccess(t, m.Load(0x0200, []uint8{0x56}))

	m.Step()
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x5634)
}

func TestRunWithCallback(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)

	// INX * 4
	test.DemandSuccess(t, m.Load(0x0000, []uint8{0xe8, 0xe8, 0xe8, 0xe8}))

	var mnemonics []string
	err = m.RunWithCallback(3, func() error {
		mnemonics = append(mnemonics, m.CPU.LastResult.Mnemonic())
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(mnemonics), 3)
	test.ExpectEquality(t, m.CPU.X.Value(), 3)

	errStop := errors.New("stop")
	err = m.RunWithCallback(10, func() error {
		return errStop
	})
	test.ExpectSuccess(t, errors.Is(err, errStop))
	test.ExpectEquality(t, m.CPU.X.Value(), 4)
}

func TestSnapshotAndPlumb(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)

	// LDA #$01; STA $10; LDA #$02; STA $10
	test.DemandSuccess(t, m.Load(0x0000, []uint8{0xa9, 0x01, 0x85, 0x10, 0xa9, 0x02, 0x85, 0x10}))

	m.Run(2)
	state := m.Snapshot()

	m.Run(2)
	test.ExpectEquality(t, m.Mem.Peek(0x0010), 0x02)
	test.ExpectEquality(t, state.Mem.Peek(0x0010), 0x01)
	test.ExpectEquality(t, state.CPU.PC.Address(), 4)

	m.Plumb(state)
	test.ExpectEquality(t, m.CPU.PC.Address(), 4)
	test.ExpectEquality(t, m.Mem.Peek(0x0010), 0x01)

	// running the plumbed machine does not change the stored state
	m.Run(2)
	test.ExpectEquality(t, m.Mem.Peek(0x0010), 0x02)
	test.ExpectEquality(t, state.Mem.Peek(0x0010), 0x01)
	test.ExpectEquality(t, state.CPU.PC.Address(), 4)

	// copy of a state is independent
	copied := state.Snapshot()
	test.ExpectEquality(t, copied.Mem.Peek(0x0010), 0x01)
}

func TestConcurrentMachines(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	const numMachines = 4
	const numSteps = 100

	program := []uint8{0x02, 0x03, 0x04, 0x07}

	machines := make([]*hardware.Machine, numMachines)
	for i := range machines {
		prefs, err := preferences.NewPreferences()
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, prefs.Apply("cpu.logUnsupported::true"))

		machines[i], err = hardware.NewMachine(prefs)
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, machines[i].Load(0x0000, program))
	}

	// every machine logs to the central logger at the same time
	var wg sync.WaitGroup
	errs := make([]error, numMachines)
	for i, m := range machines {
		i, m := i, m
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = m.RunWithCallback(numSteps, func() error {
				if m.CPU.PC.Address() >= uint16(len(program)) {
					m.CPU.PC.Load(0x0000)
				}
				return nil
			})
		}()
	}
	wg.Wait()

	for i, m := range machines {
		test.ExpectSuccess(t, errs[i], i)
		test.ExpectEquality(t, m.CPU.Unsupported, numSteps, i)
	}

	s := &strings.Builder{}
	logger.Tail(s, 1)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "CPU: unsupported opcode "))

	s.Reset()
	logger.Write(s)
	for _, opcode := range program {
		test.ExpectSuccess(t, strings.Contains(s.String(), fmt.Sprintf("opcode %#02x", opcode)), opcode)
	}
}
