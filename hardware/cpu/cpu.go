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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/hardware/preferences"
)

// CPU implements the 6502. Register logic is implemented by the types in the
// registers sub-package.
type CPU struct {
	prefs *preferences.Preferences

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem   cpubus.Memory
	table [256]handler

	// last result. reset at the start of every instruction
	LastResult execution.Result

	// the number of unsupported opcodes encountered since the last reset
	Unsupported int

	// called whenever an unsupported opcode is encountered. the address is
	// the address of the opcode
	OnUnsupported func(opcode uint8, address uint16)
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// prefs argument can be nil, in which case the CPU uses default behaviour.
//
// The CPU is returned in the reset state.
func NewCPU(prefs *preferences.Preferences, mem cpubus.Memory) (*CPU, error) {
	defns, err := instructions.GetDefinitions()
	if err != nil {
		return nil, fmt.Errorf("cpu: %w", err)
	}

	mc := &CPU{
		prefs:  prefs,
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(0),
		Status: registers.NewStatusRegister(),
		acc8:   registers.NewRegister(0, "accumulator"),
		table:  newDispatchTable(defns),
	}

	return mc, nil
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset sets all registers to zero. Memory is not touched. Calling Reset()
// more than once has no additional effect.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Unsupported = 0

	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0)
	mc.Status.Reset()
	mc.acc8.Load(0)

	// not touching OnUnsupported
}

// AllowLogging implements the logger.Permission interface.
func (mc *CPU) AllowLogging() bool {
	return mc.prefs != nil && mc.prefs.LogUnsupported.Get().(bool)
}

func (mc *CPU) indirectJumpBug() bool {
	return mc.prefs != nil && mc.prefs.IndirectJumpBug.Get().(bool)
}

// Step executes exactly one instruction. The LastResult field is updated.
func (mc *CPU) Step() {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode := mc.read8BitPC(newOpcode)
	mc.table[opcode](mc)

	mc.LastResult.Final = true
}

// Run executes count instructions. A count of zero or less does nothing.
func (mc *CPU) Run(count int) {
	for i := 0; i < count; i++ {
		mc.Step()
	}
}

// ExecuteInstruction steps the CPU forward one instruction and then calls
// the callback function. The only error returned is the error returned by
// the callback.
func (mc *CPU) ExecuteInstruction(callback func() error) error {
	mc.Step()
	if callback == nil {
		return nil
	}
	return callback()
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	newOpcode read8BitPCeffect = iota
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	switch effect {
	case newOpcode:
		mc.LastResult.OpCode = v
	case loNibble:
		mc.LastResult.InstructionData = uint16(v)
	case hiNibble:
		mc.LastResult.InstructionData |= uint16(v) << 8
	}

	return v
}

// read16BitPC reads 16 bits from the memory location pointed to by PC. the
// low byte is read first.
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - updates LastResult.InstructionData
func (mc *CPU) read16BitPC() uint16 {
	mc.read8BitPC(loNibble)
	mc.read8BitPC(hiNibble)
	return mc.LastResult.InstructionData
}

// read16Bit returns the 16bit value at the specified address. the low byte is
// at address and the high byte at address+1
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// write8Bit writes 8 bits to the specified address and records the value in
// LastResult.
func (mc *CPU) write8Bit(address uint16, value uint8) {
	mc.LastResult.Value = value
	mc.mem.Write(address, value)
}

// push a value onto the stack. the stack pointer is decremented after the
// write.
func (mc *CPU) push(value uint8) {
	mc.write8Bit(mc.SP.Address(), value)
	mc.SP.Push()
}

// pull a value from the stack. the stack pointer is incremented before the
// read.
func (mc *CPU) pull() uint8 {
	mc.SP.Pull()
	v := mc.mem.Read(mc.SP.Address())
	mc.LastResult.Value = v
	return v
}
