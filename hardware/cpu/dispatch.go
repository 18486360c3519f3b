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
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/logger"
)

// handler executes a single instruction. the opcode has already been fetched
// and the PC points to the first operand byte, if any.
type handler func(mc *CPU)

// newDispatchTable creates a handler for every possible opcode. entries in
// the definitions list that are nil are given the unsupported handler.
func newDispatchTable(defns []*instructions.Definition) [256]handler {
	var tbl [256]handler

	for opcode := range tbl {
		tbl[opcode] = unsupported

		if opcode >= len(defns) || defns[opcode] == nil {
			continue
		}

		if h := newHandler(defns[opcode]); h != nil {
			tbl[opcode] = h
		}
	}

	return tbl
}

// newHandler combines the addressing mode and the operator of a definition
// into a single handler. returns nil if either part is not recognised.
func newHandler(defn *instructions.Definition) handler {
	resolve := addressing(defn.AddressingMode)
	if resolve == nil {
		return nil
	}

	op := operation(defn.Operator)
	if op == nil {
		return nil
	}

	return func(mc *CPU) {
		mc.LastResult.Defn = defn

		address := resolve(mc)
		mc.LastResult.EffectiveAddress = address

		// read value from memory using address found by the addressing mode
		// only when the instruction is 'Read' or 'RMW'. for implied mode there
		// is no value and for immediate mode the value has already been read
		var value uint8
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			switch defn.AddressingMode {
			case instructions.Implied:
			case instructions.Immediate:
				value = uint8(mc.LastResult.InstructionData)
				mc.LastResult.Value = value
			default:
				value = mc.mem.Read(address)
				mc.LastResult.Value = value
			}
		}

		op(mc, address, value)
	}
}

// unsupported is the handler for every opcode that has no definition. other
// than the opcode fetch, which has already happened, no state is changed.
func unsupported(mc *CPU) {
	opcode := mc.LastResult.OpCode
	address := mc.PC.Address() - 1

	mc.LastResult.Unsupported = true
	mc.Unsupported++

	if mc.AllowLogging() {
		logger.Logf(mc, "CPU", "unsupported opcode %#02x at %#04x", opcode, address)
	}

	if mc.OnUnsupported != nil {
		mc.OnUnsupported(opcode, address)
	}
}
