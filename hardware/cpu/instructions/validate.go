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

package instructions

import (
	"errors"
	"fmt"
)

// ErrInvalidDefinition is returned by Validate() when an instruction
// definition is inconsistent.
var ErrInvalidDefinition = errors.New("instructions: invalid definition")

// Validate checks a list of definitions for consistency. Opcodes must be
// unique, operators must be valid and the byte count must agree with the
// addressing mode.
func Validate(defns []Definition) error {
	var seen [256]bool

	for _, defn := range defns {
		if seen[defn.OpCode] {
			return fmt.Errorf("%w: duplicate opcode %#02x", ErrInvalidDefinition, defn.OpCode)
		}
		seen[defn.OpCode] = true

		if !defn.Operator.IsValid() {
			return fmt.Errorf("%w: unknown operator for opcode %#02x", ErrInvalidDefinition, defn.OpCode)
		}

		if defn.Bytes != defn.AddressingMode.Bytes() {
			return fmt.Errorf("%w: opcode %#02x [%s] has %d bytes, addressing mode requires %d",
				ErrInvalidDefinition, defn.OpCode, defn.Name(), defn.Bytes, defn.AddressingMode.Bytes())
		}

		// immediate values cannot be written to
		if defn.AddressingMode == Immediate && defn.Effect != Read {
			return fmt.Errorf("%w: opcode %#02x [%s] writes to an immediate value", ErrInvalidDefinition, defn.OpCode, defn.Name())
		}
	}

	return nil
}

// GetDefinitions returns the table of instruction definitions indexed by
// opcode. Undefined opcodes have a nil entry.
func GetDefinitions() ([]*Definition, error) {
	err := Validate(definitions)
	if err != nil {
		return nil, err
	}

	tbl := make([]*Definition, 256)
	for i := range definitions {
		defn := definitions[i]
		tbl[defn.OpCode] = &defn
	}

	return tbl, nil
}
