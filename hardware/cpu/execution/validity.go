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

package execution

import (
	"errors"
	"fmt"
)

// ErrInvalidResult is wrapped by errors returned by IsValid().
var ErrInvalidResult = errors.New("cpu: invalid result")

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("%w: execution not finalised", ErrInvalidResult)
	}

	if r.Unsupported {
		if r.Defn != nil {
			return fmt.Errorf("%w: unsupported opcode %#02x has a definition", ErrInvalidResult, r.OpCode)
		}
		if r.ByteCount != 1 {
			return fmt.Errorf("%w: unsupported opcode %#02x read %d bytes", ErrInvalidResult, r.OpCode, r.ByteCount)
		}
		return nil
	}

	if r.Defn == nil {
		return fmt.Errorf("%w: no definition for opcode %#02x", ErrInvalidResult, r.OpCode)
	}

	if r.Defn.OpCode != r.OpCode {
		return fmt.Errorf("%w: definition for %#02x used for opcode %#02x", ErrInvalidResult, r.Defn.OpCode, r.OpCode)
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("%w: unexpected number of bytes read during decode (%d instead of %d)", ErrInvalidResult, r.ByteCount, r.Defn.Bytes)
	}

	return nil
}
