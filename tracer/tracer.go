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
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/mattn/go-runewidth"
)

// width of the mnemonic column
const mnemonicWidth = 8

// Tracer writes one line to the io.Writer for every call to Trace().
type Tracer struct {
	w io.Writer

	// number of lines written
	count int
}

// NewTracer is the preferred method of initialisation for the Tracer type.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

// Count returns the number of lines written by the tracer.
func (tr *Tracer) Count() int {
	return tr.count
}

// Trace writes the most recent execution result of the CPU and the current
// state of the registers.
func (tr *Tracer) Trace(mc *cpu.CPU) error {
	r := mc.LastResult

	mnemonic := runewidth.Truncate(r.Mnemonic(), mnemonicWidth, "")
	mnemonic = runewidth.FillRight(mnemonic, mnemonicWidth)

	_, err := fmt.Fprintf(tr.w, "[%s] %#04x (%3d) PC=%s SP=%s A=%s X=%s Y=%s SR=%s\n",
		mnemonic, r.EffectiveAddress, r.Value,
		mc.PC, mc.SP, mc.A, mc.X, mc.Y, mc.Status)
	if err != nil {
		return fmt.Errorf("tracer: %w", err)
	}

	tr.count++

	return nil
}

// Callback returns a function that calls Trace() for the CPU.
func (tr *Tracer) Callback(mc *cpu.CPU) func() error {
	return func() error {
		return tr.Trace(mc)
	}
}
