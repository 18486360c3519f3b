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

// Operator defines which function the instruction performs.
type Operator int

// List of valid Operator values.
const (
	Nop Operator = iota

	// logical and arithmetic
	And
	Ora
	Eor
	Adc

	// loads and stores
	Lda
	Ldx
	Ldy
	Sta
	Stx
	Sty

	// flags
	Sec
	Sed
	Sei
	Clc
	Cld
	Cli
	Clv

	// transfers
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// increment and decrement
	Dec
	Dex
	Dey
	Inc
	Inx
	Iny

	// stack
	Pha
	Pla
	Php
	Plp

	// flow
	Jmp
	Jsr
	Rts

	numOperators
)

var operatorNames = [numOperators]string{
	Nop: "NOP",
	And: "AND",
	Ora: "ORA",
	Eor: "EOR",
	Adc: "ADC",
	Lda: "LDA",
	Ldx: "LDX",
	Ldy: "LDY",
	Sta: "STA",
	Stx: "STX",
	Sty: "STY",
	Sec: "SEC",
	Sed: "SED",
	Sei: "SEI",
	Clc: "CLC",
	Cld: "CLD",
	Cli: "CLI",
	Clv: "CLV",
	Tax: "TAX",
	Tay: "TAY",
	Tsx: "TSX",
	Txa: "TXA",
	Txs: "TXS",
	Tya: "TYA",
	Dec: "DEC",
	Dex: "DEX",
	Dey: "DEY",
	Inc: "INC",
	Inx: "INX",
	Iny: "INY",
	Pha: "PHA",
	Pla: "PLA",
	Php: "PHP",
	Plp: "PLP",
	Jmp: "JMP",
	Jsr: "JSR",
	Rts: "RTS",
}

func (op Operator) String() string {
	if op < 0 || op >= numOperators {
		return "???"
	}
	return operatorNames[op]
}

// IsValid returns false if the operator is outside the list of valid
// operators.
func (op Operator) IsValid() bool {
	return op >= 0 && op < numOperators
}
