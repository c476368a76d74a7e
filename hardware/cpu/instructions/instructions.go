// This file is part of microcode6502.
//
// microcode6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// microcode6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with microcode6502.  If not, see <https://www.gnu.org/licenses/>.

// Package instructions defines the documented 6502 instruction set. The
// Definition type describes an instruction's operator, addressing mode, size
// and documented cycle count.
//
// The definitions table is generated from the instructions.csv file in the
// generator sub-directory. Use "go generate" to recreate it.
package instructions

//go:generate go run ./generator

import (
	"fmt"
)

// AddressingMode is the rule by which the address of an instruction's operand
// is formed.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Immediate
	Relative

	Absolute
	ZeroPage
	Indirect

	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y

	AbsoluteIndexedX
	AbsoluteIndexedY

	ZeroPageIndexedX
	ZeroPageIndexedY

	NumAddressingModes
)

var addressingModeNames = [NumAddressingModes]string{
	"Implied", "Immediate", "Relative",
	"Absolute", "ZeroPage", "Indirect",
	"IndexedIndirect", "IndirectIndexed",
	"AbsoluteIndexedX", "AbsoluteIndexedY",
	"ZeroPageIndexedX", "ZeroPageIndexedY",
}

func (m AddressingMode) String() string {
	if m < 0 || m >= NumAddressingModes {
		return "unknown addressing mode"
	}
	return addressingModeNames[m]
}

// EffectCategory describes what an instruction does with its operand.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// branches and JMP. branches have the Relative addressing mode
	Flow

	Subroutine
	Interrupt

	NumEffectCategories
)

var effectNames = [NumEffectCategories]string{
	"Read", "Write", "RMW", "Flow", "Subroutine", "Interrupt",
}

func (e EffectCategory) String() string {
	if e < 0 || e >= NumEffectCategories {
		return "unknown effect"
	}
	return effectNames[e]
}

// Definition of a documented instruction. There is one definition for every
// combination of operator and addressing mode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
}

func (defn Definition) String() string {
	sens := ""
	if defn.PageSensitive {
		sens = "*"
	}
	return fmt.Sprintf("%#02x %s %s (%d bytes, %d%s cycles, %s)",
		defn.OpCode, defn.Operator, defn.AddressingMode, defn.Bytes, defn.Cycles, sens, defn.Effect)
}

// IsBranch returns true if the instruction is a conditional branch.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// Lookup returns the definition for the opcode. Returns nil if the opcode is
// not a documented instruction.
func Lookup(opcode uint8) *Definition {
	return definitions[opcode]
}

// Definitions returns every documented instruction in opcode order.
func Definitions() []*Definition {
	d := make([]*Definition, 0, len(definitions))
	for _, defn := range definitions {
		if defn != nil {
			d = append(d, defn)
		}
	}
	return d
}

// Find returns the definition with the operator and addressing mode. Returns
// false if there is no such instruction.
func Find(op Operator, mode AddressingMode) (*Definition, bool) {
	for _, defn := range definitions {
		if defn != nil && defn.Operator == op && defn.AddressingMode == mode {
			return defn, true
		}
	}
	return nil, false
}
