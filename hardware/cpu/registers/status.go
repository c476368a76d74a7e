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

package registers

import (
	"strings"
)

// Flag identifies a single bit in the status register.
type Flag uint8

// List of valid flags. The unused bit (bit 5) is not a Flag and cannot be
// changed.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	InterruptDisable Flag = 0x04
	DecimalMode      Flag = 0x08
	Break            Flag = 0x10
	Overflow         Flag = 0x40
	Negative         Flag = 0x80
)

// the unused bit in the status register is always 1
const unusedBit = 0x20

// PowerOnStatus is the value of the status register when the CPU is first
// created.
const PowerOnStatus = 0x22

// Flags lists every Flag in bit order, from the most significant bit.
var Flags = []Flag{Negative, Overflow, Break, DecimalMode, InterruptDisable, Zero, Carry}

func (f Flag) String() string {
	switch f {
	case Carry:
		return "Carry"
	case Zero:
		return "Zero"
	case InterruptDisable:
		return "InterruptDisable"
	case DecimalMode:
		return "DecimalMode"
	case Break:
		return "Break"
	case Overflow:
		return "Overflow"
	case Negative:
		return "Negative"
	}
	return "unknown flag"
}

// symbol returns the single character used to represent the flag when it is
// set. the character is lowercased when the flag is not set.
func (f Flag) symbol() rune {
	switch f {
	case Carry:
		return 'C'
	case Zero:
		return 'Z'
	case InterruptDisable:
		return 'I'
	case DecimalMode:
		return 'D'
	case Break:
		return 'B'
	case Overflow:
		return 'V'
	case Negative:
		return 'N'
	}
	return '?'
}

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	value uint8
}

// NewStatusRegister is the preferred method of initialisation for the status
// register. The register is initialised with the PowerOnStatus value.
func NewStatusRegister() StatusRegister {
	return StatusRegister{value: PowerOnStatus}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags in the form "nv-bdizc". Uppercase letters indicate
// that the flag is set.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	for i, f := range Flags {
		if i == 2 {
			s.WriteRune('-')
		}
		r := f.symbol()
		if !sr.IsSet(f) {
			r += 'a' - 'A'
		}
		s.WriteRune(r)
	}
	return s.String()
}

// IsSet returns true if the flag is set.
func (sr StatusRegister) IsSet(f Flag) bool {
	return sr.value&uint8(f) == uint8(f)
}

// Set changes the state of a single flag. All other bits are preserved.
func (sr *StatusRegister) Set(f Flag, v bool) {
	// bit 5 can never be changed with this function, even if the caller
	// manages to construct a Flag value containing it
	m := uint8(f) &^ unusedBit
	if v {
		sr.value |= m
	} else {
		sr.value &^= m
	}
}

// Value returns the status register as an eight bit value. The unused bit is
// always set.
func (sr StatusRegister) Value() uint8 {
	return sr.value | unusedBit
}

// Load sets every flag from an eight bit value. The unused bit is ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.value = v | unusedBit
}

// Pull is like Load but for a value pulled from the stack. The break flag is
// not a real bit in the register and the value in v is ignored.
func (sr *StatusRegister) Pull(v uint8) {
	brk := sr.value & uint8(Break)
	sr.value = (v &^ uint8(Break)) | brk | unusedBit
}

// Push returns the value to push onto the stack. The break bit of the pushed
// value is set or cleared according to the argument.
func (sr StatusRegister) Push(brk bool) uint8 {
	v := sr.Value() &^ uint8(Break)
	if brk {
		v |= uint8(Break)
	}
	return v
}
