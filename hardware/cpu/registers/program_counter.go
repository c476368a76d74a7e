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
	"fmt"
)

// ProgramCounter represents the PC register in the 6502 CPU.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for ProgramCounter.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns an identifying string for the PC
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.value)
}

// Address returns the current value of the PC as a a value of type uint16
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Load a value into the PC
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Add a value to the PC. Returns true if the addition wrapped around the top
// of memory.
func (pc *ProgramCounter) Add(val uint16) (carry bool) {
	v := pc.value
	pc.value += val
	return pc.value < v
}

// Low returns the low byte of the PC.
func (pc ProgramCounter) Low() uint8 {
	return uint8(pc.value)
}

// High returns the high byte of the PC.
func (pc ProgramCounter) High() uint8 {
	return uint8(pc.value >> 8)
}

// LoadLow changes the low byte of the PC, leaving the high byte unchanged.
func (pc *ProgramCounter) LoadLow(val uint8) {
	pc.value = (pc.value & 0xff00) | uint16(val)
}

// LoadHigh changes the high byte of the PC, leaving the low byte unchanged.
func (pc *ProgramCounter) LoadHigh(val uint8) {
	pc.value = (pc.value & 0x00ff) | (uint16(val) << 8)
}
