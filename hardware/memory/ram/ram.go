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

// Package ram implements a flat 64k memory that satisfies the cpubus.Memory
// interface. In addition to storing data, the RAM can record every access made
// to it, which makes it useful for examining the bus activity of the CPU on a
// cycle by cycle basis.
package ram

import (
	"fmt"
	"strings"
)

// Size of the RAM in bytes. The entire address space is mapped.
const Size = 0x10000

// Access records a single read or write on the bus.
type Access struct {
	Address uint16
	Data    uint8
	Write   bool
}

func (a Access) String() string {
	if a.Write {
		return fmt.Sprintf("%04x <- %02x", a.Address, a.Data)
	}
	return fmt.Sprintf("%04x -> %02x", a.Address, a.Data)
}

// RAM is the flat 64k memory. Use NewRAM() to initialise.
type RAM struct {
	memory []uint8

	// recording of bus activity
	recording bool
	activity  []Access
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{
		memory: make([]uint8, Size),
	}
}

func (mem *RAM) String() string {
	return mem.Dump(0x0000, 0x80)
}

// Dump returns a hex dump of length bytes starting at the origin. Each line
// of the dump contains sixteen bytes.
func (mem *RAM) Dump(origin uint16, length int) string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	a := origin &^ 0x000f
	for i := 0; i < length; i += 16 {
		s.WriteString(fmt.Sprintf("%04x |", a))
		for x := uint16(0); x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.memory[a+x]))
		}
		s.WriteString("\n")
		a += 16
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Read implements the cpubus.Memory interface.
func (mem *RAM) Read(address uint16) uint8 {
	data := mem.memory[address]
	if mem.recording {
		mem.activity = append(mem.activity, Access{Address: address, Data: data})
	}
	return data
}

// Write implements the cpubus.Memory interface.
func (mem *RAM) Write(address uint16, data uint8) {
	mem.memory[address] = data
	if mem.recording {
		mem.activity = append(mem.activity, Access{Address: address, Data: data, Write: true})
	}
}

// Peek implements the cpubus.Peeker interface. Peeking is not recorded.
func (mem *RAM) Peek(address uint16) uint8 {
	return mem.memory[address]
}

// Poke changes memory without the access being recorded.
func (mem *RAM) Poke(address uint16, data uint8) {
	mem.memory[address] = data
}

// PutInstructions writes a sequence of bytes to memory starting at the origin
// address. The sequence wraps around to the start of memory if necessary.
// Returns the address following the last byte written.
func (mem *RAM) PutInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.memory[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

// Load copies data into memory at the origin. It is an error for the data to
// extend beyond the end of memory.
func (mem *RAM) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > Size {
		return fmt.Errorf("ram: %d bytes at %#04x extends beyond end of memory", len(data), origin)
	}
	copy(mem.memory[origin:], data)
	return nil
}

// SetVector stores the address in the two bytes starting at vector, in little
// endian order.
func (mem *RAM) SetVector(vector uint16, address uint16) {
	mem.memory[vector] = uint8(address)
	mem.memory[vector+1] = uint8(address >> 8)
}

// Record turns the recording of bus activity on or off. Turning recording on
// does not clear any previously recorded activity.
func (mem *RAM) Record(on bool) {
	mem.recording = on
}

// Activity returns the bus activity recorded since the last call to
// ClearActivity().
func (mem *RAM) Activity() []Access {
	return mem.activity
}

// ClearActivity forgets all recorded bus activity.
func (mem *RAM) ClearActivity() {
	mem.activity = mem.activity[:0]
}

// LastAccess returns the most recent access on the bus. Returns false if there
// has been no recorded access.
func (mem *RAM) LastAccess() (Access, bool) {
	if len(mem.activity) == 0 {
		return Access{}, false
	}
	return mem.activity[len(mem.activity)-1], true
}
