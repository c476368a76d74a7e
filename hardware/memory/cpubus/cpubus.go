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

// Package cpubus defines the interface between the CPU and the memory system.
// The CPU only ever sees the memory system through the Memory interface.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Both operations are total: every address returns or accepts a byte,
// even for unmapped areas. What an unmapped read returns is the concern of
// the implementation and not the CPU.
//
// Read and Write are synchronous and complete within the cycle in which they
// are called. The CPU never retries or validates the result of a Read.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Peeker is implemented by memory that can be read without any side effects.
// Used by tooling that needs to inspect memory without affecting the
// emulation.
type Peeker interface {
	Peek(address uint16) uint8
}
