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

package execution

// Bug identifies a known 6502 bug that was triggered by an instruction. The
// emulation reproduces the bugs. The Bug field of the Result notes that it
// happened.
type Bug string

// List of known bugs.
const (
	NoBug Bug = ""

	// the high byte of a JMP indirect address is read from the start of the
	// same page when the pointer is at the end of a page
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// the pointer for (zp,X) addressing wraps around within the zero page
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"

	// the pointer for (zp),Y addressing wraps around within the zero page when
	// the high byte of the address is read
	IndirectIndexedAddressingBug Bug = "indirect indexed addressing bug"

	// zp,X and zp,Y addressing wraps around within the zero page
	ZeroPageIndexBug Bug = "zero page index bug"
)
