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

// Package registers implements the three types of register found in the 6502:
// eight bit registers, the sixteen bit program counter and the status
// register.
//
// The eight bit Register type implements the arithmetic and logical
// operations of the ALU. The operations return the carry and overflow
// information that results but do not affect the status register. Changing the
// status register is done by the caller. For instance, we might have this
// sequence of function calls:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Set(registers.Zero, a.IsZero())
//
// In this case, the zero flag in the status register will be false.
package registers
