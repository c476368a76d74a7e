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

// Package disassembly creates human readable representations of 6502
// instructions. Instructions can be decoded directly from memory with
// Decode() and Linear(), or formatted from the execution result of the CPU
// with FormatResult().
//
// Memory is accessed through the cpubus.Peeker interface so disassembly never
// causes any bus activity.
package disassembly
