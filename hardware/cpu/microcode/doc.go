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

// Package microcode describes the 6502 instruction set as sequences of
// micro-operations. Each micro-operation is a single action that happens
// during a bus cycle: a fetch, a read or write on the bus, or an internal
// operation on the registers. A Cycle micro-operation marks the end of a bus
// cycle.
//
// Every instruction begins with the fetch of its opcode and the number of
// Cycle micro-operations in the sequence is equal to the documented number of
// cycles for the instruction. Cycles that only happen in some circumstances
// (for example, the extra cycle when indexed addressing crosses a page) are
// introduced with a Conditional micro-operation and are not counted in the
// documented number.
//
// The sequence for an instruction is built from an addressing-mode prefix and
// an operation suffix. The prefix performs the fetch and address formation
// steps that are common to every instruction with the same addressing mode.
//
// The Table type maps every opcode to its sequence. Opcodes that are not
// documented instructions are explicitly marked as unimplemented. The table is
// checked when it is built and a BuildError is returned if any sequence is
// inconsistent with the instruction's definition.
//
// The microcode package does not execute the micro-operations. That is the job
// of the cpu package.
package microcode
