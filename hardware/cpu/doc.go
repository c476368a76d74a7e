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

// Package cpu emulates the NMOS 6502 one bus cycle at a time. Every
// instruction is a sequence of micro-operations taken from the microcode
// table. Each call to Step() performs the micro-operations for exactly one
// cycle, which always includes exactly one memory access.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument.
//
//	mc, err := cpu.NewCPU(mem)
//	if err != nil {
//		return err
//	}
//
//	for {
//		if err := mc.Step(); err != nil {
//			return err
//		}
//	}
//
// A newly created CPU begins in the reset sequence, which takes seven cycles
// and loads the PC from the reset vector. No memory access happens until the
// first call to Step().
//
// The opcode fetch is the first cycle of every instruction. The decode of the
// opcode happens at the start of the following Step(). If the opcode is not a
// documented instruction a DecodingError is returned and the CPU will not
// move until Reset() is called.
//
// The IRQ and NMI lines are sampled at instruction boundaries. An NMI takes
// priority over an IRQ. An IRQ is ignored while the interrupt disable flag is
// set.
//
// ExecuteInstruction() steps the CPU to the next instruction boundary, calling
// the callback function after every cycle. The LastResult field describes the
// instruction (or interrupt) that is executing or that has just completed.
package cpu
