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

package microcode

// InterruptCycles is the number of cycles taken by the reset and interrupt
// sequences.
const InterruptCycles = 7

// the first two cycles of the reset and interrupt sequences read the PC but
// do not advance it. the first read is the opcode fetch of the instruction
// that would have been executed, which is discarded.
func interruptEntry() []Op {
	return sequence(
		cycle(R(ProgramCounter, Discard)),
		cycle(R(ProgramCounter, Discard)),
	)
}

// Reset returns the sequence for the reset signal. The stack is read rather
// than written, so the three stack cycles only decrement the stack pointer.
func Reset() []Op {
	return sequence(
		interruptEntry(),
		cycle(R(Stack, Discard), Do(DecrementStack)),
		cycle(R(Stack, Discard), Do(DecrementStack)),
		cycle(R(Stack, Discard), Do(DecrementStack), Do(VectorReset)),
		loadVector(),
	)
}

// IRQ returns the sequence for a maskable interrupt. The status register is
// pushed with the break bit clear.
func IRQ() []Op {
	return sequence(
		interruptEntry(),
		pushReturn(StatusInterrupt, VectorIRQ),
		loadVector(),
	)
}

// NMI returns the sequence for a non-maskable interrupt.
func NMI() []Op {
	return sequence(
		interruptEntry(),
		pushReturn(StatusInterrupt, VectorNMI),
		loadVector(),
	)
}
