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

import (
	"fmt"

	"github.com/jetsetilly/microcode6502/hardware/cpu/instructions"
	"github.com/jetsetilly/microcode6502/hardware/cpu/registers"
)

// operations for instructions with an effect of Read. the operand is in the
// data latch when the operation happens
var readOperations = map[instructions.Operator]Operation{
	instructions.Adc: ADC,
	instructions.And: AND,
	instructions.Bit: BIT,
	instructions.Cmp: CMP,
	instructions.Cpx: CPX,
	instructions.Cpy: CPY,
	instructions.Eor: EOR,
	instructions.Lda: LoadA,
	instructions.Ldx: LoadX,
	instructions.Ldy: LoadY,
	instructions.Ora: ORA,
	instructions.Sbc: SBC,
}

// the register written by instructions with an effect of Write
var writeSources = map[instructions.Operator]Target{
	instructions.Sta: Accumulator,
	instructions.Stx: IndexX,
	instructions.Sty: IndexY,
}

// operations for instructions with an effect of RMW. the operation works on
// the data latch
var rmwOperations = map[instructions.Operator]Operation{
	instructions.Asl: ASL,
	instructions.Lsr: LSR,
	instructions.Rol: ROL,
	instructions.Ror: ROR,
	instructions.Inc: INC,
	instructions.Dec: DEC,
}

// micro-operations for single byte instructions that are completed in the
// second cycle
var impliedOperations = map[instructions.Operator][]Op{
	instructions.Asl: {Do(ASLA)},
	instructions.Lsr: {Do(LSRA)},
	instructions.Rol: {Do(ROLA)},
	instructions.Ror: {Do(RORA)},
	instructions.Clc: {Clear(registers.Carry)},
	instructions.Cld: {Clear(registers.DecimalMode)},
	instructions.Cli: {Clear(registers.InterruptDisable)},
	instructions.Clv: {Clear(registers.Overflow)},
	instructions.Sec: {Set(registers.Carry)},
	instructions.Sed: {Set(registers.DecimalMode)},
	instructions.Sei: {Set(registers.InterruptDisable)},
	instructions.Dex: {Do(DEX)},
	instructions.Dey: {Do(DEY)},
	instructions.Inx: {Do(INX)},
	instructions.Iny: {Do(INY)},
	instructions.Tax: {Do(TAX)},
	instructions.Tay: {Do(TAY)},
	instructions.Tsx: {Do(TSX)},
	instructions.Txa: {Do(TXA)},
	instructions.Txs: {Do(TXS)},
	instructions.Tya: {Do(TYA)},
	instructions.Nop: {Do(NoOperation)},
}

// the flag and the flag state that causes a branch to be taken
var branchConditions = map[instructions.Operator]struct {
	flag registers.Flag
	set  bool
}{
	instructions.Bcc: {registers.Carry, false},
	instructions.Bcs: {registers.Carry, true},
	instructions.Bne: {registers.Zero, false},
	instructions.Beq: {registers.Zero, true},
	instructions.Bpl: {registers.Negative, false},
	instructions.Bmi: {registers.Negative, true},
	instructions.Bvc: {registers.Overflow, false},
	instructions.Bvs: {registers.Overflow, true},
}

// Instruction returns the complete sequence of micro-operations for the
// instruction definition.
func Instruction(defn *instructions.Definition) ([]Op, error) {
	switch defn.Operator {
	case instructions.Jmp:
		return jump(defn.AddressingMode)
	case instructions.Jsr:
		return jsr(), nil
	case instructions.Rts:
		return rts(), nil
	case instructions.Rti:
		return rti(), nil
	case instructions.Brk:
		return brk(), nil
	case instructions.Pha:
		return push(Accumulator), nil
	case instructions.Php:
		return push(Status), nil
	case instructions.Pla:
		return pull(Data, Do(LoadA)), nil
	case instructions.Plp:
		return pull(Status), nil
	}

	if c, ok := branchConditions[defn.Operator]; ok {
		return branch(c.flag, c.set), nil
	}

	prefix, err := AddressingMode(defn.AddressingMode, defn.Effect)
	if err != nil {
		return nil, err
	}

	if !prefix.HasOperand {
		var ops []Op

		switch defn.AddressingMode {
		case instructions.Implied:
			o, ok := impliedOperations[defn.Operator]
			if !ok {
				return nil, fmt.Errorf("no implied operation for %s", defn.Operator)
			}
			ops = cycle(o...)
		case instructions.Immediate:
			o, ok := readOperations[defn.Operator]
			if !ok {
				return nil, fmt.Errorf("no immediate operation for %s", defn.Operator)
			}
			ops = cycle(Do(o))
		default:
			return nil, fmt.Errorf("unexpected addressing mode for %s (%s)", defn.Operator, defn.AddressingMode)
		}

		return sequence(prefix.Ops, ops), nil
	}

	switch defn.Effect {
	case instructions.Read:
		o, ok := readOperations[defn.Operator]
		if !ok {
			return nil, fmt.Errorf("no read operation for %s", defn.Operator)
		}
		return sequence(prefix.Ops, cycle(R(prefix.Operand, Data), Do(o))), nil

	case instructions.Write:
		t, ok := writeSources[defn.Operator]
		if !ok {
			return nil, fmt.Errorf("no write source for %s", defn.Operator)
		}
		return sequence(prefix.Ops, cycle(W(prefix.Operand, t))), nil

	case instructions.RMW:
		o, ok := rmwOperations[defn.Operator]
		if !ok {
			return nil, fmt.Errorf("no read-modify-write operation for %s", defn.Operator)
		}

		// the unmodified value is written back to memory while the
		// operation is performed
		return sequence(prefix.Ops,
			cycle(R(prefix.Operand, Data)),
			cycle(W(prefix.Operand, Data), Do(o)),
			cycle(W(prefix.Operand, Data)),
		), nil
	}

	return nil, fmt.Errorf("unexpected effect for %s (%s)", defn.Operator, defn.Effect)
}

// jump returns the sequence for the JMP instruction. for the indirect
// addressing mode, the increment of the pointer does not carry into the high
// byte. a pointer of $10ff will read the high byte of the address from $1000
func jump(mode instructions.AddressingMode) ([]Op, error) {
	switch mode {
	case instructions.Absolute:
		return sequence(
			fetchOpcode(),
			cycle(F(AddressLow)),
			cycle(F(AddressHigh), Do(Jump)),
		), nil
	case instructions.Indirect:
		return sequence(
			AbsoluteMode().Ops,
			cycle(R(Absolute, PCL), Do(IncrementAddress)),
			cycle(R(Absolute, PCH)),
		), nil
	}
	return nil, fmt.Errorf("unexpected addressing mode for JMP (%s)", mode)
}

// branch returns the sequence for a branch instruction. the first conditional
// cycle happens if the branch is taken and the second if the new PC is on a
// different page.
func branch(flag registers.Flag, set bool) []Op {
	return sequence(
		RelativeMode().Ops,
		[]Op{CycleBoundary()},
		[]Op{IfFlag(flag, set)},
		cycle(R(ProgramCounter, Discard), Do(BranchLow)),
		[]Op{If(PageCross)},
		cycle(R(ProgramCounter, Discard), Do(BranchHigh)),
	)
}

// the address of the subroutine is not complete until the final cycle, after
// the return address has been pushed
func jsr() []Op {
	return sequence(
		fetchOpcode(),
		cycle(F(AddressLow)),
		cycle(R(Stack, Discard)),
		cycle(W(Stack, PCH), Do(DecrementStack)),
		cycle(W(Stack, PCL), Do(DecrementStack)),
		cycle(F(AddressHigh), Do(Jump)),
	)
}

// the address pulled from the stack is the address of the last byte of the
// JSR instruction. the final cycle moves the PC on to the next instruction
func rts() []Op {
	return sequence(
		ImpliedMode().Ops,
		[]Op{CycleBoundary()},
		cycle(R(Stack, Discard), Do(IncrementStack)),
		cycle(R(Stack, PCL), Do(IncrementStack)),
		cycle(R(Stack, PCH)),
		cycle(F(Discard)),
	)
}

func rti() []Op {
	return sequence(
		ImpliedMode().Ops,
		[]Op{CycleBoundary()},
		cycle(R(Stack, Discard), Do(IncrementStack)),
		cycle(R(Stack, Status), Do(IncrementStack)),
		cycle(R(Stack, PCL), Do(IncrementStack)),
		cycle(R(Stack, PCH)),
	)
}

// BRK is a two byte instruction. the second byte is fetched and ignored
func brk() []Op {
	return sequence(
		fetchOpcode(),
		cycle(F(Discard)),
		pushReturn(Status, VectorIRQ),
		loadVector(),
	)
}

func push(t Target) []Op {
	return sequence(
		ImpliedMode().Ops,
		[]Op{CycleBoundary()},
		cycle(W(Stack, t), Do(DecrementStack)),
	)
}

func pull(t Target, ops ...Op) []Op {
	return sequence(
		ImpliedMode().Ops,
		[]Op{CycleBoundary()},
		cycle(R(Stack, Discard), Do(IncrementStack)),
		cycle(append([]Op{R(Stack, t)}, ops...)...),
	)
}

// pushReturn pushes the PC and the status register onto the stack and selects
// the interrupt vector.
func pushReturn(status Target, vector Operation) []Op {
	return sequence(
		cycle(W(Stack, PCH), Do(DecrementStack)),
		cycle(W(Stack, PCL), Do(DecrementStack)),
		cycle(W(Stack, status), Do(DecrementStack), Do(vector)),
	)
}

// loadVector loads the PC from the vector selected by an earlier cycle.
// interrupts are disabled at the same time.
func loadVector() []Op {
	return sequence(
		cycle(R(Absolute, PCL), Set(registers.InterruptDisable), Do(IncrementAddress)),
		cycle(R(Absolute, PCH)),
	)
}
