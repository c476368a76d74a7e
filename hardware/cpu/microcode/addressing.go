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
)

// Prefix is the sequence of micro-operations common to every instruction with
// the same addressing mode. The sequence always begins with the opcode fetch.
//
// If HasOperand is true then the Ops end with a Cycle and the Operand field
// says how the address of the operand is formed. Otherwise, the operand has
// already been placed in the data latch (or discarded) and the final cycle of
// the prefix is left open for the operation suffix to complete.
type Prefix struct {
	Ops        []Op
	Operand    Address
	HasOperand bool
}

// sequence is a helper for building slices of micro-operations.
func sequence(ops ...[]Op) []Op {
	n := 0
	for _, o := range ops {
		n += len(o)
	}
	s := make([]Op, 0, n)
	for _, o := range ops {
		s = append(s, o...)
	}
	return s
}

// cycle is a helper that creates the micro-operations for a single bus cycle.
func cycle(ops ...Op) []Op {
	c := make([]Op, 0, len(ops)+1)
	c = append(c, ops...)
	return append(c, CycleBoundary())
}

// fetchOpcode is the first cycle of every instruction
func fetchOpcode() []Op {
	return cycle(F(Opcode))
}

// ImpliedMode returns the prefix for Implied addressing. The operand byte is fetched and discarded but the PC is
// not advanced.
func ImpliedMode() Prefix {
	return Prefix{
		Ops: sequence(
			fetchOpcode(),
			[]Op{R(ProgramCounter, Discard)},
		),
	}
}

// ImmediateMode returns the prefix for Immediate addressing. The operand is fetched into the data latch.
func ImmediateMode() Prefix {
	return Prefix{
		Ops: sequence(
			fetchOpcode(),
			[]Op{F(Immediate)},
		),
	}
}

// RelativeMode returns the prefix for Relative addressing. The branch offset is fetched into the data latch. The
// cycles that add the offset to the PC are part of the branch suffix because
// they are conditional on the branch being taken.
func RelativeMode() Prefix {
	return Prefix{
		Ops: sequence(
			fetchOpcode(),
			[]Op{F(BranchOffset)},
		),
	}
}

// ZeroPageMode returns the prefix for ZeroPage addressing.
func ZeroPageMode() Prefix {
	return Prefix{
		Ops: sequence(
			fetchOpcode(),
			cycle(F(AddressLow)),
		),
		Operand:    ZeroPage,
		HasOperand: true,
	}
}

// ZeroPageIndexedMode returns the prefix for ZeroPageIndexed addressing. The unindexed zero page address is read and
// discarded while the index is added. The result wraps around within the zero
// page.
func ZeroPageIndexedMode(index Operation) Prefix {
	return Prefix{
		Ops: sequence(
			fetchOpcode(),
			cycle(F(AddressLow)),
			cycle(R(ZeroPage, Discard), Do(index)),
		),
		Operand:    ZeroPage,
		HasOperand: true,
	}
}

// AbsoluteMode returns the prefix for Absolute addressing. Also used for Indirect addressing, in which case the
// operand is the pointer to the real address.
func AbsoluteMode() Prefix {
	return Prefix{
		Ops: sequence(
			fetchOpcode(),
			cycle(F(AddressLow)),
			cycle(F(AddressHigh)),
		),
		Operand:    Absolute,
		HasOperand: true,
	}
}

// AbsoluteIndexedMode returns the prefix for AbsoluteIndexed addressing. The index is added to the address-low latch
// while the address-high byte is being fetched. A read is then made from the
// partially formed address while the high byte is corrected.
//
// If pageSensitive is true then the corrective cycle only happens when the
// index addition carried into the high byte. Otherwise the cycle always
// happens.
func AbsoluteIndexedMode(index Operation, pageSensitive bool) Prefix {
	fix := cycle(R(Absolute, Discard), Do(FixAddressHigh))
	if pageSensitive {
		fix = append([]Op{If(PageCross)}, fix...)
	}
	return Prefix{
		Ops: sequence(
			fetchOpcode(),
			cycle(F(AddressLow)),
			cycle(F(AddressHigh), Do(index)),
			fix,
		),
		Operand:    Absolute,
		HasOperand: true,
	}
}

// IndexedIndirectMode returns the prefix for IndexedIndirect addressing, (zp,X). The pointer is read and discarded while
// X is added to it. The pointer and its increment both wrap around within
// the zero page.
func IndexedIndirectMode() Prefix {
	return Prefix{
		Ops: sequence(
			fetchOpcode(),
			cycle(F(PointerLow)),
			cycle(R(Pointer, Discard), Do(IndexPointerX)),
			cycle(R(Pointer, AddressLow), Do(IncrementPointer)),
			cycle(R(Pointer, AddressHigh)),
		),
		Operand:    Absolute,
		HasOperand: true,
	}
}

// IndirectIndexedMode returns the prefix for IndirectIndexed addressing, (zp),Y. The Y register is added to the address
// read from the zero page pointer. The page crossing behaviour is the same as
// for AbsoluteIndexed.
func IndirectIndexedMode(pageSensitive bool) Prefix {
	fix := cycle(R(Absolute, Discard), Do(FixAddressHigh))
	if pageSensitive {
		fix = append([]Op{If(PageCross)}, fix...)
	}
	return Prefix{
		Ops: sequence(
			fetchOpcode(),
			cycle(F(PointerLow)),
			cycle(R(Pointer, AddressLow), Do(IncrementPointer)),
			cycle(R(Pointer, AddressHigh), Do(IndexAddressY)),
			fix,
		),
		Operand:    Absolute,
		HasOperand: true,
	}
}

// AddressingMode returns the prefix for the addressing mode. Instructions with
// an effect of Read are page sensitive when the addressing mode is indexed.
func AddressingMode(mode instructions.AddressingMode, effect instructions.EffectCategory) (Prefix, error) {
	pageSensitive := effect == instructions.Read

	switch mode {
	case instructions.Implied:
		return ImpliedMode(), nil
	case instructions.Immediate:
		return ImmediateMode(), nil
	case instructions.Relative:
		return RelativeMode(), nil
	case instructions.Absolute, instructions.Indirect:
		return AbsoluteMode(), nil
	case instructions.ZeroPage:
		return ZeroPageMode(), nil
	case instructions.IndexedIndirect:
		return IndexedIndirectMode(), nil
	case instructions.IndirectIndexed:
		return IndirectIndexedMode(pageSensitive), nil
	case instructions.AbsoluteIndexedX:
		return AbsoluteIndexedMode(IndexAddressX, pageSensitive), nil
	case instructions.AbsoluteIndexedY:
		return AbsoluteIndexedMode(IndexAddressY, pageSensitive), nil
	case instructions.ZeroPageIndexedX:
		return ZeroPageIndexedMode(IndexAddressX), nil
	case instructions.ZeroPageIndexedY:
		return ZeroPageIndexedMode(IndexAddressY), nil
	}
	return Prefix{}, fmt.Errorf("no generator for addressing mode (%s)", mode)
}
