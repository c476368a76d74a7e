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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/microcode6502/hardware/cpu/execution"
	"github.com/jetsetilly/microcode6502/hardware/cpu/instructions"
	"github.com/jetsetilly/microcode6502/hardware/cpu/microcode"
	"github.com/jetsetilly/microcode6502/hardware/cpu/registers"
	"github.com/jetsetilly/microcode6502/hardware/memory/cpubus"
)

// execute a single micro-operation. the Cycle action is handled by Step()
func (mc *CPU) execute(op microcode.Op) error {
	switch op.Action {
	case microcode.Fetch:
		v := mc.read(mc.PC.Address(), op.Target == microcode.Discard)
		mc.PC.Add(1)
		if op.Target.IsInstructionByte() {
			mc.LastResult.ByteCount++
			switch op.Target {
			case microcode.Opcode:
			case microcode.AddressLow:
				mc.LastResult.InstructionData = uint16(v)
			case microcode.AddressHigh:
				mc.LastResult.InstructionData |= uint16(v) << 8
			default:
				mc.LastResult.InstructionData = uint16(v)
			}
		}
		return mc.store(op.Target, v)

	case microcode.Read:
		address, err := mc.address(op.Address)
		if err != nil {
			return err
		}
		return mc.store(op.Target, mc.read(address, op.Target == microcode.Discard))

	case microcode.Write:
		address, err := mc.address(op.Address)
		if err != nil {
			return err
		}
		v, err := mc.load(op.Target)
		if err != nil {
			return err
		}
		mc.PhantomMemAccess = false
		mc.mem.Write(address, v)
		return nil

	case microcode.Operate:
		return mc.operate(op)

	case microcode.Conditional:
		// conditions are resolved by settle()
		return nil
	}

	return fmt.Errorf("unexpected micro-operation: %s", op)
}

func (mc *CPU) read(address uint16, phantom bool) uint8 {
	mc.PhantomMemAccess = phantom
	return mc.mem.Read(address)
}

func (mc *CPU) address(a microcode.Address) (uint16, error) {
	switch a {
	case microcode.ProgramCounter:
		return mc.PC.Address(), nil
	case microcode.ZeroPage:
		return uint16(mc.latches.ADL), nil
	case microcode.Absolute:
		return uint16(mc.latches.ADH)<<8 | uint16(mc.latches.ADL), nil
	case microcode.Pointer:
		return uint16(mc.latches.BAL), nil
	case microcode.Stack:
		return cpubus.StackPage | mc.SP.Address(), nil
	}
	return 0, fmt.Errorf("unexpected address source: %s", a)
}

// store the value read from memory in the target
func (mc *CPU) store(t microcode.Target, v uint8) error {
	switch t {
	case microcode.Opcode:
		mc.latches.IR = v
	case microcode.Discard:
	case microcode.AddressLow:
		mc.latches.ADL = v
	case microcode.AddressHigh:
		mc.latches.ADH = v
	case microcode.PointerLow:
		mc.latches.BAL = v
	case microcode.Immediate, microcode.BranchOffset, microcode.Data:
		mc.latches.DL = v
	case microcode.Accumulator:
		mc.A.Load(v)
	case microcode.IndexX:
		mc.X.Load(v)
	case microcode.IndexY:
		mc.Y.Load(v)
	case microcode.PCL:
		mc.PC.LoadLow(v)
	case microcode.PCH:
		mc.PC.LoadHigh(v)
	case microcode.Status:
		mc.Status.Pull(v)
	default:
		return fmt.Errorf("cannot read into %s", t)
	}
	return nil
}

// load the value to be written to memory from the target
func (mc *CPU) load(t microcode.Target) (uint8, error) {
	switch t {
	case microcode.Data:
		return mc.latches.DL, nil
	case microcode.Accumulator:
		return mc.A.Value(), nil
	case microcode.IndexX:
		return mc.X.Value(), nil
	case microcode.IndexY:
		return mc.Y.Value(), nil
	case microcode.PCL:
		return mc.PC.Low(), nil
	case microcode.PCH:
		return mc.PC.High(), nil
	case microcode.Status:
		return mc.Status.Push(true), nil
	case microcode.StatusInterrupt:
		return mc.Status.Push(false), nil
	}
	return 0, fmt.Errorf("cannot write from %s", t)
}

func (mc *CPU) setZN(r registers.Register) {
	mc.Status.Set(registers.Zero, r.IsZero())
	mc.Status.Set(registers.Negative, r.IsNegative())
}

// change the data latch with a register operation
func (mc *CPU) modifyData(f func(r *registers.Register) bool, carry bool) {
	r := registers.NewRegister(mc.latches.DL, "DL")
	c := f(&r)
	if carry {
		mc.Status.Set(registers.Carry, c)
	}
	mc.setZN(r)
	mc.latches.DL = r.Value()
}

func (mc *CPU) bug(b execution.Bug) {
	mc.LastResult.CPUBug = b
}

func (mc *CPU) zeroPageIndexed() bool {
	return mc.addressingMode(instructions.ZeroPageIndexedX) || mc.addressingMode(instructions.ZeroPageIndexedY)
}

// addressingMode returns true if the current instruction uses the mode.
func (mc *CPU) addressingMode(m instructions.AddressingMode) bool {
	return mc.LastResult.Defn != nil && mc.LastResult.Defn.AddressingMode == m
}

func (mc *CPU) indexAddress(r registers.Register) {
	sum := uint16(mc.latches.ADL) + uint16(r.Value())
	mc.latches.ADL = uint8(sum)
	mc.latches.Carry = sum > 0xff
	if mc.latches.Carry && mc.zeroPageIndexed() {
		mc.bug(execution.ZeroPageIndexBug)
	}
}

func (mc *CPU) operate(op microcode.Op) error {
	switch op.Operation {
	case microcode.ClearFlag:
		mc.Status.Set(op.Flag, false)
	case microcode.SetFlag:
		mc.Status.Set(op.Flag, true)

	case microcode.LoadA:
		mc.A.Load(mc.latches.DL)
		mc.setZN(mc.A)
	case microcode.LoadX:
		mc.X.Load(mc.latches.DL)
		mc.setZN(mc.X)
	case microcode.LoadY:
		mc.Y.Load(mc.latches.DL)
		mc.setZN(mc.Y)

	case microcode.TAX:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X)
	case microcode.TAY:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y)
	case microcode.TXA:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A)
	case microcode.TYA:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A)
	case microcode.TSX:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X)
	case microcode.TXS:
		mc.SP.Load(mc.X.Value())

	case microcode.INX:
		mc.X.Increment()
		mc.setZN(mc.X)
	case microcode.INY:
		mc.Y.Increment()
		mc.setZN(mc.Y)
	case microcode.DEX:
		mc.X.Decrement()
		mc.setZN(mc.X)
	case microcode.DEY:
		mc.Y.Decrement()
		mc.setZN(mc.Y)

	case microcode.ADC:
		if mc.Status.IsSet(registers.DecimalMode) {
			carry, zero, overflow, sign := mc.A.AddDecimal(mc.latches.DL, mc.Status.IsSet(registers.Carry))
			mc.Status.Set(registers.Carry, carry)
			mc.Status.Set(registers.Zero, zero)
			mc.Status.Set(registers.Overflow, overflow)
			mc.Status.Set(registers.Negative, sign)
		} else {
			carry, overflow := mc.A.Add(mc.latches.DL, mc.Status.IsSet(registers.Carry))
			mc.Status.Set(registers.Carry, carry)
			mc.Status.Set(registers.Overflow, overflow)
			mc.setZN(mc.A)
		}
	case microcode.SBC:
		if mc.Status.IsSet(registers.DecimalMode) {
			carry, zero, overflow, sign := mc.A.SubtractDecimal(mc.latches.DL, mc.Status.IsSet(registers.Carry))
			mc.Status.Set(registers.Carry, carry)
			mc.Status.Set(registers.Zero, zero)
			mc.Status.Set(registers.Overflow, overflow)
			mc.Status.Set(registers.Negative, sign)
		} else {
			carry, overflow := mc.A.Subtract(mc.latches.DL, mc.Status.IsSet(registers.Carry))
			mc.Status.Set(registers.Carry, carry)
			mc.Status.Set(registers.Overflow, overflow)
			mc.setZN(mc.A)
		}
	case microcode.AND:
		mc.A.AND(mc.latches.DL)
		mc.setZN(mc.A)
	case microcode.ORA:
		mc.A.ORA(mc.latches.DL)
		mc.setZN(mc.A)
	case microcode.EOR:
		mc.A.EOR(mc.latches.DL)
		mc.setZN(mc.A)
	case microcode.CMP:
		carry, r := mc.A.Compare(mc.latches.DL)
		mc.Status.Set(registers.Carry, carry)
		mc.setZN(r)
	case microcode.CPX:
		carry, r := mc.X.Compare(mc.latches.DL)
		mc.Status.Set(registers.Carry, carry)
		mc.setZN(r)
	case microcode.CPY:
		carry, r := mc.Y.Compare(mc.latches.DL)
		mc.Status.Set(registers.Carry, carry)
		mc.setZN(r)
	case microcode.BIT:
		mc.Status.Set(registers.Zero, mc.A.Value()&mc.latches.DL == 0)
		mc.Status.Set(registers.Negative, mc.latches.DL&0x80 == 0x80)
		mc.Status.Set(registers.Overflow, mc.latches.DL&0x40 == 0x40)

	case microcode.ASLA:
		mc.Status.Set(registers.Carry, mc.A.ASL())
		mc.setZN(mc.A)
	case microcode.LSRA:
		mc.Status.Set(registers.Carry, mc.A.LSR())
		mc.setZN(mc.A)
	case microcode.ROLA:
		mc.Status.Set(registers.Carry, mc.A.ROL(mc.Status.IsSet(registers.Carry)))
		mc.setZN(mc.A)
	case microcode.RORA:
		mc.Status.Set(registers.Carry, mc.A.ROR(mc.Status.IsSet(registers.Carry)))
		mc.setZN(mc.A)

	case microcode.ASL:
		mc.modifyData(func(r *registers.Register) bool { return r.ASL() }, true)
	case microcode.LSR:
		mc.modifyData(func(r *registers.Register) bool { return r.LSR() }, true)
	case microcode.ROL:
		c := mc.Status.IsSet(registers.Carry)
		mc.modifyData(func(r *registers.Register) bool { return r.ROL(c) }, true)
	case microcode.ROR:
		c := mc.Status.IsSet(registers.Carry)
		mc.modifyData(func(r *registers.Register) bool { return r.ROR(c) }, true)
	case microcode.INC:
		mc.modifyData(func(r *registers.Register) bool { r.Increment(); return false }, false)
	case microcode.DEC:
		mc.modifyData(func(r *registers.Register) bool { r.Decrement(); return false }, false)

	case microcode.IndexAddressX:
		mc.indexAddress(mc.X)
	case microcode.IndexAddressY:
		mc.indexAddress(mc.Y)
	case microcode.FixAddressHigh:
		if mc.latches.Carry {
			mc.latches.ADH++
		}
	case microcode.IndexPointerX:
		if uint16(mc.latches.BAL)+uint16(mc.X.Value()) > 0xff {
			mc.bug(execution.IndexedIndirectAddressingBug)
		}
		mc.latches.BAL += mc.X.Value()
	case microcode.IncrementPointer:
		if mc.latches.BAL == 0xff {
			if mc.addressingMode(instructions.IndirectIndexed) {
				mc.bug(execution.IndirectIndexedAddressingBug)
			} else {
				mc.bug(execution.IndexedIndirectAddressingBug)
			}
		}
		mc.latches.BAL++
	case microcode.IncrementAddress:
		if mc.latches.ADL == 0xff {
			mc.bug(execution.JmpIndirectAddressingBug)
		}
		mc.latches.ADL++

	case microcode.IncrementStack:
		mc.SP.Increment()
	case microcode.DecrementStack:
		mc.SP.Decrement()

	case microcode.Jump:
		mc.PC.Load(uint16(mc.latches.ADH)<<8 | uint16(mc.latches.ADL))
	case microcode.BranchLow:
		offset := int8(mc.latches.DL)
		low := int(mc.PC.Low()) + int(offset)
		mc.PC.LoadLow(uint8(low))
		mc.latches.Carry = low < 0 || low > 0xff
		mc.branchBack = offset < 0
	case microcode.BranchHigh:
		if mc.branchBack {
			mc.PC.LoadHigh(mc.PC.High() - 1)
		} else {
			mc.PC.LoadHigh(mc.PC.High() + 1)
		}

	case microcode.VectorReset:
		mc.vector(cpubus.Reset)
	case microcode.VectorIRQ:
		mc.vector(cpubus.IRQ)
	case microcode.VectorNMI:
		mc.vector(cpubus.NMI)

	case microcode.NoOperation:

	default:
		return fmt.Errorf("unexpected operation: %s", op.Operation)
	}

	return nil
}

func (mc *CPU) vector(address uint16) {
	mc.latches.ADL = uint8(address)
	mc.latches.ADH = uint8(address >> 8)
}
