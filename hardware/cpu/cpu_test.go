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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/microcode6502/hardware/cpu"
	"github.com/jetsetilly/microcode6502/hardware/cpu/execution"
	"github.com/jetsetilly/microcode6502/hardware/cpu/instructions"
	"github.com/jetsetilly/microcode6502/hardware/cpu/registers"
	"github.com/jetsetilly/microcode6502/hardware/memory/ram"
	"github.com/jetsetilly/microcode6502/test"
)

func TestPowerOn(t *testing.T) {
	mem := ram.NewRAM()
	mem.Record(true)

	mc, err := cpu.NewCPU(mem)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, mc.State(), cpu.StateReset)
	test.ExpectEquality(t, mc.PC.Address(), 0x0000)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.X.Value(), 0x00)
	test.ExpectEquality(t, mc.Y.Value(), 0x00)
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.Value(), registers.PowerOnStatus)
	test.ExpectEquality(t, mc.HasReset(), true)
	test.ExpectEquality(t, mc.Cycles, 0)

	// construction does not touch the bus
	test.ExpectEquality(t, len(mem.Activity()), 0)
}

func TestResetSequence(t *testing.T) {
	mem := ram.NewRAM()
	mem.SetVector(0xfffc, 0x1234)
	mem.Record(true)

	mc, err := cpu.NewCPU(mem)
	test.DemandSuccess(t, err)

	for i := range 6 {
		test.DemandSuccess(t, mc.Step())
		test.ExpectEquality(t, mc.State(), cpu.StateReset, "cycle", i+1)
	}
	test.DemandSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State(), cpu.StateFetch)

	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.IsSet(registers.InterruptDisable), true)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")
	test.ExpectEquality(t, mc.Cycles, 7)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.Reset)
	test.ExpectEquality(t, mc.LastResult.Final, true)
	test.ExpectSuccess(t, mc.LastResult.IsValid())

	expected := []ram.Access{
		{Address: 0x0000},
		{Address: 0x0000},
		{Address: 0x0100},
		{Address: 0x01ff},
		{Address: 0x01fe},
		{Address: 0xfffc, Data: 0x34},
		{Address: 0xfffd, Data: 0x12},
	}
	act := mem.Activity()
	test.DemandEquality(t, len(act), len(expected))
	for i := range expected {
		test.ExpectEquality(t, act[i], expected[i], "cycle", i+1)
	}
}

func TestWarmReset(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$42
	mem.PutInstructions(origin, 0xa9, 0x42)
	step(t, mc)
	test.ExpectEquality(t, mc.HasReset(), false)

	// stack pointer wraps around during the reset sequence
	mc.SP.Load(0x01)
	mc.Status.Set(registers.InterruptDisable, false)
	mc.Reset()
	test.ExpectEquality(t, mc.State(), cpu.StateReset)
	test.ExpectEquality(t, mc.HasReset(), true)

	test.DemandSuccess(t, mc.ExecuteInstruction(cpu.NilCycleCallback))
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)
	test.ExpectEquality(t, mc.SP.Value(), 0xfe)
	test.ExpectEquality(t, mc.PC.Address(), origin)
	test.ExpectEquality(t, mc.Status.IsSet(registers.InterruptDisable), true)

	// registers other than the stack pointer are not changed
	test.ExpectEquality(t, mc.A.Value(), 0x42)
}

func TestCLC(t *testing.T) {
	mc, mem := newCPU(t)
	mem.PutInstructions(origin, 0x18, 0xea)

	mc.Status.Set(registers.Carry, true)
	before := mc.Status.Value()

	mem.Record(true)

	test.DemandSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State(), cpu.StateExecuting)
	test.ExpectEquality(t, mc.Latches().IR, 0x18)

	test.DemandSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State(), cpu.StateFetch)

	test.ExpectEquality(t, mc.Status.IsSet(registers.Carry), false)
	test.ExpectEquality(t, mc.Status.Value(), before&^uint8(registers.Carry))
	test.ExpectEquality(t, mc.PC.Address(), origin+1)
	test.ExpectEquality(t, mc.PhantomMemAccess, true)

	act := mem.Activity()
	test.DemandEquality(t, len(act), 2)
	test.ExpectEquality(t, act[0], ram.Access{Address: origin, Data: 0x18})
	test.ExpectEquality(t, act[1], ram.Access{Address: origin + 1, Data: 0xea})

	test.ExpectEquality(t, mc.LastResult.Defn.Operator, instructions.Clc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 2)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
}

func TestDecodingError(t *testing.T) {
	mc, mem := newCPU(t)

	// 0x02 is not a documented opcode
	mem.PutInstructions(origin, 0x02)
	mem.Record(true)

	test.DemandSuccess(t, mc.Step())
	test.ExpectEquality(t, len(mem.Activity()), 1)

	before := mc.String()
	cycles := mc.Cycles

	err := mc.Step()
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, cpu.ErrDecoding))

	var de cpu.DecodingError
	test.DemandSuccess(t, errors.As(err, &de))
	test.ExpectEquality(t, de.OpCode, 0x02)
	test.ExpectEquality(t, de.Address, origin)

	// no bus activity and no change to the registers
	test.ExpectEquality(t, len(mem.Activity()), 1)
	test.ExpectEquality(t, mc.String(), before)
	test.ExpectEquality(t, mc.Cycles, cycles)
	test.ExpectEquality(t, mc.State(), cpu.StateHalted)

	// the CPU stays halted
	test.ExpectEquality(t, mc.Step(), err)
	test.ExpectEquality(t, mc.ExecuteInstruction(cpu.NilCycleCallback), err)
	test.ExpectEquality(t, len(mem.Activity()), 1)

	// until it is reset
	mc.Reset()
	test.ExpectEquality(t, mc.State(), cpu.StateReset)
	test.DemandSuccess(t, mc.ExecuteInstruction(cpu.NilCycleCallback))
	test.ExpectEquality(t, mc.PC.Address(), origin)
}

func TestExecuteInstruction(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA $1000; NOP
	mem.PutInstructions(origin, 0xad, 0x00, 0x10, 0xea)

	var count int
	err := mc.ExecuteInstruction(func() error {
		count++
		test.ExpectEquality(t, mc.LastResult.Cycles, count)
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, count, 4)
	test.ExpectEquality(t, mc.LastResult.Final, true)
	test.ExpectEquality(t, mc.LastResult.ByteCount, 3)
	test.ExpectEquality(t, mc.LastResult.InstructionData, 0x1000)

	// an error from the callback stops execution after the current cycle
	stop := errors.New("stop")
	err = mc.ExecuteInstruction(func() error {
		return stop
	})
	test.ExpectEquality(t, err, stop)
	test.ExpectEquality(t, mc.State(), cpu.StateExecuting)
	test.ExpectEquality(t, mc.LastResult.Cycles, 1)

	// the instruction can be completed from the middle
	test.DemandSuccess(t, mc.ExecuteInstruction(nil))
	test.ExpectEquality(t, mc.LastResult.Defn.Operator, instructions.Nop)
	test.ExpectEquality(t, mc.LastResult.Cycles, 2)
	test.ExpectEquality(t, mc.State(), cpu.StateFetch)
}

func TestTrace(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA $1000
	mem.PutInstructions(origin, 0xad, 0x00, 0x10)
	test.DemandSuccess(t, mc.Step())
	test.DemandSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.Trace(), "Fetch(AddressHigh) Cycle Read(Absolute -> Data) LoadA Cycle")

	step(t, mc)
	test.ExpectEquality(t, mc.Trace(), "")
}

func TestSnapshot(t *testing.T) {
	mc, mem := newCPU(t)

	// INX
	mem.PutInstructions(origin, 0xe8)

	s := mc.Snapshot()
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x01)
	test.ExpectEquality(t, s.X.Value(), 0x00)
	test.ExpectEquality(t, s.PC.Address(), origin)
	test.ExpectInequality(t, s.String(), mc.String())
}

func TestCPU(t *testing.T) {
	t.Run("status", testStatusInstructions)
	t.Run("arithmetic", testRegisterArithmetic)
	t.Run("bitwise", testRegisterBitwiseInstructions)
	t.Run("implied", testImmediateImplied)
	t.Run("addressing", testOtherAddressingModes)
	t.Run("storage", testStorageInstructions)
	t.Run("rmw", testReadModifyWrite)
	t.Run("comparison", testComparisonInstructions)
	t.Run("jumps", testJumps)
	t.Run("subroutine", testSubroutineInstructions)
	t.Run("decimal", testDecimalMode)
}

func testStatusInstructions(t *testing.T) {
	mc, mem := newCPU(t)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	o := mem.PutInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "nv-bDIZc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")

	// PHP; PLP
	mem.PutInstructions(o, 0x08, 0x28)
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)
	test.ExpectEquality(t, mem.Peek(0x01fd), 0x36)

	// mangle status register
	mc.Status.Set(registers.Negative, true)
	mc.Status.Set(registers.Overflow, true)

	// restore status register. the break flag is not restored
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")
}

func testRegisterArithmetic(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA immediate; ADC immediate
	o := mem.PutInstructions(origin, 0xa9, 0x01, 0x69, 0x0a)
	step(t, mc) // LDA #$01
	step(t, mc) // ADC #$0a
	test.ExpectEquality(t, mc.A.Value(), 0x0b)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	// ADC immediate; SBC immediate
	o = mem.PutInstructions(o, 0x69, 0xff, 0xe9, 0x0a)
	step(t, mc) // ADC #$ff
	test.ExpectEquality(t, mc.A.Value(), 0x0a)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzC")
	step(t, mc) // SBC #$0a
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZC")

	// LDA #$7f; CLC; ADC #$01
	mem.PutInstructions(o, 0xa9, 0x7f, 0x18, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectEquality(t, mc.Status.String(), "NV-bdIzc")
}

func testRegisterBitwiseInstructions(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$f0; ORA #$0f; AND #$3c; EOR #$ff
	o := mem.PutInstructions(origin, 0xa9, 0xf0, 0x09, 0x0f, 0x29, 0x3c, 0x49, 0xff)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzc")
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x3c)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xc3)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzc")

	// ASL A; LSR A; ROR A; ROL A
	mem.PutInstructions(o, 0x0a, 0x4a, 0x6a, 0x2a)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x86)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzC")
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x43)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x21)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzC")
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x43)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
}

func testImmediateImplied(t *testing.T) {
	mc, mem := newCPU(t)

	// LDX #$05; LDY #$07; INX; INY; DEX; DEY
	o := mem.PutInstructions(origin, 0xa2, 0x05, 0xa0, 0x07, 0xe8, 0xc8, 0xca, 0x88)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x05)
	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), 0x07)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x06)
	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), 0x08)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x05)
	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), 0x07)

	// TXA; TAY; TSX
	o = mem.PutInstructions(o, 0x8a, 0xa8, 0xba)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x05)
	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), 0x05)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Negative), true)

	// LDX #$00; TXS. the flags are not changed by TXS
	mem.PutInstructions(o, 0xa2, 0x00, 0x9a)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Zero), true)
	mc.Status.Set(registers.Zero, false)
	step(t, mc)
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Zero), false)
}

func testOtherAddressingModes(t *testing.T) {
	mc, mem := newCPU(t)

	// LDX #$02; LDA ($80,X)
	o := mem.PutInstructions(origin, 0xa2, 0x02, 0xa1, 0x80)
	mem.Poke(0x0082, 0x00)
	mem.Poke(0x0083, 0x20)
	mem.Poke(0x2000, 0x99)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x99)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)

	// LDY #$20; LDA ($84),Y
	o = mem.PutInstructions(o, 0xa0, 0x20, 0xb1, 0x84)
	mem.Poke(0x0084, 0xf0)
	mem.Poke(0x0085, 0x20)
	mem.Poke(0x2110, 0x55)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x55)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)

	// LDX #$00; LDA ($ff,X). the pointer wraps around in the zero page
	o = mem.PutInstructions(o, 0xa2, 0x00, 0xa1, 0xff)
	mem.Poke(0x00ff, 0x00)
	mem.Poke(0x0000, 0x30)
	mem.Poke(0x3000, 0x77)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x77)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.IndexedIndirectAddressingBug)

	// LDY #$10; LDA ($ff),Y. the pointer increment wraps around in the zero
	// page and is reported separately from the (zp,X) case
	o = mem.PutInstructions(o, 0xa0, 0x10, 0xb1, 0xff)
	mem.Poke(0x3010, 0x66)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x66)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.IndirectIndexedAddressingBug)
	test.ExpectInequality(t, mc.LastResult.CPUBug, execution.IndexedIndirectAddressingBug)

	// LDX #$ff; LDA $80,X. the address wraps around in the zero page
	mem.PutInstructions(o, 0xa2, 0xff, 0xb5, 0x80)
	mem.Poke(0x007f, 0x42)
	mem.Poke(0x017f, 0xee)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.ZeroPageIndexBug)
}

func testStorageInstructions(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$42; STA $80; LDX #$11; STX $1234; LDY #$22; STY $81
	o := mem.PutInstructions(origin, 0xa9, 0x42, 0x85, 0x80, 0xa2, 0x11, 0x8e, 0x34, 0x12, 0xa0, 0x22, 0x84, 0x81)
	for range 6 {
		step(t, mc)
	}
	test.ExpectEquality(t, mem.Peek(0x0080), 0x42)
	test.ExpectEquality(t, mem.Peek(0x1234), 0x11)
	test.ExpectEquality(t, mem.Peek(0x0081), 0x22)

	// STA $1000,X. store instructions always take the extra cycle
	mem.PutInstructions(o, 0x9d, 0x00, 0x10)
	step(t, mc)
	test.ExpectEquality(t, mem.Peek(0x1011), 0x42)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)
}

func testReadModifyWrite(t *testing.T) {
	mc, mem := newCPU(t)

	// INC $80; DEC $1000; ASL $80; LSR $80
	mem.PutInstructions(origin, 0xe6, 0x80, 0xce, 0x00, 0x10, 0x06, 0x80, 0x46, 0x80)
	mem.Poke(0x0080, 0x42)

	step(t, mc)
	test.ExpectEquality(t, mem.Peek(0x0080), 0x43)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)

	step(t, mc)
	test.ExpectEquality(t, mem.Peek(0x1000), 0xff)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Negative), true)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)

	step(t, mc)
	test.ExpectEquality(t, mem.Peek(0x0080), 0x86)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Carry), false)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Negative), true)

	step(t, mc)
	test.ExpectEquality(t, mem.Peek(0x0080), 0x43)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Carry), false)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Negative), false)
}

func testComparisonInstructions(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$10; CMP #$10; CMP #$20
	o := mem.PutInstructions(origin, 0xa9, 0x10, 0xc9, 0x10, 0xc9, 0x20)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZC")
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzc")

	// LDX #$05; CPX #$04; LDY #$05; CPY #$06
	o = mem.PutInstructions(o, 0xa2, 0x05, 0xe0, 0x04, 0xa0, 0x05, 0xc0, 0x06)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzC")
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzc")

	// LDA #$01; BIT $80
	mem.PutInstructions(o, 0xa9, 0x01, 0x24, 0x80)
	mem.Poke(0x0080, 0xc0)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "NV-bdIZc")
	test.ExpectEquality(t, mc.A.Value(), 0x01)
}

func testJumps(t *testing.T) {
	mc, mem := newCPU(t)

	// JMP $0500
	mem.PutInstructions(origin, 0x4c, 0x00, 0x05)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0500)
	test.ExpectEquality(t, mc.LastResult.Cycles, 3)

	// JMP ($0600)
	mem.PutInstructions(0x0500, 0x6c, 0x00, 0x06)
	mem.SetVector(0x0600, 0x0700)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0700)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)

	// JMP ($10ff). the high byte of the address comes from $1000
	mem.PutInstructions(0x0700, 0x6c, 0xff, 0x10)
	mem.Poke(0x10ff, 0x34)
	mem.Poke(0x1000, 0x12)
	mem.Poke(0x1100, 0x56)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.JmpIndirectAddressingBug)
}

func testSubroutineInstructions(t *testing.T) {
	mc, mem := newCPU(t)

	// JSR $0500; ... RTS
	mem.PutInstructions(origin, 0x20, 0x00, 0x05)
	mem.PutInstructions(0x0500, 0x60)

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0500)
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)
	test.ExpectEquality(t, mem.Peek(0x01fd), 0x04)
	test.ExpectEquality(t, mem.Peek(0x01fc), 0x02)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), origin+3)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
}

func testDecimalMode(t *testing.T) {
	mc, mem := newCPU(t)

	// SED; CLC; LDA #$09; ADC #$01
	o := mem.PutInstructions(origin, 0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	for range 4 {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.A.Value(), 0x10)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Carry), false)

	// SEC; LDA #$10; SBC #$01
	mem.PutInstructions(o, 0x38, 0xa9, 0x10, 0xe9, 0x01)
	for range 3 {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.A.Value(), 0x09)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Carry), true)
}
