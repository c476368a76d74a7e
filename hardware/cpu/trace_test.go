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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/microcode6502/hardware/cpu"
	"github.com/jetsetilly/microcode6502/hardware/cpu/registers"
	"github.com/jetsetilly/microcode6502/hardware/memory/cpubus"
	"github.com/jetsetilly/microcode6502/hardware/memory/ram"
)

func read(address uint16, data uint8) ram.Access {
	return ram.Access{Address: address, Data: data}
}

func write(address uint16, data uint8) ram.Access {
	return ram.Access{Address: address, Data: data, Write: true}
}

// busTrace executes the instruction at the origin and returns the bus
// activity. each step must produce exactly one access
func busTrace(t *testing.T, mc *cpu.CPU, mem *ram.RAM) []ram.Access {
	t.Helper()

	mem.ClearActivity()
	mem.Record(true)
	defer mem.Record(false)

	var cycles int
	err := mc.ExecuteInstruction(func() error {
		cycles++
		require.Len(t, mem.Activity(), cycles)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mc.LastResult.IsValid())

	return append([]ram.Access{}, mem.Activity()...)
}

func TestBusTraces(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mc *cpu.CPU, mem *ram.RAM)
		expected []ram.Access
	}{
		{
			name: "LDA #$42",
			setup: func(_ *cpu.CPU, mem *ram.RAM) {
				mem.PutInstructions(origin, 0xa9, 0x42)
			},
			expected: []ram.Access{
				read(0x0400, 0xa9), read(0x0401, 0x42),
			},
		},
		{
			name: "LDA $1000,X page cross",
			setup: func(mc *cpu.CPU, mem *ram.RAM) {
				mc.X.Load(0x01)
				mem.PutInstructions(origin, 0xbd, 0xff, 0x10)
				mem.Poke(0x1000, 0x11)
				mem.Poke(0x1100, 0x80)
			},
			expected: []ram.Access{
				read(0x0400, 0xbd), read(0x0401, 0xff), read(0x0402, 0x10),
				read(0x1000, 0x11), read(0x1100, 0x80),
			},
		},
		{
			name: "STA $1000,Y",
			setup: func(mc *cpu.CPU, mem *ram.RAM) {
				mc.A.Load(0x99)
				mc.Y.Load(0x02)
				mem.PutInstructions(origin, 0x99, 0x00, 0x10)
			},
			expected: []ram.Access{
				read(0x0400, 0x99), read(0x0401, 0x00), read(0x0402, 0x10),
				read(0x1002, 0x00), write(0x1002, 0x99),
			},
		},
		{
			name: "INC $10",
			setup: func(_ *cpu.CPU, mem *ram.RAM) {
				mem.PutInstructions(origin, 0xe6, 0x10)
				mem.Poke(0x0010, 0x7f)
			},
			expected: []ram.Access{
				read(0x0400, 0xe6), read(0x0401, 0x10),
				read(0x0010, 0x7f), write(0x0010, 0x7f), write(0x0010, 0x80),
			},
		},
		{
			name: "LDA $80,X",
			setup: func(mc *cpu.CPU, mem *ram.RAM) {
				mc.X.Load(0x05)
				mem.PutInstructions(origin, 0xb5, 0x80)
				mem.Poke(0x0085, 0x33)
			},
			expected: []ram.Access{
				read(0x0400, 0xb5), read(0x0401, 0x80),
				read(0x0080, 0x00), read(0x0085, 0x33),
			},
		},
		{
			name: "JSR $1234",
			setup: func(_ *cpu.CPU, mem *ram.RAM) {
				mem.PutInstructions(origin, 0x20, 0x34, 0x12)
			},
			expected: []ram.Access{
				read(0x0400, 0x20), read(0x0401, 0x34), read(0x01fd, 0x00),
				write(0x01fd, 0x04), write(0x01fc, 0x02), read(0x0402, 0x12),
			},
		},
		{
			name: "PHA",
			setup: func(mc *cpu.CPU, mem *ram.RAM) {
				mc.A.Load(0x5a)
				mem.PutInstructions(origin, 0x48, 0xea)
			},
			expected: []ram.Access{
				read(0x0400, 0x48), read(0x0401, 0xea), write(0x01fd, 0x5a),
			},
		},
		{
			name: "PLA",
			setup: func(_ *cpu.CPU, mem *ram.RAM) {
				mem.PutInstructions(origin, 0x68, 0xea)
				mem.Poke(0x01fe, 0x77)
			},
			expected: []ram.Access{
				read(0x0400, 0x68), read(0x0401, 0xea), read(0x01fd, 0x00), read(0x01fe, 0x77),
			},
		},
		{
			name: "BEQ backwards page cross",
			setup: func(_ *cpu.CPU, mem *ram.RAM) {
				mem.PutInstructions(origin, 0xf0, 0xfc)
			},
			expected: []ram.Access{
				read(0x0400, 0xf0), read(0x0401, 0xfc), read(0x0402, 0x00), read(0x04fe, 0x00),
			},
		},
		{
			name: "BRK",
			setup: func(_ *cpu.CPU, mem *ram.RAM) {
				mem.PutInstructions(origin, 0x00, 0xff)
				mem.SetVector(cpubus.IRQ, 0x0600)
			},
			expected: []ram.Access{
				read(0x0400, 0x00), read(0x0401, 0xff),
				write(0x01fd, 0x04), write(0x01fc, 0x02), write(0x01fb, 0x36),
				read(0xfffe, 0x00), read(0xffff, 0x06),
			},
		},
		{
			name: "LDA ($10,X)",
			setup: func(mc *cpu.CPU, mem *ram.RAM) {
				mc.X.Load(0x04)
				mem.PutInstructions(origin, 0xa1, 0x10)
				mem.Poke(0x0010, 0x99)
				mem.Poke(0x0014, 0x00)
				mem.Poke(0x0015, 0x20)
				mem.Poke(0x2000, 0x5a)
			},
			expected: []ram.Access{
				read(0x0400, 0xa1), read(0x0401, 0x10),
				read(0x0010, 0x99), read(0x0014, 0x00), read(0x0015, 0x20),
				read(0x2000, 0x5a),
			},
		},
		{
			name: "LDA ($FF),Y page cross",
			setup: func(mc *cpu.CPU, mem *ram.RAM) {
				mc.Y.Load(0x10)
				mem.PutInstructions(origin, 0xb1, 0xff)
				mem.Poke(0x00ff, 0xf8)
				mem.Poke(0x0000, 0x20)
				mem.Poke(0x2008, 0x01)
				mem.Poke(0x2108, 0x44)
			},
			expected: []ram.Access{
				read(0x0400, 0xb1), read(0x0401, 0xff),
				read(0x00ff, 0xf8), read(0x0000, 0x20),
				read(0x2008, 0x01), read(0x2108, 0x44),
			},
		},
		{
			name: "ASL $10FF,X",
			setup: func(mc *cpu.CPU, mem *ram.RAM) {
				mc.X.Load(0x01)
				mem.PutInstructions(origin, 0x1e, 0xff, 0x10)
				mem.Poke(0x1000, 0x11)
				mem.Poke(0x1100, 0x81)
			},
			expected: []ram.Access{
				read(0x0400, 0x1e), read(0x0401, 0xff), read(0x0402, 0x10),
				read(0x1000, 0x11), read(0x1100, 0x81),
				write(0x1100, 0x81), write(0x1100, 0x02),
			},
		},
		{
			name: "RTS",
			setup: func(_ *cpu.CPU, mem *ram.RAM) {
				mem.PutInstructions(origin, 0x60, 0xea)
				mem.Poke(0x01fe, 0x02)
				mem.Poke(0x01ff, 0x12)
				mem.Poke(0x1202, 0x34)
			},
			expected: []ram.Access{
				read(0x0400, 0x60), read(0x0401, 0xea), read(0x01fd, 0x00),
				read(0x01fe, 0x02), read(0x01ff, 0x12), read(0x1202, 0x34),
			},
		},
		{
			name: "RTI",
			setup: func(mc *cpu.CPU, mem *ram.RAM) {
				mc.SP.Load(0xfc)
				mem.PutInstructions(origin, 0x40, 0xea)
				mem.Poke(0x01fd, 0x21)
				mem.Poke(0x01fe, 0x00)
				mem.Poke(0x01ff, 0x06)
			},
			expected: []ram.Access{
				read(0x0400, 0x40), read(0x0401, 0xea), read(0x01fc, 0x00),
				read(0x01fd, 0x21), read(0x01fe, 0x00), read(0x01ff, 0x06),
			},
		},
		{
			name: "JMP ($10FF)",
			setup: func(_ *cpu.CPU, mem *ram.RAM) {
				mem.PutInstructions(origin, 0x6c, 0xff, 0x10)
				mem.Poke(0x10ff, 0x00)
				mem.Poke(0x1000, 0x06)
				mem.Poke(0x1100, 0x07)
			},
			expected: []ram.Access{
				read(0x0400, 0x6c), read(0x0401, 0xff), read(0x0402, 0x10),
				read(0x10ff, 0x00), read(0x1000, 0x06),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mc, mem := newCPU(t)
			tc.setup(mc, mem)
			require.Equal(t, tc.expected, busTrace(t, mc, mem))
		})
	}
}

func TestIRQBusTrace(t *testing.T) {
	mc, mem := newCPU(t)
	mem.SetVector(cpubus.IRQ, 0x0600)
	mem.PutInstructions(origin, 0xea)

	mc.Status.Set(registers.InterruptDisable, false)
	mc.IRQ(true)

	// the first two cycles read the PC without advancing it
	require.Equal(t, []ram.Access{
		read(0x0400, 0xea), read(0x0400, 0xea),
		write(0x01fd, 0x04), write(0x01fc, 0x00), write(0x01fb, 0x22),
		read(0xfffe, 0x00), read(0xffff, 0x06),
	}, busTrace(t, mc, mem))
}
