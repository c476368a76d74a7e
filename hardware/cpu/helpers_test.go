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

	"github.com/jetsetilly/microcode6502/hardware/cpu"
	"github.com/jetsetilly/microcode6502/hardware/cpu/microcode"
	"github.com/jetsetilly/microcode6502/hardware/memory/cpubus"
	"github.com/jetsetilly/microcode6502/hardware/memory/ram"
	"github.com/jetsetilly/microcode6502/test"
)

// programs in the tests start at this address
const origin = uint16(0x0400)

// newCPU returns a CPU that has completed the reset sequence and is about to
// fetch the opcode at the origin address
func newCPU(t *testing.T) (*cpu.CPU, *ram.RAM) {
	t.Helper()

	mem := ram.NewRAM()
	mem.SetVector(cpubus.Reset, origin)

	mc, err := cpu.NewCPU(mem)
	test.DemandSuccess(t, err)

	for range microcode.InterruptCycles {
		test.DemandSuccess(t, mc.Step())
	}
	test.DemandEquality(t, mc.State(), cpu.StateFetch)

	return mc, mem
}

// step executes the next instruction and checks the result for consistency
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	test.DemandSuccess(t, mc.ExecuteInstruction(cpu.NilCycleCallback))
	test.DemandSuccess(t, mc.LastResult.IsValid())
}
