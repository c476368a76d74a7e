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

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/microcode6502/disassembly"
	"github.com/jetsetilly/microcode6502/hardware/cpu"
	"github.com/jetsetilly/microcode6502/hardware/memory/cpubus"
	"github.com/jetsetilly/microcode6502/hardware/memory/ram"
	"github.com/jetsetilly/microcode6502/performance/limiter"
)

// session is a single run of a program.
type session struct {
	output io.Writer

	mem *ram.RAM
	mc  *cpu.CPU

	// print every bus access
	trace bool

	// zero means no limit
	maxCycles int

	// optional. lim controls the cycle rate and wait is called before every
	// cycle. wait returns false if the session should end
	lim  *limiter.Limiter
	wait func() (bool, error)
}

func newSession(output io.Writer, data []byte, origin uint16) (*session, error) {
	mem := ram.NewRAM()
	if err := mem.Load(origin, data); err != nil {
		return nil, err
	}
	mem.SetVector(cpubus.Reset, origin)

	mc, err := cpu.NewCPU(mem)
	if err != nil {
		return nil, err
	}

	return &session{
		output: output,
		mem:    mem,
		mc:     mc,
	}, nil
}

var columns = disassembly.ColumnAttr{ByteCode: true, Cycles: true, Notes: true}

// run until the cycle limit is reached or the CPU halts. a decoding error
// ends the session normally.
func (sess *session) run() error {
	sess.mem.Record(sess.trace)
	defer sess.mem.Record(false)

	for sess.maxCycles == 0 || sess.mc.Cycles < uint64(sess.maxCycles) {
		if sess.wait != nil {
			cont, err := sess.wait()
			if err != nil {
				return err
			}
			if !cont {
				break // for loop
			}
		}

		if sess.lim != nil {
			sess.lim.Wait()
		}

		sess.mem.ClearActivity()

		err := sess.mc.Step()
		if err != nil {
			if errors.Is(err, cpu.ErrDecoding) {
				fmt.Fprintf(sess.output, "halted: %v\n", err)
				break // for loop
			}
			return err
		}

		if sess.trace {
			sess.printActivity()
		}

		if sess.mc.LastResult.Final {
			e := disassembly.FormatResult(sess.mc.LastResult, disassembly.EntryLevelExecuted)
			fmt.Fprintln(sess.output, e.StringColumnated(columns))
		}
	}

	fmt.Fprintf(sess.output, "%s cycles=%d\n", sess.mc, sess.mc.Cycles)

	return nil
}

func (sess *session) printActivity() {
	for _, a := range sess.mem.Activity() {
		phantom := ""
		if sess.mc.PhantomMemAccess && !a.Write {
			phantom = " (phantom)"
		}
		fmt.Fprintf(sess.output, "  %6d  %s%s\n", sess.mc.Cycles, a, phantom)
	}
}
