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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/microcode6502/hardware/cpu"
)

// number of instructions between checks of the timer. checking the timer
// channel on every instruction is measurably expensive
const performanceBrake = 1000

// sentinal error returned by the run loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the CPU. The CPU should be ready to run, with the
// program in memory and the reset vector set.
//
// The CPU will run for the specified duration and will create a profile as
// defined by the Profile argument. The effective clock rate is written to
// output.
func Check(output io.Writer, p Profile, path string, mc *cpu.CPU, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	startCycles := mc.Cycles
	startTime := time.Now()

	runner := func() error {
		timer := time.NewTimer(dur)
		defer timer.Stop()

		brake := 0
		for {
			if err := mc.ExecuteInstruction(nil); err != nil {
				return err
			}

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timer.C:
					return timedOut
				default:
				}
			}
		}
	}

	err = RunProfiler(p, path, runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	elapsed := time.Since(startTime).Seconds()
	cycles := mc.Cycles - startCycles
	mhz := CalcMHz(cycles, elapsed)
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds)\n", mhz, cycles, elapsed)

	return nil
}

// CalcMHz returns the effective clock rate in megahertz for the number of
// cycles executed over the duration (in seconds).
func CalcMHz(cycles uint64, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(cycles) / duration / 1000000
}
