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
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/microcode6502/logger"
	"github.com/jetsetilly/microcode6502/modalflag"
	"github.com/jetsetilly/microcode6502/performance"
	"github.com/jetsetilly/microcode6502/performance/limiter"
	"github.com/jetsetilly/microcode6502/statsview"
)

func run(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "load address of the program")
	cycles := md.AddInt("cycles", 1000, "number of cycles to run (0 for no limit)")
	trace := md.AddBool("trace", false, "print bus activity for every cycle")
	step := md.AddBool("step", false, "wait for a key press before every cycle (q to quit)")
	rate := md.AddInt("rate", 0, "cycles per second (0 for no limit)")
	prof := md.AddString("profile", "NONE", "run through the profiler: CPU, MEM, TRACE, BLOCK")
	viz := md.AddString("memviz", "", "write a graph of the final CPU state to file")
	stats := md.AddBool("statsview", false, "launch runtime statistics server")
	log := md.AddBool("log", false, "echo log to stderr")

	md.AdditionalHelp("the reset vector is set to the origin address before the CPU is reset")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	data, err := loadArg(md)
	if err != nil {
		return err
	}

	profile, err := performance.ParseProfileString(*prof)
	if err != nil {
		return err
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stderr))
		defer logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(md.Output)
	}

	sess, err := newSession(md.Output, data, *origin)
	if err != nil {
		return err
	}
	sess.trace = *trace
	sess.maxCycles = *cycles

	sess.lim = limiter.NewLimiter(*rate)
	defer sess.lim.Stop()

	if *step {
		stp, err := newStepper()
		if err != nil {
			return err
		}
		defer stp.close()
		sess.wait = stp.wait
	}

	err = performance.RunProfiler(profile, ".", sess.run)
	if err != nil {
		return err
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()

		latches := sess.mc.Latches()
		memviz.Map(f, &sess.mc.LastResult, &latches)
		logger.Logf(logger.Allow, "memviz", "written to %s", *viz)
	}

	return nil
}
