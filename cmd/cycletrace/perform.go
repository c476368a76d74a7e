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
	"github.com/jetsetilly/microcode6502/modalflag"
	"github.com/jetsetilly/microcode6502/performance"
)

func perform(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "load address of the program")
	duration := md.AddString("duration", "5s", "run duration")
	prof := md.AddString("profile", "NONE", "run through the profiler: CPU, MEM, TRACE, BLOCK")

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

	sess, err := newSession(md.Output, data, *origin)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, profile, ".", sess.mc, *duration)
}
