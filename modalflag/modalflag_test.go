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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/microcode6502/modalflag"
	"github.com/jetsetilly/microcode6502/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"program.bin"})
	md.AddSubModes("run", "disasm")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "program.bin")
}

func TestSelectedSubMode(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"Disasm", "-count", "10", "program.bin"})
	md.AddSubModes("run", "disasm")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "DISASM")

	md.NewMode()
	count := md.AddInt("count", 0, "number of instructions")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *count, 10)
	test.ExpectEquality(t, md.GetArg(0), "program.bin")
	test.ExpectEquality(t, md.Path(), "DISASM")
}

func TestNestedSubModes(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"test", "b"})
	md.AddSubModes("run", "test")
	_, _ = md.Parse()

	md.NewMode()
	md.AddSubModes("a", "b")
	_, _ = md.Parse()
	test.ExpectEquality(t, md.Mode(), "B")
	test.ExpectEquality(t, md.Path(), "TEST/B")
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"-trace", "-log", "file"})
	trace := md.AddBool("trace", false, "trace bus")
	log := md.AddString("log", "", "log file")
	step := md.AddBool("step", false, "single step")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *trace)
	test.ExpectFailure(t, *step)
	test.ExpectEquality(t, *log, "file")

	var visited []string
	md.Visit(func(f string) {
		visited = append(visited, f)
	})
	test.ExpectEquality(t, strings.Join(visited, ","), "log,trace")
}

func TestAddressFlag(t *testing.T) {
	for _, s := range []string{"0x0600", "$0600", "0600", "600"} {
		md := modalflag.Modes{Output: &strings.Builder{}}
		md.NewArgs([]string{"-origin", s})
		origin := md.AddAddress("origin", 0x0400, "origin")
		_, err := md.Parse()
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, *origin, uint16(0x0600), s)
	}

	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{})
	origin := md.AddAddress("origin", 0x0400, "origin")
	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *origin, uint16(0x0400))

	md = modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"-origin", "10000"})
	_ = md.AddAddress("origin", 0x0400, "origin")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestHelp(t *testing.T) {
	out := &strings.Builder{}
	md := modalflag.Modes{Output: out}
	md.NewArgs([]string{"run", "-help"})
	md.AddSubModes("run")
	_, _ = md.Parse()

	md.NewMode()
	md.AddBool("trace", false, "trace bus activity")
	md.AdditionalHelp("binary file required")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "Usage: for RUN mode"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "trace bus activity"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "binary file required"))

	out.Reset()
	md.NewArgs([]string{"-help"})
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, out.String(), "No help available\n")
}
