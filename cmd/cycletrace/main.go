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

// Cycletrace runs a 6502 binary on the microcode CPU and prints the result of
// every instruction, and optionally every bus access, as it happens.
//
// Usage:
//
//	cycletrace [RUN] [flags] program.bin
//	cycletrace DISASM [flags] program.bin
//	cycletrace PERFORMANCE [flags] program.bin
//
// The program is loaded into a flat 64k memory at the origin address (0x0400
// by default) and the reset vector is pointed at the origin. The -help flag
// lists the flags for each mode.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/microcode6502/modalflag"
)

const defaultOrigin = uint16(0x0400)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch returns the value to be used with os.Exit().
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// loadArg returns the contents of the single file named on the command line.
func loadArg(md *modalflag.Modes) ([]byte, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("a binary file is required")
	case 1:
		return os.ReadFile(md.GetArg(0))
	}
	return nil, fmt.Errorf("too many arguments for %s mode", md)
}
