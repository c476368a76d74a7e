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

// Package modalflag layers sub-modes over the flag package. A command line
// such as:
//
//	cycletrace disasm -origin 0x0400 program.bin
//
// is processed in two passes. The first pass finds the sub-mode (DISASM) and
// the second pass, begun with a call to NewMode(), processes the flags and
// arguments belonging to that sub-mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "disasm")
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		origin := md.AddAddress("origin", 0x0400, "load address")
//		p, err = md.Parse()
//		...
//	}
//
// The first sub-mode in the list is the default and is selected when the
// argument list does not name one. Sub-mode names are case insensitive.
//
// Help is printed to the Output writer when the -help flag is encountered and
// is reported to the caller as ParseHelp.
package modalflag
