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
	"github.com/jetsetilly/microcode6502/disassembly"
	"github.com/jetsetilly/microcode6502/hardware/memory/ram"
	"github.com/jetsetilly/microcode6502/modalflag"
)

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "load address of the program")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	count := md.AddInt("count", 0, "number of instructions (0 for the whole file)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	data, err := loadArg(md)
	if err != nil {
		return err
	}

	mem := ram.NewRAM()
	if err := mem.Load(*origin, data); err != nil {
		return err
	}

	entries := disassembleFile(mem, *origin, len(data), *count)
	return disassembly.Write(md.Output, entries, disassembly.ColumnAttr{ByteCode: *bytecode})
}

// disassembleFile decodes count instructions from the origin. if count is
// zero then instructions are decoded until length bytes have been covered.
func disassembleFile(mem *ram.RAM, origin uint16, length int, count int) []*disassembly.Entry {
	if count > 0 {
		return disassembly.Linear(mem, origin, count)
	}

	var entries []*disassembly.Entry
	for covered := 0; covered < length; {
		e := disassembly.Decode(mem, origin+uint16(covered))
		entries = append(entries, e)
		if e.Result.Defn != nil {
			covered += e.Result.Defn.Bytes
		} else {
			covered++
		}
	}
	return entries
}
