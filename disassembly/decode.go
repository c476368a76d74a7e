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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/microcode6502/hardware/cpu/execution"
	"github.com/jetsetilly/microcode6502/hardware/cpu/instructions"
	"github.com/jetsetilly/microcode6502/hardware/memory/cpubus"
)

// Decode the instruction at the address. The returned entry has the level
// EntryLevelDecoded. If the byte at the address is not a documented opcode
// then the Operator of the entry is "???".
func Decode(mem cpubus.Peeker, address uint16) *Entry {
	result := execution.Result{
		Address:   address,
		ByteCount: 1,
	}

	opcode := mem.Peek(address)
	result.Defn = instructions.Lookup(opcode)
	if result.Defn == nil {
		e := FormatResult(result, EntryLevelDecoded)
		e.Bytecode = fmt.Sprintf("%02x", opcode)
		return e
	}

	switch result.Defn.Bytes {
	case 3:
		result.InstructionData = uint16(mem.Peek(address+1)) | uint16(mem.Peek(address+2))<<8
	case 2:
		result.InstructionData = uint16(mem.Peek(address + 1))
	}
	result.ByteCount = result.Defn.Bytes

	return FormatResult(result, EntryLevelDecoded)
}

// Linear disassembles count instructions starting at the origin. The address
// of each entry follows on from the length of the previous instruction. Bytes
// that are not documented opcodes are treated as single byte instructions.
func Linear(mem cpubus.Peeker, origin uint16, count int) []*Entry {
	entries := make([]*Entry, 0, count)

	address := origin
	for range count {
		e := Decode(mem, address)
		entries = append(entries, e)

		n := 1
		if e.Result.Defn != nil {
			n = e.Result.Defn.Bytes
		}
		address += uint16(n)
	}

	return entries
}

// Write the entries to output, one per line.
func Write(output io.Writer, entries []*Entry, attr ColumnAttr) error {
	for _, e := range entries {
		if _, err := io.WriteString(output, e.StringColumnated(attr)); err != nil {
			return err
		}
		if _, err := io.WriteString(output, "\n"); err != nil {
			return err
		}
	}
	return nil
}
