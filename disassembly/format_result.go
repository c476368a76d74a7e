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

	"github.com/jetsetilly/microcode6502/hardware/cpu/execution"
	"github.com/jetsetilly/microcode6502/hardware/cpu/instructions"
)

// FormatResult creates an Entry for the execution result. The result does not
// need to be final, in which case the unknown bytes of the instruction are
// shown with question marks.
func FormatResult(result execution.Result, level EntryLevel) *Entry {
	e := &Entry{
		Result: result,
		Level:  level,
	}

	// address of instruction
	e.Address = fmt.Sprintf("$%04x", result.Address)

	// reset and interrupt sequences have no definition
	if result.Interrupt != execution.NoInterrupt {
		e.Operator = result.Interrupt.String()
		return e
	}

	// if definition is nil then set the operator field to ??? and return with
	// no further formatting
	if result.Defn == nil {
		e.Operator = "???"
		return e
	}

	e.Operator = result.Defn.Operator.String()

	// bytecode and operand string is assembled depending on the number of
	// expected bytes (result.Defn.Bytes) and the number of bytes read so far
	// (result.ByteCount)
	var operand string
	data := result.InstructionData

	switch result.Defn.Bytes {
	case 3:
		switch result.ByteCount {
		case 3:
			operand = fmt.Sprintf("$%04x", data)
			e.Bytecode = fmt.Sprintf("%02x %02x %02x", result.Defn.OpCode, data&0x00ff, data>>8)
		case 2:
			operand = fmt.Sprintf("$??%02x", data&0x00ff)
			e.Bytecode = fmt.Sprintf("%02x %02x ??", result.Defn.OpCode, data&0x00ff)
		default:
			operand = "$????"
			e.Bytecode = fmt.Sprintf("%02x ?? ??", result.Defn.OpCode)
		}
	case 2:
		switch result.ByteCount {
		case 2:
			operand = fmt.Sprintf("$%02x", data&0x00ff)
			e.Bytecode = fmt.Sprintf("%02x %02x", result.Defn.OpCode, data&0x00ff)
		default:
			operand = "$??"
			e.Bytecode = fmt.Sprintf("%02x ??", result.Defn.OpCode)
		}
	default:
		e.Bytecode = fmt.Sprintf("%02x", result.Defn.OpCode)
	}

	// branch operands are shown as the destination address
	if result.Defn.IsBranch() && result.ByteCount == 2 {
		operand = fmt.Sprintf("$%04x", absoluteBranchDestination(result.Address, data))
	}

	if result.Defn.AddressingMode != instructions.Implied {
		e.Operand = addrModeDecoration(operand, result.Defn.AddressingMode)
	}

	return e
}
