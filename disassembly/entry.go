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
	"strings"

	"github.com/jetsetilly/microcode6502/hardware/cpu/execution"
	"github.com/jetsetilly/microcode6502/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded from memory as though the address is the
// start of a valid instruction. Executed entries have been created from the
// result of the CPU executing the instruction.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelExecuted
)

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// copy of the execution result. for decoded entries only the Address,
	// Defn, ByteCount and InstructionData fields are meaningful
	Result execution.Result

	// string representations of information in execution.Result
	Bytecode string
	Address  string
	Operator string
	Operand  string
}

// String returns a very basic representation of an Entry.
//
// See StringColumnated() for a fancier option.
func (e *Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", e.Address, e.Operator, e.Operand))
}

// ColumnAttr controls what is included in the string returned by Entry.StringColumnated().
type ColumnAttr struct {
	ByteCode bool
	Cycles   bool
	Notes    bool
}

// StringColumnated returns a columnated string representation of the Entry.
// Trailing newline is not included.
func (e *Entry) StringColumnated(attr ColumnAttr) string {
	if e == nil {
		return ""
	}

	s := strings.Builder{}

	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("%-8s ", e.Bytecode))
	}

	s.WriteString(fmt.Sprintf("%s %s %-9s", e.Address, e.Operator, e.Operand))

	if attr.Cycles {
		s.WriteString(fmt.Sprintf(" %-3s", e.Cycles()))
	}

	if attr.Notes {
		if n := e.Notes(); n != "" {
			s.WriteString(" ")
			s.WriteString(n)
		}
	}

	return strings.TrimRight(s.String(), " ")
}

// Cycles returns the number of cycles for the entry. Executed entries show the
// number of cycles actually taken and, for an unfinished instruction, the
// number of cycles expected. Decoded entries show the cycles in the definition,
// with an asterisk if the instruction can take longer.
func (e *Entry) Cycles() string {
	defn := e.Result.Defn
	switch {
	case defn == nil:
		return "?"
	case e.Level == EntryLevelDecoded && defn.PageSensitive:
		return fmt.Sprintf("%d*", defn.Cycles)
	case e.Level == EntryLevelDecoded:
		return fmt.Sprintf("%d", defn.Cycles)
	case !e.Result.Final:
		return fmt.Sprintf("%d of %d", e.Result.Cycles, defn.Cycles)
	}
	return fmt.Sprintf("%d", e.Result.Cycles)
}

// Notes summarises the branch outcome, any page fault and any CPU bug
// triggered by an executed instruction. Decoded and unfinished entries have no
// notes.
func (e *Entry) Notes() string {
	if e.Level == EntryLevelDecoded || !e.Result.Final {
		return ""
	}

	var notes []string

	if e.Result.Defn != nil && e.Result.Defn.IsBranch() {
		outcome := "branch failed"
		if e.Result.BranchSuccess {
			outcome = "branch succeeded"
		}
		if e.Result.PageFault {
			outcome += " with page-fault"
		}
		notes = append(notes, outcome)
	} else if e.Result.PageFault {
		notes = append(notes, "page-fault")
	}

	if e.Result.CPUBug != execution.NoBug {
		notes = append(notes, string(e.Result.CPUBug))
	}

	return strings.Join(notes, " ")
}

// operand format for each addressing mode. modes not listed show the operand
// without decoration
var decoration = map[instructions.AddressingMode]string{
	instructions.Immediate:        "#%s",
	instructions.Indirect:         "(%s)",
	instructions.IndexedIndirect:  "(%s,X)",
	instructions.IndirectIndexed:  "(%s),Y",
	instructions.AbsoluteIndexedX: "%s,X",
	instructions.AbsoluteIndexedY: "%s,Y",
	instructions.ZeroPageIndexedX: "%s,X",
	instructions.ZeroPageIndexedY: "%s,Y",
}

func addrModeDecoration(operand string, mode instructions.AddressingMode) string {
	if f, ok := decoration[mode]; ok {
		return fmt.Sprintf(f, operand)
	}
	return operand
}

// branch destination for a two byte branch instruction at addr with the
// offset in the low byte of operand.
func absoluteBranchDestination(addr uint16, operand uint16) uint16 {
	return addr + 2 + uint16(int8(operand))
}
