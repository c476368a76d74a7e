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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/microcode6502/hardware/cpu/instructions"
)

// Interrupt identifies the reset or interrupt sequence that a Result
// describes.
type Interrupt int

// List of valid Interrupt values.
const (
	NoInterrupt Interrupt = iota
	Reset
	IRQ
	NMI
)

func (i Interrupt) String() string {
	switch i {
	case NoInterrupt:
		return ""
	case Reset:
		return "RESET"
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	}
	return "unknown interrupt"
}

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
//
// The Result type is updated every cycle during the execution of the
// instruction. The Final field indicates that the instruction (or interrupt)
// has completed.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the instruction definition. nil for reset and interrupt sequences
	Defn *instructions.Definition

	// the reset or interrupt sequence. NoInterrupt for instructions
	Interrupt Interrupt

	// the number of bytes of the instruction read so far
	ByteCount int

	// the operand of the instruction. for single byte operands only the low
	// byte is valid
	InstructionData uint16

	// the number of cycles taken so far. usually the same as Defn.Cycles once
	// the instruction has completed but in the case of page faults and
	// branches, this value may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction took the branch
	BranchSuccess bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// whether this data has been finalised - note that the values of the
	// other fields may be incomplete unless Final is true
	Final bool
}

// Reset the Result for a new instruction or interrupt beginning at the
// address.
func (r *Result) Reset(address uint16) {
	*r = Result{Address: address}
}

func (r Result) String() string {
	s := strings.Builder{}

	if r.Final {
		s.WriteString(fmt.Sprintf("0x%04x ", r.Address))
	} else {
		s.WriteString("       ")
	}

	if r.Interrupt != NoInterrupt {
		s.WriteString(r.Interrupt.String())
	} else if r.Defn == nil {
		s.WriteString("???")
	} else {
		s.WriteString(r.Defn.Operator.String())
		if op := r.operand(); op != "" {
			s.WriteString(" ")
			s.WriteString(op)
		}
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	} else {
		s.WriteString(" [v]")
	}

	if r.PageFault {
		s.WriteString(" page-fault")
	}

	if r.BranchSuccess {
		s.WriteString(" branched")
	}

	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}

	return s.String()
}

// operand formats the instruction data according to the addressing mode.
func (r Result) operand() string {
	var data string

	switch r.Defn.Bytes {
	case 2:
		if r.ByteCount < 2 {
			data = "??"
		} else {
			data = fmt.Sprintf("$%02x", uint8(r.InstructionData))
		}
	case 3:
		if r.ByteCount < 3 {
			data = "????"
		} else {
			data = fmt.Sprintf("$%04x", r.InstructionData)
		}
	default:
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		return fmt.Sprintf("#%s", data)
	case instructions.Indirect:
		return fmt.Sprintf("(%s)", data)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("(%s,X)", data)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("(%s),Y", data)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		return fmt.Sprintf("%s,X", data)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		return fmt.Sprintf("%s,Y", data)
	}

	return data
}
