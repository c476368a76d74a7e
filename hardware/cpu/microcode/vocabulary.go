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

package microcode

import (
	"fmt"

	"github.com/jetsetilly/microcode6502/hardware/cpu/registers"
)

// Action is the type of a micro-operation.
type Action int

// List of valid Action values.
const (
	// read the byte at the PC and advance the PC
	Fetch Action = iota

	// read from the bus. the address is given by the Address field
	Read

	// write to the bus. the address is given by the Address field
	Write

	// an internal operation that does not use the bus
	Operate

	// the micro-operations up to and including the next Cycle only happen if
	// the condition is true
	Conditional

	// end of the bus cycle
	Cycle

	NumActions
)

func (a Action) String() string {
	switch a {
	case Fetch:
		return "Fetch"
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Operate:
		return "Operate"
	case Conditional:
		return "Conditional"
	case Cycle:
		return "Cycle"
	}
	return "unknown action"
}

// Address is the source of the address for a Read or Write micro-operation.
type Address int

// List of valid Address values.
const (
	// the program counter. the PC is not advanced, unlike a Fetch
	ProgramCounter Address = iota

	// $00 : address-low latch
	ZeroPage

	// address-high latch : address-low latch
	Absolute

	// $00 : pointer latch
	Pointer

	// $01 : stack pointer
	Stack

	NumAddresses
)

func (a Address) String() string {
	switch a {
	case ProgramCounter:
		return "PC"
	case ZeroPage:
		return "ZeroPage"
	case Absolute:
		return "Absolute"
	case Pointer:
		return "Pointer"
	case Stack:
		return "Stack"
	}
	return "unknown address"
}

// Target is the destination of a Fetch or Read and the source of a Write.
type Target int

// List of valid Target values.
const (
	// the instruction register
	Opcode Target = iota

	// the byte is read and then ignored. discarded reads are the dummy
	// cycles of the 6502. not valid for a Write
	Discard

	// address latches
	AddressLow
	AddressHigh

	// the zero page pointer latch used by the indirect addressing modes
	PointerLow

	// the data latch, when the data is an operand from the instruction stream
	Immediate

	// the data latch, when the data is a signed branch offset
	BranchOffset

	// the data latch
	Data

	// registers
	Accumulator
	IndexX
	IndexY

	// the two halves of the program counter
	PCL
	PCH

	// the status register. when written to the bus the break bit is set. when
	// read from the bus the break bit is ignored
	Status

	// the status register with the break bit clear. used by hardware
	// interrupts
	StatusInterrupt

	NumTargets
)

func (t Target) String() string {
	switch t {
	case Opcode:
		return "Opcode"
	case Discard:
		return "Discard"
	case AddressLow:
		return "AddressLow"
	case AddressHigh:
		return "AddressHigh"
	case PointerLow:
		return "PointerLow"
	case Immediate:
		return "Immediate"
	case BranchOffset:
		return "BranchOffset"
	case Data:
		return "Data"
	case Accumulator:
		return "A"
	case IndexX:
		return "X"
	case IndexY:
		return "Y"
	case PCL:
		return "PCL"
	case PCH:
		return "PCH"
	case Status:
		return "Status"
	case StatusInterrupt:
		return "StatusInterrupt"
	}
	return "unknown target"
}

// IsInstructionByte returns true if a Fetch to the target reads a byte that is
// part of the instruction.
func (t Target) IsInstructionByte() bool {
	switch t {
	case Opcode, AddressLow, AddressHigh, PointerLow, Immediate, BranchOffset:
		return true
	}
	return false
}

// Condition is the test made by a Conditional micro-operation.
type Condition int

// List of valid Condition values.
const (
	// the most recent address or branch calculation carried into the high
	// byte
	PageCross Condition = iota

	// the flag named in the micro-operation is set
	FlagSet

	// the flag named in the micro-operation is clear
	FlagClear

	NumConditions
)

func (c Condition) String() string {
	switch c {
	case PageCross:
		return "PageCross"
	case FlagSet:
		return "FlagSet"
	case FlagClear:
		return "FlagClear"
	}
	return "unknown condition"
}

// Op is a single micro-operation. Only the fields relevant to the Action are
// used. An Op is never changed once it has been created.
type Op struct {
	Action    Action
	Address   Address
	Target    Target
	Operation Operation
	Condition Condition

	// the flag used by the Clear and Set operations and by the FlagSet and
	// FlagClear conditions
	Flag registers.Flag
}

func (op Op) String() string {
	switch op.Action {
	case Fetch:
		return fmt.Sprintf("Fetch(%s)", op.Target)
	case Read:
		return fmt.Sprintf("Read(%s -> %s)", op.Address, op.Target)
	case Write:
		return fmt.Sprintf("Write(%s -> %s)", op.Target, op.Address)
	case Operate:
		switch op.Operation {
		case ClearFlag, SetFlag:
			return fmt.Sprintf("%s(%s)", op.Operation, op.Flag)
		}
		return op.Operation.String()
	case Conditional:
		switch op.Condition {
		case FlagSet, FlagClear:
			return fmt.Sprintf("If(%s %s)", op.Condition, op.Flag)
		}
		return fmt.Sprintf("If(%s)", op.Condition)
	case Cycle:
		return "Cycle"
	}
	return op.Action.String()
}

// F creates a Fetch micro-operation.
func F(t Target) Op {
	return Op{Action: Fetch, Target: t}
}

// R creates a Read micro-operation.
func R(a Address, t Target) Op {
	return Op{Action: Read, Address: a, Target: t}
}

// W creates a Write micro-operation.
func W(a Address, t Target) Op {
	return Op{Action: Write, Address: a, Target: t}
}

// Do creates an Operate micro-operation.
func Do(o Operation) Op {
	return Op{Action: Operate, Operation: o}
}

// Clear creates an Operate micro-operation that clears a flag.
func Clear(f registers.Flag) Op {
	return Op{Action: Operate, Operation: ClearFlag, Flag: f}
}

// Set creates an Operate micro-operation that sets a flag.
func Set(f registers.Flag) Op {
	return Op{Action: Operate, Operation: SetFlag, Flag: f}
}

// If creates a Conditional micro-operation.
func If(c Condition) Op {
	return Op{Action: Conditional, Condition: c}
}

// IfFlag creates a Conditional micro-operation that tests a flag.
func IfFlag(f registers.Flag, set bool) Op {
	if set {
		return Op{Action: Conditional, Condition: FlagSet, Flag: f}
	}
	return Op{Action: Conditional, Condition: FlagClear, Flag: f}
}

// CycleBoundary creates the micro-operation that marks the end of a bus
// cycle.
func CycleBoundary() Op {
	return Op{Action: Cycle}
}
