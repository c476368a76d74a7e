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

// Operation is an internal operation performed by an Operate micro-operation.
// Operations that change a register also update the zero and negative flags
// where the 6502 does so.
type Operation int

// List of valid Operation values.
const (
	// clear the flag named by the micro-operation
	ClearFlag Operation = iota

	// set the flag named by the micro-operation
	SetFlag

	// load register from the data latch
	LoadA
	LoadX
	LoadY

	// register transfers
	TAX
	TAY
	TXA
	TYA
	TSX
	TXS

	// register increment and decrement
	INX
	INY
	DEX
	DEY

	// arithmetic and logic. the operand is the data latch
	ADC
	SBC
	AND
	ORA
	EOR
	CMP
	CPX
	CPY
	BIT

	// shifts and rotates of the accumulator
	ASLA
	LSRA
	ROLA
	RORA

	// shifts, rotates, increment and decrement of the data latch
	ASL
	LSR
	ROL
	ROR
	INC
	DEC

	// add index register to the address-low latch. a carry into the high
	// byte is remembered for the FixAddressHigh operation and the PageCross
	// condition
	IndexAddressX
	IndexAddressY

	// add any remembered carry to the address-high latch
	FixAddressHigh

	// add the X register to the pointer latch. there is no carry
	IndexPointerX

	// increment the pointer latch. there is no carry
	IncrementPointer

	// increment the address-low latch. there is no carry into the address-high
	// latch, which is the cause of the JMP indirect bug
	IncrementAddress

	// stack pointer
	IncrementStack
	DecrementStack

	// load the PC from the address latches
	Jump

	// add the signed branch offset to the low byte of the PC. a carry or borrow
	// is remembered for the BranchHigh operation and the PageCross condition
	BranchLow

	// apply any remembered carry or borrow to the high byte of the PC
	BranchHigh

	// load the address latches with the address of an interrupt vector
	VectorReset
	VectorIRQ
	VectorNMI

	// no effect
	NoOperation

	NumOperations
)

func (o Operation) String() string {
	switch o {
	case ClearFlag:
		return "ClearFlag"
	case SetFlag:
		return "SetFlag"
	case LoadA:
		return "LoadA"
	case LoadX:
		return "LoadX"
	case LoadY:
		return "LoadY"
	case TAX:
		return "TAX"
	case TAY:
		return "TAY"
	case TXA:
		return "TXA"
	case TYA:
		return "TYA"
	case TSX:
		return "TSX"
	case TXS:
		return "TXS"
	case INX:
		return "INX"
	case INY:
		return "INY"
	case DEX:
		return "DEX"
	case DEY:
		return "DEY"
	case ADC:
		return "ADC"
	case SBC:
		return "SBC"
	case AND:
		return "AND"
	case ORA:
		return "ORA"
	case EOR:
		return "EOR"
	case CMP:
		return "CMP"
	case CPX:
		return "CPX"
	case CPY:
		return "CPY"
	case BIT:
		return "BIT"
	case ASLA:
		return "ASLA"
	case LSRA:
		return "LSRA"
	case ROLA:
		return "ROLA"
	case RORA:
		return "RORA"
	case ASL:
		return "ASL"
	case LSR:
		return "LSR"
	case ROL:
		return "ROL"
	case ROR:
		return "ROR"
	case INC:
		return "INC"
	case DEC:
		return "DEC"
	case IndexAddressX:
		return "IndexAddressX"
	case IndexAddressY:
		return "IndexAddressY"
	case FixAddressHigh:
		return "FixAddressHigh"
	case IndexPointerX:
		return "IndexPointerX"
	case IncrementPointer:
		return "IncrementPointer"
	case IncrementAddress:
		return "IncrementAddress"
	case IncrementStack:
		return "IncrementStack"
	case DecrementStack:
		return "DecrementStack"
	case Jump:
		return "Jump"
	case BranchLow:
		return "BranchLow"
	case BranchHigh:
		return "BranchHigh"
	case VectorReset:
		return "VectorReset"
	case VectorIRQ:
		return "VectorIRQ"
	case VectorNMI:
		return "VectorNMI"
	case NoOperation:
		return "NoOperation"
	}
	return "unknown operation"
}
