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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/microcode6502/hardware/cpu/execution"
	"github.com/jetsetilly/microcode6502/hardware/cpu/microcode"
	"github.com/jetsetilly/microcode6502/hardware/cpu/registers"
	"github.com/jetsetilly/microcode6502/hardware/memory/cpubus"
	"github.com/jetsetilly/microcode6502/logger"
)

// the kind of micro-operation sequence being executed
type sequence int

const (
	seqReset sequence = iota
	seqFetch
	seqInstruction
	seqIRQ
	seqNMI
)

// Latches are the internal registers of the CPU that are not visible to the
// programmer.
type Latches struct {
	// instruction register
	IR uint8

	// address latches
	ADL uint8
	ADH uint8

	// zero page pointer used by the indirect addressing modes
	BAL uint8

	// data latch
	DL uint8

	// carry out of the most recent address calculation
	Carry bool
}

// CPU implements the NMOS 6502 found in many home computers and games
// consoles of the late 1970s and early 1980s.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// internal registers
	latches Latches

	// direction of the most recent branch. used to fix the high byte of the PC
	// after a page cross
	branchBack bool

	mem   cpubus.Memory
	table *microcode.Table

	// the sequence of micro-operations currently being executed and the index
	// of the next micro-operation
	kind    sequence
	seq     []microcode.Op
	subStep int

	// the opcode has been fetched and will be decoded at the next Step()
	decode bool

	// the most recent sequence has completed. the next Step() will begin a
	// new instruction or interrupt
	boundary bool

	// the state of the IRQ and NMI lines. an NMI is triggered by the
	// transition of the line to the asserted state and is remembered until it
	// is serviced
	irq        bool
	nmi        bool
	nmiPending bool

	// the error that caused the CPU to halt
	halted error

	// total number of cycles since the CPU was created
	Cycles uint64

	// LastResult is updated every cycle. it describes the instruction or
	// interrupt sequence currently being executed. if the Final field is true
	// then the sequence has completed
	LastResult execution.Result

	// PhantomMemAccess is true if the most recent memory access was a read
	// whose value was discarded
	PhantomMemAccess bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is placed into the reset sequence but no memory access is made.
func NewCPU(mem cpubus.Memory) (*CPU, error) {
	table, err := microcode.SharedTable()
	if err != nil {
		return nil, fmt.Errorf("cpu: %w", err)
	}

	mc := &CPU{
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0, "SP"),
		Status: registers.NewStatusRegister(),
		mem:    mem,
		table:  table,
	}

	mc.begin(seqReset, table.Reset())
	mc.LastResult.Interrupt = execution.Reset

	return mc, nil
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb CPU into emulation.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status,
	)
}

// Reset starts the reset sequence. The registers are not changed until the
// sequence is executed by calling Step(). A halted CPU is released by Reset().
func (mc *CPU) Reset() {
	mc.halted = nil
	mc.decode = false
	mc.boundary = false
	mc.nmiPending = false
	mc.latches = Latches{}
	mc.LastResult.Reset(mc.PC.Address())
	mc.LastResult.Interrupt = execution.Reset
	mc.begin(seqReset, mc.table.Reset())
	logger.Log(logger.Allow, "cpu", "reset")
}

// HasReset checks whether the CPU has been reset and has not yet started an
// instruction since.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Interrupt == execution.Reset
}

// State returns the current state of the CPU.
func (mc *CPU) State() State {
	switch {
	case mc.halted != nil:
		return StateHalted
	case mc.kind == seqReset && !mc.boundary:
		return StateReset
	case mc.boundary:
		if mc.interruptPending() {
			return StateInterruptPending
		}
		return StateFetch
	}
	return StateExecuting
}

// SubStep returns the index of the next micro-operation in the current
// sequence.
func (mc *CPU) SubStep() int {
	return mc.subStep
}

// Latches returns a copy of the internal registers.
func (mc *CPU) Latches() Latches {
	return mc.latches
}

// IRQ sets the state of the IRQ line. The line is level triggered and will
// cause an interrupt at every instruction boundary while it is asserted and
// the interrupt disable flag is clear.
func (mc *CPU) IRQ(asserted bool) {
	mc.irq = asserted
}

// NMI requests a non-maskable interrupt. The request is serviced at the next
// instruction boundary.
func (mc *CPU) NMI() {
	mc.nmiPending = true
}

// SetNMI sets the state of the NMI line. Only the transition from the
// unasserted to the asserted state requests an interrupt.
func (mc *CPU) SetNMI(asserted bool) {
	if asserted && !mc.nmi {
		mc.nmiPending = true
	}
	mc.nmi = asserted
}

func (mc *CPU) interruptPending() bool {
	return mc.nmiPending || (mc.irq && !mc.Status.IsSet(registers.InterruptDisable))
}

func (mc *CPU) begin(kind sequence, seq []microcode.Op) {
	mc.kind = kind
	mc.seq = seq
	mc.subStep = 0
}

// start the next instruction or interrupt sequence. called at the beginning of
// the first Step() after an instruction boundary.
func (mc *CPU) next() {
	mc.LastResult.Reset(mc.PC.Address())

	switch {
	case mc.nmiPending:
		mc.nmiPending = false
		mc.LastResult.Interrupt = execution.NMI
		mc.begin(seqNMI, mc.table.NMI())
		logger.Logf(logger.Allow, "cpu", "NMI at %#04x", mc.PC.Address())
	case mc.irq && !mc.Status.IsSet(registers.InterruptDisable):
		mc.LastResult.Interrupt = execution.IRQ
		mc.begin(seqIRQ, mc.table.IRQ())
	default:
		mc.begin(seqFetch, mc.table.Fetch())
	}
}

// Step executes the micro-operations for a single cycle.
func (mc *CPU) Step() error {
	if mc.halted != nil {
		return mc.halted
	}

	if mc.boundary {
		mc.boundary = false
		mc.next()
	} else if mc.decode {
		mc.decode = false

		e := mc.table.Entry(mc.latches.IR)
		if e.Unimplemented {
			mc.halted = DecodingError{OpCode: mc.latches.IR, Address: mc.LastResult.Address}
			logger.Log(logger.Allow, "cpu", mc.halted)
			return mc.halted
		}

		mc.LastResult.Defn = e.Defn
		mc.latches.Carry = false
		mc.begin(seqInstruction, e.Ops)
		mc.subStep = e.Resume
	}

	for {
		op := mc.seq[mc.subStep]
		mc.subStep++
		if op.Action == microcode.Cycle {
			break
		}
		if err := mc.execute(op); err != nil {
			mc.halted = fmt.Errorf("cpu: %w", err)
			return mc.halted
		}
	}

	mc.Cycles++
	mc.LastResult.Cycles++
	mc.settle()

	return nil
}

// settle the sequence after the end of a cycle. conditional cycles that are
// not to be executed are skipped so that the next Step() always begins with a
// cycle that accesses memory. if there are no more cycles in the sequence then
// the sequence has completed.
func (mc *CPU) settle() {
	for mc.subStep < len(mc.seq) {
		op := mc.seq[mc.subStep]
		if op.Action != microcode.Conditional {
			return
		}

		mc.subStep++

		if mc.condition(op) {
			switch op.Condition {
			case microcode.PageCross:
				mc.LastResult.PageFault = true
			case microcode.FlagSet, microcode.FlagClear:
				mc.LastResult.BranchSuccess = true
			}
			return
		}

		for mc.seq[mc.subStep].Action != microcode.Cycle {
			mc.subStep++
		}
		mc.subStep++
	}

	if mc.kind == seqFetch {
		mc.decode = true
		return
	}

	mc.boundary = true
	mc.LastResult.Final = true
}

func (mc *CPU) condition(op microcode.Op) bool {
	switch op.Condition {
	case microcode.PageCross:
		return mc.latches.Carry
	case microcode.FlagSet:
		return mc.Status.IsSet(op.Flag)
	case microcode.FlagClear:
		return !mc.Status.IsSet(op.Flag)
	}
	return false
}

// NilCycleCallback can be used as an argument to ExecuteInstruction(). It does
// nothing.
func NilCycleCallback() error {
	return nil
}

// ExecuteInstruction steps the CPU until the next instruction boundary. The
// cycleCallback function is called after every cycle. If the CPU is already at
// an instruction boundary then the next instruction (or interrupt) is
// executed in its entirety.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	for {
		if err := mc.Step(); err != nil {
			return err
		}

		if cycleCallback != nil {
			if err := cycleCallback(); err != nil {
				return err
			}
		}

		if mc.boundary {
			return nil
		}
	}
}

// Trace returns the micro-operations remaining in the current sequence, up to
// the end of the sequence.
func (mc *CPU) Trace() string {
	s := strings.Builder{}
	for i, op := range mc.seq[mc.subStep:] {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(op.String())
	}
	return s.String()
}
