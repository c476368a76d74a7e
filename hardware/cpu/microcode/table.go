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
	"errors"
	"fmt"
	"sync"

	"github.com/jetsetilly/microcode6502/hardware/cpu/instructions"
	"github.com/jetsetilly/microcode6502/logger"
)

// ErrBuild is matched by every BuildError with errors.Is().
var ErrBuild = errors.New("microcode build error")

// BuildError is returned when the micro-operation sequence for an instruction
// or interrupt cannot be created or is inconsistent with its definition.
type BuildError struct {
	OpCode uint8

	// the mnemonic of the instruction or the name of the interrupt sequence
	Name string

	Err error
}

func (e BuildError) Error() string {
	switch e.Name {
	case "RESET", "IRQ", "NMI":
		return fmt.Sprintf("microcode: %s sequence: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("microcode: %s (%#02x): %v", e.Name, e.OpCode, e.Err)
}

// Is implements the errors.Is() interface.
func (e BuildError) Is(target error) bool {
	return target == ErrBuild
}

// Unwrap implements the errors.Unwrap() interface.
func (e BuildError) Unwrap() error {
	return e.Err
}

// Entry in the instruction table.
type Entry struct {
	OpCode uint8

	// Unimplemented is true if the opcode is not a documented instruction.
	// Defn and Ops are not valid in that case
	Unimplemented bool

	Defn *instructions.Definition
	Ops  []Op

	// index of the first micro-operation after the opcode fetch
	Resume int
}

// Table maps every opcode to its micro-operations. It also holds the
// sequences for the reset and interrupt signals.
type Table struct {
	entries [256]Entry

	// sequence for the opcode fetch. this is the same as the start of every
	// instruction
	fetch []Op

	reset []Op
	irq   []Op
	nmi   []Op
}

// NewTable creates and checks the instruction table. A BuildError is returned
// if any sequence fails the check.
func NewTable() (*Table, error) {
	tab := &Table{
		fetch: fetchOpcode(),
		reset: Reset(),
		irq:   IRQ(),
		nmi:   NMI(),
	}

	for i := range tab.entries {
		opcode := uint8(i)

		defn := instructions.Lookup(opcode)
		if defn == nil {
			tab.entries[i] = Entry{OpCode: opcode, Unimplemented: true}
			continue
		}

		ops, err := Instruction(defn)
		if err == nil {
			err = Validate(defn, ops)
		}
		if err != nil {
			err = BuildError{OpCode: opcode, Name: defn.Operator.String(), Err: err}
			logger.Log(logger.Allow, "microcode", err)
			return nil, err
		}

		tab.entries[i] = Entry{
			OpCode: opcode,
			Defn:   defn,
			Ops:    ops,
			Resume: len(tab.fetch),
		}
	}

	for _, s := range []struct {
		name string
		ops  []Op
	}{
		{"RESET", tab.reset},
		{"IRQ", tab.irq},
		{"NMI", tab.nmi},
	} {
		if err := ValidateInterrupt(s.ops); err != nil {
			err = BuildError{Name: s.name, Err: err}
			logger.Log(logger.Allow, "microcode", err)
			return nil, err
		}
	}

	return tab, nil
}

// the instruction table only needs to be built once
var sharedTable = sync.OnceValues(NewTable)

// SharedTable returns an instance of Table that is built on first use and
// shared thereafter. Tables are never changed once they have been built.
func SharedTable() (*Table, error) {
	return sharedTable()
}

// Entry returns the entry for the opcode. The entry is never nil.
func (tab *Table) Entry(opcode uint8) *Entry {
	return &tab.entries[opcode]
}

// Fetch returns the sequence for the opcode fetch.
func (tab *Table) Fetch() []Op {
	return tab.fetch
}

// Reset returns the sequence for the reset signal.
func (tab *Table) Reset() []Op {
	return tab.reset
}

// IRQ returns the sequence for a maskable interrupt.
func (tab *Table) IRQ() []Op {
	return tab.irq
}

// NMI returns the sequence for a non-maskable interrupt.
func (tab *Table) NMI() []Op {
	return tab.nmi
}
