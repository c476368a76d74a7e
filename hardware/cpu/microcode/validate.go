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

	"github.com/jetsetilly/microcode6502/hardware/cpu/instructions"
)

// Counts is the result of counting the cycles in a sequence of
// micro-operations.
type Counts struct {
	// cycles that always happen
	Unconditional int

	// cycles introduced by a Conditional micro-operation
	Conditional int
}

// Count the cycles in a sequence of micro-operations. The sequence is checked
// for structural errors at the same time:
//
//   - every micro-operation must be valid
//   - the sequence must end with a Cycle
//   - a Conditional must be the first micro-operation of a cycle
//   - every cycle must contain exactly one bus access (Fetch, Read or Write)
func Count(ops []Op) (Counts, error) {
	var c Counts

	if len(ops) == 0 {
		return c, fmt.Errorf("empty sequence")
	}

	if ops[len(ops)-1].Action != Cycle {
		return c, fmt.Errorf("sequence does not end with a cycle boundary")
	}

	var conditional bool
	var access int
	startOfCycle := true

	for i, op := range ops {
		if err := validateOp(op); err != nil {
			return c, fmt.Errorf("micro-operation %d: %w", i, err)
		}

		switch op.Action {
		case Conditional:
			if !startOfCycle {
				return c, fmt.Errorf("micro-operation %d: conditional is not at the start of a cycle", i)
			}
			conditional = true

		case Fetch, Read, Write:
			access++

		case Cycle:
			if access != 1 {
				return c, fmt.Errorf("micro-operation %d: cycle has %d bus accesses", i, access)
			}
			if conditional {
				c.Conditional++
			} else {
				c.Unconditional++
			}
			conditional = false
			access = 0
		}

		startOfCycle = op.Action == Cycle
	}

	return c, nil
}

// Validate checks that the micro-operations for an instruction are consistent
// with its definition. The number of unconditional cycles must be the same as
// the documented number of cycles. Page sensitive instructions must have one
// conditional cycle and branch instructions must have two.
func Validate(defn *instructions.Definition, ops []Op) error {
	c, err := Count(ops)
	if err != nil {
		return err
	}

	if ops[0] != F(Opcode) || ops[1] != CycleBoundary() {
		return fmt.Errorf("sequence does not begin with the opcode fetch")
	}

	for i, op := range ops[1:] {
		if op.Action == Fetch && op.Target == Opcode {
			return fmt.Errorf("micro-operation %d: unexpected opcode fetch", i+1)
		}
	}

	if c.Unconditional != defn.Cycles {
		return fmt.Errorf("sequence has %d cycles but the instruction has %d", c.Unconditional, defn.Cycles)
	}

	var expected int
	if defn.IsBranch() {
		expected = 2
	} else if defn.PageSensitive {
		expected = 1
	}
	if c.Conditional != expected {
		return fmt.Errorf("sequence has %d conditional cycles but %d were expected", c.Conditional, expected)
	}

	return nil
}

// ValidateInterrupt checks the sequence for a reset or interrupt signal.
func ValidateInterrupt(ops []Op) error {
	c, err := Count(ops)
	if err != nil {
		return err
	}

	for i, op := range ops {
		if op.Action == Fetch {
			return fmt.Errorf("micro-operation %d: interrupt sequences do not advance the PC", i)
		}
	}

	if c.Unconditional != InterruptCycles || c.Conditional != 0 {
		return fmt.Errorf("sequence has %d cycles (%d conditional) but %d are required", c.Unconditional, c.Conditional, InterruptCycles)
	}

	return nil
}

// validateOp checks that the fields of the micro-operation are consistent with
// the Action.
func validateOp(op Op) error {
	switch op.Action {
	case Fetch:
		switch op.Target {
		case Opcode, Discard, AddressLow, AddressHigh, PointerLow, Immediate, BranchOffset:
			return nil
		}
		return fmt.Errorf("cannot fetch to target (%s)", op.Target)

	case Read:
		if op.Address < 0 || op.Address >= NumAddresses {
			return fmt.Errorf("invalid address (%d)", op.Address)
		}
		switch op.Target {
		case Opcode, StatusInterrupt, Immediate, BranchOffset:
			return fmt.Errorf("cannot read to target (%s)", op.Target)
		}
		if op.Target < 0 || op.Target >= NumTargets {
			return fmt.Errorf("invalid target (%d)", op.Target)
		}
		return nil

	case Write:
		if op.Address < 0 || op.Address >= NumAddresses {
			return fmt.Errorf("invalid address (%d)", op.Address)
		}
		switch op.Target {
		case Data, Accumulator, IndexX, IndexY, PCL, PCH, Status, StatusInterrupt:
			return nil
		}
		return fmt.Errorf("cannot write from target (%s)", op.Target)

	case Operate:
		if op.Operation < 0 || op.Operation >= NumOperations {
			return fmt.Errorf("invalid operation (%d)", op.Operation)
		}
		switch op.Operation {
		case ClearFlag, SetFlag:
			if op.Flag == 0 {
				return fmt.Errorf("%s requires a flag", op.Operation)
			}
		}
		return nil

	case Conditional:
		switch op.Condition {
		case PageCross:
			return nil
		case FlagSet, FlagClear:
			if op.Flag == 0 {
				return fmt.Errorf("%s requires a flag", op.Condition)
			}
			return nil
		}
		return fmt.Errorf("invalid condition (%d)", op.Condition)

	case Cycle:
		return nil
	}

	return fmt.Errorf("invalid action (%d)", op.Action)
}
