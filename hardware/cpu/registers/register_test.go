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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/microcode6502/hardware/cpu/registers"
	"github.com/jetsetilly/microcode6502/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, r8.String(), "test=0x00")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	carry, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), 129)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)

	// addtion boundary
	r8.Load(255)
	test.ExpectEquality(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(255)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.Value(), 1)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	test.ExpectEquality(t, r8.Value(), 0xfa)

	// subtract on boundary
	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 255)
	test.ExpectEquality(t, carry, false)
	r8.Load(1)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 255)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	r8.ORA(0x1)
	test.ExpectEquality(t, r8.Value(), 0xff)

	// shifts
	carry = r8.ASL()
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectEquality(t, carry, true)
	carry = r8.LSR()
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectEquality(t, carry, false)
	carry = r8.LSR()
	test.ExpectEquality(t, carry, true)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectEquality(t, carry, true)
	carry = r8.ROR(true)
	test.ExpectEquality(t, r8.Value(), 0xff)
	test.ExpectEquality(t, carry, false)

	// increment and decrement wrap
	r8.Increment()
	test.ExpectEquality(t, r8.Value(), 0x00)
	r8.Decrement()
	test.ExpectEquality(t, r8.Value(), 0xff)
}

func TestCompare(t *testing.T) {
	r8 := registers.NewRegister(0x40, "A")

	carry, res := r8.Compare(0x40)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, res.IsZero(), true)

	carry, res = r8.Compare(0x41)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, res.IsNegative(), true)

	carry, res = r8.Compare(0x01)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, res.IsZero(), false)

	// register is unchanged by a compare
	test.ExpectEquality(t, r8.Value(), 0x40)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), 127)
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 129)

	pc.Load(0xffff)
	test.ExpectEquality(t, pc.Add(1), true)
	test.ExpectEquality(t, pc.Address(), 0x0000)

	pc.Load(0x1234)
	test.ExpectEquality(t, pc.Low(), 0x34)
	test.ExpectEquality(t, pc.High(), 0x12)
	pc.LoadLow(0xcd)
	test.ExpectEquality(t, pc.Address(), 0x12cd)
	pc.LoadHigh(0xab)
	test.ExpectEquality(t, pc.Address(), 0xabcd)
	test.ExpectEquality(t, pc.String(), "0xabcd")
}
