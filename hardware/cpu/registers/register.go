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

package registers

import (
	"fmt"
)

// Register is an eight bit register. The label is used for presentation only.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the value of the register as a uint16. The stack pointer
// is an example of a register that is used as part of an address.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative is true if bit 7 is set.
func (r Register) IsNegative() bool {
	return r.value&0x80 != 0
}

// IsZero is true if the register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsBitV is true if bit 6 is set. The BIT instruction copies this bit into
// the overflow flag.
func (r Register) IsBitV() bool {
	return r.value&0x40 != 0
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value and the carry bit to the register. The returned values are the
// new states of the carry and overflow flags.
func (r *Register) Add(val uint8, carry bool) (bool, bool) {
	sum := uint16(r.value) + uint16(val)
	if carry {
		sum++
	}
	result := uint8(sum)

	// overflow if both operands have the same sign and the sign of the
	// result is different
	overflow := (r.value^result)&(val^result)&0x80 != 0

	r.value = result
	return sum > 0xff, overflow
}

// Subtract value from the register. The carry flag is the inverse of a
// borrow. The returned values are the new states of the carry and overflow
// flags.
func (r *Register) Subtract(val uint8, carry bool) (bool, bool) {
	return r.Add(^val, carry)
}

// Compare returns the carry flag and the result of subtracting val from the
// register. The receiver is not changed.
func (r Register) Compare(val uint8) (bool, Register) {
	carry, _ := r.Subtract(val, true)
	return carry, r
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// EOR value with register.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// ORA value with register.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// shift the register one bit in either direction. the in bit is shifted into
// the vacated position and the bit shifted out is returned.
func (r *Register) shift(left bool, in bool) bool {
	var out bool
	if left {
		out = r.value&0x80 != 0
		r.value <<= 1
		if in {
			r.value |= 0x01
		}
	} else {
		out = r.value&0x01 != 0
		r.value >>= 1
		if in {
			r.value |= 0x80
		}
	}
	return out
}

// ASL shifts the register left. Returns the new state of the carry flag.
func (r *Register) ASL() bool {
	return r.shift(true, false)
}

// LSR shifts the register right. Returns the new state of the carry flag.
func (r *Register) LSR() bool {
	return r.shift(false, false)
}

// ROL rotates the register left through the carry flag. Returns the new
// state of the carry flag.
func (r *Register) ROL(carry bool) bool {
	return r.shift(true, carry)
}

// ROR rotates the register right through the carry flag. Returns the new
// state of the carry flag.
func (r *Register) ROR(carry bool) bool {
	return r.shift(false, carry)
}

// Increment register, wrapping at the byte boundary.
func (r *Register) Increment() {
	r.value++
}

// Decrement register, wrapping at the byte boundary.
func (r *Register) Decrement() {
	r.value--
}
