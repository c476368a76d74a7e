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

// the decimal mode arithmetic follows the NMOS 6502 and in particular the
// behaviour of the flags, which are not all valid in decimal mode:
//
// ADC: the Z flag is taken from the binary result. the N and V flags are
// taken after the low nibble has been adjusted but before the high nibble is
// adjusted. C is valid.
//
// SBC: all flags are taken from the binary result. C is valid.

// AddDecimal adds value to register as though both registers are decimal
// representations. Returns new carry state, zero, overflow, sign bit
// information.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	v := int(val)

	zero = uint8(a+v+c) == 0

	lo := (a & 0x0f) + (v & 0x0f) + c
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	res := (a & 0xf0) + (v & 0xf0) + lo

	sign = res&0x80 == 0x80
	overflow = ^(a^v)&(a^res)&0x80 != 0

	if res >= 0xa0 {
		res += 0x60
	}

	rcarry = res >= 0x100
	r.value = uint8(res)

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both registers are
// decimal representations. Returns new carry state, zero, overflow, sign bit
// information.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	// flags are the same as for the binary subtraction
	bin := *r
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	// the carry flag is the inverse of a borrow
	var b int
	if !carry {
		b = 1
	}

	a := int(r.value)
	v := int(val)

	lo := (a & 0x0f) - (v & 0x0f) - b
	res := a - v - b
	if res < 0 {
		res -= 0x60
	}
	if lo < 0 {
		res -= 0x06
	}

	r.value = uint8(res & 0xff)

	return rcarry, zero, overflow, sign
}
