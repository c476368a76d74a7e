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
	"errors"
	"fmt"
)

// ErrDecoding is the sentinel error for all instances of DecodingError.
var ErrDecoding = errors.New("decoding error")

// DecodingError is returned by Step() when the opcode does not have an entry
// in the microcode table. The CPU remains halted until it is reset.
type DecodingError struct {
	OpCode uint8

	// the address the opcode was fetched from
	Address uint16
}

func (e DecodingError) Error() string {
	return fmt.Sprintf("cpu: %v: unimplemented opcode %#02x at %#04x", ErrDecoding, e.OpCode, e.Address)
}

// Is implements the errors.Is() interface.
func (e DecodingError) Is(target error) bool {
	return target == ErrDecoding
}
