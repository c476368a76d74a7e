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

// State of the CPU as seen by the outside world.
type State int

// List of valid State values.
const (
	// the reset sequence is in progress
	StateReset State = iota

	// the CPU is at an instruction boundary. the next Step() will fetch an
	// opcode
	StateFetch

	// an instruction or interrupt sequence is in progress
	StateExecuting

	// the CPU is at an instruction boundary and the next Step() will begin an
	// interrupt sequence
	StateInterruptPending

	// a decoding error has occurred. the CPU must be reset
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateReset:
		return "Reset"
	case StateFetch:
		return "Fetch"
	case StateExecuting:
		return "Executing"
	case StateInterruptPending:
		return "InterruptPending"
	case StateHalted:
		return "Halted"
	}
	return "unknown state"
}
