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

// Package singlestep runs single-step tests in the JSON format used by the
// SingleStepTests project.
//
// https://github.com/SingleStepTests/65x02
//
// Each test describes the registers and memory before and after a single
// instruction, along with the address, data and direction of the bus for
// every cycle. Files with the .json extension in the testdata directory are
// run by the test. The full set of tests is large and is not included. Copy
// the files for the instructions to be tested from the 6502/v1 directory.
package singlestep
