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

package main

import (
	"fmt"
	"os"

	pterm "github.com/pkg/term"
	xterm "golang.org/x/term"
)

// stepper waits for a key press on the controlling terminal.
type stepper struct {
	tty *pterm.Term
	buf []byte
}

func newStepper() (*stepper, error) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("stepping requires an interactive terminal")
	}

	tty, err := pterm.Open("/dev/tty", pterm.CBreakMode)
	if err != nil {
		return nil, fmt.Errorf("stepper: %w", err)
	}

	return &stepper{
		tty: tty,
		buf: make([]byte, 1),
	}, nil
}

// wait returns false if the q key was pressed.
func (stp *stepper) wait() (bool, error) {
	if _, err := stp.tty.Read(stp.buf); err != nil {
		return false, fmt.Errorf("stepper: %w", err)
	}
	return stp.buf[0] != 'q' && stp.buf[0] != 'Q', nil
}

func (stp *stepper) close() {
	_ = stp.tty.Restore()
	_ = stp.tty.Close()
}
