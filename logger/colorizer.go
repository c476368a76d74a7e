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

package logger

import (
	"bytes"
	"io"
)

const (
	penTag    = "\033[1m"
	penDimRed = "\033[2;31m"
	penNormal = "\033[0m"
)

// Colorizer highlights log output written to a terminal. The tag of each entry
// is emboldened and entries that report an error are dimmed red.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. The returned count is the number
// of bytes of p that were written, not including any escape sequences.
func (c Colorizer) Write(p []byte) (int, error) {
	var b bytes.Buffer
	for _, line := range bytes.SplitAfter(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}

		isErr := bytes.Contains(line, []byte("error"))
		if isErr {
			b.WriteString(penDimRed)
		}

		tag, detail, ok := bytes.Cut(line, []byte(": "))
		if ok {
			b.WriteString(penTag)
			b.Write(tag)
			b.WriteString(penNormal)
			if isErr {
				b.WriteString(penDimRed)
			}
			b.WriteString(": ")
			b.Write(detail)
		} else {
			b.Write(line)
		}

		if isErr {
			b.WriteString(penNormal)
		}
	}

	if _, err := c.out.Write(b.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}
