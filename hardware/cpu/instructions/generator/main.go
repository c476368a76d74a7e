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

// The generator program reads the instruction definitions from the CSV file
// and writes the definitions table for the instructions package. It should be
// run from the instructions package directory, which is what "go generate"
// does.
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

const definitionsCSVFile = "./generator/instructions.csv"
const generatedGoFile = "./table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// definitions is indexed by opcode. undocumented opcodes are nil.\n" +
	"var definitions = [256]*Definition{"

const trailingBoilerPlate = "\n}\n"

// addressing modes in the CSV file and the number of bytes for each mode
var addressingModes = map[string]struct {
	ident string
	bytes int
}{
	"IMPLIED":             {"Implied", 1},
	"IMMEDIATE":           {"Immediate", 2},
	"RELATIVE":            {"Relative", 2},
	"ABSOLUTE":            {"Absolute", 3},
	"ZERO_PAGE":           {"ZeroPage", 2},
	"INDIRECT":            {"Indirect", 3},
	"INDEXED_INDIRECT":    {"IndexedIndirect", 2},
	"INDIRECT_INDEXED":    {"IndirectIndexed", 2},
	"ABSOLUTE_INDEXED_X":  {"AbsoluteIndexedX", 3},
	"ABSOLUTE_INDEXED_Y":  {"AbsoluteIndexedY", 3},
	"ZERO_PAGE_INDEXED_X": {"ZeroPageIndexedX", 2},
	"ZERO_PAGE_INDEXED_Y": {"ZeroPageIndexedY", 2},
}

var effects = map[string]string{
	"READ":       "Read",
	"WRITE":      "Write",
	"RMW":        "RMW",
	"FLOW":       "Flow",
	"SUBROUTINE": "Subroutine",
	"INTERRUPT":  "Interrupt",
}

type definition struct {
	opcode        uint8
	operator      string
	bytes         int
	cycles        int
	mode          string
	pageSensitive bool
	effect        string
}

func (d definition) String() string {
	return fmt.Sprintf("{OpCode: 0x%02x, Operator: %s, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %t, Effect: %s},",
		d.opcode, d.operator, d.bytes, d.cycles, d.mode, d.pageSensitive, d.effect)
}

func parseCSV() (map[uint8]definition, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return nil, fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// instruction file can have a variable number of fields per definition.
	// instruction effect field is optional (defaulting to READ)
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]definition)

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if !(len(rec) == 5 || len(rec) == 6) {
			return nil, fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := 0; i < len(rec); i++ {
			rec[i] = strings.TrimSpace(rec[i])
		}

		var defn definition

		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.opcode = uint8(n)

		if _, ok := deftable[defn.opcode]; ok {
			return nil, fmt.Errorf("duplicate opcode (%#02x) [line %d]", defn.opcode, line)
		}

		// operator identifiers are the mnemonic with only the first letter
		// capitalised
		m := strings.ToUpper(rec[1])
		if len(m) != 3 {
			return nil, fmt.Errorf("invalid mnemonic for %#02x (%s) [line %d]", defn.opcode, rec[1], line)
		}
		defn.operator = m[:1] + strings.ToLower(m[1:])

		defn.cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", defn.opcode, rec[2], line)
		}

		am, ok := addressingModes[strings.ToUpper(rec[3])]
		if !ok {
			return nil, fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", defn.opcode, rec[3], line)
		}
		defn.mode = am.ident
		defn.bytes = am.bytes

		switch strings.ToUpper(rec[4]) {
		case "TRUE":
			defn.pageSensitive = true
		case "FALSE":
			defn.pageSensitive = false
		default:
			return nil, fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", defn.opcode, rec[4], line)
		}

		defn.effect = "Read"
		if len(rec) == 6 {
			defn.effect, ok = effects[strings.ToUpper(rec[5])]
			if !ok {
				return nil, fmt.Errorf("unknown category for %#02x (%s) [line %d]", defn.opcode, rec[5], line)
			}
		}

		deftable[defn.opcode] = defn
	}

	return deftable, nil
}

func printSummary(deftable map[uint8]definition) {
	missing := make([]int, 0, 256)
	for i := 0; i <= 255; i++ {
		if _, ok := deftable[uint8(i)]; !ok {
			missing = append(missing, i)
		}
	}

	if len(missing) == 0 {
		return
	}

	sort.Ints(missing)

	fmt.Println("undocumented opcodes")
	fmt.Println("--------------------")
	c := 0
	for _, m := range missing {
		fmt.Printf("%#02x\t", m)
		c++
		if c > 4 {
			c = 0
			fmt.Printf("\n")
		}
	}
	if c != 0 {
		fmt.Printf("\n")
	}
	fmt.Printf("%d undocumented, %d documented\n", len(missing), 256-len(missing))
}

func generate() error {
	deftable, err := parseCSV()
	if err != nil {
		return err
	}

	printSummary(deftable)

	s := strings.Builder{}
	s.WriteString(leadingBoilerPlate)
	for opcode := 0; opcode < 256; opcode++ {
		s.WriteString("\n")
		if defn, ok := deftable[uint8(opcode)]; ok {
			s.WriteString(defn.String())
		} else {
			s.WriteString("nil,")
		}
	}
	s.WriteString(trailingBoilerPlate)

	output, err := format.Source([]byte(s.String()))
	if err != nil {
		return err
	}

	return os.WriteFile(generatedGoFile, output, 0644)
}

func main() {
	if err := generate(); err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
