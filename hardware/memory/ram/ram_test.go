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

package ram_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/microcode6502/hardware/memory/cpubus"
	"github.com/jetsetilly/microcode6502/hardware/memory/ram"
)

func TestReadWrite(t *testing.T) {
	mem := ram.NewRAM()
	var _ cpubus.Memory = mem
	var _ cpubus.Peeker = mem

	mem.Write(0x1234, 0xab)
	require.Equal(t, uint8(0xab), mem.Read(0x1234))
	require.Equal(t, uint8(0xab), mem.Peek(0x1234))
	require.Equal(t, uint8(0x00), mem.Read(0xffff))
}

func TestRecording(t *testing.T) {
	mem := ram.NewRAM()

	// nothing recorded until recording is turned on
	mem.Write(0x0000, 0x01)
	_ = mem.Read(0x0000)
	require.Empty(t, mem.Activity())

	mem.Record(true)
	mem.Write(0x0010, 0x42)
	_ = mem.Read(0x0010)
	_ = mem.Peek(0x0010)
	mem.Poke(0x0011, 0x43)

	require.Equal(t, []ram.Access{
		{Address: 0x0010, Data: 0x42, Write: true},
		{Address: 0x0010, Data: 0x42},
	}, mem.Activity())

	a, ok := mem.LastAccess()
	require.True(t, ok)
	require.Equal(t, "0010 -> 42", a.String())

	mem.ClearActivity()
	require.Empty(t, mem.Activity())
	_, ok = mem.LastAccess()
	require.False(t, ok)
}

func TestLoad(t *testing.T) {
	mem := ram.NewRAM()

	require.NoError(t, mem.Load(0xfff0, make([]uint8, 16)))
	require.Error(t, mem.Load(0xfff1, make([]uint8, 16)))

	require.NoError(t, mem.Load(0x0200, []uint8{0xa9, 0x01, 0xea}))
	require.Equal(t, uint8(0xa9), mem.Peek(0x0200))
	require.Equal(t, uint8(0xea), mem.Peek(0x0202))

	next := mem.PutInstructions(0xfffe, 0x01, 0x02, 0x03)
	require.Equal(t, uint16(0x0001), next)
	require.Equal(t, uint8(0x03), mem.Peek(0x0000))
}

func TestVector(t *testing.T) {
	mem := ram.NewRAM()
	mem.SetVector(cpubus.Reset, 0xc0de)
	require.Equal(t, uint8(0xde), mem.Peek(0xfffc))
	require.Equal(t, uint8(0xc0), mem.Peek(0xfffd))
}

func TestDump(t *testing.T) {
	mem := ram.NewRAM()
	mem.Poke(0x0201, 0xff)
	d := mem.Dump(0x0200, 16)
	require.Contains(t, d, "0200 | 00 ff 00")
}
