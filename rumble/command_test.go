// This file is part of Gorumble.
//
// Gorumble is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gorumble is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gorumble.  If not, see <https://www.gnu.org/licenses/>.

package rumble_test

import (
	"encoding/binary"
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/gorumble/rumble"
	"github.com/jetsetilly/gorumble/test"
)

func TestRegisterNames(t *testing.T) {
	test.ExpectEquality(t, rumble.LowFrequencyLo.String(), "LOFREQL")
	test.ExpectEquality(t, rumble.Duration3.String(), "DURATN3")
	test.ExpectEquality(t, rumble.NumRegisters.String(), "undefined")
}

// eight writes in register order are the little-endian image of the command
func TestLittleEndian(t *testing.T) {
	var cmd rumble.Command

	for i := range 100 {
		var b [rumble.NumRegisters]uint8
		for j := range b {
			b[j] = uint8(rand.IntN(256))
		}

		for r := rumble.LowFrequencyLo; r < rumble.NumRegisters; r++ {
			commit := cmd.Write(r, b[r])
			test.ExpectEquality(t, commit, r == rumble.Duration3, i, r)
		}

		test.ExpectEquality(t, cmd.LowFrequency, binary.LittleEndian.Uint16(b[0:]), i)
		test.ExpectEquality(t, cmd.HighFrequency, binary.LittleEndian.Uint16(b[2:]), i)
		test.ExpectEquality(t, cmd.DurationMS, binary.LittleEndian.Uint32(b[4:]), i)
		test.ExpectEquality(t, cmd.Bytes(), b, i)
	}
}

func TestScenarioBytes(t *testing.T) {
	var cmd rumble.Command
	for i, b := range []uint8{0x34, 0x12, 0x78, 0x56, 0xe8, 0x03, 0x00, 0x00} {
		cmd.Write(rumble.Register(i), b)
	}
	test.ExpectEquality(t, cmd, rumble.Command{LowFrequency: 0x1234, HighFrequency: 0x5678, DurationMS: 1000})
	test.ExpectEquality(t, cmd.String(), "low=0x1234 high=0x5678 duration=1000ms")
}

// writing the last register commits whatever is in the other registers
func TestPartialCommit(t *testing.T) {
	var cmd rumble.Command

	test.ExpectSuccess(t, cmd.Write(rumble.Duration3, 0x00))
	test.ExpectEquality(t, cmd, rumble.Command{})

	// values persist across commits. only the written byte changes
	test.ExpectFailure(t, cmd.Write(rumble.LowFrequencyHi, 0xab))
	test.ExpectSuccess(t, cmd.Write(rumble.Duration3, 0x01))
	test.ExpectEquality(t, cmd, rumble.Command{LowFrequency: 0xab00, DurationMS: 0x01000000})

	test.ExpectFailure(t, cmd.Write(rumble.LowFrequencyLo, 0xcd))
	test.ExpectSuccess(t, cmd.Write(rumble.Duration3, 0x01))
	test.ExpectEquality(t, cmd, rumble.Command{LowFrequency: 0xabcd, DurationMS: 0x01000000})
}

func TestInvalidRegister(t *testing.T) {
	cmd := rumble.Command{LowFrequency: 1, HighFrequency: 2, DurationMS: 3}
	test.ExpectFailure(t, cmd.Write(rumble.NumRegisters, 0xff))
	test.ExpectFailure(t, cmd.Write(rumble.Register(1000), 0xff))
	test.ExpectEquality(t, cmd, rumble.Command{LowFrequency: 1, HighFrequency: 2, DurationMS: 3})

	_, ok := cmd.Peek(rumble.NumRegisters)
	test.ExpectFailure(t, ok)
}

func TestPeek(t *testing.T) {
	cmd := rumble.Command{LowFrequency: 0x1234, HighFrequency: 0x5678, DurationMS: 0x9abcdef0}
	expected := []uint8{0x34, 0x12, 0x78, 0x56, 0xf0, 0xde, 0xbc, 0x9a}
	for i, e := range expected {
		v, ok := cmd.Peek(rumble.Register(i))
		test.ExpectSuccess(t, ok, i)
		test.ExpectEquality(t, v, e, i)
	}
}

func TestDuration(t *testing.T) {
	cmd := rumble.Command{DurationMS: 1500}
	test.ExpectEquality(t, cmd.Duration().Milliseconds(), int64(1500))

	// the largest duration does not overflow
	cmd.DurationMS = 0xffffffff
	test.ExpectEquality(t, cmd.Duration().Milliseconds(), int64(0xffffffff))
}
