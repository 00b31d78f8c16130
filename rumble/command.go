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

package rumble

import (
	"fmt"
	"time"
)

// Register is the offset of a rumble register from the origin of the
// peripheral.
type Register uint32

// List of valid Register values.
const (
	LowFrequencyLo Register = iota
	LowFrequencyHi
	HighFrequencyLo
	HighFrequencyHi
	Duration0
	Duration1
	Duration2
	Duration3

	// the number of registers. writing Duration3 commits the command
	NumRegisters
)

func (r Register) String() string {
	switch r {
	case LowFrequencyLo:
		return "LOFREQL"
	case LowFrequencyHi:
		return "LOFREQH"
	case HighFrequencyLo:
		return "HIFREQL"
	case HighFrequencyHi:
		return "HIFREQH"
	case Duration0:
		return "DURATN0"
	case Duration1:
		return "DURATN1"
	case Duration2:
		return "DURATN2"
	case Duration3:
		return "DURATN3"
	}
	return "undefined"
}

// Command is the rumble command built by writes to the registers.
type Command struct {
	LowFrequency  uint16
	HighFrequency uint16
	DurationMS    uint32
}

func (cmd Command) String() string {
	return fmt.Sprintf("low=%#04x high=%#04x duration=%dms", cmd.LowFrequency, cmd.HighFrequency, cmd.DurationMS)
}

// Duration returns the DurationMS field as a time.Duration.
func (cmd Command) Duration() time.Duration {
	return time.Duration(cmd.DurationMS) * time.Millisecond
}

// Write data to the register. The data is masked into the correct byte of the
// field. Returns true if the write commits the command.
func (cmd *Command) Write(reg Register, data uint8) bool {
	switch reg {
	case LowFrequencyLo:
		cmd.LowFrequency = cmd.LowFrequency&0xff00 | uint16(data)
	case LowFrequencyHi:
		cmd.LowFrequency = cmd.LowFrequency&0x00ff | uint16(data)<<8
	case HighFrequencyLo:
		cmd.HighFrequency = cmd.HighFrequency&0xff00 | uint16(data)
	case HighFrequencyHi:
		cmd.HighFrequency = cmd.HighFrequency&0x00ff | uint16(data)<<8
	case Duration0:
		cmd.DurationMS = cmd.DurationMS&0xffffff00 | uint32(data)
	case Duration1:
		cmd.DurationMS = cmd.DurationMS&0xffff00ff | uint32(data)<<8
	case Duration2:
		cmd.DurationMS = cmd.DurationMS&0xff00ffff | uint32(data)<<16
	case Duration3:
		cmd.DurationMS = cmd.DurationMS&0x00ffffff | uint32(data)<<24
		return true
	}
	return false
}

// Peek returns the current value of the register. Returns false if the
// register is not valid.
func (cmd Command) Peek(reg Register) (uint8, bool) {
	if reg >= NumRegisters {
		return 0, false
	}
	return cmd.Bytes()[reg], true
}

// Bytes returns the register image of the command, in register order. Writing
// each byte to its register, in order, will commit the command.
func (cmd Command) Bytes() [NumRegisters]uint8 {
	return [NumRegisters]uint8{
		uint8(cmd.LowFrequency),
		uint8(cmd.LowFrequency >> 8),
		uint8(cmd.HighFrequency),
		uint8(cmd.HighFrequency >> 8),
		uint8(cmd.DurationMS),
		uint8(cmd.DurationMS >> 8),
		uint8(cmd.DurationMS >> 16),
		uint8(cmd.DurationMS >> 24),
	}
}
