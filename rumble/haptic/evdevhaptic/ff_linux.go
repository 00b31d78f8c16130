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

//go:build linux

package evdevhaptic

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// values from linux/input-event-codes.h
const (
	evFF     = 0x15
	ffRumble = 0x50
)

// the kernel does not accept effects longer than this (in milliseconds)
const maxReplayLength = 0x7fff

func replayLength(durationMS uint32) uint16 {
	if durationMS > maxReplayLength {
		return maxReplayLength
	}
	return uint16(durationMS)
}

// ffEffect is struct ff_effect from linux/input.h with the union fixed to the
// ff_rumble_effect variant. the size of the union is determined by the
// largest variant, ff_periodic_effect, which ends with a pointer
type ffEffect struct {
	Type      uint16
	ID        int16
	Direction uint16
	Trigger   struct {
		Button   uint16
		Interval uint16
	}
	Replay struct {
		Length uint16
		Delay  uint16
	}

	// the union is aligned to the pointer at its end
	_ [2]byte

	Strong uint16
	Weak   uint16
	_      [20]byte
	_      uintptr
}

// inputEvent is struct input_event from linux/input.h
type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// ioctl request encoding from asm-generic/ioctl.h
func iow(typ uintptr, nr uintptr, size uintptr) uintptr {
	const write = 1
	return write<<30 | size<<16 | typ<<8 | nr
}

var (
	eviocsff  = iow('E', 0x80, unsafe.Sizeof(ffEffect{}))
	eviocrmff = iow('E', 0x81, unsafe.Sizeof(int32(0)))
)
