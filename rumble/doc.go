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

// Package rumble implements a register mapped rumble peripheral. Eight byte
// wide registers are written by the emulated machine and accumulate into a
// Command. Writing the last register commits the command and wakes a
// background goroutine which actuates every haptic device.
//
// The register layout, relative to the origin of the peripheral, is:
//
//	+0	low frequency motor, low byte
//	+1	low frequency motor, high byte
//	+2	high frequency motor, low byte
//	+3	high frequency motor, high byte
//	+4	duration in milliseconds, byte 0 (least significant)
//	+5	duration, byte 1
//	+6	duration, byte 2
//	+7	duration, byte 3 (most significant). commits the command
//
// Writing +7 commits whatever is in the registers at that moment, even if the
// other registers have not been written since the previous commit.
//
// After actuation the goroutine waits for the duration of the command. If no
// new command is committed in that time the devices are stopped. If a new
// command is committed the devices are actuated again without an intermediate
// stop, so overlapping commands produce continuous rumble.
//
// Devices are enumerated once when the Controller is created and released by
// Deinit(). Errors from devices are logged and otherwise ignored.
package rumble
