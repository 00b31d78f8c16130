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

// Package evdevhaptic implements the haptic.Platform interface for Linux
// evdev devices that support the FF_RUMBLE force-feedback effect.
//
// Devices are discovered with udev. Only joystick devices with an event node
// are considered and of those, only the ones that report the FF_RUMBLE
// capability are kept. The low frequency motor is mapped to the strong
// magnitude of the rumble effect and the high frequency motor to the weak
// magnitude.
//
// The effect is uploaded to the device on every call to Rumble(). The effect
// id assigned by the kernel on the first upload is reused for subsequent
// uploads. Writing to the event node requires read/write permission, which
// usually means a udev rule for the device.
//
// On platforms other than Linux the Init() function returns an error.
package evdevhaptic
