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

// Package haptic defines the capability of enumerating and actuating haptic
// (force-feedback) devices. The rumble package drives devices only through
// the Platform and Device interfaces defined here.
//
// Implementations for different platform libraries live in sub-packages and
// are selected at startup:
//
//	sdlhaptic    SDL game controllers
//	evdevhaptic  Linux evdev force-feedback devices
//	wavhaptic    virtual device that records rumble to a WAV file
//
// The profile sub-package decorates any Platform with per-device gain and
// motor settings.
package haptic

// Device is a single opened force-feedback device.
type Device interface {
	// Name of device as reported by the platform
	Name() string

	// Rumble starts the device vibrating. The low and high frequency values
	// are the intensities of the two motors. A call with all arguments set
	// to zero stops the device.
	Rumble(lowFrequency uint16, highFrequency uint16, durationMS uint32) error

	// Close releases the device. The device should not be used again.
	Close() error
}

// Platform enumerates and opens devices.
type Platform interface {
	// Name of platform. Used for logging
	Name() string

	// Init prepares the platform. Must be called before any other function
	Init() error

	// NumDevices returns the number of devices attached at the time of the
	// call. Indexes passed to Open() are in the range 0 to NumDevices()-1
	NumDevices() int

	// Open the device at index
	Open(idx int) (Device, error)

	// Quit releases the platform. Devices should be closed beforehand
	Quit()
}

// Stopped is true if the rumble arguments describe the stopped state.
func Stopped(lowFrequency uint16, highFrequency uint16, durationMS uint32) bool {
	return lowFrequency == 0 && highFrequency == 0 && durationMS == 0
}
