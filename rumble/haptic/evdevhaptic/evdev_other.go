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

//go:build !linux

package evdevhaptic

import (
	"fmt"

	"github.com/jetsetilly/gorumble/rumble/haptic"
)

// Platform implements the haptic.Platform interface. The evdev platform is
// only available on Linux.
type Platform struct{}

// NewPlatform is the preferred method of initialisation for the Platform type.
func NewPlatform() *Platform {
	return &Platform{}
}

// Name implements the haptic.Platform interface.
func (plt *Platform) Name() string {
	return "evdev"
}

// Init implements the haptic.Platform interface.
func (plt *Platform) Init() error {
	return fmt.Errorf("evdev: not supported on this platform")
}

// NumDevices implements the haptic.Platform interface.
func (plt *Platform) NumDevices() int {
	return 0
}

// Open implements the haptic.Platform interface.
func (plt *Platform) Open(idx int) (haptic.Device, error) {
	return nil, fmt.Errorf("evdev: not supported on this platform")
}

// Quit implements the haptic.Platform interface.
func (plt *Platform) Quit() {
}
