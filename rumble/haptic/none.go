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

package haptic

import "fmt"

// None is a Platform with no devices.
type None struct{}

// Name implements the Platform interface.
func (_ None) Name() string {
	return "none"
}

// Init implements the Platform interface.
func (_ None) Init() error {
	return nil
}

// NumDevices implements the Platform interface.
func (_ None) NumDevices() int {
	return 0
}

// Open implements the Platform interface. It always fails.
func (_ None) Open(idx int) (Device, error) {
	return nil, fmt.Errorf("none: no device at index %d", idx)
}

// Quit implements the Platform interface.
func (_ None) Quit() {
}
