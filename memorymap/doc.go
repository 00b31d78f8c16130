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

// Package memorymap routes memory writes from the emulated machine to the
// peripheral that occupies the address. Each peripheral occupies a single
// area of the address space, defined by an origin and a memtop (inclusive).
// Areas cannot overlap.
//
// Writes to an address that is not in any area are ignored. This is how the
// rumble registers are exposed to the machine without the machine needing to
// know whether a rumble controller is present.
//
// Areas should be added before the map is used. The map is not safe for
// concurrent use while areas are being added. Once all areas have been added
// Write() and Peek() may be called from any goroutine, subject to the
// concurrency rules of the peripherals themselves.
package memorymap
