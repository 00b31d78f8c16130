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

package memorymap

import (
	"fmt"
	"sort"
	"strings"
)

// The origin and memtop of the rumble registers in the default memory map.
const (
	OriginRumble = uint32(0x2000)
	MemtopRumble = uint32(0x2007)
)

// Peripheral is implemented by anything that can be placed in the memory map.
// The address argument of each function is the unmapped address. It is the
// responsibility of the peripheral to find the register from the address.
type Peripheral interface {
	Write(address uint32, data uint8)
	Peek(address uint32) (uint8, bool)
}

type area struct {
	label  string
	origin uint32
	memtop uint32
	p      Peripheral
}

func (a area) String() string {
	return fmt.Sprintf("%04x -> %04x\t%s", a.origin, a.memtop, a.label)
}

// Map of address areas and the peripherals occupying them.
type Map struct {
	// sorted by origin
	areas []area
}

// NewMap is the preferred method of initialisation for the Map type.
func NewMap() *Map {
	return &Map{}
}

// Add a peripheral to the map. The origin and memtop are inclusive.
func (m *Map) Add(label string, origin uint32, memtop uint32, p Peripheral) error {
	if memtop < origin {
		return fmt.Errorf("memorymap: %s: memtop (%#x) is less than origin (%#x)", label, memtop, origin)
	}

	for _, a := range m.areas {
		if origin <= a.memtop && memtop >= a.origin {
			return fmt.Errorf("memorymap: %s: overlaps with %s", label, a.label)
		}
	}

	m.areas = append(m.areas, area{
		label:  label,
		origin: origin,
		memtop: memtop,
		p:      p,
	})

	sort.Slice(m.areas, func(i, j int) bool {
		return m.areas[i].origin < m.areas[j].origin
	})

	return nil
}

// find the area containing the address
func (m *Map) find(address uint32) (area, bool) {
	i := sort.Search(len(m.areas), func(i int) bool {
		return m.areas[i].memtop >= address
	})
	if i < len(m.areas) && m.areas[i].origin <= address {
		return m.areas[i], true
	}
	return area{}, false
}

// MapAddress returns the label of the area containing the address. Returns
// false if the address is not mapped.
func (m *Map) MapAddress(address uint32) (string, bool) {
	a, ok := m.find(address)
	return a.label, ok
}

// Write data to the address. Writes to unmapped addresses are ignored.
func (m *Map) Write(address uint32, data uint8) {
	if a, ok := m.find(address); ok {
		a.p.Write(address, data)
	}
}

// Peek returns the value at the address without side effects. Returns false
// if the address is unmapped or the peripheral cannot be peeked at the address.
func (m *Map) Peek(address uint32) (uint8, bool) {
	if a, ok := m.find(address); ok {
		return a.p.Peek(address)
	}
	return 0, false
}

// Summary returns a single multiline string detailing all the areas in the
// map. Useful for reference.
func (m *Map) Summary() string {
	s := strings.Builder{}
	for _, a := range m.areas {
		s.WriteString(a.String())
		s.WriteString("\n")
	}
	return s.String()
}
