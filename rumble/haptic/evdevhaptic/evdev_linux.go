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
	"encoding/binary"
	"fmt"
	"os"
	"sort"
	"strings"
	"unsafe"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/jetsetilly/gorumble/rumble/haptic"
	"github.com/jochenvg/go-udev"
	"golang.org/x/sys/unix"
)

// node is a device node that supports rumble
type node struct {
	path string
	name string
}

// Platform implements the haptic.Platform interface.
type Platform struct {
	nodes []node
}

// NewPlatform is the preferred method of initialisation for the Platform type.
func NewPlatform() *Platform {
	return &Platform{}
}

// Name implements the haptic.Platform interface.
func (plt *Platform) Name() string {
	return "evdev"
}

// Init implements the haptic.Platform interface. Devices are discovered at
// this point and not again.
func (plt *Platform) Init() error {
	u := udev.Udev{}
	e := u.NewEnumerate()

	if err := e.AddMatchSubsystem("input"); err != nil {
		return fmt.Errorf("evdev: %w", err)
	}
	if err := e.AddMatchProperty("ID_INPUT_JOYSTICK", "1"); err != nil {
		return fmt.Errorf("evdev: %w", err)
	}
	if err := e.AddMatchIsInitialized(); err != nil {
		return fmt.Errorf("evdev: %w", err)
	}

	devs, err := e.Devices()
	if err != nil {
		return fmt.Errorf("evdev: %w", err)
	}

	plt.nodes = plt.nodes[:0]
	for _, d := range devs {
		pth := d.Devnode()
		if !strings.HasPrefix(pth, "/dev/input/event") {
			continue
		}

		dev, err := evdev.Open(pth)
		if err != nil {
			continue
		}
		if supportsRumble(dev) {
			plt.nodes = append(plt.nodes, node{path: pth, name: dev.Name})
		}
		dev.File.Close()
	}

	sort.Slice(plt.nodes, func(i, j int) bool {
		return plt.nodes[i].path < plt.nodes[j].path
	})

	return nil
}

func supportsRumble(dev *evdev.InputDevice) bool {
	for typ, codes := range dev.Capabilities {
		if typ.Type != evdev.EV_FF {
			continue
		}
		for _, c := range codes {
			if c.Code == evdev.FF_RUMBLE {
				return true
			}
		}
	}
	return false
}

// NumDevices implements the haptic.Platform interface.
func (plt *Platform) NumDevices() int {
	return len(plt.nodes)
}

// Open implements the haptic.Platform interface.
func (plt *Platform) Open(idx int) (haptic.Device, error) {
	if idx < 0 || idx >= len(plt.nodes) {
		return nil, fmt.Errorf("evdev: no device at index %d", idx)
	}

	n := plt.nodes[idx]
	f, err := os.OpenFile(n.path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("evdev: %w", err)
	}

	dev := &device{
		name: n.name,
		file: f,
	}
	dev.effect.Type = ffRumble
	dev.effect.ID = -1

	return dev, nil
}

// Quit implements the haptic.Platform interface.
func (plt *Platform) Quit() {
	plt.nodes = nil
}

type device struct {
	name   string
	file   *os.File
	effect ffEffect
}

func (dev *device) Name() string {
	return dev.name
}

func (dev *device) ioctl(req uintptr, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, dev.file.Fd(), req, arg)
	if errno != 0 {
		return errno
	}
	return nil
}

func (dev *device) play(value int32) error {
	ev := inputEvent{
		Type:  evFF,
		Code:  uint16(dev.effect.ID),
		Value: value,
	}
	return binary.Write(dev.file, binary.NativeEndian, ev)
}

func (dev *device) Rumble(lowFrequency uint16, highFrequency uint16, durationMS uint32) error {
	if haptic.Stopped(lowFrequency, highFrequency, durationMS) {
		if dev.effect.ID < 0 {
			return nil
		}
		if err := dev.play(0); err != nil {
			return fmt.Errorf("evdev: %w", err)
		}
		return nil
	}

	dev.effect.Strong = lowFrequency
	dev.effect.Weak = highFrequency
	dev.effect.Replay.Length = replayLength(durationMS)

	// the kernel writes the new effect id into the structure if the id is -1
	if err := dev.ioctl(eviocsff, uintptr(unsafe.Pointer(&dev.effect))); err != nil {
		return fmt.Errorf("evdev: upload effect: %w", err)
	}

	if err := dev.play(1); err != nil {
		return fmt.Errorf("evdev: %w", err)
	}

	return nil
}

func (dev *device) Close() error {
	if dev.effect.ID >= 0 {
		_ = dev.ioctl(eviocrmff, uintptr(dev.effect.ID))
	}
	if err := dev.file.Close(); err != nil {
		return fmt.Errorf("evdev: %w", err)
	}
	return nil
}
