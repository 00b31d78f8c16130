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

// Package sdlhaptic implements the haptic.Platform interface for SDL game
// controllers. Joysticks that SDL does not recognise as game controllers are
// not opened.
//
// The SDL game controller subsystem is initialised by Init() and released by
// Quit(). Other SDL subsystems are not affected.
package sdlhaptic

import (
	"fmt"

	"github.com/jetsetilly/gorumble/rumble/haptic"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform implements the haptic.Platform interface.
type Platform struct{}

// NewPlatform is the preferred method of initialisation for the Platform type.
func NewPlatform() *Platform {
	return &Platform{}
}

// Name implements the haptic.Platform interface.
func (plt *Platform) Name() string {
	return "sdl"
}

// Init implements the haptic.Platform interface.
func (plt *Platform) Init() error {
	if err := sdl.InitSubSystem(sdl.INIT_GAMECONTROLLER); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// NumDevices implements the haptic.Platform interface.
func (plt *Platform) NumDevices() int {
	return sdl.NumJoysticks()
}

// Open implements the haptic.Platform interface.
func (plt *Platform) Open(idx int) (haptic.Device, error) {
	if !sdl.IsGameController(idx) {
		return nil, fmt.Errorf("sdl: joystick %d is not a game controller", idx)
	}

	pad := sdl.GameControllerOpen(idx)
	if pad == nil {
		if err := sdl.GetError(); err != nil {
			return nil, fmt.Errorf("sdl: %w", err)
		}
		return nil, fmt.Errorf("sdl: cannot open game controller %d", idx)
	}

	if !pad.Attached() {
		pad.Close()
		return nil, fmt.Errorf("sdl: game controller %d is not attached", idx)
	}

	return &controller{pad: pad, name: pad.Name()}, nil
}

// Quit implements the haptic.Platform interface.
func (plt *Platform) Quit() {
	sdl.QuitSubSystem(sdl.INIT_GAMECONTROLLER)
}

type controller struct {
	pad  *sdl.GameController
	name string
}

func (c *controller) Name() string {
	return c.name
}

func (c *controller) Rumble(lowFrequency uint16, highFrequency uint16, durationMS uint32) error {
	if err := c.pad.Rumble(lowFrequency, highFrequency, durationMS); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (c *controller) Close() error {
	c.pad.Close()
	return nil
}
