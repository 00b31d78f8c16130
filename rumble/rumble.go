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

package rumble

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/gorumble/environment"
	"github.com/jetsetilly/gorumble/logger"
	"github.com/jetsetilly/gorumble/rumble/haptic"
)

const logTag = "rumble"

// Controller is the rumble peripheral. It implements the memorymap.Peripheral
// interface.
type Controller struct {
	env      *environment.Environment
	platform haptic.Platform
	origin   uint32

	// whether platform.Init() succeeded. platform.Quit() is only called if it
	// did
	initialised bool

	// devices are opened in NewController() and closed in Deinit(). the
	// actuation goroutine is the only caller of the devices in between. the
	// slice itself is protected by crit once the goroutine has started
	devices []haptic.Device

	// crit protects command, pending and running. the actuation goroutine
	// copies the command while holding crit and never holds it while talking
	// to a device
	crit    sync.Mutex
	command Command
	pending bool
	running bool

	// single slot notification of a commit or of shutdown. sends must never
	// block
	wake chan struct{}

	// closed by the actuation goroutine when it ends
	done chan struct{}
}

// NewController is the preferred method of initialisation for the Controller
// type. The origin is the address of the first register.
//
// All devices attached to the platform are opened. Failure to initialise the
// platform or to open a device is logged but is not an error. The controller
// is still usable with an empty set of devices.
func NewController(env *environment.Environment, platform haptic.Platform, origin uint32) *Controller {
	c := &Controller{
		env:      env,
		platform: platform,
		origin:   origin,
		running:  true,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}

	if err := platform.Init(); err != nil {
		logger.Logf(env, logTag, "%s: %v", platform.Name(), err)
	} else {
		c.initialised = true
		for i := range platform.NumDevices() {
			dev, err := platform.Open(i)
			if err != nil {
				logger.Logf(env, logTag, "%s: %v", platform.Name(), err)
				continue
			}
			logger.Logf(env, logTag, "%s: device: %s", platform.Name(), dev.Name())
			c.devices = append(c.devices, dev)
		}
	}

	if len(c.devices) == 0 {
		logger.Logf(env, logTag, "%s: no rumble devices found", platform.Name())
	}

	go c.loop()

	return c
}

func (c *Controller) String() string {
	c.crit.Lock()
	defer c.crit.Unlock()
	return fmt.Sprintf("%s: %d devices: %s", c.platform.Name(), len(c.devices), c.command)
}

// Origin returns the address of the first register.
func (c *Controller) Origin() uint32 {
	return c.origin
}

// Memtop returns the address of the last register.
func (c *Controller) Memtop() uint32 {
	return c.origin + uint32(NumRegisters) - 1
}

// Devices returns the names of the devices being driven by the controller.
func (c *Controller) Devices() []string {
	c.crit.Lock()
	defer c.crit.Unlock()

	n := make([]string, 0, len(c.devices))
	for _, dev := range c.devices {
		n = append(n, dev.Name())
	}
	return n
}

func (c *Controller) register(address uint32) (Register, bool) {
	if address < c.origin {
		return 0, false
	}
	reg := Register(address - c.origin)
	return reg, reg < NumRegisters
}

// signal the actuation goroutine. must not block
func (c *Controller) signal() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// Write data to the register at address. Addresses outside the range of the
// controller are ignored. Writing the last register commits the command and
// wakes the actuation goroutine.
//
// Write never blocks on device activity. Calling Write() after Deinit() is
// not supported.
func (c *Controller) Write(address uint32, data uint8) {
	reg, ok := c.register(address)
	if !ok {
		return
	}

	c.crit.Lock()
	defer c.crit.Unlock()

	if c.command.Write(reg, data) {
		c.pending = true
		c.signal()
	}
}

// Peek returns the value of the register at address. Returns false if the
// address is outside the range of the controller.
func (c *Controller) Peek(address uint32) (uint8, bool) {
	reg, ok := c.register(address)
	if !ok {
		return 0, false
	}

	c.crit.Lock()
	defer c.crit.Unlock()

	return c.command.Peek(reg)
}

// Deinit stops the actuation goroutine and waits for it to end. Devices are
// then closed and the platform released. Devices are not sent a final stop
// command.
//
// Deinit should be called only once. Subsequent calls do nothing.
func (c *Controller) Deinit() {
	c.crit.Lock()
	if !c.running {
		c.crit.Unlock()
		return
	}
	c.running = false
	c.crit.Unlock()

	c.signal()
	<-c.done

	c.crit.Lock()
	devices := c.devices
	c.devices = nil
	c.crit.Unlock()

	for _, dev := range devices {
		if err := dev.Close(); err != nil {
			logger.Logf(c.env, logTag, "%s: %v", dev.Name(), err)
		}
	}

	if c.initialised {
		c.platform.Quit()
	}
}
