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

package rumble_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/gorumble/environment"
	"github.com/jetsetilly/gorumble/memorymap"
	"github.com/jetsetilly/gorumble/rumble"
	"github.com/jetsetilly/gorumble/rumble/haptic/haptictest"
	"github.com/jetsetilly/gorumble/test"
)

const origin = uint32(0x2000)

// timeout for calls that are expected to happen promptly
const prompt = time.Second

func newController(t *testing.T, plt *haptictest.Platform) *rumble.Controller {
	t.Helper()
	env, err := environment.NewEnvironment("test", nil)
	test.DemandSuccess(t, err)
	return rumble.NewController(env, plt, origin)
}

func writeCommand(c *rumble.Controller, cmd rumble.Command) {
	for i, b := range cmd.Bytes() {
		c.Write(origin+uint32(i), b)
	}
}

// demandCall waits for the next call and checks that it is for the device
// with the expected values
func demandCall(t *testing.T, plt *haptictest.Platform, device int, low uint16, high uint16, duration uint32) haptictest.Call {
	t.Helper()
	c, ok := plt.Next(prompt)
	if !ok {
		t.Fatalf("no call to device %d", device)
	}
	test.ExpectEquality(t, c.Device, device)
	test.ExpectEquality(t, c.LowFrequency, low)
	test.ExpectEquality(t, c.HighFrequency, high)
	test.ExpectEquality(t, c.DurationMS, duration)
	return c
}

func TestScenario(t *testing.T) {
	plt := haptictest.NewPlatform(2)
	c := newController(t, plt)
	defer c.Deinit()

	test.ExpectEquality(t, plt.Opened(), 2)
	test.ExpectEquality(t, len(c.Devices()), 2)

	start := time.Now()
	for i, b := range []uint8{0x34, 0x12, 0x78, 0x56, 0xe8, 0x03, 0x00, 0x00} {
		c.Write(origin+uint32(i), b)
	}

	// actuation happens immediately on every device
	act := demandCall(t, plt, 0, 0x1234, 0x5678, 1000)
	demandCall(t, plt, 1, 0x1234, 0x5678, 1000)
	test.ExpectSuccess(t, act.When.Sub(start) < 500*time.Millisecond)

	// stop happens after the duration
	c0, ok := plt.Next(2 * time.Second)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, c0.Stop())
	test.ExpectEquality(t, c0.Device, 0)
	test.ExpectSuccess(t, c0.When.Sub(act.When) >= time.Second)

	c1, ok := plt.Next(prompt)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, c1.Stop())
	test.ExpectEquality(t, c1.Device, 1)

	test.ExpectSuccess(t, plt.Quiet(100*time.Millisecond))
}

// a commit during the cool-down period replaces the current command without
// stopping the device in between
func TestContinuousRumble(t *testing.T) {
	plt := haptictest.NewPlatform(1)
	c := newController(t, plt)
	defer c.Deinit()

	writeCommand(c, rumble.Command{LowFrequency: 0x1000, HighFrequency: 0x2000, DurationMS: 500})
	demandCall(t, plt, 0, 0x1000, 0x2000, 500)

	writeCommand(c, rumble.Command{LowFrequency: 0x3000, HighFrequency: 0x4000, DurationMS: 50})
	demandCall(t, plt, 0, 0x3000, 0x4000, 50)

	demandCall(t, plt, 0, 0, 0, 0)
	test.ExpectSuccess(t, plt.Quiet(100*time.Millisecond))

	// the controller is idle again and responds to a new commit
	writeCommand(c, rumble.Command{LowFrequency: 0x5000, HighFrequency: 0x6000, DurationMS: 10})
	demandCall(t, plt, 0, 0x5000, 0x6000, 10)
	demandCall(t, plt, 0, 0, 0, 0)
}

func TestDeinitDuringCoolDown(t *testing.T) {
	plt := haptictest.NewPlatform(2)
	c := newController(t, plt)

	writeCommand(c, rumble.Command{LowFrequency: 0xffff, HighFrequency: 0xffff, DurationMS: 10000})
	demandCall(t, plt, 0, 0xffff, 0xffff, 10000)
	demandCall(t, plt, 1, 0xffff, 0xffff, 10000)

	start := time.Now()
	c.Deinit()
	test.ExpectSuccess(t, time.Since(start) < prompt)

	// no stop call is made on shutdown
	test.ExpectSuccess(t, plt.Quiet(100*time.Millisecond))

	test.ExpectEquality(t, plt.Closed(), 2)
	test.ExpectSuccess(t, plt.Quitted())
	test.ExpectEquality(t, len(c.Devices()), 0)

	// a second call does nothing
	c.Deinit()
	test.ExpectEquality(t, plt.Closed(), 2)
}

func TestDeinitWhenIdle(t *testing.T) {
	plt := haptictest.NewPlatform(1)
	c := newController(t, plt)
	c.Deinit()
	test.ExpectEquality(t, plt.Closed(), 1)
	test.ExpectSuccess(t, plt.Quiet(50*time.Millisecond))
}

func TestDevicesDuringDeinit(t *testing.T) {
	plt := haptictest.NewPlatform(2)
	c := newController(t, plt)

	stop := make(chan bool)
	done := make(chan bool)
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
				n := len(c.Devices())
				if n != 0 && n != 2 {
					t.Errorf("unexpected number of devices: %d", n)
				}
			}
		}
	}()

	c.Deinit()
	close(stop)
	<-done

	test.ExpectEquality(t, len(c.Devices()), 0)
	test.ExpectEquality(t, plt.Closed(), 2)
}

func TestNoDevices(t *testing.T) {
	plt := haptictest.NewPlatform(0)
	c := newController(t, plt)

	done := make(chan bool)
	go func() {
		for range 10 {
			writeCommand(c, rumble.Command{LowFrequency: 0x1234, HighFrequency: 0x5678, DurationMS: 5})
		}
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(prompt):
		t.Fatalf("writes blocked with no devices")
	}

	test.ExpectSuccess(t, plt.Quiet(50*time.Millisecond))
	c.Deinit()
	test.ExpectSuccess(t, plt.Quitted())
}

func TestInitFailure(t *testing.T) {
	plt := haptictest.NewPlatform(2)
	plt.FailInit(errors.New("no subsystem"))
	c := newController(t, plt)

	test.ExpectEquality(t, plt.Opened(), 0)
	writeCommand(c, rumble.Command{LowFrequency: 0x1234, HighFrequency: 0x5678, DurationMS: 5})
	test.ExpectSuccess(t, plt.Quiet(50*time.Millisecond))

	c.Deinit()

	// platform was never initialised so it is not quit
	test.ExpectFailure(t, plt.Quitted())
}

func TestOpenFailure(t *testing.T) {
	plt := haptictest.NewPlatform(3)
	plt.FailOpen(1)
	c := newController(t, plt)
	defer c.Deinit()

	test.ExpectEquality(t, len(c.Devices()), 2)

	writeCommand(c, rumble.Command{LowFrequency: 0x0101, HighFrequency: 0x0202, DurationMS: 10})
	demandCall(t, plt, 0, 0x0101, 0x0202, 10)
	demandCall(t, plt, 2, 0x0101, 0x0202, 10)
}

// a device that fails is skipped without affecting the other devices
func TestRumbleFailure(t *testing.T) {
	plt := haptictest.NewPlatform(2)
	plt.FailRumble(0)
	c := newController(t, plt)
	defer c.Deinit()

	writeCommand(c, rumble.Command{LowFrequency: 0x0101, HighFrequency: 0x0202, DurationMS: 10})
	f := demandCall(t, plt, 0, 0x0101, 0x0202, 10)
	test.ExpectSuccess(t, f.Failed)
	demandCall(t, plt, 1, 0x0101, 0x0202, 10)

	// stop is still attempted on both devices
	demandCall(t, plt, 0, 0, 0, 0)
	demandCall(t, plt, 1, 0, 0, 0)
}

func TestPartialCommitActuates(t *testing.T) {
	plt := haptictest.NewPlatform(1)
	c := newController(t, plt)
	defer c.Deinit()

	// only the last register is written. the command is all zeroes
	c.Write(origin+uint32(rumble.Duration3), 0x00)
	demandCall(t, plt, 0, 0, 0, 0)

	// zero duration means the stop follows immediately
	demandCall(t, plt, 0, 0, 0, 0)
}

func TestOutOfRange(t *testing.T) {
	plt := haptictest.NewPlatform(1)
	c := newController(t, plt)
	defer c.Deinit()

	test.ExpectEquality(t, c.Origin(), origin)
	test.ExpectEquality(t, c.Memtop(), origin+7)

	c.Write(origin-1, 0xff)
	c.Write(origin+8, 0xff)
	c.Write(0, 0xff)
	test.ExpectSuccess(t, plt.Quiet(50*time.Millisecond))

	_, ok := c.Peek(origin - 1)
	test.ExpectFailure(t, ok)
	_, ok = c.Peek(origin + 8)
	test.ExpectFailure(t, ok)

	// nothing has been written to the registers
	for a := c.Origin(); a <= c.Memtop(); a++ {
		v, ok := c.Peek(a)
		test.ExpectSuccess(t, ok, a)
		test.ExpectEquality(t, v, uint8(0), a)
	}
}

func TestPeekController(t *testing.T) {
	plt := haptictest.NewPlatform(0)
	c := newController(t, plt)
	defer c.Deinit()

	c.Write(origin, 0x34)
	c.Write(origin+1, 0x12)

	v, ok := c.Peek(origin + 1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x12))
	v, ok = c.Peek(origin)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x34))
}

// the controller placed in a memory map receives only the writes to its
// registers
func TestMemoryMap(t *testing.T) {
	plt := haptictest.NewPlatform(1)
	c := newController(t, plt)
	defer c.Deinit()

	m := memorymap.NewMap()
	test.DemandSuccess(t, m.Add("rumble", c.Origin(), c.Memtop(), c))
	test.ExpectEquality(t, m.Summary(), "2000 -> 2007\trumble\n")

	cmd := rumble.Command{LowFrequency: 0x1234, HighFrequency: 0x5678, DurationMS: 20}
	for i, b := range cmd.Bytes() {
		m.Write(origin+uint32(i), b)

		// unmapped writes in between are ignored
		m.Write(origin+8, 0xff)
	}
	demandCall(t, plt, 0, 0x1234, 0x5678, 20)
	demandCall(t, plt, 0, 0, 0, 0)

	v, ok := m.Peek(origin + 3)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x56))
}
