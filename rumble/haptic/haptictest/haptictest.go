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

// Package haptictest provides a haptic.Platform that records every call made
// to its devices. Calls are sent to a channel so that tests can wait for the
// actuation goroutine without sleeping.
package haptictest

import (
	"fmt"
	"sync"
	"time"

	"github.com/jetsetilly/gorumble/rumble/haptic"
)

// Call records a single call to Device.Rumble().
type Call struct {
	Device        int
	LowFrequency  uint16
	HighFrequency uint16
	DurationMS    uint32
	When          time.Time

	// the device was set to fail and returned an error for this call
	Failed bool
}

func (c Call) String() string {
	return fmt.Sprintf("device %d: %#04x %#04x %dms", c.Device, c.LowFrequency, c.HighFrequency, c.DurationMS)
}

// Stop returns true if the call is a stop call.
func (c Call) Stop() bool {
	return haptic.Stopped(c.LowFrequency, c.HighFrequency, c.DurationMS)
}

// Platform implements the haptic.Platform interface.
type Platform struct {
	crit sync.Mutex

	numDevices int
	initErr    error
	failOpen   map[int]bool
	failRumble map[int]bool

	opened int
	closed int
	quit   bool

	// every call to Rumble() on any device is sent to this channel
	Calls chan Call
}

// NewPlatform is the preferred method of initialisation for the Platform type.
func NewPlatform(numDevices int) *Platform {
	return &Platform{
		numDevices: numDevices,
		failOpen:   make(map[int]bool),
		failRumble: make(map[int]bool),
		Calls:      make(chan Call, 256),
	}
}

// FailInit causes Init() to return the error.
func (p *Platform) FailInit(err error) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.initErr = err
}

// FailOpen causes Open() to fail for the device index.
func (p *Platform) FailOpen(idx int) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.failOpen[idx] = true
}

// FailRumble causes every call to Rumble() to fail for the device index.
func (p *Platform) FailRumble(idx int) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.failRumble[idx] = true
}

// Name implements the haptic.Platform interface.
func (p *Platform) Name() string {
	return "test"
}

// Init implements the haptic.Platform interface.
func (p *Platform) Init() error {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.initErr
}

// NumDevices implements the haptic.Platform interface.
func (p *Platform) NumDevices() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.numDevices
}

// Open implements the haptic.Platform interface.
func (p *Platform) Open(idx int) (haptic.Device, error) {
	p.crit.Lock()
	defer p.crit.Unlock()
	if idx < 0 || idx >= p.numDevices {
		return nil, fmt.Errorf("test: no device at index %d", idx)
	}
	if p.failOpen[idx] {
		return nil, fmt.Errorf("test: cannot open device %d", idx)
	}
	p.opened++
	return &device{plt: p, idx: idx}, nil
}

// Quit implements the haptic.Platform interface.
func (p *Platform) Quit() {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.quit = true
}

// Opened returns the number of devices that have been opened.
func (p *Platform) Opened() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.opened
}

// Closed returns the number of devices that have been closed.
func (p *Platform) Closed() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.closed
}

// Quitted returns true if Quit() has been called.
func (p *Platform) Quitted() bool {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.quit
}

// Next waits for the next call to any device. Returns false if no call was
// made before the timeout.
func (p *Platform) Next(timeout time.Duration) (Call, bool) {
	select {
	case c := <-p.Calls:
		return c, true
	case <-time.After(timeout):
		return Call{}, false
	}
}

// Quiet returns true if no call is made to any device for the duration.
func (p *Platform) Quiet(d time.Duration) bool {
	_, ok := p.Next(d)
	return !ok
}

type device struct {
	plt *Platform
	idx int
}

func (d *device) Name() string {
	return fmt.Sprintf("test device %d", d.idx)
}

func (d *device) Rumble(lowFrequency uint16, highFrequency uint16, durationMS uint32) error {
	d.plt.crit.Lock()
	fail := d.plt.failRumble[d.idx]
	d.plt.crit.Unlock()

	d.plt.Calls <- Call{
		Device:        d.idx,
		LowFrequency:  lowFrequency,
		HighFrequency: highFrequency,
		DurationMS:    durationMS,
		When:          time.Now(),
		Failed:        fail,
	}

	if fail {
		return fmt.Errorf("test: device %d failed", d.idx)
	}
	return nil
}

func (d *device) Close() error {
	d.plt.crit.Lock()
	defer d.plt.crit.Unlock()
	d.plt.closed++
	return nil
}
