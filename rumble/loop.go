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
	"time"

	"github.com/jetsetilly/gorumble/logger"
)

// the reason the actuation goroutine has been woken
type wakeReason int

const (
	wakeNone wakeReason = iota
	wakeCommit
	wakeShutdown
)

// check returns the reason for waking and, in the case of wakeCommit, a copy
// of the committed command. a commit is consumed by the call
func (c *Controller) check() (Command, wakeReason) {
	c.crit.Lock()
	defer c.crit.Unlock()

	if !c.running {
		return Command{}, wakeShutdown
	}

	if !c.pending {
		return Command{}, wakeNone
	}

	c.pending = false

	// any notification in the channel refers to the commit being consumed
	select {
	case <-c.wake:
	default:
	}

	return c.command, wakeCommit
}

// loop is the actuation goroutine
func (c *Controller) loop() {
	defer close(c.done)

	for {
		<-c.wake

		cmd, reason := c.check()
		for reason == wakeCommit {
			c.actuate(cmd.LowFrequency, cmd.HighFrequency, cmd.DurationMS)
			cmd, reason = c.coolDown(cmd.Duration())
		}

		if reason == wakeShutdown {
			return
		}
	}
}

// coolDown waits for the duration or until the goroutine is woken. if the
// duration expires without a new commit then every device is stopped
func (c *Controller) coolDown(d time.Duration) (Command, wakeReason) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-c.wake:
	case <-t.C:
	}

	cmd, reason := c.check()
	if reason == wakeNone {
		c.actuate(0, 0, 0)
	}

	return cmd, reason
}

// actuate every device. errors are logged and otherwise ignored
func (c *Controller) actuate(lowFrequency uint16, highFrequency uint16, durationMS uint32) {
	for _, dev := range c.devices {
		if err := dev.Rumble(lowFrequency, highFrequency, durationMS); err != nil {
			logger.Logf(c.env, logTag, "%s: %v", dev.Name(), err)
		}
	}
}
