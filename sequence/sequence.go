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

// Package sequence plays scripted rumble commands through the rumble
// registers. A sequence is read from YAML:
//
//	steps:
//	  - low: 0xffff
//	    high: 0x0000
//	    duration: 500
//	  - low: 0x4000
//	    high: 0x4000
//	    duration: 250
//	    wait: 1000
//
// Duration and wait are in milliseconds. The wait field is the time between
// the commit of the step and the next step. If it is omitted the duration of
// the step is used.
package sequence

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gorumble/rumble"
	"gopkg.in/yaml.v3"
)

// Writer is the bus the register bytes are written to. Both memorymap.Map and
// rumble.Controller implement this interface.
type Writer interface {
	Write(address uint32, data uint8)
}

// Step is a single rumble command in a sequence.
type Step struct {
	Low      uint16  `yaml:"low"`
	High     uint16  `yaml:"high"`
	Duration uint32  `yaml:"duration"`
	Wait     *uint32 `yaml:"wait,omitempty"`
}

// Command returns the step as a rumble.Command.
func (s Step) Command() rumble.Command {
	return rumble.Command{
		LowFrequency:  s.Low,
		HighFrequency: s.High,
		DurationMS:    s.Duration,
	}
}

// Bytes returns the register image of the step.
func (s Step) Bytes() [rumble.NumRegisters]uint8 {
	return s.Command().Bytes()
}

// Delay returns the time to wait after the step has been committed.
func (s Step) Delay() time.Duration {
	if s.Wait == nil {
		return time.Duration(s.Duration) * time.Millisecond
	}
	return time.Duration(*s.Wait) * time.Millisecond
}

// Sequence is a list of steps.
type Sequence struct {
	Steps []Step `yaml:"steps"`
}

// Load a sequence from io.Reader. A sequence must have at least one step.
func Load(r io.Reader) (Sequence, error) {
	var seq Sequence

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seq); err != nil {
		if errors.Is(err, io.EOF) {
			return Sequence{}, fmt.Errorf("sequence: no steps")
		}
		return Sequence{}, fmt.Errorf("sequence: %w", err)
	}

	if len(seq.Steps) == 0 {
		return Sequence{}, fmt.Errorf("sequence: no steps")
	}

	return seq, nil
}

// Commit writes the register image of the command to the bus, starting at
// origin.
func Commit(bus Writer, origin uint32, cmd rumble.Command) {
	for i, b := range cmd.Bytes() {
		bus.Write(origin+uint32(i), b)
	}
}

// Play writes every step to the bus in order, waiting between steps as
// required. Play returns early with the error from the context if the context
// is cancelled.
func (seq Sequence) Play(ctx context.Context, bus Writer, origin uint32) error {
	for _, s := range seq.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		Commit(bus, origin, s.Command())

		t := time.NewTimer(s.Delay())
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}

// Duration is the total time taken by Play().
func (seq Sequence) Duration() time.Duration {
	var d time.Duration
	for _, s := range seq.Steps {
		d += s.Delay()
	}
	return d
}
