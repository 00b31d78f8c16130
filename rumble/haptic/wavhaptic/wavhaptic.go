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

// Package wavhaptic implements the haptic.Platform interface with a single
// virtual device that records rumble activity to a WAV file.
//
// The recording is buffered in memory in its entirety and written to disk when
// the device is closed. The left channel is a low tone with an amplitude set
// by the low frequency motor and the right channel is a higher tone with an
// amplitude set by the high frequency motor. It is therefore probably only
// suitable for testing purposes.
package wavhaptic

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gorumble/environment"
	"github.com/jetsetilly/gorumble/logger"
	"github.com/jetsetilly/gorumble/paths"
	"github.com/jetsetilly/gorumble/rumble/haptic"
)

const logTag = "wav"

// audio parameters of the recording
const (
	SampleRate = 8000
	BitDepth   = 16
	NumChans   = 2

	lowTone  = 40.0
	highTone = 160.0
)

// Platform implements the haptic.Platform interface.
type Platform struct {
	env      *environment.Environment
	filename string
}

// NewPlatform is the preferred method of initialisation for the Platform type.
// If filename is empty then a unique filename is chosen when the platform is
// initialised.
func NewPlatform(env *environment.Environment, filename string) *Platform {
	return &Platform{
		env:      env,
		filename: filename,
	}
}

// Name implements the haptic.Platform interface.
func (plt *Platform) Name() string {
	return "wav"
}

// Init implements the haptic.Platform interface.
func (plt *Platform) Init() error {
	if plt.filename == "" {
		plt.filename = paths.UniqueFilename("rumble", "wav")
	}
	return nil
}

// Filename returns the name of the file the recording will be written to.
func (plt *Platform) Filename() string {
	return plt.filename
}

// NumDevices implements the haptic.Platform interface. There is always exactly
// one device.
func (plt *Platform) NumDevices() int {
	return 1
}

// Open implements the haptic.Platform interface.
func (plt *Platform) Open(idx int) (haptic.Device, error) {
	if idx != 0 {
		return nil, fmt.Errorf("wav: no device at index %d", idx)
	}
	return &device{
		env:      plt.env,
		filename: plt.filename,
		now:      time.Now,
	}, nil
}

// Quit implements the haptic.Platform interface.
func (plt *Platform) Quit() {
}

// segment is a period of time during which the motors are set to a constant
// intensity
type segment struct {
	start time.Time
	end   time.Time
	low   uint16
	high  uint16
}

type device struct {
	env      *environment.Environment
	filename string
	now      func() time.Time

	// the time of the first call to Rumble(). all segments are relative to
	// this
	origin   time.Time
	segments []segment
}

func (dev *device) Name() string {
	return "WAV recorder"
}

func (dev *device) Rumble(lowFrequency uint16, highFrequency uint16, durationMS uint32) error {
	t := dev.now()
	if dev.origin.IsZero() {
		dev.origin = t
	}

	// a new call supersedes the current segment
	if n := len(dev.segments); n > 0 && dev.segments[n-1].end.After(t) {
		dev.segments[n-1].end = t
	}

	if haptic.Stopped(lowFrequency, highFrequency, durationMS) {
		return nil
	}

	dev.segments = append(dev.segments, segment{
		start: t,
		end:   t.Add(time.Duration(durationMS) * time.Millisecond),
		low:   lowFrequency,
		high:  highFrequency,
	})

	return nil
}

func (dev *device) Close() (rerr error) {
	// the recording ends when the device is closed, even if the last command
	// has not finished
	t := dev.now()
	for i := range dev.segments {
		if dev.segments[i].end.After(t) {
			dev.segments[i].end = t
		}
	}

	buf := render(dev.origin, dev.segments)

	f, err := os.Create(dev.filename)
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wav: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, BitDepth, NumChans, 1)

	logger.Logf(dev.env, logTag, "writing rumble to %s", dev.filename)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	return nil
}

// sample index of time t. millisecond precision keeps the multiplication well
// within int64 for any duration a command can request
func sampleIndex(origin time.Time, t time.Time) int {
	return int(t.Sub(origin).Milliseconds() * SampleRate / 1000)
}

// render the segments as interleaved stereo samples. the length of the
// recording is the end of the last segment. segments must not end after the
// device was closed
func render(origin time.Time, segments []segment) *audio.IntBuffer {
	var length int
	for _, s := range segments {
		length = max(length, sampleIndex(origin, s.end))
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: NumChans,
			SampleRate:  SampleRate,
		},
		Data:           make([]int, length*NumChans),
		SourceBitDepth: BitDepth,
	}

	const amplitude = math.MaxInt16

	for _, s := range segments {
		l := float64(s.low) / math.MaxUint16 * amplitude
		h := float64(s.high) / math.MaxUint16 * amplitude
		for i := sampleIndex(origin, s.start); i < sampleIndex(origin, s.end); i++ {
			t := float64(i) / SampleRate
			buf.Data[i*NumChans] = int(l * math.Sin(2*math.Pi*lowTone*t))
			buf.Data[i*NumChans+1] = int(h * math.Sin(2*math.Pi*highTone*t))
		}
	}

	return buf
}
