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

package profile

import (
	"fmt"
	"math"

	"github.com/jetsetilly/gorumble/rumble/haptic"
)

// Platform implements the haptic.Platform interface by wrapping another
// Platform.
type Platform struct {
	haptic.Platform
	profiles Profiles
	gain     float64
}

// Wrap is the preferred method of initialisation for the Platform type. The
// gain argument is multiplied with the gain in the profiles.
func Wrap(platform haptic.Platform, profiles Profiles, gain float64) *Platform {
	return &Platform{
		Platform: platform,
		profiles: profiles,
		gain:     gain * profiles.gainValue(),
	}
}

func (p Profiles) gainValue() float64 {
	return gain(p.Gain)
}

// Open implements the haptic.Platform interface.
func (plt *Platform) Open(idx int) (haptic.Device, error) {
	dev, err := plt.Platform.Open(idx)
	if err != nil {
		return nil, err
	}

	d, ok := plt.profiles.Lookup(dev.Name())
	if !ok {
		return &device{Device: dev, gain: plt.gain}, nil
	}

	if d.Disabled {
		dev.Close()
		return nil, fmt.Errorf("profile: %s: device disabled", dev.Name())
	}

	return &device{
		Device: dev,
		gain:   plt.gain * gain(d.Gain),
		swap:   d.Swap,
	}, nil
}

type device struct {
	haptic.Device
	gain float64
	swap bool
}

func scale(v uint16, gain float64) uint16 {
	s := math.Round(float64(v) * gain)
	if s >= math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(s)
}

func (dev *device) Rumble(lowFrequency uint16, highFrequency uint16, durationMS uint32) error {
	lowFrequency = scale(lowFrequency, dev.gain)
	highFrequency = scale(highFrequency, dev.gain)
	if dev.swap {
		lowFrequency, highFrequency = highFrequency, lowFrequency
	}
	return dev.Device.Rumble(lowFrequency, highFrequency, durationMS)
}
