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

// Package preferences collates the preference values for the rumble
// subsystem. Values are stored on disk by the prefs package and can be
// overridden from the command line.
package preferences

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gorumble/logger"
	"github.com/jetsetilly/gorumble/prefs"
)

// List of valid values for the Driver preference.
const (
	DriverSDL   = "sdl"
	DriverEvdev = "evdev"
	DriverWAV   = "wav"
	DriverNone  = "none"
)

// Drivers is the list of valid values for the Driver preference.
var Drivers = []string{DriverSDL, DriverEvdev, DriverWAV, DriverNone}

// DefaultOrigin is the address of the first rumble register.
const DefaultOrigin = 0x2000

// Preferences defines and collates all the preference values used by the
// rumble subsystem.
type Preferences struct {
	dsk *prefs.Disk

	// the haptic platform to use. one of the values in Drivers
	Driver prefs.String

	// address of the first of the eight rumble registers
	Origin prefs.Int

	// gain applied to both motors of every device
	Gain prefs.Float

	// file containing per-device profiles. relative paths are relative to the
	// resource directory
	Profiles prefs.String

	// output file of the wav driver. an empty string will cause a unique
	// filename to be generated
	WavFile prefs.String

	// echo log entries to stdout as they are made
	Echo prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The pth argument is the preferences file. If it is the empty string
// then the preferences are not associated with a file and Load() and Save()
// will do nothing.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Driver.SetHookPre(func(v prefs.Value) error {
		d := strings.ToLower(v.(string))
		for _, s := range Drivers {
			if d == s {
				return nil
			}
		}
		return fmt.Errorf("preferences: unknown rumble driver (%s)", v)
	})

	p.Origin.SetHookPre(func(v prefs.Value) error {
		o := v.(int)
		if o < 0 || int64(o) > 0xfffffff8 {
			return fmt.Errorf("preferences: rumble origin out of range (%#x)", o)
		}
		return nil
	})

	p.Gain.SetHookPre(func(v prefs.Value) error {
		if v.(float64) < 0.0 {
			return fmt.Errorf("preferences: rumble gain cannot be negative")
		}
		return nil
	})

	p.Echo.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			logger.SetEcho(os.Stdout)
		} else {
			logger.SetEcho(nil)
		}
		return nil
	})

	p.SetDefaults()

	if pth == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	for k, v := range map[string]prefs.Pref{
		"rumble.driver":   &p.Driver,
		"rumble.origin":   &p.Origin,
		"rumble.gain":     &p.Gain,
		"rumble.profiles": &p.Profiles,
		"rumble.wavfile":  &p.WavFile,
		"rumble.echo":     &p.Echo,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, fmt.Errorf("preferences: %w", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	// the default values are all valid so the errors can be ignored
	_ = p.Driver.Set(DriverSDL)
	_ = p.Origin.Set(DefaultOrigin)
	_ = p.Gain.Set(1.0)
	_ = p.Profiles.Set("profiles.yaml")
	_ = p.WavFile.Set("")
	_ = p.Echo.Set(false)
}

// Load preferences from disk. A missing preferences file is not an error.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	err := p.dsk.Load()
	if err != nil && !errors.Is(err, prefs.NoPrefsFile) {
		return fmt.Errorf("preferences: %w", err)
	}
	return nil
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	if err := p.dsk.Save(); err != nil {
		return fmt.Errorf("preferences: %w", err)
	}
	return nil
}

// RumbleOrigin returns the Origin preference as a memory address.
func (p *Preferences) RumbleOrigin() uint32 {
	return uint32(p.Origin.Get().(int))
}
