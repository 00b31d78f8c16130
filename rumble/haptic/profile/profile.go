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

// Package profile decorates a haptic.Platform with per-device settings.
// Profiles are read from a YAML file of the form:
//
//	gain: 0.8
//	devices:
//	  - match: "xbox"
//	    gain: 0.5
//	    swap: true
//	  - match: "steam"
//	    disabled: true
//
// The match field is compared against the device name, ignoring case, and the
// first profile to match is used. Motor intensities are multiplied by the gain
// of the file and the gain of the device profile. Swap exchanges the low and
// high frequency motors. A disabled device fails to open.
package profile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Device is the profile for a single device.
type Device struct {
	Match    string   `yaml:"match"`
	Gain     *float64 `yaml:"gain,omitempty"`
	Swap     bool     `yaml:"swap,omitempty"`
	Disabled bool     `yaml:"disabled,omitempty"`
}

// Profiles is the contents of a profile file.
type Profiles struct {
	Gain    *float64 `yaml:"gain,omitempty"`
	Devices []Device `yaml:"devices"`
}

func gain(g *float64) float64 {
	if g == nil {
		return 1.0
	}
	return *g
}

// Load profiles from the named file. A missing file is not an error and
// results in an empty set of profiles.
func Load(filename string) (Profiles, error) {
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Profiles{}, nil
		}
		return Profiles{}, fmt.Errorf("profile: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read profiles from io.Reader.
func Read(r io.Reader) (Profiles, error) {
	var p Profiles

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Profiles{}, nil
		}
		return Profiles{}, fmt.Errorf("profile: %w", err)
	}

	if gain(p.Gain) < 0 {
		return Profiles{}, fmt.Errorf("profile: negative gain")
	}

	for i, d := range p.Devices {
		if d.Match == "" {
			return Profiles{}, fmt.Errorf("profile: device %d: empty match", i)
		}
		if gain(d.Gain) < 0 {
			return Profiles{}, fmt.Errorf("profile: device %d: negative gain", i)
		}
	}

	return p, nil
}

// Lookup returns the first device profile that matches the device name.
func (p Profiles) Lookup(name string) (Device, bool) {
	name = strings.ToLower(name)
	for _, d := range p.Devices {
		if strings.Contains(name, strings.ToLower(d.Match)) {
			return d, true
		}
	}
	return Device{}, false
}
