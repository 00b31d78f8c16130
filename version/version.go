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

// Package version reports the version of gorumble. The version number is set
// at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/gorumble/version.number=v0.1.0"
//
// Without a version number the version is "unreleased" if VCS information is
// present in the build and "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Gorumble"

// set with the -X linker flag
var number string

// Info describes the build.
type Info struct {
	Version  string
	Revision string

	// the version is a numbered release
	Release bool
}

func (i Info) String() string {
	if i.Release {
		return fmt.Sprintf("%s %s", ApplicationName, i.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, i.Version, i.Revision)
}

var current Info

func init() {
	info, _ := debug.ReadBuildInfo()
	current = fromBuildInfo(info, number)
}

// Version returns the version information of the running program.
func Version() Info {
	return current
}

func fromBuildInfo(info *debug.BuildInfo, number string) Info {
	var vcs bool
	var revision string
	var modified bool

	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	var i Info

	if revision == "" {
		i.Revision = "no revision information"
	} else {
		i.Revision = revision
		if modified {
			i.Revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	switch {
	case number != "":
		i.Version = number
		i.Release = true
	case vcs:
		i.Version = "unreleased"
	default:
		i.Version = "local"
	}

	return i
}
