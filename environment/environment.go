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

// Package environment provides the context in which the rumble subsystem
// runs. The environment carries the preferences and decides whether log
// entries should be made.
package environment

import (
	"github.com/jetsetilly/gorumble/preferences"
)

// Label is used to name the environment
type Label string

// MainEnvironment is the label of the environment used by the main program.
// Log entries are only made for the main environment unless Verbose is set.
const MainEnvironment = Label("")

// Environment is used to provide context for the rumble subsystem.
type Environment struct {
	Label Label

	// the rumble preferences
	Prefs *preferences.Preferences

	// allow logging even when the environment is not the main environment
	Verbose bool
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// The prefs argument can be nil, in which case a new Preferences instance with
// default values and no backing file is created.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
		Prefs: prefs,
	}

	if env.Prefs == nil {
		var err error
		env.Prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	return env, nil
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env.Verbose || env.IsMain()
}

// IsMain returns true if the environment is the main environment
func (env *Environment) IsMain() bool {
	return env.Label == MainEnvironment
}
