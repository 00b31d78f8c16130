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

// Package paths contains functions to prepare paths to gorumble resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the rumble profiles file.
//
//	d, err := paths.ResourcePath("", "profiles.yaml")
//
// For development builds the base path is ".gorumble" in the current working
// directory. For builds with the "release" tag the base path is "gorumble" in
// the user's config directory, as reported by os.UserConfigDir(). In both
// cases the directory (and any sub-directory) is created if it does not
// already exist.
package paths
