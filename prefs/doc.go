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

// Package prefs facilitates the storage of preferences to disk and the
// override of those preferences from the command line.
//
// Preference values are one of the types Bool, Int, Float or String. Each
// value can have a hook function that is called just before and just after
// the value is changed. A value is associated with a key by adding it to a
// Disk instance:
//
//	var driver prefs.String
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("rumble.driver", &driver)
//	err = dsk.Load()
//
// A missing preferences file is reported by Load() as the NoPrefsFile
// sentinel error. It should normally be ignored.
//
// Values on the command line stack (see PushCommandLineStack()) are applied
// by Load() after the values on disk, and consumed in the process.
package prefs
