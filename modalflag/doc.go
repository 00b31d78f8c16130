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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes, each with its own set of flags.
//
// Arguments are given to the Modes type with NewArgs() and then parsed in
// layers with Parse(). Flags for the next layer are added before each call to
// Parse(), along with the modes that are allowed to follow the flags:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print log messages")
//	md.AddSubModes("LIST", "TEST")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After parsing, Mode() returns the selected mode. The first mode in the list
// is the default and is selected if the next argument is not one of the
// listed modes. Mode names are not case sensitive.
//
// Flags for the selected mode are added after a call to NewMode(), followed
// by another call to Parse(). Arguments that are not flags or modes are
// available through RemainingArgs() and GetArg().
//
// The -help flag is handled automatically at every layer. Help output lists
// the flags for the layer and any sub-modes.
package modalflag
