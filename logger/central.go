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

// Package logger is the central logging package for gorumble. Log entries
// are made up of a tag and a detail string. The tag is intended to identify
// the part of the program that made the entry, for example "rumble" or
// "sdl".
//
// Entries are only created if the supplied Permission allows it. The
// environment.Environment type implements the Permission interface and is the
// usual value to pass. Use logger.Allow if the entry should always be made.
//
// Consecutive entries that are the same are collapsed into a single entry with
// a repeat count.
package logger

import (
	"io"
)

// the central logger for the entire application. there's no need to allow
// more than one log outside of testing.
var central *Logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = NewLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from central logger.
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints new log entries to io.Writer as they are made. A nil value
// turns echoing off.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
