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

// Package rawterm puts the controlling terminal into raw mode so that single
// key presses can be read without waiting for a newline. It is a thin wrapper
// around "github.com/pkg/term".
package rawterm

import (
	"fmt"

	"github.com/pkg/term"
)

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt      = 3  // end-of-text character
	KeyEndOfFile      = 4  // end-of-transmission character
	KeySuspend        = 26 // substitute character
	KeyCarriageReturn = 13
	KeyEsc            = 27
)

// the terminal device used for input and output
const device = "/dev/tty"

// Terminal is the raw mode terminal.
type Terminal struct {
	tty *term.Term
}

// Open the controlling terminal and put it into raw mode. The terminal must be
// closed with Close() to restore the previous mode.
func Open() (*Terminal, error) {
	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("rawterm: %w", err)
	}
	return &Terminal{tty: tty}, nil
}

// ReadKey blocks until a key is pressed. Keys that produce more than one byte
// are returned one byte at a time.
func (rt *Terminal) ReadKey() (byte, error) {
	b := make([]byte, 1)
	for {
		n, err := rt.tty.Read(b)
		if err != nil {
			return 0, fmt.Errorf("rawterm: %w", err)
		}
		if n == 1 {
			return b[0], nil
		}
	}
}

// Print writes the formatted string to the terminal. In raw mode the terminal
// does not translate newlines so every newline is preceded by a carriage
// return.
func (rt *Terminal) Print(s string, a ...any) {
	_, _ = rt.tty.Write(Translate(fmt.Sprintf(s, a...)))
}

// Translate newlines for output in raw mode.
func Translate(s string) []byte {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' && (i == 0 || s[i-1] != '\r') {
			b = append(b, '\r')
		}
		b = append(b, s[i])
	}
	return b
}

// Close restores the terminal to the mode it was in when Open() was called.
func (rt *Terminal) Close() error {
	if err := rt.tty.Restore(); err != nil {
		rt.tty.Close()
		return fmt.Errorf("rawterm: %w", err)
	}
	if err := rt.tty.Close(); err != nil {
		return fmt.Errorf("rawterm: %w", err)
	}
	return nil
}
