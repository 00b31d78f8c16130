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

package haptic_test

import (
	"testing"

	"github.com/jetsetilly/gorumble/rumble/haptic"
	"github.com/jetsetilly/gorumble/test"
)

func TestStopped(t *testing.T) {
	test.ExpectEquality(t, haptic.Stopped(0, 0, 0), true)
	test.ExpectEquality(t, haptic.Stopped(1, 0, 0), false)
	test.ExpectEquality(t, haptic.Stopped(0, 1, 0), false)
	test.ExpectEquality(t, haptic.Stopped(0, 0, 1), false)
}

func TestNone(t *testing.T) {
	var plt haptic.Platform = haptic.None{}
	test.ExpectSuccess(t, plt.Init())
	test.ExpectEquality(t, plt.NumDevices(), 0)
	_, err := plt.Open(0)
	test.ExpectFailure(t, err)
	plt.Quit()
}
