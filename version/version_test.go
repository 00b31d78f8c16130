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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/gorumble/test"
)

func TestNoBuildInfo(t *testing.T) {
	i := fromBuildInfo(nil, "")
	test.ExpectEquality(t, i.Version, "local")
	test.ExpectEquality(t, i.Revision, "no revision information")
	test.ExpectEquality(t, i.Release, false)
	test.ExpectEquality(t, i.String(), "Gorumble local (no revision information)")
}

func TestVCS(t *testing.T) {
	info := &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	i := fromBuildInfo(info, "")
	test.ExpectEquality(t, i.Version, "unreleased")
	test.ExpectEquality(t, i.Revision, "abc123+dirty")
	test.ExpectEquality(t, i.Release, false)

	i = fromBuildInfo(info, "v0.1.0")
	test.ExpectEquality(t, i.Version, "v0.1.0")
	test.ExpectEquality(t, i.Release, true)
	test.ExpectEquality(t, i.String(), "Gorumble v0.1.0")
}
