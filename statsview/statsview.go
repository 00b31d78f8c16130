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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/gorumble/logger"
)

const Address = "localhost:12600"
const url = "/debug/statsview"

const logTag = "statsview"

// Launch a new goroutine running the statsview. The returned function stops
// the server.
func Launch(perm logger.Permission, output io.Writer) func() {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()

	go func() {
		_ = mgr.Start()
		logger.Log(perm, logTag, "server stopped")
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)

	return func() {
		mgr.Stop()
	}
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
