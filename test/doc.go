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

// Package test contains helper functions to remove common boilerplate from
// the tests in the gorumble module.
//
// The Expect*() functions report a failure but allow the test to continue.
// The Demand*() functions stop the test immediately and should be used when
// later parts of the test depend on the value being correct.
//
// The nil value is considered a success. This is because of how errors
// usually work, nil indicating no error.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output from logging and help functions.
package test
