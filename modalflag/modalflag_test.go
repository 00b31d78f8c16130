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

package modalflag_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gorumble/modalflag"
	"github.com/jetsetilly/gorumble/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Parsed(), true)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "1")
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nope"})
	md.AddSubModes("A", "B")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "test", "-duration", "0x100", "-wait", "2s", "extra"})
	log := md.AddBool("log", false, "echo log")
	md.AddSubModes("list", "test")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *log, true)
	test.ExpectEquality(t, md.Mode(), "TEST")

	md.NewMode()
	duration := md.AddUint("duration", 0, "duration")
	wait := md.AddDuration("wait", 0, "wait")

	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *duration, uint(256))
	test.ExpectEquality(t, *wait, 2*time.Second)
	test.ExpectEquality(t, md.Path(), "TEST")
	test.ExpectEquality(t, md.GetArg(0), "extra")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"file.yaml"})
	md.AddSubModes("LIST", "SEQUENCE")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "LIST")

	// the argument that wasn't a mode remains
	test.ExpectEquality(t, md.GetArg(0), "file.yaml")

	md.NewArgs([]string{})
	md.AddSubModes("LIST", "SEQUENCE")
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "LIST")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "b", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpSubMode(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"test", "-help"})
	md.AddSubModes("LIST", "TEST")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	md.NewMode()
	md.AdditionalHelp("extra help")
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available for TEST\n")

	tw.Clear()
	md.NewArgs([]string{"test", "-help"})
	md.AddSubModes("LIST", "TEST")
	_, err = md.Parse()
	test.DemandSuccess(t, err)

	md.NewMode()
	md.AddUint("low", 0, "low frequency")
	md.AdditionalHelp("extra help")
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage for TEST mode:\n" +
		"  -low uint\n" +
		"    	low frequency\n" +
		"\n" +
		"extra help\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}
