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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jetsetilly/gorumble/environment"
	"github.com/jetsetilly/gorumble/logger"
	"github.com/jetsetilly/gorumble/modalflag"
	"github.com/jetsetilly/gorumble/paths"
	"github.com/jetsetilly/gorumble/preferences"
	"github.com/jetsetilly/gorumble/prefs"
	"github.com/jetsetilly/gorumble/rawterm"
	"github.com/jetsetilly/gorumble/rumble"
	"github.com/jetsetilly/gorumble/sequence"
	"github.com/jetsetilly/gorumble/statsview"
	"github.com/jetsetilly/gorumble/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode handles key
	// presses itself.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function
type mainSync struct {
	state chan stateRequest

	// cancelled on the first interrupt signal. modes that wait should stop
	// waiting and tidy up
	ctx context.Context
}

// the number of log entries to show when an error occurs
const logTail = 10

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sync := &mainSync{
		state: make(chan stateRequest),
		ctx:   ctx,
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	// the first interrupt gives the launched mode a chance to stop the
	// rumble devices. the second interrupt quits immediately
	interrupted := false

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			if interrupted {
				exitVal = 1
				done = true
			}
			interrupted = true
			cancel()

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])

	prefsArg := md.AddString("prefs", "", "preference overrides. eg. \"rumble.driver::wav; rumble.gain::0.5\"")
	log := md.AddBool("log", false, "echo log to stdout")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AddSubModes("LIST", "TEST", "PLAY", "SEQUENCE", "VERSION")
	md.AdditionalHelp(fmt.Sprintf("rumble drivers: %s", strings.Join(preferences.Drivers, ", ")))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if md.Mode() == "VERSION" {
		fmt.Println(version.Version())
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	prefs.PushCommandLineStack(*prefsArg)

	env, err := newEnvironment()
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	// the log flag takes priority over the echo preference
	if *log {
		_ = env.Prefs.Echo.Set(true)
	}

	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(env, "prefs", "unused command line preferences: %s", unused)
	}

	if stats != nil && *stats {
		stop := statsview.Launch(env, os.Stdout)
		defer stop()
	}

	switch md.Mode() {
	case "LIST":
		err = list(md, env)

	case "TEST":
		err = rumbleTest(md, sync, env)

	case "PLAY":
		err = play(md, sync, env)

	case "SEQUENCE":
		err = playSequence(md, sync, env)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		if !*log {
			logger.Tail(os.Stdout, logTail)
		}
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func newEnvironment() (*environment.Environment, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p, err := preferences.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	if err := p.Load(); err != nil {
		return nil, err
	}

	return environment.NewEnvironment(environment.MainEnvironment, p)
}

func list(md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()

	save := md.AddBool("saveprefs", false, "save preferences to disk")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *save {
		if err := env.Prefs.Save(); err != nil {
			return err
		}
	}

	s, err := newSession(env)
	if err != nil {
		return err
	}
	defer s.end()

	fmt.Println(s)
	for i, n := range s.ctrl.Devices() {
		fmt.Printf("%2d: %s\n", i, n)
	}

	return nil
}

// the time to wait after the last command has finished before the devices are
// closed
const grace = 100 * time.Millisecond

func rumbleTest(md *modalflag.Modes, sync *mainSync, env *environment.Environment) error {
	md.NewMode()

	low := md.AddUint("low", 0xffff, "intensity of low frequency motor")
	high := md.AddUint("high", 0xffff, "intensity of high frequency motor")
	duration := md.AddUint("duration", 1000, "duration of rumble in milliseconds")
	wait := md.AddDuration("wait", 0, "time to wait before closing devices. defaults to the duration")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cmd, err := commandFromFlags(*low, *high, *duration)
	if err != nil {
		return err
	}

	if *wait == 0 {
		*wait = cmd.Duration()
	}

	s, err := newSession(env)
	if err != nil {
		return err
	}
	defer s.end()

	fmt.Println(s.mem.Summary())
	s.commit(cmd)
	fmt.Printf("committed: %s\n", cmd)

	s.wait(sync.ctx, *wait+grace)

	return nil
}

func commandFromFlags(low uint, high uint, duration uint) (rumble.Command, error) {
	if low > 0xffff {
		return rumble.Command{}, fmt.Errorf("low frequency intensity out of range (%#x)", low)
	}
	if high > 0xffff {
		return rumble.Command{}, fmt.Errorf("high frequency intensity out of range (%#x)", high)
	}
	if duration > 0xffffffff {
		return rumble.Command{}, fmt.Errorf("duration out of range (%d)", duration)
	}
	return rumble.Command{
		LowFrequency:  uint16(low),
		HighFrequency: uint16(high),
		DurationMS:    uint32(duration),
	}, nil
}

// duration of every preset command in PLAY mode
const presetDuration = 250

// preset returns the command for the number key n. zero is the stop command.
// the strength of the preset increases with n
func preset(n int) rumble.Command {
	if n <= 0 {
		return rumble.Command{}
	}
	n = min(n, 9)
	return rumble.Command{
		LowFrequency:  uint16(n * 0xffff / 9),
		HighFrequency: uint16(n * 0xffff / 18),
		DurationMS:    presetDuration,
	}
}

func play(md *modalflag.Modes, sync *mainSync, env *environment.Environment) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := newSession(env)
	if err != nil {
		return err
	}
	defer s.end()

	// the raw terminal receives ctrl-c as a key press
	sync.state <- stateRequest{req: reqNoIntSig}

	rt, err := rawterm.Open()
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.Print("%s\n", s)
	rt.Print("keys 1 to 9 rumble with increasing strength. 0 stops. q quits\n")

	for {
		k, err := rt.ReadKey()
		if err != nil {
			return err
		}

		switch k {
		case 'q', 'Q', rawterm.KeyInterrupt, rawterm.KeyEndOfFile, rawterm.KeyEsc:
			rt.Print("\n")
			return nil
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			cmd := preset(int(k - '0'))
			s.commit(cmd)
			rt.Print("%c: %s\n", k, cmd)
		}
	}
}

func playSequence(md *modalflag.Modes, sync *mainSync, env *environment.Environment) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("sequence file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	seq, err := sequence.Load(f)
	if err != nil {
		return err
	}

	s, err := newSession(env)
	if err != nil {
		return err
	}
	defer s.end()

	fmt.Printf("playing %d steps (%s)\n", len(seq.Steps), seq.Duration())

	err = seq.Play(sync.ctx, s.mem, s.ctrl.Origin())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
