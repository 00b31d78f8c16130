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
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/gorumble/environment"
	"github.com/jetsetilly/gorumble/memorymap"
	"github.com/jetsetilly/gorumble/paths"
	"github.com/jetsetilly/gorumble/preferences"
	"github.com/jetsetilly/gorumble/rumble"
	"github.com/jetsetilly/gorumble/rumble/haptic"
	"github.com/jetsetilly/gorumble/rumble/haptic/evdevhaptic"
	"github.com/jetsetilly/gorumble/rumble/haptic/profile"
	"github.com/jetsetilly/gorumble/rumble/haptic/sdlhaptic"
	"github.com/jetsetilly/gorumble/rumble/haptic/wavhaptic"
	"github.com/jetsetilly/gorumble/sequence"
)

// newPlatform returns the haptic platform named by the driver preference,
// decorated with the device profiles.
func newPlatform(env *environment.Environment) (haptic.Platform, error) {
	var plt haptic.Platform

	switch strings.ToLower(env.Prefs.Driver.String()) {
	case preferences.DriverSDL:
		plt = sdlhaptic.NewPlatform()
	case preferences.DriverEvdev:
		plt = evdevhaptic.NewPlatform()
	case preferences.DriverWAV:
		plt = wavhaptic.NewPlatform(env, env.Prefs.WavFile.String())
	case preferences.DriverNone:
		plt = haptic.None{}
	default:
		return nil, fmt.Errorf("unknown rumble driver (%s)", env.Prefs.Driver.String())
	}

	fn := env.Prefs.Profiles.String()
	if fn == "" {
		return profile.Wrap(plt, profile.Profiles{}, env.Prefs.Gain.Get().(float64)), nil
	}

	if !filepath.IsAbs(fn) {
		var err error
		fn, err = paths.ResourcePath("", fn)
		if err != nil {
			return nil, err
		}
	}

	profiles, err := profile.Load(fn)
	if err != nil {
		return nil, err
	}

	return profile.Wrap(plt, profiles, env.Prefs.Gain.Get().(float64)), nil
}

// session is a rumble controller attached to a memory map
type session struct {
	mem  *memorymap.Map
	ctrl *rumble.Controller
}

func newSession(env *environment.Environment) (*session, error) {
	plt, err := newPlatform(env)
	if err != nil {
		return nil, err
	}
	return newSessionWithPlatform(env, plt)
}

func newSessionWithPlatform(env *environment.Environment, plt haptic.Platform) (*session, error) {
	s := &session{
		mem:  memorymap.NewMap(),
		ctrl: rumble.NewController(env, plt, env.Prefs.RumbleOrigin()),
	}

	if err := s.mem.Add("rumble", s.ctrl.Origin(), s.ctrl.Memtop(), s.ctrl); err != nil {
		s.ctrl.Deinit()
		return nil, err
	}

	return s, nil
}

func (s *session) String() string {
	return s.ctrl.String()
}

// commit the command by writing the register image through the memory map
func (s *session) commit(cmd rumble.Command) {
	sequence.Commit(s.mem, s.ctrl.Origin(), cmd)
}

// wait for the duration or until the context is cancelled
func (s *session) wait(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (s *session) end() {
	s.ctrl.Deinit()
}
