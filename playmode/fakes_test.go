// This file is part of Gym2600.
//
// Gym2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gym2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gym2600.  If not, see <https://www.gnu.org/licenses/>.

package playmode_test

import (
	"image"

	"github.com/jetsetilly/gym2600/emulation"
	"github.com/jetsetilly/gym2600/gui"
)

type fakeEmulator struct {
	// the episode ends after this many actions. zero means never
	episodeLength int
	frameSkip     int
}

func (emu *fakeEmulator) Open(opts emulation.Options) (emulation.Session, error) {
	emu.frameSkip = opts.FrameSkip
	return &fakeSession{emu: emu}, nil
}

type fakeSession struct {
	emu  *fakeEmulator
	step int
}

func (s *fakeSession) LegalActions() []emulation.Action { return emulation.PlayerActions() }
func (s *fakeSession) ScreenDims() (int, int)           { return 160, 210 }
func (s *fakeSession) Grayscale(buf []uint8) error      { return nil }
func (s *fakeSession) GameOver() bool                   { return s.emu.episodeLength > 0 && s.step >= s.emu.episodeLength }
func (s *fakeSession) Reset() error                     { s.step = 0; return nil }
func (s *fakeSession) Close() error                     { return nil }

func (s *fakeSession) Act(a emulation.Action) (int, error) {
	s.step++
	return int(a) * s.emu.frameSkip, nil
}

// fakeRenderer reports that the window has been closed once the number of
// presented frames reaches closeAfter
type fakeRenderer struct {
	closeAfter int
	presented  int
}

func (r *fakeRenderer) CreateWindow(string, int, int) error { return nil }
func (r *fakeRenderer) Destroy() error                      { return nil }

func (r *fakeRenderer) Present(*image.RGBA) error {
	r.presented++
	return nil
}

func (r *fakeRenderer) PollEvents() []gui.Event {
	if r.presented >= r.closeAfter {
		return []gui.Event{{ID: gui.EventWindowClose}}
	}
	return nil
}
