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

package environment_test

import (
	"errors"
	"image"

	"github.com/jetsetilly/gym2600/emulation"
	"github.com/jetsetilly/gym2600/gui"
)

// pixel returns the value of the native screen pixel at (x, y) after the
// number of steps
func pixel(x int, y int, step int) uint8 {
	return uint8(x*3 + y*7 + step)
}

type fakeEmulator struct {
	width  int
	height int

	// the episode ends after this many actions. zero means never
	episodeLength int

	openErr error

	// the most recently opened session
	session *fakeSession
	opts    emulation.Options
}

func (emu *fakeEmulator) Open(opts emulation.Options) (emulation.Session, error) {
	if emu.openErr != nil {
		return nil, emu.openErr
	}
	emu.opts = opts
	emu.session = &fakeSession{emu: emu}
	return emu.session, nil
}

type fakeSession struct {
	emu *fakeEmulator

	step    int
	actions []emulation.Action
	resets  int
	closed  int
}

func (s *fakeSession) LegalActions() []emulation.Action {
	return emulation.PlayerActions()
}

func (s *fakeSession) ScreenDims() (int, int) {
	return s.emu.width, s.emu.height
}

func (s *fakeSession) Grayscale(buf []uint8) error {
	if len(buf) != s.emu.width*s.emu.height {
		return errors.New("wrong buffer size")
	}
	for y := 0; y < s.emu.height; y++ {
		for x := 0; x < s.emu.width; x++ {
			buf[y*s.emu.width+x] = pixel(x, y, s.step)
		}
	}
	return nil
}

// the reward is the action value multiplied by the frame skip
func (s *fakeSession) Act(a emulation.Action) (int, error) {
	if !a.IsPlayerAction() {
		return 0, emulation.UnknownAction
	}
	s.step++
	s.actions = append(s.actions, a)
	return int(a) * s.emu.opts.FrameSkip, nil
}

func (s *fakeSession) GameOver() bool {
	return s.emu.episodeLength > 0 && s.step >= s.emu.episodeLength
}

func (s *fakeSession) Reset() error {
	s.step = 0
	s.resets++
	return nil
}

func (s *fakeSession) Close() error {
	s.closed++
	return nil
}

type fakeRenderer struct {
	title  string
	width  int
	height int

	createErr error

	// events to return from the next call to PollEvents()
	events []gui.Event

	presented []*image.RGBA
	destroyed int
}

func (r *fakeRenderer) CreateWindow(title string, width int, height int) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.title = title
	r.width = width
	r.height = height
	return nil
}

func (r *fakeRenderer) Present(img *image.RGBA) error {
	c := image.NewRGBA(img.Bounds())
	copy(c.Pix, img.Pix)
	r.presented = append(r.presented, c)
	return nil
}

func (r *fakeRenderer) PollEvents() []gui.Event {
	ev := r.events
	r.events = nil
	return ev
}

func (r *fakeRenderer) Destroy() error {
	r.destroyed++
	return nil
}
