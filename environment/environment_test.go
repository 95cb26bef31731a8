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
	"testing"

	"github.com/jetsetilly/gym2600/emulation"
	"github.com/jetsetilly/gym2600/environment"
	"github.com/jetsetilly/gym2600/test"
)

func settings(rom string) environment.Settings {
	s := environment.DefaultSettings()
	s.ROM = rom
	return s
}

// nearest returns the source coordinate sampled for destination coordinate d
// when scaling from sw to dw
func nearest(d int, sw int, dw int) int {
	return (2*d + 1) * sw / (2 * dw)
}

func TestNewEnvironment(t *testing.T) {
	emu := &fakeEmulator{width: 160, height: 210}
	env, err := environment.NewEnvironment(settings("pong.bin"), emu)
	test.DemandSuccess(t, err)
	defer env.Close()

	test.ExpectEquality(t, emu.opts.ROM, "pong.bin")
	test.ExpectEquality(t, emu.opts.FrameSkip, 4)
	test.ExpectEquality(t, emu.opts.Seed, 0)

	test.ExpectEquality(t, env.ActionCount(), 18)
	test.ExpectEquality(t, len(env.Actions()), 18)

	w, h := env.NativeDims()
	test.ExpectEquality(t, w, 160)
	test.ExpectEquality(t, h, 210)

	w, h = env.TargetDims()
	test.ExpectEquality(t, w, 84)
	test.ExpectEquality(t, h, 84)

	w, h = env.DisplayDims()
	test.ExpectEquality(t, w, 168)
	test.ExpectEquality(t, h, 168)

	test.ExpectEquality(t, env.CropRect(), image.Rect(0, 50, 160, 210))
	test.ExpectEquality(t, env.Reward(), 0)
	test.ExpectFailure(t, env.EpisodeOver())
}

func TestObserve(t *testing.T) {
	emu := &fakeEmulator{width: 160, height: 210}
	env, err := environment.NewEnvironment(settings("pong.bin"), emu)
	test.DemandSuccess(t, err)
	defer env.Close()

	obs, err := env.Observe()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, obs.Width, 84)
	test.ExpectEquality(t, obs.Height, 84)
	test.ExpectEquality(t, len(obs.Pix), 84*84)

	// crop rows are 50 to 210 for all 160 columns
	for x := 0; x < 84; x++ {
		for y := 0; y < 84; y++ {
			sx := nearest(x, 160, 84)
			sy := 50 + nearest(y, 160, 84)
			if !test.ExpectEquality(t, obs.At(x, y), pixel(sx, sy, 0), x, y) {
				return
			}
		}
	}

	// first and last rows of the crop area are sampled
	test.ExpectEquality(t, obs.At(0, 0), pixel(0, 50, 0))
	test.ExpectEquality(t, obs.At(83, 83), pixel(159, 209, 0))

	// the raw frame is the full native screen
	f := env.Frame()
	test.ExpectEquality(t, f.Bounds(), image.Rect(0, 0, 160, 210))
	test.ExpectEquality(t, f.GrayAt(10, 20).Y, pixel(10, 20, 0))
}

func TestObserveIsIdempotent(t *testing.T) {
	emu := &fakeEmulator{width: 160, height: 210}
	env, err := environment.NewEnvironment(settings("pong.bin"), emu)
	test.DemandSuccess(t, err)
	defer env.Close()

	obs, err := env.Observe()
	test.DemandSuccess(t, err)
	first := obs.Copy()

	obs, err = env.Observe()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(obs.Pix), string(first.Pix))

	// the observation changes after an action. the copy does not
	test.DemandSuccess(t, env.Act(0))
	obs, err = env.Observe()
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, string(obs.Pix), string(first.Pix))
	test.ExpectEquality(t, first.At(0, 0), pixel(0, 50, 0))
	test.ExpectEquality(t, obs.At(0, 0), pixel(0, 50, 1))
}

func TestObservationShape(t *testing.T) {
	for _, dims := range [][2]int{{84, 84}, {160, 160}, {64, 48}, {1, 1}, {200, 210}} {
		s := settings("pong.bin")
		s.ScreenDims = dims

		emu := &fakeEmulator{width: 160, height: 210}
		env, err := environment.NewEnvironment(s, emu)
		test.DemandSuccess(t, err, dims)

		obs, err := env.Observe()
		test.DemandSuccess(t, err, dims)
		test.ExpectEquality(t, obs.Width, dims[0], dims)
		test.ExpectEquality(t, obs.Height, dims[1], dims)
		test.ExpectEquality(t, len(obs.Pix), dims[0]*dims[1], dims)

		img := obs.Image()
		test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, dims[0], dims[1]), dims)
		test.ExpectEquality(t, img.GrayAt(dims[0]-1, 0).Y, obs.At(dims[0]-1, 0), dims)

		test.ExpectSuccess(t, env.Close(), dims)
	}
}

func TestIdentityCrop(t *testing.T) {
	s := settings("pong.bin")
	s.ScreenDims = [2]int{160, 160}

	emu := &fakeEmulator{width: 160, height: 210}
	env, err := environment.NewEnvironment(s, emu)
	test.DemandSuccess(t, err)
	defer env.Close()

	obs, err := env.Observe()
	test.DemandSuccess(t, err)

	// no resampling when the target is the size of the crop area
	for x := 0; x < 160; x++ {
		for y := 0; y < 160; y++ {
			if !test.ExpectEquality(t, obs.At(x, y), pixel(x, 50+y, 0), x, y) {
				return
			}
		}
	}
}

func TestPad(t *testing.T) {
	s := settings("pong.bin")
	s.Pad = 20

	emu := &fakeEmulator{width: 160, height: 210}
	env, err := environment.NewEnvironment(s, emu)
	test.DemandSuccess(t, err)
	defer env.Close()

	test.ExpectEquality(t, env.CropRect(), image.Rect(0, 30, 160, 190))

	obs, err := env.Observe()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, obs.At(0, 0), pixel(0, 30, 0))
	test.ExpectEquality(t, obs.At(83, 83), pixel(159, 189, 0))

	// largest legal pad
	s.Pad = 50
	env2, err := environment.NewEnvironment(s, &fakeEmulator{width: 160, height: 210})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, env2.CropRect(), image.Rect(0, 0, 160, 160))
	test.ExpectSuccess(t, env2.Close())
}

func TestExplicitCrop(t *testing.T) {
	s := settings("pong.bin")
	s.ScreenDims = [2]int{80, 40}
	s.Crop = &environment.Rect{X: 10, Y: 20, Width: 80, Height: 40}

	// pad is ignored with an explicit crop
	s.Pad = 1000

	emu := &fakeEmulator{width: 160, height: 210}
	env, err := environment.NewEnvironment(s, emu)
	test.DemandSuccess(t, err)
	defer env.Close()

	test.ExpectEquality(t, env.CropRect(), image.Rect(10, 20, 90, 60))

	obs, err := env.Observe()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, obs.At(0, 0), pixel(10, 20, 0))
	test.ExpectEquality(t, obs.At(79, 39), pixel(89, 59, 0))
}

func TestGeometryError(t *testing.T) {
	// pad exceeds native height minus native width
	s := settings("pong.bin")
	s.Pad = 51
	emu := &fakeEmulator{width: 160, height: 210}
	_, err := environment.NewEnvironment(s, emu)
	test.ExpectSuccess(t, errors.Is(err, environment.GeometryError))

	// the session is closed again
	test.ExpectEquality(t, emu.session.closed, 1)

	// native screen wider than it is tall
	emu = &fakeEmulator{width: 210, height: 160}
	_, err = environment.NewEnvironment(settings("pong.bin"), emu)
	test.ExpectSuccess(t, errors.Is(err, environment.GeometryError))

	// crop area outside native screen
	s = settings("pong.bin")
	s.Crop = &environment.Rect{X: 100, Y: 0, Width: 61, Height: 10}
	_, err = environment.NewEnvironment(s, &fakeEmulator{width: 160, height: 210})
	test.ExpectSuccess(t, errors.Is(err, environment.GeometryError))

	// problems found before the session is opened
	for _, mod := range []func(*environment.Settings){
		func(s *environment.Settings) { s.Pad = -1 },
		func(s *environment.Settings) { s.ScreenDims = [2]int{0, 84} },
		func(s *environment.Settings) { s.ScreenDims = [2]int{84, -1} },
		func(s *environment.Settings) { s.Crop = &environment.Rect{X: -1, Y: 0, Width: 10, Height: 10} },
		func(s *environment.Settings) { s.Crop = &environment.Rect{X: 0, Y: 0, Width: 0, Height: 10} },
	} {
		s := settings("pong.bin")
		mod(&s)
		emu := &fakeEmulator{width: 160, height: 210}
		_, err = environment.NewEnvironment(s, emu)
		test.ExpectSuccess(t, errors.Is(err, environment.GeometryError))
		test.ExpectSuccess(t, emu.session == nil)
	}
}

func TestInitialisationError(t *testing.T) {
	openErr := errors.New("rom not found")
	_, err := environment.NewEnvironment(settings("missing.bin"), &fakeEmulator{openErr: openErr})
	test.ExpectSuccess(t, errors.Is(err, environment.InitialisationError))
	test.ExpectSuccess(t, errors.Is(err, openErr))

	_, err = environment.NewEnvironment(settings(""), &fakeEmulator{width: 160, height: 210})
	test.ExpectSuccess(t, errors.Is(err, environment.InitialisationError))

	s := settings("pong.bin")
	s.FrameSkip = 0
	_, err = environment.NewEnvironment(s, &fakeEmulator{width: 160, height: 210})
	test.ExpectSuccess(t, errors.Is(err, environment.InitialisationError))

	s = settings("pong.bin")
	s.Actions = []string{"NOOP", "JUMP"}
	emu := &fakeEmulator{width: 160, height: 210}
	_, err = environment.NewEnvironment(s, emu)
	test.ExpectSuccess(t, errors.Is(err, environment.InitialisationError))
	test.ExpectSuccess(t, errors.Is(err, emulation.UnknownAction))
	test.ExpectEquality(t, emu.session.closed, 1)
}

func TestAct(t *testing.T) {
	emu := &fakeEmulator{width: 160, height: 210}
	env, err := environment.NewEnvironment(settings("pong.bin"), emu)
	test.DemandSuccess(t, err)
	defer env.Close()

	for i := 0; i < env.ActionCount(); i++ {
		test.ExpectSuccess(t, env.Act(i), i)
		test.ExpectEquality(t, env.Reward(), i*4, i)
	}
	test.ExpectEquality(t, len(emu.session.actions), 18)
	test.ExpectEquality(t, emu.session.actions[17], emulation.DownLeftFire)

	for _, i := range []int{-1, 18, 100} {
		err = env.Act(i)
		test.ExpectSuccess(t, errors.Is(err, environment.InvalidActionError), i)
	}

	// invalid actions never reach the emulation and leave the reward alone
	test.ExpectEquality(t, len(emu.session.actions), 18)
	test.ExpectEquality(t, env.Reward(), 17*4)
}

func TestActionSubset(t *testing.T) {
	s := settings("breakout.bin")
	s.Actions = []string{"NOOP", "fire", "PLAYER_A_RIGHT", "Left"}

	emu := &fakeEmulator{width: 160, height: 210}
	env, err := environment.NewEnvironment(s, emu)
	test.DemandSuccess(t, err)
	defer env.Close()

	test.ExpectEquality(t, env.ActionCount(), 4)

	test.DemandSuccess(t, env.Act(2))
	test.ExpectEquality(t, emu.session.actions[0], emulation.Right)
	test.DemandSuccess(t, env.Act(3))
	test.ExpectEquality(t, emu.session.actions[1], emulation.Left)

	err = env.Act(4)
	test.ExpectSuccess(t, errors.Is(err, environment.InvalidActionError))
}

func TestResetEpisode(t *testing.T) {
	emu := &fakeEmulator{width: 160, height: 210, episodeLength: 3}
	env, err := environment.NewEnvironment(settings("pong.bin"), emu)
	test.DemandSuccess(t, err)
	defer env.Close()

	for !env.EpisodeOver() {
		test.DemandSuccess(t, env.Act(1))
	}
	test.ExpectEquality(t, len(emu.session.actions), 3)
	test.ExpectEquality(t, env.Reward(), 4)

	test.DemandSuccess(t, env.ResetEpisode())
	test.ExpectFailure(t, env.EpisodeOver())
	test.ExpectEquality(t, env.Reward(), 0)
	test.ExpectEquality(t, emu.session.resets, 1)

	// action set and geometry are unchanged
	test.ExpectEquality(t, env.ActionCount(), 18)
	test.ExpectEquality(t, env.CropRect(), image.Rect(0, 50, 160, 210))

	obs, err := env.Observe()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, obs.At(0, 0), pixel(0, 50, 0))
}

func TestClose(t *testing.T) {
	emu := &fakeEmulator{width: 160, height: 210}
	env, err := environment.NewEnvironment(settings("pong.bin"), emu)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, env.Close())
	test.ExpectSuccess(t, env.Close())
	test.ExpectEquality(t, emu.session.closed, 1)

	_, err = env.Observe()
	test.ExpectSuccess(t, errors.Is(err, environment.Closed))
	test.ExpectSuccess(t, errors.Is(env.Act(0), environment.Closed))
	test.ExpectSuccess(t, errors.Is(env.ResetEpisode(), environment.Closed))
}
