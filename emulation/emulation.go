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

// Package emulation defines the capabilities required of an emulator by the
// environment package. Keeping the interfaces here, away from any particular
// emulator, means that the environment can be tested without a native
// emulator and that the emulator can be replaced.
//
// The only emulator currently provided is the Arcade Learning Environment
// running in FIFO mode, in the ale package.
package emulation

// Options are the parameters required to open a new emulation session.
type Options struct {
	// the ROM to load. how the identifier is interpreted depends on the
	// Emulator implementation. for the ale package it is a file path or URL
	ROM string

	// number of emulator frames to advance for every action. rewards are
	// accumulated over the skipped frames
	FrameSkip int

	// seed for the emulator's random number generator
	Seed int
}

// Emulator creates new emulation sessions.
type Emulator interface {
	Open(opts Options) (Session, error)
}

// Session is a running emulation of a single game.
type Session interface {
	// the ordered list of actions that can be submitted with Act()
	LegalActions() []Action

	// the dimensions of the native screen
	ScreenDims() (width int, height int)

	// fill the buffer with the grayscale intensities of the current screen.
	// the buffer must be exactly width*height in length and is written in row
	// major order
	Grayscale(buf []uint8) error

	// advance the emulation by one decision step using the action and return
	// the reward accumulated over that step
	Act(action Action) (int, error)

	// whether the current episode has ended
	GameOver() bool

	// return the game to its initial state
	Reset() error

	// end the session and release any resources
	Close() error
}
