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

// Package ale implements the emulation.Emulator interface by running the
// Arcade Learning Environment as a child process and communicating with it
// over its FIFO protocol.
//
// The ALE executable is launched with the -game_controller fifo option. After
// an initial banner, the child writes the screen dimensions as WIDTH-HEIGHT,
// to which we reply with the information we want in each frame. Thereafter the
// child writes one line per frame:
//
//	<screen>:<terminal>,<reward>:
//
// The screen is a string of hexadecimal pairs, one pair for each colour byte
// produced by the TIA. If run-length encoding is enabled then each pair is
// followed by another pair giving the run length.
//
// Every line we write is an action for player A followed by an action for
// player B. Player B is always given the NOOP action. The special action value
// 40 resets the game. A session is ended by closing the child's stdin, after
// which it will write DIE.
package ale
