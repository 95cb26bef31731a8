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

// Package playmode runs a policy in the environment for a number of episodes.
//
// It is the simplest form of the loop that a learning agent would run: observe
// the screen, choose an action, act and collect the reward, and reset the
// environment at the end of every episode. No learning takes place.
//
// The outcome of each episode is written to the output and, if a Recorder is
// supplied, to the episode log.
package playmode
