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

// Package environment adapts an emulation session into the interface expected
// by a reinforcement learning loop. The loop observes the screen, chooses an
// action by index, receives a reward and checks whether the episode has
// ended.
//
// Observations are produced by cropping the native screen, resampling the
// cropped area to the target dimensions with nearest-neighbour sampling, and
// storing the result in (width, height) order. The default crop is the square
// at the bottom of the screen, the width of the screen, raised from the bottom
// edge by the padding value.
//
// The environment is caller driven. There is no internal goroutine and none
// of the functions are safe for concurrent use.
//
// Visualisation is optional. A gui.Renderer is passed to InitVisualization()
// and is owned by the environment from then on, being destroyed by Close().
// RefreshVisualization() returns the WindowClosed error if the user has closed
// the window. It is up to the caller to decide what to do in that case.
package environment
