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

package environment

import "errors"

// Sentinel errors.
var (
	// the session could not be created or the settings prevent it
	InitialisationError = errors.New("initialisation error")

	// the action index is outside the range of the action set
	InvalidActionError = errors.New("invalid action")

	// the crop area is not consistent with the native screen or the target
	// dimensions are not usable
	GeometryError = errors.New("geometry error")

	// visualisation functions have been called in the wrong order
	VisualisationError = errors.New("visualisation error")

	// the visualisation window has been closed by the user
	WindowClosed = errors.New("window closed")

	// the environment has been closed
	Closed = errors.New("environment closed")
)
