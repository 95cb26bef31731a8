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

import (
	"fmt"
	"image"
)

// cropArea returns the area of the native screen used for the observation
func cropArea(s Settings, width int, height int) (image.Rectangle, error) {
	if width <= 0 || height <= 0 {
		return image.Rectangle{}, fmt.Errorf("environment: %w: native screen is %dx%d", GeometryError, width, height)
	}

	native := image.Rect(0, 0, width, height)

	if s.Crop != nil {
		r := s.Crop.Rectangle()
		if r.Empty() || !r.In(native) {
			return image.Rectangle{}, fmt.Errorf("environment: %w: crop area %v is outside native screen %v", GeometryError, r, native)
		}
		return r, nil
	}

	// the default area is a square the width of the screen
	top := height - width - s.Pad
	if top < 0 {
		return image.Rectangle{}, fmt.Errorf("environment: %w: pad of %d is too large for native screen %dx%d", GeometryError, s.Pad, width, height)
	}

	return image.Rect(0, top, width, height-s.Pad), nil
}
