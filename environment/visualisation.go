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

	"github.com/jetsetilly/gym2600/gui"
	"golang.org/x/image/draw"
)

// InitVisualization creates the visualisation window with the renderer. The
// renderer is owned by the Environment from this point and will be destroyed
// by Close().
//
// The function can only be called once.
func (env *Environment) InitVisualization(renderer gui.Renderer) error {
	if env.closed {
		return fmt.Errorf("environment: %w", Closed)
	}
	if renderer == nil {
		return fmt.Errorf("environment: %w: no renderer", VisualisationError)
	}
	if env.renderer != nil {
		return fmt.Errorf("environment: %w: visualisation already initialised", VisualisationError)
	}

	err := renderer.CreateWindow(env.settings.WindowTitle(), env.displayWidth, env.displayHeight)
	if err != nil {
		return fmt.Errorf("environment: %w: %w", VisualisationError, err)
	}

	env.renderer = renderer
	env.display = image.NewRGBA(image.Rect(0, 0, env.displayWidth, env.displayHeight))

	return nil
}

// RefreshVisualization handles any pending window events and then presents
// the most recent observation, or the native screen if the VizCropped setting
// is false, at twice its size.
//
// If the window has been closed then WindowClosed is returned and nothing is
// presented.
func (env *Environment) RefreshVisualization() error {
	if env.closed {
		return fmt.Errorf("environment: %w", Closed)
	}
	if env.renderer == nil {
		return fmt.Errorf("environment: %w: visualisation not initialised", VisualisationError)
	}

	for _, ev := range env.renderer.PollEvents() {
		if ev.ID == gui.EventWindowClose {
			return fmt.Errorf("environment: %w", WindowClosed)
		}
	}

	var src *image.Gray
	if env.settings.VizCropped {
		src = env.scaled
	} else {
		src = env.raw
	}

	// nearest neighbour scaling by exactly two is pixel doubling
	draw.NearestNeighbor.Scale(env.display, env.display.Bounds(), src, src.Bounds(), draw.Src, nil)

	err := env.renderer.Present(env.display)
	if err != nil {
		return fmt.Errorf("environment: %w", err)
	}

	return nil
}
