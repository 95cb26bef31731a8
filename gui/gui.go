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

// Package gui defines the interface to the visualisation window. The
// environment package presents frames through the Renderer interface, without
// knowledge of the windowing system.
//
// The gui/sdl package provides the SDL implementation.
package gui

import "image"

// Renderer defines the operations required of a visualisation window.
//
// Implementations are not required to be safe for concurrent use. Some
// windowing systems, SDL among them, require that all calls are made from the
// main thread.
type Renderer interface {
	// Create and show a window with a drawable area of the specified size.
	CreateWindow(title string, width int, height int) error

	// Present the image. The image bounds will match the size given to
	// CreateWindow().
	Present(img *image.RGBA) error

	// Return the events that have happened since the previous call.
	PollEvents() []Event

	// Destroy the window and release all resources.
	Destroy() error
}
