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

// Package sdl implements the gui.Renderer interface using SDL.
//
// As with all SDL programs, the functions in this package must be called from
// the main thread. Programs using this package should lock the main goroutine
// to the OS thread during initialisation with runtime.LockOSThread().
package sdl

import (
	"fmt"
	"image"

	"github.com/jetsetilly/gym2600/gui"
	"github.com/jetsetilly/gym2600/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// number of bytes per pixel in the texture
const scrDepth = 4

// Window is an SDL window suitable for displaying frames from the environment.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int
	height int
}

// NewWindow is the preferred method of initialisation for the Window type.
// SDL itself is not initialised until CreateWindow() is called.
func NewWindow() *Window {
	return &Window{}
}

// CreateWindow implements the gui.Renderer interface.
func (win *Window) CreateWindow(title string, width int, height int) error {
	if win.window != nil {
		return fmt.Errorf("sdl: window already created")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("sdl: illegal window size %dx%d", width, height)
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	win.window, err = sdl.CreateWindow(title, int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(width), int32(height), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl: %w", err)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		win.Destroy()
		return fmt.Errorf("sdl: %w", err)
	}

	// texture is the same size as the window. any scaling has already been
	// done by the environment
	win.texture, err = win.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), int32(width), int32(height))
	if err != nil {
		win.Destroy()
		return fmt.Errorf("sdl: %w", err)
	}

	win.width = width
	win.height = height

	logger.Logf(logger.Allow, "sdl", "window created %dx%d", width, height)

	return nil
}

// Present implements the gui.Renderer interface.
func (win *Window) Present(img *image.RGBA) error {
	if win.texture == nil {
		return fmt.Errorf("sdl: window has not been created")
	}

	b := img.Bounds()
	if b.Dx() != win.width || b.Dy() != win.height {
		return fmt.Errorf("sdl: image is %dx%d, window is %dx%d", b.Dx(), b.Dy(), win.width, win.height)
	}

	pixels, pitch, err := win.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	// image.RGBA has the same byte order as PIXELFORMAT_ABGR8888 on little
	// endian machines. the stride of the image and the pitch of the texture
	// may differ so copy row by row
	row := win.width * scrDepth
	for y := 0; y < win.height; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		copy(pixels[y*pitch:y*pitch+row], src[:row])
	}
	win.texture.Unlock()

	err = win.renderer.Clear()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	err = win.renderer.Copy(win.texture, nil, nil)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	win.renderer.Present()

	return nil
}

// PollEvents implements the gui.Renderer interface.
func (win *Window) PollEvents() []gui.Event {
	if win.window == nil {
		return nil
	}

	var events []gui.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, gui.Event{ID: gui.EventWindowClose})

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_CLOSE {
				events = append(events, gui.Event{ID: gui.EventWindowClose})
			}

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			events = append(events, gui.Event{
				ID: gui.EventKeyboard,
				Data: gui.EventDataKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: ev.Type == sdl.KEYDOWN,
				}})
		}
	}

	return events
}

// Destroy implements the gui.Renderer interface.
func (win *Window) Destroy() error {
	if win.window == nil {
		return nil
	}

	var err error

	if win.texture != nil {
		err = win.texture.Destroy()
		win.texture = nil
	}
	if win.renderer != nil {
		if e := win.renderer.Destroy(); err == nil {
			err = e
		}
		win.renderer = nil
	}
	if e := win.window.Destroy(); err == nil {
		err = e
	}
	win.window = nil

	sdl.Quit()

	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}
