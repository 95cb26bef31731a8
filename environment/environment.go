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
	"errors"
	"fmt"
	"image"

	"github.com/jetsetilly/gym2600/emulation"
	"github.com/jetsetilly/gym2600/gui"
	"github.com/jetsetilly/gym2600/logger"
	"golang.org/x/image/draw"
)

// Environment is the interface between a learning loop and an emulation.
type Environment struct {
	settings Settings

	session emulation.Session

	// the action set indexed by Act()
	actions []emulation.Action

	nativeWidth  int
	nativeHeight int

	// area of the native screen used for the observation
	crop image.Rectangle

	// the raw frame. the Pix field is the buffer given to the emulation
	raw *image.Gray

	// the resampled crop area in row major order. the observation is the
	// transposition of this image
	scaled *image.Gray
	obs    Observation

	// reward from the most recent call to Act()
	reward int

	renderer      gui.Renderer
	display       *image.RGBA
	displayWidth  int
	displayHeight int

	closed bool
}

// NewEnvironment opens a session with the emulator and prepares the
// observation pipeline.
//
// An InitialisationError is returned if the session cannot be opened or if
// the settings name an action that the emulation does not support. A
// GeometryError is returned if the crop area cannot be taken from the native
// screen.
func NewEnvironment(settings Settings, emulator emulation.Emulator) (*Environment, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	session, err := emulator.Open(emulation.Options{
		ROM:       settings.ROM,
		FrameSkip: settings.FrameSkip,
		Seed:      settings.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("environment: %w: %w", InitialisationError, err)
	}

	env := &Environment{
		settings: settings,
		session:  session,
	}

	err = env.init()
	if err != nil {
		_ = session.Close()
		return nil, err
	}

	logger.Logf(logger.Allow, "environment", "native screen width/height: %d/%d", env.nativeWidth, env.nativeHeight)
	logger.Logf(logger.Allow, "environment", "cropped screen width/height: %d/%d", env.obs.Width, env.obs.Height)
	logger.Logf(logger.Allow, "environment", "crop area: %v", env.crop)
	logger.Logf(logger.Allow, "environment", "%d actions", len(env.actions))

	return env, nil
}

func (env *Environment) init() error {
	var err error

	env.actions, err = selectActions(env.session.LegalActions(), env.settings.Actions)
	if err != nil {
		return err
	}

	env.nativeWidth, env.nativeHeight = env.session.ScreenDims()

	env.crop, err = cropArea(env.settings, env.nativeWidth, env.nativeHeight)
	if err != nil {
		return err
	}

	env.raw = image.NewGray(image.Rect(0, 0, env.nativeWidth, env.nativeHeight))

	w, h := env.settings.ScreenDims[0], env.settings.ScreenDims[1]
	env.scaled = image.NewGray(image.Rect(0, 0, w, h))
	env.obs = newObservation(w, h)

	// the display is twice the size of whatever is being shown
	if env.settings.VizCropped {
		env.displayWidth, env.displayHeight = w*2, h*2
	} else {
		env.displayWidth, env.displayHeight = env.nativeWidth*2, env.nativeHeight*2
	}

	return nil
}

// selectActions returns the actions in legal named by the list of names, in
// the order of the names. if names is empty then all legal actions are
// returned
func selectActions(legal []emulation.Action, names []string) ([]emulation.Action, error) {
	if len(legal) == 0 {
		return nil, fmt.Errorf("environment: %w: emulation has no legal actions", InitialisationError)
	}

	if len(names) == 0 {
		actions := make([]emulation.Action, len(legal))
		copy(actions, legal)
		return actions, nil
	}

	actions := make([]emulation.Action, 0, len(names))
	for _, n := range names {
		a, err := emulation.ActionFromString(n)
		if err != nil {
			return nil, fmt.Errorf("environment: %w: %w", InitialisationError, err)
		}

		var ok bool
		for _, l := range legal {
			if a == l {
				ok = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("environment: %w: %s is not a legal action", InitialisationError, a)
		}

		actions = append(actions, a)
	}

	return actions, nil
}

// Observe returns the current screen, cropped and resampled to the target
// dimensions. The returned Observation is owned by the Environment and will
// be overwritten by the next call to Observe(). Use the Copy() function if the
// observation needs to be retained.
func (env *Environment) Observe() (*Observation, error) {
	if env.closed {
		return nil, fmt.Errorf("environment: %w", Closed)
	}

	err := env.session.Grayscale(env.raw.Pix)
	if err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	draw.NearestNeighbor.Scale(env.scaled, env.scaled.Bounds(), env.raw, env.crop, draw.Src, nil)
	env.obs.fromImage(env.scaled)

	return &env.obs, nil
}

// Act submits the indexed action to the emulation. The emulation advances by
// the number of frames in the FrameSkip setting.
func (env *Environment) Act(index int) error {
	if env.closed {
		return fmt.Errorf("environment: %w", Closed)
	}

	if index < 0 || index >= len(env.actions) {
		return fmt.Errorf("environment: %w: index %d is outside the range 0 to %d", InvalidActionError, index, len(env.actions)-1)
	}

	reward, err := env.session.Act(env.actions[index])
	if err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	env.reward = reward

	return nil
}

// Reward returns the reward accumulated by the most recent call to Act(). It
// is zero if Act() has not been called since the environment was created or
// since the most recent call to ResetEpisode().
func (env *Environment) Reward() int {
	return env.reward
}

// EpisodeOver returns true if the current episode has ended.
func (env *Environment) EpisodeOver() bool {
	return env.session.GameOver()
}

// ResetEpisode begins a new episode. The action set and screen geometry are
// unchanged.
func (env *Environment) ResetEpisode() error {
	if env.closed {
		return fmt.Errorf("environment: %w", Closed)
	}

	err := env.session.Reset()
	if err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	env.reward = 0

	return nil
}

// Close releases the renderer, if there is one, and ends the emulation
// session. Calling Close() more than once has no effect.
func (env *Environment) Close() error {
	if env.closed {
		return nil
	}
	env.closed = true

	var errs []error
	if env.renderer != nil {
		errs = append(errs, env.renderer.Destroy())
		env.renderer = nil
	}
	errs = append(errs, env.session.Close())

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}

// ActionCount returns the number of actions that can be indexed by Act().
func (env *Environment) ActionCount() int {
	return len(env.actions)
}

// Actions returns a copy of the action set indexed by Act().
func (env *Environment) Actions() []emulation.Action {
	a := make([]emulation.Action, len(env.actions))
	copy(a, env.actions)
	return a
}

// NativeDims returns the width and height of the emulation's screen.
func (env *Environment) NativeDims() (int, int) {
	return env.nativeWidth, env.nativeHeight
}

// TargetDims returns the width and height of the observation.
func (env *Environment) TargetDims() (int, int) {
	return env.obs.Width, env.obs.Height
}

// DisplayDims returns the width and height of the visualisation window.
func (env *Environment) DisplayDims() (int, int) {
	return env.displayWidth, env.displayHeight
}

// CropRect returns the area of the native screen used for the observation.
func (env *Environment) CropRect() image.Rectangle {
	return env.crop
}

// Frame returns the native screen as of the most recent call to Observe().
// The image is owned by the Environment.
func (env *Environment) Frame() *image.Gray {
	return env.raw
}

// Settings returns the settings used to create the environment.
func (env *Environment) Settings() Settings {
	return env.settings
}
