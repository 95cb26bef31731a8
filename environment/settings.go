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
	"io/fs"
	"os"

	"github.com/jetsetilly/gym2600/paths"
	"gopkg.in/yaml.v3"
)

// SettingsFile is the name of the settings file in the resource directory.
const SettingsFile = "settings.yaml"

// Rect is a rectangle on the native screen.
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Rectangle returns the Rect as an image.Rectangle.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Settings are the parameters of an Environment. They cannot be changed once
// the Environment has been created.
type Settings struct {
	// number of emulator frames for every action
	FrameSkip int `yaml:"frame_skip"`

	// seed for the emulator's random number generator
	Seed int `yaml:"seed"`

	// the ROM to play. interpreted by the emulation.Emulator
	ROM string `yaml:"rom"`

	// width and height of the observation
	ScreenDims [2]int `yaml:"screen_dims_new"`

	// distance of the default crop area from the bottom of the screen
	Pad int `yaml:"pad"`

	// visualisation shows the observation rather than the native screen
	VizCropped bool `yaml:"viz_cropped"`

	// title of the visualisation window. if empty a title is created from
	// the ROM name
	Title string `yaml:"title,omitempty"`

	// explicit crop area. if nil the default crop area is used and the Pad
	// field is used. if not nil the Pad field is ignored
	Crop *Rect `yaml:"crop,omitempty"`

	// names of the actions to make available, in the order they are to be
	// indexed. if empty the full legal action set of the emulation is used
	Actions []string `yaml:"actions,omitempty"`
}

// DefaultSettings returns the settings used by most Atari learning
// experiments. The ROM field is empty.
func DefaultSettings() Settings {
	return Settings{
		FrameSkip:  4,
		Seed:       0,
		ScreenDims: [2]int{84, 84},
		Pad:        0,
		VizCropped: true,
	}
}

// WindowTitle returns the title for the visualisation window.
func (s Settings) WindowTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return fmt.Sprintf("ALE Simulator: %s", s.ROM)
}

// Validate checks the settings for values that can never be correct. Checks
// that depend on the native screen size happen in NewEnvironment().
func (s Settings) Validate() error {
	if s.ROM == "" {
		return fmt.Errorf("environment: %w: no ROM specified", InitialisationError)
	}
	if s.FrameSkip < 1 {
		return fmt.Errorf("environment: %w: frame skip must be at least 1", InitialisationError)
	}
	if s.Seed < 0 {
		return fmt.Errorf("environment: %w: seed must not be negative", InitialisationError)
	}
	if s.ScreenDims[0] <= 0 || s.ScreenDims[1] <= 0 {
		return fmt.Errorf("environment: %w: screen dimensions must be positive (%dx%d)", GeometryError, s.ScreenDims[0], s.ScreenDims[1])
	}
	if s.Pad < 0 {
		return fmt.Errorf("environment: %w: pad must not be negative", GeometryError)
	}
	if s.Crop != nil {
		if s.Crop.X < 0 || s.Crop.Y < 0 || s.Crop.Width <= 0 || s.Crop.Height <= 0 {
			return fmt.Errorf("environment: %w: illegal crop area %v", GeometryError, s.Crop.Rectangle())
		}
	}
	return nil
}

// ParseSettings decodes YAML data. Keys that are not present in the data keep
// the value from DefaultSettings().
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("environment: settings: %w", err)
	}
	return s, nil
}

// LoadSettings reads settings from the named YAML file. If filename is empty
// then the settings file in the resource directory is used, if it exists,
// otherwise DefaultSettings() is returned.
func LoadSettings(filename string) (Settings, error) {
	if filename == "" {
		filename = paths.ResourcePath(SettingsFile)
		if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return Settings{}, fmt.Errorf("environment: settings: %w", err)
	}

	s, err := ParseSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%w (%s)", err, filename)
	}
	return s, nil
}

// Marshal returns the settings as YAML.
func (s Settings) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("environment: settings: %w", err)
	}
	return data, nil
}
