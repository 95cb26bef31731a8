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

// Package paths contains functions to prepare paths to resources used by the
// application. Resources are the settings file and the episode database.
//
// If a directory named .gym2600 exists in the current working directory then
// that is used as the resource directory. Otherwise the resource directory is
// gym2600 in the user's configuration directory, as reported by
// os.UserConfigDir().
package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function
const baseResourcePath = ".gym2600"

// ResourcePath returns the resource, prepended with the resource directory.
// The existence of the resource is not checked.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// MakeResourceDir creates the resource directory if it does not already exist.
func MakeResourceDir() error {
	return os.MkdirAll(getBasePath(), 0o755)
}

func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(home, baseResourcePath[1:])
}
