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

package emulation

import (
	"errors"
	"fmt"
	"strings"
)

// Action is an input to the emulation. Values are those used by the Arcade
// Learning Environment.
type Action int

// List of player A actions.
const (
	Noop Action = iota
	Fire
	Up
	Right
	Left
	Down
	UpRight
	UpLeft
	DownRight
	DownLeft
	UpFire
	RightFire
	LeftFire
	DownFire
	UpRightFire
	UpLeftFire
	DownRightFire
	DownLeftFire
	numPlayerActions
)

// Player B actions are offset from the player A actions. Only PlayerBNoop is
// ever submitted.
const PlayerBNoop Action = 18

// Reset instructs the emulation to begin a new episode.
const Reset Action = 40

var actionNames = [...]string{
	"NOOP", "FIRE", "UP", "RIGHT", "LEFT", "DOWN",
	"UPRIGHT", "UPLEFT", "DOWNRIGHT", "DOWNLEFT",
	"UPFIRE", "RIGHTFIRE", "LEFTFIRE", "DOWNFIRE",
	"UPRIGHTFIRE", "UPLEFTFIRE", "DOWNRIGHTFIRE", "DOWNLEFTFIRE",
}

// UnknownAction is returned by ActionFromString() when the name is not
// recognised.
var UnknownAction = errors.New("unknown action")

func (a Action) String() string {
	switch {
	case a >= 0 && a < numPlayerActions:
		return actionNames[a]
	case a == PlayerBNoop:
		return "PLAYER_B_NOOP"
	case a == Reset:
		return "RESET"
	}
	return fmt.Sprintf("ACTION(%d)", int(a))
}

// IsPlayerAction returns true if the action is one of the player A actions.
func (a Action) IsPlayerAction() bool {
	return a >= 0 && a < numPlayerActions
}

// ActionFromString returns the player A action with the name. The name is
// not case sensitive and may be prefixed with "PLAYER_A_".
func ActionFromString(name string) (Action, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "PLAYER_A_")
	for i, s := range actionNames {
		if s == n {
			return Action(i), nil
		}
	}
	return Noop, fmt.Errorf("%w: %s", UnknownAction, name)
}

// PlayerActions returns every player A action in order. A new slice is
// returned on every call.
func PlayerActions() []Action {
	a := make([]Action, numPlayerActions)
	for i := range a {
		a[i] = Action(i)
	}
	return a
}
