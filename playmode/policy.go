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

package playmode

import (
	"fmt"

	"github.com/jetsetilly/gym2600/environment"
)

// Policy chooses the next action given the most recent observation.
type Policy interface {
	// Choose returns an index in the range [0, count)
	Choose(obs *environment.Observation, count int) int
}

// FixedPolicy always chooses the same action index. If the index is out of
// range the first action is chosen.
type FixedPolicy int

// Choose implements the Policy interface.
func (p FixedPolicy) Choose(_ *environment.Observation, count int) int {
	if int(p) < 0 || int(p) >= count {
		return 0
	}
	return int(p)
}

func (p FixedPolicy) String() string {
	return fmt.Sprintf("FIXED(%d)", int(p))
}
