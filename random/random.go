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

package random

import (
	"math/rand"
	"time"

	"github.com/jetsetilly/gym2600/environment"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator.
type Random struct {
	seed int64

	// use the seed without the base seed. this is only really useful for
	// testing where numbers must be predictable
	ZeroSeed bool

	// created on first use so that ZeroSeed can be set after NewRandom()
	rng *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed int64) *Random {
	return &Random{
		seed: seed,
	}
}

// NewSeededRandom returns a Random that ignores the base seed. The sequence of
// numbers depends only on the seed and so is the same for every run of the
// program.
func NewSeededRandom(seed int64) *Random {
	return &Random{
		seed:     seed,
		ZeroSeed: true,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	if rnd.rng == nil {
		if rnd.ZeroSeed {
			rnd.rng = rand.New(rand.NewSource(rnd.seed))
		} else {
			rnd.rng = rand.New(rand.NewSource(baseSeed + rnd.seed))
		}
	}
	return rnd.rng
}

// Intn returns a number in the range [0, n). It panics if n <= 0.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Choose returns an action index in the range [0, count). The observation is
// ignored.
func (rnd *Random) Choose(_ *environment.Observation, count int) int {
	return rnd.Intn(count)
}

// String implements the fmt.Stringer interface.
func (rnd *Random) String() string {
	return "RANDOM"
}
