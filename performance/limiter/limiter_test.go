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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gym2600/performance/limiter"
	"github.com/jetsetilly/gym2600/test"
)

func TestLimiter(t *testing.T) {
	_, err := limiter.NewLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewLimiter(100)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, lim.Limit(), 100)

	start := time.Now()
	for range 11 {
		lim.Wait()
	}

	// the first wait doesn't block so eleven waits is ten intervals
	test.ExpectSuccess(t, time.Since(start) >= 90*time.Millisecond)

	// trigger is in the future immediately after waiting
	test.ExpectFailure(t, lim.HasWaited())
	time.Sleep(20 * time.Millisecond)
	test.ExpectSuccess(t, lim.HasWaited())
}
