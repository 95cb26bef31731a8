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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		env.Act(policy.Choose(obs, n))
//	}
package limiter

import (
	"fmt"
	"time"
)

// Limiter will trigger a fixed number of times per second. Unlike a
// time.Ticker there is no goroutine and nothing needs to be stopped.
type Limiter struct {
	perSecond int
	interval  time.Duration

	// the time of the next trigger
	next time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(perSecond int) (*Limiter, error) {
	lim := &Limiter{}
	err := lim.SetLimit(perSecond)
	if err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(perSecond int) error {
	if perSecond <= 0 {
		return fmt.Errorf("limiter: rate must be positive (%d)", perSecond)
	}
	lim.perSecond = perSecond
	lim.interval = time.Second / time.Duration(perSecond)
	lim.next = time.Time{}
	return nil
}

// Limit returns the current rate.
func (lim *Limiter) Limit() int {
	return lim.perSecond
}

// Wait will block until the next trigger. The first call never blocks.
func (lim *Limiter) Wait() {
	now := time.Now()
	if lim.next.IsZero() {
		lim.next = now.Add(lim.interval)
		return
	}

	if d := lim.next.Sub(now); d > 0 {
		time.Sleep(d)
	}

	// if we've fallen behind by more than one interval then don't try to
	// catch up
	lim.next = lim.next.Add(lim.interval)
	if now.Sub(lim.next) > lim.interval {
		lim.next = now.Add(lim.interval)
	}
}

// HasWaited will return true if the trigger time has already passed and false
// if it is still yet to happen. The trigger is consumed if it has passed.
func (lim *Limiter) HasWaited() bool {
	if lim.next.IsZero() || !time.Now().Before(lim.next) {
		lim.Wait()
		return true
	}
	return false
}
