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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gym2600/environment"
	"github.com/jetsetilly/gym2600/random"
)

// sentinal error returned by the runner when the duration has elapsed
var timedOut = errors.New("performance timed out")

// CalcRate takes the number of steps, the frame skip value and the duration
// (in seconds) and returns the steps-per-second and the frames-per-second.
func CalcRate(numSteps int, frameSkip int, duration float64) (sps float64, fps float64) {
	if duration <= 0 {
		return 0, 0
	}
	sps = float64(numSteps) / duration
	fps = sps * float64(frameSkip)
	return sps, fps
}

// Check the performance of the environment by running a random policy for the
// duration. The result is written to output.
//
// Every step consists of an observation and an action. Episodes that end
// during the check are reset and the reset is included in the measurement.
func Check(output io.Writer, env *environment.Environment, profile Profile, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	if dur <= 0 {
		return fmt.Errorf("performance: duration must be positive")
	}

	rnd := random.NewSeededRandom(int64(env.Settings().Seed))

	var numSteps int
	var numEpisodes int
	var elapsed time.Duration

	runner := func() error {
		timesUp := time.After(dur)
		start := time.Now()
		defer func() {
			elapsed = time.Since(start)
		}()

		for {
			select {
			case <-timesUp:
				return timedOut
			default:
			}

			obs, err := env.Observe()
			if err != nil {
				return err
			}
			err = env.Act(rnd.Choose(obs, env.ActionCount()))
			if err != nil {
				return err
			}
			numSteps++

			if env.EpisodeOver() {
				numEpisodes++
				err = env.ResetEpisode()
				if err != nil {
					return err
				}
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	sps, fps := CalcRate(numSteps, env.Settings().FrameSkip, elapsed.Seconds())
	fmt.Fprintf(output, "%.2f steps/sec, %.2f frames/sec (%d steps, %d episodes in %.2f seconds)\n",
		sps, fps, numSteps, numEpisodes, elapsed.Seconds())

	return nil
}
