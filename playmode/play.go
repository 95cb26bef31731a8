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
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gym2600/environment"
	"github.com/jetsetilly/gym2600/episodes"
	"github.com/jetsetilly/gym2600/logger"
	"github.com/jetsetilly/gym2600/performance/limiter"
)

// Recorder is implemented by episodes.Store.
type Recorder interface {
	Record(e episodes.Entry) (int64, error)
}

// Options for Run().
type Options struct {
	// number of episodes to play. zero means play until the context is
	// cancelled or the window is closed
	Episodes int

	// maximum number of steps in an episode. an episode that reaches the
	// maximum is treated as though it has ended. zero means no maximum
	MaxSteps int

	// refresh the visualisation after every observation. the environment
	// must have been initialised with InitVisualization()
	Visualise bool

	// maximum number of steps per second. zero means no limit. useful when
	// visualising so that the game can be followed by a person
	StepsPerSecond int

	// optional episode log
	Recorder Recorder
	RunID    string
}

// Run plays episodes with the policy. It returns the outcome of every
// completed episode.
//
// Closing the visualisation window or cancelling the context ends Run()
// without error. The episode in progress at that time is discarded.
func Run(ctx context.Context, output io.Writer, env *environment.Environment, policy Policy, opts Options) ([]episodes.Entry, error) {
	var entries []episodes.Entry

	rom := env.Settings().ROM

	var lim *limiter.Limiter
	if opts.StepsPerSecond > 0 {
		var err error
		lim, err = limiter.NewLimiter(opts.StepsPerSecond)
		if err != nil {
			return nil, fmt.Errorf("playmode: %w", err)
		}
	}

	for ep := 1; opts.Episodes == 0 || ep <= opts.Episodes; ep++ {
		entry := episodes.Entry{
			RunID:   opts.RunID,
			ROM:     rom,
			Episode: ep,
		}

		start := time.Now()

		for !env.EpisodeOver() && (opts.MaxSteps == 0 || entry.Steps < opts.MaxSteps) {
			select {
			case <-ctx.Done():
				logger.Logf(logger.Allow, "playmode", "interrupted during episode %d", ep)
				return entries, nil
			default:
			}

			if lim != nil {
				lim.Wait()
			}

			obs, err := env.Observe()
			if err != nil {
				return entries, fmt.Errorf("playmode: %w", err)
			}

			if opts.Visualise {
				err = env.RefreshVisualization()
				if errors.Is(err, environment.WindowClosed) {
					logger.Logf(logger.Allow, "playmode", "window closed during episode %d", ep)
					return entries, nil
				}
				if err != nil {
					return entries, fmt.Errorf("playmode: %w", err)
				}
			}

			err = env.Act(policy.Choose(obs, env.ActionCount()))
			if err != nil {
				return entries, fmt.Errorf("playmode: %w", err)
			}

			entry.Return += env.Reward()
			entry.Steps++
		}

		entry.Duration = time.Since(start)
		entry.CreatedAt = time.Now()

		if opts.Recorder != nil {
			id, err := opts.Recorder.Record(entry)
			if err != nil {
				return entries, fmt.Errorf("playmode: %w", err)
			}
			entry.ID = id
		}

		entries = append(entries, entry)
		fmt.Fprintln(output, entry.String())

		err := env.ResetEpisode()
		if err != nil {
			return entries, fmt.Errorf("playmode: %w", err)
		}
	}

	return entries, nil
}
