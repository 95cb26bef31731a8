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

package ale

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/jetsetilly/gym2600/cartridgeloader"
	"github.com/jetsetilly/gym2600/emulation"
	"github.com/jetsetilly/gym2600/logger"
)

// DefaultPath is the name of the ALE executable used when Emulator.Path is
// empty. it is expected to be found in the PATH.
const DefaultPath = "ale"

// amount of time to wait for the ALE process to end after its stdin has been
// closed, before it is killed
const defaultCloseTimeout = 2 * time.Second

// Emulator launches ALE processes. The zero value is usable.
type Emulator struct {
	// path to the ALE executable
	Path string

	// additional arguments inserted before the ROM path
	Args []string

	// request run-length encoded screens
	RLE bool

	// maximum time allowed for the process to end during Close()
	CloseTimeout time.Duration
}

func (e Emulator) command(opts emulation.Options, rom string) *exec.Cmd {
	p := e.Path
	if p == "" {
		p = DefaultPath
	}

	args := []string{
		"-game_controller", "fifo",
		"-frame_skip", strconv.Itoa(opts.FrameSkip),
		"-random_seed", strconv.Itoa(opts.Seed),
		"-run_length_encoding", strconv.FormatBool(e.RLE),
	}
	args = append(args, e.Args...)
	args = append(args, rom)

	return exec.Command(p, args...)
}

// Open implements the emulation.Emulator interface. The ROM in the options
// is resolved with the cartridgeloader package and copied to a temporary
// directory for the lifetime of the session.
func (e Emulator) Open(opts emulation.Options) (emulation.Session, error) {
	if opts.FrameSkip < 1 {
		return nil, fmt.Errorf("ale: frame skip must be at least 1")
	}

	cl := cartridgeloader.NewLoader(opts.ROM)
	if err := cl.Load(); err != nil {
		return nil, fmt.Errorf("ale: %w", err)
	}

	dir, err := os.MkdirTemp("", "gym2600_")
	if err != nil {
		return nil, fmt.Errorf("ale: %w", err)
	}

	rom, err := cl.Materialise(dir)
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("ale: %w", err)
	}

	cmd := e.command(opts, rom)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("ale: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("ale: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("ale: %w", err)
	}

	if err := cmd.Start(); err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("ale: %w", err)
	}

	logger.Logf(logger.Allow, "ale", "started %s (pid %d)", cmd.Path, cmd.Process.Pid)
	logger.Logf(logger.Allow, "ale", "rom %s (sha1 %s)", cl.Name, cl.Hash)

	go drain(stderr)

	timeout := e.CloseTimeout
	if timeout == 0 {
		timeout = defaultCloseTimeout
	}

	// Wait() is only called once we have finished reading from stdout
	closer := func(abnormal bool) error {
		defer os.RemoveAll(dir)

		_ = stdin.Close()

		done := make(chan error, 1)
		go func() {
			done <- cmd.Wait()
		}()

		select {
		case err := <-done:
			return exitStatus(err, abnormal)
		case <-time.After(timeout):
			logger.Logf(logger.Allow, "ale", "killing process %d", cmd.Process.Pid)
			_ = cmd.Process.Kill()
			<-done
		}
		return nil
	}

	s, err := newSession(stdout, stdin, e.RLE)
	if err != nil {
		return nil, errors.Join(err, closer(true))
	}
	s.closer = closer

	logger.Logf(logger.Allow, "ale", "screen is %dx%d", s.width, s.height)

	return s, nil
}

// an ALE process that quits as a result of stdin being closed may exit with
// a non-zero status. that isn't an error unless the session had already
// failed, in which case the exit status is the best indication of why
func exitStatus(err error, abnormal bool) error {
	if err == nil {
		return nil
	}

	var exit *exec.ExitError
	if errors.As(err, &exit) && !abnormal {
		logger.Logf(logger.Allow, "ale", "process ended: %v", exit)
		return nil
	}

	return fmt.Errorf("ale: process failed: %w", err)
}

// drain forwards the child's stderr to the log
func drain(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			logger.Log(logger.Allow, "ale", line)
		}
	}
}
