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

	"github.com/jetsetilly/gym2600/emulation"
	"github.com/jetsetilly/gym2600/palette"
)

// maximum number of lines to read before the dimensions line. the ALE banner
// is only a handful of lines long
const maxBannerLines = 100

type session struct {
	r *bufio.Reader
	w io.Writer

	rle bool

	width  int
	height int

	// most recent screen as TIA colour bytes
	screen []uint8

	// frames are decoded into the scratch buffer and swapped with the screen
	// buffer once decoding has succeeded
	scratch []uint8

	terminal bool
	ended    bool

	// the output of the process ended without a DIE line. the process has
	// probably crashed
	lost bool

	// called once by Close(). the argument is true if the session did not
	// end normally
	closer func(abnormal bool) error
	closed bool
}

// newSession performs the handshake and reads the first frame
func newSession(r io.Reader, w io.Writer, rle bool) (*session, error) {
	s := &session{
		r:   bufio.NewReader(r),
		w:   w,
		rle: rle,
	}

	var ok bool
	for range maxBannerLines {
		line, err := s.r.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("ale: %w: no screen dimensions", SessionEnded)
			}
			return nil, fmt.Errorf("ale: %w", err)
		}
		s.width, s.height, ok = parseDims(line)
		if ok {
			break
		}
	}
	if !ok {
		return nil, fmt.Errorf("ale: %w: no screen dimensions", ProtocolError)
	}
	if s.width <= 0 || s.height <= 0 {
		return nil, fmt.Errorf("ale: %w: screen dimensions %dx%d", ProtocolError, s.width, s.height)
	}

	s.screen = make([]uint8, s.width*s.height)
	s.scratch = make([]uint8, s.width*s.height)

	if _, err := io.WriteString(s.w, handshakeReply); err != nil {
		return nil, fmt.Errorf("ale: %w", err)
	}

	if _, err := s.readFrame(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *session) readFrame() (frame, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.ended = true
			s.lost = true
			return frame{}, fmt.Errorf("ale: %w", SessionEnded)
		}
		return frame{}, fmt.Errorf("ale: %w", err)
	}

	fr, err := parseFrame(line, s.rle, s.scratch)
	if err != nil {
		if errors.Is(err, SessionEnded) {
			s.ended = true
		}
		return frame{}, fmt.Errorf("ale: %w", err)
	}
	s.screen, s.scratch = s.scratch, s.screen
	s.terminal = fr.terminal

	return fr, nil
}

// send actions for both players and read the resulting frame
func (s *session) send(a emulation.Action) (frame, error) {
	if s.ended {
		return frame{}, fmt.Errorf("ale: %w", SessionEnded)
	}
	if _, err := fmt.Fprintf(s.w, "%d,%d\n", a, emulation.PlayerBNoop); err != nil {
		return frame{}, fmt.Errorf("ale: %w", err)
	}
	return s.readFrame()
}

// LegalActions implements the emulation.Session interface.
func (s *session) LegalActions() []emulation.Action {
	return emulation.PlayerActions()
}

// ScreenDims implements the emulation.Session interface.
func (s *session) ScreenDims() (int, int) {
	return s.width, s.height
}

// Grayscale implements the emulation.Session interface.
func (s *session) Grayscale(buf []uint8) error {
	if len(buf) != len(s.screen) {
		return fmt.Errorf("ale: grayscale buffer is %d bytes, expected %d", len(buf), len(s.screen))
	}
	palette.GrayScreen(buf, s.screen)
	return nil
}

// Act implements the emulation.Session interface.
func (s *session) Act(a emulation.Action) (int, error) {
	if !a.IsPlayerAction() {
		return 0, fmt.Errorf("ale: %w: %d", emulation.UnknownAction, a)
	}
	fr, err := s.send(a)
	if err != nil {
		return 0, err
	}
	return fr.reward, nil
}

// GameOver implements the emulation.Session interface.
func (s *session) GameOver() bool {
	return s.terminal || s.ended
}

// Reset implements the emulation.Session interface.
func (s *session) Reset() error {
	_, err := s.send(emulation.Reset)
	return err
}

// Close implements the emulation.Session interface.
func (s *session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.ended = true
	if s.closer != nil {
		return s.closer(s.lost)
	}
	return nil
}
