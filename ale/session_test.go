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
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gym2600/emulation"
	"github.com/jetsetilly/gym2600/palette"
	"github.com/jetsetilly/gym2600/test"
)

const (
	fakeWidth  = 4
	fakeHeight = 3
)

func fakeScreen(col uint8) []uint8 {
	s := make([]uint8, fakeWidth*fakeHeight)
	for i := range s {
		s[i] = col + uint8(i*2)
	}
	return s
}

func fakeFrame(screen []uint8, terminal bool, reward int) string {
	t := 0
	if terminal {
		t = 1
	}
	return fmt.Sprintf("%s:%d,%d:\n", hex.EncodeToString(screen), t, reward)
}

// fakeALE plays the part of an ALE process. it replies to each line it
// receives with the next frame in the list. once the list is exhausted it
// replies with DIE and closes the connection. the received channel contains
// every line sent by the session, including the handshake reply
func fakeALE(t *testing.T, rle bool, frames ...string) (*session, chan string, error) {
	t.Helper()

	sessionIn, fakeOut := io.Pipe()
	fakeIn, sessionOut := io.Pipe()

	received := make(chan string, 100)

	go func() {
		defer fakeIn.Close()
		defer fakeOut.Close()

		fmt.Fprint(fakeOut, "A.L.E: Arcade Learning Environment (version 0.6.0)\n")
		fmt.Fprint(fakeOut, "[Powered by Stella]\n")
		fmt.Fprintf(fakeOut, "%d-%d\n", fakeWidth, fakeHeight)

		rd := bufio.NewReader(fakeIn)
		for _, f := range frames {
			line, err := rd.ReadString('\n')
			if err != nil {
				return
			}
			received <- strings.TrimSpace(line)
			fmt.Fprint(fakeOut, f)
		}

		line, err := rd.ReadString('\n')
		if err != nil {
			return
		}
		received <- strings.TrimSpace(line)
		fmt.Fprint(fakeOut, "DIE\n")
	}()

	s, err := newSession(sessionIn, sessionOut, rle)
	if err == nil {
		t.Cleanup(func() { _ = s.Close() })
	}
	return s, received, err
}

func TestHandshake(t *testing.T) {
	screen := fakeScreen(0x10)

	s, received, err := fakeALE(t, false, fakeFrame(screen, false, 0))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, <-received, "1,0,0,1")

	w, h := s.ScreenDims()
	test.ExpectEquality(t, w, fakeWidth)
	test.ExpectEquality(t, h, fakeHeight)
	test.ExpectFailure(t, s.GameOver())
	test.ExpectEquality(t, len(s.LegalActions()), 18)

	buf := make([]uint8, w*h)
	test.DemandSuccess(t, s.Grayscale(buf))
	for i := range buf {
		test.ExpectEquality(t, buf[i], palette.Gray(screen[i]), i)
	}

	test.ExpectFailure(t, s.Grayscale(make([]uint8, w*h-1)))
}

func TestActAndReset(t *testing.T) {
	s, received, err := fakeALE(t, false,
		fakeFrame(fakeScreen(0), false, 0),
		fakeFrame(fakeScreen(2), false, 5),
		fakeFrame(fakeScreen(4), true, -1),
		fakeFrame(fakeScreen(6), false, 0),
	)
	test.DemandSuccess(t, err)
	<-received

	r, err := s.Act(emulation.Fire)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 5)
	test.ExpectEquality(t, <-received, "1,18")
	test.ExpectFailure(t, s.GameOver())

	r, err = s.Act(emulation.Left)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, -1)
	test.ExpectEquality(t, <-received, "4,18")
	test.ExpectSuccess(t, s.GameOver())

	test.ExpectSuccess(t, s.Reset())
	test.ExpectEquality(t, <-received, "40,18")
	test.ExpectFailure(t, s.GameOver())

	buf := make([]uint8, fakeWidth*fakeHeight)
	test.DemandSuccess(t, s.Grayscale(buf))
	test.ExpectEquality(t, buf[0], palette.Gray(6))
}

func TestInvalidAction(t *testing.T) {
	s, _, err := fakeALE(t, false, fakeFrame(fakeScreen(0), false, 0))
	test.DemandSuccess(t, err)

	_, err = s.Act(emulation.Reset)
	test.ExpectSuccess(t, errors.Is(err, emulation.UnknownAction))

	_, err = s.Act(emulation.Action(-1))
	test.ExpectSuccess(t, errors.Is(err, emulation.UnknownAction))
}

func TestSessionEnded(t *testing.T) {
	s, _, err := fakeALE(t, false, fakeFrame(fakeScreen(0), false, 0))
	test.DemandSuccess(t, err)

	_, err = s.Act(emulation.Noop)
	test.ExpectSuccess(t, errors.Is(err, SessionEnded))
	test.ExpectSuccess(t, s.GameOver())

	// further actions fail without communicating with the process
	_, err = s.Act(emulation.Noop)
	test.ExpectSuccess(t, errors.Is(err, SessionEnded))
	test.ExpectSuccess(t, errors.Is(s.Reset(), SessionEnded))

	test.ExpectSuccess(t, s.Close())
	test.ExpectSuccess(t, s.Close())
}

func TestRunLengthSession(t *testing.T) {
	// all twelve pixels are colour 0x0e
	s, _, err := fakeALE(t, true, "0e0c:0,0:\n")
	test.DemandSuccess(t, err)

	buf := make([]uint8, fakeWidth*fakeHeight)
	test.DemandSuccess(t, s.Grayscale(buf))
	for i := range buf {
		test.ExpectEquality(t, buf[i], palette.Gray(0x0e), i)
	}
}

func TestNoDimensions(t *testing.T) {
	sessionIn, fakeOut := io.Pipe()
	go func() {
		fmt.Fprint(fakeOut, "A.L.E: Arcade Learning Environment\n")
		fakeOut.Close()
	}()

	_, err := newSession(sessionIn, io.Discard, false)
	test.ExpectSuccess(t, errors.Is(err, SessionEnded))
}

func TestCommand(t *testing.T) {
	e := Emulator{
		Path: "/opt/ale/ale",
		Args: []string{"-display_screen", "false"},
		RLE:  true,
	}
	cmd := e.command(emulation.Options{FrameSkip: 4, Seed: 123}, "/tmp/pong.bin")

	test.ExpectEquality(t, strings.Join(cmd.Args, " "),
		"/opt/ale/ale -game_controller fifo -frame_skip 4 -random_seed 123 -run_length_encoding true -display_screen false /tmp/pong.bin")

	cmd = Emulator{}.command(emulation.Options{FrameSkip: 1}, "pong.bin")
	test.ExpectEquality(t, cmd.Args[0], DefaultPath)
}

func TestOpenErrors(t *testing.T) {
	_, err := Emulator{}.Open(emulation.Options{ROM: "pong.bin", FrameSkip: 0})
	test.ExpectFailure(t, err)

	_, err = Emulator{}.Open(emulation.Options{ROM: "/this/does/not/exist.bin", FrameSkip: 4})
	test.ExpectFailure(t, err)
}

func TestMalformedFrame(t *testing.T) {
	good := fakeScreen(0x10)

	// the hex data is valid until the final pixel
	raw := hex.EncodeToString(fakeScreen(0x40))
	badRaw := raw[:len(raw)-2] + "zz:0,0:\n"

	s, _, err := fakeALE(t, false, fakeFrame(good, false, 0), badRaw, fakeFrame(fakeScreen(0x60), false, 3))
	test.DemandSuccess(t, err)

	_, err = s.Act(emulation.Noop)
	test.ExpectSuccess(t, errors.Is(err, ProtocolError))

	// the screen is that of the last good frame
	buf := make([]uint8, fakeWidth*fakeHeight)
	test.DemandSuccess(t, s.Grayscale(buf))
	for i := range buf {
		test.ExpectEquality(t, buf[i], palette.Gray(good[i]), i)
	}

	// the session recovers with the next good frame
	r, err := s.Act(emulation.Noop)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 3)
	test.DemandSuccess(t, s.Grayscale(buf))
	test.ExpectEquality(t, buf[0], palette.Gray(0x60))
}

func TestMalformedRunLengthFrame(t *testing.T) {
	// two pixels of colour 0x40 and then a run that overflows the screen
	s, _, err := fakeALE(t, true, "0e0c:0,0:\n", "4002400c:0,0:\n")
	test.DemandSuccess(t, err)

	_, err = s.Act(emulation.Noop)
	test.ExpectSuccess(t, errors.Is(err, ProtocolError))

	buf := make([]uint8, fakeWidth*fakeHeight)
	test.DemandSuccess(t, s.Grayscale(buf))
	for i := range buf {
		test.ExpectEquality(t, buf[i], palette.Gray(0x0e), i)
	}
}
