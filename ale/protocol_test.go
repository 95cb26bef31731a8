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
	"errors"
	"testing"

	"github.com/jetsetilly/gym2600/test"
)

func TestParseDims(t *testing.T) {
	w, h, ok := parseDims("160-210\n")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, 160)
	test.ExpectEquality(t, h, 210)

	for _, l := range []string{"", "A.L.E: Arcade Learning Environment", "160x210", "-210", "160-", "1-2-3"} {
		_, _, ok = parseDims(l)
		test.ExpectFailure(t, ok, l)
	}
}

func TestParseFrameRaw(t *testing.T) {
	screen := make([]uint8, 4)

	fr, err := parseFrame("00020e80:0,1:\n", false, screen)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, fr.terminal)
	test.ExpectEquality(t, fr.reward, 1)
	test.ExpectEquality(t, screen[0], 0x00)
	test.ExpectEquality(t, screen[1], 0x02)
	test.ExpectEquality(t, screen[2], 0x0e)
	test.ExpectEquality(t, screen[3], 0x80)

	fr, err = parseFrame("ffffffff:1,-10:", false, screen)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fr.terminal)
	test.ExpectEquality(t, fr.reward, -10)
	test.ExpectEquality(t, screen[3], 0xff)
}

func TestParseFrameWithRAM(t *testing.T) {
	screen := make([]uint8, 2)

	// a RAM field preceding the screen is ignored
	fr, err := parseFrame("0102030405:0e0e:0,7:", false, screen)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fr.reward, 7)
	test.ExpectEquality(t, screen[0], 0x0e)
	test.ExpectEquality(t, screen[1], 0x0e)
}

func TestParseFrameRLE(t *testing.T) {
	screen := make([]uint8, 6)

	// two pixels of 0x0e then four of 0x42
	_, err := parseFrame("0e024204:0,0:", true, screen)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, screen[0], 0x0e)
	test.ExpectEquality(t, screen[1], 0x0e)
	for i := 2; i < 6; i++ {
		test.ExpectEquality(t, screen[i], 0x42, i)
	}

	// too few pixels
	_, err = parseFrame("0e02:0,0:", true, screen)
	test.ExpectSuccess(t, errors.Is(err, ProtocolError))

	// too many pixels
	_, err = parseFrame("0e0442ff:0,0:", true, screen)
	test.ExpectSuccess(t, errors.Is(err, ProtocolError))

	// incomplete run
	_, err = parseFrame("0e024:0,0:", true, screen)
	test.ExpectSuccess(t, errors.Is(err, ProtocolError))
}

func TestParseFrameErrors(t *testing.T) {
	screen := make([]uint8, 2)

	_, err := parseFrame("DIE\n", false, screen)
	test.ExpectSuccess(t, errors.Is(err, SessionEnded))

	for _, l := range []string{
		"",
		"0e0e",
		"0,0:",
		"0e0e:x,1:",
		"0e0e:0,y:",
		"0e:0,0:",
		"0e0e0e:0,0:",
		"zz0e:0,0:",
	} {
		_, err = parseFrame(l, false, screen)
		test.ExpectSuccess(t, errors.Is(err, ProtocolError), l)
	}
}
