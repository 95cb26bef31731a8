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
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Sentinel errors.
var (
	ProtocolError = errors.New("ale protocol error")
	SessionEnded  = errors.New("ale session has ended")
)

// reply to the dimensions line. in order: send screen, do not send RAM,
// frame skip is specified on the command line, send episode information
const handshakeReply = "1,0,0,1\n"

var dimsLine = regexp.MustCompile(`^(\d+)-(\d+)$`)

// parseDims returns the screen dimensions from a line of the form
// WIDTH-HEIGHT. the boolean return is false if the line is not of that form
func parseDims(line string) (int, int, bool) {
	m := dimsLine.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, 0, false
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	h, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}

// frame is the information parsed from a single line of output
type frame struct {
	terminal bool
	reward   int
}

// parseFrame decodes a frame line. the screen data is written to screen,
// which must be the size of the native screen
func parseFrame(line string, rle bool, screen []uint8) (frame, error) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "DIE") {
		return frame{}, SessionEnded
	}

	var fields []string
	for _, f := range strings.Split(line, ":") {
		if f != "" {
			fields = append(fields, f)
		}
	}

	// the episode information is the last field containing a comma. the
	// screen is the field preceding it
	info := -1
	for i := len(fields) - 1; i >= 0; i-- {
		if strings.Contains(fields[i], ",") {
			info = i
			break
		}
	}
	if info < 1 {
		return frame{}, fmt.Errorf("%w: malformed frame", ProtocolError)
	}

	var fr frame

	t, r, _ := strings.Cut(fields[info], ",")
	term, err := strconv.Atoi(t)
	if err != nil {
		return frame{}, fmt.Errorf("%w: terminal flag: %v", ProtocolError, err)
	}
	fr.terminal = term != 0
	fr.reward, err = strconv.Atoi(r)
	if err != nil {
		return frame{}, fmt.Errorf("%w: reward: %v", ProtocolError, err)
	}

	if rle {
		err = decodeRLE(fields[info-1], screen)
	} else {
		err = decodeRaw(fields[info-1], screen)
	}
	if err != nil {
		return frame{}, err
	}

	return fr, nil
}

func decodeRaw(s string, screen []uint8) error {
	if len(s) != len(screen)*2 {
		return fmt.Errorf("%w: screen data is %d characters, expected %d", ProtocolError, len(s), len(screen)*2)
	}
	if _, err := hex.Decode(screen, []byte(s)); err != nil {
		return fmt.Errorf("%w: %v", ProtocolError, err)
	}
	return nil
}

func decodeRLE(s string, screen []uint8) error {
	if len(s)%4 != 0 {
		return fmt.Errorf("%w: run-length data is not a whole number of runs", ProtocolError)
	}

	runs, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ProtocolError, err)
	}

	var idx int
	for i := 0; i < len(runs); i += 2 {
		col := runs[i]
		n := int(runs[i+1])
		if idx+n > len(screen) {
			return fmt.Errorf("%w: run-length data overflows screen", ProtocolError)
		}
		for j := range n {
			screen[idx+j] = col
		}
		idx += n
	}

	if idx != len(screen) {
		return fmt.Errorf("%w: run-length data covers %d pixels, expected %d", ProtocolError, idx, len(screen))
	}

	return nil
}
