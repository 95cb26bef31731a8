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

package cartridgeloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileExtensions is the list of file extensions that are recognised as ROM
// images.
var FileExtensions = []string{".bin", ".a26", ".rom"}

// Maximum ROM size. the largest 2600 cartridges are far smaller than this
const maxROMSize = 8 * 1024 * 1024

// Sentinel errors.
var (
	NoROMFile         = errors.New("no ROM file found in archive")
	UnsupportedFormat = errors.New("unsupported file format")
	FileTooLarge      = errors.New("file exceeds maximum size limit")
	NotLoaded         = errors.New("ROM has not been loaded")
)

// Loader is used to specify the ROM to load.
type Loader struct {
	// filename or URL of the ROM
	Filename string

	// base name of the ROM image. for archives this is the name of the file
	// inside the archive. only valid after a successful Load()
	Name string

	// sha1 hash of the ROM image (not of the archive). only valid after a
	// successful Load()
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns the name of the ROM without path or extension. Before
// Load() the name is taken from the Filename field.
func (cl Loader) ShortName() string {
	n := cl.Name
	if n == "" {
		n = path.Base(cl.Filename)
	}
	return strings.TrimSuffix(n, path.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the ROM data. Supported schemes are HTTP(S) and local files. Calling
// Load() on an already loaded Loader does nothing.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"
	u, err := url.Parse(cl.Filename)
	if err == nil && u.Scheme != "" {
		scheme = strings.ToLower(u.Scheme)
	}

	// the name used to identify the format of the data. for URLs the query
	// and fragment are not part of the name
	name := path.Base(cl.Filename)

	var raw []byte

	switch scheme {
	case "http", "https":
		name = path.Base(u.Path)
		raw, err = fetch(cl.Filename)
	case "file":
		raw, err = readFile(strings.TrimPrefix(cl.Filename, "file://"))
	default:
		// a windows drive letter parses as a scheme
		raw, err = readFile(cl.Filename)
	}
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}

	data, name, err := unpack(raw, name)
	if err != nil {
		return fmt.Errorf("cartridgeloader: %s: %w", cl.Filename, err)
	}

	cl.Data = data
	cl.Name = name
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	return nil
}

// Materialise writes the loaded ROM image to the directory, using the Name of
// the ROM, and returns the path to the new file.
func (cl Loader) Materialise(dir string) (string, error) {
	if !cl.HasLoaded() {
		return "", fmt.Errorf("cartridgeloader: %w", NotLoaded)
	}
	p := filepath.Join(dir, filepath.Base(cl.Name))
	if err := os.WriteFile(p, cl.Data, 0o644); err != nil {
		return "", fmt.Errorf("cartridgeloader: %w", err)
	}
	return p, nil
}

func readFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return limitedRead(f)
}

func fetch(u string) ([]byte, error) {
	resp, err := http.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", u, resp.Status)
	}
	return limitedRead(resp.Body)
}

// limitedRead reads from r up to maxROMSize bytes, returning an error if
// exceeded
func limitedRead(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxROMSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxROMSize {
		return nil, FileTooLarge
	}
	return data, nil
}
