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
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode/v2"
)

// magic bytes for format detection
var (
	magicZIP    = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZIPEnd = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z     = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicGzip   = []byte{0x1f, 0x8b}
	magicRAR    = []byte{0x52, 0x61, 0x72, 0x21}
)

type format int

const (
	formatUnknown format = iota
	formatRaw
	formatZIP
	format7z
	formatGzip
	formatRAR
)

func (f format) String() string {
	switch f {
	case formatRaw:
		return "raw"
	case formatZIP:
		return "zip"
	case format7z:
		return "7z"
	case formatGzip:
		return "gzip"
	case formatRAR:
		return "rar"
	}
	return "unknown"
}

// detectFormat uses magic bytes first and the file extension second
func detectFormat(data []byte, name string) format {
	switch {
	case bytes.HasPrefix(data, magicZIP) || bytes.HasPrefix(data, magicZIPEnd):
		return formatZIP
	case bytes.HasPrefix(data, magicRAR):
		return formatRAR
	case bytes.HasPrefix(data, magic7z):
		return format7z
	case bytes.HasPrefix(data, magicGzip):
		return formatGzip
	}

	if isROMFile(name) {
		return formatRaw
	}

	// 2600 ROM images have no header so in the absence of an extension we
	// accept any data that is the size of a common cartridge
	switch len(data) {
	case 2048, 4096, 8192, 12288, 16384, 32768:
		return formatRaw
	}

	return formatUnknown
}

func isROMFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// unpack returns the ROM image contained in data, along with the name of the
// ROM image
func unpack(data []byte, name string) ([]byte, string, error) {
	switch detectFormat(data, name) {
	case formatRaw:
		return data, name, nil
	case formatZIP:
		return extractFromZIP(data)
	case format7z:
		return extractFrom7z(data)
	case formatGzip:
		return extractFromGzip(data, name)
	case formatRAR:
		return extractFromRAR(data)
	}
	return nil, "", UnsupportedFormat
}

func extractFromZIP(data []byte) ([]byte, string, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, "", fmt.Errorf("failed to open zip: %w", err)
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isROMFile(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("failed to open %s in zip: %w", f.Name, err)
		}
		defer rc.Close()
		rom, err := limitedRead(rc)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s from zip: %w", f.Name, err)
		}
		return rom, filepath.Base(f.Name), nil
	}

	return nil, "", NoROMFile
}

func extractFrom7z(data []byte) ([]byte, string, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, "", fmt.Errorf("failed to open 7z: %w", err)
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isROMFile(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("failed to open %s in 7z: %w", f.Name, err)
		}
		defer rc.Close()
		rom, err := limitedRead(rc)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s from 7z: %w", f.Name, err)
		}
		return rom, filepath.Base(f.Name), nil
	}

	return nil, "", NoROMFile
}

func extractFromRAR(data []byte) ([]byte, string, error) {
	r, err := rardecode.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to open rar: %w", err)
	}

	for {
		header, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to read rar entry: %w", err)
		}
		if header.IsDir || !isROMFile(header.Name) {
			continue
		}
		rom, err := limitedRead(r)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s from rar: %w", header.Name, err)
		}
		return rom, filepath.Base(header.Name), nil
	}

	return nil, "", NoROMFile
}

// extractFromGzip handles both plain gzip and tar.gz. a plain gzip file is
// assumed to contain a single ROM image named after the archive
func extractFromGzip(data []byte, name string) ([]byte, string, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to open gzip: %w", err)
	}
	defer gr.Close()

	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") {
		return extractFromTar(gr)
	}

	rom, err := limitedRead(gr)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decompress gzip: %w", err)
	}

	if strings.HasSuffix(lower, ".gz") {
		name = name[:len(name)-3]
	}
	return rom, name, nil
}

func extractFromTar(r io.Reader) ([]byte, string, error) {
	tr := tar.NewReader(r)

	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to read tar entry: %w", err)
		}
		if header.Typeflag != tar.TypeReg || !isROMFile(header.Name) {
			continue
		}
		rom, err := limitedRead(tr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s from tar: %w", header.Name, err)
		}
		return rom, filepath.Base(header.Name), nil
	}

	return nil, "", NoROMFile
}
