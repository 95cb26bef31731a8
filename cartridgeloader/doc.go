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

// Package cartridgeloader resolves a ROM identifier to the ROM data.
//
// The identifier can be a path to a local file or an HTTP(S) URL. In both
// cases the data may be a raw ROM image or a compressed archive (ZIP, 7z, RAR,
// gzip or tar.gz) containing a ROM image. Archives are detected by their magic
// bytes rather than their file extension where possible. The first file in an
// archive with a recognised ROM extension is used.
//
// The Arcade Learning Environment identifies games by ROM file name, which
// is why the Name field preserves the name of the file found in the archive
// and why Materialise() writes the data with that name.
package cartridgeloader
