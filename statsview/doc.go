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

// Package statsview offers runtime statistics of the running program over a
// local HTTP server. The server is only available when the program is built
// with the statsview build tag. Without the tag Launch() does nothing and
// Available() returns false.
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12626/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12626/debug/pprof/
//
// The statistics are useful for watching the memory use of long running
// sessions, where the episode count can be in the many thousands.
package statsview
