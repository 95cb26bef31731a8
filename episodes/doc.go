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

// Package episodes records the outcome of every episode played by the
// environment in an SQLite database.
//
// Episodes are grouped into runs. A run is created with NewRun() and is
// identified by a UUID. The outcome of an episode is its return (the sum of
// the rewards received during the episode), the number of steps taken and
// the wall clock time taken.
//
// The database uses the pure Go driver from modernc.org/sqlite and so does not
// require cgo.
package episodes
