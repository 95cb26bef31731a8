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

// Package logger is the central log for the application. Entries are made
// with a tag (usually the name of the package making the entry) and a detail.
//
// Repeated entries are collapsed into a single entry with a repeat count. The
// log has a maximum number of entries, after which the oldest entries are
// dropped.
//
// The detail argument to Log() can be a string, an error or a fmt.Stringer.
// Any other type is formatted with the %v verb.
//
// Entries can be echoed to an io.Writer as they are made with SetEcho().
// Without an echo the log is silent, which is what we want during long
// training runs.
package logger
