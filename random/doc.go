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

// Package random provides a seeded source of random numbers for choosing
// actions in the environment.
//
// The Random type satisfies the playmode.Policy interface, choosing each
// action uniformly from the action set.
//
// By default the seed is combined with a base seed that changes every time the
// program is run. If the same sequence of actions is required every time then
// set ZeroSeed to true before the first number is requested. This is useful
// for testing purposes.
package random
