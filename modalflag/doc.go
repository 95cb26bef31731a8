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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes, each with its own set of flags.
//
// Arguments are given to NewArgs() and then parsed with Parse(). If sub-modes
// have been added with AddSubModes() then the first non-flag argument is
// compared (case insensitively) with the list of sub-modes. If it matches
// then that mode is selected, otherwise the first sub-mode in the list is
// selected as the default.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "INFO")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		display := md.AddBool("display", false, "show visualisation")
//		_, _ = md.Parse()
//		...
//	}
//
// Once a mode has been selected NewMode() prepares for the flags of that mode.
// The Path() function returns every mode selected so far, separated by a
// slash.
//
// Help is requested with the -help or -h flag. The help message lists the
// flags and sub-modes of the current mode, along with any text given to
// AdditionalHelp().
package modalflag
