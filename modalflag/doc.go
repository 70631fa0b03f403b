// This file is part of Rustyboy.
//
// Rustyboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rustyboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rustyboy.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package modalflag wraps the flag package from the standard library so that
// a command line can select a program mode, with each mode having its own
// set of flags.
//
// Arguments are given to NewArgs() and then consumed by one or more calls to
// Parse(). Flags for the next call to Parse() are added with the AddBool(),
// AddString() etc. functions:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	log := md.AddBool("log", false, "echo log to stdout")
//	md.AddSubModes("RUN", "HEADLESS")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// When sub-modes have been added, the first argument after the flags is
// compared with the list of sub-modes. A match selects that mode, otherwise
// the first sub-mode in the list is used. Comparisons are case insensitive.
// The selected mode is returned by Mode().
//
// After choosing a mode, NewMode() starts a new set of flags for the
// arguments that follow:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		fps := md.AddInt("fps", 60, "frames per second")
//		md.Parse()
//		run(*fps, md.RemainingArgs())
//	}
//
// Path() returns the sequence of modes selected so far, separated by a
// forward slash.
package modalflag
