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

// Package prefs stores preference values and saves them to disk.
//
// Preference values are of the types Bool, Int and String. Values are
// registered with a Disk instance under a key and are then loaded and saved
// together:
//
//	var scale prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("window.scale", &scale)
//	err := dsk.Load(true)
//
// The file on disk is shared between Disk instances. Saving a Disk only
// changes the entries for its own keys; entries for other keys are
// preserved. Each entry is stored on its own line in the form:
//
//	key :: value
//
// The first line of the file is WarningBoilerPlate.
//
// Values can also be specified on the command line. A prefs string from the
// command line is added with PushCommandLineStack() and is consulted by
// Load(). Command line values take priority over values on disk. The format of
// the string is:
//
//	key::value; key::value
//
// Values in this package are safe to read and write from more than one
// goroutine.
package prefs
