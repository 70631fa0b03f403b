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

// Package logger is the central log for the application. Entries are made up
// of a tag and a detail string and are printed in the form:
//
//	tag: detail
//
// Log entries are made with the Log() and Logf() functions. The detail
// argument to Log() can be of any type. Errors and fmt.Stringer
// implementations are handled specifically, all other values are formatted
// with the %v verb.
//
// The first argument to the logging functions is an implementation of the
// Permission interface. The Allow value can be used as a default.
//
// Identical entries that are logged one after the other are collapsed into a
// single entry with a repeat count. The central log holds a maximum of 256
// entries; the oldest entries are discarded as new entries are added.
//
// Separate instances of the logger can be created with NewLogger(). This is
// mostly useful for testing.
package logger
