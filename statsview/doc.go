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

// Package statsview serves runtime statistics over HTTP on a local address.
// The server is only present when the program is built with the statsview
// build tag:
//
//	go build -tags statsview .
//
// Without the tag, Available() returns false and Launch() does nothing other
// than say so.
//
// When running, charts of memory and goroutine use are served at:
//
//	localhost:12160/debug/statsview
//
// The server is provided by github.com/go-echarts/statsview. It also serves
// the standard pprof endpoints under /debug/pprof/.
package statsview
