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

// Package version reports the name and version of the application. The
// version number is set at link time:
//
//	go build -ldflags "-X github.com/rustyboy/rustyboy/version.number=v0.1.0"
//
// Without a number, the vcs information recorded by the Go toolchain is used
// to describe the build.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the application.
const ApplicationName = "Rustyboy"

// set by the linker for release builds
var number string

var (
	version  string
	revision string
)

func init() {
	version, revision = describe(number, settings())
}

func settings() map[string]string {
	s := make(map[string]string)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			s[v.Key] = v.Value
		}
	}
	return s
}

// describe returns the version and revision strings for the release number
// and build settings.
//
// the version is "unreleased" if there is vcs information but no number and
// "local" if there is neither
func describe(number string, settings map[string]string) (string, string) {
	rev, ok := settings["vcs.revision"]
	if !ok || rev == "" {
		rev = "no revision information"
	} else if settings["vcs.modified"] == "true" {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	if number != "" {
		return number, rev
	}
	if _, ok := settings["vcs"]; ok {
		return "unreleased", rev
	}
	return "local", rev
}

// Version returns the version string, the revision string and whether this
// is a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version in a form suitable for
// display.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
