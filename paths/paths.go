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

// Package paths contains functions to prepare paths to rustyboy resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example:
//
//	pth, err := paths.ResourcePath(prefs.DefaultPrefsFile)
//
// The policy of ResourcePath() is simple: if the base resource path,
// ".rustyboy", is present in the program's current directory then that is the
// base path that will be used. If it is not present then the user's config
// directory is used, as reported by os.UserConfigDir(). On a modern Linux
// system the path returned in the example above will be:
//
//	/home/user/.config/rustyboy/preferences
//
// The base directory is created if it does not exist.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const baseResourcePath = ".rustyboy"

// ResourcePath returns the path to the resource, rooted in the base resource
// path.
func ResourcePath(resource ...string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	p = append(p, resource...)

	return filepath.Join(p...), nil
}

func basePath() (string, error) {
	if info, err := os.Stat(baseResourcePath); err == nil && info.IsDir() {
		return baseResourcePath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(cfg, baseResourcePath[1:])
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
