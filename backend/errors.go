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

package backend

import "errors"

// Sentinel errors. Backend implementations wrap these with additional
// information. Use errors.Is() to test for them.
var (
	ErrInit             = errors.New("backend initialisation failed")
	ErrSurfaceCreation  = errors.New("surface creation failed")
	ErrRendererCreation = errors.New("renderer creation failed")
	ErrResourceLoad     = errors.New("resource load failed")
	ErrTeardown         = errors.New("teardown failed")
)
