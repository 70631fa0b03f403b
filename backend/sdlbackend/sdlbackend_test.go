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

package sdlbackend

import (
	"errors"
	"testing"

	"github.com/rustyboy/rustyboy/backend"
	"github.com/rustyboy/rustyboy/test"
	"github.com/veandco/go-sdl2/sdl"
)

var _ backend.Backend = (*SDL)(nil)

func TestWindowFlags(t *testing.T) {
	test.ExpectEquality(t, windowFlags(0), uint32(0))
	test.ExpectEquality(t, windowFlags(backend.SurfaceShown), uint32(sdl.WINDOW_SHOWN))
	test.ExpectEquality(t, windowFlags(backend.SurfaceHidden|backend.SurfaceBorderless),
		uint32(sdl.WINDOW_HIDDEN|sdl.WINDOW_BORDERLESS))
	test.ExpectEquality(t, windowFlags(backend.SurfaceResizable|backend.SurfaceFullscreen),
		uint32(sdl.WINDOW_RESIZABLE|sdl.WINDOW_FULLSCREEN_DESKTOP))
}

func TestRendererFlags(t *testing.T) {
	test.ExpectEquality(t, rendererFlags(backend.RendererSoftware), uint32(sdl.RENDERER_SOFTWARE))
	test.ExpectEquality(t, rendererFlags(backend.RendererAccelerated|backend.RendererVSync),
		uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
}

// handles from another backend are rejected without calling SDL
func TestForeignHandles(t *testing.T) {
	b := NewSDL()
	_, err := b.LoadTexture("not a renderer", "a.png")
	test.ExpectSuccess(t, errors.Is(err, backend.ErrResourceLoad))
	test.ExpectSuccess(t, errors.Is(b.ReleaseTexture(42), backend.ErrTeardown))
	test.ExpectSuccess(t, errors.Is(b.DestroyRenderer(nil), backend.ErrTeardown))
}
