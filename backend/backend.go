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

// Package backend defines the contract between the display layer and the
// graphics library that does the actual work. The sdlbackend package is an
// implementation using SDL2. The recorder package is an implementation that
// records calls without drawing anything.
//
// Handles returned by a Backend are opaque. They must only be passed back to
// the Backend that created them.
//
// Initialisation of the backend is process-wide. Init() should be called once
// by the top level of the application before any windows are created and
// Quit() once all windows have been destroyed.
package backend

// Surface is an opaque handle to a window or other drawing surface.
type Surface any

// Renderer is an opaque handle to a renderer attached to a Surface.
type Renderer any

// Texture is an opaque handle to a loaded image.
type Texture any

// SurfaceFlags control how a surface is created.
type SurfaceFlags uint32

// List of valid SurfaceFlags. Flags can be combined.
const (
	SurfaceShown SurfaceFlags = 1 << iota
	SurfaceHidden
	SurfaceResizable
	SurfaceBorderless
	SurfaceFullscreen
)

// RendererFlags control how a renderer is created.
type RendererFlags uint32

// List of valid RendererFlags. Flags can be combined.
const (
	RendererSoftware RendererFlags = 1 << iota
	RendererAccelerated
	RendererVSync
)

// Color is an RGB color. Alpha is specified separately where required.
type Color struct {
	R, G, B uint8
}

// Backend implementations provide the graphics functions used by the window
// and sprite cache.
type Backend interface {
	// Init starts the backend. Returns an error wrapping ErrInit on failure.
	Init() error

	// Quit shuts the backend down. All handles are invalid after this.
	Quit() error

	// CreateSurface returns an error wrapping ErrSurfaceCreation on failure.
	CreateSurface(name string, width, height int32, flags SurfaceFlags) (Surface, error)

	// CreateRenderer returns an error wrapping ErrRendererCreation on
	// failure. The index argument selects the rendering driver, -1 for the
	// first driver that supports the flags.
	CreateRenderer(surface Surface, index int, flags RendererFlags) (Renderer, error)

	// LoadTexture returns an error wrapping ErrResourceLoad on failure.
	LoadTexture(renderer Renderer, path string) (Texture, error)

	// Teardown functions return an error wrapping ErrTeardown on failure.
	// Releasing a handle that has already been released is not an error.
	ReleaseTexture(texture Texture) error
	DestroyRenderer(renderer Renderer) error
	DestroySurface(surface Surface) error

	// DrawRect fills a rectangle with the color. Drawing errors are not
	// reported.
	DrawRect(renderer Renderer, x, y, w, h int32, color Color, alpha uint8)

	// DrawTexture copies the texture, at its natural size, to the renderer
	// with the top left corner at x, y.
	DrawTexture(renderer Renderer, texture Texture, x, y int32) error

	// Clear the renderer ready for a new frame.
	Clear(renderer Renderer) error

	// Present everything drawn since the last call to Clear().
	Present(renderer Renderer)

	// Service handles pending events. It returns true if the user has asked
	// for the application to quit.
	Service() bool
}
