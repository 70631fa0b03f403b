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

// Package window is a thin wrapper around a backend surface and renderer. Each
// window owns a sprite cache that loads its textures through the window's
// renderer.
//
// The backend must be initialised before a window is created. The window does
// not initialise or shut down the backend itself.
package window

import (
	"errors"
	"fmt"

	"github.com/rustyboy/rustyboy/backend"
	"github.com/rustyboy/rustyboy/logger"
	"github.com/rustyboy/rustyboy/sprites"
)

// PixelSize is the width and height, in renderer units, of the rectangle
// drawn by DrawPixel().
const PixelSize = 1

// Config describes the window to be created.
type Config struct {
	// name of the window. usually shown in the title bar
	Name string

	// dimensions of the window
	Width  int32
	Height int32

	SurfaceFlags backend.SurfaceFlags

	// selects the rendering driver. -1 selects the first driver that
	// supports RendererFlags
	RendererIndex int
	RendererFlags backend.RendererFlags
}

// Window combines a surface and renderer with a sprite cache.
type Window struct {
	cfg      Config
	backend  backend.Backend
	surface  backend.Surface
	renderer backend.Renderer
	sprites  *sprites.Cache
}

// Create a new window with the backend. The backend must have been
// initialised.
func Create(b backend.Backend, cfg Config) (*Window, error) {
	win := &Window{
		cfg:     cfg,
		backend: b,
	}

	var err error

	win.surface, err = b.CreateSurface(cfg.Name, cfg.Width, cfg.Height, cfg.SurfaceFlags)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	win.renderer, err = b.CreateRenderer(win.surface, cfg.RendererIndex, cfg.RendererFlags)
	if err != nil {
		// don't leave the surface behind
		if derr := b.DestroySurface(win.surface); derr != nil {
			logger.Log(logger.Allow, "window", derr)
		}
		return nil, fmt.Errorf("window: %w", err)
	}

	win.sprites = sprites.NewCache(spriteRenderer{win: win})

	logger.Logf(logger.Allow, "window", "created %q (%dx%d)", cfg.Name, cfg.Width, cfg.Height)

	return win, nil
}

// Config returns the configuration the window was created with.
func (win *Window) Config() Config {
	return win.cfg
}

// Sprites returns the sprite cache of the window.
func (win *Window) Sprites() *sprites.Cache {
	return win.sprites
}

// Destroy releases every sprite, the renderer and the surface, in that order.
// Every release is attempted even if an earlier one fails. All failures are
// returned wrapped in backend.ErrTeardown.
//
// Destroying a window that has already been destroyed does nothing.
func (win *Window) Destroy() error {
	if win.renderer == nil && win.surface == nil {
		return nil
	}

	var errs []error

	if err := win.sprites.Destroy(); err != nil {
		errs = append(errs, err)
	}

	if win.renderer != nil {
		if err := win.backend.DestroyRenderer(win.renderer); err != nil {
			errs = append(errs, err)
		}
		win.renderer = nil
	}

	if win.surface != nil {
		if err := win.backend.DestroySurface(win.surface); err != nil {
			errs = append(errs, err)
		}
		win.surface = nil
	}

	if len(errs) > 0 {
		err := errors.Join(errs...)
		logger.Logf(logger.Allow, "window", "destroying %q: %v", win.cfg.Name, err)
		if errors.Is(err, backend.ErrTeardown) {
			return fmt.Errorf("window: %w", err)
		}
		return fmt.Errorf("window: %w: %w", backend.ErrTeardown, err)
	}

	logger.Logf(logger.Allow, "window", "destroyed %q", win.cfg.Name)

	return nil
}

// DrawPixel draws a single pixel at x, y.
func (win *Window) DrawPixel(x, y int32, color backend.Color, alpha uint8) {
	win.backend.DrawRect(win.renderer, x, y, PixelSize, PixelSize, color, alpha)
}

// LoadSprite loads an image into the window's sprite cache.
func (win *Window) LoadSprite(file string) error {
	return win.sprites.Load(file)
}

// UnloadSprite unloads the most recently loaded sprite from the window's
// sprite cache.
func (win *Window) UnloadSprite() error {
	return win.sprites.Unload()
}

// DrawSprite draws the sprite at the index in the sprite cache.
func (win *Window) DrawSprite(index int, x, y int32) error {
	return win.sprites.Draw(index, x, y)
}

// Clear the window ready for a new frame.
func (win *Window) Clear() error {
	return win.backend.Clear(win.renderer)
}

// Present changes made since the last call to Clear().
func (win *Window) Present() {
	win.backend.Present(win.renderer)
}

// spriteRenderer binds the backend to the window's renderer for the benefit of
// the sprite cache
type spriteRenderer struct {
	win *Window
}

func (r spriteRenderer) LoadTexture(path string) (backend.Texture, error) {
	return r.win.backend.LoadTexture(r.win.renderer, path)
}

func (r spriteRenderer) ReleaseTexture(texture backend.Texture) error {
	return r.win.backend.ReleaseTexture(texture)
}

func (r spriteRenderer) DrawTexture(texture backend.Texture, x, y int32) error {
	return r.win.backend.DrawTexture(r.win.renderer, texture, x, y)
}
