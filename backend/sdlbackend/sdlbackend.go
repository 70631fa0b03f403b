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

// Package sdlbackend implements the backend.Backend interface with SDL2 and
// SDL_image.
//
// SDL requires that its functions are called from the main thread. It is the
// responsibility of the application to make sure of this.
package sdlbackend

import (
	"errors"
	"fmt"

	"github.com/rustyboy/rustyboy/backend"
	"github.com/rustyboy/rustyboy/logger"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// image formats supported by LoadTexture()
const imageFormats = img.INIT_JPG | img.INIT_PNG

// SDL implements the backend.Backend interface.
type SDL struct {
	initialised bool

	// resources that have been created and not yet released. SDL crashes if a
	// resource is destroyed twice so we need to keep track
	surfaces  map[*sdl.Window]bool
	renderers map[*sdl.Renderer]bool
	textures  map[*sdl.Texture]bool
}

// NewSDL is the preferred method of initialisation for the SDL type. Init()
// must be called before the instance can be used.
func NewSDL() *SDL {
	return &SDL{
		surfaces:  make(map[*sdl.Window]bool),
		renderers: make(map[*sdl.Renderer]bool),
		textures:  make(map[*sdl.Texture]bool),
	}
}

// Init implements the backend.Backend interface.
func (b *SDL) Init() error {
	if b.initialised {
		return nil
	}

	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return fmt.Errorf("%w: sdl: %w", backend.ErrInit, err)
	}

	err = img.Init(imageFormats)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("%w: sdl_image: %w", backend.ErrInit, err)
	}

	b.initialised = true

	v := sdl.Version{}
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	return nil
}

// Quit implements the backend.Backend interface. Any resources that have not
// been released are released before SDL is shut down.
func (b *SDL) Quit() error {
	if !b.initialised {
		return nil
	}

	n := len(b.textures) + len(b.renderers) + len(b.surfaces)
	if n > 0 {
		logger.Logf(logger.Allow, "sdl", "releasing %d resources left open at quit", n)
	}

	// every release is attempted. the release functions wrap ErrTeardown
	var errs []error
	for t := range b.textures {
		if err := b.ReleaseTexture(t); err != nil {
			errs = append(errs, err)
		}
	}
	for r := range b.renderers {
		if err := b.DestroyRenderer(r); err != nil {
			errs = append(errs, err)
		}
	}
	for s := range b.surfaces {
		if err := b.DestroySurface(s); err != nil {
			errs = append(errs, err)
		}
	}

	img.Quit()
	sdl.Quit()
	b.initialised = false

	if len(errs) > 0 {
		err := errors.Join(errs...)
		logger.Log(logger.Allow, "sdl", err)
		return fmt.Errorf("sdl: quit: %w", err)
	}

	return nil
}

func windowFlags(flags backend.SurfaceFlags) uint32 {
	var f uint32
	if flags&backend.SurfaceShown != 0 {
		f |= uint32(sdl.WINDOW_SHOWN)
	}
	if flags&backend.SurfaceHidden != 0 {
		f |= uint32(sdl.WINDOW_HIDDEN)
	}
	if flags&backend.SurfaceResizable != 0 {
		f |= uint32(sdl.WINDOW_RESIZABLE)
	}
	if flags&backend.SurfaceBorderless != 0 {
		f |= uint32(sdl.WINDOW_BORDERLESS)
	}
	if flags&backend.SurfaceFullscreen != 0 {
		f |= uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	}
	return f
}

func rendererFlags(flags backend.RendererFlags) uint32 {
	var f uint32
	if flags&backend.RendererSoftware != 0 {
		f |= uint32(sdl.RENDERER_SOFTWARE)
	}
	if flags&backend.RendererAccelerated != 0 {
		f |= uint32(sdl.RENDERER_ACCELERATED)
	}
	if flags&backend.RendererVSync != 0 {
		f |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	return f
}

// CreateSurface implements the backend.Backend interface. The surface is an
// SDL window.
func (b *SDL) CreateSurface(name string, width, height int32, flags backend.SurfaceFlags) (backend.Surface, error) {
	if !b.initialised {
		return nil, fmt.Errorf("%w: sdl not initialised", backend.ErrSurfaceCreation)
	}

	w, err := sdl.CreateWindow(name, int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED), width, height, windowFlags(flags))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", backend.ErrSurfaceCreation, err)
	}
	b.surfaces[w] = true

	return w, nil
}

// CreateRenderer implements the backend.Backend interface.
func (b *SDL) CreateRenderer(surface backend.Surface, index int, flags backend.RendererFlags) (backend.Renderer, error) {
	w, ok := surface.(*sdl.Window)
	if !ok || !b.surfaces[w] {
		return nil, fmt.Errorf("%w: not an open sdl window (%T)", backend.ErrRendererCreation, surface)
	}

	r, err := sdl.CreateRenderer(w, index, rendererFlags(flags))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", backend.ErrRendererCreation, err)
	}
	b.renderers[r] = true

	// alpha values passed to DrawRect() should be honoured
	err = r.SetDrawBlendMode(sdl.BlendMode(sdl.BLENDMODE_BLEND))
	if err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}

	return r, nil
}

func (b *SDL) renderer(renderer backend.Renderer) (*sdl.Renderer, error) {
	r, ok := renderer.(*sdl.Renderer)
	if !ok || !b.renderers[r] {
		return nil, fmt.Errorf("not an open sdl renderer (%T)", renderer)
	}
	return r, nil
}

// LoadTexture implements the backend.Backend interface. The image format is
// decided by SDL_image.
func (b *SDL) LoadTexture(renderer backend.Renderer, path string) (backend.Texture, error) {
	r, err := b.renderer(renderer)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", backend.ErrResourceLoad, path, err)
	}

	t, err := img.LoadTexture(r, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", backend.ErrResourceLoad, path, err)
	}
	b.textures[t] = true

	return t, nil
}

// ReleaseTexture implements the backend.Backend interface.
func (b *SDL) ReleaseTexture(texture backend.Texture) error {
	t, ok := texture.(*sdl.Texture)
	if !ok {
		return fmt.Errorf("%w: not an sdl texture (%T)", backend.ErrTeardown, texture)
	}
	if !b.textures[t] {
		return nil
	}
	err := t.Destroy()
	if err != nil {
		return fmt.Errorf("%w: texture: %w", backend.ErrTeardown, err)
	}
	delete(b.textures, t)
	return nil
}

// DestroyRenderer implements the backend.Backend interface.
func (b *SDL) DestroyRenderer(renderer backend.Renderer) error {
	r, ok := renderer.(*sdl.Renderer)
	if !ok {
		return fmt.Errorf("%w: not an sdl renderer (%T)", backend.ErrTeardown, renderer)
	}
	if !b.renderers[r] {
		return nil
	}
	err := r.Destroy()
	if err != nil {
		return fmt.Errorf("%w: renderer: %w", backend.ErrTeardown, err)
	}
	delete(b.renderers, r)
	return nil
}

// DestroySurface implements the backend.Backend interface.
func (b *SDL) DestroySurface(surface backend.Surface) error {
	w, ok := surface.(*sdl.Window)
	if !ok {
		return fmt.Errorf("%w: not an sdl window (%T)", backend.ErrTeardown, surface)
	}
	if !b.surfaces[w] {
		return nil
	}
	err := w.Destroy()
	if err != nil {
		return fmt.Errorf("%w: window: %w", backend.ErrTeardown, err)
	}
	delete(b.surfaces, w)
	return nil
}

// DrawRect implements the backend.Backend interface.
func (b *SDL) DrawRect(renderer backend.Renderer, x, y, w, h int32, color backend.Color, alpha uint8) {
	r, err := b.renderer(renderer)
	if err != nil {
		logger.Log(logger.Allow, "sdl", err)
		return
	}
	_ = r.SetDrawColor(color.R, color.G, color.B, alpha)
	_ = r.FillRect(&sdl.Rect{X: x, Y: y, W: w, H: h})
}

// DrawTexture implements the backend.Backend interface.
func (b *SDL) DrawTexture(renderer backend.Renderer, texture backend.Texture, x, y int32) error {
	r, err := b.renderer(renderer)
	if err != nil {
		return err
	}

	t, ok := texture.(*sdl.Texture)
	if !ok || !b.textures[t] {
		return fmt.Errorf("not a loaded sdl texture (%T)", texture)
	}

	_, _, w, h, err := t.Query()
	if err != nil {
		return err
	}

	return r.Copy(t, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
}

// Clear implements the backend.Backend interface.
func (b *SDL) Clear(renderer backend.Renderer) error {
	r, err := b.renderer(renderer)
	if err != nil {
		return err
	}
	err = r.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return err
	}
	return r.Clear()
}

// Present implements the backend.Backend interface.
func (b *SDL) Present(renderer backend.Renderer) {
	r, err := b.renderer(renderer)
	if err != nil {
		logger.Log(logger.Allow, "sdl", err)
		return
	}
	r.Present()
}

// Service implements the backend.Backend interface. A quit request is either
// the window being closed or the escape key being pressed.
func (b *SDL) Service() bool {
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				quit = true
			}
		}
	}

	return quit
}
