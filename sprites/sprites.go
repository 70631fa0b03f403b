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

// Package sprites implements a fixed capacity cache of loaded textures. The
// cache behaves as a stack: sprites are loaded onto the end of the cache and
// unloaded from the end. Sprites are referred to by their position in the
// cache, the first sprite loaded being at index zero.
//
// The cache holds at most MaxSprites sprites. Textures are loaded, released
// and drawn through an implementation of the Renderer interface, usually a
// window.
package sprites

import (
	"errors"
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/rustyboy/rustyboy/backend"
	"github.com/rustyboy/rustyboy/handles"
	"github.com/rustyboy/rustyboy/logger"
)

// MaxSprites is the maximum number of sprites that can be held in the cache
// at any one time.
const MaxSprites = 10

// ErrCapacityExceeded is returned by Load() when the cache is full.
var ErrCapacityExceeded = errors.New("sprite cache is full")

// Renderer is the rendering collaborator of the cache.
type Renderer interface {
	LoadTexture(path string) (backend.Texture, error)
	ReleaseTexture(texture backend.Texture) error
	DrawTexture(texture backend.Texture, x, y int32) error
}

type sprite struct {
	locator string
	texture backend.Texture
}

func (s sprite) String() string {
	return s.locator
}

// Cache of sprites. Use NewCache() to create a new instance.
type Cache struct {
	renderer Renderer
	list     handles.List[sprite]

	// the number of sprites in the cache. it is always the same as the length
	// of the list and is the index of the next sprite to be loaded
	cursor int
}

// NewCache is the preferred method of initialisation for the Cache type.
func NewCache(renderer Renderer) *Cache {
	return &Cache{
		renderer: renderer,
	}
}

// Len returns the number of sprites in the cache.
func (c *Cache) Len() int {
	return c.cursor
}

// Cap returns the maximum number of sprites the cache can hold.
func (c *Cache) Cap() int {
	return MaxSprites
}

// Load a texture from the locator and add it to the end of the cache. The
// cache is unchanged if an error is returned.
func (c *Cache) Load(locator string) error {
	if c.cursor >= MaxSprites {
		return fmt.Errorf("%w: cannot load %s (max %d)", ErrCapacityExceeded, locator, MaxSprites)
	}

	t, err := c.renderer.LoadTexture(locator)
	if err != nil {
		if errors.Is(err, backend.ErrResourceLoad) {
			return fmt.Errorf("sprites: %w", err)
		}
		return fmt.Errorf("sprites: %w: %s: %w", backend.ErrResourceLoad, locator, err)
	}

	c.list.PushBack(sprite{locator: locator, texture: t})
	c.cursor++

	logger.Logf(logger.Allow, "sprites", "loaded %s into slot %d", locator, c.cursor-1)

	return nil
}

// Unload removes the most recently loaded sprite from the cache and releases
// its texture. The sprite is removed from the cache even if the texture could
// not be released.
func (c *Cache) Unload() error {
	if c.cursor <= 0 {
		return fmt.Errorf("sprites: %w: no sprites to unload", handles.ErrUnderflow)
	}

	s, err := c.list.PopBack()
	if err != nil {
		return fmt.Errorf("sprites: %w", err)
	}
	c.cursor--

	logger.Logf(logger.Allow, "sprites", "unloaded %s from slot %d", s.locator, c.cursor)

	err = c.renderer.ReleaseTexture(s.texture)
	if err != nil {
		return releaseError(s, err)
	}

	return nil
}

func releaseError(s sprite, err error) error {
	if errors.Is(err, backend.ErrTeardown) {
		return fmt.Errorf("sprites: %s: %w", s.locator, err)
	}
	return fmt.Errorf("sprites: %w: %s: %w", backend.ErrTeardown, s.locator, err)
}

// Draw the sprite at the index with its top left corner at x, y.
func (c *Cache) Draw(index int, x, y int32) error {
	s, err := c.list.Get(index)
	if err != nil {
		return fmt.Errorf("sprites: %w", err)
	}
	err = c.renderer.DrawTexture(s.texture, x, y)
	if err != nil {
		return fmt.Errorf("sprites: drawing %s: %w", s.locator, err)
	}
	return nil
}

// Locator returns the locator that the sprite at the index was loaded from.
func (c *Cache) Locator(index int) (string, error) {
	s, err := c.list.Get(index)
	if err != nil {
		return "", fmt.Errorf("sprites: %w", err)
	}
	return s.locator, nil
}

func (c *Cache) String() string {
	return c.list.String()
}

// Destroy releases every sprite in the cache. A release is attempted for
// every sprite even if an earlier release fails. All failures are returned.
//
// The cache is empty, and usable, after Destroy() has returned.
func (c *Cache) Destroy() error {
	var errs []error

	n := c.list.Destroy(func(s sprite) {
		err := c.renderer.ReleaseTexture(s.texture)
		if err != nil {
			logger.Log(logger.Allow, "sprites", err)
			errs = append(errs, releaseError(s, err))
		}
	})
	c.cursor = 0

	if n > 0 {
		logger.Logf(logger.Allow, "sprites", "released %d sprites", n)
	}

	return errors.Join(errs...)
}

// Memviz writes a graphviz representation of the cache's list of sprites.
func (c *Cache) Memviz(output io.Writer) {
	memviz.Map(output, &c.list)
}
