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

package window

import (
	"errors"
	"fmt"

	"github.com/rustyboy/rustyboy/backend"
	"github.com/rustyboy/rustyboy/paths"
	"github.com/rustyboy/rustyboy/prefs"
	"github.com/rustyboy/rustyboy/version"
)

// default values for a new window
const (
	DefaultTitle  = version.ApplicationName
	DefaultWidth  = 160
	DefaultHeight = 144
	DefaultScale  = 3
)

// Preferences defines and collates all the preference values used to create
// a window.
type Preferences struct {
	dsk *prefs.Disk

	Title       prefs.String
	Width       prefs.Int
	Height      prefs.Int
	Scale       prefs.Int
	Resizable   prefs.Bool
	Fullscreen  prefs.Bool
	Accelerated prefs.Bool
	VSync       prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	return newPreferences(pth)
}

// NewDefaultPreferences returns the default preferences, amended by any
// command line values. Nothing is read from or saved to disk.
func NewDefaultPreferences() (*Preferences, error) {
	return openPreferences(prefs.NewMemoryDisk())
}

func newPreferences(pth string) (*Preferences, error) {
	dsk, err := prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	return openPreferences(dsk)
}

func openPreferences(dsk *prefs.Disk) (*Preferences, error) {
	p := &Preferences{dsk: dsk}
	p.SetDefaults()

	var err error

	for _, e := range []struct {
		key string
		val prefs.Pref
	}{
		{"window.title", &p.Title},
		{"window.width", &p.Width},
		{"window.height", &p.Height},
		{"window.scale", &p.Scale},
		{"window.resizable", &p.Resizable},
		{"window.fullscreen", &p.Fullscreen},
		{"window.accelerated", &p.Accelerated},
		{"window.vsync", &p.VSync},
	} {
		err = p.dsk.Add(e.key, e.val)
		if err != nil {
			return nil, fmt.Errorf("window: %w", err)
		}
	}

	scaleCheck := func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("scale must be at least 1 (%d)", v.(int))
		}
		return nil
	}
	p.Scale.SetHookPre(scaleCheck)

	sizeCheck := func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("window dimensions must be at least 1 (%d)", v.(int))
		}
		return nil
	}
	p.Width.SetHookPre(sizeCheck)
	p.Height.SetHookPre(sizeCheck)

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !errors.Is(err, prefs.NoPrefsFile) {
			return nil, fmt.Errorf("window: %w", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Title.Set(DefaultTitle)
	p.Width.Set(DefaultWidth)
	p.Height.Set(DefaultHeight)
	p.Scale.Set(DefaultScale)
	p.Resizable.Set(false)
	p.Fullscreen.Set(false)
	p.Accelerated.Set(true)
	p.VSync.Set(true)
}

// Load current window preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current window preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns a window configuration from the current preference values.
// The window dimensions are the preferred width and height multiplied by the
// scale.
func (p *Preferences) Config() Config {
	scale := p.Scale.Get().(int)

	cfg := Config{
		Name:          p.Title.String(),
		Width:         int32(p.Width.Get().(int) * scale),
		Height:        int32(p.Height.Get().(int) * scale),
		SurfaceFlags:  backend.SurfaceShown,
		RendererIndex: -1,
	}

	if p.Resizable.Get().(bool) {
		cfg.SurfaceFlags |= backend.SurfaceResizable
	}
	if p.Fullscreen.Get().(bool) {
		cfg.SurfaceFlags |= backend.SurfaceFullscreen
	}
	if p.Accelerated.Get().(bool) {
		cfg.RendererFlags |= backend.RendererAccelerated
	} else {
		cfg.RendererFlags |= backend.RendererSoftware
	}
	if p.VSync.Get().(bool) {
		cfg.RendererFlags |= backend.RendererVSync
	}

	return cfg
}
