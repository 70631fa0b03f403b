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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/rustyboy/rustyboy/backend"
	"github.com/rustyboy/rustyboy/backend/recorder"
	"github.com/rustyboy/rustyboy/backend/sdlbackend"
	"github.com/rustyboy/rustyboy/logger"
	"github.com/rustyboy/rustyboy/modalflag"
	"github.com/rustyboy/rustyboy/prefs"
	"github.com/rustyboy/rustyboy/sprites"
	"github.com/rustyboy/rustyboy/statsview"
	"github.com/rustyboy/rustyboy/version"
	"github.com/rustyboy/rustyboy/window"
)

// exit values
const (
	exitOK = iota
	exitArgs
	exitDisplay
)

// frequency of the display loop
const frameDuration = time.Second / 60

func init() {
	// SDL must only be called from the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch parses the command line and runs the selected mode. returns the
// value that should be used with os.Exit()
func launch(args []string, output io.Writer, errOutput io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)

	showVersion := md.AddBool("version", false, "print version information and exit")
	echo := md.AddBool("log", false, "echo log to stdout")
	prefsArg := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")
	memvizFile := md.AddString("memviz", "", "write graphviz dump of the sprite cache to file")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AddSubModes("RUN", "HEADLESS")
	md.AdditionalHelp("remaining arguments are the image files to load as sprites")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(errOutput, "* error: %v\n", err)
		return exitArgs
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	logger.Log(logger.Allow, "rustyboy", version.String())

	if *echo {
		logger.SetEcho(output, false)
		defer logger.SetEcho(nil, false)
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "rustyboy", "unused prefs: %s", unused)
			}
		}()
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	var b backend.Backend
	var rec *recorder.Recorder
	var prf func() (*window.Preferences, error)

	switch md.Mode() {
	case "RUN":
		b = sdlbackend.NewSDL()
		prf = window.NewPreferences
	case "HEADLESS":
		// draw a single frame. the preferences file is left alone
		rec = recorder.NewRecorder()
		b = rec
		prf = window.NewDefaultPreferences
	}

	md.NewMode()
	p, err = md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(errOutput, "* error: %v\n", err)
		return exitArgs
	}

	if len(md.RemainingArgs()) > sprites.MaxSprites {
		fmt.Fprintf(errOutput, "* error: too many sprite files (max %d)\n", sprites.MaxSprites)
		return exitArgs
	}

	err = display(b, prf, md.RemainingArgs(), *memvizFile)

	if rec != nil {
		rec.Write(output)
	}

	if err != nil {
		fmt.Fprintf(errOutput, "* error: %v\n", err)
		return exitDisplay
	}

	return exitOK
}

// display initialises the backend, creates a window from the preferences with
// the sprites loaded and runs until the backend reports a quit request or the
// program is interrupted. the window and backend are always torn down before
// returning.
func display(b backend.Backend, newPrefs func() (*window.Preferences, error), files []string, memvizFile string) (rerr error) {
	err := b.Init()
	if err != nil {
		return err
	}
	defer func() {
		rerr = errors.Join(rerr, b.Quit())
	}()

	prf, err := newPrefs()
	if err != nil {
		return err
	}
	cfg := prf.Config()

	win, err := window.Create(b, cfg)
	if err != nil {
		return err
	}
	defer func() {
		rerr = errors.Join(rerr, win.Destroy())
	}()

	for _, f := range files {
		err = win.LoadSprite(f)
		if err != nil {
			return err
		}
	}

	if memvizFile != "" {
		err = writeMemviz(win.Sprites(), memvizFile)
		if err != nil {
			return err
		}
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	tick := time.NewTicker(frameDuration)
	defer tick.Stop()

	// sprites are drawn in a row along the top of the window
	spacing := cfg.Width / sprites.MaxSprites

	for {
		err = win.Clear()
		if err != nil {
			return err
		}
		for i := range win.Sprites().Len() {
			err = win.DrawSprite(i, int32(i)*spacing, 0)
			if err != nil {
				return err
			}
		}
		win.Present()

		if b.Service() {
			return nil
		}

		select {
		case <-intChan:
			logger.Log(logger.Allow, "rustyboy", "interrupted")
			return nil
		case <-tick.C:
		}
	}
}

func writeMemviz(c *sprites.Cache, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	c.Memviz(f)
	err = f.Close()
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	logger.Logf(logger.Allow, "rustyboy", "sprite cache written to %s", file)
	return nil
}
