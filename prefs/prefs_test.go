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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rustyboy/rustyboy/prefs"
	"github.com/rustyboy/rustyboy/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get(), prefs.Value(10))
	test.ExpectSuccess(t, v.Set(" 20 "))
	test.ExpectEquality(t, v.Get(), prefs.Value(20))
	test.ExpectFailure(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get(), prefs.Value(20))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "0")
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set("hello world"))
	test.ExpectEquality(t, v.String(), "hello world")

	v.SetMaxLen(5)
	test.ExpectEquality(t, v.String(), "hello")
	test.ExpectSuccess(t, v.Set("abcdefgh"))
	test.ExpectEquality(t, v.String(), "abcde")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// the pre hook prevents the value being stored
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get(), prefs.Value(5))
	test.ExpectEquality(t, post, 5)
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var title prefs.String
	var width prefs.Int
	test.DemandSuccess(t, dsk.Add("window.title", &title))
	test.DemandSuccess(t, dsk.Add("window.width", &width))
	test.ExpectFailure(t, dsk.Add("window.width", &width))

	test.ExpectSuccess(t, title.Set("rustyboy"))
	test.ExpectSuccess(t, width.Set(160))

	// the file doesn't exist but will be created
	err = dsk.Load(true)
	test.ExpectSuccess(t, errors.Is(err, prefs.NoPrefsFile))
	cmpFile(t, fn, "window.title :: rustyboy\nwindow.width :: 160\n")

	// a second disk sharing the same file
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var height prefs.Int
	test.DemandSuccess(t, dsk2.Add("window.height", &height))
	test.ExpectSuccess(t, height.Set(144))
	test.DemandSuccess(t, dsk2.Save())
	cmpFile(t, fn, "window.height :: 144\nwindow.title :: rustyboy\nwindow.width :: 160\n")

	// change values and reload from disk
	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, title.String(), "")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, title.String(), "rustyboy")
	test.ExpectEquality(t, width.Get(), prefs.Value(160))
}

func TestFirstUseWithCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var width prefs.Int
	test.DemandSuccess(t, dsk.Add("window.width", &width))
	test.ExpectSuccess(t, width.Set(160))

	// the file is created with the values from before the command line
	prefs.PushCommandLineStack("window.width::320")
	err = dsk.Load(true)
	prefs.PopCommandLineStack()
	test.ExpectSuccess(t, errors.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, width.Get(), prefs.Value(320))
	cmpFile(t, fn, "window.width :: 160\n")
}

func TestMemoryDisk(t *testing.T) {
	dsk := prefs.NewMemoryDisk()
	var width prefs.Int
	test.DemandSuccess(t, dsk.Add("window.width", &width))
	test.ExpectSuccess(t, width.Set(160))

	prefs.PushCommandLineStack("window.width::320")
	err := dsk.Load(true)
	prefs.PopCommandLineStack()
	test.ExpectSuccess(t, errors.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, width.Get(), prefs.Value(320))
	test.ExpectSuccess(t, dsk.Save())
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var width prefs.Int
	test.DemandSuccess(t, dsk.Add("window.width", &width))
	test.ExpectSuccess(t, width.Set(160))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("window.width::320; other.key :: foo; malformed")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, width.Get(), prefs.Value(320))

	// the used entry has been removed from the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other.key::foo")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	ok, _ := prefs.GetCommandLinePref("window.width")
	test.ExpectFailure(t, ok)
}
