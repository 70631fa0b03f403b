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

package window_test

import (
	"errors"
	"testing"

	"github.com/rustyboy/rustyboy/backend"
	"github.com/rustyboy/rustyboy/backend/recorder"
	"github.com/rustyboy/rustyboy/handles"
	"github.com/rustyboy/rustyboy/sprites"
	"github.com/rustyboy/rustyboy/test"
	"github.com/rustyboy/rustyboy/window"
)

var cfg = window.Config{
	Name:          "test",
	Width:         160,
	Height:        144,
	SurfaceFlags:  backend.SurfaceHidden,
	RendererIndex: -1,
	RendererFlags: backend.RendererSoftware,
}

func newBackend(t *testing.T) *recorder.Recorder {
	t.Helper()
	rec := recorder.NewRecorder()
	test.DemandSuccess(t, rec.Init())
	return rec
}

func TestCreate(t *testing.T) {
	rec := newBackend(t)

	win, err := window.Create(rec, cfg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, win.Config(), cfg)
	test.ExpectEquality(t, rec.Live(recorder.KindSurface), 1)
	test.ExpectEquality(t, rec.Live(recorder.KindRenderer), 1)
	test.ExpectEquality(t, win.Sprites().Len(), 0)

	test.ExpectSuccess(t, win.Destroy())
	test.ExpectEquality(t, rec.Live(recorder.KindSurface), 0)
	test.ExpectEquality(t, rec.Live(recorder.KindRenderer), 0)

	// second destroy does nothing
	n := len(rec.Calls)
	test.ExpectSuccess(t, win.Destroy())
	test.ExpectEquality(t, len(rec.Calls), n)
}

func TestCreateFailure(t *testing.T) {
	rec := newBackend(t)

	rec.FailNext(recorder.OpCreateSurface)
	_, err := window.Create(rec, cfg)
	test.ExpectSuccess(t, errors.Is(err, backend.ErrSurfaceCreation))
	test.ExpectEquality(t, rec.Live(recorder.KindSurface), 0)

	// the surface is destroyed if the renderer can't be created
	rec.FailNext(recorder.OpCreateRenderer)
	_, err = window.Create(rec, cfg)
	test.ExpectSuccess(t, errors.Is(err, backend.ErrRendererCreation))
	test.ExpectEquality(t, rec.Live(recorder.KindSurface), 0)
	test.ExpectEquality(t, rec.Live(recorder.KindRenderer), 0)
}

func TestCreateUninitialised(t *testing.T) {
	_, err := window.Create(recorder.NewRecorder(), cfg)
	test.ExpectSuccess(t, errors.Is(err, backend.ErrSurfaceCreation))
}

func TestDestroyOrder(t *testing.T) {
	rec := newBackend(t)
	win, err := window.Create(rec, cfg)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, win.LoadSprite("a.png"))
	test.DemandSuccess(t, win.LoadSprite("b.png"))

	rec.Reset()
	test.ExpectSuccess(t, win.Destroy())

	test.DemandEquality(t, len(rec.Calls), 4)
	test.ExpectEquality(t, rec.Calls[0].String(), "ReleaseTexture(texture#4(b.png))")
	test.ExpectEquality(t, rec.Calls[1].String(), "ReleaseTexture(texture#3(a.png))")
	test.ExpectEquality(t, rec.Calls[2].Op, recorder.OpDestroyRenderer)
	test.ExpectEquality(t, rec.Calls[3].Op, recorder.OpDestroySurface)
}

func TestDestroyFailure(t *testing.T) {
	rec := newBackend(t)
	win, err := window.Create(rec, cfg)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, win.LoadSprite("a.png"))

	// every release is attempted despite earlier failures
	rec.FailNext(recorder.OpReleaseTexture)
	rec.FailNext(recorder.OpDestroyRenderer)
	err = win.Destroy()
	test.ExpectSuccess(t, errors.Is(err, backend.ErrTeardown))
	test.ExpectEquality(t, rec.Count(recorder.OpReleaseTexture), 1)
	test.ExpectEquality(t, rec.Count(recorder.OpDestroyRenderer), 1)
	test.ExpectEquality(t, rec.Count(recorder.OpDestroySurface), 1)
	test.ExpectEquality(t, rec.Live(recorder.KindSurface), 0)
}

func TestSprites(t *testing.T) {
	rec := newBackend(t)
	win, err := window.Create(rec, cfg)
	test.DemandSuccess(t, err)
	defer win.Destroy()

	test.ExpectSuccess(t, errors.Is(win.UnloadSprite(), handles.ErrUnderflow))

	test.DemandSuccess(t, win.LoadSprite("a.png"))
	test.DemandSuccess(t, win.LoadSprite("b.png"))

	test.ExpectSuccess(t, win.DrawSprite(0, 1, 2))
	c, _ := rec.Last(recorder.OpDrawTexture)
	test.ExpectEquality(t, c.Handle.Name, "a.png")

	test.ExpectSuccess(t, win.DrawSprite(1, 3, 4))
	c, _ = rec.Last(recorder.OpDrawTexture)
	test.ExpectEquality(t, c.Handle.Name, "b.png")

	test.ExpectSuccess(t, win.UnloadSprite())
	test.ExpectSuccess(t, errors.Is(win.DrawSprite(1, 3, 4), handles.ErrOutOfRange))

	for win.Sprites().Len() < sprites.MaxSprites {
		test.DemandSuccess(t, win.LoadSprite("x.png"))
	}
	test.ExpectSuccess(t, errors.Is(win.LoadSprite("y.png"), sprites.ErrCapacityExceeded))
}

func TestDrawing(t *testing.T) {
	rec := newBackend(t)
	win, err := window.Create(rec, cfg)
	test.DemandSuccess(t, err)
	defer win.Destroy()

	rec.Reset()
	test.ExpectSuccess(t, win.Clear())
	win.DrawPixel(10, 20, backend.Color{R: 0x12, G: 0x34, B: 0x56}, 128)
	win.Present()

	w := &test.Writer{}
	rec.Write(w)
	test.ExpectEquality(t, w.String(), "Clear(renderer#2)\n"+
		"DrawRect(renderer#2 10 20 1 1 #123456 128)\n"+
		"Present(renderer#2)\n")
}
