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

package recorder_test

import (
	"errors"
	"testing"

	"github.com/rustyboy/rustyboy/backend"
	"github.com/rustyboy/rustyboy/backend/recorder"
	"github.com/rustyboy/rustyboy/test"
)

var _ backend.Backend = (*recorder.Recorder)(nil)

func TestLifecycle(t *testing.T) {
	r := recorder.NewRecorder()

	// surfaces can't be created until the backend has been initialised
	_, err := r.CreateSurface("test", 100, 100, backend.SurfaceShown)
	test.ExpectSuccess(t, errors.Is(err, backend.ErrSurfaceCreation))

	test.DemandSuccess(t, r.Init())

	srf, err := r.CreateSurface("test", 100, 100, backend.SurfaceShown)
	test.DemandSuccess(t, err)
	ren, err := r.CreateRenderer(srf, -1, backend.RendererAccelerated)
	test.DemandSuccess(t, err)
	tex, err := r.LoadTexture(ren, "a.png")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, r.Live(recorder.KindSurface), 1)
	test.ExpectEquality(t, r.Live(recorder.KindRenderer), 1)
	test.ExpectEquality(t, r.Live(recorder.KindTexture), 1)

	test.ExpectSuccess(t, r.DrawTexture(ren, tex, 10, 20))
	c, ok := r.Last(recorder.OpDrawTexture)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, c.String(), "DrawTexture(texture#3(a.png) 10 20)")

	test.ExpectSuccess(t, r.ReleaseTexture(tex))
	test.ExpectEquality(t, r.Live(recorder.KindTexture), 0)

	// releasing twice is not an error
	test.ExpectSuccess(t, r.ReleaseTexture(tex))

	// but drawing a released texture is
	test.ExpectFailure(t, r.DrawTexture(ren, tex, 0, 0))

	test.ExpectSuccess(t, r.DestroyRenderer(ren))
	test.ExpectSuccess(t, r.DestroySurface(srf))
	test.ExpectEquality(t, r.Live(recorder.KindSurface), 0)
	test.ExpectEquality(t, r.Live(recorder.KindRenderer), 0)

	test.ExpectSuccess(t, r.Quit())
}

func TestInjectedFailures(t *testing.T) {
	r := recorder.NewRecorder()

	r.FailNext(recorder.OpInit)
	test.ExpectSuccess(t, errors.Is(r.Init(), backend.ErrInit))
	test.DemandSuccess(t, r.Init())

	srf, err := r.CreateSurface("test", 10, 10, 0)
	test.DemandSuccess(t, err)
	ren, err := r.CreateRenderer(srf, -1, 0)
	test.DemandSuccess(t, err)

	r.FailPath("missing.png")
	_, err = r.LoadTexture(ren, "missing.png")
	test.ExpectSuccess(t, errors.Is(err, backend.ErrResourceLoad))
	_, err = r.LoadTexture(ren, "missing.png")
	test.ExpectSuccess(t, errors.Is(err, backend.ErrResourceLoad))
	test.ExpectEquality(t, r.Live(recorder.KindTexture), 0)

	tex, err := r.LoadTexture(ren, "present.png")
	test.DemandSuccess(t, err)

	// a refused release leaves the texture live
	r.FailNext(recorder.OpReleaseTexture)
	test.ExpectSuccess(t, errors.Is(r.ReleaseTexture(tex), backend.ErrTeardown))
	test.ExpectEquality(t, r.Live(recorder.KindTexture), 1)
	test.ExpectSuccess(t, r.ReleaseTexture(tex))
	test.ExpectEquality(t, r.Live(recorder.KindTexture), 0)

	// textures are not renderers
	test.ExpectSuccess(t, errors.Is(r.DestroyRenderer(tex), backend.ErrTeardown))

	r.FailNext(recorder.OpQuit)
	test.ExpectSuccess(t, errors.Is(r.Quit(), backend.ErrTeardown))
	c, _ := r.Last(recorder.OpQuit)
	test.ExpectFailure(t, c.Err)
	test.ExpectSuccess(t, r.Quit())
}

func TestService(t *testing.T) {
	r := recorder.NewRecorder()
	test.ExpectSuccess(t, r.Service())

	r.QuitAfter(2)
	test.ExpectFailure(t, r.Service())
	test.ExpectFailure(t, r.Service())
	test.ExpectSuccess(t, r.Service())
}

func TestWrite(t *testing.T) {
	r := recorder.NewRecorder()
	test.DemandSuccess(t, r.Init())
	srf, err := r.CreateSurface("win", 64, 32, backend.SurfaceShown)
	test.DemandSuccess(t, err)
	ren, err := r.CreateRenderer(srf, -1, backend.RendererAccelerated)
	test.DemandSuccess(t, err)
	r.DrawRect(ren, 1, 2, 3, 4, backend.Color{R: 0xff}, 255)

	w := &test.Writer{}
	r.Write(w)
	test.ExpectEquality(t, w.String(), "Init()\n"+
		"CreateSurface(surface#1(win) \"win\" 64x32 0x1)\n"+
		"CreateRenderer(surface#1(win) -1 0x2)\n"+
		"DrawRect(renderer#2 1 2 3 4 #ff0000 255)\n")
}
