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

package sprites_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rustyboy/rustyboy/backend"
	"github.com/rustyboy/rustyboy/backend/recorder"
	"github.com/rustyboy/rustyboy/handles"
	"github.com/rustyboy/rustyboy/sprites"
	"github.com/rustyboy/rustyboy/test"
)

// renderer binds a recorder backend to a renderer in the way that a window
// would do
type renderer struct {
	rec *recorder.Recorder
	ren backend.Renderer
}

func (r renderer) LoadTexture(path string) (backend.Texture, error) {
	return r.rec.LoadTexture(r.ren, path)
}

func (r renderer) ReleaseTexture(texture backend.Texture) error {
	return r.rec.ReleaseTexture(texture)
}

func (r renderer) DrawTexture(texture backend.Texture, x, y int32) error {
	return r.rec.DrawTexture(r.ren, texture, x, y)
}

func newCache(t *testing.T) (*sprites.Cache, *recorder.Recorder) {
	t.Helper()

	rec := recorder.NewRecorder()
	test.DemandSuccess(t, rec.Init())
	srf, err := rec.CreateSurface("test", 100, 100, backend.SurfaceHidden)
	test.DemandSuccess(t, err)
	ren, err := rec.CreateRenderer(srf, -1, backend.RendererSoftware)
	test.DemandSuccess(t, err)

	return sprites.NewCache(renderer{rec: rec, ren: ren}), rec
}

// the name of the texture drawn by the most recent DrawTexture() call
func lastDrawn(t *testing.T, rec *recorder.Recorder) string {
	t.Helper()
	c, ok := rec.Last(recorder.OpDrawTexture)
	test.DemandSuccess(t, ok)
	if c.Handle == nil {
		t.Fatalf("DrawTexture() call has no texture")
	}
	return c.Handle.Name
}

func TestCapacity(t *testing.T) {
	c, rec := newCache(t)
	test.ExpectEquality(t, c.Cap(), sprites.MaxSprites)

	for i := range sprites.MaxSprites {
		test.ExpectSuccess(t, c.Load(fmt.Sprintf("%d.png", i)), i)
		test.ExpectEquality(t, c.Len(), i+1)
	}

	loads := rec.Count(recorder.OpLoadTexture)

	// the eleventh load fails without asking the backend for anything
	err := c.Load("overflow.png")
	test.ExpectSuccess(t, errors.Is(err, sprites.ErrCapacityExceeded))
	test.ExpectEquality(t, c.Len(), sprites.MaxSprites)
	test.ExpectEquality(t, rec.Count(recorder.OpLoadTexture), loads)
	test.ExpectEquality(t, rec.Live(recorder.KindTexture), sprites.MaxSprites)

	l, err := c.Locator(sprites.MaxSprites - 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, l, "9.png")
}

func TestUnload(t *testing.T) {
	c, rec := newCache(t)

	err := c.Unload()
	test.ExpectSuccess(t, errors.Is(err, handles.ErrUnderflow))
	test.ExpectEquality(t, c.Len(), 0)

	test.DemandSuccess(t, c.Load("a.png"))
	test.ExpectEquality(t, rec.Live(recorder.KindTexture), 1)
	test.ExpectSuccess(t, c.Unload())
	test.ExpectEquality(t, c.Len(), 0)
	test.ExpectEquality(t, rec.Live(recorder.KindTexture), 0)

	err = c.Unload()
	test.ExpectSuccess(t, errors.Is(err, handles.ErrUnderflow))
}

func TestUnloadReleaseFailure(t *testing.T) {
	c, rec := newCache(t)
	test.DemandSuccess(t, c.Load("a.png"))

	// the slot is freed even though the texture could not be released
	rec.FailNext(recorder.OpReleaseTexture)
	err := c.Unload()
	test.ExpectSuccess(t, errors.Is(err, backend.ErrTeardown))
	test.ExpectEquality(t, c.Len(), 0)
}

func TestBackendLoadFailure(t *testing.T) {
	c, rec := newCache(t)
	test.DemandSuccess(t, c.Load("a.png"))

	rec.FailPath("missing.png")
	err := c.Load("missing.png")
	test.ExpectSuccess(t, errors.Is(err, backend.ErrResourceLoad))
	test.ExpectEquality(t, c.Len(), 1)
	test.ExpectEquality(t, c.String(), "[a.png]")
}

func TestDraw(t *testing.T) {
	c, rec := newCache(t)

	err := c.Draw(0, 0, 0)
	test.ExpectSuccess(t, errors.Is(err, handles.ErrOutOfRange))

	test.DemandSuccess(t, c.Load("a.png"))
	test.DemandSuccess(t, c.Load("b.png"))

	test.ExpectSuccess(t, c.Draw(0, 10, 20))
	test.ExpectEquality(t, lastDrawn(t, rec), "a.png")
	call, _ := rec.Last(recorder.OpDrawTexture)
	test.ExpectEquality(t, call.Args, "10 20")

	test.ExpectSuccess(t, c.Draw(1, 30, 40))
	test.ExpectEquality(t, lastDrawn(t, rec), "b.png")

	// unloading removes b
	test.ExpectSuccess(t, c.Unload())
	err = c.Draw(1, 30, 40)
	test.ExpectSuccess(t, errors.Is(err, handles.ErrOutOfRange))

	test.ExpectSuccess(t, c.Draw(0, 50, 60))
	test.ExpectEquality(t, lastDrawn(t, rec), "a.png")

	err = c.Draw(-1, 0, 0)
	test.ExpectSuccess(t, errors.Is(err, handles.ErrOutOfRange))
}

func TestDestroy(t *testing.T) {
	c, rec := newCache(t)
	for _, s := range []string{"a.png", "b.png", "c.png"} {
		test.DemandSuccess(t, c.Load(s))
	}

	// one release fails but the others are still attempted
	rec.FailNext(recorder.OpReleaseTexture)
	err := c.Destroy()
	test.ExpectSuccess(t, errors.Is(err, backend.ErrTeardown))
	test.ExpectEquality(t, c.Len(), 0)
	test.ExpectEquality(t, rec.Count(recorder.OpReleaseTexture), 3)
	test.ExpectEquality(t, rec.Live(recorder.KindTexture), 1)

	// the cache can be reused
	test.ExpectSuccess(t, c.Load("d.png"))
	test.ExpectSuccess(t, c.Destroy())
	test.ExpectEquality(t, rec.Live(recorder.KindTexture), 1)

	// destroying an empty cache is fine
	test.ExpectSuccess(t, c.Destroy())
}

func TestMemviz(t *testing.T) {
	c, _ := newCache(t)
	test.DemandSuccess(t, c.Load("a.png"))

	w := &strings.Builder{}
	c.Memviz(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}
