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

// Package recorder is an implementation of backend.Backend that draws
// nothing. Every call is recorded so that the sequence of calls can be
// examined or printed. It is used for headless operation and for testing.
//
// Handles created by the recorder are of type *Handle and are numbered in the
// order they are created.
//
// Failures can be injected with the FailNext() and FailPath() functions. An
// injected teardown failure leaves the resource unreleased, as it would be if
// the real library refused to release it.
package recorder

import (
	"fmt"
	"io"
	"strings"

	"github.com/rustyboy/rustyboy/backend"
)

// Op identifies a backend function.
type Op string

// List of valid Op values.
const (
	OpInit            Op = "Init"
	OpQuit            Op = "Quit"
	OpCreateSurface   Op = "CreateSurface"
	OpCreateRenderer  Op = "CreateRenderer"
	OpLoadTexture     Op = "LoadTexture"
	OpReleaseTexture  Op = "ReleaseTexture"
	OpDestroyRenderer Op = "DestroyRenderer"
	OpDestroySurface  Op = "DestroySurface"
	OpDrawRect        Op = "DrawRect"
	OpDrawTexture     Op = "DrawTexture"
	OpClear           Op = "Clear"
	OpPresent         Op = "Present"
)

// Kind of resource a Handle refers to.
type Kind string

// List of valid Kind values.
const (
	KindSurface  Kind = "surface"
	KindRenderer Kind = "renderer"
	KindTexture  Kind = "texture"
)

// Handle is the concrete type of the handles returned by the recorder.
type Handle struct {
	Kind     Kind
	ID       int
	Name     string
	Released bool
}

func (h *Handle) String() string {
	if h.Name == "" {
		return fmt.Sprintf("%s#%d", h.Kind, h.ID)
	}
	return fmt.Sprintf("%s#%d(%s)", h.Kind, h.ID, h.Name)
}

// Call is a single recorded backend call.
type Call struct {
	Op     Op
	Handle *Handle
	Args   string
	Err    error
}

func (c Call) String() string {
	s := strings.Builder{}
	s.WriteString(string(c.Op))
	s.WriteString("(")
	if c.Handle != nil {
		s.WriteString(c.Handle.String())
		if c.Args != "" {
			s.WriteString(" ")
		}
	}
	s.WriteString(c.Args)
	s.WriteString(")")
	if c.Err != nil {
		s.WriteString(fmt.Sprintf(" error: %v", c.Err))
	}
	return s.String()
}

// Recorder implements the backend.Backend interface.
type Recorder struct {
	// every call in the order they were made
	Calls []Call

	initialised bool
	handles     []*Handle

	failNext map[Op]int
	failPath map[string]bool

	// number of calls to Service() before it reports a quit request. zero
	// means quit on the first call
	frames int
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
func NewRecorder() *Recorder {
	return &Recorder{
		failNext: make(map[Op]int),
		failPath: make(map[string]bool),
	}
}

// FailNext causes the next call of the specified Op to fail.
func (r *Recorder) FailNext(op Op) {
	r.failNext[op]++
}

// FailPath causes every LoadTexture() call for the path to fail.
func (r *Recorder) FailPath(path string) {
	r.failPath[path] = true
}

// QuitAfter sets the number of calls to Service() that will return false
// before a quit request is reported.
func (r *Recorder) QuitAfter(frames int) {
	r.frames = frames
}

func (r *Recorder) failing(op Op) bool {
	if r.failNext[op] > 0 {
		r.failNext[op]--
		return true
	}
	return false
}

func (r *Recorder) record(op Op, h *Handle, err error, args string, vals ...any) {
	r.Calls = append(r.Calls, Call{
		Op:     op,
		Handle: h,
		Args:   fmt.Sprintf(args, vals...),
		Err:    err,
	})
}

func (r *Recorder) create(kind Kind, name string) *Handle {
	h := &Handle{
		Kind: kind,
		ID:   len(r.handles) + 1,
		Name: name,
	}
	r.handles = append(r.handles, h)
	return h
}

// Live returns the number of unreleased resources of the specified kind.
func (r *Recorder) Live(kind Kind) int {
	n := 0
	for _, h := range r.handles {
		if h.Kind == kind && !h.Released {
			n++
		}
	}
	return n
}

// Count returns the number of calls made of the specified Op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Last returns the most recent call of the specified Op. Returns false if
// there has been no such call.
func (r *Recorder) Last(op Op) (Call, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Op == op {
			return r.Calls[i], true
		}
	}
	return Call{}, false
}

// Reset forgets the recorded calls. Handles and injected failures are
// unaffected.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Write the call log to io.Writer, one call per line.
func (r *Recorder) Write(output io.Writer) {
	for _, c := range r.Calls {
		io.WriteString(output, c.String())
		io.WriteString(output, "\n")
	}
}

func asHandle(v any, kind Kind) (*Handle, error) {
	h, ok := v.(*Handle)
	if !ok || h == nil {
		return nil, fmt.Errorf("not a recorder handle (%T)", v)
	}
	if h.Kind != kind {
		return nil, fmt.Errorf("%v is not a %s", h, kind)
	}
	return h, nil
}

// Init implements the backend.Backend interface.
func (r *Recorder) Init() error {
	var err error
	if r.failing(OpInit) {
		err = fmt.Errorf("%w: injected failure", backend.ErrInit)
	} else {
		r.initialised = true
	}
	r.record(OpInit, nil, err, "")
	return err
}

// Quit implements the backend.Backend interface.
func (r *Recorder) Quit() error {
	var err error
	if r.failing(OpQuit) {
		err = fmt.Errorf("%w: injected failure", backend.ErrTeardown)
	}
	r.initialised = false
	r.record(OpQuit, nil, err, "")
	return err
}

// CreateSurface implements the backend.Backend interface.
func (r *Recorder) CreateSurface(name string, width, height int32, flags backend.SurfaceFlags) (backend.Surface, error) {
	var err error
	var h *Handle

	if !r.initialised {
		err = fmt.Errorf("%w: backend not initialised", backend.ErrSurfaceCreation)
	} else if r.failing(OpCreateSurface) {
		err = fmt.Errorf("%w: injected failure", backend.ErrSurfaceCreation)
	} else {
		h = r.create(KindSurface, name)
	}

	r.record(OpCreateSurface, h, err, "%q %dx%d %#x", name, width, height, flags)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// CreateRenderer implements the backend.Backend interface.
func (r *Recorder) CreateRenderer(surface backend.Surface, index int, flags backend.RendererFlags) (backend.Renderer, error) {
	var h *Handle

	s, err := asHandle(surface, KindSurface)
	if err != nil {
		err = fmt.Errorf("%w: %w", backend.ErrRendererCreation, err)
	} else if s.Released {
		err = fmt.Errorf("%w: %v has been destroyed", backend.ErrRendererCreation, s)
	} else if r.failing(OpCreateRenderer) {
		err = fmt.Errorf("%w: injected failure", backend.ErrRendererCreation)
	} else {
		h = r.create(KindRenderer, "")
	}

	r.record(OpCreateRenderer, s, err, "%d %#x", index, flags)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// LoadTexture implements the backend.Backend interface.
func (r *Recorder) LoadTexture(renderer backend.Renderer, path string) (backend.Texture, error) {
	var h *Handle

	rn, err := asHandle(renderer, KindRenderer)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", backend.ErrResourceLoad, path, err)
	} else if r.failPath[path] || r.failing(OpLoadTexture) {
		err = fmt.Errorf("%w: %s: injected failure", backend.ErrResourceLoad, path)
	} else {
		h = r.create(KindTexture, path)
	}

	r.record(OpLoadTexture, rn, err, "%s", path)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *Recorder) release(op Op, v any, kind Kind) error {
	h, err := asHandle(v, kind)
	if err != nil {
		err = fmt.Errorf("%w: %w", backend.ErrTeardown, err)
	} else if !h.Released {
		if r.failing(op) {
			err = fmt.Errorf("%w: %v: injected failure", backend.ErrTeardown, h)
		} else {
			h.Released = true
		}
	}
	r.record(op, h, err, "")
	return err
}

// ReleaseTexture implements the backend.Backend interface.
func (r *Recorder) ReleaseTexture(texture backend.Texture) error {
	return r.release(OpReleaseTexture, texture, KindTexture)
}

// DestroyRenderer implements the backend.Backend interface.
func (r *Recorder) DestroyRenderer(renderer backend.Renderer) error {
	return r.release(OpDestroyRenderer, renderer, KindRenderer)
}

// DestroySurface implements the backend.Backend interface.
func (r *Recorder) DestroySurface(surface backend.Surface) error {
	return r.release(OpDestroySurface, surface, KindSurface)
}

// DrawRect implements the backend.Backend interface.
func (r *Recorder) DrawRect(renderer backend.Renderer, x, y, w, h int32, color backend.Color, alpha uint8) {
	rn, err := asHandle(renderer, KindRenderer)
	r.record(OpDrawRect, rn, err, "%d %d %d %d #%02x%02x%02x %d", x, y, w, h, color.R, color.G, color.B, alpha)
}

// DrawTexture implements the backend.Backend interface. The Handle field of
// the recorded Call is the texture, not the renderer.
func (r *Recorder) DrawTexture(renderer backend.Renderer, texture backend.Texture, x, y int32) error {
	_, err := asHandle(renderer, KindRenderer)
	if err != nil {
		r.record(OpDrawTexture, nil, err, "%d %d", x, y)
		return err
	}

	t, err := asHandle(texture, KindTexture)
	if err == nil && t.Released {
		err = fmt.Errorf("%v has been released", t)
	}
	r.record(OpDrawTexture, t, err, "%d %d", x, y)
	return err
}

// Clear implements the backend.Backend interface.
func (r *Recorder) Clear(renderer backend.Renderer) error {
	rn, err := asHandle(renderer, KindRenderer)
	r.record(OpClear, rn, err, "")
	return err
}

// Present implements the backend.Backend interface.
func (r *Recorder) Present(renderer backend.Renderer) {
	rn, err := asHandle(renderer, KindRenderer)
	r.record(OpPresent, rn, err, "")
}

// Service implements the backend.Backend interface. Service() calls are not
// recorded.
func (r *Recorder) Service() bool {
	if r.frames > 0 {
		r.frames--
		return false
	}
	return true
}
