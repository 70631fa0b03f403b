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

package handles

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// every List is given a unique owner value the first time a node is
// allocated. zero is never used
var owners atomic.Uint64

// NodeID addresses a node in a List. The zero value refers to no node. A
// NodeID is only valid for the List that returned it.
type NodeID struct {
	owner uint64
	slot  int
	gen   uint32
}

// Nil returns true if the NodeID refers to no node. Note that a NodeID that
// is not nil may still be stale.
func (id NodeID) Nil() bool {
	return id.slot == 0
}

func (id NodeID) String() string {
	if id.Nil() {
		return "node(nil)"
	}
	return fmt.Sprintf("node(%d.%d)", id.slot, id.gen)
}

// links between nodes are slot indexes. slot zero of the arena is never used
// so that zero can mean "no node"
type node[T any] struct {
	value T
	prev  int
	next  int
	gen   uint32
	live  bool
}

// List is an ordered sequence of handles. See package documentation.
type List[T any] struct {
	owner uint64
	nodes []node[T]
	free  []int

	front int
	back  int
	count int
}

// NewEmpty is the preferred method of initialisation for an empty List.
func NewEmpty[T any]() *List[T] {
	return &List[T]{}
}

// NewSingle returns a List containing just one node wrapping handle. The
// single node is both the front and the back of the list.
func NewSingle[T any](handle T) *List[T] {
	l := &List[T]{}
	l.PushBack(handle)
	return l
}

// NewSized returns a List of n placeholder nodes. The placeholders hold the
// zero value of T and can be filled with Set().
func NewSized[T any](n int) *List[T] {
	l := &List[T]{}
	var zero T
	for range n {
		l.PushBack(zero)
	}
	return l
}

func (l *List[T]) alloc(handle T) int {
	if l.owner == 0 {
		l.owner = owners.Add(1)
	}

	// reserve slot zero
	if len(l.nodes) == 0 {
		l.nodes = append(l.nodes, node[T]{})
	}

	var s int
	if len(l.free) > 0 {
		s = l.free[len(l.free)-1]
		l.free = l.free[:len(l.free)-1]
	} else {
		l.nodes = append(l.nodes, node[T]{})
		s = len(l.nodes) - 1
	}

	n := &l.nodes[s]
	n.value = handle
	n.prev = 0
	n.next = 0
	n.live = true

	return s
}

// release returns the slot to the free list. the generation is bumped so that
// any outstanding NodeID for the slot becomes stale
func (l *List[T]) release(s int) T {
	n := &l.nodes[s]
	v := n.value

	var zero T
	n.value = zero
	n.prev = 0
	n.next = 0
	n.live = false
	n.gen++

	l.free = append(l.free, s)
	return v
}

func (l *List[T]) id(s int) NodeID {
	if s == 0 {
		return NodeID{}
	}
	return NodeID{owner: l.owner, slot: s, gen: l.nodes[s].gen}
}

func (l *List[T]) resolve(id NodeID) (int, error) {
	if id.slot <= 0 || id.slot >= len(l.nodes) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidNode, id)
	}
	if id.owner != l.owner {
		return 0, fmt.Errorf("%w: %v belongs to another list", ErrInvalidNode, id)
	}
	n := &l.nodes[id.slot]
	if !n.live || n.gen != id.gen {
		return 0, fmt.Errorf("%w: %v is stale", ErrInvalidNode, id)
	}
	return id.slot, nil
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int {
	return l.count
}

// Front returns the ID of the first node. Nil if the list is empty.
func (l *List[T]) Front() NodeID {
	return l.id(l.front)
}

// Back returns the ID of the last node. Nil if the list is empty.
func (l *List[T]) Back() NodeID {
	return l.id(l.back)
}

// Next returns the ID of the node after id. Nil if id is the back of the list.
func (l *List[T]) Next(id NodeID) (NodeID, error) {
	s, err := l.resolve(id)
	if err != nil {
		return NodeID{}, err
	}
	return l.id(l.nodes[s].next), nil
}

// Prev returns the ID of the node before id. Nil if id is the front of the list.
func (l *List[T]) Prev(id NodeID) (NodeID, error) {
	s, err := l.resolve(id)
	if err != nil {
		return NodeID{}, err
	}
	return l.id(l.nodes[s].prev), nil
}

// Value returns the handle stored in the node.
func (l *List[T]) Value(id NodeID) (T, error) {
	s, err := l.resolve(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.nodes[s].value, nil
}

// Set replaces the handle stored in the node.
func (l *List[T]) Set(id NodeID, handle T) error {
	s, err := l.resolve(id)
	if err != nil {
		return err
	}
	l.nodes[s].value = handle
	return nil
}

// PushBack appends handle to the list. The new node becomes the back of the
// list.
func (l *List[T]) PushBack(handle T) NodeID {
	s := l.alloc(handle)
	if l.back == 0 {
		l.front = s
	} else {
		l.nodes[s].prev = l.back
		l.nodes[l.back].next = s
	}
	l.back = s
	l.count++
	return l.id(s)
}

// PushFront prepends handle to the list. The new node becomes the front of
// the list.
func (l *List[T]) PushFront(handle T) NodeID {
	s := l.alloc(handle)
	if l.front == 0 {
		l.back = s
	} else {
		l.nodes[s].next = l.front
		l.nodes[l.front].prev = s
	}
	l.front = s
	l.count++
	return l.id(s)
}

// Insert splices a new node between after and before. The two nodes must be
// adjacent, with before immediately following after.
func (l *List[T]) Insert(after NodeID, before NodeID, handle T) (NodeID, error) {
	a, err := l.resolve(after)
	if err != nil {
		return NodeID{}, err
	}
	b, err := l.resolve(before)
	if err != nil {
		return NodeID{}, err
	}
	if l.nodes[a].next != b {
		return NodeID{}, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, after, before)
	}

	s := l.alloc(handle)
	l.nodes[s].prev = a
	l.nodes[s].next = b
	l.nodes[a].next = s
	l.nodes[b].prev = s
	l.count++

	return l.id(s), nil
}

// PopBack removes the last node and returns its handle. Returns ErrUnderflow
// if the list is empty.
func (l *List[T]) PopBack() (T, error) {
	if l.count == 0 {
		var zero T
		return zero, fmt.Errorf("%w: pop back", ErrUnderflow)
	}
	return l.unlink(l.back), nil
}

// PopFront removes the first node and returns its handle. Returns
// ErrUnderflow if the list is empty.
func (l *List[T]) PopFront() (T, error) {
	if l.count == 0 {
		var zero T
		return zero, fmt.Errorf("%w: pop front", ErrUnderflow)
	}
	return l.unlink(l.front), nil
}

// Delete removes the node from the list and returns its handle. The node can
// be anywhere in the list, including the front and the back.
func (l *List[T]) Delete(id NodeID) (T, error) {
	s, err := l.resolve(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.unlink(s), nil
}

func (l *List[T]) unlink(s int) T {
	prev := l.nodes[s].prev
	next := l.nodes[s].next

	if prev == 0 {
		l.front = next
	} else {
		l.nodes[prev].next = next
	}

	if next == 0 {
		l.back = prev
	} else {
		l.nodes[next].prev = prev
	}

	l.count--
	return l.release(s)
}

// Find returns the ID of the node at the zero based index.
func (l *List[T]) Find(index int) (NodeID, error) {
	if index < 0 || index >= l.count {
		return NodeID{}, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, index, l.count)
	}

	s := l.front
	for range index {
		s = l.nodes[s].next
	}

	return l.id(s), nil
}

// Get returns the handle at the zero based index, counting from the front of
// the list.
func (l *List[T]) Get(index int) (T, error) {
	id, err := l.Find(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.nodes[id.slot].value, nil
}

// Walk calls f for every handle from front to back. Walking stops early if f
// returns false.
func (l *List[T]) Walk(f func(index int, handle T) bool) {
	i := 0
	for s := l.front; s != 0; s = l.nodes[s].next {
		if !f(i, l.nodes[s].value) {
			return
		}
		i++
	}
}

// Reverse calls f for every handle from back to front. The index passed to f
// is the position counted from the front. Stops early if f returns false.
func (l *List[T]) Reverse(f func(index int, handle T) bool) {
	i := l.count - 1
	for s := l.back; s != 0; s = l.nodes[s].prev {
		if !f(i, l.nodes[s].value) {
			return
		}
		i--
	}
}

// Destroy removes every node from the list, back to front, and returns the
// number of nodes removed. If release is not nil it is called with the
// handle of each node as it is removed.
func (l *List[T]) Destroy(release func(handle T)) int {
	n := 0
	for l.back != 0 {
		s := l.back
		l.back = l.nodes[s].prev
		v := l.release(s)
		if release != nil {
			release(v)
		}
		n++
	}

	l.front = 0
	l.back = 0
	l.count = 0

	return n
}

func (l *List[T]) String() string {
	s := strings.Builder{}
	s.WriteString("[")
	l.Walk(func(i int, v T) bool {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%v", v))
		return true
	})
	s.WriteString("]")
	return s.String()
}
