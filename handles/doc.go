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

// Package handles implements an ordered list of opaque resource handles.
//
// The list is doubly linked but the nodes are not connected by pointers.
// Instead they are stored in an arena owned by the List and addressed by
// NodeID values. A NodeID remembers the generation of the slot it refers
// to, so an ID for a node that has since been deleted is recognised as stale
// and rejected with ErrInvalidNode, even if the slot has been reused. A
// NodeID from one List is also rejected by every other List.
//
// Pushing and popping at either end is O(1), as is splicing a node in or
// out when its NodeID is known. Indexed access with Get() scans from the
// front and is O(n).
//
// The zero value of List is an empty list ready for use.
//
//	var l handles.List[string]
//	l.PushBack("b")
//	l.PushFront("a")
//	v, err := l.Get(1) // "b", nil
//	_, err = l.Get(2) // errors.Is(err, handles.ErrOutOfRange)
//
// Emptied and destroyed lists keep their arena so that stale NodeIDs can
// still be identified.
package handles
