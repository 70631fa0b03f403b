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

import "errors"

// Sentinel errors returned by List functions. Test with errors.Is().
var (
	// popping from an empty list
	ErrUnderflow = errors.New("handle list underflow")

	// index outside of [0, Len())
	ErrOutOfRange = errors.New("handle list index out of range")

	// the NodeID refers to a node that is not (or is no longer) in the list
	ErrInvalidNode = errors.New("invalid node")

	// Insert() was called with nodes that do not neighbour one another
	ErrNotAdjacent = errors.New("nodes are not adjacent")
)
