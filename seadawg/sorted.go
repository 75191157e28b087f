// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package seadawg

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// byteEdge pairs a transition's first label byte with the edge it
// selects. A node's out-adjacency is a sorted slice of these, capped at
// 256 entries (one per possible byte), searched with binary search
// rather than a map — small-N sorted-vector containers are cheaper than
// a hash map at this size, per spec.md §4.2.
type byteEdge struct {
	key  byte
	edge EdgeID
}

// sortedBytes is a node's out-adjacency: a byte-keyed, sorted small
// vector of transitions, analogous in spirit to the teacher's
// regexp2.bitSetT/mapT containers but specialized to the (byte, EdgeID)
// shape the automaton's fan-out needs.
type sortedBytes []byteEdge

func (s sortedBytes) search(key byte) int {
	return sort.Search(len(s), func(i int) bool { return s[i].key >= key })
}

// get returns the edge keyed by b, if any.
func (s sortedBytes) get(b byte) (EdgeID, bool) {
	i := s.search(b)
	if i < len(s) && s[i].key == b {
		return s[i].edge, true
	}
	return 0, false
}

// set inserts or overwrites the transition keyed by b.
func (s *sortedBytes) set(b byte, e EdgeID) {
	i := s.search(b)
	if i < len(*s) && (*s)[i].key == b {
		(*s)[i].edge = e
		return
	}
	*s = append(*s, byteEdge{})
	copy((*s)[i+1:], (*s)[i:])
	(*s)[i] = byteEdge{key: b, edge: e}
}

// snapshot returns an independent copy of the transition list, for
// callers that must keep iterating while the adjacency table is
// mutated elsewhere (see cloneNode, which copies a node's out-edges
// before writing the clone's own adjacency).
func (s sortedBytes) snapshot() []byteEdge {
	out := make([]byteEdge, len(s))
	copy(out, s)
	return out
}

// sortedSet is a sorted, deduplicated small vector of unsigned integer
// ids — used for a node's sink set (spec.md §3's InternalNode.sink_set)
// and for the authoritative, order-independent result accumulator the
// traversal framework dedups query results against (spec.md §4.7).
type sortedSet[T constraints.Integer] struct {
	items []T
}

func (s *sortedSet[T]) search(v T) int {
	return sort.Search(len(s.items), func(i int) bool { return s.items[i] >= v })
}

// insert adds v if absent. Returns true if the set changed.
func (s *sortedSet[T]) insert(v T) bool {
	i := s.search(v)
	if i < len(s.items) && s.items[i] == v {
		return false
	}
	s.items = append(s.items, 0)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = v
	return true
}

// contains tests membership.
func (s *sortedSet[T]) contains(v T) bool {
	i := s.search(v)
	return i < len(s.items) && s.items[i] == v
}

func (s *sortedSet[T]) len() int { return len(s.items) }
