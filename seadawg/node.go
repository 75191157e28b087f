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

// InternalNode is a state of the automaton. Length is the longest
// substring, over all strings recognized so far, ending at this state;
// SuffixLink points at the state reached by dropping the first byte of
// that longest substring. SinkSet is stored inline on the node (not as
// a side table — see the adjacency table in automaton.go for the one
// piece of per-node state that does live outside the node record) and
// holds the ids of every stored string that ends exactly at this node.
type InternalNode struct {
	ID         NodeID
	Length     NodeLength
	SuffixLink NodeID
	SinkSet    sortedSet[uint32]
}
