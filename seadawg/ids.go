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

// NodeID addresses an InternalNode in the automaton's node arena.
type NodeID uint32

// EdgeID addresses an Edge in the automaton's edge arena.
type EdgeID uint32

// SinkID addresses a stored string (a "sink") in the automaton's sink
// arena. SinkID is also the value exposed to callers as a query result.
type SinkID uint32

// StrIdx indexes into a sink's byte string. Bounded by MaxStringLength
// (default 32767) so that edge spans fit in a signed 16-bit range.
type StrIdx int16

// NodeLength is the maximum length, over all strings ending at a node,
// of the substring recognized there. The root carries length -1.
type NodeLength int16

// Reserved ids, fixed for the lifetime of an Automaton.
const (
	// RootID is the implicit predecessor of SourceID, length -1. Its
	// suffix link is itself; it is never returned to callers.
	RootID NodeID = 0
	// SourceID is the start state for every ingested string and every
	// query. Its length is 0.
	SourceID NodeID = 1

	firstFreeNodeID NodeID = 2
)

// NoneSinkID is the sentinel edge.SinkRef value meaning "this edge
// carries no label reference yet" — it never appears on a live edge
// reachable from a query.
const NoneSinkID SinkID = ^SinkID(0)

// DefaultMaxStringLength is the MaxStringLength used when Config leaves
// it unset, chosen so that every in-bounds StrIdx fits the signed 16-bit
// edge-span representation.
const DefaultMaxStringLength = 32767
