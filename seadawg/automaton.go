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
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Automaton is an online CDAWG over byte strings with caller-attached
// values of type V. The zero value is not usable; construct with New.
//
// An Automaton is not safe for concurrent use (spec.md §5): callers that
// share one across goroutines must serialize access themselves.
type Automaton[V any] struct {
	// ID is a per-instance correlation id, included in debug log lines
	// so a host juggling multiple automatons (e.g. one per tenant) can
	// tell their diagnostics apart.
	ID  uuid.UUID
	cfg Config
	log *log.Logger

	nodes []InternalNode
	edges []Edge
	sinks []SinkRecord[V]

	// adj is the one piece of node state kept as a side table rather
	// than inline on InternalNode: a node's out-adjacency, keyed by
	// node id. See spec.md §4.3.
	adj map[NodeID]sortedBytes

	nodeAlloc *idAllocator
	edgeAlloc *idAllocator
	sinkAlloc *idAllocator

	// activeSink is scratch state set at the top of Add: the sink id
	// every edge created during the current ingestion call refers to.
	activeSink SinkID
	totalBytes int

	dedup *dedupFilter
}

// New constructs an empty Automaton configured by cfg.
func New[V any](cfg Config) *Automaton[V] {
	cfg = cfg.normalize()
	a := &Automaton[V]{
		ID:        uuid.New(),
		cfg:       cfg,
		log:       log.Default(),
		nodeAlloc: newIDAllocator(uint32(firstFreeNodeID)),
		edgeAlloc: newIDAllocator(0),
		sinkAlloc: newIDAllocator(0),
		adj:       make(map[NodeID]sortedBytes),
	}
	if cfg.Diagnostics {
		a.dedup = newDedupFilter()
	}
	a.nodes = append(a.nodes,
		InternalNode{ID: RootID, Length: -1, SuffixLink: RootID},
		InternalNode{ID: SourceID, Length: 0, SuffixLink: RootID},
	)
	return a
}

func (a *Automaton[V]) length(n NodeID) NodeLength {
	return a.nodes[n].Length
}

func (a *Automaton[V]) getTo(state NodeID, b byte) (EdgeID, bool) {
	return a.adj[state].get(b)
}

// mustGetTo looks up the transition on b from state, panicking if it is
// absent. Used everywhere the algorithm's own invariants guarantee the
// transition exists by construction — an absent edge there means the
// automaton's internal state is corrupt, not that the needle is missing.
func (a *Automaton[V]) mustGetTo(state NodeID, b byte) EdgeID {
	id, ok := a.getTo(state, b)
	if !ok {
		panic(fmt.Sprintf("seadawg: expected transition from node %d on byte %#x", state, b))
	}
	return id
}

func (a *Automaton[V]) outEdges(state NodeID) sortedBytes {
	return a.adj[state]
}

func (a *Automaton[V]) newNode(length NodeLength, suffixLink NodeID) NodeID {
	id := NodeID(a.nodeAlloc.next())
	n := InternalNode{ID: id, Length: length, SuffixLink: suffixLink}
	if int(id) == len(a.nodes) {
		a.nodes = append(a.nodes, n)
	} else {
		a.nodes[id] = n
	}
	return id
}

// setEdge creates or overwrites the transition from state keyed by the
// byte at sink[sinkRef].Bytes[start], per spec.md §4.4. Existing
// transitions are overwritten in place (same EdgeID); a new transition
// allocates a fresh EdgeID and registers it in the adjacency table.
func (a *Automaton[V]) setEdge(state NodeID, sinkRef SinkID, start, end StrIdx, dest NodeID) EdgeID {
	if start > end {
		panic("seadawg: edge start index cannot exceed end index")
	}
	letter := a.sinks[sinkRef].Bytes[start]

	adj := a.adj[state]
	if id, ok := adj.get(letter); ok {
		e := &a.edges[id]
		e.SinkRef = sinkRef
		e.Start = start
		e.End = end
		e.Dest = dest
		return id
	}

	id := EdgeID(a.edgeAlloc.next())
	e := Edge{ID: id, Dest: dest, SinkRef: sinkRef, Start: start, End: end}
	if int(id) == len(a.edges) {
		a.edges = append(a.edges, e)
	} else {
		a.edges[id] = e
	}
	adj.set(letter, id)
	a.adj[state] = adj
	return id
}

// canonize walks (state, start..end) forward along explicit transitions
// for as long as the next edge's label is no longer than the remaining
// span end-start+1, returning the canonical (state, start) pair for that
// reference point. See spec.md §4.4.
func (a *Automaton[V]) canonize(state NodeID, start, end StrIdx, word []byte) (NodeID, StrIdx) {
	if start > end {
		return state, start
	}
	edgeID := a.mustGetTo(state, word[start])
	e := &a.edges[edgeID]
	diff := e.End - e.Start
	for diff <= end-start {
		start += diff + 1
		state = e.Dest
		if start > end {
			break
		}
		edgeID = a.mustGetTo(state, word[start])
		e = &a.edges[edgeID]
		diff = e.End - e.Start
	}
	return state, start
}

// checkEndpoint reports whether extending the reference point
// (state, start..end) by letter stays on an existing path: either an
// explicit point (start > end) with an outgoing transition on letter, or
// an implicit point inside an edge whose next byte (read from the edge's
// own sink) equals letter. See spec.md §4.4.
func (a *Automaton[V]) checkEndpoint(state NodeID, start, end StrIdx, letter byte, word []byte) bool {
	if start <= end {
		edgeID := a.mustGetTo(state, word[start])
		e := &a.edges[edgeID]
		sinkBytes := a.sinks[e.SinkRef].Bytes
		partialLetter := sinkBytes[int(e.Start)+int(end-start)+1]
		return letter == partialLetter
	}
	_, ok := a.getTo(state, letter)
	return ok
}

// extension returns the state reached from (state, start..end): state
// itself if the reference point is explicit (start > end), otherwise the
// destination of the transition it lies on. See spec.md §4.4.
func (a *Automaton[V]) extension(state NodeID, start, end StrIdx, word []byte) NodeID {
	if start > end {
		return state
	}
	edgeID := a.mustGetTo(state, word[start])
	return a.edges[edgeID].Dest
}

// redirectEdge repoints the transition from state on word[start] to
// dest, keeping its sink reference and start index and trimming its
// label to end-start+1 bytes. See spec.md §4.4.
func (a *Automaton[V]) redirectEdge(state NodeID, start, end StrIdx, dest NodeID, word []byte) {
	edgeID := a.mustGetTo(state, word[start])
	e := a.edges[edgeID]
	diff := end - start
	a.setEdge(state, e.SinkRef, e.Start, e.Start+diff, dest)
}

// splitEdge splits the transition from state on word[start..end] into
// two: a new internal node at the split point, with the original edge's
// suffix portion moved onto it and the original edge shortened to the
// prefix portion. Returns the new node. See spec.md §4.4.
func (a *Automaton[V]) splitEdge(state NodeID, start, end StrIdx, word []byte) NodeID {
	if start > end {
		panic("seadawg: splitEdge requires start <= end")
	}
	srcLength := a.length(state)
	edgeID := a.mustGetTo(state, word[start])
	e := a.edges[edgeID]

	leftDiff := end - start
	newNodeID := a.newNode(srcLength+NodeLength(leftDiff)+1, SourceID)

	a.setEdge(newNodeID, e.SinkRef, e.Start+leftDiff+1, e.End, e.Dest)
	a.setEdge(state, e.SinkRef, e.Start, e.Start+leftDiff, newNodeID)

	return newNodeID
}

// cloneNode creates a copy of node (same length and suffix link, same
// outgoing transitions) at a fresh id. See spec.md §4.4.
func (a *Automaton[V]) cloneNode(node NodeID) NodeID {
	src := a.nodes[node]
	newID := a.newNode(src.Length, src.SuffixLink)

	for _, be := range a.outEdges(node).snapshot() {
		e := a.edges[be.edge]
		a.setEdge(newID, e.SinkRef, e.Start, e.End, e.Dest)
	}
	return newID
}

// separateNode canonizes the reference point (state, start..end) and,
// when it lands on an explicit node whose length is greater than the
// point's own length, clones that node and redirects suffix-linked
// predecessors onto the clone, returning (clone, end+1) as the active
// point for the next extension. If the canonical point is still inside
// an edge, or the node already has the point's length, the canonical
// pair is returned unchanged. See spec.md §4.4.
func (a *Automaton[V]) separateNode(state NodeID, start, end StrIdx, word []byte) (NodeID, StrIdx) {
	canonNode, canonStart := a.canonize(state, start, end, word)
	if canonStart <= end {
		return canonNode, canonStart
	}

	sepLength := a.length(state) + NodeLength(end-start) + 1
	if a.length(canonNode) == sepLength {
		return canonNode, canonStart
	}

	sepNodeID := a.cloneNode(canonNode)
	a.nodes[sepNodeID].Length = sepLength
	a.nodes[canonNode].SuffixLink = sepNodeID

	for {
		edgeID := a.mustGetTo(state, word[start])
		e := a.edges[edgeID]
		a.setEdge(state, e.SinkRef, e.Start, e.End, sepNodeID)

		suffixOfState := a.nodes[state].SuffixLink
		state, start = a.canonize(suffixOfState, start, end-1, word)

		checkNode, checkStart := a.canonize(state, start, end, word)
		if checkNode != canonNode || checkStart != canonStart {
			break
		}
	}

	return sepNodeID, end + 1
}

// update is the heart of the construction: it extends every suffix of
// word[0:end+1] by letter, following suffix links from (state, start)
// until the extension is already present (checkEndpoint succeeds),
// creating explicit nodes and leaf transitions as it goes. See
// spec.md §4.4.
func (a *Automaton[V]) update(word []byte, letter byte, state NodeID, start, end StrIdx) (NodeID, StrIdx) {
	var prevCreated NodeID
	havePrevCreated := false
	var lastPrimary NodeID
	haveLastPrimary := false
	var nextState NodeID
	prevEnd := end - 1

	for !a.checkEndpoint(state, start, prevEnd, letter, word) {
		if start <= prevEnd {
			possibleExt := a.extension(state, start, prevEnd, word)
			if haveLastPrimary && lastPrimary == possibleExt {
				a.redirectEdge(state, start, prevEnd, nextState, word)
				state, start = a.canonize(a.nodes[state].SuffixLink, start, prevEnd, word)
				continue
			}
			lastPrimary = possibleExt
			haveLastPrimary = true
			nextState = a.splitEdge(state, start, prevEnd, word)
		} else {
			nextState = state
		}

		if _, exists := a.getTo(nextState, letter); exists {
			panic("seadawg: edge clobbering detected")
		}

		subLength := a.length(nextState) + NodeLength(len(word)) - NodeLength(end)
		subNodeID := a.newNode(subLength, SourceID)
		a.setEdge(nextState, a.activeSink, end, StrIdx(len(word)-1), subNodeID)
		a.nodes[subNodeID].SinkSet.insert(uint32(a.activeSink))

		if havePrevCreated {
			a.nodes[prevCreated].SuffixLink = nextState
		}
		prevCreated = nextState
		havePrevCreated = true

		state, start = a.canonize(a.nodes[state].SuffixLink, start, prevEnd, word)
	}

	if havePrevCreated {
		a.nodes[prevCreated].SuffixLink = state
	}

	return a.separateNode(state, start, end, word)
}

// materializeSuffix returns the explicit node reached from SourceID by
// word[start:end+1], splitting the canonical edge if that point still
// falls strictly inside one. Every factor of word is already
// traversable from SourceID by the time this is called (the Add
// contract), so the walk never hits a missing transition.
func (a *Automaton[V]) materializeSuffix(start, end StrIdx, word []byte) NodeID {
	canonNode, canonStart := a.canonize(SourceID, start, end, word)
	if canonStart > end {
		return canonNode
	}
	return a.splitEdge(canonNode, canonStart, end, word)
}

// registerSinkOnSuffixes attaches sinkID to every node representing a
// suffix of word, after the per-byte update loop has placed the active
// point at (state, start) relative to end = len(word)-1.
//
// When start > end the final point is explicit: every suffix of word
// already has its own node reachable by following suffix links from
// state, so a direct walk to SourceID suffices (spec.md §4.4).
//
// When start <= end the final point is still implicit — word as a
// whole was already a substring of something longer, so update never
// needed to create a node for it or for some of its shorter suffixes.
// The Rust source's corrective block (bt/core.rs:403-630) handles this
// by re-walking every suffix start index from SourceID; this is a
// faithful but simplified replacement sanctioned by spec.md §4.4: it
// materializes an explicit node for every suffix of word and chains
// them by suffix link in decreasing-length order, terminating at
// SourceID, registering sinkID on each. See spec.md §8 scenario S6.
func (a *Automaton[V]) registerSinkOnSuffixes(sinkID SinkID, state NodeID, start, end StrIdx, word []byte) {
	if start > end {
		for cur := state; cur != SourceID; {
			a.nodes[cur].SinkSet.insert(uint32(sinkID))
			cur = a.nodes[cur].SuffixLink
		}
		return
	}

	var prev NodeID
	havePrev := false
	for wordStart := StrIdx(0); wordStart <= end; wordStart++ {
		node := a.materializeSuffix(wordStart, end, word)
		a.nodes[node].SinkSet.insert(uint32(sinkID))
		if havePrev {
			a.nodes[prev].SuffixLink = node
		}
		prev = node
		havePrev = true
	}
	if havePrev && prev != SourceID {
		a.nodes[prev].SuffixLink = SourceID
	}
}

// Add ingests bytes as a new sink carrying value, extending the
// automaton in place. It returns the new sink's id.
//
// Add panics if the automaton's internal invariants are violated (see
// spec.md §7); a panic mid-call leaves the Automaton in an undefined,
// unusable state — there is no partial-failure rollback.
func (a *Automaton[V]) Add(bytes []byte, value V) (SinkID, error) {
	if len(bytes) > a.cfg.MaxStringLength {
		return 0, fmt.Errorf("seadawg: sink of %d bytes exceeds MaxStringLength %d", len(bytes), a.cfg.MaxStringLength)
	}

	sinkID := SinkID(a.sinkAlloc.next())
	rec := SinkRecord[V]{ID: sinkID, Bytes: append([]byte(nil), bytes...), Value: value}
	if int(sinkID) == len(a.sinks) {
		a.sinks = append(a.sinks, rec)
	} else {
		a.sinks[sinkID] = rec
	}
	a.activeSink = sinkID
	a.totalBytes += len(bytes)

	state := SourceID
	start := StrIdx(0)

	for i := 0; i < len(bytes); i++ {
		if _, ok := a.getTo(RootID, bytes[i]); !ok {
			a.setEdge(RootID, sinkID, StrIdx(i), StrIdx(i), SourceID)
		}

		next, nextStart := a.update(bytes, bytes[i], state, start, StrIdx(i))
		state, start = next, nextStart
	}

	a.registerSinkOnSuffixes(sinkID, state, start, StrIdx(len(bytes)-1), bytes)

	if a.cfg.Debug {
		a.log.Printf("seadawg[%s]: add sink=%d len=%d nodes=%d edges=%d", a.ID, sinkID, len(bytes), len(a.nodes), len(a.edges))
	}

	return sinkID, nil
}

// FindExact reports the sink id for needle if it was ingested verbatim.
// See spec.md §4.5.
func (a *Automaton[V]) FindExact(needle []byte) (SinkID, bool) {
	if len(needle) == 0 {
		return 0, false
	}
	state := SourceID
	i := 0
	for i < len(needle) {
		edgeID, ok := a.getTo(state, needle[i])
		if !ok {
			return 0, false
		}
		e := &a.edges[edgeID]
		sinkBytes := a.sinks[e.SinkRef].Bytes
		label := sinkBytes[e.Start : e.End+1]
		partialLen := len(label)
		if i+partialLen > len(needle) || !bytesEqual(label, needle[i:i+partialLen]) {
			return 0, false
		}
		if i+partialLen == len(needle) {
			dest := e.Dest
			for _, sid := range a.nodes[dest].SinkSet.items {
				rec := &a.sinks[sid]
				if len(rec.Bytes) == len(needle) && bytesEqual(rec.Bytes, needle) {
					return SinkID(sid), true
				}
			}
			return 0, false
		}
		state = e.Dest
		i += partialLen
	}
	return 0, false
}

// GetSink returns the sink record for id, if one exists.
func (a *Automaton[V]) GetSink(id SinkID) (SinkRecord[V], bool) {
	if int(id) >= len(a.sinks) {
		return SinkRecord[V]{}, false
	}
	return a.sinks[id], true
}

// Stats reports the automaton's current size.
type Stats struct {
	Nodes        int
	Edges        int
	Sinks        int
	TotalStrings int
	TotalBytes   int
}

// Stats reports current arena sizes and ingested volume.
func (a *Automaton[V]) Stats() Stats {
	return Stats{
		Nodes:        len(a.nodes),
		Edges:        len(a.edges),
		Sinks:        len(a.sinks),
		TotalStrings: len(a.sinks),
		TotalBytes:   a.totalBytes,
	}
}
