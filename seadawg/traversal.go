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

import "sort"

// frameMode is one of the two traversal-frame kinds the query framework
// works in: descend follows explicit edges toward (or past) a needle;
// collect harvests sink sets once a needle has been located. A third
// conceptual mode, emit, is realized directly as the emit callback
// runQuery hands to each strategy's collect step, rather than as a
// separate stack frame — Go's callback values make that simplification
// natural where the original's frame-per-sink-candidate design exists
// mainly to fit one recursion-free executor loop.
type frameMode int

const (
	modeDescend frameMode = iota
	modeCollect
)

// frame is one unit of the framework's explicit LIFO work stack.
// Edges is the frame's own remaining-edges-to-scan list (LIFO); a frame
// with edges left after a pop is pushed back before any frames the
// current step produced, so traversal order stays depth-first and
// left-to-right, matching spec.md §4.7.
type frame struct {
	mode        frameMode
	node        NodeID
	edges       []EdgeID
	traversed   []byte
	fallThrough bool // substring query only: past the needle, harvesting
}

// QueryResult names one stored string that matched a range query
// (FindWithPrefix/FindWithSuffix/FindWithSubstring), by sink id and its
// own stored bytes.
type QueryResult struct {
	SinkID SinkID
	Bytes  []byte
}

// queryKind selects which of the three query strategies a traversal
// runs. Each strategy is a pair of descend/collect methods on Automaton
// switched on kind, rather than a Go interface value — an interface's
// methods cannot themselves be generic over the automaton's value type
// V, and the teacher's own style (regexp2's mapT/setT) favors concrete
// generic containers over interface dispatch for small closed behavior
// sets like this one.
type queryKind int

const (
	kindPrefix queryKind = iota
	kindSuffix
	kindSubstring
)

// emitFunc is how a strategy's collect step hands a discovered sink to
// the framework: traversed is the byte string to report for the match.
// Every strategy here passes the stored sink's own bytes, not the path
// traversed to reach it (for suffix queries that path is only the
// needle).
type emitFunc func(sinkID SinkID, traversed []byte)

// runQuery executes one query strategy's traversal to completion and
// returns its matches ordered by sink id, with no duplicates. See
// spec.md §4.7/§4.8.
func (a *Automaton[V]) runQuery(needle []byte, kind queryKind) []QueryResult {
	if len(needle) == 0 {
		return nil
	}

	firstEdge, ok := a.getTo(SourceID, needle[0])
	if !ok {
		return nil
	}

	seen := sortedSet[uint32]{}
	var results []QueryResult

	emit := func(sinkID SinkID, traversed []byte) {
		if a.dedup.maybeSeen(sinkID) && seen.contains(uint32(sinkID)) {
			return
		}
		if !seen.insert(uint32(sinkID)) {
			return
		}
		if kind == kindPrefix && !a.acceptPrefixSink(sinkID, traversed) {
			return
		}
		results = append(results, QueryResult{SinkID: sinkID, Bytes: append([]byte(nil), traversed...)})
	}

	stack := []frame{{mode: modeDescend, node: SourceID, edges: []EdgeID{firstEdge}}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if len(top.edges) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		edgeID := top.edges[len(top.edges)-1]
		top.edges = top.edges[:len(top.edges)-1]
		e := &a.edges[edgeID]
		cur := *top

		if len(top.edges) == 0 {
			stack = stack[:len(stack)-1]
		}

		var next []frame
		switch cur.mode {
		case modeDescend:
			switch kind {
			case kindPrefix:
				next = a.prefixDescend(needle, edgeID, e, cur)
			case kindSuffix:
				next = a.suffixDescend(needle, edgeID, e, cur)
			case kindSubstring:
				next = a.substringDescend(needle, edgeID, e, cur)
			}
		case modeCollect:
			switch kind {
			case kindPrefix:
				next = a.prefixCollect(edgeID, e, cur, emit)
			case kindSuffix:
				next = a.suffixCollect(edgeID, e, cur, emit)
			case kindSubstring:
				next = a.substringCollect(edgeID, e, cur, emit)
			}
		}

		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].SinkID < results[j].SinkID })
	return results
}

// acceptPrefixSink mirrors the source's FindPrefixTraverser accept
// check: the reported match length must equal the sink's own stored
// length. prefixCollect already filters its candidates by the length of
// the traversed path and reports the sink's own bytes, so this check
// holds for every candidate it emits.
func (a *Automaton[V]) acceptPrefixSink(sinkID SinkID, traversed []byte) bool {
	rec, ok := a.GetSink(sinkID)
	if !ok {
		return false
	}
	return len(traversed) == len(rec.Bytes)
}
