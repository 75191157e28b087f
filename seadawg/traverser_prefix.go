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

import "github.com/normano/seadawg/ints"

// prefixDescend advances the prefix match one edge at a time. Once the
// needle is fully matched (exactly, or strictly inside the current
// edge's label), it switches to collect mode on the same edge rather
// than advancing further, so collect can harvest every string below
// this point. See spec.md §4.8 "Prefix".
func (a *Automaton[V]) prefixDescend(needle []byte, edgeID EdgeID, e *Edge, f frame) []frame {
	label := a.sinks[e.SinkRef].Bytes[e.Start : e.End+1]
	consumed := len(f.traversed)
	total := consumed + len(label)

	if total >= len(needle) {
		overlap := ints.Min(len(needle)-consumed, len(label))
		if !bytesEqual(label[:overlap], needle[consumed:consumed+overlap]) {
			return nil
		}
		return []frame{{
			mode:      modeCollect,
			node:      e.Dest,
			traversed: append([]byte(nil), f.traversed...),
			edges:     []EdgeID{edgeID},
		}}
	}

	traversed := append(append([]byte(nil), f.traversed...), label...)
	nextEdge, ok := a.getTo(e.Dest, needle[total])
	if !ok {
		return nil
	}
	return []frame{{mode: modeDescend, node: e.Dest, traversed: traversed, edges: []EdgeID{nextEdge}}}
}

// prefixCollect harvests the sink set of the node the matched edge
// leads to, then continues the same harvest into every one of that
// node's own outgoing edges — every path reachable from here begins
// with the needle. A sink is emitted only when its stored length equals
// the length of the path traversed to this node, so strings that merely
// contain the path as an interior factor are not reported.
func (a *Automaton[V]) prefixCollect(edgeID EdgeID, e *Edge, f frame, emit emitFunc) []frame {
	label := a.sinks[e.SinkRef].Bytes[e.Start : e.End+1]
	traversed := append(append([]byte(nil), f.traversed...), label...)
	nodeID := e.Dest

	for _, sid := range a.nodes[nodeID].SinkSet.items {
		rec, ok := a.GetSink(SinkID(sid))
		if !ok || len(rec.Bytes) != len(traversed) {
			continue
		}
		emit(SinkID(sid), rec.Bytes)
	}

	outs := a.outEdges(nodeID).snapshot()
	if len(outs) == 0 {
		return nil
	}
	edges := make([]EdgeID, len(outs))
	for i, be := range outs {
		edges[i] = be.edge
	}
	return []frame{{mode: modeCollect, node: nodeID, traversed: traversed, edges: edges}}
}
