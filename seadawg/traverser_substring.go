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

// substringDescend runs in two phases, selected by f.fallThrough. While
// still matching the needle, it behaves like prefixDescend. Once the
// needle has been fully consumed (exactly, or as a prefix of the
// current edge's label), it switches into fall-through: from here every
// reachable node is harvested, because every string passing through
// this point contains the needle as a substring (the automaton
// recognizes every factor of every stored string from SourceID, since
// ingestion registers each suffix in turn — see spec.md §9). See
// spec.md §4.8 "Substring".
func (a *Automaton[V]) substringDescend(needle []byte, edgeID EdgeID, e *Edge, f frame) []frame {
	if f.fallThrough {
		var next []frame
		destID := e.Dest
		if a.nodes[destID].SinkSet.len() > 0 {
			next = append(next, frame{mode: modeCollect, node: destID, edges: []EdgeID{edgeID}, fallThrough: true})
		}
		if outs := a.outEdges(destID); len(outs) > 0 {
			label := a.sinks[e.SinkRef].Bytes[e.Start : e.End+1]
			traversed := append(append([]byte(nil), f.traversed...), label...)
			edges := make([]EdgeID, len(outs))
			for i, be := range outs {
				edges[i] = be.edge
			}
			next = append(next, frame{mode: modeDescend, node: destID, traversed: traversed, edges: edges, fallThrough: true})
		}
		return next
	}

	label := a.sinks[e.SinkRef].Bytes[e.Start : e.End+1]
	consumed := len(f.traversed)
	total := consumed + len(label)

	if total >= len(needle) {
		overlap := ints.Min(len(needle)-consumed, len(label))
		if !bytesEqual(label[:overlap], needle[consumed:consumed+overlap]) {
			return nil
		}
		return []frame{{
			mode:        modeDescend,
			node:        f.node,
			traversed:   append([]byte(nil), f.traversed...),
			edges:       []EdgeID{edgeID},
			fallThrough: true,
		}}
	}

	traversed := append(append([]byte(nil), f.traversed...), label...)
	nextEdge, ok := a.getTo(e.Dest, needle[total])
	if !ok {
		return nil
	}
	return []frame{{mode: modeDescend, node: e.Dest, traversed: traversed, edges: []EdgeID{nextEdge}}}
}

// substringCollect reports every sink recorded at the reached node,
// reconstructed from its own stored bytes. Recursion into the rest of
// the reachable subtree is driven by the parallel fall-through descend
// frame substringDescend pushes alongside this one, not by collect
// itself.
func (a *Automaton[V]) substringCollect(edgeID EdgeID, e *Edge, f frame, emit emitFunc) []frame {
	nodeID := e.Dest
	for _, sid := range a.nodes[nodeID].SinkSet.items {
		rec, ok := a.GetSink(SinkID(sid))
		if !ok {
			continue
		}
		emit(SinkID(sid), rec.Bytes)
	}
	return nil
}
