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

// suffixDescend advances the suffix match one edge at a time. Unlike
// prefix, there is no fall-through: once the needle is matched exactly
// at an edge boundary, the reached node's own sink set is the complete
// answer (a node's sink set holds exactly the strings that end there,
// with nothing beyond), so collect never recurses further. Overshooting
// the needle mid-edge means no explicit node can terminate exactly at
// the needle's end along this path, so that branch dead-ends. See
// spec.md §4.8 "Suffix".
func (a *Automaton[V]) suffixDescend(needle []byte, edgeID EdgeID, e *Edge, f frame) []frame {
	label := a.sinks[e.SinkRef].Bytes[e.Start : e.End+1]
	traversed := append(append([]byte(nil), f.traversed...), label...)

	switch {
	case len(traversed) > len(needle):
		return nil
	case len(traversed) == len(needle):
		if !bytesEqual(traversed, needle) {
			return nil
		}
		return []frame{{mode: modeCollect, node: e.Dest, traversed: traversed, edges: []EdgeID{edgeID}}}
	default:
		nextEdge, ok := a.getTo(e.Dest, needle[len(traversed)])
		if !ok {
			return nil
		}
		return []frame{{mode: modeDescend, node: e.Dest, traversed: traversed, edges: []EdgeID{nextEdge}}}
	}
}

// suffixCollect reports every sink recorded at the reached node,
// reconstructed from its own stored bytes, and recurses no further.
func (a *Automaton[V]) suffixCollect(edgeID EdgeID, e *Edge, f frame, emit emitFunc) []frame {
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
