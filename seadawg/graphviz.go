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
	"io"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/exp/slices"
)

// WriteGraphviz renders the automaton's nodes, transitions and suffix
// links as a Graphviz .dot document. Transitions are labelled with the
// byte span they reference; suffix links are drawn as dashed edges.
// Adapted from the teacher's regexp2.Graphviz, generalized from NFA
// states to CDAWG nodes/edges/suffix links.
func (a *Automaton[V]) WriteGraphviz(w io.Writer) error {
	var nodeLines, edgeLines []string

	for id := range a.nodes {
		n := &a.nodes[NodeID(id)]
		shape := "ellipse"
		if n.SinkSet.len() > 0 {
			shape = "doublecircle"
		}
		if NodeID(id) == SourceID {
			shape = "octagon"
		}
		nodeLines = append(nodeLines, fmt.Sprintf("\tn%d [shape=%s,label=\"%d (len=%d, sinks=%d)\"];\n",
			id, shape, id, n.Length, n.SinkSet.len()))

		if n.SuffixLink != NodeID(id) {
			edgeLines = append(edgeLines, fmt.Sprintf("\tn%d -> n%d [style=dashed,color=gray];\n", id, n.SuffixLink))
		}
	}

	for state, adj := range a.adj {
		for _, be := range adj {
			e := &a.edges[be.edge]
			label := a.sinks[e.SinkRef].Bytes[e.Start : e.End+1]
			edgeLines = append(edgeLines, fmt.Sprintf("\tn%d -> n%d [label=%q];\n", state, e.Dest, label))
		}
	}

	if _, err := fmt.Fprintf(w, "digraph seadawg {\n\trankdir=LR;\n"); err != nil {
		return err
	}
	slices.Sort(nodeLines)
	for _, s := range nodeLines {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	slices.Sort(edgeLines)
	for _, s := range edgeLines {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\tlabelloc=\"t\";\n\tlabel=\"%s\";\n}\n", a.ID)
	return err
}

// DumpGraphvizGzip writes the same document as WriteGraphviz through a
// gzip compressor, for compact on-disk diagnostic dumps.
func (a *Automaton[V]) DumpGraphvizGzip(w io.Writer) error {
	gw := gzip.NewWriter(w)
	if err := a.WriteGraphviz(gw); err != nil {
		gw.Close()
		return err
	}
	return gw.Close()
}
