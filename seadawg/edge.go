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

// Edge is a compacted transition: it carries no copy of its label bytes,
// only a reference (SinkRef, Start, End) into that sink's stored bytes.
// End is inclusive, matching spec.md §3's edge-span convention.
type Edge struct {
	ID      EdgeID
	Dest    NodeID
	SinkRef SinkID
	Start   StrIdx
	End     StrIdx
}

// length reports the number of bytes this edge's label spans.
func (e *Edge) length() StrIdx {
	return e.End - e.Start + 1
}
