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
	"encoding/binary"

	"github.com/dchest/siphash"
)

// dedupFilter is an approximate, open-addressed presence table keyed by
// siphash, used by traversers as a cheap pre-check before consulting the
// authoritative sorted result set (see spec.md §4.7/§4.11 and
// SPEC_FULL.md §4.11). Each slot holds one id's hash: "seen" is reported
// only when the slot holds this id's exact hash, and a later id that
// maps to the same slot overwrites it, so an id already seen can be
// reported as unseen. Either answer only decides whether the
// authoritative set is consulted early; that set always makes the
// actual accept/reject decision. Removing this filter changes no query
// result, only traversal cost.
type dedupFilter struct {
	k0, k1 uint64
	slots  []uint64
	hits   int
	misses int
}

func newDedupFilter() *dedupFilter {
	return &dedupFilter{
		k0:    0x9ae16a3b2f90404f,
		k1:    0xc2b2ae3d27d4eb4f,
		slots: make([]uint64, 1024),
	}
}

func (f *dedupFilter) maybeSeen(sinkID SinkID) bool {
	if f == nil {
		return false
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(sinkID))
	h := siphash.Hash(f.k0, f.k1, buf[:])
	slot := h % uint64(len(f.slots))
	seen := f.slots[slot] == h+1
	if seen {
		f.hits++
	} else {
		f.misses++
		f.slots[slot] = h + 1
	}
	return seen
}
