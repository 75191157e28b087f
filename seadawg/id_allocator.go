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

import "math"

// idAllocator hands out dense, monotonically increasing uint32 ids,
// reusing the smallest freed id before minting a new one. There is no
// id reclamation path reachable from Add (deletion is out of scope), but
// the allocator still tracks a freed set so the arena layout documented
// in spec.md §4.1 holds regardless of future callers.
type idAllocator struct {
	nextID uint32
	freed  bitSet
}

func newIDAllocator(start uint32) *idAllocator {
	return &idAllocator{nextID: start}
}

// next returns the next id to use: the smallest freed id if one exists,
// otherwise a fresh id from the monotonic counter. Panics if the id
// space is exhausted, matching the teacher's "invariant violation is
// fatal" idiom (see lib.Map.go's at()).
func (a *idAllocator) next() uint32 {
	if id, ok := a.freed.min(); ok {
		a.freed.remove(id)
		return uint32(id)
	}
	if a.nextID == math.MaxUint32 {
		panic("seadawg: id space exhausted")
	}
	id := a.nextID
	a.nextID++
	return id
}

// free returns id to the pool for reuse by a later next() call.
func (a *idAllocator) free(id uint32) {
	a.freed.insert(int(id))
}
