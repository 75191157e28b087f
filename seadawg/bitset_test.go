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

import "testing"

func TestBitSetInsertContains(t *testing.T) {
	s := newBitSet()
	for _, e := range []int{0, 63, 64, 65, 200} {
		if s.contains(e) {
			t.Fatalf("contains(%d) = true before insert", e)
		}
		s.insert(e)
		if !s.contains(e) {
			t.Fatalf("contains(%d) = false after insert", e)
		}
	}
	if s.contains(66) {
		t.Error("contains(66) = true, want false")
	}
}

func TestBitSetRemove(t *testing.T) {
	s := newBitSet()
	s.insert(5)
	s.insert(130)
	s.remove(5)
	if s.contains(5) {
		t.Error("contains(5) = true after remove")
	}
	if !s.contains(130) {
		t.Error("contains(130) = false, removing 5 disturbed an unrelated word")
	}
}

func TestBitSetMin(t *testing.T) {
	s := newBitSet()
	if _, ok := s.min(); ok {
		t.Fatal("min() on empty set returned ok=true")
	}
	s.insert(70)
	s.insert(3)
	s.insert(200)
	got, ok := s.min()
	if !ok || got != 3 {
		t.Fatalf("min() = (%d, %v), want (3, true)", got, ok)
	}
	s.remove(3)
	got, ok = s.min()
	if !ok || got != 70 {
		t.Fatalf("min() after removing 3 = (%d, %v), want (70, true)", got, ok)
	}
}
