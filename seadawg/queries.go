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

// FindWithPrefix reports every stored string that begins with prefix,
// ordered by sink id. An empty prefix matches nothing, per spec.md §4.8.
func (a *Automaton[V]) FindWithPrefix(prefix []byte) []QueryResult {
	return a.runQuery(prefix, kindPrefix)
}

// FindWithSuffix reports every stored string that ends with suffix,
// ordered by sink id. An empty suffix matches nothing, per spec.md §4.8.
func (a *Automaton[V]) FindWithSuffix(suffix []byte) []QueryResult {
	return a.runQuery(suffix, kindSuffix)
}

// FindWithSubstring reports every stored string that contains needle
// anywhere within it, ordered by sink id. An empty needle matches
// nothing, per spec.md §4.8.
func (a *Automaton[V]) FindWithSubstring(needle []byte) []QueryResult {
	return a.runQuery(needle, kindSubstring)
}
