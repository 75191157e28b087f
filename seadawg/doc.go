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

/*
Package seadawg implements an online Compact Directed Acyclic Word Graph
(CDAWG) for incremental indexing and factor (substring) search over a
multi-string corpus.

Overview

Strings are ingested one at a time with Add, which extends a single
shared automaton in place using an online suffix-automaton construction
(Blumer/Crochemore/Inenaga family, generalized to many strings without
per-string terminators). After each Add, the automaton recognizes every
factor of every ingested string from its source state. Queries name the
matching stored strings by sink id:

  - FindExact reports whether a needle was ingested verbatim.
  - FindWithPrefix, FindWithSuffix and FindWithSubstring return the
    ordered, deduplicated set of stored strings that start with, end
    with, or contain a needle.

Design

The automaton is a cyclic graph of internal states linked by suffix
links, with transitions compacted to byte-range labels that reference
an ingested sink's bytes rather than copying them. Node identity is
separated from node storage: every node, edge and sink is addressed by
a dense 32-bit id into an arena, which sidesteps the ownership cycles a
native recursive/pointer representation would otherwise create. Query
execution walks the automaton with an explicit, iterative work-stack of
traversal frames rather than recursion, so that three different query
strategies (prefix, suffix, substring) can share one executor.

The engine is single-threaded and in-process: there is no I/O, no
concurrency control, and no persistence. Deletion is not implemented.
*/
package seadawg
