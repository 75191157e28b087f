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
	"math/rand"
	"sort"
	"strings"
	"testing"
)

func addAll(t *testing.T, a *Automaton[string], words ...string) map[string]SinkID {
	t.Helper()
	ids := make(map[string]SinkID, len(words))
	for _, w := range words {
		id, err := a.Add([]byte(w), w)
		if err != nil {
			t.Fatalf("Add(%q): %v", w, err)
		}
		ids[w] = id
	}
	return ids
}

func sinkIDsOf(t *testing.T, a *Automaton[string], results []QueryResult) []string {
	t.Helper()
	out := make([]string, len(results))
	for i, r := range results {
		rec, ok := a.GetSink(r.SinkID)
		if !ok {
			t.Fatalf("GetSink(%d): not found", r.SinkID)
		}
		out[i] = string(rec.Bytes)
	}
	return out
}

// S1: cocoa/cola/coa share the "co" prefix and the "oa" suffix.
func TestScenarioS1(t *testing.T) {
	a := New[string](DefaultConfig())
	ids := addAll(t, a, "cocoa", "cola", "coa")

	got, ok := a.FindExact([]byte("coa"))
	if !ok || got != ids["coa"] {
		t.Fatalf("FindExact(coa) = (%d, %v), want (%d, true)", got, ok, ids["coa"])
	}

	suffixOA := sinkIDsOf(t, a, a.FindWithSuffix([]byte("oa")))
	sort.Strings(suffixOA)
	if want := []string{"coa", "cocoa"}; !equalStrSlices(suffixOA, want) {
		t.Errorf("FindWithSuffix(oa) = %v, want %v", suffixOA, want)
	}

	substringCO := sinkIDsOf(t, a, a.FindWithSubstring([]byte("co")))
	sort.Strings(substringCO)
	if want := []string{"cocoa", "cola"}; !equalStrSlices(substringCO, want) {
		t.Errorf("FindWithSubstring(co) = %v, want %v", substringCO, want)
	}

	prefixCO := sinkIDsOf(t, a, a.FindWithPrefix([]byte("co")))
	sort.Strings(prefixCO)
	if want := []string{"coa", "cocoa", "cola"}; !equalStrSlices(prefixCO, want) {
		t.Errorf("FindWithPrefix(co) = %v, want %v", prefixCO, want)
	}
}

// S2: "lol" is stored whole; none of its proper factors are stored strings.
func TestScenarioS2(t *testing.T) {
	a := New[string](DefaultConfig())
	addAll(t, a, "lol")

	if _, ok := a.FindExact([]byte("lol")); !ok {
		t.Error("FindExact(lol) = not found, want found")
	}
	for _, needle := range []string{"lo", "ol", "l"} {
		if _, ok := a.FindExact([]byte(needle)); ok {
			t.Errorf("FindExact(%q) = found, want not found", needle)
		}
	}
}

func TestScenarioS3(t *testing.T) {
	a := New[string](DefaultConfig())
	addAll(t, a, "lol", "ol1", "lo2")

	cases := []struct {
		suffix string
		want   []string
	}{
		{"l", []string{"lol"}},
		{"ol", []string{"lol"}},
		{"l1", []string{"ol1"}},
		{"ol1", []string{"ol1"}},
	}
	for _, c := range cases {
		got := sinkIDsOf(t, a, a.FindWithSuffix([]byte(c.suffix)))
		sort.Strings(got)
		if !equalStrSlices(got, c.want) {
			t.Errorf("FindWithSuffix(%q) = %v, want %v", c.suffix, got, c.want)
		}
	}
}

// S4: every added random string round-trips through FindExact.
func TestScenarioS4RandomRoundTrip(t *testing.T) {
	a := New[string](DefaultConfig())
	rng := rand.New(rand.NewSource(1))
	words := randomStrings(rng, 10, 10, 128)

	for _, w := range words {
		if _, err := a.Add([]byte(w), w); err != nil {
			t.Fatalf("Add(%q): %v", w, err)
		}
	}
	for _, w := range words {
		id, ok := a.FindExact([]byte(w))
		if !ok {
			t.Fatalf("FindExact(%q) = not found", w)
		}
		rec, ok := a.GetSink(id)
		if !ok || string(rec.Bytes) != w {
			t.Fatalf("GetSink(%d) = (%q, %v), want (%q, true)", id, rec.Bytes, ok, w)
		}
	}
}

// S5: prefix query result counts match brute force over random needles
// drawn as slices of the added strings.
func TestScenarioS5PrefixCountMatchesBruteForce(t *testing.T) {
	a := New[string](DefaultConfig())
	rng := rand.New(rand.NewSource(2))
	words := randomStrings(rng, 12, 10, 64)
	for _, w := range words {
		if _, err := a.Add([]byte(w), w); err != nil {
			t.Fatalf("Add(%q): %v", w, err)
		}
	}

	for i := 0; i < 20; i++ {
		w := words[rng.Intn(len(words))]
		cut := 1 + rng.Intn(len(w))
		needle := w[:cut]

		want := 0
		for _, s := range words {
			if strings.HasPrefix(s, needle) {
				want++
			}
		}

		got := a.FindWithPrefix([]byte(needle))
		if len(got) != want {
			t.Errorf("FindWithPrefix(%q): got %d results, want %d (brute force)", needle, len(got), want)
		}
	}
}

// S6: a shorter string added after a longer one that contains it must
// still be found independently, with no duplicate ids in either result.
func TestScenarioS6ShorterAfterLonger(t *testing.T) {
	a := New[string](DefaultConfig())
	ids := addAll(t, a, "aaaa", "aa")

	suffix := a.FindWithSuffix([]byte("aa"))
	assertNoDuplicates(t, suffix)
	gotSuffix := sinkIDsOf(t, a, suffix)
	sort.Strings(gotSuffix)
	if want := []string{"aa", "aaaa"}; !equalStrSlices(gotSuffix, want) {
		t.Errorf("FindWithSuffix(aa) = %v, want %v", gotSuffix, want)
	}

	prefix := a.FindWithPrefix([]byte("a"))
	assertNoDuplicates(t, prefix)
	gotPrefix := sinkIDsOf(t, a, prefix)
	sort.Strings(gotPrefix)
	if want := []string{"aa", "aaaa"}; !equalStrSlices(gotPrefix, want) {
		t.Errorf("FindWithPrefix(a) = %v, want %v", gotPrefix, want)
	}

	if _, ok := ids["aaaa"]; !ok {
		t.Fatal("missing sink id for aaaa")
	}
}

func TestFindExactEmptyNeedle(t *testing.T) {
	a := New[string](DefaultConfig())
	addAll(t, a, "x")
	if _, ok := a.FindExact(nil); ok {
		t.Error("FindExact(nil) = found, want not found")
	}
}

func TestRangeQueriesEmptyNeedle(t *testing.T) {
	a := New[string](DefaultConfig())
	addAll(t, a, "abc")
	if got := a.FindWithPrefix(nil); got != nil {
		t.Errorf("FindWithPrefix(nil) = %v, want nil", got)
	}
	if got := a.FindWithSuffix(nil); got != nil {
		t.Errorf("FindWithSuffix(nil) = %v, want nil", got)
	}
	if got := a.FindWithSubstring(nil); got != nil {
		t.Errorf("FindWithSubstring(nil) = %v, want nil", got)
	}
}

func TestRepeatedStringGetsTwoSinkIDs(t *testing.T) {
	a := New[string](DefaultConfig())
	id1, err := a.Add([]byte("repeat"), "first")
	if err != nil {
		t.Fatal(err)
	}
	id2, err := a.Add([]byte("repeat"), "second")
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id2 {
		t.Fatalf("two Add calls for the same bytes returned the same sink id %d", id1)
	}

	got := a.FindWithPrefix([]byte("repeat"))
	assertNoDuplicates(t, got)
	if len(got) != 2 {
		t.Fatalf("FindWithPrefix(repeat) = %d results, want 2", len(got))
	}
}

// Invariant 1 (determinism) and invariant 2 (edge-label well-formedness).
func TestInvariantDeterminismAndEdgeWellFormedness(t *testing.T) {
	a := New[string](DefaultConfig())
	addAll(t, a, "banana", "bandana", "ban", "andante")

	for state, adj := range a.adj {
		seen := map[byte]bool{}
		for _, be := range adj {
			if seen[be.key] {
				t.Fatalf("node %d has two edges keyed on byte %#x", state, be.key)
			}
			seen[be.key] = true

			e := a.edges[be.edge]
			sinkBytes := a.sinks[e.SinkRef].Bytes
			if e.Start < 0 || e.Start > e.End || int(e.End) >= len(sinkBytes) {
				t.Fatalf("edge %d has malformed span [%d,%d] into sink of length %d", e.ID, e.Start, e.End, len(sinkBytes))
			}
			if sinkBytes[e.Start] != be.key {
				t.Fatalf("edge %d filed under byte %#x but labels with %#x", e.ID, be.key, sinkBytes[e.Start])
			}
		}
	}
}

// Invariant 3: suffix links from any non-root state terminate at
// SourceID with strictly decreasing length.
func TestInvariantSuffixLinkChainTerminates(t *testing.T) {
	a := New[string](DefaultConfig())
	addAll(t, a, "abcabcabc", "bcabc", "xyzabc")

	for id := range a.nodes {
		n := NodeID(id)
		if n == RootID {
			continue
		}
		prevLength := a.length(n)
		cur := n
		steps := 0
		for cur != SourceID {
			next := a.nodes[cur].SuffixLink
			if next == cur {
				t.Fatalf("node %d suffix-links to itself", cur)
			}
			if next != RootID && a.length(next) >= prevLength {
				t.Fatalf("suffix-link chain from %d: length did not decrease at node %d (%d -> %d)", n, next, prevLength, a.length(next))
			}
			prevLength = a.length(next)
			cur = next
			steps++
			if steps > len(a.nodes)+2 {
				t.Fatalf("suffix-link chain from node %d did not terminate at SourceID", n)
			}
		}
	}
}

// Invariant 9: range query results are sorted by sink id with no
// duplicates.
func TestInvariantResultOrdering(t *testing.T) {
	a := New[string](DefaultConfig())
	addAll(t, a, "mississippi", "ississippi", "ississippi", "sissippi", "issippi")

	for _, results := range [][]QueryResult{
		a.FindWithPrefix([]byte("i")),
		a.FindWithSuffix([]byte("i")),
		a.FindWithSubstring([]byte("ssi")),
	} {
		assertNoDuplicates(t, results)
		for i := 1; i < len(results); i++ {
			if results[i-1].SinkID >= results[i].SinkID {
				t.Fatalf("results not strictly ascending by sink id: %v", results)
			}
		}
	}
}

// Invariant 10: the sink count tracks the number of completed Add calls.
func TestInvariantCounterConsistency(t *testing.T) {
	a := New[string](DefaultConfig())
	words := []string{"one", "two", "three", "four"}
	for i, w := range words {
		if _, err := a.Add([]byte(w), w); err != nil {
			t.Fatal(err)
		}
		if got := a.Stats().Sinks; got != i+1 {
			t.Fatalf("after %d adds, Stats().Sinks = %d, want %d", i+1, got, i+1)
		}
	}
}

func TestAddRejectsOversizeString(t *testing.T) {
	a := New[string](Config{MaxStringLength: 4})
	if _, err := a.Add([]byte("toolong"), "v"); err == nil {
		t.Fatal("Add with an over-limit string returned no error")
	}
	if _, err := a.Add([]byte("ok"), "v"); err != nil {
		t.Fatalf("Add within limit: %v", err)
	}
}

func equalStrSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func assertNoDuplicates(t *testing.T, results []QueryResult) {
	t.Helper()
	seen := map[SinkID]bool{}
	for _, r := range results {
		if seen[r.SinkID] {
			t.Fatalf("duplicate sink id %d in results: %v", r.SinkID, results)
		}
		seen[r.SinkID] = true
	}
}

func randomStrings(rng *rand.Rand, n, minLen, maxLen int) []string {
	const alphabet = "abcdefghij"
	out := make([]string, n)
	for i := range out {
		length := minLen + rng.Intn(maxLen-minLen+1)
		var sb strings.Builder
		for j := 0; j < length; j++ {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		out[i] = sb.String()
	}
	return out
}
