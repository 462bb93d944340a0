package apriori

import (
	"strconv"
	"strings"
)

// Candidate generation operates on sorted column-index sets rather than
// item labels: comparisons stay cheap and the lexicographic order of the
// universe carries over for free.

// indexKey builds a map key for a sorted column-index set.
func indexKey(set []int) string {
	var b strings.Builder
	for i, col := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(col))
	}

	return b.String()
}

// join merges pairs of size-(k-1) itemsets that share their first k-2
// indices into size-k candidates (the standard apriori-gen join step).
//
// Contracts:
//   - level is lexicographically sorted and each member is sorted ascending;
//     both hold for every level the miner produces.
//   - output preserves lexicographic order, so downstream levels keep the
//     contract without re-sorting.
//
// Complexity: O(P·k) where P is the number of prefix-sharing pairs.
func join(level [][]int) [][]int {
	var out [][]int
	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			a, b := level[i], level[j]
			if !samePrefix(a, b) {
				// Sorted input: once the prefix diverges, no later j matches either.
				break
			}
			cand := make([]int, len(a)+1)
			copy(cand, a)
			cand[len(a)] = b[len(b)-1]
			out = append(out, cand)
		}
	}

	return out
}

// samePrefix reports whether a and b agree on all but their last index.
func samePrefix(a, b []int) bool {
	for i := 0; i < len(a)-1; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// prune drops candidates owning any (k-1)-subset absent from the previous
// level — the downward-closure step. A pruned candidate is never
// support-counted at all.
//
// Complexity: O(|cands|·k²) subset probes.
func prune(cands [][]int, prev map[string]struct{}) [][]int {
	out := cands[:0]
	subset := make([]int, 0)
	for _, cand := range cands {
		keep := true
		for drop := range cand {
			subset = subset[:0]
			subset = append(subset, cand[:drop]...)
			subset = append(subset, cand[drop+1:]...)
			if _, ok := prev[indexKey(subset)]; !ok {
				keep = false

				break
			}
		}
		if keep {
			out = append(out, cand)
		}
	}

	return out
}
