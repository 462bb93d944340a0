package apriori

import (
	"math"

	"github.com/katalvlaran/apriori/basket"
)

// Mine enumerates every itemset whose support meets opts.MinSupport.
//
// Contracts:
//   - m must be non-nil; a zero-row or zero-column matrix is valid and
//     yields an empty collection, never an error.
//   - opts may be nil, in which case DefaultOptions apply.
//   - MinSupport must lie in (0,1] (ErrSupportRange); MaxLen must be ≥ 0
//     (ErrMaxLen). Validation happens before any work; no partial result
//     is ever returned.
//
// The result satisfies downward closure: every non-empty subset of a
// returned itemset is itself present with support at least as large.
//
// Complexity: see package documentation; bounded because itemset size is
// capped by the universe, so Mine always terminates.
func Mine(m *basket.Matrix, opts *Options) (*Itemsets, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if math.IsNaN(o.MinSupport) || o.MinSupport <= 0 || o.MinSupport > 1 {
		return nil, ErrSupportRange
	}
	if o.MaxLen < 0 {
		return nil, ErrMaxLen
	}

	out := &Itemsets{support: make(map[string]float64)}

	total := m.Rows()
	if total == 0 || m.Columns() == 0 {
		return out, nil
	}

	// Level 1: single columns. Column order is already lexicographic.
	var level [][]int
	for col := 0; col < m.Columns(); col++ {
		set := []int{col}
		sup := support(m, set, total)
		if sup >= o.MinSupport {
			level = append(level, set)
			out.add(m, set, sup)
		}
	}

	// Levels 2..k: join, prune, count, retain.
	maxLen := m.Columns()
	if o.MaxLen > 0 && o.MaxLen < maxLen {
		maxLen = o.MaxLen
	}
	for k := 2; k <= maxLen && len(level) > 1; k++ {
		prev := make(map[string]struct{}, len(level))
		for _, set := range level {
			prev[indexKey(set)] = struct{}{}
		}

		var next [][]int
		for _, cand := range prune(join(level), prev) {
			sup := support(m, cand, total)
			if sup >= o.MinSupport {
				next = append(next, cand)
				out.add(m, cand, sup)
			}
		}
		level = next
	}

	return out, nil
}

// support counts the rows containing every column of set and returns the
// ratio over total. One full matrix scan per candidate.
func support(m *basket.Matrix, set []int, total int) float64 {
	count := 0
	for t := 0; t < total; t++ {
		all := true
		for _, col := range set {
			if !m.Presence(t, col) {
				all = false

				break
			}
		}
		if all {
			count++
		}
	}

	return float64(count) / float64(total)
}

// add records a frequent column set under its item-label identity.
func (s *Itemsets) add(m *basket.Matrix, set []int, sup float64) {
	items := make([]string, len(set))
	for i, col := range set {
		items[i] = m.Item(col)
	}
	s.sets = append(s.sets, Itemset{Items: items, Support: sup})
	s.support[Key(items)] = sup
}
