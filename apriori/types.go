package apriori

import (
	"errors"
	"math"
	"sort"
	"strings"
)

var (
	// ErrNilMatrix indicates Mine received a nil matrix.
	ErrNilMatrix = errors.New("apriori: nil matrix")
	// ErrSupportRange indicates a support value outside (0,1].
	ErrSupportRange = errors.New("apriori: support must lie in (0,1]")
	// ErrMaxLen indicates a negative MaxLen.
	ErrMaxLen = errors.New("apriori: max itemset length must be non-negative")
	// ErrEmptyItemset indicates a precomputed itemset with no items.
	ErrEmptyItemset = errors.New("apriori: itemset must contain at least one item")
)

// Options configures Mine.
//
// Fields:
//   - MinSupport — inclusive frequency threshold in (0,1]; an itemset with
//     support exactly equal to MinSupport is kept.
//   - MaxLen     — largest itemset size to mine; 0 means unbounded
//     (bounded only by the universe size).
type Options struct {
	MinSupport float64
	MaxLen     int
}

// DefaultOptions returns the documented defaults: MinSupport 0.02
// (a sensible floor for retail-order data), MaxLen unbounded.
func DefaultOptions() Options {
	return Options{MinSupport: 0.02, MaxLen: 0}
}

// Itemset is one frequent itemset with its support.
// Items are sorted lexicographically; that ordering is the set's identity.
type Itemset struct {
	Items   []string
	Support float64
}

// Itemsets is the frequent-itemset collection produced by Mine.
//
// Iteration order is deterministic: ascending size, then lexicographic
// within a size. Lookup by itemset identity is O(1) via Support.
type Itemsets struct {
	sets    []Itemset
	support map[string]float64
}

// NewItemsets assembles a collection from precomputed itemsets, for
// callers that obtained supports elsewhere (tests, imports of earlier
// runs). Each support must lie in (0,1] (ErrSupportRange); blank item
// lists are rejected the same way Mine could never produce them.
//
// NewItemsets does NOT verify downward closure: a hand-built collection
// missing subset supports will surface as ErrMissingSupport downstream.
func NewItemsets(sets []Itemset) (*Itemsets, error) {
	out := &Itemsets{support: make(map[string]float64, len(sets))}
	for _, set := range sets {
		if len(set.Items) == 0 {
			return nil, ErrEmptyItemset
		}
		if math.IsNaN(set.Support) || set.Support <= 0 || set.Support > 1 {
			return nil, ErrSupportRange
		}
		items := make([]string, len(set.Items))
		copy(items, set.Items)
		sort.Strings(items)
		out.sets = append(out.sets, Itemset{Items: items, Support: set.Support})
		out.support[Key(items)] = set.Support
	}

	return out, nil
}

// Len returns the number of frequent itemsets.
func (s *Itemsets) Len() int { return len(s.sets) }

// MaxSize returns the size of the largest frequent itemset (0 when empty).
func (s *Itemsets) MaxSize() int {
	max := 0
	for _, set := range s.sets {
		if len(set.Items) > max {
			max = len(set.Items)
		}
	}

	return max
}

// All returns every frequent itemset in deterministic order.
// The returned slices are copies; callers may mutate them freely.
func (s *Itemsets) All() []Itemset {
	out := make([]Itemset, len(s.sets))
	for i, set := range s.sets {
		items := make([]string, len(set.Items))
		copy(items, set.Items)
		out[i] = Itemset{Items: items, Support: set.Support}
	}

	return out
}

// BySize returns the frequent itemsets of exactly size k, in
// lexicographic order. Empty slice when the level is empty.
func (s *Itemsets) BySize(k int) []Itemset {
	var out []Itemset
	for _, set := range s.sets {
		if len(set.Items) != k {
			continue
		}
		items := make([]string, len(set.Items))
		copy(items, set.Items)
		out = append(out, Itemset{Items: items, Support: set.Support})
	}

	return out
}

// Support returns the mined support of the given itemset and whether the
// itemset is frequent. Item order in the argument is irrelevant.
func (s *Itemsets) Support(items []string) (float64, bool) {
	sup, ok := s.support[Key(items)]

	return sup, ok
}

// Key returns the canonical identity of an itemset: its items sorted
// lexicographically and joined by a separator that cannot occur in a
// sane item label (ASCII unit separator).
func Key(items []string) string {
	sorted := make([]string, len(items))
	copy(sorted, items)
	sort.Strings(sorted)

	return strings.Join(sorted, "\x1f")
}
