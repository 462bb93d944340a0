package rules

import (
	"math"
	"sort"

	"github.com/katalvlaran/apriori/apriori"
)

// Generate derives every association rule whose selected metric meets
// opts.MinThreshold from the frequent itemsets in fi.
//
// Contracts:
//   - fi must be non-nil; an empty collection yields an empty slice.
//   - opts may be nil (DefaultOptions apply).
//   - Validation happens before any work; no partial result on error.
//   - Size-1 itemsets produce no rules: they cannot split into a
//     non-empty antecedent and consequent.
//
// Output order is deterministic for identical input (collection order ×
// ascending bitmask), but carries no semantic meaning; use Sort for display.
func Generate(fi *apriori.Itemsets, opts *Options) ([]Rule, error) {
	if fi == nil {
		return nil, ErrNilItemsets
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(o); err != nil {
		return nil, err
	}

	out := make([]Rule, 0)
	for _, set := range fi.All() {
		n := len(set.Items)
		if n < 2 {
			continue
		}

		// Every nonempty proper subset of set.Items as antecedent.
		for mask := 1; mask < (1<<n)-1; mask++ {
			ant, con := split(set.Items, mask)

			supA, ok := fi.Support(ant)
			if !ok {
				return nil, ErrMissingSupport
			}
			supC, ok := fi.Support(con)
			if !ok {
				return nil, ErrMissingSupport
			}

			r := score(set.Support, supA, supC, ant, con)
			if r.Value(o.Metric) >= o.MinThreshold {
				out = append(out, r)
			}
		}
	}

	return out, nil
}

// validate rejects unknown metrics and out-of-range thresholds.
func validate(o Options) error {
	switch o.Metric {
	case Confidence, Support:
		if math.IsNaN(o.MinThreshold) || o.MinThreshold <= 0 || o.MinThreshold > 1 {
			return ErrThresholdRange
		}
	case Lift:
		if math.IsNaN(o.MinThreshold) || o.MinThreshold <= 0 || math.IsInf(o.MinThreshold, 0) {
			return ErrThresholdRange
		}
	default:
		return ErrUnknownMetric
	}

	return nil
}

// score computes the full metric set for one antecedent→consequent split.
func score(supI, supA, supC float64, ant, con []string) Rule {
	conf := supI / supA
	conviction := math.Inf(1)
	if conf < 1 {
		conviction = (1 - supC) / (1 - conf)
	}

	return Rule{
		Antecedent: ant,
		Consequent: con,
		Support:    supI,
		Confidence: conf,
		Lift:       conf / supC,
		Leverage:   supI - supA*supC,
		Conviction: conviction,
	}
}

// split partitions items by bitmask: set bits form the antecedent, clear
// bits the consequent. items is sorted, so both halves stay sorted.
func split(items []string, mask int) (ant, con []string) {
	for i, item := range items {
		if mask&(1<<i) != 0 {
			ant = append(ant, item)
		} else {
			con = append(con, item)
		}
	}

	return ant, con
}

// Sort orders rs descending by metric, in place. Ties break on the
// antecedent then consequent labels, ascending, so the order is total
// and reproducible — the display ordering the callers rely on.
func Sort(rs []Rule, m Metric) {
	sort.SliceStable(rs, func(i, j int) bool {
		vi, vj := rs[i].Value(m), rs[j].Value(m)
		if vi != vj {
			return vi > vj
		}
		if si, sj := labelKey(rs[i].Antecedent), labelKey(rs[j].Antecedent); si != sj {
			return si < sj
		}

		return labelKey(rs[i].Consequent) < labelKey(rs[j].Consequent)
	})
}

// labelKey flattens a sorted item list into one comparable string.
func labelKey(items []string) string {
	return apriori.Key(items)
}
