package rules

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilItemsets indicates Generate received a nil collection.
	ErrNilItemsets = errors.New("rules: nil itemset collection")
	// ErrThresholdRange indicates MinThreshold outside the metric's valid range.
	ErrThresholdRange = errors.New("rules: threshold outside metric range")
	// ErrUnknownMetric indicates an unrecognized Metric value.
	ErrUnknownMetric = errors.New("rules: unknown metric")
	// ErrMissingSupport indicates a subset support absent from the collection;
	// cannot occur for miner-produced input (downward closure).
	ErrMissingSupport = errors.New("rules: itemset subset support missing from collection")
)

// Metric selects which measure gates rule inclusion.
type Metric int

const (
	// Confidence gates on support(I)/support(A); threshold range (0,1].
	Confidence Metric = iota
	// Lift gates on confidence/support(C); threshold must be positive
	// (lift is unbounded above 1).
	Lift
	// Support gates on support(I); threshold range (0,1].
	Support
)

// String returns the metric's display name.
func (m Metric) String() string {
	switch m {
	case Confidence:
		return "confidence"
	case Lift:
		return "lift"
	case Support:
		return "support"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// Options configures Generate.
//
// Fields:
//   - Metric       — which measure gates inclusion; Confidence by default.
//   - MinThreshold — inclusive lower bound for the selected metric.
type Options struct {
	Metric       Metric
	MinThreshold float64
}

// DefaultOptions returns the documented defaults: Confidence ≥ 0.4.
func DefaultOptions() Options {
	return Options{Metric: Confidence, MinThreshold: 0.4}
}

// Rule is one antecedent→consequent association with its metrics.
// Antecedent and Consequent are disjoint, non-empty, lexicographically
// sorted item lists drawn from the same frequent itemset.
type Rule struct {
	Antecedent []string
	Consequent []string

	Support    float64 // support of the union itemset
	Confidence float64
	Lift       float64
	Leverage   float64
	Conviction float64 // +Inf when confidence is exactly 1
}

// Value returns the rule's score under the given metric.
// Unknown metrics return NaN-free zero; Generate rejects them upfront.
func (r Rule) Value(m Metric) float64 {
	switch m {
	case Confidence:
		return r.Confidence
	case Lift:
		return r.Lift
	case Support:
		return r.Support
	default:
		return 0
	}
}

// String renders the rule as "a, b → c".
func (r Rule) String() string {
	return strings.Join(r.Antecedent, ", ") + " → " + strings.Join(r.Consequent, ", ")
}
