// Package rules derives association rules from a frequent-itemset
// collection and scores them with the standard interestingness metrics.
//
// What:
//
//   - Generate enumerates, for every frequent itemset I with |I| ≥ 2,
//     every nonempty proper subset A ⊂ I as antecedent with consequent
//     I \ A, and keeps the rule when the selected metric clears
//     MinThreshold (inclusive).
//   - Every rule reports support, confidence, lift, leverage and
//     conviction regardless of which metric gates inclusion.
//
// Why:
//
//   - Confidence answers "how often does A imply C", lift corrects that
//     for C's base rate, leverage and conviction round out the picture —
//     the same five columns the mlxtend-style tooling reports.
//   - Brute-force subset enumeration is deliberate: frequent itemsets
//     are small in practice, and an explicit bitmask walk keeps the
//     split step trivially auditable. The confidence anti-monotone
//     shortcut is a performance option, not a correctness requirement.
//
// Metric definitions, for I = A ∪ C:
//
//	support    = support(I)
//	confidence = support(I) / support(A)
//	lift       = confidence / support(C)
//	leverage   = support(I) − support(A)·support(C)
//	conviction = (1 − support(C)) / (1 − confidence)   (+Inf at confidence 1)
//
// Division by zero cannot occur for miner-produced input: A ⊆ I and C ⊆ I,
// so support(A) ≥ support(I) > 0 by downward closure. A hand-built
// collection missing a subset support surfaces ErrMissingSupport instead.
//
// Complexity:
//
//   - O(Σ_I 2^|I|) splits; each split is O(|I|) plus two O(1) lookups.
//
// Errors:
//
//   - ErrNilItemsets: Generate received a nil collection.
//   - ErrThresholdRange: MinThreshold outside the metric's valid range.
//   - ErrUnknownMetric: unrecognized Metric value.
//   - ErrMissingSupport: a subset's support is absent from the collection.
//
// Output order is deterministic but unspecified; callers sort for display
// with Sort (the bundled descending-by-metric helper).
package rules
