// Package apriori mines frequent itemsets from a boolean presence matrix
// using the classic level-wise Apriori algorithm.
//
// What:
//
//   - Mine enumerates every itemset whose support meets MinSupport,
//     level by level: L1 from single columns, then Lk from joined and
//     pruned L(k-1) candidates until a level comes up empty.
//   - Itemsets is the resulting collection: deterministic order, O(1)
//     support lookup by itemset identity, size-indexed access.
//
// Why:
//
//   - Downward closure (an infrequent subset dooms every superset) lets
//     the miner discard candidates before ever counting them, which is
//     where Apriori earns its keep on combinatorial input.
//   - Candidate join and subset pruning are separate named steps so each
//     is independently testable and tunable.
//
// Algorithm Outline:
//  1. Count every single column; keep those with support ≥ MinSupport as L1.
//  2. Join pairs of L(k-1) itemsets sharing their first k-2 items
//     (lexicographic prefix join) into size-k candidates.
//  3. Prune candidates owning any (k-1)-subset absent from L(k-1).
//  4. Count survivors against the matrix; keep those ≥ MinSupport as Lk.
//  5. Stop when Lk is empty, k exceeds the universe, or k exceeds MaxLen.
//
// Numeric semantics: support is a ratio over the total transaction count;
// comparison against MinSupport is inclusive (≥, not >).
//
// Complexity:
//
//   - O(Σ_k |C_k|·T·k) time where C_k is the surviving candidate set of
//     level k and T the transaction count; memory O(Σ_k |L_k|·k).
//
// Errors:
//
//   - ErrNilMatrix: Mine received a nil matrix.
//   - ErrSupportRange: MinSupport outside the half-open interval (0,1].
//   - ErrMaxLen: negative MaxLen.
//
// The miner is purely functional: no shared state between invocations,
// safe to call concurrently as long as each call owns its inputs.
package apriori
