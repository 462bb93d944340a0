// Package basket encodes raw transactions into a fixed-width boolean
// presence matrix over the universe of distinct items.
//
// What:
//
//   - Transaction is an ordered list of item labels; duplicates within one
//     transaction collapse to presence/absence.
//   - Encode builds the sorted item universe and one boolean row per
//     transaction: matrix[t][i] = true iff item i occurs in transaction t.
//   - NewMatrix assembles a Matrix from pre-encoded rows under the same
//     contracts (sorted unique universe, rectangular rows).
//
// Why:
//
//   - Downstream mining needs a stable itemset identity: column order is
//     deterministic (lexicographic), so repeated calls with the same input
//     produce bit-identical matrices.
//   - The two-step shape (build universe, then build rows) keeps column
//     reindexing out of the picture entirely — there is none to hide.
//
// Complexity:
//
//   - Encode: O(T·L + U·log U) time, O(T·U) memory
//     (T transactions, L mean transaction length, U universe size).
//
// Errors:
//
//   - ErrBlankItem: an item label is empty after trimming.
//   - ErrRaggedRow: a pre-encoded row does not match the universe width.
//   - ErrUniverseOrder: a pre-encoded universe is not strictly sorted.
//
// Empty input is valid: zero transactions yield a zero-column Matrix and
// downstream mining yields zero itemsets, not an error.
package basket
