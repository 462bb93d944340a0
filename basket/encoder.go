package basket

import (
	"sort"
	"strings"
)

// Encode converts txs into a boolean presence Matrix.
//
// Algorithm Outline:
//  1. Scan all transactions once, collecting distinct item labels.
//  2. Sort the labels lexicographically — this fixes the column order.
//  3. Scan again, setting matrix[t][i] for every item of transaction t.
//
// Contracts:
//   - txs may be empty (valid: zero-column Matrix) and individual
//     transactions may be empty (valid: all-false row).
//   - Item labels must be non-blank; ErrBlankItem otherwise.
//   - Duplicate items inside one transaction collapse to a single true cell.
//   - Pure function: no side effects, identical input ⇒ bit-identical output.
//
// Complexity: O(T·L + U·log U) time, O(T·U) memory.
func Encode(txs []Transaction) (*Matrix, error) {
	// Pass 1: distinct labels.
	seen := make(map[string]struct{})
	for _, tx := range txs {
		for _, item := range tx {
			if strings.TrimSpace(item) == "" {
				return nil, ErrBlankItem
			}
			seen[item] = struct{}{}
		}
	}

	// Fix the column order.
	universe := make([]string, 0, len(seen))
	for item := range seen {
		universe = append(universe, item)
	}
	sort.Strings(universe)

	index := make(map[string]int, len(universe))
	for col, item := range universe {
		index[item] = col
	}

	// Pass 2: presence rows.
	rows := make([][]bool, len(txs))
	for t, tx := range txs {
		row := make([]bool, len(universe))
		for _, item := range tx {
			row[index[item]] = true
		}
		rows[t] = row
	}

	return &Matrix{universe: universe, index: index, rows: rows}, nil
}

// NewMatrix assembles a Matrix from an already-encoded universe and rows,
// for callers that produce presence data by other means (tests, imports).
//
// Contracts:
//   - universe must be strictly ascending and free of blanks/duplicates;
//     ErrUniverseOrder / ErrBlankItem otherwise.
//   - every row must have exactly len(universe) cells; ErrRaggedRow otherwise.
//   - inputs are copied; the caller keeps ownership of its slices.
func NewMatrix(universe []string, rows [][]bool) (*Matrix, error) {
	for i, item := range universe {
		if strings.TrimSpace(item) == "" {
			return nil, ErrBlankItem
		}
		if i > 0 && universe[i-1] >= item {
			return nil, ErrUniverseOrder
		}
	}

	u := make([]string, len(universe))
	copy(u, universe)

	index := make(map[string]int, len(u))
	for col, item := range u {
		index[item] = col
	}

	rs := make([][]bool, len(rows))
	for t, row := range rows {
		if len(row) != len(u) {
			return nil, ErrRaggedRow
		}
		rs[t] = make([]bool, len(u))
		copy(rs[t], row)
	}

	return &Matrix{universe: u, index: index, rows: rs}, nil
}
