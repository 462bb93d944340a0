package basket

// Transaction is one basket of item labels, e.g. the coffees bought
// together in a single order. Order is irrelevant and duplicates are
// collapsed during encoding; Apriori is presence-based, not count-based.
type Transaction []string

// Matrix is the boolean presence encoding of a transaction list:
// one row per transaction, one column per distinct item.
//
// The column universe is strictly sorted (lexicographic), which makes
// itemset identity stable between the miner and the rule generator.
// A Matrix is immutable after construction and safe for concurrent reads.
type Matrix struct {
	universe []string       // column i ↔ universe[i], strictly ascending
	index    map[string]int // item → column
	rows     [][]bool       // rows[t][i] = item i present in transaction t
}

// Rows returns the number of encoded transactions.
func (m *Matrix) Rows() int { return len(m.rows) }

// Columns returns the universe size.
func (m *Matrix) Columns() int { return len(m.universe) }

// Universe returns a copy of the column universe in column order.
func (m *Matrix) Universe() []string {
	out := make([]string, len(m.universe))
	copy(out, m.universe)

	return out
}

// Item returns the label of column col. Panics on an out-of-range column,
// mirroring slice semantics (programmer error, not input error).
func (m *Matrix) Item(col int) string { return m.universe[col] }

// Column returns the column index of item and whether it exists.
func (m *Matrix) Column(item string) (int, bool) {
	col, ok := m.index[item]

	return col, ok
}

// Presence reports whether column col is set in row t.
func (m *Matrix) Presence(t, col int) bool { return m.rows[t][col] }

// Contains reports whether item occurs in transaction t; false for
// items outside the universe.
func (m *Matrix) Contains(t int, item string) bool {
	col, ok := m.index[item]
	if !ok {
		return false
	}

	return m.rows[t][col]
}
