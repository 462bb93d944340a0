package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set"

	"github.com/katalvlaran/apriori/basket"
)

var (
	// ErrMissingColumn indicates a required CSV header is absent.
	ErrMissingColumn = errors.New("dataset: missing column")
	// ErrBadRecord indicates a record with a blank coffee label.
	ErrBadRecord = errors.New("dataset: blank coffee label")
)

// Required CSV columns, matched case-insensitively against the header.
const (
	colDate     = "date"
	colCashType = "cash_type"
	colCoffee   = "coffee_name"
)

// Order is one raw cafe-order record.
// Coffee is normalized: trimmed and lowercased.
type Order struct {
	Date     string
	CashType string
	Coffee   string
}

// Read parses the CSV at path into Order records.
//
// The first row must be a header containing date, cash_type and
// coffee_name (any order, any case, extra columns ignored). Item labels
// are trimmed and lowercased; a label that is blank after trimming
// fails with ErrBadRecord rather than silently producing a ghost item.
func Read(path string) ([]Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", ErrMissingColumn, path)
	}

	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var cols [3]int
	for i, name := range []string{colDate, colCashType, colCoffee} {
		col, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		cols[i] = col
	}

	orders := make([]Order, 0, len(rows)-1)
	for line, row := range rows[1:] {
		coffee := strings.ToLower(strings.TrimSpace(row[cols[2]]))
		if coffee == "" {
			return nil, fmt.Errorf("%w: line %d", ErrBadRecord, line+2)
		}
		orders = append(orders, Order{
			Date:     strings.TrimSpace(row[cols[0]]),
			CashType: strings.TrimSpace(row[cols[1]]),
			Coffee:   coffee,
		})
	}

	return orders, nil
}

// Transactions reduces orders to one basket per (date, cash_type) pair.
//
// Groups appear in first-seen order; items inside a group are
// deduplicated and sorted, so identical input yields identical output.
func Transactions(orders []Order) []basket.Transaction {
	groups := make(map[string]mapset.Set)
	var keys []string // first-seen group order

	for _, o := range orders {
		key := o.Date + "\x1f" + o.CashType
		set, ok := groups[key]
		if !ok {
			set = mapset.NewSet()
			groups[key] = set
			keys = append(keys, key)
		}
		set.Add(o.Coffee)
	}

	txs := make([]basket.Transaction, 0, len(keys))
	for _, key := range keys {
		members := groups[key].ToSlice()
		tx := make(basket.Transaction, 0, len(members))
		for _, m := range members {
			tx = append(tx, m.(string))
		}
		// Set iteration order is unspecified; sort for reproducibility.
		sort.Strings(tx)
		txs = append(txs, tx)
	}

	return txs
}

// Load reads the CSV at path and reduces it to transactions in one call.
func Load(path string) ([]basket.Transaction, error) {
	orders, err := Read(path)
	if err != nil {
		return nil, err
	}

	return Transactions(orders), nil
}

// ItemCount is one row of the item-frequency ranking.
type ItemCount struct {
	Item  string
	Count int
}

// TopItems ranks items by raw order count, descending, ties broken by
// label. n ≤ 0 or n beyond the distinct-item count returns every item.
func TopItems(orders []Order, n int) []ItemCount {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.Coffee]++
	}

	out := make([]ItemCount, 0, len(counts))
	for item, count := range counts {
		out = append(out, ItemCount{Item: item, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Item < out[j].Item
	})

	if n > 0 && n < len(out) {
		out = out[:n]
	}

	return out
}
