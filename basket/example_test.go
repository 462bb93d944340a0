package basket_test

import (
	"fmt"

	"github.com/katalvlaran/apriori/basket"
)

// ExampleEncode encodes three coffee orders and prints the resulting
// universe and presence rows. Column order is always lexicographic.
func ExampleEncode() {
	txs := []basket.Transaction{
		{"latte", "cortado"},
		{"americano"},
		{"cortado", "cortado"}, // duplicates collapse
	}

	m, _ := basket.Encode(txs)

	fmt.Println(m.Universe())
	for t := 0; t < m.Rows(); t++ {
		row := make([]int, m.Columns())
		for c := 0; c < m.Columns(); c++ {
			if m.Presence(t, c) {
				row[c] = 1
			}
		}
		fmt.Println(row)
	}
	// Output:
	// [americano cortado latte]
	// [0 1 1]
	// [1 0 0]
	// [0 1 0]
}
