package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/apriori/apriori"
	"github.com/katalvlaran/apriori/dataset"
	"github.com/katalvlaran/apriori/rules"
)

// Empty-state lines; shown instead of zero-row tables.
const (
	emptyItemsets = "no frequent itemsets at this support threshold"
	emptyRules    = "no association rules at this threshold"
	emptyOrders   = "no orders loaded"
)

// ItemsetTable renders the frequent itemsets sorted by support
// descending (ties: smaller sets first, then lexicographic).
func ItemsetTable(fi *apriori.Itemsets) string {
	if fi == nil || fi.Len() == 0 {
		return emptyItemsets
	}

	sets := fi.All()
	sort.SliceStable(sets, func(i, j int) bool {
		if sets[i].Support != sets[j].Support {
			return sets[i].Support > sets[j].Support
		}
		if len(sets[i].Items) != len(sets[j].Items) {
			return len(sets[i].Items) < len(sets[j].Items)
		}

		return apriori.Key(sets[i].Items) < apriori.Key(sets[j].Items)
	})

	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Itemset", "Support"})
	for i, set := range sets {
		t.AppendRow(table.Row{i + 1, strings.Join(set.Items, ", "), fmt.Sprintf("%.4f", set.Support)})
	}

	return t.Render()
}

// RuleTable renders the rules sorted by lift descending, the ordering
// the rule overview is read in.
func RuleTable(rs []rules.Rule) string {
	if len(rs) == 0 {
		return emptyRules
	}

	sorted := make([]rules.Rule, len(rs))
	copy(sorted, rs)
	rules.Sort(sorted, rules.Lift)

	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Antecedent", "Consequent", "Support", "Confidence", "Lift"})
	for i, r := range sorted {
		t.AppendRow(table.Row{
			i + 1,
			strings.Join(r.Antecedent, ", "),
			strings.Join(r.Consequent, ", "),
			fmt.Sprintf("%.4f", r.Support),
			fmt.Sprintf("%.4f", r.Confidence),
			fmt.Sprintf("%.4f", r.Lift),
		})
	}

	return t.Render()
}

// TopItemsBar renders the item ranking as horizontal text bars scaled
// to width characters for the largest count.
func TopItemsBar(items []dataset.ItemCount, width int) string {
	if len(items) == 0 {
		return emptyOrders
	}
	if width <= 0 {
		width = 40
	}

	max := items[0].Count
	for _, it := range items {
		if it.Count > max {
			max = it.Count
		}
	}

	label := 0
	for _, it := range items {
		if len(it.Item) > label {
			label = len(it.Item)
		}
	}

	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		bar := it.Count * width / max
		if bar == 0 && it.Count > 0 {
			bar = 1
		}
		fmt.Fprintf(&b, "%-*s │%s %d", label, it.Item, strings.Repeat("█", bar), it.Count)
	}

	return b.String()
}
