package report

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/apriori/rules"
)

const graphName = "rules"

// RuleGraph exports the rule network in DOT notation: a directed graph
// with one node per item and one edge per antecedent-item ×
// consequent-item pair, labelled and weighted by lift.
//
// When several rules produce the same item pair, the edge keeps the
// highest lift among them. Node and edge emission order is
// deterministic (sorted), so identical rule sets yield identical DOT.
//
// Layout is the consumer's concern; the DOT text carries no positions.
func RuleGraph(rs []rules.Rule) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", fmt.Errorf("report: graph init: %w", err)
	}
	if err := g.SetDir(true); err != nil {
		return "", fmt.Errorf("report: graph init: %w", err)
	}

	// Collapse rules to item-pair edges, keeping the strongest lift.
	type pair struct{ from, to string }
	lifts := make(map[pair]float64)
	for _, r := range rs {
		for _, a := range r.Antecedent {
			for _, c := range r.Consequent {
				p := pair{from: a, to: c}
				if lift, ok := lifts[p]; !ok || r.Lift > lift {
					lifts[p] = r.Lift
				}
			}
		}
	}

	pairs := make([]pair, 0, len(lifts))
	nodes := make(map[string]struct{})
	for p := range lifts {
		pairs = append(pairs, p)
		nodes[p.from] = struct{}{}
		nodes[p.to] = struct{}{}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].from != pairs[j].from {
			return pairs[i].from < pairs[j].from
		}

		return pairs[i].to < pairs[j].to
	})

	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := g.AddNode(graphName, strconv.Quote(name), nil); err != nil {
			return "", fmt.Errorf("report: add node %q: %w", name, err)
		}
	}
	for _, p := range pairs {
		attrs := map[string]string{
			"label":  fmt.Sprintf(`"%.2f"`, lifts[p]),
			"weight": fmt.Sprintf(`"%f"`, lifts[p]),
		}
		if err := g.AddEdge(strconv.Quote(p.from), strconv.Quote(p.to), true, attrs); err != nil {
			return "", fmt.Errorf("report: add edge %s→%s: %w", p.from, p.to, err)
		}
	}

	return g.String(), nil
}
