// Package apriori is an in-memory toolkit for market-basket analysis:
// frequent-itemset mining and association-rule derivation over
// transactional data, plus the thin collaborators around the core.
//
// 🚀 What lives here?
//
//	A small, deterministic library that brings together:
//		• basket/  — transaction encoding into a boolean presence matrix
//		• apriori/ — level-wise frequent-itemset mining (Apriori)
//		• rules/   — antecedent→consequent rules with support/confidence/lift
//		• dataset/ — CSV order loading, grouping, normalization & caching
//		• report/  — tables, text bars and DOT network export of the results
//
// ✨ Why this shape?
//
//   - Pure core – the miner and the rule generator are side-effect-free
//     functions; identical inputs always yield identical results
//   - Explicit steps – candidate join and downward-closure pruning are
//     named, separately testable stages, not an opaque library call
//   - Consumers stay outside – loading, rendering and graph layout are
//     collaborators; the core consumes transactions and emits itemsets
//     and rules, nothing more
//
// Quick taste:
//
//	m, _ := basket.Encode(txs)
//	opts := apriori.DefaultOptions()
//	opts.MinSupport = 0.05
//	fi, _ := apriori.Mine(m, &opts)
//	ropts := rules.DefaultOptions()
//	rs, _ := rules.Generate(fi, &ropts)
//
//	go get github.com/katalvlaran/apriori
package apriori
