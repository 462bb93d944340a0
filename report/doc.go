// Package report renders mining results for humans: result tables, a
// text bar chart of the most ordered items, and a DOT export of the
// rule network.
//
// What:
//
//   - ItemsetTable / RuleTable — the two results tables, sorted the way
//     an analyst reads them (support desc, lift desc).
//   - TopItemsBar — horizontal text bars for the item-frequency ranking.
//   - RuleGraph — a directed graph in DOT notation with one edge per
//     antecedent-item × consequent-item pair, weighted by lift.
//
// Why:
//
//   - Rendering is strictly a consumer of the core's output. Layout of
//     the rule network (spring embedding and friends) belongs to
//     whatever consumes the DOT text, not here.
//   - Empty results render an explicit empty-state line instead of a
//     bare zero-row table; "nothing frequent at this threshold" is an
//     answer, not an error.
package report
