// Package dataset loads cafe-order CSV files and reduces them to the
// transaction lists the mining core consumes.
//
// What:
//
//   - Read parses a CSV with date, cash_type and coffee_name columns
//     (header-addressed, any column order) into Order records, trimming
//     and lowercasing the item labels.
//   - Transactions groups orders by (date, cash_type) — one basket per
//     date-and-payment pair, the grouping the source data implies —
//     deduplicating items inside each group.
//   - Cache memoizes Load results keyed by path plus file modification
//     time and size, so an unchanged file is parsed once per process.
//   - TopItems ranks items by raw order count for the "most ordered"
//     overview.
//
// Why:
//
//   - The core treats I/O as somebody else's problem; this package is
//     that somebody. It owns the cache explicitly instead of hiding
//     memoization behind the mining calls.
//
// Errors:
//
//   - ErrMissingColumn: a required header is absent.
//   - ErrBadRecord: a record has a blank coffee label.
//   - I/O and CSV syntax errors are wrapped with %w and inspectable
//     via errors.Is/As.
package dataset
