// Package btctrack provides the core engines of a personal Bitcoin/fiat
// portfolio tracker. It is designed to be local-first and auditable: every
// figure shown to the user traces back to a canonical transaction record
// imported from a third-party export.
//
// The core functionalities include:
//   - Ledger Management: imported transactions are kept in an immutable,
//     chronological, deduplicated record, so re-importing the same export
//     file is a no-op.
//   - Classification: a closed category set maps every transaction to its
//     accounting role (acquisition, disposal, or excluded from P&L).
//   - Cost-Basis Accounting: realized and unrealized profit-and-loss over
//     the full history under the average-cost or FIFO method.
//   - Aggregation: thin rollups (activity, fees, fiat holdings, balance
//     history) for display.
//
// Normalization of raw export files into Transaction records lives in the
// formats subpackage.
//
// The engines are synchronous and side-effect free: they consume fully
// resolved inputs (a transaction set, a current price) and return values.
// All persistence, rendering and price fetching live in collaborators such
// as the `btk` command-line tool built on top of this package.
package btctrack
