// Package folio tracks a single user's stock portfolio against a reference
// table of current prices.
//
// The core functionalities include:
//   - Price Reference: a static table of symbol and current price, read from
//     a CSV file (or JSON with a jsonpath selecting the rows).
//   - Portfolio Store: the aggregated quantity and amount paid per symbol,
//     persisted as a CSV file with the columns Stock, Quantity and Amount.
//   - Performance: average cost, performance against the current price and
//     composition of the portfolio.
//   - Session: the user's commands (buy, load, save) applied one at a time
//     to the portfolio.
//
// This package serves as the foundational logic for the `folio` command-line
// tool and its web dashboard.
package folio
