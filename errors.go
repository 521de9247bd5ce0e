package folio

import (
	"errors"
	"fmt"
)

var (
	// ErrDecoding is returned when a price reference is not valid UTF-8 text.
	ErrDecoding = errors.New("invalid encoding")
	// ErrNotFound is returned when a symbol has no row in the price reference.
	ErrNotFound = errors.New("symbol not found in price reference")
	// ErrInvalidQuantity rejects share counts that are not whole numbers >= 1.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidAmount rejects negative purchase amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidSymbol rejects empty symbols.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrCurrencyMismatch is returned when a holding is priced in another
	// currency than the one it was paid in.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrZeroValue is returned when a ratio over the portfolio value is requested
	// while nothing was invested.
	ErrZeroValue = errors.New("portfolio has no invested amount")
)

// SymbolError attributes an error to a symbol.
type SymbolError struct {
	Symbol string
	Err    error
}

func (e *SymbolError) Error() string { return fmt.Sprintf("%q: %v", e.Symbol, e.Err) }
func (e *SymbolError) Unwrap() error { return e.Err }
