package folio

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PaesslerAG/jsonpath"
)

// PriceRow is a single line of the price reference.
type PriceRow struct {
	Symbol string `json:"symbol"`
	Price  Money  `json:"price"`
}

// PriceFormat describes where to read symbols and prices from a reference file.
type PriceFormat struct {
	SymbolColumn string // defaults to "Symbol"
	PriceColumn  string // defaults to "Price", older files use "Currentprice"
	Currency     string // currency of every price in the table
	Path         string // jsonpath to the array of rows, JSON sources only. Defaults to "$".
}

const (
	DefaultSymbolColumn = "Symbol"
	DefaultPriceColumn  = "Price"
)

func (f PriceFormat) withDefaults() PriceFormat {
	if f.SymbolColumn == "" {
		f.SymbolColumn = DefaultSymbolColumn
	}
	if f.PriceColumn == "" {
		f.PriceColumn = DefaultPriceColumn
	}
	if f.Path == "" {
		f.Path = "$"
	}
	return f
}

// PriceTable is an immutable snapshot of current prices, keyed by symbol.
type PriceTable struct {
	rows  []PriceRow
	index map[string]int // symbol -> first row
}

// NewPriceTable creates a table from rows. When a symbol appears more than
// once the first row wins.
func NewPriceTable(rows ...PriceRow) *PriceTable {
	t := &PriceTable{
		rows:  rows,
		index: make(map[string]int, len(rows)),
	}
	for i, r := range rows {
		if _, exists := t.index[r.Symbol]; !exists {
			t.index[r.Symbol] = i
		}
	}
	return t
}

// Lookup returns the price of symbol and whether it was found.
func (t *PriceTable) Lookup(symbol string) (Money, bool) {
	i, ok := t.index[symbol]
	if !ok {
		return Money{}, false
	}
	return t.rows[i].Price, true
}

// PriceOf returns the current price of symbol, or an error wrapping ErrNotFound.
func (t *PriceTable) PriceOf(symbol string) (Money, error) {
	p, ok := t.Lookup(symbol)
	if !ok {
		return Money{}, &SymbolError{Symbol: symbol, Err: ErrNotFound}
	}
	return p, nil
}

// Symbols returns all symbols in table order.
func (t *PriceTable) Symbols() []string {
	symbols := make([]string, 0, len(t.rows))
	for _, r := range t.rows {
		symbols = append(symbols, r.Symbol)
	}
	return symbols
}

// Rows returns a copy of the table rows.
func (t *PriceTable) Rows() []PriceRow { return append([]PriceRow(nil), t.rows...) }

// Len returns the number of rows.
func (t *PriceTable) Len() int { return len(t.rows) }

// LoadPrices reads a price reference file. Files with a .json extension are
// decoded with DecodePricesJSON, any other file is read as CSV.
func LoadPrices(file string, format PriceFormat) (*PriceTable, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open price reference %q: %w", file, err)
	}
	defer f.Close()

	var t *PriceTable
	if strings.EqualFold(filepath.Ext(file), ".json") {
		t, err = DecodePricesJSON(f, format)
	} else {
		t, err = DecodePrices(f, format)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode price reference %q: %w", file, err)
	}
	return t, nil
}

// readText reads r entirely and checks it is valid UTF-8. A leading BOM is dropped.
func readText(r io.Reader) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: content is not UTF-8", ErrDecoding)
	}
	return bytes.TrimPrefix(content, []byte("\ufeff")), nil
}

// DecodePrices parses a CSV price reference. The first line is a header that
// must contain the configured symbol and price columns, in any position.
func DecodePrices(r io.Reader, format PriceFormat) (*PriceTable, error) {
	format = format.withDefaults()
	content, err := readText(r)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(content))
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty price reference: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("format error in header: %w", err)
	}

	symbolCol, priceCol := column(header, format.SymbolColumn), column(header, format.PriceColumn)
	if symbolCol < 0 {
		return nil, fmt.Errorf("format error: missing column %q in header %q", format.SymbolColumn, header)
	}
	if priceCol < 0 {
		return nil, fmt.Errorf("format error: missing column %q in header %q", format.PriceColumn, header)
	}

	var rows []PriceRow
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("format error: %w", err)
		}
		line, _ := cr.FieldPos(0)
		symbol := strings.TrimSpace(record[symbolCol])
		if symbol == "" {
			continue
		}
		price, err := parseDecimal(strings.TrimSpace(record[priceCol]))
		if err != nil {
			return nil, fmt.Errorf("format error line %d: price of %q: %w", line, symbol, err)
		}
		rows = append(rows, PriceRow{Symbol: symbol, Price: Money{value: price, cur: format.Currency}})
	}
	return NewPriceTable(rows...), nil
}

// column returns the index of name in header, matching exactly first and then
// ignoring case and surrounding spaces. It returns -1 if absent.
func column(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// DecodePricesJSON parses a JSON price reference. format.Path is a jsonpath
// expression selecting the list of row objects, each row object holds the
// symbol and price under the configured column names. Prices can be JSON
// numbers or strings.
func DecodePricesJSON(r io.Reader, format PriceFormat) (*PriceTable, error) {
	format = format.withDefaults()
	content, err := readText(r)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	var jobj any
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("not a correct json: %w", err)
	}

	jval, err := jsonpath.Get(format.Path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", format.Path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q must select a list of rows, got %T", format.Path, jval)
	}

	rows := make([]PriceRow, 0, len(jlist))
	for i, jrow := range jlist {
		row, ok := jrow.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("row %d: expected an object got %T", i, jrow)
		}
		symbol, ok := row[format.SymbolColumn].(string)
		if !ok || strings.TrimSpace(symbol) == "" {
			return nil, fmt.Errorf("row %d: missing string property %q", i, format.SymbolColumn)
		}
		var raw string
		switch v := row[format.PriceColumn].(type) {
		case json.Number:
			raw = v.String()
		case string:
			raw = v
		default:
			return nil, fmt.Errorf("row %d: property %q of %q must be a number, got %T", i, format.PriceColumn, symbol, v)
		}
		price, err := parseDecimal(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("row %d: price of %q: %w", i, symbol, err)
		}
		rows = append(rows, PriceRow{Symbol: strings.TrimSpace(symbol), Price: Money{value: price, cur: format.Currency}})
	}
	return NewPriceTable(rows...), nil
}
