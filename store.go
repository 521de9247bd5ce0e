package folio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// portfolioHeader is the exact header of a persisted portfolio.
var portfolioHeader = []string{"Stock", "Quantity", "Amount"}

// EncodePortfolio writes p as CSV, one row per holding after the header.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(portfolioHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for h := range p.Holdings() {
		record := []string{h.Symbol, h.Quantity.String(), h.Amount.Decimal().String()}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write %q: %w", h.Symbol, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// DecodePortfolio reads a CSV portfolio. Amounts are read in currency.
func DecodePortfolio(r io.Reader, currency string) (*Portfolio, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(portfolioHeader)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		// an empty file is an empty portfolio
		return NewPortfolio(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("format error in header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	if !slices.Equal(header, portfolioHeader) {
		return nil, fmt.Errorf("format error: header must be %q got %q", portfolioHeader, header)
	}

	p := NewPortfolio()
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("format error: %w", err)
		}
		line, _ := cr.FieldPos(0)
		symbol := strings.TrimSpace(record[0])
		if symbol == "" {
			return nil, fmt.Errorf("format error line %d: empty symbol", line)
		}
		if _, exists := p.holdings[symbol]; exists {
			return nil, fmt.Errorf("format error line %d: symbol %q is already defined", line, symbol)
		}
		q, err := ParseQuantity(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("format error line %d: %w", line, err)
		}
		amount, err := ParseMoney(strings.TrimSpace(record[2]), currency)
		if err != nil {
			return nil, fmt.Errorf("format error line %d: amount of %q: %w", line, symbol, err)
		}
		// a saved holding obeys the same rules as a purchase.
		b, err := NewPurchase(symbol, q, amount)
		if err != nil {
			return nil, fmt.Errorf("format error line %d: %w", line, err)
		}
		b.Apply(p)
	}
	return p, nil
}

// LoadPortfolio reads the portfolio persisted in file.
// A missing file is an empty portfolio.
func LoadPortfolio(file, currency string) (*Portfolio, error) {
	f, err := os.Open(file)
	if errors.Is(err, fs.ErrNotExist) {
		return NewPortfolio(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", file, err)
	}
	defer f.Close()

	p, err := DecodePortfolio(f, currency)
	if err != nil {
		return nil, fmt.Errorf("could not decode portfolio file %q: %w", file, err)
	}
	return p, nil
}

// SavePortfolio overwrites file with p, even when p is empty.
//
// The content is first written to a temporary file in the same directory
// and then renamed over file, so file is either the old or the new version.
func SavePortfolio(file string, p *Portfolio) (err error) {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for portfolio %q: %w", file, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(file)+".*")
	if err != nil {
		return fmt.Errorf("error opening portfolio file %q for writing: %w", file, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := EncodePortfolio(tmp, p); err != nil {
		return fmt.Errorf("error writing portfolio file %q: %w", file, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing portfolio file %q: %w", file, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("error writing portfolio file %q: %w", file, err)
	}
	if err := os.Rename(tmp.Name(), file); err != nil {
		return fmt.Errorf("error replacing portfolio file %q: %w", file, err)
	}
	return nil
}
