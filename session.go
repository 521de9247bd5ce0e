package folio

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Session handles the user's commands on a portfolio.
//
// Each command runs alone: a Session can be shared by concurrent callers
// (like http handlers) and still behave as a single user's sequence of actions.
// Commands that modify the portfolio save it to the portfolio file before returning.
type Session struct {
	mu        sync.Mutex
	prices    *PriceTable
	portfolio *Portfolio
	file      string // portfolio file, "" to keep the portfolio in memory only
	currency  string
	log       *zap.Logger
}

// NewSession starts a session with an empty portfolio.
// A nil logger disables logging.
func NewSession(prices *PriceTable, file, currency string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		prices:    prices,
		portfolio: NewPortfolio(),
		file:      file,
		currency:  currency,
		log:       logger,
	}
}

func (s *Session) Prices() *PriceTable { return s.prices }
func (s *Session) Currency() string    { return s.currency }
func (s *Session) File() string        { return s.file }

// Portfolio returns a copy of the current portfolio.
func (s *Session) Portfolio() *Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.portfolio.Clone()
}

// Load replaces the current portfolio with the one saved in the portfolio file.
// A missing file loads an empty portfolio.
func (s *Session) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == "" {
		return nil
	}
	p, err := LoadPortfolio(s.file, s.currency)
	if err != nil {
		s.log.Error("load portfolio", zap.String("file", s.file), zap.Error(err))
		return err
	}
	s.portfolio = p
	s.log.Info("portfolio loaded", zap.String("file", s.file), zap.Int("holdings", p.Len()))
	return nil
}

// Buy adds b to the portfolio and saves it.
// If the portfolio cannot be saved, it is left unchanged.
func (s *Session) Buy(b Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.portfolio.Clone()
	b.Apply(next)
	if err := s.save(next); err != nil {
		s.log.Error("buy", zap.String("symbol", b.Symbol), zap.Error(err))
		return fmt.Errorf("could not record %s: %w", b, err)
	}
	s.portfolio = next
	s.log.Info("buy",
		zap.String("symbol", b.Symbol),
		zap.Stringer("quantity", b.Quantity),
		zap.Stringer("amount", b.Amount),
	)
	if _, known := s.prices.Lookup(b.Symbol); !known {
		s.log.Warn("symbol has no price", zap.String("symbol", b.Symbol))
	}
	return nil
}

// Save writes the current portfolio to the portfolio file.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(s.portfolio)
}

func (s *Session) save(p *Portfolio) error {
	if s.file == "" {
		return nil
	}
	if err := SavePortfolio(s.file, p); err != nil {
		return err
	}
	s.log.Debug("portfolio saved", zap.String("file", s.file), zap.Int("holdings", p.Len()))
	return nil
}

// Dashboard computes the dashboard of the current portfolio.
func (s *Session) Dashboard() *Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := NewDashboard(s.portfolio, s.prices, s.currency)
	if d.PerformanceError != "" {
		s.log.Warn("performance", zap.String("error", d.PerformanceError))
	}
	return d
}
