package folio

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Percent is a percentage, 12.5 reads as 12.5%.
// It is displayed with two decimals, only the rounded value matters for display.
type Percent float64

// PercentOf converts a ratio (0.125) into a Percent (12.5).
func PercentOf(ratio decimal.Decimal) Percent {
	return Percent(ratio.Shift(2).InexactFloat64())
}

// percentTolerance is the difference under which two percentages are equal.
const percentTolerance = 1e-4

func (p Percent) Equal(q Percent) bool { return math.Abs(float64(p-q)) < percentTolerance }

// hundredths returns p rounded to the displayed precision, never -0.
func (p Percent) hundredths() float64 {
	r := math.Round(float64(p)*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func (p Percent) String() string {
	return strconv.FormatFloat(p.hundredths(), 'f', 2, 64) + "%"
}

// SignedString always shows the sign, a percentage displayed as zero is "-".
func (p Percent) SignedString() string {
	r := p.hundredths()
	switch {
	case r == 0:
		return "-"
	case r > 0:
		return "+" + p.String()
	default:
		return p.String()
	}
}
