package renderer

import (
	"math"
	"strings"
	"text/template"

	"github.com/etnz/folio"
)

// barWidth is the number of cells of a full (100%) bar.
const barWidth = 30

var funcs = template.FuncMap{
	"bar":         Bar,
	"averageCost": averageCost,
}

// Bar draws p as a horizontal bar of barWidth cells. p is clamped to [0, 100].
func Bar(p folio.Percent) string {
	n := int(math.Round(float64(p) * barWidth / 100))
	n = max(0, min(barWidth, n))
	return strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
}

func averageCost(h folio.Holding) string {
	avg, ok := h.AverageCost()
	if !ok {
		return "n/a"
	}
	return avg.String()
}
