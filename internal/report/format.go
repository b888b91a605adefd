// Package report renders analysis.Report as console text, JSON or PDF.
// All display rounding happens here; the analysis values stay unrounded.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wonny/cagrlab/internal/contracts"
)

// Round rounds half away from zero to the given number of decimal places
func Round(x float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(x).Round(places).Float64()
	return f
}

// Pct formats a percentage with one decimal ("7.3%")
func Pct(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(1) + "%"
}

// Factor formats a growth multiple with one decimal ("164.2x")
func Factor(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(1) + "x"
}

// Span formats a window as "1999-2008"
func Span(w contracts.Window) string {
	return fmt.Sprintf("%d-%d", w.FirstYear, w.LastYear)
}
