package contracts

import (
	"fmt"
	"math"
)

// ReturnPoint is one year's percentage return
// ⭐ SSOT: 연간 수익률 (퍼센트 단위, 10.0 = +10%)
type ReturnPoint struct {
	Year      int     `json:"year" yaml:"year" toml:"year"`
	ReturnPct float64 `json:"return_pct" yaml:"return_pct" toml:"return_pct"`
}

func (p ReturnPoint) String() string {
	return fmt.Sprintf("%d: %.2f%%", p.Year, p.ReturnPct)
}

// Series is an ordered sequence of annual returns.
// Index order is chronological order; every calculation relies on it.
type Series []ReturnPoint

// Len returns the number of years in the series
func (s Series) Len() int {
	return len(s)
}

// FirstYear returns the year of the first point (0 for an empty series)
func (s Series) FirstYear() int {
	if len(s) == 0 {
		return 0
	}
	return s[0].Year
}

// LastYear returns the year of the last point (0 for an empty series)
func (s Series) LastYear() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Year
}

// Returns extracts the percentage returns in order
func (s Series) Returns() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.ReturnPct
	}
	return out
}

// Validate checks chronology: years strictly ascending, no duplicates.
// Gaps between years are allowed.
func (s Series) Validate() error {
	for i := 1; i < len(s); i++ {
		if s[i].Year <= s[i-1].Year {
			return fmt.Errorf("%w: year %d follows %d at index %d",
				ErrUnorderedSeries, s[i].Year, s[i-1].Year, i)
		}
	}
	for i, p := range s {
		if math.IsNaN(p.ReturnPct) || math.IsInf(p.ReturnPct, 0) {
			return fmt.Errorf("non-finite return for year %d at index %d", p.Year, i)
		}
	}
	return nil
}

// ClampBounds is the floor and ceiling credited by a capped-return product
// (예: IUL = 0% floor, 16% cap)
type ClampBounds struct {
	Lower float64 `json:"lower" yaml:"lower" toml:"lower"`
	Upper float64 `json:"upper" yaml:"upper" toml:"upper"`
}

// NewClampBounds validates lower <= upper
func NewClampBounds(lower, upper float64) (ClampBounds, error) {
	b := ClampBounds{Lower: lower, Upper: upper}
	if err := b.Validate(); err != nil {
		return ClampBounds{}, err
	}
	return b, nil
}

// Validate returns ErrInvalidClampBounds when lower > upper or a bound is NaN
func (b ClampBounds) Validate() error {
	if math.IsNaN(b.Lower) || math.IsNaN(b.Upper) {
		return fmt.Errorf("%w: NaN bound", ErrInvalidClampBounds)
	}
	if b.Lower > b.Upper {
		return fmt.Errorf("%w: lower %.4f > upper %.4f", ErrInvalidClampBounds, b.Lower, b.Upper)
	}
	return nil
}
