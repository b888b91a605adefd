package growth

import (
	"fmt"
	"math"

	"github.com/wonny/cagrlab/internal/contracts"
)

// Clamp floors x at bounds.Lower and caps it at bounds.Upper.
// Equivalent to the median of {x, lower, upper} when lower <= upper.
func Clamp(x float64, bounds contracts.ClampBounds) float64 {
	return math.Min(math.Max(x, bounds.Lower), bounds.Upper)
}

// ApplyCaps simulates the capped-return product over a series: every year's
// return is clamped, years and length are preserved.
func ApplyCaps(points contracts.Series, bounds contracts.ClampBounds) (contracts.Series, error) {
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("apply caps: %w", err)
	}

	capped := make(contracts.Series, len(points))
	for i, p := range points {
		capped[i] = contracts.ReturnPoint{
			Year:      p.Year,
			ReturnPct: Clamp(p.ReturnPct, bounds),
		}
	}
	return capped, nil
}
