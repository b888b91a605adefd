package growth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/wonny/cagrlab/internal/contracts"
)

// ArithmeticMean returns the simple average of the returns (%)
func ArithmeticMean(points contracts.Series) (float64, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("arithmetic mean: %w", contracts.ErrEmptyInput)
	}
	return stat.Mean(points.Returns(), nil), nil
}

// CumulativeGrowthFactor compounds every year's growth factor in order.
// Empty input yields the multiplicative identity 1.
func CumulativeGrowthFactor(points contracts.Series) float64 {
	factors := make([]float64, len(points))
	for i, p := range points {
		factors[i] = ToGrowthFactor(p.ReturnPct)
	}
	return floats.Prod(factors)
}

// GeometricMean returns the CAGR (%): n-th root of the cumulative growth factor
func GeometricMean(points contracts.Series) (float64, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("geometric mean: %w", contracts.ErrEmptyInput)
	}

	total := CumulativeGrowthFactor(points)
	if total < 0 {
		return 0, fmt.Errorf("geometric mean %d..%d: %w (%.6f)",
			points.FirstYear(), points.LastYear(), contracts.ErrNegativeGrowth, total)
	}

	nthRoot := math.Pow(total, 1.0/float64(len(points)))
	return ToReturnPct(nthRoot), nil
}
