package growth

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/wonny/cagrlab/internal/contracts"
)

// StdDev returns the population standard deviation (divides by N, not N-1).
// The observed window set is treated as the whole population.
func StdDev(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("stddev: %w", contracts.ErrEmptyInput)
	}

	// 상수 시퀀스는 정확히 0 (평균의 반올림 오차 제거)
	if isConstant(values) {
		return 0, nil
	}

	return stat.PopStdDev(values, nil), nil
}

func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
