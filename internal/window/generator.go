// Package window builds rolling fixed-length windows over an annual return
// series and aggregates their CAGR into summary statistics.
package window

import (
	"fmt"

	"github.com/wonny/cagrlab/internal/contracts"
	"github.com/wonny/cagrlab/internal/growth"
)

// Generate returns every contiguous window of `size` years, in offset order.
// A size larger than the series yields no windows and no error.
func Generate(points contracts.Series, size int) ([]contracts.Window, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", contracts.ErrInvalidWindowSize, size)
	}
	if size > len(points) {
		return []contracts.Window{}, nil
	}

	windows := make([]contracts.Window, 0, len(points)-size+1)
	for start := 0; start <= len(points)-size; start++ {
		w, err := newWindow(points[start : start+size])
		if err != nil {
			return nil, fmt.Errorf("window at offset %d: %w", start, err)
		}
		windows = append(windows, w)
	}

	return windows, nil
}

func newWindow(slice contracts.Series) (contracts.Window, error) {
	// 원본 시리즈와 메모리 공유 방지
	points := make(contracts.Series, len(slice))
	copy(points, slice)

	aMean, err := growth.ArithmeticMean(points)
	if err != nil {
		return contracts.Window{}, err
	}
	gMean, err := growth.GeometricMean(points)
	if err != nil {
		return contracts.Window{}, err
	}

	return contracts.Window{
		FirstYear:      points.FirstYear(),
		LastYear:       points.LastYear(),
		ArithmeticMean: aMean,
		GeometricMean:  gMean,
		Points:         points,
	}, nil
}
