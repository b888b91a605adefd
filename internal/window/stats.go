package window

import (
	"fmt"
	"math"

	"github.com/wonny/cagrlab/internal/contracts"
	"github.com/wonny/cagrlab/internal/growth"
)

// ExtremaMode selects which windows compete for MinWindow/MaxWindow
type ExtremaMode string

const (
	// ExtremaLegacy seeds with the first window and compares windows
	// 1..n-2 only. The last window never wins.
	ExtremaLegacy ExtremaMode = "legacy"
	// ExtremaFull seeds with the first window and compares every window
	ExtremaFull ExtremaMode = "full"
)

// ParseExtremaMode accepts "legacy", "full" or "" (legacy)
func ParseExtremaMode(s string) (ExtremaMode, error) {
	switch ExtremaMode(s) {
	case "", ExtremaLegacy:
		return ExtremaLegacy, nil
	case ExtremaFull:
		return ExtremaFull, nil
	default:
		return "", fmt.Errorf("unknown extrema mode %q (want legacy or full)", s)
	}
}

// Option configures Aggregate
type Option func(*options)

type options struct {
	extrema ExtremaMode
}

// WithExtrema sets the representative-window selection mode
func WithExtrema(mode ExtremaMode) Option {
	return func(o *options) {
		o.extrema = mode
	}
}

// Aggregate reduces windows (in offset order) into WindowStatistics.
// Scalar statistics always cover every window; only the representative
// min/max windows depend on the extrema mode.
func Aggregate(windows []contracts.Window, opts ...Option) (contracts.WindowStatistics, error) {
	o := options{extrema: ExtremaLegacy}
	for _, opt := range opts {
		opt(&o)
	}

	if len(windows) == 0 {
		return contracts.WindowStatistics{}, fmt.Errorf("aggregate windows: %w", contracts.ErrEmptyInput)
	}

	gMeans := make([]float64, len(windows))
	sum := 0.0
	minG, maxG := math.Inf(1), math.Inf(-1)
	for i, w := range windows {
		gMeans[i] = w.GeometricMean
		sum += w.GeometricMean
		minG = math.Min(minG, w.GeometricMean)
		maxG = math.Max(maxG, w.GeometricMean)
	}

	sd, err := growth.StdDev(gMeans)
	if err != nil {
		return contracts.WindowStatistics{}, err
	}

	minWindow, maxWindow := representatives(windows, o.extrema)

	return contracts.WindowStatistics{
		Count:          len(windows),
		AvgGeomMean:    sum / float64(len(windows)),
		MinGeomMean:    minG,
		MaxGeomMean:    maxG,
		StdDevGeomMean: sd,
		MinWindow:      minWindow,
		MaxWindow:      maxWindow,
	}, nil
}

// representatives folds over the candidate range seeded with windows[0].
// Ties keep the earlier window.
func representatives(windows []contracts.Window, mode ExtremaMode) (contracts.Window, contracts.Window) {
	end := len(windows)
	if mode != ExtremaFull {
		// legacy: candidates are [1, n-1), i.e. the last window is skipped
		end = len(windows) - 1
	}

	minW, maxW := windows[0], windows[0]
	for i := 1; i < end; i++ {
		if windows[i].GeometricMean < minW.GeometricMean {
			minW = windows[i]
		}
		if windows[i].GeometricMean > maxW.GeometricMean {
			maxW = windows[i]
		}
	}
	return minW, maxW
}
