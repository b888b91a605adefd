package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/cagrlab/internal/contracts"
)

func windowsWithGMeans(gMeans ...float64) []contracts.Window {
	windows := make([]contracts.Window, len(gMeans))
	for i, g := range gMeans {
		windows[i] = contracts.Window{
			FirstYear:     2000 + i,
			LastYear:      2000 + i,
			GeometricMean: g,
		}
	}
	return windows
}

func TestAggregate_Scalars(t *testing.T) {
	stats, err := Aggregate(windowsWithGMeans(5, 1, 9))
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Count)
	assert.InDelta(t, 5.0, stats.AvgGeomMean, 1e-12)
	assert.Equal(t, 1.0, stats.MinGeomMean)
	assert.Equal(t, 9.0, stats.MaxGeomMean)
	// deviations -0, -4, +4 → sqrt(32/3)
	assert.InDelta(t, math.Sqrt(32.0/3.0), stats.StdDevGeomMean, 1e-12)

	lo, hi := stats.OneSigmaBand()
	assert.InDelta(t, 5.0-stats.StdDevGeomMean, lo, 1e-12)
	assert.InDelta(t, 5.0+stats.StdDevGeomMean, hi, 1e-12)
}

// Legacy selection never considers the last window, so the scalar maximum
// and the representative max window disagree here.
func TestAggregate_LegacyExtremaSkipsLastWindow(t *testing.T) {
	windows := windowsWithGMeans(5, 1, 9)

	stats, err := Aggregate(windows)
	require.NoError(t, err)

	assert.Equal(t, 9.0, stats.MaxGeomMean)
	assert.Equal(t, windows[0], stats.MaxWindow)
	assert.NotEqual(t, stats.MaxGeomMean, stats.MaxWindow.GeometricMean)
	assert.Equal(t, windows[1], stats.MinWindow)
}

func TestAggregate_LegacyExtremaLastWindowMinimum(t *testing.T) {
	windows := windowsWithGMeans(4, 6, 5, -3)

	stats, err := Aggregate(windows, WithExtrema(ExtremaLegacy))
	require.NoError(t, err)

	assert.Equal(t, -3.0, stats.MinGeomMean)
	assert.Equal(t, windows[0], stats.MinWindow)
	assert.Equal(t, windows[1], stats.MaxWindow)
}

func TestAggregate_FullExtrema(t *testing.T) {
	windows := windowsWithGMeans(5, 1, 9)

	stats, err := Aggregate(windows, WithExtrema(ExtremaFull))
	require.NoError(t, err)

	assert.Equal(t, windows[2], stats.MaxWindow)
	assert.Equal(t, windows[1], stats.MinWindow)
	assert.Equal(t, stats.MaxGeomMean, stats.MaxWindow.GeometricMean)
	assert.Equal(t, stats.MinGeomMean, stats.MinWindow.GeometricMean)
}

func TestAggregate_SmallInputs(t *testing.T) {
	tests := []struct {
		name    string
		gMeans  []float64
		mode    ExtremaMode
		wantMin int
		wantMax int
	}{
		{"single legacy", []float64{3}, ExtremaLegacy, 0, 0},
		{"single full", []float64{3}, ExtremaFull, 0, 0},
		{"pair legacy seed wins", []float64{3, 8}, ExtremaLegacy, 0, 0},
		{"pair full", []float64{3, 8}, ExtremaFull, 0, 1},
		{"ties keep earlier", []float64{2, 2, 2, 2}, ExtremaFull, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows := windowsWithGMeans(tt.gMeans...)
			stats, err := Aggregate(windows, WithExtrema(tt.mode))
			require.NoError(t, err)
			assert.Equal(t, windows[tt.wantMin], stats.MinWindow)
			assert.Equal(t, windows[tt.wantMax], stats.MaxWindow)
		})
	}
}

func TestAggregate_AllNegative(t *testing.T) {
	stats, err := Aggregate(windowsWithGMeans(-4, -2, -8))
	require.NoError(t, err)
	assert.Equal(t, -2.0, stats.MaxGeomMean)
	assert.Equal(t, -8.0, stats.MinGeomMean)
}

func TestAggregate_Empty(t *testing.T) {
	_, err := Aggregate(nil)
	assert.ErrorIs(t, err, contracts.ErrEmptyInput)
}

func TestParseExtremaMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ExtremaMode
		wantErr bool
	}{
		{"", ExtremaLegacy, false},
		{"legacy", ExtremaLegacy, false},
		{"full", ExtremaFull, false},
		{"FULL", "", true},
		{"median", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseExtremaMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateThenAggregate(t *testing.T) {
	windows, err := Generate(sampleSeries(), 2)
	require.NoError(t, err)

	stats, err := Aggregate(windows, WithExtrema(ExtremaFull))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 2021, stats.MaxWindow.FirstYear)
	assert.Equal(t, 2020, stats.MinWindow.FirstYear)
}
