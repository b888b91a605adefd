package growth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/cagrlab/internal/contracts"
)

const tolerance = 1e-9

func TestConversionRoundTrip(t *testing.T) {
	for _, r := range []float64{-38.5, -10, 0, 0.73, 13.41, 29.6, 100} {
		assert.InDelta(t, r, ToReturnPct(ToGrowthFactor(r)), tolerance, "return %v", r)
	}

	assert.InDelta(t, 1.10, ToGrowthFactor(10), tolerance)
	assert.InDelta(t, 0.90, ToGrowthFactor(-10), tolerance)
	assert.InDelta(t, 50.0, ToReturnPct(1.5), tolerance)
}

func TestArithmeticMean(t *testing.T) {
	tests := []struct {
		name   string
		points contracts.Series
		want   float64
	}{
		{
			name:   "single",
			points: contracts.Series{{Year: 2020, ReturnPct: 7.5}},
			want:   7.5,
		},
		{
			name: "mixed signs",
			points: contracts.Series{
				{Year: 2020, ReturnPct: 10},
				{Year: 2021, ReturnPct: -10},
				{Year: 2022, ReturnPct: 20},
			},
			want: 20.0 / 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ArithmeticMean(tt.points)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tolerance)
		})
	}
}

func TestMeans_EmptyInput(t *testing.T) {
	_, err := ArithmeticMean(nil)
	assert.ErrorIs(t, err, contracts.ErrEmptyInput)

	_, err = GeometricMean(contracts.Series{})
	assert.ErrorIs(t, err, contracts.ErrEmptyInput)

	assert.Equal(t, 1.0, CumulativeGrowthFactor(nil))
}

func TestCumulativeGrowthFactor(t *testing.T) {
	points := contracts.Series{
		{Year: 2020, ReturnPct: 10},
		{Year: 2021, ReturnPct: -10},
		{Year: 2022, ReturnPct: 20},
	}

	want := 1.10 * 0.90 * 1.20
	assert.InDelta(t, want, CumulativeGrowthFactor(points), tolerance)
}

func TestGeometricMean(t *testing.T) {
	t.Run("single point equals its return", func(t *testing.T) {
		got, err := GeometricMean(contracts.Series{{Year: 1999, ReturnPct: 19.5}})
		require.NoError(t, err)
		assert.InDelta(t, 19.5, got, tolerance)
	})

	t.Run("two points", func(t *testing.T) {
		points := contracts.Series{
			{Year: 2020, ReturnPct: 10},
			{Year: 2021, ReturnPct: -10},
		}
		got, err := GeometricMean(points)
		require.NoError(t, err)
		assert.InDelta(t, ToReturnPct(math.Sqrt(1.10*0.90)), got, tolerance)
	})

	t.Run("below arithmetic mean under volatility", func(t *testing.T) {
		points := contracts.Series{
			{Year: 2000, ReturnPct: 50},
			{Year: 2001, ReturnPct: -50},
		}
		g, err := GeometricMean(points)
		require.NoError(t, err)
		a, err := ArithmeticMean(points)
		require.NoError(t, err)
		assert.Less(t, g, a)
	})

	t.Run("total loss", func(t *testing.T) {
		got, err := GeometricMean(contracts.Series{
			{Year: 2000, ReturnPct: -100},
			{Year: 2001, ReturnPct: 30},
		})
		require.NoError(t, err)
		assert.InDelta(t, -100.0, got, tolerance)
	})

	t.Run("negative compounded growth", func(t *testing.T) {
		_, err := GeometricMean(contracts.Series{
			{Year: 2000, ReturnPct: -150},
			{Year: 2001, ReturnPct: 10},
		})
		assert.ErrorIs(t, err, contracts.ErrNegativeGrowth)
	})
}

func TestStdDev(t *testing.T) {
	t.Run("population not sample", func(t *testing.T) {
		// mean 5, squared deviations 9+1+1+9 = 20, /4 = 5
		got, err := StdDev([]float64{2, 4, 6, 8})
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(5), got, tolerance)
	})

	t.Run("constant sequence is exactly zero", func(t *testing.T) {
		for _, values := range [][]float64{{0.1, 0.1, 0.1}, {-7.3}, {16, 16, 16, 16, 16}} {
			got, err := StdDev(values)
			require.NoError(t, err)
			assert.Equal(t, 0.0, got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		_, err := StdDev(nil)
		assert.ErrorIs(t, err, contracts.ErrEmptyInput)
	})
}
