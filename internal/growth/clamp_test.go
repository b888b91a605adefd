package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/cagrlab/internal/contracts"
)

func TestClamp(t *testing.T) {
	iul := contracts.ClampBounds{Lower: 0, Upper: 16}

	tests := []struct {
		name   string
		x      float64
		bounds contracts.ClampBounds
		want   float64
	}{
		{"above cap", 25.0, iul, 16.0},
		{"below floor", -5.0, iul, 0.0},
		{"inside", 8.0, iul, 8.0},
		{"on floor", 0.0, iul, 0.0},
		{"on cap", 16.0, iul, 16.0},
		{"degenerate bounds high", 40, contracts.ClampBounds{Lower: 3, Upper: 3}, 3},
		{"degenerate bounds low", -40, contracts.ClampBounds{Lower: 3, Upper: 3}, 3},
		{"negative floor", -38.5, contracts.ClampBounds{Lower: -10, Upper: 12}, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.x, tt.bounds)
			assert.Equal(t, tt.want, got)
			// idempotent
			assert.Equal(t, got, Clamp(got, tt.bounds))
		})
	}
}

func TestClamp_MatchesMedianOfThree(t *testing.T) {
	bounds := contracts.ClampBounds{Lower: -2.5, Upper: 11}
	for x := -30.0; x <= 30.0; x += 0.25 {
		assert.Equal(t, medianOfThree(x, bounds.Lower, bounds.Upper), Clamp(x, bounds), "x=%v", x)
	}
}

func medianOfThree(a, b, c float64) float64 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		return a
	}
	return b
}

func TestApplyCaps(t *testing.T) {
	series := contracts.Series{
		{Year: 2008, ReturnPct: -38.5},
		{Year: 2009, ReturnPct: 23.5},
		{Year: 2010, ReturnPct: 12.8},
	}

	bounds, err := contracts.NewClampBounds(0, 16)
	require.NoError(t, err)

	capped, err := ApplyCaps(series, bounds)
	require.NoError(t, err)
	require.Len(t, capped, len(series))

	assert.Equal(t, contracts.Series{
		{Year: 2008, ReturnPct: 0},
		{Year: 2009, ReturnPct: 16},
		{Year: 2010, ReturnPct: 12.8},
	}, capped)

	// source untouched
	assert.Equal(t, -38.5, series[0].ReturnPct)
}

func TestApplyCaps_InvalidBounds(t *testing.T) {
	_, err := ApplyCaps(contracts.Series{{Year: 2000, ReturnPct: 1}}, contracts.ClampBounds{Lower: 5, Upper: 1})
	assert.ErrorIs(t, err, contracts.ErrInvalidClampBounds)
}
