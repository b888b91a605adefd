package analysis

import (
	"time"

	"github.com/wonny/cagrlab/internal/contracts"
)

// SeriesSummary describes one full series (benchmark or capped strategy)
type SeriesSummary struct {
	Label          string           `json:"label"`
	FirstYear      int              `json:"first_year"`
	LastYear       int              `json:"last_year"`
	Years          int              `json:"years"`
	ArithmeticMean float64          `json:"arithmetic_mean"`
	GeometricMean  float64          `json:"geometric_mean"` // CAGR (%)
	TotalGrowth    float64          `json:"total_growth"`   // 누적 배수 (1.5 = +50%)
	Series         contracts.Series `json:"series"`
}

// Verdict compares total growth of the two series.
// Equal growth counts as a benchmark win.
type Verdict struct {
	Winner         string  `json:"winner"`
	Loser          string  `json:"loser"`
	WinnerGeomMean float64 `json:"winner_geom_mean"`
	LoserGeomMean  float64 `json:"loser_geom_mean"`
	GeomMeanDiff   float64 `json:"geom_mean_diff"` // winner - loser (%p)
	Factor         float64 `json:"factor"`         // winner total growth / loser total growth
}

// HorizonReport holds the rolling-window statistics for one horizon
type HorizonReport struct {
	Years     int                         `json:"years"`
	Skipped   bool                        `json:"skipped"` // horizon longer than the series
	Benchmark *contracts.WindowStatistics `json:"benchmark,omitempty"`
	Strategy  *contracts.WindowStatistics `json:"strategy,omitempty"`
}

// Report is the full benchmark vs capped-strategy comparison
type Report struct {
	RunID       string                `json:"run_id"`
	AnalysisID  string                `json:"analysis_id"`
	ConfigHash  string                `json:"config_hash"`
	GeneratedAt time.Time             `json:"generated_at"`
	Caps        contracts.ClampBounds `json:"caps"`
	Extrema     string                `json:"extrema"`

	Benchmark SeriesSummary   `json:"benchmark"`
	Strategy  SeriesSummary   `json:"strategy"`
	Verdict   Verdict         `json:"verdict"`
	Horizons  []HorizonReport `json:"horizons"`
}
