package contracts

// Window is a contiguous fixed-length span of the source series
// ⭐ SSOT: 윈도우 기간 + 해당 기간의 산술/기하 평균
type Window struct {
	FirstYear      int     `json:"first_year"`
	LastYear       int     `json:"last_year"`
	ArithmeticMean float64 `json:"arithmetic_mean"`
	GeometricMean  float64 `json:"geometric_mean"` // CAGR (%)
	Points         Series  `json:"points"`
}

// Years returns the window length
func (w Window) Years() int {
	return len(w.Points)
}

// WindowStatistics summarises the geometric means of a set of windows
type WindowStatistics struct {
	Count          int     `json:"count"`
	AvgGeomMean    float64 `json:"avg_geom_mean"`
	MinGeomMean    float64 `json:"min_geom_mean"`
	MaxGeomMean    float64 `json:"max_geom_mean"`
	StdDevGeomMean float64 `json:"stddev_geom_mean"` // population stddev

	// Representative windows. Candidate set depends on the extrema mode
	// used by the aggregator, so MinWindow.GeometricMean may differ from MinGeomMean.
	MinWindow Window `json:"min_window"`
	MaxWindow Window `json:"max_window"`
}

// OneSigmaBand returns [avg-sd, avg+sd]
func (s WindowStatistics) OneSigmaBand() (float64, float64) {
	return s.AvgGeomMean - s.StdDevGeomMean, s.AvgGeomMean + s.StdDevGeomMean
}
