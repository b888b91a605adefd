package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wonny/cagrlab/internal/analysisconfig"
	"github.com/wonny/cagrlab/internal/contracts"
	"github.com/wonny/cagrlab/internal/dataset"
	"github.com/wonny/cagrlab/internal/growth"
	"github.com/wonny/cagrlab/internal/window"
	"github.com/wonny/cagrlab/pkg/logger"
)

// Analyzer compares a benchmark series against its capped-return simulation
// ⭐ SSOT: 벤치마크 vs 캡 전략 비교 로직은 여기서만
type Analyzer struct {
	logger *logger.Logger
	now    func() time.Time
	newID  func() string
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer(logger *logger.Logger) *Analyzer {
	return &Analyzer{
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Analyze runs the full comparison over ds using cfg
func (a *Analyzer) Analyze(ctx context.Context, ds *dataset.Dataset, cfg *analysisconfig.Config) (*Report, error) {
	bounds, err := cfg.Bounds()
	if err != nil {
		return nil, err
	}
	mode, err := cfg.ExtremaMode()
	if err != nil {
		return nil, err
	}
	hash, err := analysisconfig.Hash(cfg)
	if err != nil {
		return nil, fmt.Errorf("hash config: %w", err)
	}

	capped, err := growth.ApplyCaps(ds.Series, bounds)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:       a.newID(),
		AnalysisID:  cfg.Meta.AnalysisID,
		ConfigHash:  hash,
		GeneratedAt: a.now(),
		Caps:        bounds,
		Extrema:     string(mode),
	}

	// 전체 기간 요약
	report.Benchmark, err = Summarize(cfg.Benchmark.Label, ds.Series)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", cfg.Benchmark.Label, err)
	}
	report.Strategy, err = Summarize(cfg.Strategy.Label, capped)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", cfg.Strategy.Label, err)
	}
	report.Verdict = Compare(report.Benchmark, report.Strategy)

	// 롤링 윈도우 통계
	for _, years := range cfg.Horizons.Years {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		h, err := a.horizon(ds.Series, capped, years, mode)
		if err != nil {
			return nil, fmt.Errorf("%d-year horizon: %w", years, err)
		}
		report.Horizons = append(report.Horizons, h)
	}

	a.logger.WithFields(map[string]interface{}{
		"run_id":      report.RunID,
		"analysis_id": report.AnalysisID,
		"years":       report.Benchmark.Years,
		"horizons":    len(report.Horizons),
		"winner":      report.Verdict.Winner,
		"factor":      report.Verdict.Factor,
	}).Info("Comparison analysis completed")

	return report, nil
}

func (a *Analyzer) horizon(benchmark, capped contracts.Series, years int, mode window.ExtremaMode) (HorizonReport, error) {
	h := HorizonReport{Years: years}
	if years > benchmark.Len() {
		h.Skipped = true
		a.logger.WithFields(map[string]interface{}{
			"horizon": years,
			"series":  benchmark.Len(),
		}).Warn("Horizon longer than series, skipped")
		return h, nil
	}

	bStats, err := rollingStats(benchmark, years, mode)
	if err != nil {
		return h, err
	}
	sStats, err := rollingStats(capped, years, mode)
	if err != nil {
		return h, err
	}
	h.Benchmark = &bStats
	h.Strategy = &sStats

	a.logger.WithFields(map[string]interface{}{
		"horizon":            years,
		"windows":            bStats.Count,
		"benchmark_avg_cagr": bStats.AvgGeomMean,
		"strategy_avg_cagr":  sStats.AvgGeomMean,
	}).Debug("Horizon computed")

	return h, nil
}

func rollingStats(series contracts.Series, years int, mode window.ExtremaMode) (contracts.WindowStatistics, error) {
	windows, err := window.Generate(series, years)
	if err != nil {
		return contracts.WindowStatistics{}, err
	}
	return window.Aggregate(windows, window.WithExtrema(mode))
}

// Summarize computes the full-period means and total growth of a series
func Summarize(label string, series contracts.Series) (SeriesSummary, error) {
	aMean, err := growth.ArithmeticMean(series)
	if err != nil {
		return SeriesSummary{}, err
	}
	gMean, err := growth.GeometricMean(series)
	if err != nil {
		return SeriesSummary{}, err
	}

	return SeriesSummary{
		Label:          label,
		FirstYear:      series.FirstYear(),
		LastYear:       series.LastYear(),
		Years:          series.Len(),
		ArithmeticMean: aMean,
		GeometricMean:  gMean,
		TotalGrowth:    growth.CumulativeGrowthFactor(series),
		Series:         series,
	}, nil
}

// Compare decides which series grew more; the strategy must strictly beat the benchmark
func Compare(benchmark, strategy SeriesSummary) Verdict {
	winner, loser := benchmark, strategy
	if strategy.TotalGrowth > benchmark.TotalGrowth {
		winner, loser = strategy, benchmark
	}

	v := Verdict{
		Winner:         winner.Label,
		Loser:          loser.Label,
		WinnerGeomMean: winner.GeometricMean,
		LoserGeomMean:  loser.GeometricMean,
		GeomMeanDiff:   winner.GeometricMean - loser.GeometricMean,
	}
	if loser.TotalGrowth != 0 {
		v.Factor = winner.TotalGrowth / loser.TotalGrowth
	}
	return v
}
