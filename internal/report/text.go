package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/wonny/cagrlab/internal/analysis"
	"github.com/wonny/cagrlab/internal/contracts"
)

// TextOptions controls the console report
type TextOptions struct {
	ShowSeries  bool // print the year-by-year table
	ShowWindows bool // print min/max window points
}

const (
	doubleRule = "═══════════════════════════════════════════════════════════"
	singleRule = "───────────────────────────────────────────────────────────"
)

// Text writes the console report
func Text(w io.Writer, r *analysis.Report, opts TextOptions) error {
	p := &printer{w: w}

	p.line("")
	p.line(doubleRule)
	p.printf("  %s vs %s\n", r.Benchmark.Label, r.Strategy.Label)
	p.line(singleRule)
	p.printf("  Run ID    : %s\n", r.RunID)
	p.printf("  Analysis  : %s (config %s)\n", r.AnalysisID, shortHash(r.ConfigHash))
	p.printf("  Period    : %d ~ %d (%d years)\n", r.Benchmark.FirstYear, r.Benchmark.LastYear, r.Benchmark.Years)
	p.printf("  Caps      : floor %s, cap %s\n", Pct(r.Caps.Lower), Pct(r.Caps.Upper))
	p.printf("  Extrema   : %s\n", r.Extrema)
	p.line(doubleRule)
	p.line("")

	if opts.ShowSeries {
		p.series(r)
	}

	p.summary(r.Benchmark, "")
	p.summary(r.Strategy, fmt.Sprintf(" (floor %s, cap %s)", Pct(r.Caps.Lower), Pct(r.Caps.Upper)))

	v := r.Verdict
	p.printf("A geometric growth difference of %s (%s over %s) means that...\n",
		Pct(v.GeomMeanDiff), Pct(v.WinnerGeomMean), Pct(v.LoserGeomMean))
	p.printf("%s beats %s by a factor of: %s\n", v.Winner, v.Loser, Factor(v.Factor))
	p.line("")

	p.line("Every window of each horizon in the data is evaluated and averaged together.")
	p.line("The min and max CAGR of each horizon are shown with the 1 stddev band;")
	p.line("about 68% of windows fall within 1 stddev of the average.")
	p.line("")

	for _, h := range r.Horizons {
		p.horizon(r, h, opts.ShowWindows)
	}

	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) line(s string) {
	p.printf("%s\n", s)
}

func (p *printer) series(r *analysis.Report) {
	p.printf("%-6s  %10s  %10s\n", "Year", r.Benchmark.Label, r.Strategy.Label)
	p.line(strings.Repeat("─", 30))
	for i, pt := range r.Benchmark.Series {
		capped := r.Strategy.Series[i]
		p.printf("%-6d  %10s  %10s\n", pt.Year, pctFixed(pt.ReturnPct, 2), pctFixed(capped.ReturnPct, 2))
	}
	p.line("")
}

func (p *printer) summary(s analysis.SeriesSummary, suffix string) {
	p.printf("%s%s arithmetic mean (%d to %d) = %s\n", s.Label, suffix, s.FirstYear, s.LastYear, Pct(s.ArithmeticMean))
	p.printf("%s%s geometric mean (CAGR) (%d to %d) = %s\n", s.Label, suffix, s.FirstYear, s.LastYear, Pct(s.GeometricMean))
	p.printf("%s%s total growth factor (%d to %d) = %s\n", s.Label, suffix, s.FirstYear, s.LastYear, Factor(s.TotalGrowth))
	p.line("")
}

func (p *printer) horizon(r *analysis.Report, h analysis.HorizonReport, showWindows bool) {
	if h.Skipped {
		p.printf("%d-year stats: skipped (series has %d years)\n\n", h.Years, r.Benchmark.Years)
		return
	}

	p.printf("%d-year stats (%d windows)\n", h.Years, h.Benchmark.Count)
	p.line("=========================")

	for _, row := range []struct {
		label string
		stats *contracts.WindowStatistics
	}{
		{r.Benchmark.Label, h.Benchmark},
		{r.Strategy.Label, h.Strategy},
	} {
		s := row.stats
		lo, hi := s.OneSigmaBand()
		p.printf("%s stats:\t Avg geom mean = %s (%s..%s)\t68%% chance between %s and %s\n",
			row.label, Pct(s.AvgGeomMean), Pct(s.MinGeomMean), Pct(s.MaxGeomMean), Pct(lo), Pct(hi))
		p.printf("  Min window: %s  aMean %s  gMean %s\n", Span(s.MinWindow), Pct(s.MinWindow.ArithmeticMean), Pct(s.MinWindow.GeometricMean))
		if showWindows {
			p.points(s.MinWindow.Points)
		}
		p.printf("  Max window: %s  aMean %s  gMean %s\n", Span(s.MaxWindow), Pct(s.MaxWindow.ArithmeticMean), Pct(s.MaxWindow.GeometricMean))
		if showWindows {
			p.points(s.MaxWindow.Points)
		}
	}
	p.line("")
}

func (p *printer) points(points contracts.Series) {
	parts := make([]string, len(points))
	for i, pt := range points {
		parts[i] = fmt.Sprintf("%d:%s", pt.Year, pctFixed(pt.ReturnPct, 2))
	}
	p.printf("    [%s]\n", strings.Join(parts, " "))
}

func pctFixed(x float64, places int32) string {
	return fmt.Sprintf("%.*f%%", places, Round(x, places))
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
