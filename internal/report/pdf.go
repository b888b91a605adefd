package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/wonny/cagrlab/internal/analysis"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// pdfReport builds the PDF comparison report
type pdfReport struct {
	pdf    *fpdf.Fpdf
	report *analysis.Report
}

// PDF renders the report as an A4 PDF document
func PDF(r *analysis.Report) ([]byte, error) {
	p := &pdfReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		report: r,
	}

	p.pdf.SetMargins(marginLeft, marginTop, marginRight)
	p.pdf.SetAutoPageBreak(true, marginBottom)
	p.pdf.SetTitle(fmt.Sprintf("%s vs %s", r.Benchmark.Label, r.Strategy.Label), false)
	p.pdf.SetCreator("cagrlab", false)

	p.addSummaryPage()
	p.addHorizonPage()

	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *pdfReport) addSummaryPage() {
	r := p.report
	p.pdf.AddPage()

	p.pdf.SetFont("Arial", "B", 20)
	p.pdf.SetTextColor(0, 51, 102)
	p.pdf.CellFormat(contentWidth, 12, fmt.Sprintf("%s vs %s", r.Benchmark.Label, r.Strategy.Label), "", 1, "C", false, 0, "")

	p.pdf.SetFont("Arial", "I", 10)
	p.pdf.SetTextColor(80, 80, 80)
	p.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("%d to %d  |  floor %s, cap %s  |  generated %s",
		r.Benchmark.FirstYear, r.Benchmark.LastYear, Pct(r.Caps.Lower), Pct(r.Caps.Upper),
		r.GeneratedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")
	p.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Run %s", r.RunID), "", 1, "C", false, 0, "")
	p.pdf.Ln(8)

	p.drawSectionHeader("Full period")
	cols := []float64{60, 40, 40, 40}
	p.tableHeader(cols, "Series", "Arithmetic mean", "CAGR", "Total growth")
	for i, s := range []analysis.SeriesSummary{r.Benchmark, r.Strategy} {
		p.tableRow(cols, i%2 == 1, s.Label, Pct(s.ArithmeticMean), Pct(s.GeometricMean), Factor(s.TotalGrowth))
	}
	p.pdf.Ln(6)

	v := r.Verdict
	p.pdf.SetFont("Arial", "B", 11)
	p.pdf.SetTextColor(0, 51, 102)
	p.pdf.MultiCell(contentWidth, 6, fmt.Sprintf(
		"%s beats %s by a factor of %s (CAGR %s over %s, difference %s).",
		v.Winner, v.Loser, Factor(v.Factor), Pct(v.WinnerGeomMean), Pct(v.LoserGeomMean), Pct(v.GeomMeanDiff)),
		"", "L", false)

	p.pdf.Ln(10)
	p.pdf.SetFont("Arial", "I", 9)
	p.pdf.SetTextColor(120, 120, 120)
	p.pdf.MultiCell(contentWidth, 4.5,
		"Historical returns do not predict future performance. Capped returns are simulated by "+
			"clamping each year's index return to the floor and cap; fees, dividends and "+
			"participation rates are not modelled.", "", "C", false)
}

func (p *pdfReport) addHorizonPage() {
	r := p.report
	p.pdf.AddPage()
	p.drawSectionHeader("Rolling windows")

	cols := []float64{18, 26, 22, 30, 30, 27, 27}
	p.tableHeader(cols, "Years", "Series", "Avg CAGR", "Min (window)", "Max (window)", "StdDev", "1 sd band")

	row := 0
	for _, h := range r.Horizons {
		if h.Skipped {
			p.tableRow(cols, row%2 == 1, fmt.Sprint(h.Years), "skipped", "", "", "", "", "")
			row++
			continue
		}
		for i, label := range []string{r.Benchmark.Label, r.Strategy.Label} {
			stats := h.Benchmark
			if i == 1 {
				stats = h.Strategy
			}
			lo, hi := stats.OneSigmaBand()
			p.tableRow(cols, row%2 == 1,
				fmt.Sprint(h.Years),
				label,
				Pct(stats.AvgGeomMean),
				fmt.Sprintf("%s (%d)", Pct(stats.MinGeomMean), stats.MinWindow.FirstYear),
				fmt.Sprintf("%s (%d)", Pct(stats.MaxGeomMean), stats.MaxWindow.FirstYear),
				Pct(stats.StdDevGeomMean),
				fmt.Sprintf("%s..%s", Pct(lo), Pct(hi)),
			)
			row++
		}
	}

	p.pdf.Ln(4)
	p.pdf.SetFont("Arial", "I", 8)
	p.pdf.SetTextColor(120, 120, 120)
	p.pdf.MultiCell(contentWidth, 4, fmt.Sprintf(
		"Window years in brackets are the first year of the representative window (extrema mode: %s).", r.Extrema),
		"", "L", false)
}

func (p *pdfReport) drawSectionHeader(title string) {
	p.pdf.SetFont("Arial", "B", 14)
	p.pdf.SetTextColor(0, 51, 102)
	p.pdf.CellFormat(contentWidth, 9, title, "B", 1, "L", false, 0, "")
	p.pdf.Ln(3)
}

func (p *pdfReport) tableHeader(widths []float64, cols ...string) {
	p.pdf.SetFont("Arial", "B", 9)
	p.pdf.SetFillColor(0, 51, 102)
	p.pdf.SetTextColor(255, 255, 255)
	for i, c := range cols {
		p.pdf.CellFormat(widths[i], 7, c, "1", 0, "C", true, 0, "")
	}
	p.pdf.Ln(-1)
}

func (p *pdfReport) tableRow(widths []float64, shaded bool, cells ...string) {
	p.pdf.SetFont("Arial", "", 9)
	p.pdf.SetTextColor(50, 50, 50)
	p.pdf.SetFillColor(245, 247, 250)
	for i, c := range cells {
		align := "R"
		if i < 2 {
			align = "L"
		}
		p.pdf.CellFormat(widths[i], 6, c, "1", 0, align, shaded, 0, "")
	}
	p.pdf.Ln(-1)
}
