package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wonny/cagrlab/internal/analysis"
	"github.com/wonny/cagrlab/internal/report"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full benchmark vs capped-strategy report",
	Long: `Runs the full comparison and renders it.

The report contains:
- arithmetic mean, CAGR and total growth of both series
- which series wins and by what growth factor
- rolling-window CAGR stats (avg, min, max, 1 stddev band) per horizon

Flags:
  --format   text, json or pdf (default: text)
  --out      output file (pdf default: <CAGR_OUTPUT_DIR>/<analysis_id>.pdf)
  --series   include the year-by-year table (text only)
  --windows  include the points of the min/max windows (text only)

Example:
  go run ./cmd/cagr report
  go run ./cmd/cagr report --format json --out report.json
  go run ./cmd/cagr report --config analysis.yaml --format pdf`,
	RunE: runReport,
}

var (
	reportFormat  string
	reportOut     string
	reportSeries  bool
	reportWindows bool
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportFormat, "format", "text", "output format (text|json|pdf)")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "output file (default: stdout, pdf: output dir)")
	reportCmd.Flags().BoolVar(&reportSeries, "series", false, "print the year-by-year table")
	reportCmd.Flags().BoolVar(&reportWindows, "windows", false, "print min/max window points")
}

func runReport(cmd *cobra.Command, args []string) error {
	switch reportFormat {
	case "text", "json", "pdf":
	default:
		return fmt.Errorf("unknown format %q (text|json|pdf)", reportFormat)
	}

	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	ds, err := a.loadDataset(cmd.Context())
	if err != nil {
		return err
	}
	acfg, err := a.loadAnalysis(ds)
	if err != nil {
		return err
	}

	result, err := analysis.NewAnalyzer(a.log).Analyze(cmd.Context(), ds, acfg)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	var buf bytes.Buffer
	switch reportFormat {
	case "json":
		err = report.JSON(&buf, result)
	case "pdf":
		var data []byte
		data, err = report.PDF(result)
		buf.Write(data)
	default:
		err = report.Text(&buf, result, report.TextOptions{ShowSeries: reportSeries, ShowWindows: reportWindows})
	}
	if err != nil {
		return fmt.Errorf("render %s report: %w", reportFormat, err)
	}

	out := reportOut
	if out == "" && reportFormat == "pdf" {
		out = filepath.Join(a.cfg.OutputDir, result.AnalysisID+".pdf")
	}
	if out == "" {
		_, err = io.Copy(cmd.OutOrStdout(), &buf)
		return err
	}

	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	a.log.WithField("path", out).Info("Report written")
	PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Report written to %s", out))
	return nil
}
