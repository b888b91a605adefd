package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/cagrlab/internal/growth"
	"github.com/wonny/cagrlab/internal/report"
	"github.com/wonny/cagrlab/internal/window"
)

// windowsCmd represents the windows command
var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List every rolling window of one horizon",
	Long: `Lists every window of --size years with its arithmetic mean and CAGR,
followed by the aggregated stats of the horizon.

Example:
  go run ./cmd/cagr windows --size 10
  go run ./cmd/cagr windows --size 30 --capped
  go run ./cmd/cagr windows --size 48 --extrema full`,
	RunE: runWindows,
}

var (
	windowsSize    int
	windowsCapped  bool
	windowsExtrema string
)

func init() {
	rootCmd.AddCommand(windowsCmd)

	windowsCmd.Flags().IntVar(&windowsSize, "size", 10, "window length in years")
	windowsCmd.Flags().BoolVar(&windowsCapped, "capped", false, "use the floor/cap clamped series")
	windowsCmd.Flags().StringVar(&windowsExtrema, "extrema", "", "min/max window selection (legacy|full, default: analysis config)")
}

func runWindows(cmd *cobra.Command, args []string) error {
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

	mode, err := acfg.ExtremaMode()
	if err != nil {
		return err
	}
	if windowsExtrema != "" {
		if mode, err = window.ParseExtremaMode(windowsExtrema); err != nil {
			return err
		}
	}

	series, label := ds.Series, acfg.Benchmark.Label
	if windowsCapped {
		bounds, err := acfg.Bounds()
		if err != nil {
			return err
		}
		if series, err = growth.ApplyCaps(ds.Series, bounds); err != nil {
			return err
		}
		label = acfg.Strategy.Label
	}

	windows, err := window.Generate(series, windowsSize)
	if err != nil {
		return fmt.Errorf("generate windows: %w", err)
	}

	w := cmd.OutOrStdout()
	PrintHeader(w, fmt.Sprintf("%s %d-year windows", label, windowsSize), [][2]string{
		{"Period", fmt.Sprintf("%d ~ %d", series.FirstYear(), series.LastYear())},
		{"Windows", fmt.Sprint(len(windows))},
		{"Extrema", string(mode)},
	})

	if len(windows) == 0 {
		PrintWarning(w, fmt.Sprintf("series has %d years, no %d-year window fits", series.Len(), windowsSize))
		return nil
	}

	widths := []int{11, 10, 10}
	PrintTableHeader(w, []string{"Window", "aMean", "CAGR"}, widths)
	for _, win := range windows {
		PrintTableRow(w, []string{report.Span(win), report.Pct(win.ArithmeticMean), report.Pct(win.GeometricMean)}, widths)
	}
	PrintSeparator(w)

	stats, err := window.Aggregate(windows, window.WithExtrema(mode))
	if err != nil {
		return fmt.Errorf("aggregate windows: %w", err)
	}
	lo, hi := stats.OneSigmaBand()

	PrintKeyValue(w, "Avg CAGR", report.Pct(stats.AvgGeomMean), 10)
	PrintKeyValue(w, "Min CAGR", report.Pct(stats.MinGeomMean), 10)
	PrintKeyValue(w, "Max CAGR", report.Pct(stats.MaxGeomMean), 10)
	PrintKeyValue(w, "StdDev", report.Pct(stats.StdDevGeomMean), 10)
	PrintKeyValue(w, "1 sd band", fmt.Sprintf("%s .. %s", report.Pct(lo), report.Pct(hi)), 10)
	PrintKeyValue(w, "Min window", report.Span(stats.MinWindow), 10)
	PrintKeyValue(w, "Max window", report.Span(stats.MaxWindow), 10)
	return nil
}
