package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/cagrlab/internal/analysisconfig"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Analysis config tools",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate an analysis config file",
	Long: `Loads an analysis config (.yaml, .yml, .toml), validates it and prints
its hash and any non-fatal warnings against the configured series.

The file comes from the argument, then --config, then CAGR_ANALYSIS_FILE.

Example:
  go run ./cmd/cagr config validate analysis.yaml
  go run ./cmd/cagr config validate --config analysis.toml --data returns.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	path := a.cfg.AnalysisFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no analysis config given (argument, --config or CAGR_ANALYSIS_FILE)")
	}

	acfg, _, err := analysisconfig.Load(path)
	if err != nil {
		var ve analysisconfig.ValidationError
		if errors.As(err, &ve) {
			a.log.WithField("field", ve.Field).Warn("Analysis config rejected")
		}
		return fmt.Errorf("%s: %w", path, err)
	}

	hash, err := analysisconfig.Hash(acfg)
	if err != nil {
		return fmt.Errorf("hash config: %w", err)
	}

	ds, err := a.loadDataset(cmd.Context())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	PrintHeader(w, "Analysis config", [][2]string{
		{"File", path},
		{"ID", acfg.Meta.AnalysisID},
		{"Hash", hash},
		{"Compare", fmt.Sprintf("%s vs %s", acfg.Benchmark.Label, acfg.Strategy.Label)},
		{"Horizons", fmt.Sprint(acfg.Horizons.Years)},
	})

	for _, warning := range analysisconfig.Warn(acfg, ds.Series.Len()) {
		PrintWarning(w, fmt.Sprintf("[%s] %s", warning.Code, warning.Message))
	}
	PrintSuccess(w, "config is valid")
	return nil
}
