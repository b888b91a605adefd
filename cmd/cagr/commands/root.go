package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	analysisFile string
	dataFile     string
	sourceName   string
	env          string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cagr",
	Short: "CAGR Lab - benchmark vs capped-return comparison",
	Long: `CAGR Lab

Compares an annual return series against the same series clamped to a
floor and a cap, over the full period and over rolling windows.

Usage:
  go run ./cmd/cagr [command]

Examples:
  go run ./cmd/cagr report
  go run ./cmd/cagr report --format pdf --out iul.pdf
  go run ./cmd/cagr windows --size 10 --capped
  go run ./cmd/cagr config validate analysis.yaml
  go run ./cmd/cagr source check --data returns.csv`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&analysisFile, "config", "", "analysis config file (.yaml, .toml; default: built-in S&P 500 vs IUL)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "annual return series file (.yaml, .toml, .csv)")
	rootCmd.PersistentFlags().StringVar(&sourceName, "source", "", "series source (builtin|file|postgres)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
