package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/cagrlab/internal/analysisconfig"
	"github.com/wonny/cagrlab/internal/dataset"
	"github.com/wonny/cagrlab/pkg/config"
	"github.com/wonny/cagrlab/pkg/logger"
)

// app bundles what every command needs after flag overrides are applied
type app struct {
	cfg *config.Config
	log *logger.Logger
}

// bootstrap loads the environment config and applies global flags on top
func bootstrap(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("env") {
		cfg.Env = env
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if analysisFile != "" {
		cfg.AnalysisFile = analysisFile
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
		if sourceName == "" {
			cfg.Source = "file"
		}
	}
	if sourceName != "" {
		cfg.Source = sourceName
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return &app{cfg: cfg, log: logger.New(cfg)}, nil
}

// loadDataset opens the configured source and loads the series
func (a *app) loadDataset(ctx context.Context) (*dataset.Dataset, error) {
	src, closeSource, err := dataset.Open(ctx, a.cfg)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	ds, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s source: %w", a.cfg.Source, err)
	}

	a.log.WithFields(map[string]interface{}{
		"source": a.cfg.Source,
		"name":   ds.Name,
		"from":   ds.Series.FirstYear(),
		"to":     ds.Series.LastYear(),
		"years":  ds.Series.Len(),
	}).Debug("Dataset loaded")

	return ds, nil
}

// loadAnalysis reads the analysis config file, or falls back to the defaults
// with the benchmark named after the dataset.
func (a *app) loadAnalysis(ds *dataset.Dataset) (*analysisconfig.Config, error) {
	if a.cfg.AnalysisFile == "" {
		cfg := analysisconfig.Default()
		if ds != nil && ds.Name != "" {
			cfg.Benchmark.Label = ds.Name
		}
		return cfg, nil
	}

	cfg, _, err := analysisconfig.Load(a.cfg.AnalysisFile)
	if err != nil {
		return nil, fmt.Errorf("load analysis config %s: %w", a.cfg.AnalysisFile, err)
	}
	return cfg, nil
}
