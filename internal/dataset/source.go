// Package dataset supplies the annual return series consumed by the
// analysis: an embedded S&P 500 history, local files and PostgreSQL.
package dataset

import (
	"context"
	"fmt"

	"github.com/wonny/cagrlab/internal/contracts"
	"github.com/wonny/cagrlab/pkg/config"
	"github.com/wonny/cagrlab/pkg/database"
)

// Dataset is a named, validated annual return series
type Dataset struct {
	Name   string           `json:"name" yaml:"name" toml:"name"`
	Series contracts.Series `json:"returns" yaml:"returns" toml:"returns"`
}

// Source loads a dataset
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

// finalize validates chronology and fills a default name
func finalize(ds *Dataset, fallbackName string) (*Dataset, error) {
	if len(ds.Series) == 0 {
		return nil, fmt.Errorf("dataset %q: %w", fallbackName, contracts.ErrEmptyInput)
	}
	if err := ds.Series.Validate(); err != nil {
		return nil, fmt.Errorf("dataset %q: %w", fallbackName, err)
	}
	if ds.Name == "" {
		ds.Name = fallbackName
	}
	return ds, nil
}

// Open builds the source selected by cfg.Source.
// The returned close func releases the database pool for the postgres source.
func Open(ctx context.Context, cfg *config.Config) (Source, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case "", "builtin":
		return Builtin(), noop, nil
	case "file":
		return &FileSource{Path: cfg.DataFile}, noop, nil
	case "postgres":
		db, err := database.New(ctx, cfg)
		if err != nil {
			return nil, noop, fmt.Errorf("open postgres source: %w", err)
		}
		return &PostgresSource{Querier: db, Table: cfg.Database.Table}, db.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown source %q", cfg.Source)
	}
}
