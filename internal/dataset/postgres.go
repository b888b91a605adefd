package dataset

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wonny/cagrlab/internal/contracts"
)

// Querier is the read subset of *pgxpool.Pool / *database.DB
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads (year, return_pct) rows ordered by year.
// Table layout:
//
//	CREATE TABLE annual_returns (
//	    series     TEXT    NOT NULL DEFAULT 'S&P 500',
//	    year       INTEGER NOT NULL,
//	    return_pct DOUBLE PRECISION NOT NULL,
//	    PRIMARY KEY (series, year)
//	);
type PostgresSource struct {
	Querier Querier
	Table   string
	Series  string // empty = "S&P 500"
}

func (s *PostgresSource) seriesName() string {
	if s.Series == "" {
		return "S&P 500"
	}
	return s.Series
}

// Load queries the table; an unknown series yields ErrEmptyInput
func (s *PostgresSource) Load(ctx context.Context) (*Dataset, error) {
	table := s.Table
	if table == "" {
		table = "annual_returns"
	}

	query := fmt.Sprintf(
		`SELECT year, return_pct FROM %s WHERE series = $1 ORDER BY year`,
		pgx.Identifier{table}.Sanitize(),
	)

	rows, err := s.Querier.Query(ctx, query, s.seriesName())
	if err != nil {
		return nil, fmt.Errorf("query returns: %w", err)
	}
	defer rows.Close()

	ds := &Dataset{Name: s.seriesName()}
	for rows.Next() {
		var p contracts.ReturnPoint
		if err := rows.Scan(&p.Year, &p.ReturnPct); err != nil {
			return nil, fmt.Errorf("scan return row: %w", err)
		}
		ds.Series = append(ds.Series, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate returns: %w", err)
	}

	return finalize(ds, s.seriesName())
}
