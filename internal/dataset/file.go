package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/wonny/cagrlab/internal/contracts"
)

// FileSource reads a series from .yaml/.yml, .toml or .csv
type FileSource struct {
	Path string
}

// Load reads and validates the file; the format follows the extension
func (s *FileSource) Load(_ context.Context) (*Dataset, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var ds *Dataset
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yaml", ".yml":
		ds, err = decodeYAML(bytes.NewReader(data))
	case ".toml":
		ds, err = decodeTOML(bytes.NewReader(data))
	case ".csv":
		ds, err = decodeCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(s.Path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}

	name := strings.TrimSuffix(filepath.Base(s.Path), filepath.Ext(s.Path))
	return finalize(ds, name)
}

func decodeYAML(r io.Reader) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func decodeTOML(r io.Reader) (*Dataset, error) {
	var ds Dataset
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// decodeCSV reads `year,return_pct` rows. A non-numeric first row is a header.
func decodeCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	ds := &Dataset{}
	for i, rec := range records {
		year, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("line %d: invalid year %q", i+1, rec[0])
		}

		ret, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(rec[1]), "%"), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid return %q", i+1, rec[1])
		}

		ds.Series = append(ds.Series, contracts.ReturnPoint{Year: year, ReturnPct: ret})
	}

	return ds, nil
}
