package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
)

//go:embed sp500.yaml
var sp500YAML []byte

type builtinSource struct{}

// Builtin returns the embedded S&P 500 total annual returns, 1951-2022
func Builtin() Source {
	return builtinSource{}
}

func (builtinSource) Load(_ context.Context) (*Dataset, error) {
	ds, err := decodeYAML(bytes.NewReader(sp500YAML))
	if err != nil {
		return nil, fmt.Errorf("decode builtin dataset: %w", err)
	}
	return finalize(ds, "S&P 500")
}
