package report

import (
	"encoding/json"
	"io"

	"github.com/wonny/cagrlab/internal/analysis"
)

// JSON writes the report as indented JSON
func JSON(w io.Writer, r *analysis.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
