package export

import (
	"encoding/json"
	"io"

	"github.com/Tiliavir/track/internal/model"
)

// JSONExporter writes an indented JSON array.
type JSONExporter struct{}

func (e *JSONExporter) Export(records []model.TimeRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Rows(records))
}
