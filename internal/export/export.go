// Package export writes completed records in interchange formats.
package export

import (
	"fmt"
	"io"

	"github.com/Tiliavir/track/internal/model"
)

// Row is the exported shape of one record.
type Row struct {
	Start      model.Timestamp `json:"start" yaml:"start"`
	End        model.Timestamp `json:"end" yaml:"end"`
	DurationMS int64           `json:"duration_ms" yaml:"duration_ms"`
}

// Rows converts records to export rows, preserving order.
func Rows(records []model.TimeRecord) []Row {
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, Row{
			Start:      r.Start,
			End:        r.End,
			DurationMS: r.Elapsed().Milliseconds(),
		})
	}
	return rows
}

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(records []model.TimeRecord, w io.Writer) error
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "csv":
		return &CSVExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, csv, yaml)", format)
	}
}
