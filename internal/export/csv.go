package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/Tiliavir/track/internal/model"
)

// CSVExporter writes one line per record with a header row.
type CSVExporter struct{}

func (e *CSVExporter) Export(records []model.TimeRecord, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "start,end,duration_ms"); err != nil {
		return err
	}
	for _, r := range Rows(records) {
		if _, err := fmt.Fprintf(w, "%s,%s,%d\n",
			csvEscape(r.Start.String()),
			csvEscape(r.End.String()),
			r.DurationMS,
		); err != nil {
			return err
		}
	}
	return nil
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
