package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/track/internal/model"
)

// YAMLExporter exports records as a YAML sequence.
type YAMLExporter struct{}

func (e *YAMLExporter) Export(records []model.TimeRecord, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(Rows(records))
}
