package metrics

import (
	"path/filepath"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/I-Language-Development/I-language-rust/internal/foundation/errors"
)

// WriteTextfile writes the gathered metrics in the text exposition format.
// The file is replaced atomically.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(filepath.Clean(path), g); err != nil {
		return errors.MetricsError("failed to write metrics textfile").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}
