package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// WriteTextfile gathers all registered metrics and writes them to path in the
// Prometheus text exposition format, suitable for the node_exporter textfile
// collector. The file is written via a temp file and rename so a scraper
// never sees a partial write.
func WriteTextfile(path string) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create metrics tempfile: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := expfmt.NewEncoder(tmp, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			tmp.Close()
			return fmt.Errorf("encode metrics: %w", err)
		}
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close metrics tempfile: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename metrics file: %w", err)
	}
	return nil
}
