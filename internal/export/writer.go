package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jdamm/matlist/internal/config"
	"github.com/jdamm/matlist/internal/logger"
	"github.com/jdamm/matlist/internal/model"
)

// Writer serializes records to a delimited text file: one header row with
// the fixed column set, then one row per record. Fields containing the
// delimiter, a quote, or a newline are quoted; lines end with a single
// newline regardless of platform.
type Writer struct {
	delimiter rune
}

// NewWriter creates a writer with the run's delimiter
func NewWriter(cfg *config.Config) *Writer {
	delimiter := ';'
	if cfg.Delimiter != "" {
		delimiter = rune(cfg.Delimiter[0])
	}
	return &Writer{delimiter: delimiter}
}

// Write writes the header and all records to dest and returns the written
// path and row count. An empty dest means the caller aborted before
/// writing: no file, zero rows, no error.
func (w *Writer) Write(records []Record, dest string) (string, int, error) {
	if dest == "" {
		return "", 0, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(dest)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open output file: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	cw.Comma = w.delimiter

	if err := cw.Write(columns); err != nil {
		return "", 0, fmt.Errorf("failed to write header: %w", err)
	}
	for _, record := range records {
		if err := cw.Write(record); err != nil {
			return "", 0, fmt.Errorf("failed to write record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", 0, fmt.Errorf("failed to flush output: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to close output file: %w", err)
	}

	return dest, len(records), nil
}

// Result summarizes one export run for the caller
type Result struct {
	RunID    string        `json:"run_id"`
	Path     string        `json:"path,omitempty"`
	Rows     int           `json:"rows"`
	Elements int           `json:"elements"`
	Skipped  int           `json:"skipped"`
	Duration time.Duration `json:"duration"`
}

// Aborted reports whether the run ended without writing a file
func (r *Result) Aborted() bool {
	return r.Path == ""
}

// Run aggregates a document and writes the records to dest. The run id
// correlates log lines and the summary; it never appears in the rows
// themselves, so repeated runs over the same snapshot produce identical
// files. An empty dest aggregates without writing.
func Run(cfg *config.Config, log *logger.Logger, doc *model.Document, dest string) (*Result, error) {
	if log == nil {
		log = logger.GetLogger()
	}
	start := time.Now()
	runID := uuid.New().String()

	log.Info("export run %s: %d elements", runID, len(doc.Elements))

	records, stats, err := NewAggregator(cfg, log).Aggregate(doc)
	if err != nil {
		return nil, err
	}

	path, rows, err := NewWriter(cfg).Write(records, dest)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:    runID,
		Path:     path,
		Rows:     rows,
		Elements: stats.Elements,
		Skipped:  stats.Skipped,
		Duration: time.Since(start),
	}

	if result.Aborted() {
		log.Info("export run %s: aggregated %d records, no file written", runID, stats.Records)
	} else {
		log.Info("export run %s: wrote %d rows to %s", runID, rows, path)
	}
	return result, nil
}

// DefaultFileName generates a timestamped output file name, matching the
// Material_Export_YYYYMMDD_HHMMSS convention of earlier exports
func DefaultFileName(at time.Time) string {
	return fmt.Sprintf("Material_Export_%s.csv", at.Format("20060102_150405"))
}
