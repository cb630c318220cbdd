package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rxtech-lab/econdata/internal/types"
)

// csvHeader is the column layout of every per-series file.
var csvHeader = []string{"date", "value", "series_id", "name"}

// CSVWriter writes each series to its own CSV file under a base directory.
// Files are overwritten in place; there is no merge or append.
type CSVWriter struct {
	outputDir string
	paths     []string
}

// NewCSVWriter creates a new CSVWriter writing into outputDir.
func NewCSVWriter(outputDir string) SeriesWriter {
	return &CSVWriter{
		outputDir: outputDir,
	}
}

// Initialize creates the output directory if it does not exist.
func (w *CSVWriter) Initialize() error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", w.outputDir, err)
	}

	return nil
}

// Write persists one series as <Name>.csv with a header row and one row per
// observation, dates ascending as fetched. Missing values become empty fields.
func (w *CSVWriter) Write(result types.SeriesResult) error {
	path := filepath.Join(w.outputDir, result.Name+".csv")

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create series file %s: %w", path, err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", result.Name, err)
	}

	for _, obs := range result.Observations {
		value := ""
		if obs.Value.IsSome() {
			value = strconv.FormatFloat(obs.Value.Unwrap(), 'f', -1, 64)
		}

		record := []string{
			obs.Date.Format(types.DateLayout),
			value,
			result.SeriesID,
			result.Name,
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write observation for %s: %w", result.Name, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush series file %s: %w", path, err)
	}

	w.paths = append(w.paths, path)

	return nil
}

// Finalize returns the list of file paths written, in write order.
func (w *CSVWriter) Finalize() ([]string, error) {
	return w.paths, nil
}

// Close implements SeriesWriter. Files are closed per Write, so this is a no-op.
func (w *CSVWriter) Close() error {
	return nil
}
