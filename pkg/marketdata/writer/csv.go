package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rxtech-lab/econdata/internal/types"
)

// csvTimeLayout keeps intraday bars distinguishable while daily bars stay
// readable as plain dates.
const csvTimeLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"time", "open", "high", "low", "close", "volume", "symbol"}

// CSVWriter streams bars of a single download into one CSV file.
type CSVWriter struct {
	outputPath string
	file       *os.File
	cw         *csv.Writer
}

// NewCSVWriter creates a CSVWriter targeting outputPath. The file is
// overwritten, not appended to.
func NewCSVWriter(outputPath string) MarketDataWriter {
	return &CSVWriter{
		outputPath: outputPath,
	}
}

// Initialize creates the parent directory and the output file, and writes the
// header row.
func (w *CSVWriter) Initialize() error {
	if err := os.MkdirAll(filepath.Dir(w.outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory for %s: %w", w.outputPath, err)
	}

	file, err := os.Create(w.outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", w.outputPath, err)
	}

	w.file = file
	w.cw = csv.NewWriter(file)

	if err := w.cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", w.outputPath, err)
	}

	return nil
}

// Write appends one bar as a CSV row.
func (w *CSVWriter) Write(data types.MarketData) error {
	if w.cw == nil {
		return fmt.Errorf("writer not initialized")
	}

	record := []string{
		data.Time.Format(csvTimeLayout),
		strconv.FormatFloat(data.Open, 'f', -1, 64),
		strconv.FormatFloat(data.High, 'f', -1, 64),
		strconv.FormatFloat(data.Low, 'f', -1, 64),
		strconv.FormatFloat(data.Close, 'f', -1, 64),
		strconv.FormatFloat(data.Volume, 'f', -1, 64),
		data.Symbol,
	}

	if err := w.cw.Write(record); err != nil {
		return fmt.Errorf("failed to write bar to %s: %w", w.outputPath, err)
	}

	return nil
}

// Finalize flushes buffered rows and returns the output path.
func (w *CSVWriter) Finalize() (string, error) {
	if w.cw == nil {
		return "", fmt.Errorf("writer not initialized")
	}

	w.cw.Flush()

	if err := w.cw.Error(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", w.outputPath, err)
	}

	return w.outputPath, nil
}

// Close closes the underlying file. Calling Close more than once is safe.
func (w *CSVWriter) Close() error {
	if w.file == nil {
		return nil
	}

	if w.cw != nil {
		w.cw.Flush()
	}

	err := w.file.Close()
	w.file = nil
	w.cw = nil

	if err != nil {
		return fmt.Errorf("failed to close %s: %w", w.outputPath, err)
	}

	return nil
}
