package writer

import (
	"github.com/rxtech-lab/econdata/internal/types"
)

// SeriesWriter defines the interface for persisting fetched series to a destination.
type SeriesWriter interface {
	// Initialize sets up the writer, potentially creating directories or tables.
	Initialize() error
	// Write persists a single series.
	Write(result types.SeriesResult) error
	// Finalize completes the writing process and returns the paths written.
	Finalize() (paths []string, err error)
	// Close releases any resources held by the writer.
	Close() error
}
