package writer

import "github.com/rxtech-lab/econdata/internal/types"

// MarketDataWriter persists the OHLCV bars of one download. A writer instance
// serves a single ticker download from Initialize to Finalize.
type MarketDataWriter interface {
	// Initialize prepares the output target (file, database connection).
	Initialize() error
	// Write persists a single bar.
	Write(data types.MarketData) error
	// Finalize flushes buffered data and returns the output path.
	Finalize() (path string, err error)
	// Close releases resources. Safe to call after Finalize or on error.
	Close() error
}
