package writer

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"

	"github.com/rxtech-lab/econdata/internal/types"
)

// DuckDBWriter buffers bars in an in-memory DuckDB table inside a single
// transaction and exports them as one Parquet file on Finalize.
type DuckDBWriter struct {
	db         *sql.DB
	tx         *sql.Tx
	stmt       *sql.Stmt
	outputPath string
}

// NewDuckDBWriter creates a DuckDBWriter targeting the given Parquet path.
func NewDuckDBWriter(outputPath string) MarketDataWriter {
	return &DuckDBWriter{
		outputPath: outputPath,
	}
}

// Initialize opens the in-memory database, creates the bar table, begins the
// insert transaction and prepares the insert statement.
func (w *DuckDBWriter) Initialize() (err error) {
	w.db, err = sql.Open("duckdb", ":memory:")
	if err != nil {
		return fmt.Errorf("failed to open DuckDB connection: %w", err)
	}

	_, err = w.db.Exec(`
		CREATE TABLE IF NOT EXISTS market_data (
			id TEXT,
			time TIMESTAMP,
			symbol TEXT,
			open DOUBLE,
			high DOUBLE,
			low DOUBLE,
			close DOUBLE,
			volume DOUBLE
		)
	`)
	if err != nil {
		w.db.Close()

		return fmt.Errorf("failed to create table: %w", err)
	}

	w.tx, err = w.db.Begin()
	if err != nil {
		w.db.Close()

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	w.stmt, err = w.tx.Prepare(`
		INSERT INTO market_data (id, time, symbol, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		w.tx.Rollback()
		w.db.Close()

		return fmt.Errorf("failed to prepare statement: %w", err)
	}

	return nil
}

// Write inserts a single bar within the open transaction.
func (w *DuckDBWriter) Write(data types.MarketData) error {
	if w.stmt == nil {
		return fmt.Errorf("writer not initialized")
	}

	_, err := w.stmt.Exec(
		uuid.New().String(),
		data.Time,
		data.Symbol,
		data.Open,
		data.High,
		data.Low,
		data.Close,
		data.Volume,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bar: %w", err)
	}

	return nil
}

// Finalize commits the transaction and exports the table to Parquet.
func (w *DuckDBWriter) Finalize() (string, error) {
	if w.tx == nil {
		return "", fmt.Errorf("writer not initialized or already finalized")
	}

	if err := w.tx.Commit(); err != nil {
		w.tx.Rollback()

		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.tx = nil

	if _, err := w.db.Exec(fmt.Sprintf(`COPY market_data TO '%s' (FORMAT PARQUET)`, w.outputPath)); err != nil {
		return "", fmt.Errorf("failed to export to Parquet: %w", err)
	}

	return w.outputPath, nil
}

// Close rolls back any unfinished transaction and closes the database.
// Calling Close more than once is safe.
func (w *DuckDBWriter) Close() error {
	var closeErr error

	if w.stmt != nil {
		if err := w.stmt.Close(); err != nil {
			closeErr = fmt.Errorf("failed to close statement: %w", err)
		}

		w.stmt = nil
	}

	if w.tx != nil {
		// Finalize was never reached; discard buffered bars
		w.tx.Rollback()
		w.tx = nil
	}

	if w.db != nil {
		if err := w.db.Close(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to close database: %w", err)
		}

		w.db = nil
	}

	return closeErr
}
