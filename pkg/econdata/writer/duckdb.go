package writer

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"

	"github.com/rxtech-lab/econdata/internal/types"
)

// DuckDBWriter implements SeriesWriter on top of an in-memory DuckDB
// database, exporting the whole batch to a single Parquet file on Finalize.
type DuckDBWriter struct {
	db         *sql.DB
	tx         *sql.Tx
	stmt       *sql.Stmt
	outputPath string
}

// NewDuckDBWriter creates a new DuckDBWriter.
// outputPath specifies the Parquet file the batch will be exported to.
func NewDuckDBWriter(outputPath string) SeriesWriter {
	return &DuckDBWriter{
		outputPath: outputPath,
	}
}

// Initialize opens the database, creates the observations table, begins a
// transaction and prepares the insert statement.
func (w *DuckDBWriter) Initialize() (err error) {
	w.db, err = sql.Open("duckdb", ":memory:")
	if err != nil {
		return fmt.Errorf("failed to open DuckDB connection: %w", err)
	}

	_, err = w.db.Exec(`
		CREATE TABLE IF NOT EXISTS series_observations (
			id TEXT,
			date TIMESTAMP,
			value DOUBLE,
			series_id TEXT,
			name TEXT
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
		INSERT INTO series_observations (id, date, value, series_id, name)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		w.tx.Rollback()
		w.db.Close()

		return fmt.Errorf("failed to prepare statement: %w", err)
	}

	return nil
}

// Write inserts every observation of the series within the open transaction.
// Missing values are stored as SQL NULL.
func (w *DuckDBWriter) Write(result types.SeriesResult) error {
	if w.stmt == nil {
		return fmt.Errorf("writer not initialized or statement is nil")
	}

	for _, obs := range result.Observations {
		value := sql.NullFloat64{}
		if obs.Value.IsSome() {
			value = sql.NullFloat64{Float64: obs.Value.Unwrap(), Valid: true}
		}

		_, err := w.stmt.Exec(
			uuid.New().String(),
			obs.Date,
			value,
			result.SeriesID,
			result.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert observation for %s: %w", result.Name, err)
		}
	}

	return nil
}

// Finalize commits the transaction and exports the batch to the Parquet file.
func (w *DuckDBWriter) Finalize() ([]string, error) {
	if w.tx == nil {
		return nil, fmt.Errorf("writer not initialized or transaction is nil")
	}

	if err := w.tx.Commit(); err != nil {
		w.tx.Rollback()

		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.tx = nil
	w.stmt = nil

	_, err := w.db.Exec(fmt.Sprintf(`COPY series_observations TO '%s' (FORMAT PARQUET)`, w.outputPath))
	if err != nil {
		return nil, fmt.Errorf("failed to export to Parquet: %w", err)
	}

	return []string{w.outputPath}, nil
}

// Close releases the database connection and any open transaction.
func (w *DuckDBWriter) Close() error {
	if w.stmt != nil {
		w.stmt.Close()
		w.stmt = nil
	}

	if w.tx != nil {
		w.tx.Rollback()
		w.tx = nil
	}

	if w.db != nil {
		err := w.db.Close()
		w.db = nil

		return err
	}

	return nil
}

// BatchStats summarizes an exported batch file.
type BatchStats struct {
	TotalRows   int64
	SeriesCount int64
	StartDate   time.Time
	EndDate     time.Time
}

// ReadBatchStats reads summary statistics from a Parquet file previously
// written by a DuckDBWriter.
func ReadBatchStats(path string) (BatchStats, error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return BatchStats{}, fmt.Errorf("failed to open DuckDB connection: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(fmt.Sprintf(`CREATE VIEW series_observations AS SELECT * FROM read_parquet('%s')`, path))
	if err != nil {
		return BatchStats{}, fmt.Errorf("failed to create view from Parquet: %w", err)
	}

	query, args, err := squirrel.
		Select("COUNT(*)", "COUNT(DISTINCT series_id)", "MIN(date)", "MAX(date)").
		From("series_observations").
		ToSql()
	if err != nil {
		return BatchStats{}, fmt.Errorf("failed to build stats query: %w", err)
	}

	var stats BatchStats

	err = db.QueryRow(query, args...).Scan(&stats.TotalRows, &stats.SeriesCount, &stats.StartDate, &stats.EndDate)
	if err != nil {
		return BatchStats{}, fmt.Errorf("failed to read stats: %w", err)
	}

	return stats, nil
}
