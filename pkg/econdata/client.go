package econdata

import (
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/rxtech-lab/econdata/internal/logger"
	"github.com/rxtech-lab/econdata/pkg/econdata/provider"
	"github.com/rxtech-lab/econdata/pkg/econdata/writer"
	"github.com/rxtech-lab/econdata/pkg/errors"
)

// ProviderType defines the type of economic data provider.
type ProviderType string

const (
	ProviderFred ProviderType = "fred"
)

// WriterType defines the type of series writer.
type WriterType string

const (
	WriterCSV    WriterType = "csv"
	WriterDuckDB WriterType = "duckdb"
)

// parquetBatchFile is the file name used when persisting a batch through the
// DuckDB writer.
const parquetBatchFile = "observations.parquet"

// ClientConfig holds the configuration for the economic data client.
type ClientConfig struct {
	ProviderType ProviderType `validate:"required,oneof=fred"`
	WriterType   WriterType   `validate:"required,oneof=csv duckdb"`
	FredApiKey   string       `validate:"required_if=ProviderType fred"`
}

// Client fetches economic time series from a provider and persists them
// through writers. All operations are sequential and stateless across calls;
// re-running an operation re-fetches rather than merging with prior results.
type Client struct {
	provider provider.EconomicProvider
	config   ClientConfig
	validate *validator.Validate
	logger   *logger.Logger
}

// NewClient creates a new economic data client with the given configuration.
// This is the only place credential problems surface as errors; fetch
// operations afterwards degrade per series instead of failing whole batches.
func NewClient(config ClientConfig, log *logger.Logger) (*Client, error) {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid client configuration", err)
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	var economicProvider provider.EconomicProvider

	var err error

	switch config.ProviderType {
	case ProviderFred:
		economicProvider, err = provider.NewFredClient(config.FredApiKey)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMissingCredentials, "failed to create FRED client", err)
		}
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported provider type: %s", config.ProviderType)
	}

	return &Client{
		provider: economicProvider,
		config:   config,
		validate: validate,
		logger:   log,
	}, nil
}

// setupWriter initializes the appropriate series writer for one persisted batch.
func (c *Client) setupWriter(outputDir string) (writer.SeriesWriter, error) {
	var seriesWriter writer.SeriesWriter

	switch c.config.WriterType {
	case WriterCSV:
		seriesWriter = writer.NewCSVWriter(outputDir)
	case WriterDuckDB:
		// check if the output directory exists. Otherwise, create it
		if _, err := os.Stat(outputDir); os.IsNotExist(err) {
			os.MkdirAll(outputDir, 0755)
		}

		seriesWriter = writer.NewDuckDBWriter(filepath.Join(outputDir, parquetBatchFile))
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidWriter, "unsupported writer type: %s", c.config.WriterType)
	}

	if err := seriesWriter.Initialize(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputPathError, "failed to initialize writer", err)
	}

	return seriesWriter, nil
}
