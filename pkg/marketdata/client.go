package marketdata

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rxtech-lab/econdata/internal/logger"
	"github.com/rxtech-lab/econdata/internal/types"
	"github.com/rxtech-lab/econdata/pkg/errors"
	"github.com/rxtech-lab/econdata/pkg/marketdata/provider"
	"github.com/rxtech-lab/econdata/pkg/marketdata/writer"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderPolygon ProviderType = "polygon"
	ProviderBinance ProviderType = "binance"
)

// WriterType defines the type of market data writer.
type WriterType string

const (
	WriterCSV    WriterType = "csv"
	WriterDuckDB WriterType = "duckdb"
)

// defaultTickers are the polygon index tickers collected when a batch is
// requested without an explicit ticker list.
var defaultTickers = []string{"I:SPX", "I:DJI", "I:COMP", "I:VIX"}

// DefaultTickers returns the default index tickers. The returned slice is a
// copy; callers may modify it without affecting later calls.
func DefaultTickers() []string {
	out := make([]string, len(defaultTickers))
	copy(out, defaultTickers)

	return out
}

// ClientConfig holds the configuration for the market data client.
type ClientConfig struct {
	ProviderType  ProviderType `validate:"required,oneof=polygon binance"`
	WriterType    WriterType   `validate:"required,oneof=csv duckdb"`
	DataPath      string       `validate:"required"`
	PolygonApiKey string       `validate:"required_if=ProviderType polygon"`
}

// DownloadParams holds the parameters for one ticker download.
type DownloadParams struct {
	Ticker    string    `validate:"required"`
	StartDate time.Time `validate:"required"`
	EndDate   time.Time `validate:"required,gtfield=StartDate"`
	Timespan  Timespan  `validate:"required"`
}

// Client downloads OHLCV bars from a provider and stores them through
// writers, one output file per ticker.
type Client struct {
	provider   provider.Provider
	config     ClientConfig
	validate   *validator.Validate
	logger     *logger.Logger
	onProgress provider.OnDownloadProgress
}

// NewClient creates a new market data client with the given configuration.
// onProgress may be nil.
func NewClient(config ClientConfig, log *logger.Logger, onProgress provider.OnDownloadProgress) (*Client, error) {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid client configuration", err)
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	var marketProvider provider.Provider

	var err error

	switch config.ProviderType {
	case ProviderPolygon:
		marketProvider, err = provider.NewPolygonClient(config.PolygonApiKey)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMissingCredentials, "failed to create polygon client", err)
		}
	case ProviderBinance:
		marketProvider, err = provider.NewBinanceClient()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidProvider, "failed to create binance client", err)
		}
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported provider type: %s", config.ProviderType)
	}

	return &Client{
		provider:   marketProvider,
		config:     config,
		validate:   validate,
		logger:     log,
		onProgress: onProgress,
	}, nil
}

// Download fetches bars for one ticker and persists them. Returns the path
// of the written file.
func (c *Client) Download(ctx context.Context, params DownloadParams) (string, error) {
	if err := c.validate.Struct(params); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidParameter, "invalid download parameters", err)
	}

	marketWriter, err := c.setupWriter(params)
	if err != nil {
		return "", err
	}

	c.provider.ConfigWriter(marketWriter)

	path, err := c.provider.Download(
		ctx,
		params.Ticker,
		params.StartDate,
		params.EndDate,
		params.Timespan.Multiplier(),
		params.Timespan.Timespan(),
		c.onProgress,
	)
	if err != nil {
		return "", errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err, "download failed for %s", params.Ticker)
	}

	return path, nil
}

// DownloadBatch downloads every ticker independently: one failing ticker is
// logged and skipped, the rest of the batch continues. A nil ticker slice
// selects the default index tickers. Returns the output path per succeeded
// ticker.
func (c *Client) DownloadBatch(ctx context.Context, tickers []string, startDate time.Time, endDate time.Time, timespan Timespan) map[string]string {
	if tickers == nil {
		tickers = DefaultTickers()
	}

	paths := make(map[string]string, len(tickers))

	for _, ticker := range tickers {
		path, err := c.Download(ctx, DownloadParams{
			Ticker:    ticker,
			StartDate: startDate,
			EndDate:   endDate,
			Timespan:  timespan,
		})
		if err != nil {
			c.logger.Warn("failed to download ticker, skipping",
				zap.String("ticker", ticker),
				zap.Error(err))

			continue
		}

		c.logger.Info("downloaded ticker",
			zap.String("ticker", ticker),
			zap.String("path", path))

		paths[ticker] = path
	}

	return paths
}

// setupWriter builds the writer for one ticker download.
func (c *Client) setupWriter(params DownloadParams) (writer.MarketDataWriter, error) {
	switch c.config.WriterType {
	case WriterCSV:
		fileName := fmt.Sprintf("%s_%s.csv", cleanTicker(params.Ticker), timespanSuffix(params.Timespan))

		return writer.NewCSVWriter(filepath.Join(c.config.DataPath, fileName)), nil
	case WriterDuckDB:
		fileName := fmt.Sprintf("%s_%s_%s_%s.parquet",
			cleanTicker(params.Ticker),
			params.StartDate.Format(types.DateLayout),
			params.EndDate.Format(types.DateLayout),
			params.Timespan)

		return writer.NewDuckDBWriter(filepath.Join(c.config.DataPath, fileName)), nil
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidWriter, "unsupported writer type: %s", c.config.WriterType)
	}
}

// cleanTicker strips the polygon index prefix and any path-hostile
// characters so the ticker can be used as a file name (I:SPX becomes SPX).
func cleanTicker(ticker string) string {
	cleaned := strings.TrimPrefix(ticker, "I:")
	cleaned = strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, cleaned)

	return cleaned
}

// timespanSuffix names the CSV file interval. Daily files keep the
// conventional "daily" suffix.
func timespanSuffix(timespan Timespan) string {
	if timespan == TimespanOneDay {
		return "daily"
	}

	return string(timespan)
}
